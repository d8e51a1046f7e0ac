package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/qepting91/reddit-gifs/internal/domain"
)

// TimestampFormat is ISO-8601 UTC with millisecond precision.
const TimestampFormat = "2006-01-02T15:04:05.000Z"

// NewRecord builds the output record for the URLs that passed probing.
func NewRecord(gifs []string, now time.Time) domain.Record {
	if gifs == nil {
		gifs = []string{}
	}
	return domain.Record{
		Updated: now.UTC().Format(TimestampFormat),
		Count:   len(gifs),
		Gifs:    gifs,
	}
}

// WriterService overwrites FilePath with one indented JSON record per run.
type WriterService struct {
	FilePath string
}

func (w *WriterService) Write(rec domain.Record) error {
	if rec.Gifs == nil {
		rec.Gifs = []string{}
	}
	rec.Count = len(rec.Gifs)

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	if dir := filepath.Dir(w.FilePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	if err := os.WriteFile(w.FilePath, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", w.FilePath, err)
	}
	return nil
}

// Read loads a record previously written by Write.
func (w *WriterService) Read() (domain.Record, error) {
	var rec domain.Record
	data, err := os.ReadFile(w.FilePath)
	if err != nil {
		return rec, err
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return rec, fmt.Errorf("decode %s: %w", w.FilePath, err)
	}
	return rec, nil
}
