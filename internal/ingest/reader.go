package ingest

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/qepting91/reddit-gifs/internal/domain"
)

// Regex for valid subreddit names
var subNameRegex = regexp.MustCompile(`^[A-Za-z0-9_]{3,21}$`)

// LoadTargets reads a CSV whose first row is a header and whose first column
// is a subreddit name. Malformed rows, invalid names and duplicates are skipped.
func LoadTargets(path string) ([]domain.Target, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadTargets(f)
}

func ReadTargets(src io.Reader) ([]domain.Target, error) {
	r := csv.NewReader(stripBOM(src))
	r.FieldsPerRecord = -1

	var targets []domain.Target
	seen := make(map[string]bool)
	line := 0
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			// A malformed row only spoils itself.
			continue
		}
		if err != nil {
			return targets, err
		}
		if line == 1 || len(record) == 0 {
			continue
		}

		// Validation (Fail-Soft)
		sub := strings.TrimPrefix(strings.TrimSpace(record[0]), "r/")
		if !subNameRegex.MatchString(sub) || seen[sub] {
			continue
		}
		seen[sub] = true
		targets = append(targets, domain.Target{Subreddit: sub})
	}
	return targets, nil
}

// ResolveTargets returns the targets from path, or the default list when path
// is empty, unreadable, or contains no valid names.
func ResolveTargets(path string, logger *slog.Logger) []domain.Target {
	if path == "" {
		return domain.DefaultTargets()
	}
	targets, err := LoadTargets(path)
	if err != nil {
		logger.Warn("Could not read sources file, using defaults", "path", path, "err", err)
		return domain.DefaultTargets()
	}
	if len(targets) == 0 {
		logger.Warn("Sources file has no valid subreddits, using defaults", "path", path)
		return domain.DefaultTargets()
	}
	return targets
}

func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	rdr, _, err := br.ReadRune()
	if err != nil {
		return br
	}
	if rdr != '\uFEFF' {
		br.UnreadRune()
	}
	return br
}
