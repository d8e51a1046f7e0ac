package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds everything the scraper reads from the environment.
type Config struct {
	Mode          string
	UserAgent     string
	FeedBaseURL   string
	SourcesFile   string
	OutputPath    string
	ReportPath    string
	FetchInterval time.Duration
	ProbeTimeout  time.Duration
	FeedLimit     int
	LogLevel      slog.Level
}

const (
	defaultMode          = "rss"
	defaultUserAgent     = "reddit-gifs/1.0"
	defaultFeedBaseURL   = "https://www.reddit.com"
	defaultOutputPath    = "gifs.json"
	defaultFetchInterval = 1 * time.Second
	defaultProbeTimeout  = 10 * time.Second
	defaultFeedLimit     = 25
)

// Load reads the configuration from environment variables. Call
// godotenv.Load first if a .env file should be honoured. Invalid values are
// reported on logger and replaced by their defaults.
func Load(logger *slog.Logger) Config {
	if logger == nil {
		logger = slog.Default()
	}
	env := envReader{logger: logger}
	return Config{
		Mode:          getString("COLLECTOR_MODE", defaultMode),
		UserAgent:     getString("REDDIT_USER_AGENT", defaultUserAgent),
		FeedBaseURL:   strings.TrimRight(getString("FEED_BASE_URL", defaultFeedBaseURL), "/"),
		SourcesFile:   os.Getenv("SOURCES_FILE"),
		OutputPath:    getString("OUTPUT_PATH", defaultOutputPath),
		ReportPath:    os.Getenv("REPORT_PATH"),
		FetchInterval: env.getDuration("FETCH_INTERVAL", defaultFetchInterval),
		ProbeTimeout:  env.getDuration("PROBE_TIMEOUT", defaultProbeTimeout),
		FeedLimit:     env.getInt("FEED_LIMIT", defaultFeedLimit),
		LogLevel:      env.getLevel("LOG_LEVEL", slog.LevelInfo),
	}
}

type envReader struct {
	logger *slog.Logger
}

func getString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func (e envReader) getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		e.logger.Warn("Invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func (e envReader) getInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		e.logger.Warn("Invalid integer, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func (e envReader) getLevel(key string, def slog.Level) slog.Level {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(v)); err != nil {
		e.logger.Warn("Invalid log level, using default", "key", key, "value", v)
		return def
	}
	return lvl
}
