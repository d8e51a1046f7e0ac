package collector

import (
	"fmt"

	"github.com/qepting91/reddit-gifs/internal/config"
	"github.com/qepting91/reddit-gifs/internal/domain"
)

// NewCollector selects the correct implementation based on the MODE
func NewCollector(cfg config.Config) (domain.Collector, error) {
	switch cfg.Mode {
	case "rss":
		return NewRSSClient(cfg.FeedBaseURL, cfg.UserAgent, cfg.FetchInterval), nil
	case "api":
		return NewAPIClient(cfg.FeedBaseURL, cfg.UserAgent, cfg.FeedLimit, cfg.FetchInterval)
	case "public":
		return NewPublicClient(cfg.FeedBaseURL, cfg.UserAgent, cfg.FeedLimit, cfg.FetchInterval)
	case "mock":
		return NewMockClient(), nil
	default:
		return nil, fmt.Errorf("unknown COLLECTOR_MODE: %s (use 'rss', 'api', 'public', or 'mock')", cfg.Mode)
	}
}
