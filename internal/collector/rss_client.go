package collector

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/qepting91/reddit-gifs/internal/domain"
	"golang.org/x/time/rate"
)

// RSSClient reads the public /r/<sub>/.rss feed. No credentials needed.
type RSSClient struct {
	httpClient *http.Client
	parser     *gofeed.Parser
	limiter    *rate.Limiter
	baseURL    string
	userAgent  string
}

func NewRSSClient(baseURL, userAgent string, interval time.Duration) *RSSClient {
	return &RSSClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		parser:     gofeed.NewParser(),
		limiter:    newLimiter(interval),
		baseURL:    baseURL,
		userAgent:  userAgent,
	}
}

func (rc *RSSClient) FetchFeed(ctx context.Context, sub string) ([]domain.FeedItem, error) {
	if err := rc.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/r/%s/.rss", rc.baseURL, sub)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", rc.userAgent)

	resp, err := rc.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed status for %s: %d", url, resp.StatusCode)
	}

	feed, err := rc.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed %s: %w", url, err)
	}

	items := make([]domain.FeedItem, 0, len(feed.Items))
	for _, entry := range feed.Items {
		content := entry.Content
		if content == "" {
			content = entry.Description
		}
		items = append(items, domain.FeedItem{
			Content: content,
			Link:    entry.Link,
		})
	}
	return items, nil
}

// newLimiter spaces requests by interval. Zero disables pacing.
func newLimiter(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}
