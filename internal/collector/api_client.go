package collector

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/loganintech/go-reddit/v2/reddit"
	"github.com/qepting91/reddit-gifs/internal/domain"
	"golang.org/x/time/rate"
)

// APIClient lists posts through the read-only Reddit API client.
type APIClient struct {
	client  *reddit.Client
	limiter *rate.Limiter
	limit   int
}

func NewAPIClient(baseURL, userAgent string, limit int, interval time.Duration) (*APIClient, error) {
	client, err := reddit.NewReadonlyClient(
		reddit.WithUserAgent(userAgent),
		reddit.WithBaseURL(strings.TrimRight(baseURL, "/")+"/"),
	)
	if err != nil {
		return nil, err
	}
	return &APIClient{client: client, limiter: newLimiter(interval), limit: limit}, nil
}

func (ac *APIClient) FetchFeed(ctx context.Context, sub string) ([]domain.FeedItem, error) {
	if err := ac.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	posts, _, err := ac.client.Subreddit.NewPosts(ctx, sub, &reddit.ListOptions{Limit: ac.limit})
	if err != nil {
		return nil, fmt.Errorf("reddit api error: %w", err)
	}

	items := make([]domain.FeedItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, domain.FeedItem{
			Content: p.Body,
			Link:    p.URL,
		})
	}
	return items, nil
}
