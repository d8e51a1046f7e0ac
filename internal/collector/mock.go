package collector

import (
	"context"
	"fmt"

	"github.com/qepting91/reddit-gifs/internal/domain"
)

// MockClient implements domain.Collector but returns fake data
type MockClient struct {
	PerSource int
}

func NewMockClient() *MockClient {
	return &MockClient{PerSource: 5}
}

func (mc *MockClient) FetchFeed(ctx context.Context, sub string) ([]domain.FeedItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var items []domain.FeedItem
	for i := 0; i < mc.PerSource; i++ {
		items = append(items, domain.FeedItem{
			// Shared ids across subreddits so runs exercise dedupe.
			Content: fmt.Sprintf("<p>[%s] simulated post https://i.redd.it/mock%d.gif</p>", sub, i),
			Link:    fmt.Sprintf("https://www.reddit.com/r/%s/comments/mock_%d/", sub, i),
		})
	}
	// One item without a GIF, as real feeds mostly have.
	items = append(items, domain.FeedItem{Link: "https://www.reddit.com/r/" + sub + "/comments/text_only/"})
	return items, nil
}
