package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/qepting91/reddit-gifs/internal/domain"
	"golang.org/x/time/rate"
)

type PublicClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	userAgent  string
	limit      int
}

type redditJSONResponse struct {
	Data struct {
		Children []struct {
			Data struct {
				URL      string `json:"url"`
				SelfText string `json:"selftext"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

func NewPublicClient(baseURL, userAgent string, limit int, interval time.Duration) (*PublicClient, error) {
	if userAgent == "" {
		return nil, fmt.Errorf("a user agent is required for public mode")
	}
	return &PublicClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    newLimiter(interval),
		baseURL:    baseURL,
		userAgent:  userAgent,
		limit:      limit,
	}, nil
}

func (pc *PublicClient) FetchFeed(ctx context.Context, sub string) ([]domain.FeedItem, error) {
	if err := pc.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/r/%s/new.json?limit=%d", pc.baseURL, sub, pc.limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", pc.userAgent)

	resp, err := pc.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reddit public access status: %d", resp.StatusCode)
	}

	var rResp redditJSONResponse
	if err := json.NewDecoder(resp.Body).Decode(&rResp); err != nil {
		return nil, fmt.Errorf("decode listing for %s: %w", sub, err)
	}

	var items []domain.FeedItem
	for _, child := range rResp.Data.Children {
		items = append(items, domain.FeedItem{
			Content: child.Data.SelfText,
			Link:    child.Data.URL,
		})
	}
	return items, nil
}
