package extract

import (
	"regexp"

	"github.com/qepting91/reddit-gifs/internal/domain"
	"github.com/samber/lo"
)

// GifPattern matches a direct i.redd.it GIF link.
var GifPattern = regexp.MustCompile(`https://i\.redd\.it/[A-Za-z0-9]+\.gif`)

// FromItem returns the first GIF URL in the item's content, falling back to
// its link. ok is false when neither contains one.
func FromItem(item domain.FeedItem) (string, bool) {
	if m := GifPattern.FindString(item.Content); m != "" {
		return m, true
	}
	if m := GifPattern.FindString(item.Link); m != "" {
		return m, true
	}
	return "", false
}

// Candidates extracts at most one URL per item, in item order.
func Candidates(subreddit string, items []domain.FeedItem) []domain.Candidate {
	var out []domain.Candidate
	for _, item := range items {
		if url, ok := FromItem(item); ok {
			out = append(out, domain.Candidate{URL: url, Subreddit: subreddit})
		}
	}
	return out
}

// Dedupe drops repeated URLs, keeping the first occurrence.
func Dedupe(candidates []domain.Candidate) []domain.Candidate {
	return lo.UniqBy(candidates, func(c domain.Candidate) string {
		return c.URL
	})
}
