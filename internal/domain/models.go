package domain

import "context"

// DefaultSubreddits is the source list used when no sources file is supplied.
var DefaultSubreddits = []string{
	"catgifs",
	"CatMemes",
	"Kittens",
	"cats",
	"CatPictures",
}

// Target represents a scraping task
type Target struct {
	Subreddit string
}

// DefaultTargets wraps DefaultSubreddits as targets.
func DefaultTargets() []Target {
	targets := make([]Target, 0, len(DefaultSubreddits))
	for _, sub := range DefaultSubreddits {
		targets = append(targets, Target{Subreddit: sub})
	}
	return targets
}

// FeedItem is one entry of a subreddit feed. Either field may be empty.
type FeedItem struct {
	Content string
	Link    string
}

// Candidate is an extracted GIF URL and the subreddit it was first seen in.
type Candidate struct {
	URL       string
	Subreddit string
}

// Record is the file written at the end of a run
type Record struct {
	Updated string   `json:"updated"`
	Count   int      `json:"count"`
	Gifs    []string `json:"gifs"`
}

// SourceReport counts what a single subreddit contributed to a run.
type SourceReport struct {
	Subreddit  string
	Items      int
	Candidates int
	Working    int
	Err        string
}

// Summary describes a finished run, used for logging and the HTML report.
type Summary struct {
	Sources    []SourceReport
	Candidates int
	Working    int
	Bad        int
	// Interrupted is set when the context was cancelled before every
	// candidate was probed. The record is then incomplete.
	Interrupted bool
}

// Collector defines the interface for data fetching
type Collector interface {
	FetchFeed(ctx context.Context, subreddit string) ([]FeedItem, error)
}

// Prober reports whether a URL is currently reachable. It never fails;
// every error collapses to false.
type Prober interface {
	Reachable(ctx context.Context, url string) bool
}
