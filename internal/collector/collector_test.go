package collector_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/qepting91/reddit-gifs/internal/collector"
	"github.com/qepting91/reddit-gifs/internal/config"
	"github.com/qepting91/reddit-gifs/internal/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const atomFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
	<title>cat gifs</title>
	<entry>
		<title>Zoomies</title>
		<link href="https://www.reddit.com/r/catgifs/comments/aaa/zoomies/"/>
		<content type="html">&lt;a href=&quot;https://i.redd.it/abc123.gif&quot;&gt;[link]&lt;/a&gt;</content>
	</entry>
	<entry>
		<title>Direct link</title>
		<link href="https://i.redd.it/xyz789.gif"/>
	</entry>
	<entry>
		<title>Text post</title>
		<link href="https://www.reddit.com/r/catgifs/comments/ccc/text/"/>
		<content type="html">just words</content>
	</entry>
</feed>`

const rssFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
	<channel>
		<title>Kittens</title>
		<link>https://www.reddit.com/r/Kittens</link>
		<item>
			<title>Tiny</title>
			<link>https://www.reddit.com/r/Kittens/comments/k1/</link>
			<description>check this out https://i.redd.it/kit10.gif now</description>
		</item>
	</channel>
</rss>`

func TestRSSClientFetchFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "reddit-gifs-test", r.Header.Get("User-Agent"))
		switch r.URL.Path {
		case "/r/catgifs/.rss":
			w.Header().Set("Content-Type", "application/atom+xml")
			w.Write([]byte(atomFeed))
		case "/r/Kittens/.rss":
			w.Header().Set("Content-Type", "application/rss+xml")
			w.Write([]byte(rssFeed))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := collector.NewRSSClient(server.URL, "reddit-gifs-test", 0)

	items, err := client.FetchFeed(context.Background(), "catgifs")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Contains(t, items[0].Content, "https://i.redd.it/abc123.gif")
	assert.Equal(t, "https://i.redd.it/xyz789.gif", items[1].Link)

	var urls []string
	for _, c := range extract.Candidates("catgifs", items) {
		urls = append(urls, c.URL)
	}
	assert.Equal(t, []string{"https://i.redd.it/abc123.gif", "https://i.redd.it/xyz789.gif"}, urls)

	items, err = client.FetchFeed(context.Background(), "Kittens")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Contains(t, items[0].Content, "https://i.redd.it/kit10.gif")
}

func TestRSSClientErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/r/garbage/.rss":
			w.Write([]byte("this is not a feed"))
		case "/r/banned/.rss":
			w.WriteHeader(http.StatusForbidden)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := collector.NewRSSClient(server.URL, "reddit-gifs-test", 0)
	ctx := context.Background()

	_, err := client.FetchFeed(ctx, "garbage")
	assert.Error(t, err)

	_, err = client.FetchFeed(ctx, "banned")
	assert.ErrorContains(t, err, "403")

	_, err = client.FetchFeed(ctx, "missing")
	assert.ErrorContains(t, err, "404")
}

func TestRSSClientUnreachableHost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := server.URL
	server.Close()

	client := collector.NewRSSClient(base, "reddit-gifs-test", 0)
	_, err := client.FetchFeed(context.Background(), "cats")
	assert.Error(t, err)
}

func TestPublicClientFetchFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/r/cats/new.json", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"children":[
			{"data":{"url":"https://i.redd.it/pub1.gif","selftext":""}},
			{"data":{"url":"https://www.reddit.com/r/cats/comments/t/","selftext":"see https://i.redd.it/pub2.gif"}}
		]}}`))
	}))
	defer server.Close()

	client, err := collector.NewPublicClient(server.URL, "reddit-gifs-test", 10, 0)
	require.NoError(t, err)

	items, err := client.FetchFeed(context.Background(), "cats")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "https://i.redd.it/pub1.gif", items[0].Link)
	assert.Contains(t, items[1].Content, "https://i.redd.it/pub2.gif")
}

func TestAPIClientFetchFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/r/cats/new") {
			http.NotFound(w, r)
			return
		}
		assert.Equal(t, "reddit-gifs-test", r.Header.Get("User-Agent"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"kind":"Listing","data":{"after":null,"before":null,"children":[
			{"kind":"t3","data":{"id":"p1","name":"t3_p1","title":"zoom","url":"https://i.redd.it/api1.gif","selftext":""}},
			{"kind":"t3","data":{"id":"p2","name":"t3_p2","title":"text","url":"https://www.reddit.com/r/cats/comments/p2/","selftext":"see https://i.redd.it/api2.gif"}}
		]}}`))
	}))
	defer server.Close()

	client, err := collector.NewAPIClient(server.URL, "reddit-gifs-test", 10, 0)
	require.NoError(t, err)

	items, err := client.FetchFeed(context.Background(), "cats")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "https://i.redd.it/api1.gif", items[0].Link)
	assert.Empty(t, items[0].Content)
	assert.Equal(t, "see https://i.redd.it/api2.gif", items[1].Content)
	assert.Equal(t, "https://www.reddit.com/r/cats/comments/p2/", items[1].Link)

	_, err = client.FetchFeed(context.Background(), "dogs")
	assert.Error(t, err)
}

func TestPublicClientRequiresUserAgent(t *testing.T) {
	_, err := collector.NewPublicClient("https://www.reddit.com", "", 25, 0)
	assert.Error(t, err)
}

func TestMockClient(t *testing.T) {
	client := collector.NewMockClient()
	items, err := client.FetchFeed(context.Background(), "cats")
	require.NoError(t, err)
	assert.Len(t, items, client.PerSource+1)
	assert.Len(t, extract.Candidates("cats", items), client.PerSource)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = client.FetchFeed(ctx, "cats")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewCollector(t *testing.T) {
	base := config.Config{
		UserAgent:   "reddit-gifs-test",
		FeedBaseURL: "https://www.reddit.com",
		FeedLimit:   25,
	}

	tests := []struct {
		mode    string
		wantErr bool
		want    any
	}{
		{mode: "rss", want: &collector.RSSClient{}},
		{mode: "api", want: &collector.APIClient{}},
		{mode: "public", want: &collector.PublicClient{}},
		{mode: "mock", want: &collector.MockClient{}},
		{mode: "scrape-everything", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			cfg := base
			cfg.Mode = tt.mode
			c, err := collector.NewCollector(cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, c)
		})
	}
}
