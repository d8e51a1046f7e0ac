package probe

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// HTTPProber checks reachability with a HEAD request.
type HTTPProber struct {
	httpClient *http.Client
	logger     *slog.Logger
}

func NewHTTPProber(timeout time.Duration, logger *slog.Logger) *HTTPProber {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPProber{
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// NewHTTPProberWithClient uses client as is, for callers that need a custom
// transport.
func NewHTTPProberWithClient(client *http.Client, logger *slog.Logger) *HTTPProber {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPProber{httpClient: client, logger: logger}
}

// Reachable reports whether a HEAD to url completes with a 2xx status.
// Any error, including a cancelled context, counts as unreachable.
func (p *HTTPProber) Reachable(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		p.logger.Debug("Probe request invalid", "url", url, "err", err)
		return false
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.logger.Debug("Probe failed", "url", url, "err", err)
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		p.logger.Debug("Probe status", "url", url, "status", resp.StatusCode)
		return false
	}
	return true
}
