package sitemap

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

var defaultEndpoints = []string{
	"https://www.google.com/ping?sitemap=%s",
	"https://www.bing.com/ping?sitemap=%s",
}

// Pinger notifies search-engine crawlers that the sitemap changed.
// Pings are best-effort: failures are logged and never returned.
type Pinger struct {
	endpoints []string
	client    *http.Client
}

// NewPinger builds a pinger for the standard crawler endpoints; tests pass
// their own. Each endpoint is a format string receiving the escaped sitemap
// URL.
func NewPinger(endpoints ...string) *Pinger {
	if len(endpoints) == 0 {
		endpoints = defaultEndpoints
	}
	return &Pinger{
		endpoints: endpoints,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Ping submits sitemapURL to every crawler endpoint in the background and
// returns immediately.
func (p *Pinger) Ping(sitemapURL string) {
	go p.pingAll(sitemapURL)
}

// PingWait is the synchronous variant, used by the scheduler.
func (p *Pinger) PingWait(ctx context.Context, sitemapURL string) {
	p.pingAllCtx(ctx, sitemapURL)
}

func (p *Pinger) pingAll(sitemapURL string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	p.pingAllCtx(ctx, sitemapURL)
}

func (p *Pinger) pingAllCtx(ctx context.Context, sitemapURL string) {
	for _, endpoint := range p.endpoints {
		target := fmt.Sprintf(endpoint, url.QueryEscape(sitemapURL))

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			slog.Warn("sitemap ping request failed", "endpoint", endpoint, "error", err)
			continue
		}

		resp, err := p.client.Do(req)
		if err != nil {
			slog.Warn("sitemap ping failed", "endpoint", endpoint, "error", err)
			continue
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			slog.Warn("sitemap ping rejected", "endpoint", endpoint, "status", resp.StatusCode)
		}
	}
}
