package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"vitrine/internal/sitemap"
)

// Scheduler re-submits the sitemap to crawler ping endpoints on a cron
// schedule, so listings published while a crawler was unreachable still get
// picked up.
type Scheduler struct {
	cron       *cron.Cron
	pinger     *sitemap.Pinger
	sitemapURL string
}

func New(pinger *sitemap.Pinger, sitemapURL string) *Scheduler {
	return &Scheduler{
		cron:       cron.New(),
		pinger:     pinger,
		sitemapURL: sitemapURL,
	}
}

func (s *Scheduler) Start(ctx context.Context, spec string) error {
	if spec == "" {
		slog.Info("sitemap re-ping disabled")
		return nil
	}

	_, err := s.cron.AddFunc(spec, func() {
		slog.Info("re-submitting sitemap to crawlers")
		s.pinger.PingWait(ctx, s.sitemapURL)
	})
	if err != nil {
		return fmt.Errorf("invalid cron expression: %w", err)
	}

	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}
