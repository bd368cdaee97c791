package blackout

import (
	"context"
	"io"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/nikmy/rangepicker/pkg/errors"
	"github.com/nikmy/rangepicker/pkg/logger"
	"github.com/nikmy/rangepicker/pkg/rangepicker"
)

// Source is an ICS feed read either from URL or from Path.
type Source struct {
	ID   string `yaml:"id"`
	URL  string `yaml:"url"`
	Path string `yaml:"path"`
}

type Config struct {
	Sources []Source `yaml:"sources"`

	// Refresh is a cron schedule, e.g. "*/30 * * * *". Empty disables refreshing.
	Refresh string `yaml:"refresh"`

	PastDays   int           `yaml:"pastDays"`
	FutureDays int           `yaml:"futureDays"`
	Timeout    time.Duration `yaml:"timeout"`
}

const (
	defaultPastDays   = 31
	defaultFutureDays = 5 * 365
	defaultTimeout    = 15 * time.Second
)

// Provider keeps the latest blocked days calendar. Every refresh replaces
// the calendar instead of mutating it, so states built earlier keep theirs.
type Provider struct {
	cfg    Config
	log    logger.Logger
	clock  rangepicker.Clock
	client *http.Client

	current atomic.Pointer[Calendar]
}

func NewProvider(log logger.Logger, cfg Config, clock rangepicker.Clock) *Provider {
	if cfg.PastDays <= 0 {
		cfg.PastDays = defaultPastDays
	}
	if cfg.FutureDays <= 0 {
		cfg.FutureDays = defaultFutureDays
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if clock == nil {
		clock = rangepicker.ClockFunc(time.Now)
	}

	p := &Provider{
		cfg:    cfg,
		log:    log.With("blackout"),
		clock:  clock,
		client: &http.Client{Timeout: cfg.Timeout},
	}
	p.current.Store(Empty())
	return p
}

func (p *Provider) Current() *Calendar {
	return p.current.Load()
}

// Refresh rebuilds the calendar from all sources. Broken sources are
// skipped; when every source fails the previous calendar is kept.
func (p *Provider) Refresh(ctx context.Context) error {
	if len(p.cfg.Sources) == 0 {
		return nil
	}

	now := p.clock.Now()
	window := Window{
		From: now.AddDate(0, 0, -p.cfg.PastDays),
		To:   now.AddDate(0, 0, p.cfg.FutureDays),
	}

	var (
		errs  []error
		built []*Calendar
	)

	for _, src := range p.cfg.Sources {
		c, err := p.load(ctx, src, window)
		if err != nil {
			errs = append(errs, errors.WrapFailf(err, "load source %q", src.ID))
			continue
		}
		built = append(built, c)
	}

	if len(built) == 0 {
		return errors.Join(errs...)
	}

	merged := Merge(built...)
	p.current.Store(merged)
	p.log.Infof("blocked %d days from %d sources", merged.Blocked(), len(built))

	return errors.Join(errs...)
}

// Run refreshes once and then on the configured schedule until ctx is done.
func (p *Provider) Run(ctx context.Context) error {
	if err := p.Refresh(ctx); err != nil {
		p.log.Warn(err)
	}

	if p.cfg.Refresh == "" {
		return nil
	}

	c := cron.New()
	_, err := c.AddFunc(p.cfg.Refresh, func() {
		if err := p.Refresh(ctx); err != nil {
			p.log.Warn(err)
		}
	})
	if err != nil {
		return errors.WrapFailf(err, "schedule refresh %q", p.cfg.Refresh)
	}

	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}

func (p *Provider) load(ctx context.Context, src Source, w Window) (*Calendar, error) {
	body, err := p.fetch(ctx, src)
	if err != nil {
		return nil, err
	}

	events, err := ParseICS(body)
	if err != nil {
		return nil, err
	}

	return Build(events, w)
}

func (p *Provider) fetch(ctx context.Context, src Source) ([]byte, error) {
	if src.Path != "" {
		body, err := os.ReadFile(src.Path)
		return body, errors.WrapFailf(err, "read %s", src.Path)
	}
	if src.URL == "" {
		return nil, errors.New("source has neither url nor path")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return nil, errors.WrapFail(err, "build request")
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.WrapFail(err, "do request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	return body, errors.WrapFail(err, "read body")
}
