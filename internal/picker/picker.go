package picker

import (
	"time"

	"github.com/nikmy/rangepicker/internal/blackout"
	"github.com/nikmy/rangepicker/pkg/errors"
	"github.com/nikmy/rangepicker/pkg/rangepicker"
)

type Config struct {
	Language string `yaml:"language"`

	// PastDisabled forbids picking days before today.
	PastDisabled bool `yaml:"pastDisabled"`

	YearMin int `yaml:"yearMin"`
	YearMax int `yaml:"yearMax"`
}

type Blocked interface {
	Current() *blackout.Calendar
}

// Factory builds picker states sharing one configuration, the blocked
// days provider and the clock.
type Factory struct {
	cfg     Config
	blocked Blocked
	clock   rangepicker.Clock
}

func NewFactory(cfg Config, blocked Blocked, clock rangepicker.Clock) *Factory {
	if cfg.Language == "" {
		cfg.Language = "en"
	}
	if cfg.YearMin == 0 && cfg.YearMax == 0 {
		cfg.YearMin = rangepicker.DefaultYearRange.Min
		cfg.YearMax = rangepicker.DefaultYearRange.Max
	}
	if clock == nil {
		clock = rangepicker.ClockFunc(time.Now)
	}
	return &Factory{cfg: cfg, blocked: blocked, clock: clock}
}

func (f *Factory) Language() string {
	return f.cfg.Language
}

func (f *Factory) Years() rangepicker.YearRange {
	return rangepicker.YearRange{Min: f.cfg.YearMin, Max: f.cfg.YearMax}
}

func (f *Factory) Now() time.Time {
	return f.clock.Now()
}

// Selectable is evaluated per call: a state keeps the blocked days that
// were current when it was built.
func (f *Factory) Selectable() rangepicker.SelectableDates {
	var preds []rangepicker.SelectableDates

	if f.blocked != nil {
		if c := f.blocked.Current(); c != nil {
			preds = append(preds, c)
		}
	}

	if f.cfg.PastDisabled {
		today := rangepicker.DateOf(f.clock.Now(), nil)
		preds = append(preds, rangepicker.NotBefore(today.Timestamp))
	}

	return rangepicker.AllOf(preds...)
}

// New builds a fresh state showing the current month.
func (f *Factory) New(opts ...rangepicker.Option) *rangepicker.State {
	base := []rangepicker.Option{
		rangepicker.WithYearRange(f.cfg.YearMin, f.cfg.YearMax),
		rangepicker.WithSelectable(f.Selectable()),
		rangepicker.WithClock(f.clock),
	}
	return rangepicker.New(append(base, opts...)...)
}

// Restore rebuilds a state from snap. Unlike rangepicker.Restore it keeps
// a start without an end, so a half-made selection survives between taps.
func (f *Factory) Restore(snap rangepicker.Snapshot) *rangepicker.State {
	s := rangepicker.Restore(
		snap,
		rangepicker.WithSelectable(f.Selectable()),
		rangepicker.WithClock(f.clock),
	)

	if snap.Start != nil && snap.End == nil {
		start := rangepicker.DateOfMillis(*snap.Start, s.Selectable())
		s.SetSelection(&start, nil)
	}

	return s
}

// Validate rejects snapshots coming from untrusted clients.
func Validate(snap rangepicker.Snapshot) error {
	if snap.YearMin <= 0 || snap.YearMax < snap.YearMin {
		return errors.Errorf("bad year range [%d, %d]", snap.YearMin, snap.YearMax)
	}

	month := time.UnixMilli(snap.DisplayedMonth).UTC()
	if !(rangepicker.YearRange{Min: int(snap.YearMin), Max: int(snap.YearMax)}).Contains(month.Year()) {
		return errors.Errorf("displayed month %s is outside the year range", month.Format(time.DateOnly))
	}

	return nil
}
