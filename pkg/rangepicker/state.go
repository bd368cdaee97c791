package rangepicker

import (
	"iter"
	"slices"
	"time"

	"github.com/nikmy/rangepicker/pkg/builder"
)

type YearRange struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

var DefaultYearRange = YearRange{Min: 1900, Max: 2100}

func (r YearRange) Contains(year int) bool {
	return year >= r.Min && year <= r.Max
}

// clamp moves month into the range: to January of Min or December of Max.
func (r YearRange) clamp(month time.Time) time.Time {
	switch {
	case month.Year() < r.Min:
		return time.Date(r.Min, time.January, 1, 0, 0, 0, 0, time.UTC)
	case month.Year() > r.Max:
		return time.Date(r.Max, time.December, 1, 0, 0, 0, 0, time.UTC)
	default:
		return month
	}
}

// Listener is notified synchronously after every mutation of a State.
type Listener func(s *State)

// State is the range picker model. It is owned by a single writer and
// must not be mutated concurrently.
type State struct {
	start *CalendarDate
	end   *CalendarDate

	anchor      time.Time
	displayed   time.Time
	initialPage int
	today       CalendarDate

	years      YearRange
	selectable SelectableDates
	clock      Clock

	listeners []*Listener

	initStart *int64
	initEnd   *int64
	initMonth *int64
}

type Option = func(s *State)

func WithSelection(startMillis, endMillis *int64) Option {
	return func(s *State) {
		s.initStart, s.initEnd = startMillis, endMillis
	}
}

func WithDisplayedMonth(utcMillis int64) Option {
	return func(s *State) {
		s.initMonth = &utcMillis
	}
}

func WithYearRange(min, max int) Option {
	return func(s *State) {
		s.years = YearRange{Min: min, Max: max}
	}
}

func WithSelectable(sel SelectableDates) Option {
	return func(s *State) {
		if sel != nil {
			s.selectable = sel
		}
	}
}

func WithClock(c Clock) Option {
	return func(s *State) {
		if c != nil {
			s.clock = c
		}
	}
}

func New(opts ...Option) *State {
	s, _ := builder.New[State]().
		Use(defaults).
		UseAll(opts...).
		Use(setup).
		Get()
	return s
}

func defaults(s *State) {
	s.years = DefaultYearRange
	s.selectable = AllDates
	s.clock = systemClock{}
}

func setup(s *State) {
	if s.initStart != nil && s.initEnd != nil {
		start := DateOfMillis(*s.initStart, s.selectable)
		end := DateOfMillis(*s.initEnd, s.selectable)
		s.start, s.end = &start, &end
	}

	now := s.clock.Now()

	anchor := now
	if s.initMonth != nil {
		anchor = time.UnixMilli(*s.initMonth)
	}

	s.anchor = s.years.clamp(beginningOfMonth(anchor))
	s.displayed = s.anchor
	s.initialPage = InitialPage(s.anchor, s.years.Min)
	s.today = DateOf(now, s.selectable)

	s.initStart, s.initEnd, s.initMonth = nil, nil, nil
}

func (s *State) SelectedStart() *CalendarDate { return copyDate(s.start) }
func (s *State) SelectedEnd() *CalendarDate   { return copyDate(s.end) }

func (s *State) DisplayedMonth() time.Time        { return s.displayed }
func (s *State) InitialPage() int                 { return s.initialPage }
func (s *State) Today() CalendarDate              { return s.today }
func (s *State) YearRange() YearRange             { return s.years }
func (s *State) Selectable() SelectableDates      { return s.selectable }
func (s *State) DisplayedMonthDate() CalendarDate { return DateOf(s.displayed, s.selectable) }

// SetSelection overwrites both endpoints. Callers keep start <= end;
// the state does not reorder or validate them.
func (s *State) SetSelection(start, end *CalendarDate) {
	s.start, s.end = copyDate(start), copyDate(end)
	s.notify()
}

// HasRange reports whether two distinct endpoints are selected.
func (s *State) HasRange() bool {
	return s.start != nil && s.end != nil && s.start.Timestamp != s.end.Timestamp
}

func (s *State) IsInRange(timestamp int64) bool {
	return s.HasRange() && timestamp >= s.start.Timestamp && timestamp <= s.end.Timestamp
}

func (s *State) IsStart(timestamp int64) bool {
	return s.start != nil && s.start.Timestamp == timestamp
}

func (s *State) IsEnd(timestamp int64) bool {
	return s.end != nil && s.end.Timestamp == timestamp
}

func (s *State) IsToday(timestamp int64) bool {
	return s.today.Timestamp == timestamp
}

func (s *State) CalendarForPage(page int) time.Time {
	return MonthForPage(page, int(s.anchor.Month())-1, s.anchor.Year(), s.initialPage)
}

func (s *State) PageFor(month time.Time) int {
	return PageForMonth(month, int(s.anchor.Month())-1, s.anchor.Year(), s.initialPage)
}

func (s *State) DisplayedPage() int {
	return s.PageFor(s.displayed)
}

// InBounds reports whether page maps to a month inside the year range.
func (s *State) InBounds(page int) bool {
	return s.years.Contains(s.CalendarForPage(page).Year())
}

// SetDisplayedMonth shows the month of page. Pages outside the year range
// are clamped to its first or last month.
func (s *State) SetDisplayedMonth(page int) {
	s.displayed = s.years.clamp(s.CalendarForPage(page))
	s.notify()
}

// DaysInMonth enumerates every day of month's month. The sequence
// can be iterated any number of times.
func (s *State) DaysInMonth(month time.Time) iter.Seq[CalendarDate] {
	first := beginningOfMonth(month)
	n := daysIn(first)
	sel := s.selectable

	return func(yield func(CalendarDate) bool) {
		for i := 0; i < n; i++ {
			if !yield(DateOf(first.AddDate(0, 0, i), sel)) {
				return
			}
		}
	}
}

func (s *State) DisplayedMonthDates() []CalendarDate {
	dates := make([]CalendarDate, 0, 31)
	for d := range s.DaysInMonth(s.displayed) {
		dates = append(dates, d)
	}
	return dates
}

// Subscribe registers l and returns a function removing it.
func (s *State) Subscribe(l Listener) (unsubscribe func()) {
	entry := &l
	s.listeners = append(s.listeners, entry)

	return func() {
		s.listeners = slices.DeleteFunc(slices.Clone(s.listeners), func(e *Listener) bool {
			return e == entry
		})
	}
}

// notify calls the listeners registered when the mutation happened,
// even if some of them unsubscribe on the way.
func (s *State) notify() {
	for _, l := range slices.Clone(s.listeners) {
		(*l)(s)
	}
}

func copyDate(d *CalendarDate) *CalendarDate {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
