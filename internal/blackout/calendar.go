package blackout

import (
	"time"

	"github.com/teambition/rrule-go"

	"github.com/nikmy/rangepicker/pkg/errors"
)

const maxOccurrencesPerEvent = 5000

// Calendar is an immutable set of blocked UTC days. It allows every day
// that is not blocked.
type Calendar struct {
	days map[int64]struct{}
}

func Empty() *Calendar {
	return &Calendar{days: map[int64]struct{}{}}
}

func (c *Calendar) IsSelectableDate(utcMillis int64) bool {
	_, blocked := c.days[dayKey(time.UnixMilli(utcMillis))]
	return !blocked
}

func (c *Calendar) Blocked() int {
	return len(c.days)
}

// Window bounds recurrence expansion; both ends are inclusive.
type Window struct {
	From time.Time
	To   time.Time
}

// Build blocks every day touched by events inside w.
func Build(events []Event, w Window) (*Calendar, error) {
	if w.To.Before(w.From) {
		return nil, errors.New("blackout window ends before it starts")
	}

	c := Empty()
	for _, ev := range events {
		for _, occ := range occurrences(ev, w) {
			c.block(occ, occ.Add(ev.End.Sub(ev.Start)), ev.AllDay)
		}
	}
	return c, nil
}

// Merge unions the blocked days of cs.
func Merge(cs ...*Calendar) *Calendar {
	merged := Empty()
	for _, c := range cs {
		for d := range c.days {
			merged.days[d] = struct{}{}
		}
	}
	return merged
}

func occurrences(ev Event, w Window) []time.Time {
	if ev.RRule == "" {
		if ev.End.Before(w.From) || ev.Start.After(w.To) {
			return nil
		}
		return []time.Time{ev.Start}
	}

	r, err := rrule.StrToRRule(ev.RRule)
	if err != nil {
		return []time.Time{ev.Start}
	}
	r.DTStart(ev.Start)

	var set rrule.Set
	set.RRule(r)
	for _, ex := range ev.ExDates {
		set.ExDate(ex.In(ev.Start.Location()))
	}

	occ := set.Between(w.From.In(ev.Start.Location()), w.To.In(ev.Start.Location()), true)
	if len(occ) > maxOccurrencesPerEvent {
		occ = occ[:maxOccurrencesPerEvent]
	}
	return occ
}

// block marks days in [start, end). Timed events block the day they end on
// unless they end exactly at midnight.
func (c *Calendar) block(start, end time.Time, allDay bool) {
	first := dayOf(start)
	last := dayOf(end)
	if allDay || end.Equal(last) {
		last = last.AddDate(0, 0, -1)
	}
	if last.Before(first) {
		last = first
	}

	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		c.days[d.UnixMilli()] = struct{}{}
	}
}

// dayOf is the UTC day of t.
func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayKey(t time.Time) int64 {
	return dayOf(t).UnixMilli()
}
