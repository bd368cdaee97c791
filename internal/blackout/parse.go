package blackout

import (
	"bytes"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/nikmy/rangepicker/pkg/errors"
)

// Event is a VEVENT reduced to what blocking needs.
type Event struct {
	UID     string
	Summary string

	Start  time.Time
	End    time.Time
	AllDay bool

	RRule   string
	ExDates []time.Time
}

// ParseICS reads every VEVENT of body. Events without DTSTART are skipped.
func ParseICS(body []byte) ([]Event, error) {
	if len(body) == 0 {
		return nil, errors.New("empty ICS body")
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, errors.WrapFail(err, "parse calendar")
	}

	events := make([]Event, 0, len(cal.Events()))
	for _, ve := range cal.Events() {
		ev, ok := parseVEvent(ve)
		if ok {
			events = append(events, ev)
		}
	}

	return events, nil
}

func parseVEvent(ve *ical.VEvent) (Event, bool) {
	var ev Event

	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
		ev.UID = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		ev.Summary = p.Value
	}

	dtStart := ve.GetProperty(ical.ComponentPropertyDtStart)
	if dtStart == nil {
		return ev, false
	}

	start, allDay, err := parseICSTime(dtStart.Value, tzid(dtStart))
	if err != nil {
		return ev, false
	}
	ev.Start, ev.AllDay = start, allDay

	if dtEnd := ve.GetProperty(ical.ComponentPropertyDtEnd); dtEnd != nil {
		if end, _, err := parseICSTime(dtEnd.Value, tzid(dtEnd)); err == nil && end.After(start) {
			ev.End = end
		}
	}
	if ev.End.IsZero() {
		ev.End = start
		if allDay {
			ev.End = start.AddDate(0, 0, 1)
		}
	}

	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		ev.RRule = p.Value
	}

	for _, p := range ve.GetProperties(ical.ComponentPropertyExdate) {
		for _, part := range strings.Split(p.Value, ",") {
			if t, _, err := parseICSTime(part, tzid(p)); err == nil {
				ev.ExDates = append(ev.ExDates, t)
			}
		}
	}

	return ev, true
}

func tzid(p *ical.IANAProperty) string {
	if p.ICalParameters == nil {
		return ""
	}
	if vs := p.ICalParameters["TZID"]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// parseICSTime handles DATE, UTC DATE-TIME and floating DATE-TIME values.
// Floating times without a known TZID are read as UTC.
func parseICSTime(v, tz string) (time.Time, bool, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, false, errors.New("empty time value")
	}

	loc := time.UTC
	if tz != "" {
		if l, err := time.LoadLocation(tz); err == nil {
			loc = l
		}
	}

	switch {
	case strings.HasSuffix(v, "Z"):
		t, err := time.Parse("20060102T150405Z", v)
		return t, false, err
	case strings.Contains(v, "T"):
		t, err := time.ParseInLocation("20060102T150405", v, loc)
		return t, false, err
	default:
		t, err := time.ParseInLocation("20060102", v, time.UTC)
		return t, true, err
	}
}
