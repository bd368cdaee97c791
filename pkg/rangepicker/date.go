package rangepicker

import "time"

// CalendarDate is a single day snapshot. Timestamp is always the UTC
// midnight of (Year, Month, DayOfMonth); Month is zero-based.
type CalendarDate struct {
	DayOfMonth   int   `json:"day" bson:"day"`
	Month        int   `json:"month" bson:"month"`
	Year         int   `json:"year" bson:"year"`
	Timestamp    int64 `json:"timestamp" bson:"timestamp"`
	IsSelectable bool  `json:"selectable" bson:"selectable"`
}

// DateOf truncates t to its UTC day and asks sel whether that day can be picked.
func DateOf(t time.Time, sel SelectableDates) CalendarDate {
	day := beginningOfDay(t)
	ts := day.UnixMilli()

	return CalendarDate{
		DayOfMonth:   day.Day(),
		Month:        int(day.Month()) - 1,
		Year:         day.Year(),
		Timestamp:    ts,
		IsSelectable: isSelectable(sel, ts),
	}
}

func DateOfMillis(utcMillis int64, sel SelectableDates) CalendarDate {
	return DateOf(time.UnixMilli(utcMillis), sel)
}

func (d CalendarDate) Time() time.Time {
	return time.UnixMilli(d.Timestamp).UTC()
}

func (d CalendarDate) Equal(other CalendarDate) bool {
	return d.Timestamp == other.Timestamp
}
