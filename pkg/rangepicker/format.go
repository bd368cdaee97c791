package rangepicker

import (
	"fmt"
	"time"
)

type DateFormat int

const (
	MonthYear DateFormat = iota
	DayMonthYear
	Weekday
)

func (f DateFormat) Pattern() string {
	switch f {
	case MonthYear:
		return "MMMM yyyy"
	case DayMonthYear:
		return "dd MMM yyyy"
	case Weekday:
		return "EE"
	default:
		return ""
	}
}

// Formatter renders labels for UTC midnight timestamps.
type Formatter interface {
	Format(utcMillis int64, f DateFormat) string
}

type names struct {
	months      [12]string
	shortMonths [12]string
	weekdays    [7]string // starting from Sunday
}

var (
	enNames = names{
		months: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		shortMonths: [12]string{
			"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
		},
		weekdays: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	}

	ruNames = names{
		months: [12]string{
			"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
			"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь",
		},
		shortMonths: [12]string{
			"янв", "фев", "мар", "апр", "мая", "июн",
			"июл", "авг", "сен", "окт", "ноя", "дек",
		},
		weekdays: [7]string{"Вс", "Пн", "Вт", "Ср", "Чт", "Пт", "Сб"},
	}
)

// NewFormatter returns the formatter for lang, falling back to English.
func NewFormatter(lang string) Formatter {
	if lang == "ru" {
		return ruNames
	}
	return enNames
}

func (n names) Format(utcMillis int64, f DateFormat) string {
	t := time.UnixMilli(utcMillis).UTC()

	switch f {
	case MonthYear:
		return fmt.Sprintf("%s %d", n.months[t.Month()-1], t.Year())
	case DayMonthYear:
		return fmt.Sprintf("%02d %s %d", t.Day(), n.shortMonths[t.Month()-1], t.Year())
	case Weekday:
		return n.weekdays[t.Weekday()]
	default:
		panic(fmt.Sprintf("unknown date format %d", f))
	}
}

// Label formats utcMillis with f, yielding "" if the formatter fails.
func Label(f Formatter, utcMillis int64, format DateFormat) (label string) {
	if f == nil {
		return ""
	}

	defer func() {
		if recover() != nil {
			label = ""
		}
	}()

	return f.Format(utcMillis, format)
}

// WeekdayLabels returns short weekday names starting from Monday.
func WeekdayLabels(f Formatter) [7]string {
	// 1970-01-05 is a Monday
	monday := time.Date(1970, time.January, 5, 0, 0, 0, 0, time.UTC)

	var labels [7]string
	for i := range labels {
		labels[i] = Label(f, monday.Add(time.Duration(i)*day).UnixMilli(), Weekday)
	}
	return labels
}
