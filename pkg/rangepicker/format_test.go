package rangepicker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatter_Format(t *testing.T) {
	ts := ms(2025, time.January, 5)

	type testcase struct {
		lang   string
		format DateFormat
		want   string
	}

	tests := [...]testcase{
		{lang: "en", format: MonthYear, want: "January 2025"},
		{lang: "en", format: DayMonthYear, want: "05 Jan 2025"},
		{lang: "en", format: Weekday, want: "Sun"},
		{lang: "ru", format: MonthYear, want: "Январь 2025"},
		{lang: "ru", format: DayMonthYear, want: "05 янв 2025"},
		{lang: "ru", format: Weekday, want: "Вс"},
		{lang: "de", format: MonthYear, want: "January 2025"},
	}

	for _, tt := range tests {
		t.Run(tt.lang+"/"+tt.format.Pattern(), func(t *testing.T) {
			require.Equal(t, tt.want, Label(NewFormatter(tt.lang), ts, tt.format))
		})
	}
}

type panickingFormatter struct{}

func (panickingFormatter) Format(int64, DateFormat) string {
	panic("broken")
}

func TestLabel_neverFails(t *testing.T) {
	require.Equal(t, "", Label(nil, 0, MonthYear))
	require.Equal(t, "", Label(panickingFormatter{}, 0, MonthYear))
	require.Equal(t, "", Label(NewFormatter("en"), 0, DateFormat(42)))
}

func TestWeekdayLabels(t *testing.T) {
	require.Equal(t, [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, WeekdayLabels(NewFormatter("en")))
	require.Equal(t, [7]string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"}, WeekdayLabels(NewFormatter("ru")))
}
