package api

import (
	"github.com/nikmy/rangepicker/pkg/rangepicker"
)

type dayView struct {
	Timestamp  int64 `json:"timestamp"`
	Day        int   `json:"day"`
	Selectable bool  `json:"selectable"`
	Today      bool  `json:"today"`
	InRange    bool  `json:"inRange"`
	Start      bool  `json:"start"`
	End        bool  `json:"end"`
}

type monthView struct {
	Page     int       `json:"page"`
	Month    int64     `json:"month"`
	Label    string    `json:"label"`
	Weekdays [7]string `json:"weekdays"`
	Days     []dayView `json:"days"`
}

type tapRequest struct {
	Snapshot  rangepicker.Snapshot `json:"snapshot"`
	Timestamp *int64               `json:"timestamp"`
}

type tapResponse struct {
	Snapshot rangepicker.Snapshot `json:"snapshot"`
	Phase    string               `json:"phase"`
	Accepted bool                 `json:"accepted"`
	Days     []dayView            `json:"days"`
}

func daysOf(s *rangepicker.State) []dayView {
	dates := s.DisplayedMonthDates()

	days := make([]dayView, 0, len(dates))
	for _, d := range dates {
		days = append(days, dayView{
			Timestamp:  d.Timestamp,
			Day:        d.DayOfMonth,
			Selectable: d.IsSelectable,
			Today:      s.IsToday(d.Timestamp),
			InRange:    s.IsInRange(d.Timestamp),
			Start:      s.IsStart(d.Timestamp),
			End:        s.IsEnd(d.Timestamp),
		})
	}
	return days
}

func monthOf(s *rangepicker.State, f rangepicker.Formatter) monthView {
	month := s.DisplayedMonth().UnixMilli()
	return monthView{
		Page:     s.DisplayedPage(),
		Month:    month,
		Label:    rangepicker.Label(f, month, rangepicker.MonthYear),
		Weekdays: rangepicker.WeekdayLabels(f),
		Days:     daysOf(s),
	}
}
