package calendar

import (
	tb "gopkg.in/telebot.v3"

	"github.com/nikmy/rangepicker/pkg/rangepicker"
)

func HeaderLayout(w *Widget) error {
	page := w.state.DisplayedPage()
	month := w.state.DisplayedMonthDate()

	w.addRow(
		pageButton(w, prevText, page-1),
		ignored(rangepicker.Label(w.formatter, month.Timestamp, rangepicker.MonthYear)),
		pageButton(w, nextText, page+1),
	)
	return nil
}

func WeekdaysLayout(w *Widget) error {
	row := make([]tb.InlineButton, 0, 7)
	for _, wd := range rangepicker.WeekdayLabels(w.formatter) {
		row = append(row, ignored(wd))
	}

	w.addRow(row...)
	return nil
}

func DaysLayout(w *Widget) error {
	month := w.state.DisplayedMonth()
	weekdayNumber := int(month.Weekday()+6) % 7

	row := make([]tb.InlineButton, 0, 7)
	for i := 0; i < weekdayNumber; i++ {
		row = append(row, ignored(blankText))
	}

	for d := range w.state.DaysInMonth(month) {
		if len(row) == 7 {
			w.addRow(row...)
			row = make([]tb.InlineButton, 0, 7)
		}
		row = append(row, dayButton(w, d))
	}

	for len(row) < 7 {
		row = append(row, ignored(blankText))
	}
	w.addRow(row...)

	return nil
}

func FooterLayout(w *Widget) error {
	w.addRow(
		selectionButton(w, w.texts.from, w.state.SelectedStart()),
		selectionButton(w, w.texts.to, w.state.SelectedEnd()),
	)
	return nil
}

func ActionsLayout(w *Widget) error {
	var row []tb.InlineButton
	if w.state.SelectedStart() != nil {
		row = append(row, w.button(w.texts.done, ConfirmAction()))
	}
	row = append(row, w.button(w.texts.cancel, CancelAction()))

	w.addRow(row...)
	return nil
}
