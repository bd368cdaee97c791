package calendar

import (
	"fmt"
	"strconv"

	tb "gopkg.in/telebot.v3"

	"github.com/nikmy/rangepicker/pkg/rangepicker"
)

func (w *Widget) button(text string, a Action) tb.InlineButton {
	return tb.InlineButton{
		Unique: Unique,
		Text:   text,
		Data:   EncodeCallback(w.generation, a),
	}
}

func ignored(text string) tb.InlineButton {
	return tb.InlineButton{
		Unique: Unique,
		Text:   text,
		Data:   NoopAction().String(),
	}
}

func pageButton(w *Widget, text string, page int) tb.InlineButton {
	if !w.state.InBounds(page) {
		return ignored(blankText)
	}
	return w.button(text, PageAction(page))
}

// DayText marks endpoints as [d], range days as ·d·, today as (d)
// and days that cannot be picked as ×.
func DayText(s *rangepicker.State, d rangepicker.CalendarDate) string {
	n := strconv.Itoa(d.DayOfMonth)

	switch {
	case s.IsStart(d.Timestamp) || s.IsEnd(d.Timestamp):
		return "[" + n + "]"
	case s.IsInRange(d.Timestamp):
		return "·" + n + "·"
	case !d.IsSelectable:
		return blockedText
	case s.IsToday(d.Timestamp):
		return "(" + n + ")"
	default:
		return n
	}
}

func dayButton(w *Widget, d rangepicker.CalendarDate) tb.InlineButton {
	text := DayText(w.state, d)
	if !d.IsSelectable {
		return ignored(text)
	}
	return w.button(text, TapAction(d.Timestamp))
}

func selectionButton(w *Widget, label string, d *rangepicker.CalendarDate) tb.InlineButton {
	value := w.texts.selectDate
	if d != nil {
		value = rangepicker.Label(w.formatter, d.Timestamp, rangepicker.DayMonthYear)
	}
	return ignored(fmt.Sprintf("%s: %s", label, value))
}
