package calendar

import (
	tb "gopkg.in/telebot.v3"

	"github.com/nikmy/rangepicker/pkg/builder"
	"github.com/nikmy/rangepicker/pkg/errors"
	"github.com/nikmy/rangepicker/pkg/rangepicker"
)

// Widget renders a range picker state as an inline keyboard.
type Widget struct {
	state      *rangepicker.State
	generation string
	formatter  rangepicker.Formatter
	texts      texts
	keyboard   [][]tb.InlineButton
}

func (w *Widget) Keyboard() [][]tb.InlineButton {
	return w.keyboard
}

func (w *Widget) Markup() *tb.ReplyMarkup {
	return &tb.ReplyMarkup{InlineKeyboard: w.keyboard}
}

func (w *Widget) Prompt() string {
	return w.texts.prompt
}

type Setter func(w *Widget)

func AsState(s *rangepicker.State) Setter {
	return func(w *Widget) {
		w.state = s
	}
}

func AsLanguage(lang string) Setter {
	return func(w *Widget) {
		w.texts = textsFor(lang)
		if w.formatter == nil {
			w.formatter = rangepicker.NewFormatter(lang)
		}
	}
}

func AsFormatter(f rangepicker.Formatter) Setter {
	return func(w *Widget) {
		w.formatter = f
	}
}

// AsGeneration tags every button with id, so presses on an older
// picker message can be told apart from the current one.
func AsGeneration(id string) Setter {
	return func(w *Widget) {
		w.generation = id
	}
}

func requireState(w *Widget) error {
	if w.state == nil {
		return errors.Fail("render calendar without state")
	}
	return nil
}

// New renders the whole picker: header, weekdays, days, footer and actions.
func New(state *rangepicker.State, lang string, setters ...func(w *Widget)) (*Widget, error) {
	return builder.New[Widget]().
		Use(AsState(state)).
		UseAll(setters...).
		Use(AsLanguage(lang)).
		MaybeUse(requireState).
		MaybeUse(HeaderLayout).
		MaybeUse(WeekdaysLayout).
		MaybeUse(DaysLayout).
		MaybeUse(FooterLayout).
		MaybeUse(ActionsLayout).
		Get()
}

func (w *Widget) addRow(row ...tb.InlineButton) {
	w.keyboard = append(w.keyboard, row)
}
