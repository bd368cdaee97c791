package calendar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nikmy/rangepicker/pkg/errors"
	"github.com/nikmy/rangepicker/pkg/rangepicker"
)

type ActionKind int

const (
	Noop ActionKind = iota
	Page
	TapDay
	Confirm
	Cancel
)

const (
	cmdNoop    = "n"
	cmdPage    = "p"
	cmdTap     = "t"
	cmdConfirm = "ok"
	cmdCancel  = "x"
)

// Action is a decoded button press.
type Action struct {
	Kind      ActionKind
	Page      int
	Timestamp int64
}

func PageAction(page int) Action       { return Action{Kind: Page, Page: page} }
func TapAction(utcMillis int64) Action { return Action{Kind: TapDay, Timestamp: utcMillis} }
func ConfirmAction() Action            { return Action{Kind: Confirm} }
func CancelAction() Action             { return Action{Kind: Cancel} }
func NoopAction() Action               { return Action{Kind: Noop} }

// String encodes a as button callback data.
func (a Action) String() string {
	switch a.Kind {
	case Page:
		return fmt.Sprintf("%s/%d", cmdPage, a.Page)
	case TapDay:
		return fmt.Sprintf("%s/%d", cmdTap, a.Timestamp)
	case Confirm:
		return cmdConfirm
	case Cancel:
		return cmdCancel
	default:
		return cmdNoop
	}
}

func ParseAction(data string) (Action, error) {
	cmd, arg, hasArg := strings.Cut(data, "/")

	switch cmd {
	case cmdNoop:
		return NoopAction(), nil
	case cmdConfirm:
		return ConfirmAction(), nil
	case cmdCancel:
		return CancelAction(), nil
	}

	if !hasArg {
		return Action{}, errors.Errorf("calendar: wrong callback data %q", data)
	}

	switch cmd {
	case cmdPage:
		page, err := strconv.Atoi(arg)
		if err != nil {
			return Action{}, errors.WrapFailf(err, "parse page from %q", data)
		}
		return PageAction(page), nil
	case cmdTap:
		ts, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return Action{}, errors.WrapFailf(err, "parse timestamp from %q", data)
		}
		return TapAction(ts), nil
	default:
		return Action{}, errors.Errorf("calendar: wrong command %q", cmd)
	}
}

const generationSep = ":"

// EncodeCallback prefixes a with the picker generation, if any.
func EncodeCallback(generation string, a Action) string {
	if generation == "" {
		return a.String()
	}
	return generation + generationSep + a.String()
}

// ParseCallback splits data made by EncodeCallback. Data without a
// generation yields an empty one.
func ParseCallback(data string) (generation string, a Action, err error) {
	if gen, rest, ok := strings.Cut(data, generationSep); ok {
		generation, data = gen, rest
	}

	a, err = ParseAction(data)
	return generation, a, err
}

type Outcome int

const (
	Ignored Outcome = iota
	Redraw
	Done
	Cancelled
)

// Apply runs a against s. Pages outside the year range and
// taps on unselectable days are ignored.
func Apply(s *rangepicker.State, a Action) Outcome {
	switch a.Kind {
	case Page:
		if !s.InBounds(a.Page) || a.Page == s.DisplayedPage() {
			return Ignored
		}
		s.SetDisplayedMonth(a.Page)
		return Redraw
	case TapDay:
		if !rangepicker.TapMillis(s, a.Timestamp) {
			return Ignored
		}
		return Redraw
	case Confirm:
		if s.SelectedStart() == nil {
			return Ignored
		}
		return Done
	case Cancel:
		return Cancelled
	default:
		return Ignored
	}
}
