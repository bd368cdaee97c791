package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vitaliy-ukiru/fsm-telebot"

	"github.com/nikmy/rangepicker/internal/api"
	"github.com/nikmy/rangepicker/internal/ranges"
	"github.com/nikmy/rangepicker/pkg/calendar"
	"github.com/nikmy/rangepicker/pkg/errors"
	"github.com/nikmy/rangepicker/pkg/rangepicker"
)

const (
	initialState = fsm.DefaultState

	pickRangeState fsm.State = "pickRange"
)

// pickerKey holds the open picker while in pickRangeState.
const pickerKey = "picker"

// openedPicker is what a chat keeps between callbacks. Generation changes
// on every /pick, and buttons of older messages carry the old one.
type openedPicker struct {
	Generation string
	Snapshot   rangepicker.Snapshot
}

type step struct {
	outcome calendar.Outcome
	widget  *calendar.Widget
	saved   *ranges.Range
	stale   bool
}

func newGeneration() string {
	return uuid.NewString()[:8]
}

func (b *Bot) setState(s session, target fsm.State) {
	err := s.Set(target)
	if err != nil {
		b.log.Warn(errors.WrapFailf(err, "set state to %q", target))
	}
}

func (b *Bot) openPicker(s session) (*calendar.Widget, error) {
	state := b.pickers.New()
	opened := openedPicker{
		Generation: newGeneration(),
		Snapshot:   rangepicker.Save(state),
	}

	err := s.Update(pickerKey, opened)
	if err != nil {
		return nil, errors.WrapFail(err, "store picker snapshot")
	}

	w, err := calendar.New(state, b.pickers.Language(), calendar.AsGeneration(opened.Generation))
	if err != nil {
		return nil, errors.WrapFail(err, "render picker")
	}

	b.setState(s, pickRangeState)
	return w, nil
}

// advance restores the picker of s, applies the callback data to it and
// persists whatever changed. Data from another picker message leaves
// the session untouched and yields a stale step.
func (b *Bot) advance(ctx context.Context, s session, user int64, data string) (step, error) {
	generation, action, err := calendar.ParseCallback(data)
	if err != nil {
		return step{}, err
	}

	// labels and blanks carry no generation
	if action.Kind == calendar.Noop {
		return step{outcome: calendar.Ignored}, nil
	}

	var opened openedPicker
	err = s.Get(pickerKey, &opened)
	if err != nil {
		return step{}, errors.WrapFail(err, "load picker snapshot")
	}

	if generation != opened.Generation {
		return step{outcome: calendar.Ignored, stale: true}, nil
	}

	state := b.pickers.Restore(opened.Snapshot)
	res := step{outcome: calendar.Apply(state, action)}

	switch res.outcome {
	case calendar.Redraw:
		opened.Snapshot = rangepicker.Save(state)
		err = s.Update(pickerKey, opened)
		if err != nil {
			return step{}, errors.WrapFail(err, "store picker snapshot")
		}

		res.widget, err = calendar.New(state, b.pickers.Language(), calendar.AsGeneration(opened.Generation))
		if err != nil {
			return step{}, errors.WrapFail(err, "render picker")
		}
	case calendar.Done:
		rng, err := ranges.FromState(user, state, b.pickers.Now())
		if err != nil {
			return step{}, errors.WrapFail(err, "build range")
		}

		rng.ID, err = b.repo.Save(ctx, rng)
		if err != nil {
			return step{}, errors.WrapFail(err, "save range")
		}

		res.saved = &rng
		b.setState(s, initialState)
	case calendar.Cancelled:
		b.setState(s, initialState)
	}

	return res, nil
}

func (b *Bot) describeRange(r ranges.Range) string {
	f := rangepicker.NewFormatter(b.pickers.Language())

	from := rangepicker.Label(f, r.Start, rangepicker.DayMonthYear)
	if r.Start == r.End {
		return from
	}

	to := rangepicker.Label(f, r.End, rangepicker.DayMonthYear)
	return fmt.Sprintf("%s - %s (%d %s)", from, to, r.Days(), b.msg.days)
}

func (b *Bot) describeRanges(ctx context.Context, user int64) (string, error) {
	rs, err := b.repo.ListByUser(ctx, user)
	if err != nil {
		return "", errors.WrapFail(err, "list ranges")
	}

	if len(rs) == 0 {
		return b.msg.noRanges, nil
	}

	var sb strings.Builder
	sb.WriteString(b.msg.ranges)
	for _, r := range rs {
		sb.WriteString(fmt.Sprintf("\n%s: %s", r.ID, b.describeRange(r)))
	}
	return sb.String(), nil
}

// removeRange deletes id only if it belongs to user.
func (b *Bot) removeRange(ctx context.Context, user int64, id string) (bool, error) {
	rs, err := b.repo.ListByUser(ctx, user)
	if err != nil {
		return false, errors.WrapFail(err, "list ranges")
	}

	owned := false
	for _, r := range rs {
		if r.ID == id {
			owned = true
			break
		}
	}
	if !owned {
		return false, nil
	}

	deleted, err := b.repo.Delete(ctx, id)
	return deleted, errors.WrapFailf(err, "delete range %s", id)
}

// issueToken signs an API token for user. Expiry follows the wall clock
// since the API validates it against one.
func (b *Bot) issueToken(user int64) (string, error) {
	raw, err := api.IssueToken(b.secret, user, b.tokenTTL, time.Now())
	return raw, errors.WrapFailf(err, "issue token for %d", user)
}
