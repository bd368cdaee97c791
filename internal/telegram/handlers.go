package telegram

import (
	"fmt"

	"github.com/vitaliy-ukiru/fsm-telebot"
	"github.com/vitaliy-ukiru/fsm-telebot/storages/memory"
	"gopkg.in/telebot.v3"

	"github.com/nikmy/rangepicker/pkg/calendar"
	"github.com/nikmy/rangepicker/pkg/errors"
)

func (b *Bot) setupHandlers() {
	manager := fsm.NewManager(
		b.bot,
		nil,
		memory.NewStorage(),
		nil,
	)

	pickerButton := &telebot.InlineButton{Unique: calendar.Unique}

	manager.Bind("/start", fsm.AnyState, b.start)
	manager.Bind("/pick", fsm.AnyState, b.pick)
	manager.Bind("/ranges", fsm.AnyState, b.listRanges)
	manager.Bind("/delete", fsm.AnyState, b.deleteRange)
	manager.Bind("/token", fsm.AnyState, b.sendToken)

	manager.Bind(pickerButton, pickRangeState, b.onPicker)
	manager.Bind(pickerButton, initialState, b.onStalePicker)
}

func (b *Bot) fail(c telebot.Context, s fsm.Context, err error) error {
	b.log.Error(err)
	b.setState(s, initialState)
	return c.Send(b.msg.failed)
}

func (b *Bot) respond(c telebot.Context, text string) {
	resp := &telebot.CallbackResponse{Text: text}
	if err := c.Respond(resp); err != nil {
		b.log.Warn(errors.WrapFail(err, "answer callback"))
	}
}

func (b *Bot) start(c telebot.Context, s fsm.Context) error {
	b.setState(s, initialState)
	return c.Send(b.msg.usage)
}

func (b *Bot) pick(c telebot.Context, s fsm.Context) error {
	w, err := b.openPicker(s)
	if err != nil {
		return b.fail(c, s, err)
	}
	return c.Send(w.Prompt(), w.Markup())
}

func (b *Bot) onPicker(c telebot.Context, s fsm.Context) error {
	sender := c.Sender()
	if sender == nil {
		b.respond(c, b.msg.noSender)
		return nil
	}

	res, err := b.advance(b.ctx, s, sender.ID, c.Data())
	if err != nil {
		b.log.Error(errors.WrapFail(err, "handle picker action"))
		b.respond(c, b.msg.failed)
		return nil
	}

	if res.stale {
		b.respond(c, b.msg.stale)
		return nil
	}

	b.respond(c, "")

	switch res.outcome {
	case calendar.Redraw:
		return c.Edit(res.widget.Prompt(), res.widget.Markup())
	case calendar.Done:
		return c.Edit(fmt.Sprintf(b.msg.saved, b.describeRange(*res.saved)))
	case calendar.Cancelled:
		return c.Edit(b.msg.cancelled)
	default:
		return nil
	}
}

func (b *Bot) onStalePicker(c telebot.Context, _ fsm.Context) error {
	b.respond(c, b.msg.stale)
	return nil
}

func (b *Bot) listRanges(c telebot.Context, s fsm.Context) error {
	sender := c.Sender()
	if sender == nil {
		return b.fail(c, s, errors.Fail("get sender"))
	}

	text, err := b.describeRanges(b.ctx, sender.ID)
	if err != nil {
		return b.fail(c, s, err)
	}
	return c.Send(text)
}

func (b *Bot) deleteRange(c telebot.Context, s fsm.Context) error {
	sender := c.Sender()
	if sender == nil {
		return b.fail(c, s, errors.Fail("get sender"))
	}

	args := c.Args()
	if len(args) != 1 {
		return c.Send(b.msg.deleteUsage)
	}

	deleted, err := b.removeRange(b.ctx, sender.ID, args[0])
	if err != nil {
		return b.fail(c, s, err)
	}

	if !deleted {
		return c.Send(b.msg.notFound)
	}
	return c.Send(b.msg.deleted)
}

func (b *Bot) sendToken(c telebot.Context, s fsm.Context) error {
	sender := c.Sender()
	if sender == nil {
		return b.fail(c, s, errors.Fail("get sender"))
	}

	if b.secret == "" {
		return c.Send(b.msg.noTokens)
	}

	raw, err := b.issueToken(sender.ID)
	if err != nil {
		return b.fail(c, s, err)
	}
	return c.Send(fmt.Sprintf(b.msg.token, b.tokenTTL, raw))
}
