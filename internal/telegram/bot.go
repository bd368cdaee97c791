package telegram

import (
	"context"
	"time"

	"gopkg.in/telebot.v3"

	"github.com/nikmy/rangepicker/internal/api"
	"github.com/nikmy/rangepicker/internal/picker"
	"github.com/nikmy/rangepicker/internal/ranges"
	"github.com/nikmy/rangepicker/pkg/errors"
	"github.com/nikmy/rangepicker/pkg/logger"
)

func New(
	log logger.Logger,
	conf Config,
	auth api.AuthConfig,
	repo ranges.Repo,
	pickers *picker.Factory,
) (*Bot, error) {
	b, err := telebot.NewBot(telebot.Settings{
		Token:   conf.Token,
		Updates: 256,
		Poller: &telebot.LongPoller{
			Timeout: conf.PollInterval,
		},
	})
	if err != nil {
		return nil, errors.WrapFail(err, "create telegram bot")
	}

	ttl := conf.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &Bot{
		bot:      b,
		repo:     repo,
		pickers:  pickers,
		secret:   auth.Secret,
		tokenTTL: ttl,
		msg:      messagesFor(pickers.Language()),
		log:      log.With("telegram"),
	}, nil
}

type Bot struct {
	bot *telebot.Bot
	ctx context.Context

	repo    ranges.Repo
	pickers *picker.Factory
	msg     messages

	// secret signs API tokens, none are issued when it is empty
	secret   string
	tokenTTL time.Duration

	log logger.Logger
}

func (b *Bot) Run(ctx context.Context) error {
	b.ctx = ctx
	b.setupHandlers()
	go b.bot.Start()
	return nil
}

func (b *Bot) Stop() {
	b.bot.Stop()
}
