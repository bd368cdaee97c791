package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nikmy/rangepicker/internal/api"
	"github.com/nikmy/rangepicker/internal/blackout"
	"github.com/nikmy/rangepicker/internal/picker"
	"github.com/nikmy/rangepicker/internal/ranges"
	"github.com/nikmy/rangepicker/internal/telegram"
	"github.com/nikmy/rangepicker/pkg/errors"
	"github.com/nikmy/rangepicker/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := loadConfig()
	if err != nil {
		stdlog.Panic(err)
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "init logger"))
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGABRT)
	defer cancel()

	repo, err := ranges.New(ctx, log, cfg.Storage)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "init ranges repo"))
	}

	provider := blackout.NewProvider(log, cfg.Blackout, nil)
	go func() {
		if err := provider.Run(ctx); err != nil {
			log.Error(errors.WrapFail(err, "run blackout provider"))
		}
	}()

	pickers := picker.NewFactory(cfg.Picker, provider, nil)

	var bot *telegram.Bot
	if cfg.Telegram.Token != "" {
		bot, err = telegram.New(log, cfg.Telegram, cfg.API.Auth, repo, pickers)
		if err != nil {
			stdlog.Panic(errors.WrapFail(err, "initialize bot service"))
		}

		err = bot.Run(ctx)
		if err != nil {
			stdlog.Panic(err)
		}
		stdlog.Println("Bot has been started")
	}

	var server api.Server
	if cfg.API.HTTP.Addr != "" {
		server = api.NewServer(cfg.API, log, repo, pickers)
		go func() {
			if err := server.Serve(ctx); err != nil {
				log.Error(err)
				cancel()
			}
		}()
		stdlog.Printf("API is listening on %s", cfg.API.HTTP.Addr)
	}

	<-ctx.Done()
	stdlog.Println("Graceful shutdown...")

	shutdownCtx, done := context.WithTimeout(context.Background(), shutdownTimeout)
	defer done()

	if bot != nil {
		bot.Stop()
	}

	if server != nil {
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error(err)
		}
	}

	if err := repo.Close(shutdownCtx); err != nil {
		log.Error(errors.WrapFail(err, "close ranges repo"))
	}

	stdlog.Println("Shutdown complete")
}
