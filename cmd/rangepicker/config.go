package main

import (
	"flag"

	"github.com/nikmy/rangepicker/internal/api"
	"github.com/nikmy/rangepicker/internal/blackout"
	"github.com/nikmy/rangepicker/internal/picker"
	"github.com/nikmy/rangepicker/internal/ranges"
	"github.com/nikmy/rangepicker/internal/telegram"
	"github.com/nikmy/rangepicker/pkg/config"
	"github.com/nikmy/rangepicker/pkg/environment"
	"github.com/nikmy/rangepicker/pkg/errors"
)

type Config struct {
	Environment environment.Env `yaml:"Environment"`
	Telegram    telegram.Config `yaml:"Telegram"`
	API         api.Config      `yaml:"API"`
	Storage     ranges.Config   `yaml:"Storage"`
	Blackout    blackout.Config `yaml:"Blackout"`
	Picker      picker.Config   `yaml:"Picker"`
}

func loadConfig() (*Config, error) {
	path := flag.String("config", "config.yaml", "path to config file")
	env := flag.String("env", "", "environment (dev, prod, test)")
	flag.Parse()

	cfg, err := config.Load[Config](*path)
	if err != nil {
		return nil, errors.WrapFail(err, "load config")
	}

	if *env != "" {
		cfg.Environment = environment.FromString(*env)
	}

	return cfg, nil
}
