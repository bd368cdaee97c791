package telegram

import "time"

const defaultTokenTTL = time.Hour

type Config struct {
	Token        string        `yaml:"token"`
	PollInterval time.Duration `yaml:"pollInterval"`

	// TokenTTL is the lifetime of API tokens issued by /token.
	TokenTTL time.Duration `yaml:"tokenTTL"`
}
