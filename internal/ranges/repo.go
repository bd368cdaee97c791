package ranges

import (
	"context"
	"time"

	"github.com/nikmy/rangepicker/pkg/errors"
	"github.com/nikmy/rangepicker/pkg/logger"
)

//go:generate mockgen -source=repo.go -destination=mock_repo.go -package=ranges

type Repo interface {
	Save(ctx context.Context, r Range) (id string, err error)
	ListByUser(ctx context.Context, user int64) ([]Range, error)
	Delete(ctx context.Context, id string) (deleted bool, err error)

	Close(ctx context.Context) error
}

type Kind string

const (
	KindMongo  Kind = "mongo"
	KindFile   Kind = "file"
	KindSQLite Kind = "sqlite"
)

type Config struct {
	Kind   Kind         `yaml:"kind"`
	Mongo  MongoConfig  `yaml:"mongo"`
	File   FileConfig   `yaml:"file"`
	SQLite SQLiteConfig `yaml:"sqlite"`
}

type MongoConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`

	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`

	Auth struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"auth"`

	Pool struct {
		MinSize uint64 `yaml:"minSize"`
		MaxSize uint64 `yaml:"maxSize"`
	} `yaml:"pool"`
}

type FileConfig struct {
	Path          string        `yaml:"path"`
	FlushInterval time.Duration `yaml:"flushInterval"`
}

func New(ctx context.Context, log logger.Logger, cfg Config) (Repo, error) {
	log = log.With("ranges")

	switch cfg.Kind {
	case KindMongo:
		return newMongoRepo(ctx, cfg.Mongo)
	case KindSQLite:
		return newSQLiteRepo(log, cfg.SQLite)
	case KindFile, "":
		return newFileRepo(ctx, log, cfg.File)
	default:
		return nil, errors.Errorf("unknown storage kind %q", cfg.Kind)
	}
}
