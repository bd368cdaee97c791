package ranges

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/nikmy/rangepicker/pkg/errors"
	"github.com/nikmy/rangepicker/pkg/logger"
)

type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// rangeRow is the table layout of Range.
type rangeRow struct {
	ID      string `gorm:"primaryKey"`
	UserID  int64  `gorm:"index;not null"`
	Start   int64  `gorm:"column:start_ms;not null"`
	End     int64  `gorm:"column:end_ms;not null"`
	Created int64  `gorm:"column:created_at;not null"`
}

func (rangeRow) TableName() string { return "ranges" }

func rowOf(r Range) rangeRow {
	return rangeRow{ID: r.ID, UserID: r.UserID, Start: r.Start, End: r.End, Created: r.CreatedAt}
}

func (r rangeRow) toRange() Range {
	return Range{ID: r.ID, UserID: r.UserID, Start: r.Start, End: r.End, CreatedAt: r.Created}
}

// gormWriter sends gorm warnings to the service logger.
type gormWriter struct {
	log logger.Logger
}

func (w gormWriter) Printf(format string, args ...any) {
	w.log.Warnf(format, args...)
}

func newSQLiteRepo(log logger.Logger, cfg SQLiteConfig) (*sqliteRepo, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is empty")
	}

	err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755)
	if err != nil {
		return nil, errors.WrapFail(err, "create db directory")
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path+"?_busy_timeout=5000"), &gorm.Config{
		Logger: gormlogger.New(gormWriter{log: log}, gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, errors.WrapFail(err, "open sqlite")
	}

	err = db.AutoMigrate(&rangeRow{})
	if err != nil {
		return nil, errors.WrapFail(err, "migrate ranges table")
	}

	return &sqliteRepo{db: db}, nil
}

type sqliteRepo struct {
	db *gorm.DB
}

func (s *sqliteRepo) Save(ctx context.Context, r Range) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}

	r.ID = uuid.NewString()

	row := rowOf(r)
	err := s.db.WithContext(ctx).Create(&row).Error
	if err != nil {
		return "", errors.WrapFail(err, "insert range")
	}

	return r.ID, nil
}

func (s *sqliteRepo) ListByUser(ctx context.Context, user int64) ([]Range, error) {
	var rows []rangeRow
	err := s.db.WithContext(ctx).
		Where("user_id = ?", user).
		Order("start_ms ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.WrapFail(err, "find ranges")
	}

	found := make([]Range, 0, len(rows))
	for _, row := range rows {
		found = append(found, row.toRange())
	}
	return found, nil
}

func (s *sqliteRepo) Delete(ctx context.Context, id string) (bool, error) {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&rangeRow{})
	if res.Error != nil {
		return false, errors.WrapFail(res.Error, "delete range")
	}

	return res.RowsAffected > 0, nil
}

func (s *sqliteRepo) Close(context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.WrapFail(err, "get sql db")
	}
	return errors.WrapFail(sqlDB.Close(), "close sqlite")
}
