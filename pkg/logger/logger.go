package logger

import (
	"go.uber.org/zap"

	"github.com/nikmy/rangepicker/pkg/environment"
	"github.com/nikmy/rangepicker/pkg/errors"
)

//go:generate mockgen -source=logger.go -destination=mock_logger.go -package=logger

type Logger interface {
	With(label string) Logger

	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)

	Debug(err error)
	Info(err error)
	Warn(err error)
	Error(err error)

	Sync() error
}

func New(env environment.Env) (Logger, error) {
	var logger *zap.Logger
	var err error

	switch env {
	case environment.Production:
		logger, err = zap.NewProduction()
	case environment.Testing:
		logger = zap.NewNop()
	default:
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, errors.WrapFail(err, "init logger")
	}

	return FromZap(logger), nil
}

// FromZap adapts an already configured zap logger.
func FromZap(l *zap.Logger) Logger {
	return &wrapper{base: l.Sugar()}
}

type wrapper struct {
	base *zap.SugaredLogger
}

func (w *wrapper) With(label string) Logger {
	return &wrapper{w.base.Named(label)}
}

func (w *wrapper) Sync() error {
	return w.base.Sync()
}

func (w *wrapper) Debug(err error) { w.base.Debugf("%s", err) }
func (w *wrapper) Info(err error)  { w.base.Infof("%s", err) }
func (w *wrapper) Warn(err error)  { w.base.Warnf("%s", err) }
func (w *wrapper) Error(err error) { w.base.Errorf("%s", err) }

func (w *wrapper) Debugf(format string, args ...any) { w.base.Debugf(format, args...) }
func (w *wrapper) Infof(format string, args ...any)  { w.base.Infof(format, args...) }
func (w *wrapper) Warnf(format string, args ...any)  { w.base.Warnf(format, args...) }
func (w *wrapper) Errorf(format string, args ...any) { w.base.Errorf(format, args...) }
