package telegram

import (
	"github.com/vitaliy-ukiru/fsm-telebot"
)

// session is the part of fsm.Context the picker flow needs.
type session interface {
	Set(state fsm.State) error
	Update(key string, data any) error
	Get(key string, to any) error
}
