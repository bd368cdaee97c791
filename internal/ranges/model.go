package ranges

import (
	"time"

	"github.com/nikmy/rangepicker/pkg/errors"
	"github.com/nikmy/rangepicker/pkg/rangepicker"
)

var (
	ErrInvalidRange = errors.New("range start is after its end")
	ErrNoSelection  = errors.New("nothing is selected")
)

// Range is a confirmed selection. Start and End are UTC midnights in
// milliseconds, both inclusive.
type Range struct {
	ID        string `json:"id" bson:"_id"`
	UserID    int64  `json:"user" bson:"user"`
	Start     int64  `json:"start" bson:"start"`
	End       int64  `json:"end" bson:"end"`
	CreatedAt int64  `json:"createdAt" bson:"createdAt"`
}

const (
	FieldID    = "_id"
	FieldUser  = "user"
	FieldStart = "start"
)

// FromState builds the range selected in s. A start without an end
// is a single day range.
func FromState(user int64, s *rangepicker.State, now time.Time) (Range, error) {
	start, end := s.SelectedStart(), s.SelectedEnd()
	if start == nil {
		return Range{}, ErrNoSelection
	}
	if end == nil {
		end = start
	}

	r := Range{
		UserID:    user,
		Start:     start.Timestamp,
		End:       end.Timestamp,
		CreatedAt: now.UnixMilli(),
	}
	return r, r.Validate()
}

func (r Range) Validate() error {
	if r.Start > r.End {
		return ErrInvalidRange
	}
	return nil
}

// Days is the number of days covered, both ends included.
func (r Range) Days() int {
	return int(time.UnixMilli(r.End).Sub(time.UnixMilli(r.Start))/(24*time.Hour)) + 1
}
