package rangepicker

import (
	"github.com/nikmy/rangepicker/pkg/errors"
)

// Snapshot is everything needed to rebuild a State after a restart.
// Today and the initial page are recomputed on restore.
type Snapshot struct {
	Start          *int64 `json:"start,omitempty" bson:"start,omitempty" yaml:"start,omitempty"`
	End            *int64 `json:"end,omitempty" bson:"end,omitempty" yaml:"end,omitempty"`
	DisplayedMonth int64  `json:"displayedMonth" bson:"displayedMonth" yaml:"displayedMonth"`
	YearMin        int32  `json:"yearMin" bson:"yearMin" yaml:"yearMin"`
	YearMax        int32  `json:"yearMax" bson:"yearMax" yaml:"yearMax"`
}

func Save(s *State) Snapshot {
	snap := Snapshot{
		DisplayedMonth: s.DisplayedMonth().UnixMilli(),
		YearMin:        int32(s.years.Min),
		YearMax:        int32(s.years.Max),
	}

	if start := s.SelectedStart(); start != nil {
		snap.Start = &start.Timestamp
	}
	if end := s.SelectedEnd(); end != nil {
		snap.End = &end.Timestamp
	}

	return snap
}

// Restore rebuilds a State from snap. opts supply what is not persisted,
// such as the predicate and the clock.
func Restore(snap Snapshot, opts ...Option) *State {
	restored := []Option{
		WithSelection(snap.Start, snap.End),
		WithDisplayedMonth(snap.DisplayedMonth),
		WithYearRange(int(snap.YearMin), int(snap.YearMax)),
	}
	return New(append(opts, restored...)...)
}

// Tuple is the ordered (start, end, displayedMonth, yearMin, yearMax) form.
func (s Snapshot) Tuple() [5]any {
	var start, end any
	if s.Start != nil {
		start = *s.Start
	}
	if s.End != nil {
		end = *s.End
	}
	return [5]any{start, end, s.DisplayedMonth, s.YearMin, s.YearMax}
}

func FromTuple(t [5]any) (Snapshot, error) {
	var snap Snapshot

	for i, dst := range [2]**int64{&snap.Start, &snap.End} {
		if t[i] == nil {
			continue
		}
		v, ok := t[i].(int64)
		if !ok {
			return Snapshot{}, errors.Failf("read tuple field %d: want int64, got %T", i, t[i])
		}
		*dst = &v
	}

	month, ok := t[2].(int64)
	if !ok {
		return Snapshot{}, errors.Failf("read displayed month: want int64, got %T", t[2])
	}
	snap.DisplayedMonth = month

	for i, dst := range [2]*int32{&snap.YearMin, &snap.YearMax} {
		v, ok := t[3+i].(int32)
		if !ok {
			return Snapshot{}, errors.Failf("read year bound %d: want int32, got %T", i, t[3+i])
		}
		*dst = v
	}

	return snap, nil
}
