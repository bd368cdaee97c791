package rangepicker

type Phase int

const (
	Empty Phase = iota
	StartOnly
	Complete
)

func (p Phase) String() string {
	switch p {
	case StartOnly:
		return "start_only"
	case Complete:
		return "complete"
	default:
		return "empty"
	}
}

func PhaseOf(s *State) Phase {
	start, end := s.SelectedStart(), s.SelectedEnd()
	switch {
	case start != nil && end != nil:
		return Complete
	case start != nil:
		return StartOnly
	default:
		return Empty
	}
}

// HandleTap decides the selection after tapped is chosen:
// the first tap starts a range, a tap on or after the start ends it,
// anything else starts over from tapped.
func HandleTap(s *State, tapped CalendarDate) (start, end *CalendarDate) {
	start, end = s.SelectedStart(), s.SelectedEnd()

	switch {
	case start == nil && end == nil:
		return &tapped, nil
	case start != nil && tapped.Timestamp >= start.Timestamp:
		return start, &tapped
	default:
		return &tapped, nil
	}
}

// Tap applies HandleTap to s. Unselectable days leave s untouched.
func Tap(s *State, tapped CalendarDate) bool {
	if !tapped.IsSelectable {
		return false
	}

	s.SetSelection(HandleTap(s, tapped))
	return true
}

// TapMillis taps the day containing utcMillis, judged by the state's predicate.
func TapMillis(s *State, utcMillis int64) bool {
	return Tap(s, DateOfMillis(utcMillis, s.Selectable()))
}
