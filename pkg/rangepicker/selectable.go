package rangepicker

// SelectableDates decides whether the day starting at utcMillis can be picked.
// Implementations must be pure: the state calls it once per enumerated day.
type SelectableDates interface {
	IsSelectableDate(utcMillis int64) bool
}

type SelectableFunc func(utcMillis int64) bool

func (f SelectableFunc) IsSelectableDate(utcMillis int64) bool {
	return f(utcMillis)
}

type allDates struct{}

func (allDates) IsSelectableDate(int64) bool { return true }

// AllDates allows every day.
var AllDates SelectableDates = allDates{}

func NotBefore(utcMillis int64) SelectableDates {
	return SelectableFunc(func(ts int64) bool { return ts >= utcMillis })
}

func NotAfter(utcMillis int64) SelectableDates {
	return SelectableFunc(func(ts int64) bool { return ts <= utcMillis })
}

// AllOf allows a day only when every non-nil predicate allows it.
func AllOf(preds ...SelectableDates) SelectableDates {
	return SelectableFunc(func(ts int64) bool {
		for _, p := range preds {
			if p != nil && !p.IsSelectableDate(ts) {
				return false
			}
		}
		return true
	})
}

func isSelectable(sel SelectableDates, ts int64) bool {
	if sel == nil {
		return true
	}
	return sel.IsSelectableDate(ts)
}
