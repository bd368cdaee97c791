package rangepicker

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRestore_roundTrip(t *testing.T) {
	t1, t2 := ms(2025, time.March, 3), ms(2025, time.March, 21)
	t3 := time.Date(2025, time.April, 17, 15, 4, 5, 0, time.UTC).UnixMilli()

	s := newTestState(WithSelection(&t1, &t2), WithDisplayedMonth(t3))
	snap := Save(s)

	require.Equal(t, t1, *snap.Start)
	require.Equal(t, t2, *snap.End)
	require.Equal(t, ms(2025, time.April, 1), snap.DisplayedMonth)
	require.Equal(t, int32(1900), snap.YearMin)
	require.Equal(t, int32(2100), snap.YearMax)

	later := time.Date(2026, time.June, 1, 9, 0, 0, 0, time.UTC)
	restored := Restore(snap, WithClock(FixedClock(later)))

	require.Equal(t, t1, restored.SelectedStart().Timestamp)
	require.Equal(t, t2, restored.SelectedEnd().Timestamp)
	require.Equal(t, utcDay(2025, time.April, 1), restored.DisplayedMonth())
	require.Equal(t, DefaultYearRange, restored.YearRange())
	require.Equal(t, ms(2026, time.June, 1), restored.Today().Timestamp)
	require.Equal(t, InitialPage(utcDay(2025, time.April, 1), 1900), restored.InitialPage())
	require.True(t, restored.IsInRange(ms(2025, time.March, 10)))
}

func TestRestore_afterPaging(t *testing.T) {
	s := newTestState(WithYearRange(2000, 2050))
	s.SetDisplayedMonth(s.InitialPage() + 5)

	restored := Restore(Save(s), WithClock(FixedClock(testNow)))
	require.Equal(t, utcDay(2025, time.June, 1), restored.DisplayedMonth())
	require.Equal(t, YearRange{Min: 2000, Max: 2050}, restored.YearRange())
	require.Nil(t, restored.SelectedStart())
}

func TestRestore_startOnlyIsDropped(t *testing.T) {
	s := newTestState()
	d := DateOf(testNow, nil)
	s.SetSelection(&d, nil)

	snap := Save(s)
	require.NotNil(t, snap.Start)
	require.Nil(t, snap.End)

	require.Equal(t, Empty, PhaseOf(Restore(snap, WithClock(FixedClock(testNow)))))
}

func TestRestore_predicateIsReapplied(t *testing.T) {
	t1, t2 := ms(2025, time.January, 2), ms(2025, time.January, 4)
	snap := Snapshot{Start: &t1, End: &t2, DisplayedMonth: t1, YearMin: 1900, YearMax: 2100}

	restored := Restore(snap, WithSelectable(NotBefore(t2)), WithClock(FixedClock(testNow)))
	require.False(t, restored.SelectedStart().IsSelectable)
	require.True(t, restored.SelectedEnd().IsSelectable)
}

func TestSnapshot_JSON(t *testing.T) {
	t1 := ms(2025, time.January, 2)
	snap := Snapshot{Start: &t1, DisplayedMonth: t1, YearMin: 1900, YearMax: 2100}

	raw, err := json.Marshal(snap)
	require.NoError(t, err)
	require.JSONEq(t, `{"start":1735776000000,"displayedMonth":1735776000000,"yearMin":1900,"yearMax":2100}`, string(raw))
}

func TestSnapshot_Tuple(t *testing.T) {
	t1, t2 := ms(2025, time.January, 2), ms(2025, time.January, 4)

	type testcase struct {
		name    string
		tuple   [5]any
		want    Snapshot
		wantErr bool
	}

	tests := [...]testcase{
		{
			name:  "full",
			tuple: [5]any{t1, t2, t1, int32(1900), int32(2100)},
			want:  Snapshot{Start: &t1, End: &t2, DisplayedMonth: t1, YearMin: 1900, YearMax: 2100},
		},
		{
			name:  "no selection",
			tuple: [5]any{nil, nil, t1, int32(1900), int32(2100)},
			want:  Snapshot{DisplayedMonth: t1, YearMin: 1900, YearMax: 2100},
		},
		{
			name:    "wrong start type",
			tuple:   [5]any{"x", nil, t1, int32(1900), int32(2100)},
			wantErr: true,
		},
		{
			name:    "missing month",
			tuple:   [5]any{nil, nil, nil, int32(1900), int32(2100)},
			wantErr: true,
		},
		{
			name:    "wrong year type",
			tuple:   [5]any{nil, nil, t1, 1900, int32(2100)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromTuple(tt.tuple)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.tuple, got.Tuple())
		})
	}
}
