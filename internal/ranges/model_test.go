package ranges

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nikmy/rangepicker/pkg/rangepicker"
)

var testNow = time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)

func day(d int) int64 {
	return time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC).UnixMilli()
}

func TestFromState(t *testing.T) {
	type testcase struct {
		name    string
		taps    []int
		want    Range
		wantErr error
	}

	tests := [...]testcase{
		{
			name:    "nothing selected",
			wantErr: ErrNoSelection,
		},
		{
			name: "start only is a single day",
			taps: []int{3},
			want: Range{UserID: 7, Start: day(3), End: day(3), CreatedAt: testNow.UnixMilli()},
		},
		{
			name: "complete",
			taps: []int{3, 9},
			want: Range{UserID: 7, Start: day(3), End: day(9), CreatedAt: testNow.UnixMilli()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := rangepicker.New(rangepicker.WithClock(rangepicker.FixedClock(testNow)))
			for _, d := range tt.taps {
				require.True(t, rangepicker.TapMillis(s, day(d)))
			}

			got, err := FromState(7, s, testNow)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFromState_reversed(t *testing.T) {
	s := rangepicker.New(rangepicker.WithClock(rangepicker.FixedClock(testNow)))
	a, b := rangepicker.DateOfMillis(day(9), nil), rangepicker.DateOfMillis(day(3), nil)
	s.SetSelection(&a, &b)

	_, err := FromState(1, s, testNow)
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestRange_Days(t *testing.T) {
	require.Equal(t, 1, Range{Start: day(3), End: day(3)}.Days())
	require.Equal(t, 7, Range{Start: day(3), End: day(9)}.Days())
}
