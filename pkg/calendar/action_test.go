package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nikmy/rangepicker/pkg/rangepicker"
)

func TestParseAction(t *testing.T) {
	type testcase struct {
		data    string
		want    Action
		wantErr bool
	}

	tests := [...]testcase{
		{data: "n", want: NoopAction()},
		{data: "ok", want: ConfirmAction()},
		{data: "x", want: CancelAction()},
		{data: "p/1500", want: PageAction(1500)},
		{data: "p/-3", want: PageAction(-3)},
		{data: "t/1735776000000", want: TapAction(1735776000000)},
		{data: "p", wantErr: true},
		{data: "p/abc", wantErr: true},
		{data: "t/", wantErr: true},
		{data: "z/1", wantErr: true},
		{data: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			got, err := ParseAction(tt.data)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.data, got.String())
		})
	}
}

func TestParseCallback(t *testing.T) {
	type testcase struct {
		data    string
		wantGen string
		want    Action
		wantErr bool
	}

	tests := [...]testcase{
		{data: "t/1735776000000", want: TapAction(1735776000000)},
		{data: "a1b2c3d4:t/1735776000000", wantGen: "a1b2c3d4", want: TapAction(1735776000000)},
		{data: "a1b2c3d4:p/-3", wantGen: "a1b2c3d4", want: PageAction(-3)},
		{data: "a1b2c3d4:ok", wantGen: "a1b2c3d4", want: ConfirmAction()},
		{data: "a1b2c3d4:", wantErr: true},
		{data: "a1b2c3d4:t/abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			gen, got, err := ParseCallback(tt.data)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantGen, gen)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.data, EncodeCallback(gen, got))
		})
	}
}

func TestApply(t *testing.T) {
	type testcase struct {
		name    string
		prepare func(s *rangepicker.State)
		action  func(s *rangepicker.State) Action
		want    Outcome
		check   func(t *testing.T, s *rangepicker.State)
	}

	tests := [...]testcase{
		{
			name:   "next page",
			action: func(s *rangepicker.State) Action { return PageAction(s.InitialPage() + 1) },
			want:   Redraw,
			check: func(t *testing.T, s *rangepicker.State) {
				require.Equal(t, time.February, s.DisplayedMonth().Month())
			},
		},
		{
			name:   "same page",
			action: func(s *rangepicker.State) Action { return PageAction(s.InitialPage()) },
			want:   Ignored,
		},
		{
			name:   "page out of range",
			action: func(s *rangepicker.State) Action { return PageAction(s.InitialPage() + 12*200) },
			want:   Ignored,
		},
		{
			name:   "tap day",
			action: func(*rangepicker.State) Action { return TapAction(ms(3)) },
			want:   Redraw,
			check: func(t *testing.T, s *rangepicker.State) {
				require.Equal(t, ms(3), s.SelectedStart().Timestamp)
			},
		},
		{
			name:   "confirm without start",
			action: func(*rangepicker.State) Action { return ConfirmAction() },
			want:   Ignored,
		},
		{
			name: "confirm with start",
			prepare: func(s *rangepicker.State) {
				rangepicker.TapMillis(s, ms(3))
			},
			action: func(*rangepicker.State) Action { return ConfirmAction() },
			want:   Done,
		},
		{
			name:   "cancel",
			action: func(*rangepicker.State) Action { return CancelAction() },
			want:   Cancelled,
		},
		{
			name:   "noop",
			action: func(*rangepicker.State) Action { return NoopAction() },
			want:   Ignored,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newState()
			if tt.prepare != nil {
				tt.prepare(s)
			}

			require.Equal(t, tt.want, Apply(s, tt.action(s)))
			if tt.check != nil {
				tt.check(t, s)
			}
		})
	}
}

func TestApply_tapUnselectable(t *testing.T) {
	s := newState(rangepicker.WithSelectable(rangepicker.NotBefore(ms(10))))

	require.Equal(t, Ignored, Apply(s, TapAction(ms(9))))
	require.Nil(t, s.SelectedStart())
	require.Equal(t, Redraw, Apply(s, TapAction(ms(10))))
}
