package builder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nikmy/rangepicker/pkg/errors"
)

type pair struct {
	A, B int
}

func TestBuilder(t *testing.T) {
	setA := func(p *pair) { p.A = 1 }
	setB := func(p *pair) { p.B = 2 }
	fail := func(*pair) error { return errors.New("fail") }

	got, err := New[pair]().Use(setA).UseAll(setB).Get()
	require.NoError(t, err)
	require.Equal(t, pair{1, 2}, *got)

	got, err = New[pair]().Use(setA).MaybeUse(fail).Use(setB).Get()
	require.Error(t, err)
	require.Equal(t, pair{A: 1}, *got)

	existing := &pair{B: 5}
	got, err = From(existing).Use(setA).Get()
	require.NoError(t, err)
	require.Same(t, existing, got)
	require.Equal(t, pair{1, 5}, *got)
}
