package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapFail(t *testing.T) {
	base := New("boom")

	err := WrapFail(base, "load config")
	require.EqualError(t, err, "can't load config: boom")
	require.True(t, Is(err, base))

	require.NoError(t, WrapFail(nil, "load config"))
	require.NoError(t, Wrapf(nil, "page %d", 1))
}

func TestFailf(t *testing.T) {
	require.EqualError(t, Failf("parse page %q", "x"), `can't parse page "x"`)
	require.EqualError(t, WrapFailf(New("eof"), "read %s", "snapshot"), "can't read snapshot: eof")
}

func TestJoin(t *testing.T) {
	require.NoError(t, Join(nil, nil))

	a, b := New("a"), New("b")
	err := Join(a, nil, b)
	require.True(t, Is(err, a))
	require.True(t, Is(err, b))
}
