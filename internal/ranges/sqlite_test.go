package ranges

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nikmy/rangepicker/pkg/logger"
)

func TestSQLiteRepo(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "db", "ranges.db")

	r, err := newSQLiteRepo(logger.NewStub(), SQLiteConfig{Path: path})
	require.NoError(t, err)

	late, err := r.Save(ctx, Range{UserID: 1, Start: day(10), End: day(12), CreatedAt: 7})
	require.NoError(t, err)
	early, err := r.Save(ctx, Range{UserID: 1, Start: day(1), End: day(2)})
	require.NoError(t, err)
	_, err = r.Save(ctx, Range{UserID: 2, Start: day(5), End: day(5)})
	require.NoError(t, err)

	_, err = r.Save(ctx, Range{UserID: 1, Start: day(5), End: day(4)})
	require.ErrorIs(t, err, ErrInvalidRange)

	found, err := r.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []Range{
		{ID: early, UserID: 1, Start: day(1), End: day(2)},
		{ID: late, UserID: 1, Start: day(10), End: day(12), CreatedAt: 7},
	}, found)

	deleted, err := r.Delete(ctx, early)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = r.Delete(ctx, early)
	require.NoError(t, err)
	require.False(t, deleted)

	require.NoError(t, r.Close(ctx))

	reopened, err := newSQLiteRepo(logger.NewStub(), SQLiteConfig{Path: path})
	require.NoError(t, err)
	defer reopened.Close(ctx)

	found, err = reopened.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, late, found[0].ID)

	found, err = reopened.ListByUser(ctx, 3)
	require.NoError(t, err)
	require.Empty(t, found)
}

func TestSQLiteRepo_noPath(t *testing.T) {
	_, err := newSQLiteRepo(logger.NewStub(), SQLiteConfig{})
	require.Error(t, err)
}
