package repository

import (
	"path/filepath"
	"testing"

	"github.com/fleetpaper/settlement-audit/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRepo(t *testing.T) *HistoryRepository {
	t.Helper()

	db, err := database.New(database.Config{
		Path: filepath.Join(t.TempDir(), "test.db"),
	}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.RunMigrations(filepath.Join("..", "..", "migrations")))

	return NewHistoryRepository(db.DB, zap.NewNop())
}

func TestHistoryRepositoryRoundTrip(t *testing.T) {
	repo := newTestRepo(t)

	run := &ReportRun{
		BatchID:      "batch-1",
		Field:        "gross",
		FileCount:    3,
		Total:        1534.56,
		MissingCount: 1,
	}
	require.NoError(t, repo.Record(run))
	assert.NotZero(t, run.ID)

	runs, err := repo.ListRecent(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	got := runs[0]
	assert.Equal(t, "batch-1", got.BatchID)
	assert.Equal(t, "gross", got.Field)
	assert.Equal(t, 3, got.FileCount)
	assert.InDelta(t, 1534.56, got.Total, 0.001)
	assert.Equal(t, 1, got.MissingCount)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestHistoryRepositoryListNewestFirst(t *testing.T) {
	repo := newTestRepo(t)

	for _, field := range []string{"gross", "miles", "tolls"} {
		require.NoError(t, repo.Record(&ReportRun{
			BatchID: "batch-1",
			Field:   field,
		}))
	}

	runs, err := repo.ListRecent(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "tolls", runs[0].Field)
	assert.Equal(t, "miles", runs[1].Field)
}
