package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/4-in-a-row/hotseat/internal/domain"
)

func openTemp(t *testing.T) (*ScoreRepo, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scores.db")
	repo, err := Open(path)
	require.NoError(t, err)
	return repo, path
}

func TestOpen_FreshDatabaseStartsAtZero(t *testing.T) {
	repo, _ := openTemp(t)
	defer repo.Close()

	scores, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Scores{}, scores)
}

func TestScoreRepo_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	repo, path := openTemp(t)

	require.NoError(t, repo.Save(ctx, domain.Scores{SideA: 3, SideB: 1, Draws: 2}))
	require.NoError(t, repo.Save(ctx, domain.Scores{SideA: 4, SideB: 1, Draws: 2}))
	require.NoError(t, repo.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	scores, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Scores{SideA: 4, SideB: 1, Draws: 2}, scores)

	var rows int
	require.NoError(t, reopened.db.QueryRow(`SELECT COUNT(*) FROM scores`).Scan(&rows))
	assert.Equal(t, 1, rows, "only the tally is stored")
}

func TestScoreRepo_RejectsNegativeCounts(t *testing.T) {
	repo, _ := openTemp(t)
	defer repo.Close()

	err := repo.Save(context.Background(), domain.Scores{SideA: -1})
	assert.Error(t, err)
}

func TestScoreRepo_CloseWithoutDatabase(t *testing.T) {
	repo := &ScoreRepo{}
	assert.NoError(t, repo.Close())
}
