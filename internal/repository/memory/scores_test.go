package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/4-in-a-row/hotseat/internal/domain"
)

func TestScoreRepo_SaveThenLoad(t *testing.T) {
	ctx := context.Background()
	repo := NewScoreRepo(domain.Scores{Draws: 2})

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Scores{Draws: 2}, got)

	require.NoError(t, repo.Save(ctx, domain.Scores{SideA: 1, SideB: 3}))
	got, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Scores{SideA: 1, SideB: 3}, got)
	assert.Equal(t, 1, repo.Saves())
	assert.NoError(t, repo.Close())
}
