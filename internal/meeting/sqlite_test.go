package meeting

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/meetscribe/internal/logger"
)

func openTestRepo(t *testing.T) Repository {
	t.Helper()
	repo, err := Open(context.Background(), filepath.Join(t.TempDir(), "meetings.db"), logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSaveAndGet(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	m := &Meeting{
		Title:      "Weekly sync",
		SourceFile: "weekly.wav",
		Transcript: "We will ship by Friday.",
		Summary:    "Team planned a Friday release.",
		ActionItems: []ActionItem{
			{Description: "Alice to write tests."},
			{Description: "Bob to deploy."},
		},
	}
	require.NoError(t, repo.Save(ctx, m))
	assert.Len(t, m.ID, 36)
	assert.False(t, m.CreatedAt.IsZero())
	assert.NotZero(t, m.ActionItems[0].ID)

	got, err := repo.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, m.Title, got.Title)
	assert.Equal(t, m.Transcript, got.Transcript)
	assert.True(t, m.CreatedAt.Equal(got.CreatedAt))
	require.Len(t, got.ActionItems, 2)
	assert.Equal(t, "Alice to write tests.", got.ActionItems[0].Description)
	assert.Equal(t, "Bob to deploy.", got.ActionItems[1].Description)
	assert.Equal(t, StatusPending, got.ActionItems[1].Status)
}

func TestGetWithoutActionItems(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	m := &Meeting{Title: "Quiet", SourceFile: "q.mp3", Summary: "Nothing to do."}
	require.NoError(t, repo.Save(ctx, m))

	got, err := repo.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.ActionItems)
	assert.Empty(t, got.ActionItems)
}

func TestGetNotFound(t *testing.T) {
	_, err := openTestRepo(t).Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveDuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	require.NoError(t, repo.Save(ctx, &Meeting{ID: "fixed", Title: "a"}))
	assert.Error(t, repo.Save(ctx, &Meeting{ID: "fixed", Title: "b"}))
}

func TestListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Save(ctx, &Meeting{
			Title:      fmt.Sprintf("meeting %d", i),
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
			Transcript: "long transcript",
		}))
	}

	list, err := repo.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "meeting 2", list[0].Title)
	assert.Equal(t, "meeting 1", list[1].Title)
	assert.Empty(t, list[0].Transcript)

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestListEmpty(t *testing.T) {
	list, err := openTestRepo(t).List(context.Background(), 10)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
