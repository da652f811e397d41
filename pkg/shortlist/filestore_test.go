package shortlist

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(filepath.Join(t.TempDir(), "data", "shortlist.json"))
	require.NoError(t, err)
	return store
}

func TestFileStoreAddAndGet(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	c := Candidate{Email: "jane@example.com", CandidateName: "Jane Doe", TotalScore: 82, Status: StatusShortlisted}
	require.NoError(t, store.Add(ctx, c))

	got, err := store.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.CandidateName)
	assert.Equal(t, 82, got.TotalScore)

	_, err = store.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreRejectsDuplicates(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	c := Candidate{Email: "jane@example.com"}
	require.NoError(t, store.Add(ctx, c))
	assert.ErrorIs(t, store.Add(ctx, c), ErrAlreadyShortlisted)
}

func TestFileStoreRemove(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, Candidate{Email: "jane@example.com"}))
	require.NoError(t, store.Remove(ctx, "jane@example.com"))
	assert.ErrorIs(t, store.Remove(ctx, "jane@example.com"), ErrNotFound)

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestFileStoreUpdateStatusAndNotes(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	at := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	require.NoError(t, store.Add(ctx, Candidate{Email: "jane@example.com", Status: StatusShortlisted}))
	require.NoError(t, store.UpdateStatus(ctx, "jane@example.com", StatusInterviewed, at))
	require.NoError(t, store.AddNote(ctx, "jane@example.com", Note{Text: "strong systems background", AddedAt: at}))

	got, err := store.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, StatusInterviewed, got.Status)
	require.NotNil(t, got.StatusUpdatedAt)
	assert.True(t, got.StatusUpdatedAt.Equal(at))
	require.Len(t, got.Notes, 1)
	assert.Equal(t, "strong systems background", got.Notes[0].Text)

	assert.ErrorIs(t, store.UpdateStatus(ctx, "nobody@example.com", StatusHired, at), ErrNotFound)
	assert.ErrorIs(t, store.AddNote(ctx, "nobody@example.com", Note{}), ErrNotFound)
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shortlist.json")
	ctx := context.Background()

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Add(ctx, Candidate{Email: "jane@example.com", TotalScore: 77}))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	got, err := reopened.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, 77, got.TotalScore)
}

func TestFileStoreToleratesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shortlist.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store, err := NewFileStore(path)
	require.NoError(t, err)
	all, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}
