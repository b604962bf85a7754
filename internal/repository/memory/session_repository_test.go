package memory

import (
	"testing"

	"agri-solve-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepositorySaveAndGet(t *testing.T) {
	repo := NewSessionRepository()

	session := store.NewAppSession("user-1")
	repo.Save("user-1", session)

	got, found := repo.Get("user-1")
	require.True(t, found)
	assert.Same(t, session, got)
}

func TestSessionRepositoryGetMissing(t *testing.T) {
	repo := NewSessionRepository()

	got, found := repo.Get("nobody")
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestSessionRepositoryDelete(t *testing.T) {
	repo := NewSessionRepository()

	repo.Save("user-1", store.NewAppSession("user-1"))
	repo.Delete("user-1")

	_, found := repo.Get("user-1")
	assert.False(t, found)
}

func TestSessionRepositoryOverwrite(t *testing.T) {
	repo := NewSessionRepository()

	first := store.NewAppSession("user-1")
	second := store.NewAppSession("user-1")
	repo.Save("user-1", first)
	repo.Save("user-1", second)

	got, found := repo.Get("user-1")
	require.True(t, found)
	assert.Same(t, second, got)
}
