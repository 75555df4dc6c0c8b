package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_PersisteERecarrega(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console", "session")

	store, err := NewFileStore(path)
	require.NoError(t, err)

	_, ok := store.Get()
	assert.False(t, ok, "arquivo ausente significa sessão ausente")

	require.NoError(t, store.Set("tok-123"))

	token, ok := store.Get()
	assert.True(t, ok)
	assert.Equal(t, "tok-123", token)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// Um novo processo relê o token do disco.
	reloaded, err := NewFileStore(path)
	require.NoError(t, err)
	token, ok = reloaded.Get()
	assert.True(t, ok)
	assert.Equal(t, "tok-123", token)
}

func TestFileStore_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("tok-123"))

	require.NoError(t, store.Clear())

	_, ok := store.Get()
	assert.False(t, ok)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Clear sem sessão é inócuo.
	assert.NoError(t, store.Clear())
}

func TestFileStore_SobrescreveTokenAnterior(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")

	store, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Set("antigo"))
	require.NoError(t, store.Set("novo"))

	token, ok := store.Get()
	assert.True(t, ok)
	assert.Equal(t, "novo", token)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	_, ok := store.Get()
	assert.False(t, ok)

	require.NoError(t, store.Set("tok"))
	token, ok := store.Get()
	assert.True(t, ok)
	assert.Equal(t, "tok", token)

	require.NoError(t, store.Clear())
	_, ok = store.Get()
	assert.False(t, ok)
}
