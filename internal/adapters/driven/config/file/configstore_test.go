package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyProvider, "anthropic"))
	require.NoError(t, store.Set(KeyTopK, 12))
	require.NoError(t, store.Set(KeyAllowPersonal, true))
	require.NoError(t, store.Set("content.topics", []string{"golang", "teaching"}))

	assert.Equal(t, "anthropic", store.GetString(KeyProvider))
	assert.Equal(t, 12, store.GetInt(KeyTopK))
	assert.True(t, store.GetBool(KeyAllowPersonal))
	assert.Equal(t, []string{"golang", "teaching"}, store.GetStringSlice("content.topics"))
}

func TestConfigStore_MissingKeys(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get("nonexistent")
	assert.False(t, ok)
	assert.Equal(t, "", store.GetString("nonexistent"))
	assert.Equal(t, 0, store.GetInt("nonexistent"))
	assert.False(t, store.GetBool("nonexistent"))
	assert.Nil(t, store.GetStringSlice("nonexistent"))
}

func TestConfigStore_WrongType(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyModel, 42))
	assert.Equal(t, "", store.GetString(KeyModel))
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyContentDir, "/srv/content"))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "/srv/content", reopened.GetString(KeyContentDir))
}

func TestConfigStore_LoadsNestedTOML(t *testing.T) {
	dir := t.TempDir()
	cfg := `[generator]
provider = "ollama"
max_tokens = 800

[chat]
allow_personal_tone = true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(cfg), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "ollama", store.GetString(KeyProvider))
	assert.Equal(t, 800, store.GetInt(KeyMaxTokens))
	assert.True(t, store.GetBool(KeyAllowPersonal))
}

func TestConfigStore_Path(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}
