package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillworks/quill-cli/internal/adapters/driven/config/file"
)

func newTestConfig(t *testing.T) *file.ConfigStore {
	t.Helper()

	cfg, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	return cfg
}

func TestCreateGenerator_Unconfigured(t *testing.T) {
	cfg := newTestConfig(t)

	gen, err := CreateGenerator(cfg)
	require.NoError(t, err)
	assert.Nil(t, gen)
}

func TestCreateGenerator_UnsupportedProvider(t *testing.T) {
	cfg := newTestConfig(t)
	require.NoError(t, cfg.Set(file.KeyProvider, "bedrock"))

	_, err := CreateGenerator(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bedrock")
}

func TestCreateGenerator_Ollama(t *testing.T) {
	cfg := newTestConfig(t)
	require.NoError(t, cfg.Set(file.KeyProvider, ProviderOllama))
	require.NoError(t, cfg.Set(file.KeyModel, "llama3.2"))

	gen, err := CreateGenerator(cfg)
	require.NoError(t, err)
	require.NotNil(t, gen)
	assert.Equal(t, "llama3.2", gen.ModelName())
}

func TestCreateGenerator_AnthropicRequiresKey(t *testing.T) {
	cfg := newTestConfig(t)
	require.NoError(t, cfg.Set(file.KeyProvider, ProviderAnthropic))
	t.Setenv(envAnthropicKey, "")

	_, err := CreateGenerator(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestCreateGenerator_AnthropicFromEnv(t *testing.T) {
	cfg := newTestConfig(t)
	require.NoError(t, cfg.Set(file.KeyProvider, ProviderAnthropic))
	t.Setenv(envAnthropicKey, "sk-test")

	gen, err := CreateGenerator(cfg)
	require.NoError(t, err)
	require.NotNil(t, gen)
}
