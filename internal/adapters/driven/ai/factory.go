// Package ai provides factory functions for creating answer generator
// adapters from configuration.
package ai

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/quillworks/quill-cli/internal/adapters/driven/config/file"
	anthropicllm "github.com/quillworks/quill-cli/internal/adapters/driven/llm/anthropic"
	ollamallm "github.com/quillworks/quill-cli/internal/adapters/driven/llm/ollama"
	"github.com/quillworks/quill-cli/internal/core/domain"
	"github.com/quillworks/quill-cli/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for generator connectivity validation.
const pingTimeout = 5 * time.Second

// Supported provider names.
const (
	ProviderAnthropic = "anthropic"
	ProviderOllama    = "ollama"
)

// envAnthropicKey overrides the configured API key when set.
const envAnthropicKey = "ANTHROPIC_API_KEY"

// CreateGenerator creates the configured answer generator.
// Returns nil with no error when no provider is configured - the
// pipeline then runs in retrieval-only mode.
func CreateGenerator(cfg driven.ConfigStore) (driven.AnswerGenerator, error) {
	provider := cfg.GetString(file.KeyProvider)

	switch provider {
	case "":
		return nil, nil

	case ProviderAnthropic:
		apiKey := os.Getenv(envAnthropicKey)
		if apiKey == "" {
			apiKey = cfg.GetString(file.KeyAnthropicKey)
		}
		return anthropicllm.NewGenerator(anthropicllm.Config{
			APIKey: apiKey,
			Model:  cfg.GetString(file.KeyModel),
		})

	case ProviderOllama:
		return ollamallm.NewGenerator(ollamallm.Config{
			BaseURL: cfg.GetString(file.KeyOllamaURL),
			Model:   cfg.GetString(file.KeyModel),
		}), nil

	default:
		return nil, fmt.Errorf("unsupported generator provider: %s", provider)
	}
}

// CreateAndValidateGenerator creates the configured generator and
// validates connectivity. Returns the generator if successful, or an
// error with guidance.
func CreateAndValidateGenerator(cfg driven.ConfigStore) (driven.AnswerGenerator, error) {
	gen, err := CreateGenerator(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w. Run 'quill config' to fix",
			domain.ErrGeneratorUnavailable, err)
	}
	if gen == nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := gen.Ping(ctx); err != nil {
		gen.Close()
		return nil, fmt.Errorf("%w: service unreachable (%w). Run 'quill config' to fix",
			domain.ErrGeneratorUnavailable, err)
	}

	return gen, nil
}
