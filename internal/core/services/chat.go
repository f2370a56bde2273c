package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/quillworks/quill-cli/internal/core/domain"
	"github.com/quillworks/quill-cli/internal/core/ports/driven"
	"github.com/quillworks/quill-cli/internal/core/ports/driving"
	"github.com/quillworks/quill-cli/internal/logger"
)

// Ensure ChatService implements the interface.
var _ driving.ChatService = (*ChatService)(nil)

// Fallback replies used when the prompt store cannot provide the
// configured text.
const (
	defaultSmallTalkReply = "Hi! Ask me about my projects, my resume, or how I work."

	defaultContactReply = "Happy to talk. The contact page has my email and booking link; " +
		"that is the fastest way to reach me."

	defaultInsufficientContext = "I don't have enough indexed material to answer that well. " +
		"Try asking about a specific project, my resume, or my teaching work."
)

// ChatConfig tunes the pipeline.
type ChatConfig struct {
	// AllowPersonal enables the personal tone register.
	AllowPersonal bool

	// TopK is the retrieval candidate pool size.
	TopK int

	// MaxSnippets is the final context size after reranking.
	MaxSnippets int

	// Generation is passed through to the answer generator.
	Generation driven.GenerateOptions
}

// ChatService runs the full pipeline: ping fast path, intent routing,
// tone selection, retrieval, reranking, prompt assembly, generation,
// and citation extraction.
type ChatService struct {
	retrieval driving.RetrievalService
	generator driven.AnswerGenerator
	assembler *PromptAssembler
	cfg       ChatConfig
}

// NewChatService creates a new chat service. The generator is optional;
// when nil, questions that reach generation get an explicit error.
func NewChatService(
	retrieval driving.RetrievalService,
	generator driven.AnswerGenerator,
	assembler *PromptAssembler,
	cfg ChatConfig,
) *ChatService {
	if cfg.MaxSnippets <= 0 {
		cfg.MaxSnippets = domain.DefaultMaxSnippets
	}
	if cfg.Generation.MaxTokens <= 0 {
		cfg.Generation.MaxTokens = 1024
	}
	return &ChatService{
		retrieval: retrieval,
		generator: generator,
		assembler: assembler,
		cfg:       cfg,
	}
}

// Ask answers a question grounded in the corpus.
func (s *ChatService) Ask(ctx context.Context, question string, opts domain.AskOptions) (*domain.Answer, error) {
	trimmed := strings.TrimSpace(question)
	if trimmed == "" {
		return nil, domain.ErrInvalidInput
	}

	// Liveness check ahead of routing.
	if trimmed == PingInput {
		return &domain.Answer{Text: PongReply, Intent: domain.IntentSmallTalk}, nil
	}

	intent := RouteIntent(trimmed)
	logger.Debug("Routed %q as %s", trimmed, intent)

	switch intent {
	case domain.IntentSmallTalk:
		return &domain.Answer{
			Text:   s.assembler.CannedReply(driven.PromptSmallTalk, defaultSmallTalkReply),
			Intent: intent,
		}, nil
	case domain.IntentContact:
		return &domain.Answer{
			Text:   s.assembler.CannedReply(driven.PromptContact, defaultContactReply),
			Intent: intent,
		}, nil
	}

	return s.answerWithRetrieval(ctx, trimmed, opts)
}

func (s *ChatService) answerWithRetrieval(
	ctx context.Context, question string, opts domain.AskOptions,
) (*domain.Answer, error) {
	selected := PickTone(question, opts.Scope, true)
	tone := selected
	downgraded := false
	if selected == domain.TonePersonal && !s.cfg.AllowPersonal {
		tone = domain.ToneProfessional
		downgraded = true
	}
	logger.Debug("Tone: %s (downgraded=%t)", tone, downgraded)

	candidates, err := s.retrieval.Retrieve(ctx, question, domain.RetrieveOptions{
		TopK:  s.cfg.TopK,
		Scope: opts.Scope,
	})
	if err != nil {
		// Index unavailable is a degradation, not a request failure.
		logger.Warn("Retrieval failed, degrading to no-context response: %v", err)
		candidates = nil
	}

	ranked := s.retrieval.Rerank(candidates, s.cfg.MaxSnippets)
	entries := make([]domain.ContextEntry, 0, len(ranked))
	for _, c := range ranked {
		entries = append(entries, domain.ContextEntryFrom(c))
	}

	if len(entries) == 0 {
		return &domain.Answer{
			Text:   s.assembler.CannedReply(driven.PromptInsufficientContext, defaultInsufficientContext),
			Intent: domain.IntentProceed,
			Tone:   tone,
		}, nil
	}

	if s.generator == nil {
		return nil, domain.ErrGeneratorUnavailable
	}

	system, err := s.assembler.SystemPrompt(tone)
	if err != nil {
		return nil, fmt.Errorf("assembling system prompt: %w", err)
	}
	if downgraded {
		system = s.assembler.AppendDowngradeNote(system)
	}

	user := s.assembler.UserPrompt(question, entries, opts.History)

	text, err := s.generator.Generate(ctx, system, []domain.Turn{
		{Role: "user", Content: user},
	}, s.cfg.Generation)
	if err != nil {
		logger.Warn("Generation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrGeneration, err)
	}

	return &domain.Answer{
		Text:      text,
		Citations: ExtractCitations(text, entries),
		Intent:    domain.IntentProceed,
		Tone:      tone,
		Grounded:  true,
	}, nil
}
