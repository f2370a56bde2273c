package services

import (
	"fmt"
	"strings"

	"github.com/quillworks/quill-cli/internal/core/domain"
	"github.com/quillworks/quill-cli/internal/core/ports/driven"
)

// tonePlaceholder is substituted with the tone voice block in the base
// system prompt.
const tonePlaceholder = "{{TONE}}"

// historyTurns is how many trailing conversation turns are rendered
// into the user prompt.
const historyTurns = 2

// PromptAssembler builds system and user prompts from templates in the
// prompt store.
type PromptAssembler struct {
	prompts driven.PromptStore
}

// NewPromptAssembler creates a new prompt assembler.
func NewPromptAssembler(prompts driven.PromptStore) *PromptAssembler {
	return &PromptAssembler{prompts: prompts}
}

// SystemPrompt renders the base grounding template with the
// tone-specific voice block substituted into its placeholder.
func (a *PromptAssembler) SystemPrompt(tone domain.Tone) (string, error) {
	base, err := a.prompts.Load(driven.PromptSystemBase)
	if err != nil {
		return "", fmt.Errorf("loading system prompt: %w", err)
	}

	voice, err := a.prompts.Load(toneName(tone))
	if err != nil {
		return "", fmt.Errorf("loading tone block: %w", err)
	}

	return strings.ReplaceAll(base, tonePlaceholder, voice), nil
}

// AppendDowngradeNote marks a system prompt whose personal register was
// downgraded because the feature flag is off.
func (a *PromptAssembler) AppendDowngradeNote(system string) string {
	return system + "\n\nNote: the personal register is disabled. Answer in the professional voice and keep reflection brief."
}

// UserPrompt builds the user message: the question, the numbered
// context snippets, grounding instructions, and the trailing turns of
// conversation history.
func (a *PromptAssembler) UserPrompt(question string, entries []domain.ContextEntry, history []domain.Turn) string {
	var b strings.Builder

	b.WriteString("Question: ")
	b.WriteString(question)
	b.WriteString("\n\nContext:\n")
	for i, e := range entries {
		fmt.Fprintf(&b, "[%d] (%s) %s\n", i+1, e.Title, e.Snippet)
	}

	b.WriteString("\nAnswer using only the numbered context above. ")
	b.WriteString("Cite the context you draw on with bracketed markers like [1]. ")
	b.WriteString("Prefer short bullet points. ")
	b.WriteString("If the context does not cover the question, say so plainly instead of guessing.")

	if len(history) > 0 {
		start := len(history) - historyTurns
		if start < 0 {
			start = 0
		}
		b.WriteString("\n\nRecent conversation:\n")
		for _, turn := range history[start:] {
			fmt.Fprintf(&b, "%s: %s\n", roleLabel(turn.Role), turn.Content)
		}
	}

	return b.String()
}

// CannedReply loads a fixed response by prompt name, falling back to
// the given default when the store cannot provide it.
func (a *PromptAssembler) CannedReply(name, fallback string) string {
	text, err := a.prompts.Load(name)
	if err != nil || strings.TrimSpace(text) == "" {
		return fallback
	}
	return text
}

func toneName(tone domain.Tone) string {
	switch tone {
	case domain.ToneNarrative:
		return driven.PromptToneNarrative
	case domain.TonePersonal:
		return driven.PromptTonePersonal
	default:
		return driven.PromptToneProfessional
	}
}

func roleLabel(role string) string {
	if role == "" {
		return "User"
	}
	return strings.ToUpper(role[:1]) + role[1:]
}
