package driven

// PromptStore provides access to prompt templates. Implementations may
// load prompts from files, embed them in the binary, or fetch them from
// a remote configuration service.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	// Implementations fall back to a sensible embedded default when a
	// template is missing.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next
	// access. Useful when prompts have been edited on disk.
	Reload()
}

// Well-known prompt names. These constants define the contract between
// prompt consumers and providers.
const (
	// PromptSystemBase is the grounding system prompt. It contains a
	// {{TONE}} placeholder for the tone-specific voice block.
	PromptSystemBase = "system_base"

	// PromptToneProfessional is the default voice block.
	PromptToneProfessional = "tone_professional"

	// PromptToneNarrative is the story-telling voice block.
	PromptToneNarrative = "tone_narrative"

	// PromptTonePersonal is the reflective voice block, used only when
	// the personal-tone flag is enabled.
	PromptTonePersonal = "tone_personal"

	// PromptInsufficientContext is the fixed response returned when
	// retrieval produces no usable context.
	PromptInsufficientContext = "insufficient_context"

	// PromptSmallTalk is the canned reply for greetings.
	PromptSmallTalk = "small_talk"

	// PromptContact is the canned reply for contact/hiring questions.
	PromptContact = "contact"
)
