package domain

// Tone is a selectable response register. It affects system-prompt
// phrasing and length limits, never retrieval behaviour.
type Tone string

const (
	// ToneProfessional is the default register: concise, factual.
	ToneProfessional Tone = "professional"

	// ToneNarrative is used for story/decision questions: sequential,
	// tension-and-resolution shaped.
	ToneNarrative Tone = "narrative"

	// TonePersonal is the reflective register. Only selected when the
	// personal-tone feature flag is on; otherwise callers downgrade to
	// professional and note the downgrade in the system prompt.
	TonePersonal Tone = "personal"
)
