package domain

// Turn is a single message in a conversation.
type Turn struct {
	// Role is "user" or "assistant".
	Role string

	// Content is the message text.
	Content string
}

// Citation maps a bracketed marker in generated text back to the
// context entry it was grounded in.
type Citation struct {
	// Title is the cited document title.
	Title string

	// SourceURL is the canonical link of the cited document.
	SourceURL string
}

// AskOptions configures one pipeline run.
type AskOptions struct {
	// Scope limits retrieval to one source document.
	Scope string

	// History is the prior conversation. Only the most recent turns
	// are rendered into the prompt.
	History []Turn
}

// Answer is the result of one pipeline run.
type Answer struct {
	// Text is the generated (or canned) response.
	Text string

	// Citations are the context entries the answer referenced.
	Citations []Citation

	// Intent is how the question was routed.
	Intent Intent

	// Tone is the register used for generation. Empty for short-circuit
	// responses that never reached prompt assembly.
	Tone Tone

	// Grounded reports whether retrieved context backed the answer.
	Grounded bool
}
