package domain

// Intent classifies an incoming question before retrieval. It is
// decided fresh per message; no state persists between messages.
type Intent int

const (
	// IntentProceed routes to the full retrieval pipeline.
	IntentProceed Intent = iota

	// IntentSmallTalk short-circuits for greetings and short acknowledgments.
	IntentSmallTalk

	// IntentContact short-circuits for contact/hiring questions.
	IntentContact
)

// String returns the intent name for logging.
func (i Intent) String() string {
	switch i {
	case IntentSmallTalk:
		return "small_talk"
	case IntentContact:
		return "contact"
	default:
		return "proceed"
	}
}
