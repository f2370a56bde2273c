package services

import (
	"regexp"
	"strings"

	"github.com/quillworks/quill-cli/internal/core/domain"
)

// Liveness fast path: an exact "ping" is answered ahead of intent
// routing with a string-equality check, not a pattern.
const (
	PingInput = "ping"
	PongReply = "pong"
)

// smallTalkMaxLen length-gates small talk so a substantive question
// that happens to open with "hi" is not misrouted.
const smallTalkMaxLen = 20

var smallTalkRe = regexp.MustCompile(
	`(?i)^(hi|hiya|hello|hey|yo|howdy|sup|thanks|thank you|ty|ok|okay|cool|nice|good (morning|afternoon|evening))[\s.!?,]*$`)

var contactRe = regexp.MustCompile(
	`(?i)\b(hire|hiring|availability|available for|book|rate|rates|contact|email|linkedin|schedule|cal\.com)\b`)

// RouteIntent classifies a question as small talk, a contact request,
// or a real question for the retrieval pipeline. Decided fresh per
// message; nothing persists.
func RouteIntent(input string) domain.Intent {
	trimmed := strings.TrimSpace(input)

	if len(trimmed) <= smallTalkMaxLen && smallTalkRe.MatchString(trimmed) {
		return domain.IntentSmallTalk
	}
	if contactRe.MatchString(trimmed) {
		return domain.IntentContact
	}
	return domain.IntentProceed
}
