package services

import (
	"regexp"
	"strings"

	"github.com/quillworks/quill-cli/internal/core/domain"
)

var narrativeRe = regexp.MustCompile(
	`(?i)(tell me the story|how did you decide|walk me through|why did you|what was it like)`)

// personalKeywords is the fixed vocabulary that signals a reflective,
// personal question.
var personalKeywords = []string{
	"personal", "vulnerable", "honest", "struggle", "struggled",
	"afraid", "fear", "failure", "failed", "doubt", "burnout",
}

// PickTone chooses the response register from question phrasing, the
// route scope, and the personal-tone feature flag. The downgrade rule
// for a disabled flag is enforced by the caller, not here.
func PickTone(question, scope string, allowPersonal bool) domain.Tone {
	if narrativeRe.MatchString(question) || isProjectScope(scope) {
		return domain.ToneNarrative
	}

	if allowPersonal {
		q := strings.ToLower(question)
		for _, kw := range personalKeywords {
			if strings.Contains(q, kw) {
				return domain.TonePersonal
			}
		}
	}

	return domain.ToneProfessional
}

// coreDocs are non-project documents; a scope pointing anywhere else is
// a project-detail context and reads best in the narrative register.
var coreDocs = map[string]bool{
	"resume":   true,
	"teaching": true,
	"contact":  true,
}

func isProjectScope(scope string) bool {
	return scope != "" && !coreDocs[scope]
}
