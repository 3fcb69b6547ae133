package workflow

import (
	"strings"

	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/domain"
)

// Resume keywords are checked before career keywords, so a message matching
// both ("resume advice") routes to the resume workflow.
var (
	resumeKeywords = []string{"resume", "cv", "create resume", "build resume", "make resume"}
	careerKeywords = []string{"career", "guidance", "advice", "path", "what should", "recommendation"}
)

// Classify maps a free-text message to a session intent.
// It is a pure function: lower-case substring matching against two fixed
// keyword sets, with IntentUnknown as the total fallback.
func Classify(message string) domain.Intent {
	m := strings.ToLower(strings.TrimSpace(message))
	for _, k := range resumeKeywords {
		if strings.Contains(m, k) {
			return domain.IntentResume
		}
	}
	for _, k := range careerKeywords {
		if strings.Contains(m, k) {
			return domain.IntentCareer
		}
	}
	return domain.IntentUnknown
}
