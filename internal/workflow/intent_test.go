package workflow

import (
	"testing"

	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    domain.Intent
	}{
		{"plain resume", "resume", domain.IntentResume},
		{"cv keyword", "I want to write my CV", domain.IntentResume},
		{"build resume phrase", "help me build resume please", domain.IntentResume},
		{"plain career", "career", domain.IntentCareer},
		{"guidance keyword", "I need some guidance", domain.IntentCareer},
		{"what should phrase", "what should I do after graduation?", domain.IntentCareer},
		{"unrelated", "hello there", domain.IntentUnknown},
		{"empty", "", domain.IntentUnknown},
		{"resume wins over career", "I want a resume for my career", domain.IntentResume},
		{"case insensitive", "RESUME", domain.IntentResume},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.message); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}
