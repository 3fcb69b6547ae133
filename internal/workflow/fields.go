package workflow

import (
	"strings"

	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/domain"
)

// FieldSpec describes one slot in a collection schema: the prompt asking for
// it, the extraction rule storing the answer, and the predicate telling the
// engine the slot is already satisfied.
//
// Store never fails. An unusable answer simply leaves the target attribute
// unset; the slot is consumed either way and is not revisited.
type FieldSpec struct {
	Name   string
	Prompt string
	Store  func(s *domain.Session, raw string)
	Filled func(s *domain.Session) bool
}

var softSkillKeywords = []string{
	"communication", "teamwork", "leadership", "problem solving",
	"time management", "adaptability", "collaboration",
}

var certificationKeywords = []string{"certificate", "certification", "certified", "course"}

// answer normalizes a raw chat message into a field value. The second return
// is false when the message carries no usable value: empty input, or a
// literal "skip"/"none" answer, which satisfies the slot without data.
func answer(raw string) (string, bool) {
	v := strings.TrimSpace(raw)
	switch strings.ToLower(v) {
	case "", "skip", "none":
		return "", false
	}
	return v, true
}

// splitList splits a comma-separated answer into trimmed non-empty tokens.
func splitList(raw string) []string {
	var out []string
	for _, tok := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(tok); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func matchesAny(s string, keywords []string) bool {
	lower := strings.ToLower(s)
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// classifySkills buckets comma-separated skills into technical and soft.
func classifySkills(raw string) domain.SkillSet {
	var set domain.SkillSet
	for _, skill := range splitList(raw) {
		if matchesAny(skill, softSkillKeywords) {
			set.Soft = append(set.Soft, skill)
		} else {
			set.Technical = append(set.Technical, skill)
		}
	}
	return set
}

// classifyAchievements splits a comma-separated answer into achievements and
// certifications based on certification keywords.
func classifyAchievements(raw string) (achievements, certifications []string) {
	for _, item := range splitList(raw) {
		if matchesAny(item, certificationKeywords) {
			certifications = append(certifications, item)
		} else {
			achievements = append(achievements, item)
		}
	}
	return achievements, certifications
}

var linkMarkers = []string{"http", "linkedin.com", "github.com", "portfolio"}

// normalizeLink validates a LinkedIn/portfolio answer and normalizes it to a
// URL. The answer is accepted only when it looks link-like; a scheme is
// prefixed when absent.
func normalizeLink(raw string) (string, bool) {
	v, ok := answer(raw)
	if !ok || !matchesAny(v, linkMarkers) {
		return "", false
	}
	if !strings.HasPrefix(v, "http") {
		v = "https://" + v
	}
	return v, true
}

// resumeSchema is the fixed-order resume collection schema. The linkedin and
// achievements entries are OR-slots: one prompt satisfies two record
// attributes, routed by content.
var resumeSchema = []FieldSpec{
	{
		Name:   "name",
		Prompt: "Hello! I'm here to help you create a professional resume. Let's start with the basics.\n\n**What is your full name?**",
		Store: func(s *domain.Session, raw string) {
			if v, ok := answer(raw); ok {
				s.Resume.Name = v
			}
		},
		Filled: func(s *domain.Session) bool { return s.Resume.Name != "" },
	},
	{
		Name:   "email",
		Prompt: "Great! Now, let's add your contact information.\n\n**What is your email address?**",
		Store: func(s *domain.Session, raw string) {
			if v, ok := answer(raw); ok && strings.Contains(v, "@") {
				s.Resume.Email = strings.ToLower(v)
			}
		},
		Filled: func(s *domain.Session) bool { return s.Resume.Email != "" },
	},
	{
		Name:   "linkedin",
		Prompt: "Good! Do you have a LinkedIn profile or portfolio website? Please share the link (or type 'skip' if you don't have one).",
		Store: func(s *domain.Session, raw string) {
			v, ok := normalizeLink(raw)
			if !ok {
				return
			}
			if strings.Contains(strings.ToLower(raw), "linkedin") {
				s.Resume.LinkedIn = v
			} else {
				s.Resume.Portfolio = v
			}
		},
		Filled: func(s *domain.Session) bool {
			return s.Resume.LinkedIn != "" || s.Resume.Portfolio != ""
		},
	},
	{
		Name:   "summary",
		Prompt: "Perfect! Now, let's create a compelling career summary.\n\n**Please provide a 2-3 line career summary or objective.**\nThis should highlight your career goals and key strengths.",
		Store: func(s *domain.Session, raw string) {
			if v, ok := answer(raw); ok {
				s.Resume.Summary = v
			}
		},
		Filled: func(s *domain.Session) bool { return s.Resume.Summary != "" },
	},
	{
		Name:   "education",
		Prompt: "Excellent! Let's add your educational background.\n\n**Please provide your education details:**\n- Degree (e.g., B.Tech Computer Science)\n- College/University name\n- Graduation year (or expected)\n- Grade/CGPA (if applicable)\n\nYou can provide this in any format, and I'll structure it properly.",
		Store: func(s *domain.Session, raw string) {
			if v, ok := answer(raw); ok {
				s.Resume.Education = append(s.Resume.Education, domain.Detail{Details: v})
			}
		},
		Filled: func(s *domain.Session) bool { return len(s.Resume.Education) > 0 },
	},
	{
		Name:   "skills",
		Prompt: "Great! Now let's list your skills.\n\n**Please provide your skills separated by commas.**\nInclude both technical skills (programming languages, tools, technologies) and soft skills (communication, teamwork, etc.)\n\nExample: Python, JavaScript, React, Communication, Problem Solving",
		Store: func(s *domain.Session, raw string) {
			if _, ok := answer(raw); ok {
				s.Resume.Skills = classifySkills(raw)
			}
		},
		Filled: func(s *domain.Session) bool { return !s.Resume.Skills.Empty() },
	},
	{
		Name:   "experience",
		Prompt: "Let's add your work experience or internships.\n\n**Please provide your experience details:**\n- Job/Internship title\n- Company name\n- Duration (e.g., June 2023 - August 2023)\n- Key achievements or responsibilities (bullet points)\n\nIf you have multiple experiences, list them all. Type 'none' if you don't have any experience yet.",
		Store: func(s *domain.Session, raw string) {
			if v, ok := answer(raw); ok {
				s.Resume.Experience = append(s.Resume.Experience, domain.Detail{Details: v})
			}
		},
		Filled: func(s *domain.Session) bool { return len(s.Resume.Experience) > 0 },
	},
	{
		Name:   "projects",
		Prompt: "Now let's add your projects.\n\n**Please provide your project details:**\n- Project name\n- Technologies/tools used\n- Brief description (1-2 lines)\n\nList all relevant projects. Type 'none' if you don't have any projects to mention.",
		Store: func(s *domain.Session, raw string) {
			if v, ok := answer(raw); ok {
				s.Resume.Projects = append(s.Resume.Projects, domain.Detail{Details: v})
			}
		},
		Filled: func(s *domain.Session) bool { return len(s.Resume.Projects) > 0 },
	},
	{
		Name:   "achievements",
		Prompt: "Finally, let's add your achievements and certifications.\n\n**Please provide:**\n- Any notable achievements, awards, or honors\n- Certifications (with issuing organization if applicable)\n\nList them separated by commas or new lines. Type 'none' if you don't have any.",
		Store: func(s *domain.Session, raw string) {
			if _, ok := answer(raw); !ok {
				return
			}
			s.Resume.Achievements, s.Resume.Certifications = classifyAchievements(raw)
		},
		Filled: func(s *domain.Session) bool {
			return len(s.Resume.Achievements) > 0 || len(s.Resume.Certifications) > 0
		},
	},
}

// careerSchema collects the three inputs the career matcher needs.
var careerSchema = []FieldSpec{
	{
		Name:   "skills",
		Prompt: "What are your key skills? Please list them separated by commas.",
		Store: func(s *domain.Session, raw string) {
			if _, ok := answer(raw); ok {
				s.Career.Skills = splitList(raw)
			}
		},
		Filled: func(s *domain.Session) bool { return len(s.Career.Skills) > 0 },
	},
	{
		Name:   "interests",
		Prompt: "What are your interests? For example: data, design, security, marketing.",
		Store: func(s *domain.Session, raw string) {
			if _, ok := answer(raw); ok {
				s.Career.Interests = splitList(raw)
			}
		},
		Filled: func(s *domain.Session) bool { return len(s.Career.Interests) > 0 },
	},
	{
		Name:   "education",
		Prompt: "What is your educational background?",
		Store: func(s *domain.Session, raw string) {
			if v, ok := answer(raw); ok {
				s.Career.Education = v
			}
		},
		Filled: func(s *domain.Session) bool { return s.Career.Education != "" },
	},
}

// schemaFor returns the collection schema for a session's intent.
func schemaFor(intent domain.Intent) []FieldSpec {
	if intent == domain.IntentCareer {
		return careerSchema
	}
	return resumeSchema
}
