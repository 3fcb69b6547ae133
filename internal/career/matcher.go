package career

import (
	"sort"
	"strings"
)

// Match is one scored catalog entry for a user profile.
type Match struct {
	Path          Path     `json:"path"`
	Score         int      `json:"score"`
	MatchedSkills []string `json:"matched_skills"`
}

// educationTechTerms mark an education string as technical for the +1 bonus.
var educationTechTerms = []string{"computer", "engineering", "science", "technology", "it", "information"}

// Matcher scores a user profile against the career path catalog.
type Matcher struct {
	catalog []Path
}

// NewMatcher creates a matcher over the given catalog.
func NewMatcher(catalog []Path) *Matcher {
	return &Matcher{catalog: catalog}
}

// Match scores every catalog path and returns the top 3. Ties keep catalog
// order (stable sort). When every score is zero the first three catalog
// entries are still returned.
//
// Scoring per path:
//   - +2 per user skill that substring-matches a required skill in either
//     direction; the first matching required skill stops the scan so a skill
//     is never double counted.
//   - +3 per user interest sharing a word with the path title (either
//     direction).
//   - +1 when the education string looks technical and the path key
//     contains "tech".
func (m *Matcher) Match(skills, interests []string, education string) []Match {
	skillsLower := lowerAll(skills)
	interestsLower := lowerAll(interests)
	educationLower := strings.ToLower(education)

	matches := make([]Match, 0, len(m.catalog))
	for _, path := range m.catalog {
		score := 0
		var matched []string
		seen := make(map[string]bool)

		for _, skill := range skillsLower {
			for _, req := range path.RequiredSkills {
				if strings.Contains(skill, req) || strings.Contains(req, skill) {
					score += 2
					if !seen[skill] {
						seen[skill] = true
						matched = append(matched, skill)
					}
					break
				}
			}
		}

		titleLower := strings.ToLower(path.Title)
		titleWords := strings.Fields(titleLower)
		for _, interest := range interestsLower {
			if wordsOverlap(interest, titleWords) || wordsOverlap(titleLower, strings.Fields(interest)) {
				score += 3
			}
		}

		if containsAny(educationLower, educationTechTerms) && strings.Contains(path.Key, "tech") {
			score++
		}

		matches = append(matches, Match{Path: path, Score: score, MatchedSkills: matched})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > 3 {
		matches = matches[:3]
	}
	return matches
}

// wordsOverlap reports whether any of words appears as a substring of s.
func wordsOverlap(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if v := strings.ToLower(strings.TrimSpace(s)); v != "" {
			out = append(out, v)
		}
	}
	return out
}
