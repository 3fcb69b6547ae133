package career

import (
	"fmt"
	"strings"
)

// Advise generates actionable next steps for the top-ranked match. When no
// top match exists (empty inputs), three generic bootstrap suggestions are
// returned instead.
func Advise(skills []string, top *Match) []string {
	if top == nil {
		return []string{
			"Start by building a strong foundation in programming and problem-solving skills.",
			"Explore different tech fields through online courses and projects.",
			"Build a portfolio showcasing your projects and skills.",
		}
	}

	skillsLower := lowerAll(skills)
	var advice []string

	missing := missingSkills(skillsLower, top.Path.RequiredSkills)
	if len(missing) > 0 {
		if len(missing) > 3 {
			missing = missing[:3]
		}
		advice = append(advice, fmt.Sprintf(
			"**Skill Development**: Focus on learning %s to strengthen your profile for %s roles.",
			strings.Join(missing, ", "), top.Path.Title))
	}

	advice = append(advice, fmt.Sprintf(
		"**Build a Portfolio**: Create 2-3 projects demonstrating your skills relevant to %s. Host them on GitHub.",
		top.Path.Title))

	if len(top.Path.EntryLevel) > 0 {
		advice = append(advice, fmt.Sprintf(
			"**Target Roles**: Start applying for entry-level positions like '%s' to gain experience.",
			top.Path.EntryLevel[0]))
	}

	advice = append(advice,
		"**Networking**: Join professional communities, attend meetups, and connect with professionals in your target field on LinkedIn.",
		"**Certifications**: Consider obtaining relevant certifications (e.g., AWS, Google Cloud, Microsoft Azure) to validate your skills.",
		"**SDG 8 Alignment**: Your career journey contributes to decent work and economic growth. Focus on continuous learning and skill development.",
	)

	return advice
}

// missingSkills returns the required skills with no bidirectional substring
// match against any user skill.
func missingSkills(userSkills []string, required []string) []string {
	var missing []string
	for _, req := range required {
		found := false
		for _, s := range userSkills {
			if strings.Contains(s, req) || strings.Contains(req, s) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, req)
		}
	}
	return missing
}
