package domain

// Detail is one free-text entry for a multi-entry resume section.
type Detail struct {
	Details string `json:"details"`
}

// SkillSet splits collected skills into technical and soft buckets.
type SkillSet struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

// Empty reports whether no skills were collected.
func (s SkillSet) Empty() bool {
	return len(s.Technical) == 0 && len(s.Soft) == 0
}

// ResumeRecord is the structured data a resume session collects.
// Field names follow the wire format the frontend expects.
type ResumeRecord struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	LinkedIn       string   `json:"linkedin"`
	Portfolio      string   `json:"portfolio"`
	Summary        string   `json:"summary"`
	Education      []Detail `json:"education"`
	Skills         SkillSet `json:"skills"`
	Experience     []Detail `json:"experience"`
	Projects       []Detail `json:"projects"`
	Achievements   []string `json:"achievements"`
	Certifications []string `json:"certifications"`
}

// CareerProfile is the data a career-guidance session collects.
type CareerProfile struct {
	Skills    []string `json:"skills"`
	Interests []string `json:"interests"`
	Education string   `json:"education"`
}

// Roadmap is the career advisory output of the background resume pipeline.
type Roadmap struct {
	ScoreBand string   `json:"score_band"`
	NextSteps []string `json:"next_steps"`
}
