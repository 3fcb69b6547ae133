package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/domain"
	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/render"
)

func TestBuildRecordCoercesLooseInput(t *testing.T) {
	raw := map[string]any{
		"name":             "  Sakshi Devkar  ",
		"email":            "Sakshi@Example.COM",
		"technical_skills": []any{"Python", "Git", ""},
		"soft_skills":      "Communication, Teamwork",
		"education":        []any{"B.Tech Computer Science"},
		"experience":       "Intern at Acme, Intern at Initech",
		"unknown_key":      42,
	}

	record := BuildRecord(raw)
	if record.Name != "Sakshi Devkar" {
		t.Errorf("Name = %q", record.Name)
	}
	if record.Email != "sakshi@example.com" {
		t.Errorf("Email = %q, want lowercased", record.Email)
	}
	if !reflect.DeepEqual(record.Skills.Technical, []string{"Python", "Git"}) {
		t.Errorf("Technical = %v", record.Skills.Technical)
	}
	if !reflect.DeepEqual(record.Skills.Soft, []string{"Communication", "Teamwork"}) {
		t.Errorf("Soft = %v", record.Skills.Soft)
	}
	if len(record.Education) != 1 || len(record.Experience) != 2 {
		t.Errorf("details wrong: education=%v experience=%v", record.Education, record.Experience)
	}
}

func TestAnalyzeScoring(t *testing.T) {
	tests := []struct {
		name   string
		record domain.ResumeRecord
		want   int
	}{
		{"empty", domain.ResumeRecord{}, 40},
		{"summary only", domain.ResumeRecord{Summary: "x"}, 50},
		{"full", domain.ResumeRecord{
			Summary:    "x",
			Education:  []domain.Detail{{Details: "x"}},
			Skills:     domain.SkillSet{Technical: []string{"python"}},
			Experience: []domain.Detail{{Details: "x"}},
			Projects:   []domain.Detail{{Details: "x"}},
		}, 100},
		{"no experience", domain.ResumeRecord{
			Summary:   "x",
			Education: []domain.Detail{{Details: "x"}},
			Skills:    domain.SkillSet{Soft: []string{"teamwork"}},
			Projects:  []domain.Detail{{Details: "x"}},
		}, 85},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Analyze(tt.record); got != tt.want {
				t.Errorf("Analyze = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSkillGaps(t *testing.T) {
	record := domain.ResumeRecord{
		Skills: domain.SkillSet{
			Technical: []string{"Git", "HTML", "CSS"},
			Soft:      []string{"Communication"},
		},
	}

	got := SkillGaps(record)
	want := []string{"problem solving", "problem_solving", "teamwork"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SkillGaps = %v, want %v", got, want)
	}
}

func TestSkillGapsEmptyRecord(t *testing.T) {
	got := SkillGaps(domain.ResumeRecord{})
	want := []string{
		"communication", "problem solving", "problem_solving",
		"teamwork", "version_control", "web_basics",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SkillGaps = %v, want %v", got, want)
	}
}

func TestBuildRoadmapBands(t *testing.T) {
	tests := []struct {
		score int
		band  string
	}{
		{0, "beginner"},
		{59, "beginner"},
		{60, "intermediate"},
		{79, "intermediate"},
		{80, "strong"},
		{100, "strong"},
	}
	for _, tt := range tests {
		roadmap := BuildRoadmap(tt.score, nil)
		if roadmap.ScoreBand != tt.band {
			t.Errorf("BuildRoadmap(%d).ScoreBand = %q, want %q", tt.score, roadmap.ScoreBand, tt.band)
		}
		if len(roadmap.NextSteps) == 0 {
			t.Errorf("BuildRoadmap(%d) has no next steps", tt.score)
		}
	}
}

func TestBuildRoadmapStepsPerGap(t *testing.T) {
	roadmap := BuildRoadmap(50, []string{"version_control", "communication"})
	if len(roadmap.NextSteps) != 2 {
		t.Fatalf("got %d steps, want 2", len(roadmap.NextSteps))
	}
	if roadmap.NextSteps[0] != "Learn Git and publish your projects on GitHub." {
		t.Errorf("version_control step = %q", roadmap.NextSteps[0])
	}
}

func TestRunnerWritesArtifacts(t *testing.T) {
	dir := t.TempDir()
	runner := NewRunner(render.NewGenerator(), nil, dir, 5*time.Second)

	runner.Run(context.Background(), "sess-1", map[string]any{
		"name":             "Sakshi",
		"summary":          "Student.",
		"technical_skills": "Python",
	})

	if _, err := os.Stat(filepath.Join(dir, "sess-1_resume.pdf")); err != nil {
		t.Errorf("pdf not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "sess-1_resume.docx")); err != nil {
		t.Errorf("docx not written: %v", err)
	}
}
