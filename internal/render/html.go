package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/DevkarSakshi/ai-resume-and-career-assistant/internal/domain"
)

type htmlData struct {
	Record        domain.ResumeRecord
	MissingSkills []string
}

// RenderHTML renders a full standalone HTML resume. Missing fields simply
// omit their sections.
func (g *Generator) RenderHTML(record domain.ResumeRecord) (string, error) {
	data := htmlData{
		Record:        record,
		MissingSkills: suggestMissingSkills(record.Skills),
	}
	var b strings.Builder
	if err := resumeTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("execute resume template: %w", err)
	}
	return b.String(), nil
}

// essentialSkills maps a present technical skill to companions worth
// highlighting when absent.
var essentialSkills = map[string][]string{
	"git":           {"version control", "github"},
	"python":        {"data structures", "algorithms"},
	"javascript":    {"html", "css", "frontend development"},
	"communication": {"presentation skills", "public speaking"},
}

var essentialSkillKeys = []string{"git", "python", "javascript", "communication"}

var commonMissingSkills = []string{"Problem Solving", "Team Collaboration", "Time Management", "Adaptability"}

// suggestMissingSkills proposes up to five skills worth adding, based on the
// technical skills already present.
func suggestMissingSkills(skills domain.SkillSet) []string {
	if skills.Empty() {
		return nil
	}
	technical := make([]string, 0, len(skills.Technical))
	for _, s := range skills.Technical {
		technical = append(technical, strings.ToLower(s))
	}

	hasSkill := func(needle string) bool {
		for _, s := range technical {
			if strings.Contains(s, needle) {
				return true
			}
		}
		return false
	}

	var suggestions []string
	seen := make(map[string]bool)
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			suggestions = append(suggestions, s)
		}
	}

	for _, key := range essentialSkillKeys {
		if !hasSkill(key) {
			continue
		}
		for _, companion := range essentialSkills[key] {
			if !hasSkill(companion) {
				add(companion)
			}
		}
	}

	if len(suggestions) > 0 {
		for _, s := range commonMissingSkills[:2] {
			add(s)
		}
	}
	if len(suggestions) > 5 {
		suggestions = suggestions[:5]
	}
	return suggestions
}

var resumeTemplate = template.Must(template.New("resume").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Resume - {{if .Record.Name}}{{.Record.Name}}{{else}}Your Name{{end}}</title>
    <style>
        * {margin:0; padding:0; box-sizing:border-box;}
        body {font-family:'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height:1.6; color:#333; background:#f5f5f5; padding:20px;}
        .resume-container {max-width:210mm; min-height:297mm; margin:0 auto; background:white; padding:40px; box-shadow:0 0 10px rgba(0,0,0,0.1);}
        .header {text-align:center; border-bottom:3px solid #2563eb; padding-bottom:20px; margin-bottom:30px;}
        .header h1 {font-size:32px; color:#1e40af; margin-bottom:10px; font-weight:700;}
        .contact-info {display:flex; justify-content:center; gap:20px; flex-wrap:wrap; font-size:14px; color:#666;}
        .contact-info a {color:#2563eb; text-decoration:none;}
        .contact-info a:hover {text-decoration:underline;}
        .section {margin-bottom:30px;}
        .section-title {font-size:20px; color:#1e40af; border-bottom:2px solid #2563eb; padding-bottom:5px; margin-bottom:15px; font-weight:600;}
        .summary-text {text-align:justify; line-height:1.8; color:#444;}
        .education-item, .experience-item, .project-item {margin-bottom:20px; padding-left:15px; border-left:3px solid #e5e7eb; padding-bottom:15px;}
        .item-title {font-weight:600; color:#1e40af; font-size:16px; margin-bottom:5px;}
        .item-details {color:#666; font-size:14px; margin-bottom:8px;}
        .skills-container {display:flex; gap:30px; flex-wrap:wrap;}
        .skills-category {flex:1; min-width:200px;}
        .skills-category h4 {font-size:16px; color:#1e40af; margin-bottom:10px;}
        .skills-list {display:flex; flex-wrap:wrap; gap:8px;}
        .skill-tag {background:#eff6ff; color:#1e40af; padding:5px 12px; border-radius:15px; font-size:13px; border:1px solid #bfdbfe;}
        ul {list-style:none; padding-left:0;}
        ul li {padding-left:20px; position:relative; margin-bottom:8px; color:#555;}
        ul li:before {content:"\2022"; color:#2563eb; font-weight:bold; position:absolute; left:0;}
        .missing-skills {background:#fef3c7; border-left:4px solid #f59e0b; padding:15px; margin-top:20px; border-radius:4px;}
        .missing-skills h4 {color:#92400e; margin-bottom:10px;}
        .missing-skills p {color:#78350f; font-size:14px;}
        @media print {body {background:white; padding:0;} .resume-container {box-shadow:none; padding:20px;}}
    </style>
</head>
<body>
    <div class="resume-container">
        <div class="header">
            <h1>{{if .Record.Name}}{{.Record.Name}}{{else}}Your Name{{end}}</h1>
            {{if or .Record.Email .Record.LinkedIn .Record.Portfolio}}<div class="contact-info">
                {{if .Record.Email}}<a href="mailto:{{.Record.Email}}">{{.Record.Email}}</a>{{end}}
                {{if .Record.LinkedIn}}<a href="{{.Record.LinkedIn}}" target="_blank">LinkedIn</a>{{end}}
                {{if .Record.Portfolio}}<a href="{{.Record.Portfolio}}" target="_blank">Portfolio</a>{{end}}
            </div>{{end}}
        </div>
        {{if .Record.Summary}}<div class="section">
            <h2 class="section-title">Professional Summary</h2>
            <p class="summary-text">{{.Record.Summary}}</p>
        </div>{{end}}
        {{if .Record.Education}}<div class="section">
            <h2 class="section-title">Education</h2>
            {{range .Record.Education}}<div class="education-item"><div class="item-title">Education</div><div class="item-details">{{.Details}}</div></div>{{end}}
        </div>{{end}}
        {{if not .Record.Skills.Empty}}<div class="section">
            <h2 class="section-title">Skills</h2>
            <div class="skills-container">
                {{if .Record.Skills.Technical}}<div class="skills-category"><h4>Technical Skills</h4><div class="skills-list">{{range .Record.Skills.Technical}}<span class="skill-tag">{{.}}</span>{{end}}</div></div>{{end}}
                {{if .Record.Skills.Soft}}<div class="skills-category"><h4>Soft Skills</h4><div class="skills-list">{{range .Record.Skills.Soft}}<span class="skill-tag">{{.}}</span>{{end}}</div></div>{{end}}
            </div>
        </div>{{end}}
        {{if .Record.Experience}}<div class="section">
            <h2 class="section-title">Experience</h2>
            {{range .Record.Experience}}<div class="experience-item"><div class="item-title">Experience</div><div class="item-details">{{.Details}}</div></div>{{end}}
        </div>{{end}}
        {{if .Record.Projects}}<div class="section">
            <h2 class="section-title">Projects</h2>
            {{range .Record.Projects}}<div class="project-item"><div class="item-title">Project</div><div class="item-details">{{.Details}}</div></div>{{end}}
        </div>{{end}}
        {{if .Record.Achievements}}<div class="section">
            <h2 class="section-title">Achievements &amp; Awards</h2>
            <ul>{{range .Record.Achievements}}<li>{{.}}</li>{{end}}</ul>
        </div>{{end}}
        {{if .Record.Certifications}}<div class="section">
            <h2 class="section-title">Certifications</h2>
            <ul>{{range .Record.Certifications}}<li>{{.}}</li>{{end}}</ul>
        </div>{{end}}
        {{if .MissingSkills}}<div class="missing-skills">
            <h4>Skills to Consider Adding</h4>
            <p>Based on your profile, you might want to consider highlighting or developing these skills: <strong>{{range $i, $s := .MissingSkills}}{{if $i}}, {{end}}{{$s}}{{end}}</strong></p>
        </div>{{end}}
    </div>
</body>
</html>
`))
