// Package career provides the career path catalog and the profile matcher.
package career

// Path is one entry in the static career path catalog.
type Path struct {
	Key            string   `json:"key"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Roles          []string `json:"roles"`
	RequiredSkills []string `json:"required_skills"`
	EntryLevel     []string `json:"entry_level_roles"`
	GrowthPath     string   `json:"growth_path"`
}

// Catalog returns the fixed career path table. Iteration order is the
// catalog order and acts as the tie-breaker when scores are equal.
func Catalog() []Path {
	return catalog
}

var catalog = []Path{
	{
		Key:            "software_development",
		Title:          "Software Development",
		Roles:          []string{"Software Engineer", "Full Stack Developer", "Backend Developer", "Frontend Developer", "Mobile App Developer"},
		RequiredSkills: []string{"programming", "problem solving", "data structures", "algorithms"},
		Description:    "Build and maintain software applications. High demand with growth opportunities.",
		EntryLevel:     []string{"Junior Developer", "Associate Software Engineer", "Software Developer Trainee"},
		GrowthPath:     "Senior Developer -> Tech Lead -> Engineering Manager -> CTO",
	},
	{
		Key:            "data_science",
		Title:          "Data Science & Analytics",
		Roles:          []string{"Data Analyst", "Data Scientist", "Business Analyst", "Data Engineer"},
		RequiredSkills: []string{"python", "statistics", "sql", "machine learning", "data analysis"},
		Description:    "Analyze data to extract insights and drive business decisions. Growing field with excellent prospects.",
		EntryLevel:     []string{"Junior Data Analyst", "Data Analyst Trainee", "Business Intelligence Intern"},
		GrowthPath:     "Data Analyst -> Data Scientist -> Senior Data Scientist -> Chief Data Officer",
	},
	{
		Key:            "web_development",
		Title:          "Web Development",
		Roles:          []string{"Web Developer", "Frontend Developer", "React Developer", "UI/UX Developer"},
		RequiredSkills: []string{"html", "css", "javascript", "react", "frontend"},
		Description:    "Create and maintain websites and web applications. Essential skill in the digital economy.",
		EntryLevel:     []string{"Junior Web Developer", "Frontend Developer Intern", "Web Developer Trainee"},
		GrowthPath:     "Junior Developer -> Mid-level Developer -> Senior Developer -> Tech Lead",
	},
	{
		Key:            "cybersecurity",
		Title:          "Cybersecurity",
		Roles:          []string{"Security Analyst", "Cybersecurity Specialist", "Security Engineer", "Penetration Tester"},
		RequiredSkills: []string{"networking", "security", "linux", "cryptography", "ethical hacking"},
		Description:    "Protect systems and data from cyber threats. Critical field with high demand.",
		EntryLevel:     []string{"Security Analyst Trainee", "Junior Security Analyst", "Cybersecurity Intern"},
		GrowthPath:     "Security Analyst -> Security Engineer -> Senior Security Engineer -> CISO",
	},
	{
		Key:            "cloud_computing",
		Title:          "Cloud Computing & DevOps",
		Roles:          []string{"Cloud Engineer", "DevOps Engineer", "Site Reliability Engineer", "Cloud Architect"},
		RequiredSkills: []string{"aws", "docker", "kubernetes", "ci/cd", "cloud"},
		Description:    "Manage cloud infrastructure and deployment pipelines. Rapidly growing field.",
		EntryLevel:     []string{"Junior Cloud Engineer", "DevOps Intern", "Cloud Support Engineer"},
		GrowthPath:     "Cloud Engineer -> Senior Cloud Engineer -> Cloud Architect -> Head of Infrastructure",
	},
	{
		Key:            "digital_marketing",
		Title:          "Digital Marketing",
		Roles:          []string{"Digital Marketing Specialist", "SEO Specialist", "Social Media Manager", "Content Marketer"},
		RequiredSkills: []string{"seo", "social media", "content creation", "analytics", "communication"},
		Description:    "Promote brands and products through digital channels. Creative and analytical field.",
		EntryLevel:     []string{"Digital Marketing Intern", "Marketing Assistant", "Social Media Intern"},
		GrowthPath:     "Marketing Specialist -> Marketing Manager -> Senior Marketing Manager -> CMO",
	},
	{
		Key:            "product_management",
		Title:          "Product Management",
		Roles:          []string{"Associate Product Manager", "Product Analyst", "Product Owner", "Product Manager"},
		RequiredSkills: []string{"problem solving", "communication", "analytics", "project management", "user research"},
		Description:    "Define and guide product development. Bridge between business and technology.",
		EntryLevel:     []string{"Product Intern", "Associate Product Manager", "Product Analyst"},
		GrowthPath:     "Associate PM -> Product Manager -> Senior PM -> Director of Product -> VP Product",
	},
	{
		Key:            "consulting",
		Title:          "Business & Technology Consulting",
		Roles:          []string{"Business Analyst", "Consultant", "Technology Consultant", "Management Trainee"},
		RequiredSkills: []string{"communication", "problem solving", "analytics", "business knowledge", "presentation"},
		Description:    "Help organizations solve business problems and improve processes.",
		EntryLevel:     []string{"Consulting Intern", "Business Analyst", "Associate Consultant"},
		GrowthPath:     "Analyst -> Consultant -> Senior Consultant -> Manager -> Partner",
	},
}
