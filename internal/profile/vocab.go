package profile

// Reference vocabularies. Loaded once as package data, read-only after init;
// callers can override any of them through Options.

// CanonicalTitles are the preferred spellings for common job titles.
var CanonicalTitles = []string{
	"Software Engineer",
	"Data Scientist",
	"Machine Learning Engineer",
	"Data Engineer",
	"Product Manager",
	"Research Scientist",
	"Backend Engineer",
	"Frontend Engineer",
	"DevOps Engineer",
	"Engineering Manager",
}

// CanonicalSkills are the preferred spellings for common skills.
var CanonicalSkills = []string{
	"Python", "Java", "C++", "Go", "SQL",
	"TensorFlow", "PyTorch", "spaCy",
	"NLP", "Machine Learning", "Computer Vision",
	"Docker", "Kubernetes", "Terraform",
	"AWS", "Azure", "GCP",
	"PostgreSQL", "Redis", "Kafka",
}

// SkillAliases maps case-folded spellings to their canonical form.
var SkillAliases = map[string]string{
	"ml":               "Machine Learning",
	"machine-learning": "Machine Learning",
	"tf":               "TensorFlow",
	"cpp":              "C++",
	"k8s":              "Kubernetes",
	"golang":           "Go",
	"postgres":         "PostgreSQL",

	"natural language processing": "NLP",
	"amazon web services":         "AWS",
	"google cloud":                "GCP",
}

// RecommendedSkills is the default target list for gap analysis, in the
// order gaps should be reported.
var RecommendedSkills = []string{
	"Python", "SQL", "Machine Learning", "Docker", "AWS", "Git",
}
