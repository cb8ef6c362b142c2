package profile

import (
	"errors"
	"reflect"
	"testing"
)

const sampleDoc = `Summary
Machine learning engineer with 6 years of experience building NLP systems in Python.

Experience
Data Scientist at Acme Corp, 2018-06 – 2020-12, Berlin
• Built fraud detection models in Python
• Improved precision by 20%

Senior Engineer at Initech (Jan 2021 - Present)
Led the ML platform team.

Education
TU Berlin – M.Sc., Computer Science (2016–2018)

Skills
Python, SQL, Docker, k8s
`

func TestBuildProfile(t *testing.T) {
	p, err := BuildProfile(sampleDoc, Options{})
	if err != nil {
		t.Fatalf("BuildProfile: %v", err)
	}

	if p.Summary != "Machine learning engineer with 6 years of experience building NLP systems in Python." {
		t.Errorf("summary = %q", p.Summary)
	}

	if len(p.Experience) != 2 {
		t.Fatalf("experience entries = %d, want 2", len(p.Experience))
	}
	first := p.Experience[0]
	if first.Title != "Data Scientist" || first.Company != "Acme Corp" || first.Location != "Berlin" {
		t.Errorf("first entry header = %+v", first)
	}
	if first.StartDate != "2018-06" || first.EndDate != "2020-12" {
		t.Errorf("first entry dates = %q .. %q", first.StartDate, first.EndDate)
	}
	if first.LowConfidence {
		t.Errorf("first entry flagged low confidence: %v", first.Notes)
	}
	second := p.Experience[1]
	if second.Title != "Senior Engineer" || second.Company != "Initech" {
		t.Errorf("second entry header = %+v", second)
	}
	if second.StartDate != "2021-01" || second.EndDate != "" {
		t.Errorf("second entry dates = %q .. %q", second.StartDate, second.EndDate)
	}

	if len(p.Education) != 1 {
		t.Fatalf("education entries = %d, want 1", len(p.Education))
	}
	edu := p.Education[0]
	want := EducationEntry{School: "TU Berlin", Degree: "M.Sc.", Field: "Computer Science", StartYear: "2016", EndYear: "2018"}
	if !reflect.DeepEqual(edu, want) {
		t.Errorf("education = %+v, want %+v", edu, want)
	}

	wantSkills := []string{"Python", "SQL", "Docker", "Kubernetes", "NLP", "Machine Learning"}
	if !reflect.DeepEqual(p.Skills, wantSkills) {
		t.Errorf("skills = %#v, want %#v", p.Skills, wantSkills)
	}

	if gap := SkillGap(p, Options{}); !reflect.DeepEqual(gap, []string{"AWS", "Git"}) {
		t.Errorf("skill gap = %#v", gap)
	}
}

func TestBuildProfileMalformedInput(t *testing.T) {
	for _, text := range []string{"", "   \n\t ", "\xff\xfe broken"} {
		if _, err := BuildProfile(text, Options{}); !errors.Is(err, ErrMalformedInput) {
			t.Errorf("BuildProfile(%q) err = %v, want ErrMalformedInput", text, err)
		}
	}
}

func TestBuildProfileSummaryOnly(t *testing.T) {
	p, err := BuildProfile("Seasoned platform engineer who enjoys debugging production incidents.", Options{})
	if err != nil {
		t.Fatalf("BuildProfile: %v", err)
	}
	if p.Summary == "" {
		t.Error("expected headingless prose to land in summary")
	}
	if p.Experience == nil || p.Education == nil || p.Skills == nil {
		t.Error("collections must be empty, not nil")
	}
	if len(p.Experience) != 0 || len(p.Education) != 0 {
		t.Errorf("unexpected entries: %+v", p)
	}
}

func TestBuildProfileDropsEmptyEntries(t *testing.T) {
	doc := "Experience\n•\n\nData Engineer, Hooli (2019 - 2021)\nRan the warehouse."
	p, err := BuildProfile(doc, Options{})
	if err != nil {
		t.Fatalf("BuildProfile: %v", err)
	}
	if len(p.Experience) != 1 {
		t.Fatalf("experience entries = %d, want 1", len(p.Experience))
	}
	if p.Experience[0].Company != "Hooli" {
		t.Errorf("entry = %+v", p.Experience[0])
	}
}
