package profile

import (
	"reflect"
	"testing"
)

func TestExtractSkillsDedupIdempotence(t *testing.T) {
	got := ExtractSkills("Python, python, PYTHON", nil, Options{})
	if !reflect.DeepEqual(got, []string{"Python"}) {
		t.Fatalf("got %#v", got)
	}
}

func TestExtractSkillsDelimiters(t *testing.T) {
	text := "Python, SQL; Docker | Kubernetes\n• Terraform\n- Redis"
	got := ExtractSkills(text, nil, Options{})
	want := []string{"Python", "SQL", "Docker", "Kubernetes", "Terraform", "Redis"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestExtractSkillsAliasNormalization(t *testing.T) {
	got := ExtractSkills("ML, k8s, golang", nil, Options{})
	want := []string{"Machine Learning", "Kubernetes", "Go"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestExtractSkillsUnknownTokenPassesThrough(t *testing.T) {
	got := ExtractSkills("Underwater Basket Weaving", nil, Options{})
	if !reflect.DeepEqual(got, []string{"Underwater Basket Weaving"}) {
		t.Fatalf("got %#v", got)
	}
}

func TestExtractSkillsFromProse(t *testing.T) {
	extra := []string{"Built pipelines with Python and deployed them on Kubernetes."}
	got := ExtractSkills("SQL", extra, Options{})
	want := []string{"SQL", "Python", "Kubernetes"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestExtractSkillsNoFuzzyDedup(t *testing.T) {
	// Java and JavaScript must stay distinct even though they are close.
	got := ExtractSkills("Java, JavaScript", nil, Options{})
	if len(got) != 2 {
		t.Fatalf("fuzzy dedup merged distinct skills: %#v", got)
	}
}

func TestMissingRecommendedPreservesOrder(t *testing.T) {
	recommended := []string{"Python", "SQL", "Machine Learning", "Docker"}
	extracted := []string{"sql", "Docker"}
	got := MissingRecommended(extracted, recommended)
	want := []string{"Python", "Machine Learning"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestMissingRecommendedNoneMissing(t *testing.T) {
	if got := MissingRecommended([]string{"Go"}, []string{"go"}); got != nil {
		t.Fatalf("got %#v", got)
	}
}
