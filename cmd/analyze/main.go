package main

// Offline scoring of a single profile export:
//   go run ./cmd/analyze -in profile.pdf
//
// With -classifier=stub (the default) scoring runs rules-only; pass
// -classifier=huggingface with HF_API_TOKEN set for full scoring.

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/soupine/linkedin-backend-extraction/internal/classify"
	"github.com/soupine/linkedin-backend-extraction/internal/classify/hfinference"
	"github.com/soupine/linkedin-backend-extraction/internal/extract"
	"github.com/soupine/linkedin-backend-extraction/internal/feedback"
	"github.com/soupine/linkedin-backend-extraction/internal/profile"
	"github.com/soupine/linkedin-backend-extraction/internal/shared/config"
)

type output struct {
	Profile  profile.Profile `json:"profile"`
	Feedback feedback.Record `json:"feedback"`
}

func main() {
	cfg := config.Load()

	inputPath := flag.String("in", "", "Path to profile export (pdf, docx or txt)")
	outPath := flag.String("out", "", "Path to write JSON output (default stdout)")
	provider := flag.String("classifier", "stub", "Classifier provider (stub or huggingface)")
	flag.Parse()

	if strings.TrimSpace(*inputPath) == "" {
		exitErr("input path is required")
	}

	data, err := os.ReadFile(*inputPath)
	if err != nil {
		exitErr(fmt.Sprintf("read input: %v", err))
	}

	ctx := context.Background()
	text, err := extract.ExtractTextFromBytes(ctx, data, "", filepath.Base(*inputPath))
	if err != nil {
		exitErr(fmt.Sprintf("extract text: %v", err))
	}

	opts := profile.Options{RecommendedSkills: cfg.RecommendedSkills}
	p, err := profile.BuildProfile(text, opts)
	if err != nil {
		exitErr(fmt.Sprintf("build profile: %v", err))
	}

	scorer := feedback.NewScorer(buildClassifier(*provider, cfg), feedback.Weights{})
	rec, err := feedback.Build(ctx, p, scorer, profile.SkillGap(p, opts))
	if err != nil {
		exitErr(fmt.Sprintf("score profile: %v", err))
	}

	payload, err := json.MarshalIndent(output{Profile: p, Feedback: rec}, "", "  ")
	if err != nil {
		exitErr(fmt.Sprintf("marshal output: %v", err))
	}

	if strings.TrimSpace(*outPath) == "" {
		fmt.Println(string(payload))
		return
	}
	if err := os.WriteFile(*outPath, append(payload, '\n'), 0o644); err != nil {
		exitErr(fmt.Sprintf("write output: %v", err))
	}
	fmt.Printf("OK: wrote %s\n", *outPath)
}

func buildClassifier(provider string, cfg config.Config) classify.Classifier {
	if strings.ToLower(strings.TrimSpace(provider)) == "huggingface" {
		client, err := hfinference.NewClient(cfg.HFAPIToken, cfg.SentimentModel, cfg.ZeroShotModel, cfg.ClassifierTimeout)
		if err != nil {
			exitErr(fmt.Sprintf("classifier: %v", err))
		}
		return client
	}
	// Rules-only scoring; verdicts carry the degraded note.
	return classify.Stub{Err: classify.ErrUnavailable}
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
