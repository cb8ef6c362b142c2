package main

// Evaluate skill extraction against a gold file:
//   go run ./cmd/skilleval -gold testdata/skills_gold.jsonl
//
// The gold file is JSONL, one case per line:
//   {"text": "Skills\nPython, k8s", "skills": ["Python", "Kubernetes"]}

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/soupine/linkedin-backend-extraction/internal/profile"
)

type goldCase struct {
	Text   string   `json:"text"`
	Skills []string `json:"skills"`
}

func main() {
	goldPath := flag.String("gold", "", "Path to JSONL gold file")
	verbose := flag.Bool("v", false, "Print per-case mismatches")
	flag.Parse()

	if strings.TrimSpace(*goldPath) == "" {
		fmt.Fprintln(os.Stderr, "gold path is required")
		os.Exit(1)
	}

	f, err := os.Open(*goldPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open gold file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var truePos, falsePos, falseNeg, cases int
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1<<20), 1<<20)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var gc goldCase
		if err := json.Unmarshal([]byte(line), &gc); err != nil {
			fmt.Fprintf(os.Stderr, "line %d: %v\n", lineNo, err)
			os.Exit(1)
		}

		p, err := profile.BuildProfile(gc.Text, profile.Options{})
		got := map[string]bool{}
		if err == nil {
			for _, s := range p.Skills {
				got[s] = true
			}
		}
		want := map[string]bool{}
		for _, s := range gc.Skills {
			want[s] = true
		}

		cases++
		for s := range got {
			if want[s] {
				truePos++
			} else {
				falsePos++
				if *verbose {
					fmt.Printf("line %d: extra %q\n", lineNo, s)
				}
			}
		}
		for s := range want {
			if !got[s] {
				falseNeg++
				if *verbose {
					fmt.Printf("line %d: missed %q\n", lineNo, s)
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "read gold file: %v\n", err)
		os.Exit(1)
	}
	if cases == 0 {
		fmt.Fprintln(os.Stderr, "gold file has no cases")
		os.Exit(1)
	}

	precision := ratio(truePos, truePos+falsePos)
	recall := ratio(truePos, truePos+falseNeg)
	f1 := 0.0
	if precision+recall > 0 {
		f1 = 2 * precision * recall / (precision + recall)
	}

	fmt.Printf("cases: %d\n", cases)
	fmt.Printf("precision: %.4f\n", precision)
	fmt.Printf("recall: %.4f\n", recall)
	fmt.Printf("f1: %.4f\n", f1)
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
