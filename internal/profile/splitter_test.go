package profile

import (
	"strings"
	"testing"
)

func TestSplitEntriesBlankLineDelimited(t *testing.T) {
	span := `Data Scientist at Acme (2018 - 2020)
• Built models

Engineer at Initech (2016 - 2018)
• Shipped features

Intern at Hooli (2015 - 2016)`

	blocks := SplitEntries(span)
	if len(blocks) != 3 {
		t.Fatalf("want 3 blocks, got %d: %#v", len(blocks), blocks)
	}
	if !strings.HasPrefix(blocks[1], "Engineer at Initech") {
		t.Fatalf("block order wrong: %#v", blocks)
	}
}

func TestSplitEntriesNoDelimiters(t *testing.T) {
	span := "One continuous paragraph describing a role without any structure"
	blocks := SplitEntries(span)
	if len(blocks) != 1 || blocks[0] != span {
		t.Fatalf("want the whole span as one block, got %#v", blocks)
	}
}

func TestSplitEntriesHeaderLineStartsNewBlock(t *testing.T) {
	span := `Data Scientist at Acme (2018 - 2020)
• Built models
Engineer at Initech (2016 - 2018)
• Shipped features`

	blocks := SplitEntries(span)
	if len(blocks) != 2 {
		t.Fatalf("want 2 blocks, got %d: %#v", len(blocks), blocks)
	}
}

func TestSplitEntriesKeepsBulletsWithHeader(t *testing.T) {
	span := `Engineer at Initech (2016 - 2018)
• Reduced latency from 2016ms to 20ms
• Led a team of 4`

	blocks := SplitEntries(span)
	if len(blocks) != 1 {
		t.Fatalf("bullets must stay with their header, got %d blocks: %#v", len(blocks), blocks)
	}
}

func TestSplitEntriesStackedHeaderStaysTogether(t *testing.T) {
	span := `Data Scientist
Acme Corp
Jan 2020 – Present
• Built model pipelines`

	blocks := SplitEntries(span)
	if len(blocks) != 1 {
		t.Fatalf("date line completing a title/company stack must not split, got %d blocks: %#v", len(blocks), blocks)
	}
}

func TestSplitEntriesDateLineAfterBulletsStartsNewBlock(t *testing.T) {
	span := `Engineer at Initech (2016 - 2018)
• Shipped features
Jan 2020 – Present`

	blocks := SplitEntries(span)
	if len(blocks) != 2 {
		t.Fatalf("want 2 blocks, got %d: %#v", len(blocks), blocks)
	}
}

func TestSplitEntriesEmptySpan(t *testing.T) {
	if blocks := SplitEntries("  \n \n"); blocks != nil {
		t.Fatalf("want nil for empty span, got %#v", blocks)
	}
}

func TestSplitEntriesEducationLines(t *testing.T) {
	span := `TU Berlin – M.Sc., Computer Science (2016–2018)
FU Berlin – B.Sc., Mathematics (2013–2016)`

	blocks := SplitEntries(span)
	if len(blocks) != 2 {
		t.Fatalf("want 2 blocks, got %d: %#v", len(blocks), blocks)
	}
}
