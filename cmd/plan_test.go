package cmd

import (
	"strings"
	"testing"
)

func TestPlanMarkdownRoundTrip(t *testing.T) {
	workPlan := map[string]string{
		"0": "ship backlog",
		"1": "supplier calls",
		"2": "", "3": "", "4": "inventory", "5": "", "6": "rest",
	}

	parsed, err := parsePlanMarkdown(planMarkdownDoc(workPlan))
	if err != nil {
		t.Fatalf("parsePlanMarkdown failed: %v", err)
	}

	for key, want := range workPlan {
		if parsed[key] != want {
			t.Fatalf("day %s = %q, want %q", key, parsed[key], want)
		}
	}
}

func TestParsePlanMarkdownFillsMissingDays(t *testing.T) {
	doc := "# Weekly work plan\n\n## Monday\n\nship backlog\n\n## Friday\n\ninventory\n"

	parsed, err := parsePlanMarkdown(doc)
	if err != nil {
		t.Fatalf("parsePlanMarkdown failed: %v", err)
	}
	if parsed["0"] != "ship backlog" || parsed["4"] != "inventory" {
		t.Fatalf("parsed = %v", parsed)
	}
	for _, key := range []string{"1", "2", "3", "5", "6"} {
		if parsed[key] != "" {
			t.Fatalf("missing day %s should be empty, got %q", key, parsed[key])
		}
	}
}

func TestParsePlanMarkdownRejectsEmptyDoc(t *testing.T) {
	if _, err := parsePlanMarkdown("just some text"); err == nil {
		t.Fatal("doc without weekday sections must be rejected")
	}
}

func TestParsePlanMarkdownIgnoresUnknownSections(t *testing.T) {
	doc := "## Monday\n\nship backlog\n\n## Notes\n\nscratch space\n"

	parsed, err := parsePlanMarkdown(doc)
	if err != nil {
		t.Fatalf("parsePlanMarkdown failed: %v", err)
	}
	if parsed["0"] != "ship backlog" {
		t.Fatalf("monday = %q", parsed["0"])
	}
	for key, value := range parsed {
		if strings.Contains(value, "scratch space") {
			t.Fatalf("unknown section leaked into day %s", key)
		}
	}
}
