package reporter

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/pthm/readlevel/internal/grade"
	"github.com/pthm/readlevel/internal/ui"
)

func analyze(t *testing.T, source, text string) Result {
	t.Helper()
	stats, err := grade.New().Analyze(text)
	return Result{Source: source, Stats: stats, Err: err}
}

func plainUI() *ui.UI {
	return ui.New(&bytes.Buffer{}, &bytes.Buffer{}, "terminal")
}

func TestComputeSummary(t *testing.T) {
	results := []Result{
		analyze(t, "a", "Cat."),
		analyze(t, "b", "Internationalization."),
		analyze(t, "c", "Dog."),
		analyze(t, "d", "   "),
	}

	s := ComputeSummary(results)
	if s.Files != 4 || s.Errors != 1 {
		t.Errorf("Files=%d Errors=%d, want 4 and 1", s.Files, s.Errors)
	}
	if s.ByLabel["Before Grade 1"] != 2 || s.ByLabel["Graduate Level"] != 1 {
		t.Errorf("ByLabel = %v", s.ByLabel)
	}
	if s.Easiest != "Before Grade 1" || s.Hardest != "Graduate Level" {
		t.Errorf("Easiest=%q Hardest=%q", s.Easiest, s.Hardest)
	}
}

func TestComputeSummary_ErrorsFirst(t *testing.T) {
	tests := []struct {
		name    string
		results []Result
		easiest string
		hardest string
	}{
		{"only errors", []Result{{Source: "a", Err: errors.New("x")}}, "", ""},
		{"error before labels", []Result{
			{Source: "a", Err: errors.New("x")},
			analyze(t, "b", "Internationalization."),
			analyze(t, "c", "Cat."),
		}, "Before Grade 1", "Graduate Level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ComputeSummary(tt.results)
			if s.Easiest != tt.easiest || s.Hardest != tt.hardest {
				t.Errorf("Easiest=%q Hardest=%q, want %q and %q", s.Easiest, s.Hardest, tt.easiest, tt.hardest)
			}
			if s.Errors != 1 {
				t.Errorf("Errors = %d, want 1", s.Errors)
			}
		})
	}
}

func TestTerminalReporter_Single(t *testing.T) {
	var buf bytes.Buffer
	rep := NewTerminalReporter(&buf, plainUI(), false)

	if err := rep.Report([]Result{analyze(t, "<stdin>", "Cat.")}); err != nil {
		t.Fatalf("Report returned error: %v", err)
	}
	if got := buf.String(); got != "Grade Level: Before Grade 1\n" {
		t.Errorf("output = %q", got)
	}
}

func TestTerminalReporter_SingleInvalid(t *testing.T) {
	var buf bytes.Buffer
	rep := NewTerminalReporter(&buf, plainUI(), false)

	_ = rep.Report([]Result{analyze(t, "<stdin>", "")})
	if !strings.Contains(buf.String(), ui.EmptyInputMessage) {
		t.Errorf("output = %q, want empty input message", buf.String())
	}
}

func TestTerminalReporter_Stats(t *testing.T) {
	var buf bytes.Buffer
	rep := NewTerminalReporter(&buf, plainUI(), true)

	_ = rep.Report([]Result{analyze(t, "text", "Hello there. The cat sat!")})
	out := buf.String()
	for _, want := range []string{"sentences: 2", "words: 5", "syllables: 6", "score:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTerminalReporter_Multiple(t *testing.T) {
	var buf bytes.Buffer
	rep := NewTerminalReporter(&buf, plainUI(), false)

	results := []Result{
		analyze(t, "a.txt", "Cat."),
		analyze(t, "b.txt", "Internationalization."),
		{Source: "c.txt", Err: errors.New("boom")},
	}
	if err := rep.Report(results); err != nil {
		t.Fatalf("Report returned error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"OK: a.txt  Grade Level: Before Grade 1",
		"OK: b.txt  Grade Level: Graduate Level",
		"ERROR: c.txt  Error in analysis: boom",
		"Analyzed 3 texts, 1 errors",
		"Easiest: Before Grade 1  Hardest: Graduate Level",
		"Before Grade 1: 1, Graduate Level: 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer
	rep := NewJSONReporter(&buf)

	results := []Result{
		analyze(t, "a.txt", "Hello there. The cat sat!"),
		analyze(t, "b.txt", " "),
	}
	if err := rep.Report(results); err != nil {
		t.Fatalf("Report returned error: %v", err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(out.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(out.Results))
	}

	first := out.Results[0]
	if first.Source != "a.txt" || first.Sentences != 2 || first.Words != 5 || first.Syllables != 6 {
		t.Errorf("unexpected first result %+v", first)
	}
	if !grade.IsLabel(first.Label) {
		t.Errorf("Label = %q, not a grade label", first.Label)
	}

	second := out.Results[1]
	if second.ErrorKind != "invalid-input" || second.Label != "" {
		t.Errorf("unexpected second result %+v", second)
	}
	if out.Summary.Files != 2 || out.Summary.Errors != 1 {
		t.Errorf("unexpected summary %+v", out.Summary)
	}
}
