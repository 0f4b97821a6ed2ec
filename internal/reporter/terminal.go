package reporter

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pthm/readlevel/internal/grade"
	"github.com/pthm/readlevel/internal/ui"
)

// TerminalReporter outputs results to the terminal with styles
type TerminalReporter struct {
	w         io.Writer
	styles    *ui.Styles
	showStats bool
}

// NewTerminalReporter creates a new terminal reporter
func NewTerminalReporter(w io.Writer, u *ui.UI, showStats bool) *TerminalReporter {
	return &TerminalReporter{w: w, styles: u.Styles, showStats: showStats}
}

// Report outputs results to the terminal. A single result prints just its
// grade level line; several results are listed per source with a summary.
func (r *TerminalReporter) Report(results []Result) error {
	if len(results) == 1 {
		r.printResult(results[0], false)
		return nil
	}

	for _, res := range results {
		r.printResult(res, true)
	}
	r.printSummary(results)
	return nil
}

func (r *TerminalReporter) printResult(res Result, withSource bool) {
	prefix := ""
	if withSource {
		prefix = r.styles.Path.Render(res.Source) + "  "
	}

	if res.Err != nil {
		msg := ui.AnalysisErrorResult + ": " + res.Err.Error()
		if errors.Is(res.Err, grade.ErrInvalidInput) {
			msg = ui.EmptyInputMessage
		}
		fmt.Fprintf(r.w, "%s %s%s\n", r.styles.Error.Render(r.styles.IconError), prefix, msg)
		return
	}

	if withSource {
		fmt.Fprintf(r.w, "%s %s", r.styles.Success.Render(r.styles.IconSuccess), prefix)
	}
	fmt.Fprintf(r.w, "Grade Level: %s\n", r.styles.Label(res.Stats.Label))

	if r.showStats {
		indent := ""
		if withSource {
			indent = "    "
		}
		fmt.Fprintln(r.w, r.styles.Dim.Render(fmt.Sprintf(
			"%ssentences: %d  words: %d  syllables: %d  score: %.2f",
			indent, res.Stats.Sentences, res.Stats.Words, res.Stats.Syllables, res.Stats.Score,
		)))
	}
}

func (r *TerminalReporter) printSummary(results []Result) {
	summary := ComputeSummary(results)

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.styles.Separator.Render("─────────────────────────────────────"))

	fmt.Fprintf(r.w, "Analyzed %d texts", summary.Files)
	if summary.Errors > 0 {
		fmt.Fprint(r.w, ", ", r.styles.Error.Render(fmt.Sprintf("%d errors", summary.Errors)))
	}
	fmt.Fprintln(r.w)

	if summary.Hardest == "" {
		return
	}
	fmt.Fprintf(r.w, "Easiest: %s  Hardest: %s\n", r.styles.Label(summary.Easiest), r.styles.Label(summary.Hardest))

	rank := make(map[string]int)
	for i, l := range grade.Labels() {
		rank[l] = i
	}
	labels := make([]string, 0, len(summary.ByLabel))
	for l := range summary.ByLabel {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool { return rank[labels[i]] < rank[labels[j]] })

	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		parts = append(parts, fmt.Sprintf("%s: %d", l, summary.ByLabel[l]))
	}
	fmt.Fprintln(r.w, r.styles.Dim.Render(strings.Join(parts, ", ")))
}
