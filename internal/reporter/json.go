package reporter

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/pthm/readlevel/internal/grade"
)

// JSONReporter outputs results as JSON
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// JSONOutput represents the JSON output format
type JSONOutput struct {
	Results []JSONResult `json:"results"`
	Summary Summary      `json:"summary"`
}

// JSONResult represents one result in JSON format
type JSONResult struct {
	Source     string  `json:"source"`
	Label      string  `json:"label,omitempty"`
	Sentences  int     `json:"sentences"`
	Words      int     `json:"words"`
	Syllables  int     `json:"syllables"`
	Score      float64 `json:"score"`
	Degenerate bool    `json:"degenerate,omitempty"`
	Error      string  `json:"error,omitempty"`
	ErrorKind  string  `json:"errorKind,omitempty"`
}

// Report outputs results as JSON
func (r *JSONReporter) Report(results []Result) error {
	output := JSONOutput{
		Results: make([]JSONResult, 0, len(results)),
		Summary: ComputeSummary(results),
	}

	for _, res := range results {
		jr := JSONResult{
			Source:     res.Source,
			Label:      res.Stats.Label,
			Sentences:  res.Stats.Sentences,
			Words:      res.Stats.Words,
			Syllables:  res.Stats.Syllables,
			Score:      res.Stats.Score,
			Degenerate: res.Stats.Degenerate,
		}
		if res.Err != nil {
			jr.Error = res.Err.Error()
			jr.ErrorKind = "error"
			if errors.Is(res.Err, grade.ErrInvalidInput) {
				jr.ErrorKind = "invalid-input"
			}
		}
		output.Results = append(output.Results, jr)
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
