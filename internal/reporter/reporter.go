package reporter

import (
	"github.com/pthm/readlevel/internal/grade"
)

// Result is the outcome of analyzing one input
type Result struct {
	Source string
	Stats  grade.Stats
	Err    error
}

// Reporter defines the interface for outputting analysis results
type Reporter interface {
	// Report outputs the analysis results
	Report(results []Result) error
}

// Summary holds summary statistics for an analysis run
type Summary struct {
	Files   int            `json:"files"`
	Errors  int            `json:"errors"`
	ByLabel map[string]int `json:"byLabel"`
	Hardest string         `json:"hardest,omitempty"`
	Easiest string         `json:"easiest,omitempty"`
}

// ComputeSummary computes summary statistics from results
func ComputeSummary(results []Result) Summary {
	s := Summary{
		Files:   len(results),
		ByLabel: make(map[string]int),
	}

	rank := make(map[string]int)
	for i, l := range grade.Labels() {
		rank[l] = i
	}

	analyzed := 0
	for _, r := range results {
		if r.Err != nil {
			s.Errors++
			continue
		}
		s.ByLabel[r.Stats.Label]++
		if analyzed == 0 || rank[r.Stats.Label] > rank[s.Hardest] {
			s.Hardest = r.Stats.Label
		}
		if analyzed == 0 || rank[r.Stats.Label] < rank[s.Easiest] {
			s.Easiest = r.Stats.Label
		}
		analyzed++
	}

	return s
}
