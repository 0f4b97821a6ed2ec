package grade

import (
	"errors"
	"strings"
)

// ErrInvalidInput is returned when the text to analyze is blank
var ErrInvalidInput = errors.New("input text cannot be null or empty")

// Flesch-Kincaid grade level coefficients
const (
	sentenceWeight = 0.39
	syllableWeight = 11.8
	gradeOffset    = 15.59
)

// Stats holds the aggregate counts behind a grade level
type Stats struct {
	Sentences int     `json:"sentences" yaml:"sentences"`
	Words     int     `json:"words" yaml:"words"`
	Syllables int     `json:"syllables" yaml:"syllables"`
	Score     float64 `json:"score" yaml:"score"`
	Label     string  `json:"label" yaml:"label"`

	// Degenerate is set when there were no words or no sentences and the
	// score was never computed.
	Degenerate bool `json:"degenerate,omitempty" yaml:"degenerate,omitempty"`
}

// Analyzer computes Flesch-Kincaid reading grade levels.
// It holds no mutable state and is safe for concurrent use.
type Analyzer struct{}

// New creates a new analyzer
func New() *Analyzer {
	return &Analyzer{}
}

// CalculateGradeLevel returns the grade label for text. Blank text yields
// ErrInvalidInput.
func (a *Analyzer) CalculateGradeLevel(text string) (string, error) {
	stats, err := a.Analyze(text)
	if err != nil {
		return "", err
	}
	return stats.Label, nil
}

// Analyze tokenizes text and computes its Flesch-Kincaid statistics
func (a *Analyzer) Analyze(text string) (Stats, error) {
	// Blankness and word splitting both use Unicode whitespace, so text of
	// only NBSPs is blank and control characters count as words.
	if strings.TrimSpace(text) == "" {
		return Stats{}, ErrInvalidInput
	}

	tokens := Tokenize(text)
	stats := Stats{
		Sentences: tokens.SentenceCount(),
		Words:     tokens.WordCount(),
	}
	for _, sentence := range tokens.Sentences {
		for _, word := range sentence {
			stats.Syllables += CountSyllables(word)
		}
	}

	// Nothing to divide by
	if stats.Words == 0 || stats.Sentences == 0 {
		stats.Label = Labels()[0]
		stats.Degenerate = true
		return stats, nil
	}

	stats.Score = Score(stats.Words, stats.Sentences, stats.Syllables)
	stats.Label = Label(stats.Score)
	return stats, nil
}

// Score applies the Flesch-Kincaid grade level formula. Callers must pass
// non-zero word and sentence counts.
func Score(words, sentences, syllables int) float64 {
	return sentenceWeight*(float64(words)/float64(sentences)) +
		syllableWeight*(float64(syllables)/float64(words)) -
		gradeOffset
}
