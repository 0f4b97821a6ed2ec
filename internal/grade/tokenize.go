package grade

import (
	"regexp"
	"strings"
)

// terminators matches a run of sentence-ending punctuation
var terminators = regexp.MustCompile(`[.!?]+`)

// Tokens is the result of splitting text into sentences and words
type Tokens struct {
	// Sentences holds the words of each sentence. A sentence may have no
	// words; it still counts toward SentenceCount.
	Sentences [][]string
}

// SentenceCount returns the number of sentence segments
func (t Tokens) SentenceCount() int {
	return len(t.Sentences)
}

// WordCount returns the total number of words across all sentences
func (t Tokens) WordCount() int {
	n := 0
	for _, s := range t.Sentences {
		n += len(s)
	}
	return n
}

// Tokenize splits text on runs of '.', '!' and '?' and each resulting
// segment on whitespace.
//
// Leading and interior empty segments are kept and counted as sentences;
// trailing empty segments are dropped. So "Cat." is one sentence, ".a" is
// two and "..." is none.
func Tokenize(text string) Tokens {
	segments := terminators.Split(text, -1)
	for len(segments) > 0 && segments[len(segments)-1] == "" {
		segments = segments[:len(segments)-1]
	}

	tokens := Tokens{Sentences: make([][]string, 0, len(segments))}
	for _, segment := range segments {
		tokens.Sentences = append(tokens.Sentences, strings.Fields(segment))
	}
	return tokens
}
