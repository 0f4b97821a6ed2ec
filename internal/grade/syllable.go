package grade

import (
	"strings"
	"unicode"
)

// CountSyllables estimates the syllables in word by counting vowel groups.
// A trailing 'e' is treated as silent when the word has more than one
// group. The result is never below 1, even for the empty string.
func CountSyllables(word string) int {
	if word == "" {
		return 1
	}

	word = strings.ToLower(word)
	syllables := 0
	lastWasVowel := false
	for _, r := range word {
		vowel := IsVowel(r)
		if vowel && !lastWasVowel {
			syllables++
		}
		lastWasVowel = vowel
	}

	if strings.HasSuffix(word, "e") && syllables > 1 {
		syllables--
	}

	return max(syllables, 1)
}

// IsVowel reports whether r is one of a, e, i, o, u or y, ignoring case
func IsVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
