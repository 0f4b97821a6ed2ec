package grade

// labels is ordered from easiest to hardest. labels[i] covers scores in
// [i, i+1), with labels[0] covering everything below 1 and the last label
// everything from 16 up.
var labels = []string{
	"Before Grade 1",
	"Grade 1",
	"Grade 2",
	"Grade 3",
	"Grade 4",
	"Grade 5",
	"Grade 6",
	"Grade 7",
	"Grade 8",
	"Grade 9",
	"Grade 10",
	"Grade 11",
	"Grade 12",
	"College Level 1",
	"College Level 2",
	"College Level 3",
	"Graduate Level",
}

// Labels returns every grade label in ascending order of difficulty
func Labels() []string {
	out := make([]string, len(labels))
	copy(out, labels)
	return out
}

// IsLabel reports whether s is one of the grade labels
func IsLabel(s string) bool {
	for _, l := range labels {
		if l == s {
			return true
		}
	}
	return false
}

// Label maps a Flesch-Kincaid score to its grade label. Bounds are
// inclusive below and exclusive above, checked in ascending order.
func Label(score float64) string {
	for i := 1; i < len(labels); i++ {
		if score < float64(i) {
			return labels[i-1]
		}
	}
	return labels[len(labels)-1]
}
