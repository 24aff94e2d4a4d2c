package metric

import "golang.org/x/text/unicode/norm"

// Levenshtein returns the edit distance between s1 and s2: the minimum
// number of single-character insertions, deletions, or substitutions
// needed to turn s1 into s2. Uses a rolling uint16 matrix: O(|s1|·|s2|)
// time, O(min(|s1|,|s2|)) space.
func Levenshtein(s1, s2 string) int {
	r1, r2 := []rune(s1), []rune(s2)
	if len(r1) > len(r2) {
		r1, r2 = r2, r1
	}

	prev := make([]uint16, len(r1)+1)
	curr := make([]uint16, len(r1)+1)
	for i := range prev {
		prev[i] = uint16(i)
	}

	for j := 1; j <= len(r2); j++ {
		curr[0] = uint16(j)
		for i := 1; i <= len(r1); i++ {
			cost := uint16(1)
			if r1[i-1] == r2[j-1] {
				cost = 0
			}
			deletion := prev[i] + 1
			insertion := curr[i-1] + 1
			substitution := prev[i-1] + cost
			curr[i] = minUint16(deletion, insertion, substitution)
		}
		prev, curr = curr, prev
	}

	return int(prev[len(r1)])
}

func minUint16(values ...uint16) uint16 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// NormalizedLevenshtein returns Levenshtein(s1, s2) divided by the length of
// the longer string, giving a value in [0,1] comparable across string pairs
// of different lengths. Inputs are first NFC-normalised via
// golang.org/x/text/unicode/norm so that visually identical glyphs
// decomposed differently by a PDF's font encoding don't inflate the
// distance.
func NormalizedLevenshtein(s1, s2 string) float64 {
	n1 := norm.NFC.String(s1)
	n2 := norm.NFC.String(s2)

	maxLen := len([]rune(n1))
	if l2 := len([]rune(n2)); l2 > maxLen {
		maxLen = l2
	}
	if maxLen == 0 {
		return 0
	}
	return float64(Levenshtein(n1, n2)) / float64(maxLen)
}
