package metric

// FindIndexNearest scans candidates and returns the index of the element
// closest to candidates[excludeIndex] by distanceFn. Exclusion is by index,
// not by value: the slot at excludeIndex is never returned, but another
// candidate holding an equal value can be.
//
// Returns -1 if candidates is empty or every candidate is excluded.
func FindIndexNearest[T any](candidates []T, excludeIndex int, distanceFn func(a, b T) float64) int {
	best := -1
	bestDist := 0.0
	for i, c := range candidates {
		if i == excludeIndex {
			continue
		}
		d := distanceFn(candidates[excludeIndex], c)
		if best == -1 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
