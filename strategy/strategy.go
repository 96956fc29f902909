package strategy

import (
	"fmt"
	"math"
	"sort"
)

// CountClasses returns the observed per-class counts of a code vector.
// Complexity: O(n).
func CountClasses(y []int) map[int]int {
	counts := make(map[int]int)
	for _, c := range y {
		counts[c]++
	}

	return counts
}

// Resolve turns a sampling policy into concrete per-class sample counts for
// the given mode: samples to add for OverSampling, samples to keep for
// UnderSampling and CleanSampling. Resolution is pure; counts is the
// observed per-class histogram (see CountClasses) and is not mutated.
func Resolve(spec Spec, counts map[int]int, mode Mode) (Resolved, error) {
	if mode > CleanSampling {
		return Resolved{}, fmt.Errorf("%w: unknown mode %d", ErrInvalidStrategy, mode)
	}
	if len(counts) == 0 {
		return Resolved{}, fmt.Errorf("%w: no observed classes", ErrInvalidStrategy)
	}
	for class, n := range counts {
		if n <= 0 {
			return Resolved{}, fmt.Errorf("%w: class %d has non-positive count %d", ErrInvalidStrategy, class, n)
		}
	}

	switch spec.form {
	case formRatio:
		if mode == CleanSampling {
			return Resolved{}, fmt.Errorf("%w: clean-sampling accepts keyword policies only", ErrInvalidStrategy)
		}

		return resolveRatio(spec.ratio, counts, mode)
	case formCounts:
		if mode == CleanSampling {
			return Resolved{}, fmt.Errorf("%w: clean-sampling accepts keyword policies only", ErrInvalidStrategy)
		}

		return resolveCounts(spec.counts, counts, mode)
	default:
		return resolveKeyword(spec.keyword, counts, mode)
	}
}

// resolveKeyword resolves the named policies. The reference count is the
// majority for over-sampling and the minority otherwise; Auto is rewritten
// to the matching Not* keyword first.
func resolveKeyword(k Keyword, counts map[int]int, mode Mode) (Resolved, error) {
	minCount, maxCount, minClasses, maxClasses := extremes(counts)
	over := mode == OverSampling
	if k == Auto {
		if over {
			k = NotMajority
		} else {
			k = NotMinority
		}
	}

	targets := make(map[int]int)
	switch k {
	case Minority:
		if !over {
			return Resolved{}, fmt.Errorf("%w: %q cannot be used when %s", ErrInvalidStrategy, k, mode)
		}
		if len(minClasses) != 1 {
			return Resolved{}, fmt.Errorf("%w: minority class is ambiguous, %d classes share count %d",
				ErrInvalidStrategy, len(minClasses), minCount)
		}
		c := minClasses[0]
		targets[c] = maxCount - counts[c]
	case Majority:
		if over {
			return Resolved{}, fmt.Errorf("%w: %q cannot be used when %s", ErrInvalidStrategy, k, mode)
		}
		if len(maxClasses) != 1 {
			return Resolved{}, fmt.Errorf("%w: majority class is ambiguous, %d classes share count %d",
				ErrInvalidStrategy, len(maxClasses), maxCount)
		}
		targets[maxClasses[0]] = minCount
	case NotMinority:
		for c, n := range counts {
			if n == minCount {
				continue
			}
			if over {
				targets[c] = maxCount - n
			} else {
				targets[c] = minCount
			}
		}
	case NotMajority:
		for c, n := range counts {
			if n == maxCount {
				continue
			}
			if over {
				targets[c] = maxCount - n
			} else {
				targets[c] = minCount
			}
		}
	case All:
		for c, n := range counts {
			if over {
				targets[c] = maxCount - n
			} else {
				targets[c] = minCount
			}
		}
	default:
		return Resolved{}, fmt.Errorf("%w: unknown keyword %d", ErrInvalidStrategy, k)
	}

	return newResolved(targets), nil
}

// resolveRatio resolves the ratio policy: each non-reference class's
// post-resampling count is round(r × reference count). A target below the
// observed count when over-sampling, or above it when under-sampling,
// cannot be met without reversing the sampling direction and is rejected.
func resolveRatio(r float64, counts map[int]int, mode Mode) (Resolved, error) {
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		return Resolved{}, fmt.Errorf("%w: ratio must be finite and positive, got %v", ErrInvalidStrategy, r)
	}
	minCount, maxCount, _, _ := extremes(counts)

	targets := make(map[int]int)
	if mode == OverSampling {
		want := int(math.Round(r * float64(maxCount)))
		for c, n := range counts {
			if n == maxCount {
				continue
			}
			if want < n {
				return Resolved{}, fmt.Errorf("%w: ratio %v would remove %d rows from class %d while over-sampling",
					ErrInvalidStrategy, r, n-want, c)
			}
			targets[c] = want - n
		}
	} else {
		want := int(math.Round(r * float64(minCount)))
		for c, n := range counts {
			if n == minCount {
				continue
			}
			if want > n {
				return Resolved{}, fmt.Errorf("%w: ratio %v would add %d rows to class %d while under-sampling",
					ErrInvalidStrategy, r, want-n, c)
			}
			targets[c] = want
		}
	}

	return newResolved(targets), nil
}

// resolveCounts validates the explicit policy and passes its values
// through unchanged.
func resolveCounts(m map[int]int, counts map[int]int, _ Mode) (Resolved, error) {
	if len(m) == 0 {
		return Resolved{}, fmt.Errorf("%w: explicit policy names no classes", ErrInvalidStrategy)
	}
	targets := make(map[int]int, len(m))
	for c, n := range m {
		if _, ok := counts[c]; !ok {
			return Resolved{}, fmt.Errorf("%w: class %d is not present in the data", ErrInvalidStrategy, c)
		}
		if n < 0 {
			return Resolved{}, fmt.Errorf("%w: negative count %d for class %d", ErrInvalidStrategy, n, c)
		}
		targets[c] = n
	}

	return newResolved(targets), nil
}

// extremes returns the minority and majority counts together with the
// classes attaining each, ascending.
func extremes(counts map[int]int) (minCount, maxCount int, minClasses, maxClasses []int) {
	first := true
	for c, n := range counts {
		switch {
		case first:
			minCount, maxCount = n, n
			minClasses = []int{c}
			maxClasses = []int{c}
			first = false

			continue
		case n < minCount:
			minCount = n
			minClasses = minClasses[:0]
		case n > maxCount:
			maxCount = n
			maxClasses = maxClasses[:0]
		}
		if n == minCount {
			minClasses = append(minClasses, c)
		}
		if n == maxCount {
			maxClasses = append(maxClasses, c)
		}
	}
	sort.Ints(minClasses)
	sort.Ints(maxClasses)

	return minCount, maxCount, minClasses, maxClasses
}
