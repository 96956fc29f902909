package strategy

import (
	"errors"
	"sort"
)

// ErrInvalidStrategy is returned when a sampling policy cannot be resolved
// against the observed class counts.
var ErrInvalidStrategy = errors.New("strategy: invalid sampling strategy")

// Mode selects the resampling direction a policy is resolved for.
type Mode uint8

const (
	// OverSampling grows minority classes; resolved values are samples to
	// add per class.
	OverSampling Mode = iota
	// UnderSampling shrinks majority classes; resolved values are samples
	// to keep per class.
	UnderSampling
	// CleanSampling selects classes for a cleaning pass; it resolves like
	// under-sampling but accepts only keyword policies.
	CleanSampling
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case OverSampling:
		return "over-sampling"
	case UnderSampling:
		return "under-sampling"
	case CleanSampling:
		return "clean-sampling"
	default:
		return "unknown"
	}
}

// Keyword is a named equalization policy.
type Keyword uint8

const (
	// Auto is NotMajority for over-sampling and NotMinority otherwise.
	Auto Keyword = iota
	// Minority targets only the single smallest class (over-sampling only).
	Minority
	// Majority targets only the single largest class (under/clean only).
	Majority
	// NotMinority targets every class not at the minority count.
	NotMinority
	// NotMajority targets every class not at the majority count.
	NotMajority
	// All targets every class.
	All
)

// String returns the keyword spelling.
func (k Keyword) String() string {
	switch k {
	case Auto:
		return "auto"
	case Minority:
		return "minority"
	case Majority:
		return "majority"
	case NotMinority:
		return "not minority"
	case NotMajority:
		return "not majority"
	case All:
		return "all"
	default:
		return "unknown"
	}
}

type specForm uint8

const (
	formKeyword specForm = iota
	formRatio
	formCounts
)

// Spec is a sampling policy in one of three forms. Build one with
// ByKeyword, ByRatio or ByCounts; the zero value is ByKeyword(Auto).
type Spec struct {
	form    specForm
	keyword Keyword
	ratio   float64
	counts  map[int]int
}

// ByKeyword builds a named policy.
func ByKeyword(k Keyword) Spec {
	return Spec{form: formKeyword, keyword: k}
}

// ByRatio builds a ratio policy: each targeted class's post-resampling
// count is round(r × reference count).
func ByRatio(r float64) Spec {
	return Spec{form: formRatio, ratio: r}
}

// ByCounts builds an explicit-count policy. Values are samples to add when
// resolved for over-sampling and samples to keep when resolved for
// under-sampling. The map is copied.
func ByCounts(m map[int]int) Spec {
	c := make(map[int]int, len(m))
	for k, v := range m {
		c[k] = v
	}

	return Spec{form: formCounts, counts: c}
}

// Resolved is an immutable per-class sample-count mapping produced by
// Resolve. Values are add-counts for over-sampling and keep-counts for
// under- and clean-sampling.
type Resolved struct {
	classes []int
	targets map[int]int
}

// Classes returns the resolved class codes in ascending order.
func (r Resolved) Classes() []int { return append([]int(nil), r.classes...) }

// Target returns the resolved sample count for a class and whether the
// class is part of the policy.
func (r Resolved) Target(class int) (int, bool) {
	n, ok := r.targets[class]

	return n, ok
}

// Len returns the number of resolved classes.
func (r Resolved) Len() int { return len(r.classes) }

func newResolved(targets map[int]int) Resolved {
	classes := make([]int, 0, len(targets))
	for c := range targets {
		classes = append(classes, c)
	}
	sort.Ints(classes)

	return Resolved{classes: classes, targets: targets}
}
