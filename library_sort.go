//go:build !nolibsort

package sortbench

import "golang.org/x/exp/slices"

// LibrarySorter delegates to the pattern-defeating quicksort shipped in
// golang.org/x/exp/slices. It serves as the reference point for the
// from-scratch sorters. Building with the nolibsort tag compiles it out.
type LibrarySorter struct {
	// Disabled makes the sorter report itself unavailable.
	Disabled bool
}

func (l *LibrarySorter) Algorithm() Algorithm {
	return AlgorithmLibrary
}

func (l *LibrarySorter) Available() bool {
	return !l.Disabled
}

func (l *LibrarySorter) Sort(seq *Sequence) error {
	if !l.Available() {
		return ErrUnavailable
	}
	return sortSequence(seq, slices.Sort[[]int64], slices.Sort[[]float64])
}
