//go:build nolibsort

package sortbench

// LibrarySorter is always unavailable in nolibsort builds.
type LibrarySorter struct {
	Disabled bool
}

func (l *LibrarySorter) Algorithm() Algorithm {
	return AlgorithmLibrary
}

func (l *LibrarySorter) Available() bool {
	return false
}

func (l *LibrarySorter) Sort(seq *Sequence) error {
	return ErrUnavailable
}
