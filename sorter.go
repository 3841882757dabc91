package sortbench

import "fmt"

// Sorter sorts a Sequence in place. A Sorter that cannot run returns
// ErrUnavailable, which the Harness records as a skipped result.
type Sorter interface {
	Algorithm() Algorithm
	Sort(seq *Sequence) error
}

// builtinSorter adapts a pair of typed sort functions to the Sorter
// interface. Both are instantiations of the same generic algorithm.
type builtinSorter struct {
	algorithm Algorithm
	ints      func([]int64)
	floats    func([]float64)
}

func NewHeapSorter() Sorter {
	return &builtinSorter{algorithm: AlgorithmHeap, ints: HeapSort[int64], floats: HeapSort[float64]}
}

func NewMergeSorter() Sorter {
	return &builtinSorter{algorithm: AlgorithmMerge, ints: MergeSort[int64], floats: MergeSort[float64]}
}

func NewQuickSorter() Sorter {
	return &builtinSorter{algorithm: AlgorithmQuick, ints: QuickSort[int64], floats: QuickSort[float64]}
}

func (b *builtinSorter) Algorithm() Algorithm {
	return b.algorithm
}

func (b *builtinSorter) Sort(seq *Sequence) error {
	return sortSequence(seq, b.ints, b.floats)
}

func sortSequence(seq *Sequence, ints func([]int64), floats func([]float64)) error {
	switch seq.Kind() {
	case KindInt:
		ints(seq.Ints())
	case KindFloat:
		floats(seq.Floats())
	default:
		return fmt.Errorf("unsupported sequence kind %s", seq.Kind())
	}
	return nil
}

// DefaultSorters returns one sorter per algorithm, in comparison order.
func DefaultSorters() []Sorter {
	return []Sorter{
		NewHeapSorter(),
		NewMergeSorter(),
		NewQuickSorter(),
		&LibrarySorter{},
	}
}
