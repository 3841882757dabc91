package sortbench

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidAlgorithm is returned for an algorithm outside the known set.
	ErrInvalidAlgorithm = errors.New("invalid algorithm")

	// ErrUnavailable is returned by a Sorter whose implementation cannot be used.
	ErrUnavailable = errors.New("sorter unavailable")

	// ErrNotSorted is returned by a verifying Harness when a sorter produced unordered output.
	ErrNotSorted = errors.New("output is not sorted")
)

type Algorithm uint8

const (
	AlgorithmHeap Algorithm = iota + 1
	AlgorithmMerge
	AlgorithmQuick
	AlgorithmLibrary
)

var _algorithmNames = map[Algorithm]string{
	AlgorithmHeap:    "Heap Sort",
	AlgorithmMerge:   "Merge Sort",
	AlgorithmQuick:   "Quick Sort",
	AlgorithmLibrary: "Library Sort",
}

var _algorithmKeys = map[Algorithm]string{
	AlgorithmHeap:    "heap",
	AlgorithmMerge:   "merge",
	AlgorithmQuick:   "quick",
	AlgorithmLibrary: "library",
}

// Algorithms returns all algorithms in comparison order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmHeap, AlgorithmMerge, AlgorithmQuick, AlgorithmLibrary}
}

func (a Algorithm) Valid() bool {
	_, ok := _algorithmNames[a]
	return ok
}

func (a Algorithm) String() string {
	if name, ok := _algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", uint8(a))
}

// Key returns the short lowercase identifier used on the command line.
func (a Algorithm) Key() string {
	return _algorithmKeys[a]
}

// ParseAlgorithm accepts either the short key ("heap") or the display
// name ("Heap Sort"), case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, a := range Algorithms() {
		if v == a.Key() || v == strings.ToLower(a.String()) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, s)
}
