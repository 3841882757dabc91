package sortbench

import "golang.org/x/exp/constraints"

type sortRange struct {
	low, high int
}

// QuickSort sorts s in place in non-decreasing order. It is iterative,
// keeping pending ranges on an explicit stack, and partitions with the
// Hoare scheme around the value at the midpoint index.
//
// The pivot choice is fixed, so adversarial inputs can degrade to O(n^2)
// comparisons.
func QuickSort[T constraints.Ordered](s []T) {
	if len(s) < 2 {
		return
	}

	stack := make([]sortRange, 0, 64)
	stack = append(stack, sortRange{low: 0, high: len(s) - 1})

	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if r.low >= r.high {
			continue
		}

		i, j := hoarePartition(s, r.low, r.high)

		if r.low < j {
			stack = append(stack, sortRange{low: r.low, high: j})
		}
		if i < r.high {
			stack = append(stack, sortRange{low: i, high: r.high})
		}
	}
}

// hoarePartition partitions s[low:high+1] and returns the crossed pointers:
// every element in s[low:j+1] is <= pivot and every element in s[i:high+1]
// is >= pivot. Elements equal to the pivot may end up on either side.
func hoarePartition[T constraints.Ordered](s []T, low, high int) (i, j int) {
	pivot := s[low+(high-low)/2]
	i, j = low, high

	for i <= j {
		for s[i] < pivot {
			i++
		}
		for s[j] > pivot {
			j--
		}
		if i <= j {
			s[i], s[j] = s[j], s[i]
			i++
			j--
		}
	}
	return i, j
}
