package sortbench

import "golang.org/x/exp/constraints"

// MergeSort sorts s in non-decreasing order with a bottom-up merge sort.
// It is stable and uses an auxiliary buffer of len(s) elements.
func MergeSort[T constraints.Ordered](s []T) {
	MergeSortFunc(s, func(a, b T) bool { return a < b })
}

// MergeSortFunc is MergeSort with a caller supplied ordering. Elements a
// and b are considered equal when neither less(a, b) nor less(b, a).
func MergeSortFunc[T any](s []T, less func(a, b T) bool) {
	n := len(s)
	if n < 2 {
		return
	}

	src := s
	dst := make([]T, n)
	buffered := false

	for width := 1; width < n; width *= 2 {
		for left := 0; left < n; left += 2 * width {
			mid := min(left+width, n)
			right := min(left+2*width, n)
			merge(dst, src, left, mid, right, less)
		}
		src, dst = dst, src
		buffered = !buffered
	}

	if buffered {
		copy(s, src)
	}
}

// merge merges the runs src[left:mid] and src[mid:right] into dst[left:right].
// On equal heads the left run wins, which keeps the sort stable.
func merge[T any](dst, src []T, left, mid, right int, less func(a, b T) bool) {
	i, j, k := left, mid, left
	for i < mid && j < right {
		if less(src[j], src[i]) {
			dst[k] = src[j]
			j++
		} else {
			dst[k] = src[i]
			i++
		}
		k++
	}
	k += copy(dst[k:], src[i:mid])
	copy(dst[k:], src[j:right])
}
