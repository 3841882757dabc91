package sortbench

import "golang.org/x/exp/constraints"

// HeapSort sorts s in place in non-decreasing order using a binary max-heap.
// It is not stable and uses O(1) extra space.
func HeapSort[T constraints.Ordered](s []T) {
	n := len(s)
	if n <= 1 {
		return
	}

	// heapify bottom-up, starting from the last internal node
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(s, i, n)
	}

	for end := n - 1; end > 0; end-- {
		s[0], s[end] = s[end], s[0]
		siftDown(s, 0, end)
	}
}

// siftDown restores the max-heap property of s[:n] for the subtree rooted at i.
func siftDown[T constraints.Ordered](s []T, i, n int) {
	for {
		largest := i
		left := 2*i + 1
		right := left + 1

		if left < n && s[left] > s[largest] {
			largest = left
		}
		if right < n && s[right] > s[largest] {
			largest = right
		}
		if largest == i {
			return
		}

		s[i], s[largest] = s[largest], s[i]
		i = largest
	}
}
