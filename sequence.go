package sortbench

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the element type of a numeric sequence.
type Number interface {
	constraints.Integer | constraints.Float
}

// Kind is the element kind of a Sequence.
type Kind uint8

const (
	KindInt Kind = iota + 1
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Sequence is a fixed-length sequence of numbers of a single kind.
// Exactly one of the backing slices is in use, depending on Kind.
type Sequence struct {
	kind   Kind
	ints   []int64
	floats []float64
}

// NewIntSequence wraps values without copying them.
func NewIntSequence(values []int64) *Sequence {
	return &Sequence{kind: KindInt, ints: values}
}

// NewFloatSequence wraps values without copying them.
func NewFloatSequence(values []float64) *Sequence {
	return &Sequence{kind: KindFloat, floats: values}
}

func (s *Sequence) Kind() Kind {
	return s.kind
}

func (s *Sequence) Len() int {
	if s.kind == KindFloat {
		return len(s.floats)
	}
	return len(s.ints)
}

// Ints returns the backing slice of an int sequence, nil otherwise.
func (s *Sequence) Ints() []int64 {
	return s.ints
}

// Floats returns the backing slice of a float sequence, nil otherwise.
func (s *Sequence) Floats() []float64 {
	return s.floats
}

// Clone returns a deep copy that shares no memory with s.
func (s *Sequence) Clone() *Sequence {
	c := &Sequence{kind: s.kind}
	switch s.kind {
	case KindInt:
		c.ints = cloneSlice(s.ints)
	case KindFloat:
		c.floats = cloneSlice(s.floats)
	}
	return c
}

// Equal reports whether both sequences have the same kind and values.
func (s *Sequence) Equal(other *Sequence) bool {
	if s.kind != other.kind {
		return false
	}
	switch s.kind {
	case KindInt:
		return equalSlice(s.ints, other.ints)
	case KindFloat:
		return equalSlice(s.floats, other.floats)
	}
	return true
}

// IsSorted reports whether the sequence is in non-decreasing order.
func (s *Sequence) IsSorted() bool {
	switch s.kind {
	case KindInt:
		return isSorted(s.ints)
	case KindFloat:
		return isSorted(s.floats)
	}
	return true
}

func cloneSlice[T Number](src []T) []T {
	if src == nil {
		return nil
	}
	dst := make([]T, len(src))
	copy(dst, src)
	return dst
}

func equalSlice[T Number](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func isSorted[T Number](s []T) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}
	return true
}
