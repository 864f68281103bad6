package advanced

import "math"

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Equal compares coordinates using the same tolerance as the predicates.
func Equal(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

func SamePoint(a, b Point) bool {
	return Equal(a.X, b.X) && Equal(a.Y, b.Y)
}

// EdgeStack is the legalization work list. Edges are examined last in, first
// out.
type EdgeStack []EdgeID

func (s *EdgeStack) Push(e EdgeID) {
	*s = append(*s, e)
}

// Pop returns false when the stack is empty.
func (s *EdgeStack) Pop() (EdgeID, bool) {
	if len(*s) == 0 {
		return 0, false
	}
	e := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return e, true
}

func (s *EdgeStack) Peek() (EdgeID, bool) {
	if len(*s) == 0 {
		return 0, false
	}
	return (*s)[len(*s)-1], true
}

func (s *EdgeStack) Empty() bool {
	return len(*s) == 0
}

func (s *EdgeStack) Len() int {
	return len(*s)
}

// Reset empties the stack but keeps its backing array.
func (s *EdgeStack) Reset() {
	*s = (*s)[:0]
}
