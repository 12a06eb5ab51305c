package dice

// Sequence is a scripted Source that replays fixed values in order, cycling
// when it runs out. Values are clamped into [0, n) so one script can serve
// draws of different ranges.
type Sequence struct {
	values []int
	next   int
}

// NewSequence returns a Sequence replaying values.
//
// Precondition: len(values) > 0.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// Intn returns the next scripted value clamped to [0, n).
func (s *Sequence) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

// Draws reports how many values have been consumed.
func (s *Sequence) Draws() int {
	return s.next
}
