package program

// Pending is a loop open bracket awaiting its close.
type Pending struct {
	Ip     int // Index of the loop open instruction.
	Offset int // Source offset of the '['.
	Line   int
	Column int
}

// Stack of loop brackets awaiting their match.
type Stack struct {
	Data []Pending
}

func (s *Stack) Push(value Pending) {
	s.Data = append(s.Data, value)
}

func (s *Stack) Pop() (value Pending, ok bool) {
	value, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Peek() (value Pending, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

// Bottom returns the oldest entry on the stack.
func (s *Stack) Bottom() (value Pending, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[0], true
}
