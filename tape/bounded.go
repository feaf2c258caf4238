package tape

// Bounded is a tape whose cursor can not move past either end.
type Bounded struct {
	cells
}

var _ Tape = (*Bounded)(nil)

// NewBounded creates a zeroed bounded tape.
func NewBounded(capacity int) *Bounded {
	return &Bounded{cells: newCells(capacity)}
}

// MoveLeft moves the cursor left, failing at the first cell.
func (b *Bounded) MoveLeft() (err error) {
	if b.Index == 0 {
		err = &ErrBoundary{Cursor: b.Index, Capacity: len(b.Data), Direction: DIRECTION_LEFT}
		return
	}

	b.Index--

	return
}

// MoveRight moves the cursor right, failing at the last cell.
func (b *Bounded) MoveRight() (err error) {
	if b.Index+1 >= len(b.Data) {
		err = &ErrBoundary{Cursor: b.Index, Capacity: len(b.Data), Direction: DIRECTION_RIGHT}
		return
	}

	b.Index++

	return
}
