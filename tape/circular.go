package tape

// Circular is a tape whose ends are joined into a ring.
type Circular struct {
	cells
}

var _ Tape = (*Circular)(nil)

// NewCircular creates a zeroed circular tape.
func NewCircular(capacity int) *Circular {
	return &Circular{cells: newCells(capacity)}
}

// MoveLeft moves the cursor left, from the first cell to the last.
func (c *Circular) MoveLeft() error {
	c.Index--
	if c.Index < 0 {
		c.Index = len(c.Data) - 1
	}
	return nil
}

// MoveRight moves the cursor right, from the last cell to the first.
func (c *Circular) MoveRight() error {
	c.Index++
	if c.Index == len(c.Data) {
		c.Index = 0
	}
	return nil
}
