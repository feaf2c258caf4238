package tape

import (
	"bytes"
	"fmt"
	"io"
	"slices"
)

// cells is the storage and cursor shared by all tape variants.
type cells struct {
	Index int
	Data  []byte
}

func newCells(capacity int) cells {
	return cells{Data: make([]byte, capacity)}
}

// Increment adds one to the current cell, wrapping 255 to 0.
func (c *cells) Increment() {
	c.Data[c.Index]++
}

// Decrement subtracts one from the current cell, wrapping 0 to 255.
func (c *cells) Decrement() {
	c.Data[c.Index]--
}

func (c *cells) Read() byte {
	return c.Data[c.Index]
}

func (c *cells) Write(value byte) {
	c.Data[c.Index] = value
}

// Cursor returns the index of the current cell.
func (c *cells) Cursor() int {
	return c.Index
}

// Capacity returns the number of cells.
func (c *cells) Capacity() int {
	return len(c.Data)
}

// Cells returns a copy of all cells.
func (c *cells) Cells() []byte {
	return slices.Clone(c.Data)
}

// Marshal writes all cells to a writer.
func (c *cells) Marshal(file io.Writer) (err error) {
	_, err = file.Write(c.Data)

	return
}

// Unmarshal loads cells from a reader, starting at the first cell.
// Cells past the end of the data are left unchanged.
func (c *cells) Unmarshal(file io.Reader) (err error) {
	data, err := io.ReadAll(io.LimitReader(file, int64(len(c.Data))+1))
	if err != nil {
		return
	}

	if len(data) > len(c.Data) {
		err = ErrCapacity
		return
	}

	copy(c.Data, data)

	return
}

// String shows the cells around the cursor.
func (c *cells) String() string {
	const window = 4

	var buf bytes.Buffer
	lo := max(0, c.Index-window)
	hi := min(len(c.Data), c.Index+window+1)
	fmt.Fprintf(&buf, "@%d", c.Index)
	for n := lo; n < hi; n++ {
		if n == c.Index {
			fmt.Fprintf(&buf, " [%02x]", c.Data[n])
		} else {
			fmt.Fprintf(&buf, " %02x", c.Data[n])
		}
	}
	return buf.String()
}
