package tape

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
)

func TestNewTape(t *testing.T) {
	assert := assert.New(t)

	tape, err := NewTape(DEFAULT_CAPACITY, POLICY_BOUNDED)
	assert.NoError(err)
	assert.IsType(&Bounded{}, tape)
	assert.Equal(DEFAULT_CAPACITY, tape.(*Bounded).Capacity())
	assert.Equal(0, tape.(*Bounded).Cursor())
	assert.Equal(make([]byte, DEFAULT_CAPACITY), tape.(*Bounded).Cells())

	tape, err = NewTape(16, POLICY_CIRCULAR)
	assert.NoError(err)
	assert.IsType(&Circular{}, tape)

	_, err = NewTape(0, POLICY_BOUNDED)
	assert.ErrorIs(err, ErrCapacity)

	_, err = NewTape(-5, POLICY_CIRCULAR)
	assert.ErrorIs(err, ErrCapacity)

	_, err = NewTape(16, Policy(7))
	assert.ErrorIs(err, ErrPolicy)
}

func TestParsePolicy(t *testing.T) {
	assert := assert.New(t)

	policy, err := ParsePolicy("bounded")
	assert.NoError(err)
	assert.Equal(POLICY_BOUNDED, policy)

	policy, err = ParsePolicy("circular")
	assert.NoError(err)
	assert.Equal(POLICY_CIRCULAR, policy)

	_, err = ParsePolicy("infinite")
	assert.ErrorIs(err, ErrPolicy)
}

func TestTape_Arithmetic(t *testing.T) {
	assert := assert.New(t)

	for _, tape := range []Tape{NewBounded(4), NewCircular(4)} {
		tape.Decrement()
		assert.Equal(byte(255), tape.Read())

		tape.Increment()
		assert.Equal(byte(0), tape.Read())

		tape.Write(255)
		tape.Increment()
		assert.Equal(byte(0), tape.Read())

		tape.Write(42)
		assert.Equal(byte(42), tape.Read())
		assert.Equal(byte(42), tape.Read())
	}
}

func TestTape_Isolation(t *testing.T) {
	assert := assert.New(t)

	tape := NewBounded(3)
	assert.NoError(tape.MoveRight())
	tape.Increment()
	tape.Increment()

	assert.Equal([]byte{0, 2, 0}, tape.Cells())
	assert.Equal(1, tape.Cursor())
}

func TestBounded_Edges(t *testing.T) {
	assert := assert.New(t)

	tape := NewBounded(2)

	err := tape.MoveLeft()
	assert.ErrorIs(err, ErrOutOfBounds)
	var boundary *ErrBoundary
	if assert.True(errors.As(err, &boundary)) {
		assert.Equal(0, boundary.Cursor)
		assert.Equal(2, boundary.Capacity)
		assert.Equal(DIRECTION_LEFT, boundary.Direction)
	}
	assert.Equal(0, tape.Cursor())

	assert.NoError(tape.MoveRight())
	assert.Equal(1, tape.Cursor())

	err = tape.MoveRight()
	assert.ErrorIs(err, ErrOutOfBounds)
	if assert.True(errors.As(err, &boundary)) {
		assert.Equal(1, boundary.Cursor)
		assert.Equal(DIRECTION_RIGHT, boundary.Direction)
	}
	assert.Equal(1, tape.Cursor())

	assert.NoError(tape.MoveLeft())
	assert.Equal(0, tape.Cursor())
}

func TestBounded_ErrorMessage(t *testing.T) {
	assert := assert.New(t)

	tape := NewBounded(DEFAULT_CAPACITY)
	for range DEFAULT_CAPACITY - 1 {
		assert.NoError(tape.MoveRight())
	}

	err := tape.MoveRight()
	assert.EqualError(err, "move right from cell 1023 of 1024: tape out of bounds")

	err = NewBounded(DEFAULT_CAPACITY).MoveLeft()
	assert.EqualError(err, "move left from cell 0 of 1024: tape out of bounds")
}

func TestCircular_Edges(t *testing.T) {
	assert := assert.New(t)

	tape := NewCircular(8)

	assert.NoError(tape.MoveLeft())
	assert.Equal(7, tape.Cursor())

	assert.NoError(tape.MoveRight())
	assert.Equal(0, tape.Cursor())

	for range 8 {
		assert.NoError(tape.MoveRight())
	}
	assert.Equal(0, tape.Cursor())

	single := NewCircular(1)
	assert.NoError(single.MoveLeft())
	assert.Equal(0, single.Cursor())
	assert.NoError(single.MoveRight())
	assert.Equal(0, single.Cursor())
}

func TestTape_Marshal(t *testing.T) {
	assert := assert.New(t)

	tape := NewCircular(4)
	tape.Write(0x41)
	assert.NoError(tape.MoveLeft())
	tape.Write(0x5a)

	var buf bytes.Buffer
	assert.NoError(tape.Marshal(&buf))
	assert.Equal([]byte{0x41, 0, 0, 0x5a}, buf.Bytes())
}

func TestTape_Unmarshal(t *testing.T) {
	assert := assert.New(t)

	tape := NewBounded(4)
	tape.Data[3] = 9
	assert.NoError(tape.Unmarshal(strings.NewReader("ab")))
	assert.Equal([]byte{'a', 'b', 0, 9}, tape.Cells())
	assert.Equal(0, tape.Cursor())

	assert.NoError(tape.Unmarshal(strings.NewReader("wxyz")))
	assert.Equal([]byte("wxyz"), tape.Cells())

	err := tape.Unmarshal(strings.NewReader("12345"))
	assert.ErrorIs(err, ErrCapacity)
	assert.Equal([]byte("wxyz"), tape.Cells())

	errRead := errors.New("read failure")
	err = tape.Unmarshal(iotest.ErrReader(errRead))
	assert.ErrorIs(err, errRead)
}

func TestTape_String(t *testing.T) {
	assert := assert.New(t)

	tape := NewBounded(3)
	tape.Write(0xff)
	assert.Equal("@0 [ff] 00 00", tape.String())
}

func TestPolicy_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("bounded", POLICY_BOUNDED.String())
	assert.Equal("circular", POLICY_CIRCULAR.String())
	assert.Equal("Policy(2)", Policy(2).String())
}
