package program

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	assert.True(s.Empty())

	s.Push(Pending{Ip: 3, Offset: 7})
	assert.False(s.Empty())
	assert.Equal(1, len(s.Data))
	assert.Equal(Pending{Ip: 3, Offset: 7}, s.Data[0])
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(Pending{Ip: 1})
	s.Push(Pending{Ip: 2})

	val, ok := s.Pop()
	assert.True(ok)
	assert.Equal(2, val.Ip)
	assert.Equal(1, len(s.Data))

	val, ok = s.Pop()
	assert.True(ok)
	assert.Equal(1, val.Ip)
	assert.True(s.Empty())
}

func TestStack_Pop_Empty(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	val, ok := s.Pop()
	assert.False(ok)
	assert.Equal(Pending{}, val)
}

func TestStack_Bottom(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	_, ok := s.Bottom()
	assert.False(ok)

	s.Push(Pending{Ip: 1})
	s.Push(Pending{Ip: 2})
	s.Push(Pending{Ip: 3})

	val, ok := s.Bottom()
	assert.True(ok)
	assert.Equal(1, val.Ip)

	val, ok = s.Peek()
	assert.True(ok)
	assert.Equal(3, val.Ip)
	assert.Equal(3, len(s.Data))
}
