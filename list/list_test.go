package list

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushPop(t *testing.T) {
	l := New[int]()
	require.Equal(t, 0, l.Len())

	_, ok := l.Pop()
	require.False(t, ok, "pop on empty list must report absence")

	l.Push(1)
	l.Push(2)
	l.Push(3)
	require.Equal(t, 3, l.Len())

	// LIFO order: the most recent push comes out first.
	for _, want := range []int{3, 2, 1} {
		v, ok := l.Pop()
		require.True(t, ok)
		require.Equal(t, want, v)
	}
	require.Equal(t, 0, l.Len())

	_, ok = l.Pop()
	require.False(t, ok)
	require.Equal(t, 0, l.Len())
}

func TestZeroValue(t *testing.T) {
	var l List[string]
	require.Equal(t, 0, l.Len())

	l.Push("x")
	v, ok := l.Pop()
	require.True(t, ok)
	require.Equal(t, "x", v)
}

func TestPeek(t *testing.T) {
	l := New[int]()

	_, ok := l.Peek()
	require.False(t, ok)
	require.Nil(t, l.PeekRef())

	l.Push(7)
	l.Push(8)

	v, ok := l.Peek()
	require.True(t, ok)
	require.Equal(t, 8, v)
	require.Equal(t, 2, l.Len(), "peek must not remove")

	// Mutation through PeekRef is visible to later reads.
	*l.PeekRef() = 80
	v, ok = l.Pop()
	require.True(t, ok)
	require.Equal(t, 80, v)

	v, ok = l.Pop()
	require.True(t, ok)
	require.Equal(t, 7, v)
}

func TestIterator(t *testing.T) {
	l := New[int]()
	for i := 1; i <= 4; i++ {
		l.Push(i)
	}

	collect := func() []int {
		var got []int
		for it := l.Iterator(); it.HasElem(); it.Next() {
			got = append(got, it.Elem())
		}
		return got
	}

	require.Equal(t, []int{4, 3, 2, 1}, collect())
	// Iteration borrows: the list is intact and a new traversal restarts.
	require.Equal(t, 4, l.Len())
	require.Equal(t, []int{4, 3, 2, 1}, collect())
}

func TestIteratorMutate(t *testing.T) {
	l := New[int]()
	for i := 1; i <= 3; i++ {
		l.Push(i)
	}

	for it := l.Iterator(); it.HasElem(); it.Next() {
		*it.ElemRef() *= 10
	}

	var got []int
	for it := l.Iterator(); it.HasElem(); it.Next() {
		got = append(got, it.Elem())
	}
	require.Equal(t, []int{30, 20, 10}, got)
}

func TestDrain(t *testing.T) {
	l := New[int]()
	for i := 1; i <= 5; i++ {
		l.Push(i)
	}

	var got []int
	d := l.Drain()
	for {
		v, ok := d.Next()
		if !ok {
			break
		}
		got = append(got, v)
	}
	require.Equal(t, []int{5, 4, 3, 2, 1}, got)
	require.Equal(t, 0, l.Len(), "drain must consume the list")

	_, ok := d.Next()
	require.False(t, ok, "an exhausted drain stays exhausted")
}

func TestClear(t *testing.T) {
	l := New[int]()
	for i := 0; i < 100; i++ {
		l.Push(i)
	}

	l.Clear()
	require.Equal(t, 0, l.Len())
	_, ok := l.Peek()
	require.False(t, ok)

	// The list is reusable after Clear.
	l.Push(1)
	require.Equal(t, 1, l.Len())
}
