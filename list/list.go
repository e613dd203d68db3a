// Package list implements a singly linked list with LIFO insertion,
// used by chainmap as the collision chain of each bucket.
package list

// List is a singly linked list of values reachable only from its head.
// The zero value is an empty list ready to use.
type List[T any] struct {
	head *node[T]
	size int
}

type node[T any] struct {
	elem T
	next *node[T]
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.size
}

// Push inserts v at the front of the list in O(1). The new node becomes
// the head.
func (l *List[T]) Push(v T) {
	l.head = &node[T]{elem: v, next: l.head}
	l.size++
}

// Pop removes and returns the front element. The second return is false
// if the list is empty.
func (l *List[T]) Pop() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	n := l.head
	l.head = n.next
	n.next = nil
	if l.size > 0 {
		l.size--
	}
	return n.elem, true
}

// Peek returns the front element without removing it. The second return
// is false if the list is empty.
func (l *List[T]) Peek() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.elem, true
}

// PeekRef returns a pointer to the front element for in-place mutation,
// or nil if the list is empty. The pointer is valid until the element is
// popped.
func (l *List[T]) PeekRef() *T {
	if l.head == nil {
		return nil
	}
	return &l.head.elem
}

// Clear unlinks every node from head to tail and resets the length.
// Unlinking is iterative so that no chain of interior pointers keeps a
// long list reachable after the head is dropped.
func (l *List[T]) Clear() {
	cur := l.head
	l.head = nil
	l.size = 0
	for cur != nil {
		next := cur.next
		cur.next = nil
		cur = next
	}
}

// Iterator returns an iterator over the list from head to tail. It can be
// used like this:
//
//	for it := l.Iterator(); it.HasElem(); it.Next() {
//	    v := it.Elem()
//	    // do something with v...
//	}
//
// Iteration is lazy and restartable: calling Iterator again starts a new
// traversal from the head.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{cur: l.head}
}

// Drain returns a consuming iterator that pops elements from the front
// until the list is empty. The list is destroyed as it is drained.
func (l *List[T]) Drain() *Drain[T] {
	return &Drain[T]{l: l}
}

// Iterator is a forward iterator over list elements.
type Iterator[T any] struct {
	cur *node[T]
}

// HasElem returns whether the iterator is pointing to an element.
func (it *Iterator[T]) HasElem() bool {
	return it.cur != nil
}

// Elem returns the current element.
func (it *Iterator[T]) Elem() T {
	return it.cur.elem
}

// ElemRef returns a pointer to the current element, allowing mutation in
// place during traversal.
func (it *Iterator[T]) ElemRef() *T {
	return &it.cur.elem
}

// Next moves the iterator to the next position.
func (it *Iterator[T]) Next() {
	it.cur = it.cur.next
}

// Drain is a consuming iterator. Each call to Next removes the front
// element of the underlying list.
type Drain[T any] struct {
	l *List[T]
}

// Next removes and returns the next element. The second return is false
// once the list has been emptied.
func (d *Drain[T]) Next() (T, bool) {
	return d.l.Pop()
}
