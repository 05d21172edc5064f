/*
Package deque implements a doubly linked list with a bidirectional, mutating cursor.
*/
package deque

// List is a doubly linked list.
//
// The zero value is a ready to use empty list.
type List[T any] struct {
	head, tail *node[T]
	len        int
	cursored   bool
}

// New creates an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// From creates a list holding values in order.
func From[T any](values ...T) *List[T] {
	l := New[T]()
	l.Extend(values...)
	return l
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.len
}

// IsEmpty returns whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.len == 0
}

// PushFront inserts a value at the front of the list.
func (l *List[T]) PushFront(v T) {
	l.checkAvailable()

	n := &node[T]{elem: v}

	if l.head != nil {
		l.head.prev = n
		n.next = l.head
	} else {
		l.tail = n
	}

	l.head = n
	l.len++
}

// PushBack inserts a value at the back of the list.
func (l *List[T]) PushBack(v T) {
	l.checkAvailable()

	n := &node[T]{elem: v}

	if l.tail != nil {
		l.tail.next = n
		n.prev = l.tail
	} else {
		l.head = n
	}

	l.tail = n
	l.len++
}

// PopFront removes and returns the front value.
func (l *List[T]) PopFront() (T, bool) {
	l.checkAvailable()

	if l.head == nil {
		var zero T
		return zero, false
	}

	n := l.head
	l.head = n.next

	if l.head != nil {
		l.head.prev = nil
	} else {
		l.tail = nil
	}

	n.next = nil
	l.len--

	return n.elem, true
}

// PopBack removes and returns the back value.
func (l *List[T]) PopBack() (T, bool) {
	l.checkAvailable()

	if l.tail == nil {
		var zero T
		return zero, false
	}

	n := l.tail
	l.tail = n.prev

	if l.tail != nil {
		l.tail.next = nil
	} else {
		l.head = nil
	}

	n.prev = nil
	l.len--

	return n.elem, true
}

// Front returns a pointer to the front element or nil if the list is empty.
func (l *List[T]) Front() *T {
	if l.head == nil {
		return nil
	}
	return &l.head.elem
}

// Back returns a pointer to the back element or nil if the list is empty.
func (l *List[T]) Back() *T {
	if l.tail == nil {
		return nil
	}
	return &l.tail.elem
}

// Extend appends values at the back of the list.
func (l *List[T]) Extend(values ...T) {
	for _, v := range values {
		l.PushBack(v)
	}
}

// Clear removes all elements by popping them one at a time.
// Nodes are detached individually so that no chain of reachable
// links outlives the list contents.
func (l *List[T]) Clear() {
	for {
		if _, ok := l.PopFront(); !ok {
			return
		}
	}
}

// Do calls function f on each value of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[T]) Do(f func(v T) bool) {
	for n := l.head; n != nil; n = n.next {
		if !f(n.elem) {
			return
		}
	}
}

// take empties the list and returns its node chain.
func (l *List[T]) take() (head, tail *node[T], n int) {
	head, tail, n = l.head, l.tail, l.len
	l.head, l.tail, l.len = nil, nil, 0
	return head, tail, n
}

func (l *List[T]) checkAvailable() {
	if l.cursored {
		panic("deque: list is checked out by a cursor")
	}
}
