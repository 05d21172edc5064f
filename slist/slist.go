/*
Package slist implements a singly linked list with removal by value.
*/
package slist

type node[T any] struct {
	next *node[T]
	elem T
}

// List is a singly linked list holding comparable values.
//
// The zero value is a ready to use empty list.
type List[T comparable] struct {
	head, tail *node[T]
	len        int
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.len
}

// Add appends a value at the back of the list.
func (l *List[T]) Add(v T) {
	n := &node[T]{elem: v}

	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}

	l.tail = n
	l.len++
}

// Pop removes and returns the front value.
func (l *List[T]) Pop() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}

	n := l.head
	l.head = n.next

	if l.head == nil {
		l.tail = nil
	}

	n.next = nil
	l.len--

	return n.elem, true
}

// Remove unlinks the first node holding v and returns its value.
// Unlike Pop, the caller chooses which element to remove.
func (l *List[T]) Remove(v T) (T, bool) {
	var prev *node[T]

	for n := l.head; n != nil; n = n.next {
		if n.elem == v {
			if prev != nil {
				prev.next = n.next
			} else {
				l.head = n.next
			}

			if l.tail == n {
				l.tail = prev
			}

			n.next = nil
			l.len--

			return n.elem, true
		}

		prev = n
	}

	var zero T
	return zero, false
}
