package deque

// Iter is a double ended iterator over list values.
//
// Forward and backward consumption share one remaining count, so
// alternating Next and NextBack calls meet in the middle without
// re-traversal. An iterator is one-shot; obtain a fresh one from the
// list to traverse again.
type Iter[T any] struct {
	head, tail *node[T]
	len        int
}

// Iter returns a forward iterator positioned at the front of the list.
func (l *List[T]) Iter() *Iter[T] {
	return &Iter[T]{head: l.head, tail: l.tail, len: l.len}
}

// Len returns the number of values not yet consumed.
func (it *Iter[T]) Len() int {
	return it.len
}

// Next consumes and returns the next value from the front.
func (it *Iter[T]) Next() (T, bool) {
	if it.len == 0 {
		var zero T
		return zero, false
	}

	n := it.head
	it.head = n.next
	it.len--

	return n.elem, true
}

// NextBack consumes and returns the next value from the back.
func (it *Iter[T]) NextBack() (T, bool) {
	if it.len == 0 {
		var zero T
		return zero, false
	}

	n := it.tail
	it.tail = n.prev
	it.len--

	return n.elem, true
}

// IterMut is a double ended iterator yielding pointers to list
// elements, allowing the elements to be mutated in place.
// The list's structure must not be changed while iterating.
type IterMut[T any] struct {
	head, tail *node[T]
	len        int
}

// IterMut returns a mutable-element iterator positioned at the front of the list.
func (l *List[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{head: l.head, tail: l.tail, len: l.len}
}

// Len returns the number of elements not yet consumed.
func (it *IterMut[T]) Len() int {
	return it.len
}

// Next consumes the next element from the front and returns a pointer
// to it, or nil when the iterator is exhausted.
func (it *IterMut[T]) Next() *T {
	if it.len == 0 {
		return nil
	}

	n := it.head
	it.head = n.next
	it.len--

	return &n.elem
}

// NextBack consumes the next element from the back and returns a
// pointer to it, or nil when the iterator is exhausted.
func (it *IterMut[T]) NextBack() *T {
	if it.len == 0 {
		return nil
	}

	n := it.tail
	it.tail = n.prev
	it.len--

	return &n.elem
}

// Drain is an owning iterator that consumes the list. Each step pops
// an element off the list, so a fully drained list ends up empty and
// its nodes released.
type Drain[T any] struct {
	list *List[T]
}

// Drain returns an owning iterator over the list.
func (l *List[T]) Drain() *Drain[T] {
	l.checkAvailable()
	return &Drain[T]{list: l}
}

// Len returns the number of values not yet drained.
func (d *Drain[T]) Len() int {
	return d.list.len
}

// Next pops and returns the front value.
func (d *Drain[T]) Next() (T, bool) {
	return d.list.PopFront()
}

// NextBack pops and returns the back value.
func (d *Drain[T]) NextBack() (T, bool) {
	return d.list.PopBack()
}
