package deque

// Cursor is a bidirectional mutating cursor over a list.
//
// A cursor rests either on a single node or on the ghost position, a
// virtual slot between the back and the front of the list. Movement is
// logically circular: stepping past the back lands on the ghost and
// stepping once more lands on the front.
//
// A cursor holds an exclusive binding to its list. While the cursor is
// active, structural mutation of the list must go through the cursor;
// direct list mutation panics. Release gives the list back.
type Cursor[T any] struct {
	list     *List[T]
	current  *node[T]
	index    int
	released bool
}

// Cursor returns a new cursor bound to l, resting on the ghost position.
// It panics if another cursor is already active on l.
func (l *List[T]) Cursor() *Cursor[T] {
	l.checkAvailable()
	l.cursored = true
	return &Cursor[T]{list: l}
}

// Release drops the cursor's exclusive binding to its list.
// The cursor must not be used afterwards.
func (c *Cursor[T]) Release() {
	c.check()
	c.list.cursored = false
	c.released = true
}

// Index returns the cursor's position counting from the front at 0.
// It returns false when the cursor rests on the ghost position.
//
// Elements spliced in front of the cursor are not counted until the
// cursor next crosses the ghost position: SpliceBefore leaves the
// index unchanged, so after a splice it can lag behind the element's
// true distance from the front and even go negative under MovePrev.
func (c *Cursor[T]) Index() (int, bool) {
	c.check()

	if c.current == nil {
		return 0, false
	}
	return c.index, true
}

// MoveNext moves the cursor one position towards the back. From the
// ghost it moves onto the front element; moving past the back lands on
// the ghost. On an empty list the cursor stays on the ghost.
func (c *Cursor[T]) MoveNext() {
	c.check()

	switch {
	case c.current != nil:
		c.current = c.current.next
		c.index++

	case c.list.len > 0:
		c.current = c.list.head
		c.index = 0
	}
}

// MovePrev moves the cursor one position towards the front. From the
// ghost it moves onto the back element; moving past the front lands on
// the ghost. On an empty list the cursor stays on the ghost.
func (c *Cursor[T]) MovePrev() {
	c.check()

	switch {
	case c.current != nil:
		c.current = c.current.prev
		c.index--

	case c.list.len > 0:
		c.current = c.list.tail
		c.index = c.list.len - 1
	}
}

// Current returns a pointer to the element under the cursor, or nil at
// the ghost position.
func (c *Cursor[T]) Current() *T {
	c.check()

	if c.current == nil {
		return nil
	}
	return &c.current.elem
}

// PeekNext returns a pointer to the element after the cursor without
// moving it. From the ghost it peeks at the front element. It returns
// nil when no such element exists.
func (c *Cursor[T]) PeekNext() *T {
	c.check()

	next := c.list.head
	if c.current != nil {
		next = c.current.next
	}

	if next == nil {
		return nil
	}
	return &next.elem
}

// PeekPrev returns a pointer to the element before the cursor without
// moving it. From the ghost it peeks at the back element. It returns
// nil when no such element exists.
func (c *Cursor[T]) PeekPrev() *T {
	c.check()

	prev := c.list.tail
	if c.current != nil {
		prev = c.current.prev
	}

	if prev == nil {
		return nil
	}
	return &prev.elem
}

// SplitBefore cuts the list immediately before the cursor and returns
// the front part as a new list. The bound list keeps the current node
// through the back and the cursor re-anchors to index 0. At the ghost
// position the entire list is extracted and the bound list becomes
// empty.
func (c *Cursor[T]) SplitBefore() *List[T] {
	c.check()

	if c.current == nil {
		return c.takeAll()
	}

	prev := c.current.prev
	if prev == nil {
		return New[T]()
	}

	// The node count is taken from the links, not from the cursor's
	// index: splices may have left the index lagging behind the true
	// distance from the front.
	n := 0
	for p := c.list.head; p != c.current; p = p.next {
		n++
	}

	out := &List[T]{head: c.list.head, tail: prev, len: n}

	prev.next = nil
	c.current.prev = nil

	c.list.head = c.current
	c.list.len -= out.len
	c.index = 0

	return out
}

// SplitAfter cuts the list immediately after the cursor and returns
// the back part as a new list. The bound list keeps the front through
// the current node and the cursor's index is unchanged. At the ghost
// position the entire list is extracted and the bound list becomes
// empty.
func (c *Cursor[T]) SplitAfter() *List[T] {
	c.check()

	if c.current == nil {
		return c.takeAll()
	}

	next := c.current.next
	if next == nil {
		return New[T]()
	}

	n := 0
	for p := next; p != nil; p = p.next {
		n++
	}

	out := &List[T]{head: next, tail: c.list.tail, len: n}

	c.current.next = nil
	next.prev = nil

	c.list.tail = c.current
	c.list.len -= out.len

	return out
}

// SpliceBefore grafts the donor's entire node chain into the bound
// list immediately before the cursor, emptying the donor. At the ghost
// position the chain lands after the back element. The cursor keeps
// resting on the same node; its index is not adjusted even though the
// spliced elements land in front of it.
func (c *Cursor[T]) SpliceBefore(donor *List[T]) {
	c.check()

	if donor == c.list {
		panic("deque: cannot splice a list into itself")
	}

	if donor.IsEmpty() {
		return
	}
	donor.checkAvailable()

	head, tail, n := donor.take()

	if c.list.len == 0 {
		c.list.head, c.list.tail = head, tail
		c.list.len = n
		return
	}

	switch {
	case c.current == nil:
		// Before the ghost, cycling from the back.
		c.list.tail.next = head
		head.prev = c.list.tail
		c.list.tail = tail

	case c.current.prev == nil:
		// Front boundary.
		tail.next = c.current
		c.current.prev = tail
		c.list.head = head

	default:
		prev := c.current.prev
		prev.next = head
		head.prev = prev
		tail.next = c.current
		c.current.prev = tail
	}

	c.list.len += n
}

// SpliceAfter grafts the donor's entire node chain into the bound list
// immediately after the cursor, emptying the donor. At the ghost
// position the chain lands before the front element. The cursor keeps
// resting on the same node with its index unchanged.
func (c *Cursor[T]) SpliceAfter(donor *List[T]) {
	c.check()

	if donor == c.list {
		panic("deque: cannot splice a list into itself")
	}

	if donor.IsEmpty() {
		return
	}
	donor.checkAvailable()

	head, tail, n := donor.take()

	if c.list.len == 0 {
		c.list.head, c.list.tail = head, tail
		c.list.len = n
		return
	}

	switch {
	case c.current == nil:
		// After the ghost, cycling to the front.
		c.list.head.prev = tail
		tail.next = c.list.head
		c.list.head = head

	case c.current.next == nil:
		// Back boundary.
		c.current.next = head
		head.prev = c.current
		c.list.tail = tail

	default:
		next := c.current.next
		next.prev = tail
		tail.next = next
		c.current.next = head
		head.prev = c.current
	}

	c.list.len += n
}

// RemoveCurrent unlinks and returns the element under the cursor,
// relinking its neighbours. The cursor advances to the former next
// neighbour, or to the ghost when the back element was removed.
// It returns false at the ghost position.
func (c *Cursor[T]) RemoveCurrent() (T, bool) {
	c.check()

	if c.current == nil {
		var zero T
		return zero, false
	}

	n := c.current
	next, prev := n.next, n.prev

	if next != nil {
		next.prev = prev
	} else {
		c.list.tail = prev
	}

	if prev != nil {
		prev.next = next
	} else {
		c.list.head = next
	}

	n.next, n.prev = nil, nil
	// The former next neighbour now occupies the removed slot;
	// the index is unchanged.
	c.current = next
	c.list.len--

	return n.elem, true
}

// takeAll extracts the whole bound list, leaving it empty.
func (c *Cursor[T]) takeAll() *List[T] {
	head, tail, n := c.list.take()
	return &List[T]{head: head, tail: tail, len: n}
}

func (c *Cursor[T]) check() {
	if c.released {
		panic("deque: use of a released cursor")
	}
}
