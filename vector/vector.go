/*
Package vector implements a growable array with manually managed capacity.
*/
package vector

// Vector is a growable array. Element storage is a manually grown
// buffer whose length is tracked separately from its capacity.
//
// The zero value is a ready to use empty vector.
type Vector[T any] struct {
	buf []T
	len int
}

// Len returns the number of elements in the vector.
func (v *Vector[T]) Len() int {
	return v.len
}

// Cap returns the capacity of the buffer.
func (v *Vector[T]) Cap() int {
	return len(v.buf)
}

// Push appends a value, growing the buffer if it is full.
func (v *Vector[T]) Push(x T) {
	if v.len == len(v.buf) {
		v.grow()
	}

	v.buf[v.len] = x
	v.len++
}

// Pop removes and returns the last value.
func (v *Vector[T]) Pop() (T, bool) {
	if v.len == 0 {
		var zero T
		return zero, false
	}

	v.len--
	x := v.buf[v.len]

	// Release the slot so the value can be collected.
	var zero T
	v.buf[v.len] = zero

	return x, true
}

// Insert places a value at index i, shifting the tail right.
// It panics if i is out of range; an invalid index is a programming
// error, not an expected absence of data.
func (v *Vector[T]) Insert(i int, x T) {
	if i < 0 || i > v.len {
		panic("vector: index out of range")
	}

	if v.len == len(v.buf) {
		v.grow()
	}

	copy(v.buf[i+1:v.len+1], v.buf[i:v.len])
	v.buf[i] = x
	v.len++
}

// Remove deletes and returns the value at index i, shifting the tail
// left. It panics if i is out of range.
func (v *Vector[T]) Remove(i int) T {
	if i < 0 || i >= v.len {
		panic("vector: index out of range")
	}

	x := v.buf[i]
	copy(v.buf[i:], v.buf[i+1:v.len])
	v.len--

	var zero T
	v.buf[v.len] = zero

	return x
}

// Slice returns a view of the vector's elements. The view is valid
// until the next operation that grows or drains the vector.
func (v *Vector[T]) Slice() []T {
	return v.buf[:v.len]
}

// Drain empties the vector and returns a double ended iterator over
// the removed values.
func (v *Vector[T]) Drain() *Drain[T] {
	d := &Drain[T]{buf: v.buf[:v.len]}
	v.buf = nil
	v.len = 0
	return d
}

// grow allocates the buffer if the capacity is zero, otherwise it
// doubles the size of the buffer and reallocates it.
func (v *Vector[T]) grow() {
	newCap := 1
	if len(v.buf) > 0 {
		newCap = len(v.buf) * 2
		if newCap < 0 {
			panic("vector: capacity overflow")
		}
	}

	buf := make([]T, newCap)
	copy(buf, v.buf[:v.len])
	v.buf = buf
}

// Drain is a double ended iterator over values removed from a vector.
type Drain[T any] struct {
	buf []T
}

// Len returns the number of values not yet drained.
func (d *Drain[T]) Len() int {
	return len(d.buf)
}

// Next consumes and returns the next value from the front.
func (d *Drain[T]) Next() (T, bool) {
	if len(d.buf) == 0 {
		var zero T
		return zero, false
	}

	x := d.buf[0]
	d.buf = d.buf[1:]

	return x, true
}

// NextBack consumes and returns the next value from the back.
func (d *Drain[T]) NextBack() (T, bool) {
	if len(d.buf) == 0 {
		var zero T
		return zero, false
	}

	x := d.buf[len(d.buf)-1]
	d.buf = d.buf[:len(d.buf)-1]

	return x, true
}
