package deque_test

import (
	"testing"

	"github.com/mgnsk/containers/deque"
	. "github.com/mgnsk/containers/internal/testing"
)

func TestIter(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		l := deque.New[int]()

		it := l.Iter()
		AssertEqual(t, it.Len(), 0)

		_, ok := it.Next()
		AssertEqual(t, ok, false)
		_, ok = it.NextBack()
		AssertEqual(t, ok, false)
	})

	t.Run("forward order", func(t *testing.T) {
		l := deque.From(0, 1, 2, 3, 4, 5, 6)

		it := l.Iter()
		for i := 0; i < 7; i++ {
			v, ok := it.Next()
			AssertEqual(t, ok, true)
			AssertEqual(t, v, i)
			AssertEqual(t, it.Len(), 6-i)
		}

		_, ok := it.Next()
		AssertEqual(t, ok, false)
	})

	t.Run("backward order", func(t *testing.T) {
		l := deque.From(0, 1, 2, 3, 4, 5, 6)

		it := l.Iter()
		for i := 6; i >= 0; i-- {
			v, ok := it.NextBack()
			AssertEqual(t, ok, true)
			AssertEqual(t, v, i)
		}

		_, ok := it.NextBack()
		AssertEqual(t, ok, false)
	})

	t.Run("meets in the middle", func(t *testing.T) {
		l := deque.New[int]()
		l.PushFront(4)
		l.PushFront(5)
		l.PushFront(6)

		it := l.Iter()
		AssertEqual(t, it.Len(), 3)

		v, _ := it.Next()
		AssertEqual(t, v, 6)
		AssertEqual(t, it.Len(), 2)

		v, _ = it.NextBack()
		AssertEqual(t, v, 4)
		AssertEqual(t, it.Len(), 1)

		v, _ = it.NextBack()
		AssertEqual(t, v, 5)
		AssertEqual(t, it.Len(), 0)

		_, ok := it.NextBack()
		AssertEqual(t, ok, false)
		_, ok = it.Next()
		AssertEqual(t, ok, false)
	})

	t.Run("one-shot", func(t *testing.T) {
		l := deque.From(1, 2)

		it := l.Iter()
		it.Next()
		it.Next()

		_, ok := it.Next()
		AssertEqual(t, ok, false)

		// A fresh iterator starts over.
		it = l.Iter()
		v, _ := it.Next()
		AssertEqual(t, v, 1)
	})
}

func TestIterMut(t *testing.T) {
	t.Run("mutates elements in place", func(t *testing.T) {
		l := deque.From(0, 1, 2, 3)

		it := l.IterMut()
		for p := it.Next(); p != nil; p = it.Next() {
			*p *= 10
		}

		expectHasExactElements(t, l, 0, 10, 20, 30)
		AssertEqual(t, l.Len(), 4)
	})

	t.Run("double ended", func(t *testing.T) {
		l := deque.From(4, 5, 6)

		it := l.IterMut()
		AssertEqual(t, it.Len(), 3)
		AssertEqual(t, *it.Next(), 4)
		AssertEqual(t, *it.NextBack(), 6)
		AssertEqual(t, *it.NextBack(), 5)
		AssertEqual(t, it.NextBack() == nil, true)
		AssertEqual(t, it.Next() == nil, true)
	})
}

func TestDrain(t *testing.T) {
	t.Run("forward", func(t *testing.T) {
		l := deque.From(1, 2, 3)

		d := l.Drain()
		v, _ := d.Next()
		AssertEqual(t, v, 1)
		v, _ = d.Next()
		AssertEqual(t, v, 2)
		v, _ = d.Next()
		AssertEqual(t, v, 3)

		_, ok := d.Next()
		AssertEqual(t, ok, false)
		AssertEqual(t, l.Len(), 0)
	})

	t.Run("both ends", func(t *testing.T) {
		l := deque.From(1, 2, 3, 4)

		d := l.Drain()
		AssertEqual(t, d.Len(), 4)

		v, _ := d.NextBack()
		AssertEqual(t, v, 4)
		v, _ = d.Next()
		AssertEqual(t, v, 1)
		AssertEqual(t, d.Len(), 2)
		AssertEqual(t, l.Len(), 2)

		v, _ = d.NextBack()
		AssertEqual(t, v, 3)
		v, _ = d.NextBack()
		AssertEqual(t, v, 2)

		_, ok := d.NextBack()
		AssertEqual(t, ok, false)
		AssertEqual(t, l.IsEmpty(), true)
	})
}
