package deque

import (
	"cmp"
	"encoding/binary"
	"encoding/gob"

	"github.com/dchest/siphash"
)

// Equal reports whether a and b hold the same elements in the same
// order.
func Equal[T comparable](a, b *List[T]) bool {
	if a.len != b.len {
		return false
	}

	y := b.head
	for x := a.head; x != nil; x = x.next {
		if x.elem != y.elem {
			return false
		}
		y = y.next
	}

	return true
}

// Compare orders a and b lexicographically over their traversal
// sequences. The result is consistent with Equal.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	x, y := a.head, b.head

	for x != nil && y != nil {
		if c := cmp.Compare(x.elem, y.elem); c != 0 {
			return c
		}
		x, y = x.next, y.next
	}

	switch {
	case x != nil:
		return 1
	case y != nil:
		return -1
	default:
		return 0
	}
}

// Sum64 returns a SipHash-2-4 digest of the list under a 16 byte key,
// folding the length and then each element in traversal order. Lists
// that are Equal produce the same digest under the same key.
//
// Elements are fed to the hash in gob encoding; it panics if the
// element type is not gob encodable.
func (l *List[T]) Sum64(key []byte) uint64 {
	h := siphash.New(key)

	var length [8]byte
	binary.LittleEndian.PutUint64(length[:], uint64(l.len))
	h.Write(length[:])

	enc := gob.NewEncoder(h)
	for n := l.head; n != nil; n = n.next {
		if err := enc.Encode(n.elem); err != nil {
			panic(err)
		}
	}

	return h.Sum64()
}
