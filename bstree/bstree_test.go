package bstree_test

import (
	"testing"

	"github.com/mgnsk/containers/bstree"
	. "github.com/mgnsk/containers/internal/testing"
)

func TestInsertContains(t *testing.T) {
	var tr bstree.Tree[int]

	AssertEqual(t, tr.IsEmpty(), true)
	AssertEqual(t, tr.Contains(1), false)

	for _, v := range []int{5, 3, 8, 1, 4, 7, 9} {
		tr.Insert(v)
	}

	AssertEqual(t, tr.Len(), 7)
	AssertEqual(t, tr.IsEmpty(), false)

	for _, v := range []int{1, 3, 4, 5, 7, 8, 9} {
		AssertEqual(t, tr.Contains(v), true)
	}
	AssertEqual(t, tr.Contains(2), false)
	AssertEqual(t, tr.Contains(10), false)
}

func TestInsertDuplicates(t *testing.T) {
	var tr bstree.Tree[string]

	tr.Insert("b")
	tr.Insert("a")
	tr.Insert("b")
	tr.Insert("a")

	AssertEqual(t, tr.Len(), 2)
	AssertEqual(t, tr.InOrder(), []string{"a", "b"})
}

func TestInOrder(t *testing.T) {
	var tr bstree.Tree[int]

	for _, v := range []int{5, 3, 8, 1, 4, 7, 9, 2, 6} {
		tr.Insert(v)
	}

	AssertEqual(t, tr.InOrder(), []int{1, 2, 3, 4, 5, 6, 7, 8, 9})

	var prefix []int
	tr.Do(func(v int) bool {
		prefix = append(prefix, v)
		return v < 4
	})
	AssertEqual(t, prefix, []int{1, 2, 3, 4})
}

func TestRemove(t *testing.T) {
	build := func() *bstree.Tree[int] {
		var tr bstree.Tree[int]
		for _, v := range []int{5, 3, 8, 1, 4, 7, 9, 6} {
			tr.Insert(v)
		}
		return &tr
	}

	t.Run("leaf", func(t *testing.T) {
		tr := build()

		AssertEqual(t, tr.Remove(1), true)
		AssertEqual(t, tr.Contains(1), false)
		AssertEqual(t, tr.Len(), 7)
		AssertEqual(t, tr.InOrder(), []int{3, 4, 5, 6, 7, 8, 9})
	})

	t.Run("single child", func(t *testing.T) {
		tr := build()

		// 7 has only the left child 6.
		AssertEqual(t, tr.Remove(7), true)
		AssertEqual(t, tr.InOrder(), []int{1, 3, 4, 5, 6, 8, 9})
	})

	t.Run("two children", func(t *testing.T) {
		tr := build()

		// 5 is the root with both subtrees; it is replaced by its
		// in-order successor 6.
		AssertEqual(t, tr.Remove(5), true)
		AssertEqual(t, tr.Contains(5), false)
		AssertEqual(t, tr.InOrder(), []int{1, 3, 4, 6, 7, 8, 9})
	})

	t.Run("missing value", func(t *testing.T) {
		tr := build()

		AssertEqual(t, tr.Remove(2), false)
		AssertEqual(t, tr.Len(), 8)
	})

	t.Run("drains to empty", func(t *testing.T) {
		tr := build()

		for _, v := range tr.InOrder() {
			AssertEqual(t, tr.Remove(v), true)
		}

		AssertEqual(t, tr.IsEmpty(), true)
		AssertEqual(t, tr.InOrder(), []int{})
	})
}
