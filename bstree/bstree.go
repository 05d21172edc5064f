/*
Package bstree implements an unbalanced binary search tree.
*/
package bstree

import "cmp"

type node[T cmp.Ordered] struct {
	left, right *node[T]
	elem        T
}

// Tree is an unbalanced binary search tree. Duplicate values are
// ignored on insert.
//
// The zero value is a ready to use empty tree.
type Tree[T cmp.Ordered] struct {
	root *node[T]
	len  int
}

// Len returns the number of values in the tree.
func (t *Tree[T]) Len() int {
	return t.len
}

// IsEmpty returns whether the tree has no values.
func (t *Tree[T]) IsEmpty() bool {
	return t.len == 0
}

// Insert places a value into the tree.
func (t *Tree[T]) Insert(v T) {
	t.root = t.insert(t.root, v)
}

func (t *Tree[T]) insert(n *node[T], v T) *node[T] {
	if n == nil {
		t.len++
		return &node[T]{elem: v}
	}

	switch {
	case v < n.elem:
		n.left = t.insert(n.left, v)
	case v > n.elem:
		n.right = t.insert(n.right, v)
	}

	return n
}

// Contains returns whether the tree holds v.
func (t *Tree[T]) Contains(v T) bool {
	return contains(t.root, v)
}

func contains[T cmp.Ordered](n *node[T], v T) bool {
	if n == nil {
		return false
	}

	switch {
	case v < n.elem:
		return contains(n.left, v)
	case v > n.elem:
		return contains(n.right, v)
	default:
		return true
	}
}

// Remove deletes v from the tree and reports whether it was present.
// A node with two children is replaced by its in-order successor.
func (t *Tree[T]) Remove(v T) bool {
	var removed bool
	t.root = remove(t.root, v, &removed)

	if removed {
		t.len--
	}

	return removed
}

func remove[T cmp.Ordered](n *node[T], v T, removed *bool) *node[T] {
	if n == nil {
		return nil
	}

	switch {
	case v < n.elem:
		n.left = remove(n.left, v, removed)

	case v > n.elem:
		n.right = remove(n.right, v, removed)

	default:
		*removed = true

		switch {
		case n.left == nil:
			return n.right
		case n.right == nil:
			return n.left
		default:
			min := n.right
			for min.left != nil {
				min = min.left
			}

			n.elem = min.elem
			n.right = removeMin(n.right)
		}
	}

	return n
}

func removeMin[T cmp.Ordered](n *node[T]) *node[T] {
	if n.left == nil {
		return n.right
	}

	n.left = removeMin(n.left)
	return n
}

// Do calls function f on each value in ascending order.
// If f returns false, Do stops the iteration.
// f must not change t.
func (t *Tree[T]) Do(f func(v T) bool) {
	inorder(t.root, f)
}

func inorder[T cmp.Ordered](n *node[T], f func(v T) bool) bool {
	if n == nil {
		return true
	}

	if !inorder(n.left, f) {
		return false
	}

	if !f(n.elem) {
		return false
	}

	return inorder(n.right, f)
}

// InOrder returns the tree's values in ascending order.
func (t *Tree[T]) InOrder() []T {
	out := make([]T, 0, t.len)

	t.Do(func(v T) bool {
		out = append(out, v)
		return true
	})

	return out
}
