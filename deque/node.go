package deque

// node is a heap cell owned by its list.
// Application code never observes a node directly.
type node[T any] struct {
	next, prev *node[T]
	elem       T
}
