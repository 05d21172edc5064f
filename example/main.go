package main

import (
	"fmt"

	"github.com/mgnsk/containers/deque"
)

func main() {
	l := deque.From("b", "c", "d")
	l.PushFront("a")
	l.PushBack("e")

	// Restructure the list in place through a cursor.
	c := l.Cursor()
	c.MoveNext()
	c.MoveNext()

	// Remove "b" and graft a donor list in front of the cursor.
	c.RemoveCurrent()
	c.SpliceBefore(deque.From("x", "y"))
	c.Release()

	l.Do(func(v string) bool {
		fmt.Println(v)
		return true
	})
}
