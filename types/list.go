package types

import "strings"

// Cell is a single node of an immutable, singly-linked list. A nil *Cell
// is the empty tail. Cells are never mutated after construction, so a tail
// may be shared structurally between distinct lists (cons allocates only a
// new head); this sharing is safe under concurrent read access because
// cells are write-once.
type Cell struct {
	Value Value
	Next  *Cell
}

// ListValue wraps a (possibly nil) chain of cells.
type ListValue struct {
	Head *Cell
}

// NewEmptyList returns the empty list.
func NewEmptyList() ListValue {
	return ListValue{}
}

// NewList builds a list from a slice, head first.
func NewList(elements []Value) ListValue {
	var head *Cell
	for i := len(elements) - 1; i >= 0; i-- {
		head = &Cell{Value: elements[i], Next: head}
	}
	return ListValue{Head: head}
}

// Cons returns a new list whose head is v and whose tail is the receiver;
// the receiver's cells are shared, not copied.
func Cons(v Value, tail ListValue) ListValue {
	return ListValue{Head: &Cell{Value: v, Next: tail.Head}}
}

// Tag returns the value tag.
func (l ListValue) Tag() ValueTag {
	return TagList
}

// Empty reports whether the list has no elements.
func (l ListValue) Empty() bool {
	return l.Head == nil
}

// Len walks the spine and counts the elements, O(n).
func (l ListValue) Len() int {
	n := 0
	for c := l.Head; c != nil; c = c.Next {
		n++
	}
	return n
}

// Tail returns a list with the first cell removed. Callers must check
// Empty() first; Tail of an empty list panics, matching the invariant that
// hd/tl callers always guard against EmptyList before calling.
func (l ListValue) Tail() ListValue {
	return ListValue{Head: l.Head.Next}
}

// String renders "[e1,e2,...]", nesting recursively; the empty list is "[]".
func (l ListValue) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for c := l.Head; c != nil; c = c.Next {
		b.WriteString(c.Value.String())
		if c.Next != nil {
			b.WriteByte(',')
		}
	}
	b.WriteByte(']')
	return b.String()
}

// Equal compares two lists element-wise; lengths must match and every
// element must be Equal in turn (Int compares payloads, nested List
// compares recursively).
func (l ListValue) Equal(other Value) bool {
	o, ok := other.(ListValue)
	if !ok {
		return false
	}
	a, b := l.Head, o.Head
	for a != nil && b != nil {
		if !a.Value.Equal(b.Value) {
			return false
		}
		a, b = a.Next, b.Next
	}
	return a == nil && b == nil
}
