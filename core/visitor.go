package core

// Visitor observes nodes as a traversal reaches them.
// Returning true from Visit stops the traversal immediately.
type Visitor[V any] interface {
	Visit(n Node[V]) (stop bool)
}

// VisitorFunc adapts an ordinary function to the Visitor interface.
type VisitorFunc[V any] func(n Node[V]) bool

// Visit calls f(n).
func (f VisitorFunc[V]) Visit(n Node[V]) bool { return f(n) }

// StopAt returns a Visitor that stops once the node with the given id is reached.
func StopAt[V any](id NodeIndex) Visitor[V] {
	return VisitorFunc[V](func(n Node[V]) bool { return n.ID == id })
}
