package core

import (
	"strings"

	"github.com/google/uuid"
)

// Node is a single element of a Hierarchy.
type Node struct {
	ID   uuid.UUID
	Name string
}

// String returns the node name, or its ID when unnamed.
func (n Node) String() string {
	if n.Name != "" {
		return n.Name
	}
	return n.ID.String()
}

// Hierarchy identifies the logfile that produced an entry together with
// every logfile it was forwarded through, root first.
type Hierarchy []Node

// NewHierarchy starts a hierarchy with a fresh root node.
func NewHierarchy(name string) Hierarchy {
	return Hierarchy{{ID: uuid.New(), Name: name}}
}

// Child returns a new hierarchy extended by a fresh node. h is not modified.
func (h Hierarchy) Child(name string) Hierarchy {
	c := make(Hierarchy, len(h), len(h)+1)
	copy(c, h)
	return append(c, Node{ID: uuid.New(), Name: name})
}

// Leaf returns the most specific node, or the zero Node for an empty hierarchy.
func (h Hierarchy) Leaf() Node {
	if len(h) == 0 {
		return Node{}
	}
	return h[len(h)-1]
}

// Clone returns a copy of h.
func (h Hierarchy) Clone() Hierarchy {
	if h == nil {
		return nil
	}
	return append(Hierarchy(nil), h...)
}

// String joins the node names with "/".
func (h Hierarchy) String() string {
	parts := make([]string, len(h))
	for i, n := range h {
		parts[i] = n.String()
	}
	return strings.Join(parts, "/")
}
