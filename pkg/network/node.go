package network

import "fmt"

// Kind tells the two partitions of the contribution graph apart.
type Kind int

const (
	// KindUser marks a contributor node.
	KindUser Kind = iota
	// KindRepo marks a repository node.
	KindRepo
)

// String returns "user" or "repo".
func (k Kind) String() string {
	switch k {
	case KindUser:
		return "user"
	case KindRepo:
		return "repo"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Node is a graph vertex carrying its identifier and partition.
// It implements gonum's graph.Node.
type Node struct {
	id    int64
	Label string
	Kind  Kind
}

// ID returns the gonum node ID, which is the node's insertion index.
func (n Node) ID() int64 { return n.id }

// String returns the node label.
func (n Node) String() string { return n.Label }
