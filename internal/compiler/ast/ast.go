package ast

import "fmt"

// Kind labels a node. Most kinds are fixed grammar constructs, but variable
// declaration leaves carry their declared type ("INTEGER", "REAL", "STRING")
// as the kind, so the set is open.
type Kind string

const (
	Program        Kind = "Program"
	Statements     Kind = "Statements"
	PrintStatement Kind = "PrintStatement"
	StringLiteral  Kind = "StringLiteral"
	Value          Kind = "Value"
	VarDeclaration Kind = "VarDeclaration"
	Assignments    Kind = "Assignments"
	Assignment     Kind = "Assignment"
	Variable       Kind = "Variable"
	ForLoop        Kind = "ForLoop"

	// Recovery placeholders stand in for constructs that could not be
	// fully parsed.
	ErrorRecoveryStatement  Kind = "ErrorRecoveryStatement"
	ErrorRecoveryForLoop    Kind = "ErrorRecoveryForLoop"
	ErrorRecoveryExpression Kind = "ErrorRecoveryExpression"
)

// NodeID is a stable handle into a Tree's arena. Handles are assigned in
// creation order, never reused, and never change, so downstream consumers
// (the graph renderer in particular) can rely on them as node identity.
type NodeID int

// None is the zero NodeID's invalid counterpart, used where a node is absent.
const None NodeID = -1

type node struct {
	kind     Kind
	value    string
	hasValue bool
	parent   NodeID
	children []NodeID
}

// Tree is an arena of nodes. It is a build-only structure: nodes are created,
// attached to a parent once, and never mutated afterwards. It is not safe for
// concurrent use; each parse owns its own Tree.
type Tree struct {
	nodes []node
}

func NewTree() *Tree {
	return &Tree{}
}

// NewNode allocates an internal node with no children yet.
func (t *Tree) NewNode(kind Kind) NodeID {
	t.nodes = append(t.nodes, node{kind: kind, parent: None})
	return NodeID(len(t.nodes) - 1)
}

// NewLeaf allocates a leaf carrying a literal value.
func (t *Tree) NewLeaf(kind Kind, value string) NodeID {
	t.nodes = append(t.nodes, node{kind: kind, value: value, hasValue: true, parent: None})
	return NodeID(len(t.nodes) - 1)
}

// AddChild appends child to parent's ordered child list. A node belongs to at
// most one parent, set once at attachment; attaching an already-attached node
// is a programmer error and panics.
func (t *Tree) AddChild(parent, child NodeID) {
	if t.nodes[child].parent != None {
		panic(fmt.Sprintf("ast: node %d already attached to node %d", child, t.nodes[child].parent))
	}
	t.nodes[child].parent = parent
	t.nodes[parent].children = append(t.nodes[parent].children, child)
}

func (t *Tree) Kind(id NodeID) Kind {
	return t.nodes[id].kind
}

// Value returns the node's literal value, if any.
func (t *Tree) Value(id NodeID) (string, bool) {
	return t.nodes[id].value, t.nodes[id].hasValue
}

// Children returns the node's children in attachment order. The returned
// slice is owned by the tree and must not be modified.
func (t *Tree) Children(id NodeID) []NodeID {
	return t.nodes[id].children
}

func (t *Tree) IsLeaf(id NodeID) bool {
	return len(t.nodes[id].children) == 0
}

// Len reports how many nodes the tree holds.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Label renders a node as "kind" or "kind: value" for diagnostics and
// rendering.
func (t *Tree) Label(id NodeID) string {
	n := t.nodes[id]
	if n.hasValue && n.value != "" {
		return fmt.Sprintf("%s: %s", n.kind, n.value)
	}
	return string(n.kind)
}

// Walk visits id and its descendants in preorder, children in stored order.
// This traversal order is the contract downstream renderers depend on.
func Walk(t *Tree, id NodeID, fn func(NodeID)) {
	fn(id)
	for _, child := range t.Children(id) {
		Walk(t, child, fn)
	}
}
