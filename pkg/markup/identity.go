package markup

import (
	"github.com/yaklabco/gomarkup/internal/atomicid"
)

// identity uniquely locates one element occurrence within one root
// tree. rootID is drawn from the process-wide counter whenever a root
// is built; childID is the occurrence's depth-first preorder offset
// from that root, with the root itself at 0.
type identity struct {
	rootID  uint64
	childID int
}

// node pairs a rawNode with its position in a tree. It is the backing
// state shared by every public element type.
//
// The parent link is traversal-only: children hold it so navigation can
// walk upward, but ownership flows strictly downward through rawNode
// child slices.
type node struct {
	raw    *rawNode
	id     identity
	parent *node
	index  int
}

// newRootNode makes raw the top of a fresh tree, drawing a new root
// identifier from the atomic counter.
func newRootNode(raw *rawNode) *node {
	return &node{
		raw: raw,
		id:  identity{rootID: atomicid.Next()},
	}
}

// isRoot reports whether the occurrence has no recorded parent.
func (n *node) isRoot() bool {
	return n.parent == nil
}

// root walks the parent chain to the top of the tree. O(height).
func (n *node) root() *node {
	top := n
	for top.parent != nil {
		top = top.parent
	}
	return top
}

// childAt materializes the child occurrence at index i, or nil when i
// is out of bounds. Locating child i costs O(i): the preorder offsets
// of the preceding siblings must be summed once.
func (n *node) childAt(i int) *node {
	if i < 0 || i >= len(n.raw.children) {
		return nil
	}
	childID := n.id.childID + 1
	for k := range i {
		childID += n.raw.children[k].subtreeCount
	}
	return &node{
		raw:    n.raw.children[i],
		id:     identity{rootID: n.id.rootID, childID: childID},
		parent: n,
		index:  i,
	}
}

// eachChild calls yield for each child occurrence in order, stopping
// early if yield returns false. Each step is O(1): a child's preorder
// offset comes from its previous sibling's offset plus that sibling's
// subtree size.
func (n *node) eachChild(yield func(*node) bool) {
	childID := n.id.childID + 1
	for i, raw := range n.raw.children {
		child := &node{
			raw:    raw,
			id:     identity{rootID: n.id.rootID, childID: childID},
			parent: n,
			index:  i,
		}
		if !yield(child) {
			return
		}
		childID += raw.subtreeCount
	}
}

// eachChildReverse iterates children from last to first. The offsets
// are computed by symmetric subtraction from the end of the subtree.
func (n *node) eachChildReverse(yield func(*node) bool) {
	childID := n.id.childID + n.raw.subtreeCount
	for i := len(n.raw.children) - 1; i >= 0; i-- {
		raw := n.raw.children[i]
		childID -= raw.subtreeCount
		child := &node{
			raw:    raw,
			id:     identity{rootID: n.id.rootID, childID: childID},
			parent: n,
			index:  i,
		}
		if !yield(child) {
			return
		}
	}
}

// replacingSelf returns the occurrence of newRaw in a fresh tree where
// the receiver's raw node has been replaced. Every ancestor on the path
// to the root is rebuilt; everything off the path is shared with the
// original tree. The new root draws a fresh root identifier, and the
// rebuilt ancestors adopt ranges from their replacements, which clears
// them for ordinary edits.
func (n *node) replacingSelf(newRaw *rawNode) *node {
	if n.parent == nil {
		return newRootNode(newRaw)
	}
	newParentRaw := n.parent.raw.substitutingChild(newRaw, n.index, false)
	newParent := n.parent.replacingSelf(newParentRaw)
	return newParent.childAt(n.index)
}

// detached returns the occurrence as its own root. The raw subtree,
// including any recorded ranges, is reused as is; only the identity and
// parent linkage change. A node that is already a root is returned
// unchanged.
func (n *node) detached() *node {
	if n.parent == nil {
		return n
	}
	return newRootNode(n.raw)
}
