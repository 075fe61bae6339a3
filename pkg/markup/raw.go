package markup

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gomarkup/pkg/source"
)

// Checkbox is the task-list state of a list item.
type Checkbox uint8

// Task-list checkbox states.
const (
	// CheckboxNone means the item carries no checkbox.
	CheckboxNone Checkbox = iota
	CheckboxUnchecked
	CheckboxChecked
)

// TableAlignment is the column alignment declared by a table's
// delimiter row.
type TableAlignment uint8

// Table column alignments.
const (
	AlignNone TableAlignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// rawNode is the immutable shared storage behind every element
// occurrence. A rawNode may be referenced by any number of trees at
// once; nothing mutates it after construction except the sanctioned
// parse-phase range adjustment in RangeAdjuster.
//
// Payload fields are kind-specific. Fields a kind does not use stay at
// their zero values, which keeps samePayload kind-independent.
type rawNode struct {
	kind Kind

	// literal is the text content of Text, CodeBlock, HTMLBlock,
	// CustomBlock, InlineCode, InlineHTML, and CustomInline nodes.
	literal string

	// language is the fence info string of a CodeBlock, nil when the
	// block is indented or the fence had no info.
	language *string

	// destination is the target of a Link or Image, or the resolved
	// destination of a SymbolLink.
	destination *string

	// title is the optional title of a Link or Image.
	title *string

	// level is the 1-6 level of a Heading.
	level int

	// startIndex is the first ordinal of an OrderedList.
	startIndex uint

	// checkbox is the task-list state of a ListItem.
	checkbox Checkbox

	// alignments are a Table's per-column alignments.
	alignments []TableAlignment

	// colspan and rowspan are a TableCell's span counts. 1 is a plain
	// cell; larger values span following columns or rows; 0 marks a
	// cell absorbed by a neighboring cell's span.
	colspan uint
	rowspan uint

	// name is a BlockDirective's name or a DoxygenParameter's
	// parameter name.
	name string

	// nameRange records where a BlockDirective's name appeared.
	nameRange *source.Range

	// argumentText holds a BlockDirective's raw argument lines.
	argumentText []ArgumentTextSegment

	// attributes is the raw attribute text of an InlineAttributes span.
	attributes string

	children     []*rawNode
	subtreeCount int

	// parsedRange is set by parsing only and cleared when an edit
	// rebuilds the node. It is never mutated once the node is visible
	// outside the parse that built it.
	parsedRange *source.Range
}

// newRawNode finishes construction of a rawNode: it validates the child
// kinds permitted for n.kind and precomputes the subtree count.
// Violations are programmer errors and panic.
func newRawNode(n *rawNode) *rawNode {
	validateChildren(n.kind, n.children)
	return finishRawNode(n)
}

// finishRawNode precomputes the subtree count without validating child
// kinds. Only the unchecked child-replacement path uses it directly.
func finishRawNode(n *rawNode) *rawNode {
	n.subtreeCount = 1
	for _, c := range n.children {
		n.subtreeCount += c.subtreeCount
	}
	return n
}

// validateChildren enforces the structural rules certain kinds place on
// their children. A violation indicates a bug in the code assembling
// the tree, not bad user input, so it aborts.
func validateChildren(kind Kind, children []*rawNode) {
	switch kind {
	case KindOrderedList, KindUnorderedList:
		requireChildKinds(kind, children, KindListItem)
	case KindTable:
		if len(children) != 2 || children[0].kind != KindTableHead || children[1].kind != KindTableBody {
			panic(fmt.Sprintf("markup: %v children must be exactly [TableHead, TableBody]", kind))
		}
	case KindTableHead, KindTableRow:
		requireChildKinds(kind, children, KindTableCell)
	case KindTableBody:
		requireChildKinds(kind, children, KindTableRow)
	case KindText, KindCodeBlock, KindHTMLBlock, KindInlineCode, KindInlineHTML,
		KindThematicBreak, KindLineBreak, KindSoftBreak, KindSymbolLink:
		if len(children) != 0 {
			panic(fmt.Sprintf("markup: %v cannot have children", kind))
		}
	}
}

func requireChildKinds(parent Kind, children []*rawNode, want Kind) {
	for i, c := range children {
		if c.kind != want {
			panic(fmt.Sprintf("markup: %v child %d must be %v, got %v", parent, i, want, c.kind))
		}
	}
}

// childCount returns the number of direct children.
func (r *rawNode) childCount() int {
	return len(r.children)
}

// child returns the child at index i. The index must be in bounds.
func (r *rawNode) child(i int) *rawNode {
	return r.children[i]
}

// copyChildren materializes a fresh slice of the node's children.
func (r *rawNode) copyChildren() []*rawNode {
	out := make([]*rawNode, len(r.children))
	copy(out, r.children)
	return out
}

// shallowCopy duplicates the node header without its range. Children
// are shared with the receiver until the caller replaces them.
func (r *rawNode) shallowCopy() *rawNode {
	dup := *r
	dup.parsedRange = nil
	return &dup
}

// substitutingChild returns a new node identical to the receiver except
// that the child at index is replaced. All other children are shared.
// With preserveRange the new node keeps the receiver's parsed range;
// otherwise it takes the replacement child's range, which is how edits
// clear ranges along the rebuilt path.
func (r *rawNode) substitutingChild(newChild *rawNode, index int, preserveRange bool) *rawNode {
	dup := r.shallowCopy()
	dup.children = r.copyChildren()
	dup.children[index] = newChild
	if preserveRange {
		dup.parsedRange = r.parsedRange
	} else {
		dup.parsedRange = newChild.parsedRange
	}
	return newRawNode(dup)
}

// withChildren returns a new node with the receiver's payload and an
// entirely new child list. The result carries no parsed range.
func (r *rawNode) withChildren(children []*rawNode) *rawNode {
	dup := r.shallowCopy()
	dup.children = children
	return newRawNode(dup)
}

// withUncheckedChildren is withChildren without the per-kind child
// validation. Callers take responsibility for kind compatibility.
func (r *rawNode) withUncheckedChildren(children []*rawNode) *rawNode {
	dup := r.shallowCopy()
	dup.children = children
	return finishRawNode(dup)
}

// withRange returns a copy of the node carrying the given parsed range.
func (r *rawNode) withRange(rng source.Range) *rawNode {
	dup := *r
	dup.parsedRange = &rng
	return &dup
}

// hasSameStructure reports whether two nodes have equal kind, payload,
// and children, ignoring identities and source ranges. Shared subtrees
// short-circuit on reference identity.
func (r *rawNode) hasSameStructure(other *rawNode) bool {
	if r == other {
		return true
	}
	if r == nil || other == nil {
		return false
	}
	if r.kind != other.kind || len(r.children) != len(other.children) {
		return false
	}
	if !samePayload(r, other) {
		return false
	}
	for i, c := range r.children {
		if !c.hasSameStructure(other.children[i]) {
			return false
		}
	}
	return true
}

// samePayload compares the kind-specific fields of two nodes, ignoring
// ranges and locations. Directive argument text is compared by its
// trimmed per-line content so that re-laid-out argument lists still
// match.
func samePayload(a, b *rawNode) bool {
	if a.literal != b.literal ||
		a.level != b.level ||
		a.startIndex != b.startIndex ||
		a.checkbox != b.checkbox ||
		a.colspan != b.colspan ||
		a.rowspan != b.rowspan ||
		a.name != b.name ||
		a.attributes != b.attributes {
		return false
	}
	if !stringPtrEqual(a.language, b.language) ||
		!stringPtrEqual(a.destination, b.destination) ||
		!stringPtrEqual(a.title, b.title) {
		return false
	}
	if len(a.alignments) != len(b.alignments) {
		return false
	}
	for i, al := range a.alignments {
		if al != b.alignments[i] {
			return false
		}
	}
	if len(a.argumentText) != len(b.argumentText) {
		return false
	}
	for i, seg := range a.argumentText {
		if strings.TrimSpace(seg.Content()) != strings.TrimSpace(b.argumentText[i].Content()) {
			return false
		}
	}
	return true
}

func stringPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
