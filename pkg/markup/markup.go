package markup

import (
	"fmt"
	"iter"

	"github.com/yaklabco/gomarkup/pkg/source"
)

// Markup is one element occurrence in a markup tree.
//
// The interface is closed: all implementations live in this package,
// one per Kind. Occurrences are cheap transient values materialized on
// demand during navigation; comparing them with IsIdentical compares
// tree positions, not structure.
type Markup interface {
	// Kind reports which element variant this is.
	Kind() Kind

	// Range returns the source range recorded for this element at
	// parse time, falling back to the nearest enclosing recorded range
	// when the element itself has none. It returns nil for trees that
	// were built rather than parsed, and for elements whose enclosing
	// path lost its ranges to an edit. O(height) worst case.
	Range() *source.Range

	// Parent returns the element's parent occurrence, or nil if this
	// occurrence is a root.
	Parent() Markup

	// Root walks the parent chain to the top of the tree. O(height).
	Root() Markup

	// ChildCount returns the number of direct children. O(1).
	ChildCount() int

	// IsEmpty reports whether the element has no children. O(1).
	IsEmpty() bool

	// Children iterates the direct children lazily in order. The
	// sequence is restartable: ranging over it again starts over.
	Children() iter.Seq[Markup]

	// ChildrenReversed iterates the direct children from last to first.
	ChildrenReversed() iter.Seq[Markup]

	// Child returns the child occurrence at the given index, or nil if
	// index is out of bounds. Locating child i costs O(i).
	Child(index int) Markup

	// ChildThrough descends one PathStep at a time and returns the
	// element it arrives at. It returns nil as soon as a step's index
	// is out of bounds or a step's expected kind does not match.
	ChildThrough(path ...PathStep) Markup

	// DetachedFromParent returns this element as the root of its own
	// tree. Structure and recorded ranges are preserved; only identity
	// and parent linkage change. A root returns itself.
	DetachedFromParent() Markup

	// IsIdentical reports whether two occurrences are the same node in
	// the same tree. O(1); distinct from structural equality.
	IsIdentical(other Markup) bool

	// HasSameStructure reports whether two elements have equal kind,
	// payload, and children, ignoring identities and source ranges.
	HasSameStructure(other Markup) bool

	// ReplacingChildren returns this element's occurrence in a new
	// tree where its children are replaced wholesale. Child kinds are
	// validated against the element's structural rules.
	ReplacingChildren(children ...Markup) Markup

	// WithUncheckedChildren is ReplacingChildren without the kind
	// validation; the caller is responsible for compatibility.
	WithUncheckedChildren(children ...Markup) Markup

	// backing exposes the internal occurrence state. Implementing it
	// outside this package is impossible, which keeps the kind set and
	// the wrap dispatch closed.
	backing() *node
}

// element is the shared implementation embedded by every concrete
// markup type.
type element struct {
	n *node
}

func (e element) backing() *node { return e.n }

func (e element) Kind() Kind { return e.n.raw.kind }

func (e element) Range() *source.Range {
	for n := e.n; n != nil; n = n.parent {
		if n.raw.parsedRange != nil {
			return n.raw.parsedRange
		}
	}
	return nil
}

func (e element) Parent() Markup {
	if e.n.parent == nil {
		return nil
	}
	return wrap(e.n.parent)
}

func (e element) Root() Markup {
	return wrap(e.n.root())
}

func (e element) ChildCount() int {
	return e.n.raw.childCount()
}

func (e element) IsEmpty() bool {
	return e.n.raw.childCount() == 0
}

func (e element) Children() iter.Seq[Markup] {
	return func(yield func(Markup) bool) {
		e.n.eachChild(func(child *node) bool {
			return yield(wrap(child))
		})
	}
}

func (e element) ChildrenReversed() iter.Seq[Markup] {
	return func(yield func(Markup) bool) {
		e.n.eachChildReverse(func(child *node) bool {
			return yield(wrap(child))
		})
	}
}

func (e element) Child(index int) Markup {
	child := e.n.childAt(index)
	if child == nil {
		return nil
	}
	return wrap(child)
}

func (e element) ChildThrough(path ...PathStep) Markup {
	current := e.n
	for _, step := range path {
		next := current.childAt(step.index)
		if next == nil {
			return nil
		}
		if step.checked && next.raw.kind != step.want {
			return nil
		}
		current = next
	}
	return wrap(current)
}

func (e element) DetachedFromParent() Markup {
	return wrap(e.n.detached())
}

func (e element) IsIdentical(other Markup) bool {
	if other == nil {
		return false
	}
	return e.n.id == other.backing().id
}

func (e element) HasSameStructure(other Markup) bool {
	if other == nil {
		return false
	}
	return e.n.raw.hasSameStructure(other.backing().raw)
}

func (e element) ReplacingChildren(children ...Markup) Markup {
	newRaw := e.n.raw.withChildren(rawsOf(children))
	return wrap(e.n.replacingSelf(newRaw))
}

func (e element) WithUncheckedChildren(children ...Markup) Markup {
	newRaw := e.n.raw.withUncheckedChildren(rawsOf(children))
	return wrap(e.n.replacingSelf(newRaw))
}

// replacingSelf rebuilds the tree with newRaw in the receiver's place
// and returns the replacement occurrence wrapped in its typed form.
func (e element) replacingSelf(newRaw *rawNode) Markup {
	return wrap(e.n.replacingSelf(newRaw))
}

// rawsOf extracts the backing raw nodes of a child list. Nil children
// are skipped so rewriters can splice out deletions with no extra
// bookkeeping.
func rawsOf(children []Markup) []*rawNode {
	raws := make([]*rawNode, 0, len(children))
	for _, c := range children {
		if c == nil {
			continue
		}
		raws = append(raws, c.backing().raw)
	}
	return raws
}

// PathStep selects one child during ChildThrough lookup. Build steps
// with Step or StepOf.
type PathStep struct {
	index   int
	want    Kind
	checked bool
}

// Step addresses the child at index without constraining its kind.
func Step(index int) PathStep {
	return PathStep{index: index}
}

// StepOf addresses the child at index and requires it to be of the
// given kind. Lookup fails closed on a mismatch.
func StepOf(index int, kind Kind) PathStep {
	return PathStep{index: index, want: kind, checked: true}
}

// ConversionError reports a typed re-wrap that failed because the
// element was of the wrong kind.
type ConversionError struct {
	// Actual is the kind of the element that was given.
	Actual Kind

	// Requested names the concrete type that was asked for.
	Requested string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("markup: cannot convert %v element to %s", e.Actual, e.Requested)
}

// As re-wraps m as the concrete element type T. It returns a
// ConversionError naming both kinds when m is not a T.
func As[T Markup](m Markup) (T, error) {
	if t, ok := m.(T); ok {
		return t, nil
	}
	var zero T
	return zero, &ConversionError{
		Actual:    m.Kind(),
		Requested: fmt.Sprintf("%T", zero),
	}
}

// Ranged returns m's occurrence in a tree where m's node carries the
// given parsed range. It is meant for parser internals assembling
// freshly built nodes; ordinary edits clear ranges instead.
func Ranged[T Markup](m T, rng source.Range) T {
	n := m.backing()
	return wrap(n.replacingSelf(n.raw.withRange(rng))).(T)
}

// wrap materializes the typed public element for an occurrence. The
// switch is exhaustive over every Kind; an unhandled kind is a
// programmer error.
func wrap(n *node) Markup {
	e := element{n: n}
	switch n.raw.kind {
	case KindDocument:
		return &Document{e}
	case KindBlockQuote:
		return &BlockQuote{e}
	case KindCodeBlock:
		return &CodeBlock{e}
	case KindCustomBlock:
		return &CustomBlock{e}
	case KindHeading:
		return &Heading{e}
	case KindThematicBreak:
		return &ThematicBreak{e}
	case KindHTMLBlock:
		return &HTMLBlock{e}
	case KindOrderedList:
		return &OrderedList{e}
	case KindUnorderedList:
		return &UnorderedList{e}
	case KindListItem:
		return &ListItem{e}
	case KindParagraph:
		return &Paragraph{e}
	case KindBlockDirective:
		return &BlockDirective{e}
	case KindTable:
		return &Table{e}
	case KindTableHead:
		return &TableHead{e}
	case KindTableBody:
		return &TableBody{e}
	case KindTableRow:
		return &TableRow{e}
	case KindTableCell:
		return &TableCell{e}
	case KindDoxygenDiscussion:
		return &DoxygenDiscussion{e}
	case KindDoxygenNote:
		return &DoxygenNote{e}
	case KindDoxygenAbstract:
		return &DoxygenAbstract{e}
	case KindDoxygenParameter:
		return &DoxygenParameter{e}
	case KindDoxygenReturns:
		return &DoxygenReturns{e}
	case KindText:
		return &Text{e}
	case KindEmphasis:
		return &Emphasis{e}
	case KindStrong:
		return &Strong{e}
	case KindInlineCode:
		return &InlineCode{e}
	case KindCustomInline:
		return &CustomInline{e}
	case KindLink:
		return &Link{e}
	case KindImage:
		return &Image{e}
	case KindLineBreak:
		return &LineBreak{e}
	case KindSoftBreak:
		return &SoftBreak{e}
	case KindInlineHTML:
		return &InlineHTML{e}
	case KindStrikethrough:
		return &Strikethrough{e}
	case KindSymbolLink:
		return &SymbolLink{e}
	case KindInlineAttributes:
		return &InlineAttributes{e}
	default:
		panic(fmt.Sprintf("markup: no element type for kind %v", n.raw.kind))
	}
}
