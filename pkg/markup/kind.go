// Package markup provides an immutable, structurally shared document
// tree for Markdown-derived markup.
//
// Every element occurrence carries a stable identity made of a root
// identifier and a preorder offset within that root. Trees are never
// mutated in place: every edit produces a new tree that shares all
// unchanged subtrees with the original.
package markup

//go:generate stringer -type=Kind -trimprefix=Kind

// Kind classifies a markup element.
type Kind uint16

// Element kinds. The set is closed: wrap dispatches exhaustively over
// every kind listed here.
const (
	KindDocument Kind = iota

	// Block-level kinds.
	KindBlockQuote
	KindCodeBlock
	KindCustomBlock
	KindHeading
	KindThematicBreak
	KindHTMLBlock
	KindOrderedList
	KindUnorderedList
	KindListItem
	KindParagraph
	KindBlockDirective
	KindTable
	KindTableHead
	KindTableBody
	KindTableRow
	KindTableCell
	KindDoxygenDiscussion
	KindDoxygenNote
	KindDoxygenAbstract
	KindDoxygenParameter
	KindDoxygenReturns

	// Inline-level kinds.
	KindText
	KindEmphasis
	KindStrong
	KindInlineCode
	KindCustomInline
	KindLink
	KindImage
	KindLineBreak
	KindSoftBreak
	KindInlineHTML
	KindStrikethrough
	KindSymbolLink
	KindInlineAttributes
)

// kindCount is the number of element kinds.
const kindCount = int(KindInlineAttributes) + 1

// IsBlock returns true for block-level kinds, including the document
// itself.
func (k Kind) IsBlock() bool {
	return k <= KindDoxygenReturns
}

// IsInline returns true for inline-level kinds.
func (k Kind) IsInline() bool {
	return k >= KindText && k <= KindInlineAttributes
}
