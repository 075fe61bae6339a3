package markup

import "github.com/yaklabco/gomarkup/pkg/source"

// RangeAdjuster rewrites the source ranges of a freshly sub-parsed
// tree so they refer to positions in the enclosing document. A
// sub-parse reports positions relative to its own text, where line 1
// column 1 is the first character of the trimmed block; the adjuster
// shifts lines by where the block began and columns by how much
// indentation was trimmed from each line.
//
// Adjustment mutates ranges in place. That is the one sanctioned
// exception to node immutability, and it is safe only because the
// adjusted nodes come straight out of a sub-parse and are not yet
// visible anywhere else. Nothing else in the package mutates a node
// after construction.
type RangeAdjuster struct {
	// StartLine is the 1-based line of the enclosing document where
	// the sub-parsed text began.
	StartLine int

	// TrimmedColumns records, for each sub-parsed line in order, how
	// many leading characters were trimmed before sub-parsing.
	TrimmedColumns []int

	// File, when non-nil, is stamped onto every adjusted location.
	File *string

	total source.Range
}

// Adjust rewrites every recorded range at and beneath m and folds each
// one into the running total range.
func (a *RangeAdjuster) Adjust(m Markup) {
	a.adjustRaw(m.backing().raw)
}

func (a *RangeAdjuster) adjustRaw(r *rawNode) {
	if r.parsedRange != nil {
		adjusted := source.Range{
			Start: a.adjustLocation(r.parsedRange.Start),
			End:   a.adjustLocation(r.parsedRange.End),
		}
		*r.parsedRange = adjusted
		a.total = a.total.ExtendToInclude(adjusted)
	}
	for _, child := range r.children {
		a.adjustRaw(child)
	}
}

// adjustLocation maps one sub-parse location to document coordinates.
// The trimmed-column lookup is clamped so a sub-parse that reports
// more lines than were recorded still adjusts instead of crashing.
func (a *RangeAdjuster) adjustLocation(loc source.Location) source.Location {
	line := loc.Line
	if line < 1 {
		line = 1
	}
	idx := line - 1
	if idx >= len(a.TrimmedColumns) {
		idx = len(a.TrimmedColumns) - 1
	}
	trimmed := 0
	if idx >= 0 {
		trimmed = a.TrimmedColumns[idx]
	}
	out := source.Location{
		Line:   a.StartLine + line - 1,
		Column: loc.Column + trimmed,
		File:   loc.File,
	}
	if a.File != nil {
		out.File = a.File
	}
	return out
}

// Total returns the union of every range the adjuster has visited, in
// document coordinates. The zero Range means no ranged element was
// seen.
func (a *RangeAdjuster) Total() source.Range {
	return a.total
}
