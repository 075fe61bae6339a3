package goldmark

import (
	"github.com/yuin/goldmark/ast"

	"github.com/yaklabco/gomarkup/pkg/markup"
	"github.com/yaklabco/gomarkup/pkg/source"
)

// pendingCell is a table cell waiting on span resolution. Spans are
// fixed at construction, so cells are built only after column and row
// folding has settled.
type pendingCell struct {
	children []markup.Markup
	rng      *source.Range
	colspan  uint
	rowspan  uint
}

// pendingRow pairs a goldmark row with its pending cells.
type pendingRow struct {
	node  ast.Node
	cells []*pendingCell
}

// isEmpty reports whether the cell was written with no content.
func (c *pendingCell) isEmpty() bool {
	return len(c.children) == 0
}

// isRowspanMarker reports whether the cell holds exactly the ^
// character that folds it into the cell above.
func (c *pendingCell) isRowspanMarker() bool {
	if len(c.children) != 1 {
		return false
	}
	t, ok := c.children[0].(*markup.Text)
	return ok && t.Content() == "^"
}

// build constructs the markup cell with its settled spans.
func (c *pendingCell) build() markup.Markup {
	var cell *markup.TableCell
	if c.colspan == 1 && c.rowspan == 1 {
		cell = markup.NewTableCell(c.children...)
	} else {
		cell = markup.NewSpanningTableCell(c.colspan, c.rowspan, c.children...)
	}
	if c.rng != nil {
		cell = markup.Ranged(cell, *c.rng)
	}
	return cell
}

// buildCells constructs a row's worth of settled cells.
func buildCells(cells []*pendingCell) []markup.Markup {
	out := make([]markup.Markup, 0, len(cells))
	for _, cell := range cells {
		out = append(out, cell.build())
	}
	return out
}

// resolveColumnSpans folds empty cells into the column span of the
// nearest cell to their left. Folded cells stay in the row with a
// zero column span, keeping column counts stable.
func resolveColumnSpans(cells []*pendingCell) {
	anchor := -1
	for i, cell := range cells {
		if cell.isEmpty() && anchor >= 0 {
			cells[anchor].colspan++
			cell.colspan = 0
			continue
		}
		anchor = i
	}
}

// resolveRowSpans folds cells holding a lone ^ into the row span of
// the nearest unfolded cell above them in the same column. A marker
// with nothing above it stays literal text.
func resolveRowSpans(rows []*pendingRow) {
	anchors := make(map[int]*pendingCell)
	for _, row := range rows {
		for i, cell := range row.cells {
			if cell.isRowspanMarker() {
				if anchor, ok := anchors[i]; ok {
					anchor.rowspan++
					cell.rowspan = 0
					cell.children = nil
					continue
				}
			}
			if cell.colspan != 0 {
				anchors[i] = cell
			}
		}
	}
}
