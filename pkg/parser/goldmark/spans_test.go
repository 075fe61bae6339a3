package goldmark

import (
	"testing"

	"github.com/yaklabco/gomarkup/pkg/markup"
	"github.com/yaklabco/gomarkup/pkg/source"
)

func textCell(content string) *pendingCell {
	return &pendingCell{
		children: []markup.Markup{markup.NewText(content)},
		colspan:  1,
		rowspan:  1,
	}
}

func emptyCell() *pendingCell {
	return &pendingCell{colspan: 1, rowspan: 1}
}

func TestResolveColumnSpans(t *testing.T) {
	cells := []*pendingCell{textCell("a"), emptyCell(), emptyCell()}

	resolveColumnSpans(cells)

	if cells[0].colspan != 3 {
		t.Errorf("anchor colspan = %d, want 3", cells[0].colspan)
	}
	for i := 1; i < 3; i++ {
		if cells[i].colspan != 0 {
			t.Errorf("cell %d colspan = %d, want 0", i, cells[i].colspan)
		}
	}
}

func TestResolveColumnSpans_LeadingEmpty(t *testing.T) {
	cells := []*pendingCell{emptyCell(), textCell("b")}

	resolveColumnSpans(cells)

	if cells[0].colspan != 1 {
		t.Errorf("leading empty colspan = %d, want 1", cells[0].colspan)
	}
	if cells[1].colspan != 1 {
		t.Errorf("cell 1 colspan = %d, want 1", cells[1].colspan)
	}
}

func TestResolveRowSpans(t *testing.T) {
	top := textCell("a")
	markers := []*pendingCell{textCell("^"), textCell("^")}
	rows := []*pendingRow{
		{cells: []*pendingCell{top}},
		{cells: []*pendingCell{markers[0]}},
		{cells: []*pendingCell{markers[1]}},
	}

	resolveRowSpans(rows)

	if top.rowspan != 3 {
		t.Errorf("anchor rowspan = %d, want 3", top.rowspan)
	}
	for i, marker := range markers {
		if marker.rowspan != 0 {
			t.Errorf("marker %d rowspan = %d, want 0", i, marker.rowspan)
		}
		if marker.children != nil {
			t.Errorf("marker %d kept its children", i)
		}
	}
}

func TestResolveRowSpans_NoAnchor(t *testing.T) {
	marker := textCell("^")
	rows := []*pendingRow{{cells: []*pendingCell{marker}}}

	resolveRowSpans(rows)

	if marker.rowspan != 1 {
		t.Errorf("rowspan = %d, want 1", marker.rowspan)
	}
	if len(marker.children) != 1 {
		t.Errorf("len(children) = %d, want 1", len(marker.children))
	}
}

func TestResolveRowSpans_FoldedColumnDoesNotAnchor(t *testing.T) {
	top := []*pendingCell{textCell("a"), emptyCell()}
	resolveColumnSpans(top)

	marker := textCell("^")
	rows := []*pendingRow{
		{cells: top},
		{cells: []*pendingCell{textCell("x"), marker}},
	}

	resolveRowSpans(rows)

	if marker.rowspan != 1 {
		t.Errorf("marker rowspan = %d, want 1", marker.rowspan)
	}
	if len(marker.children) != 1 {
		t.Errorf("len(children) = %d, want 1", len(marker.children))
	}
	if top[0].rowspan != 1 {
		t.Errorf("left anchor rowspan = %d, want 1", top[0].rowspan)
	}
}

func TestPendingCell_Build(t *testing.T) {
	plain := textCell("a").build().(*markup.TableCell)
	if plain.Colspan() != 1 || plain.Rowspan() != 1 {
		t.Errorf("plain spans = %dx%d, want 1x1", plain.Colspan(), plain.Rowspan())
	}
	if plain.ChildCount() != 1 {
		t.Errorf("plain ChildCount() = %d, want 1", plain.ChildCount())
	}

	spanning := (&pendingCell{colspan: 2, rowspan: 3}).build().(*markup.TableCell)
	if spanning.Colspan() != 2 || spanning.Rowspan() != 3 {
		t.Errorf("spanning spans = %dx%d, want 2x3", spanning.Colspan(), spanning.Rowspan())
	}
}

func TestPendingCell_BuildKeepsRange(t *testing.T) {
	rng := source.NewRange(1, 3, 1, 4)
	cell := &pendingCell{colspan: 1, rowspan: 1, rng: &rng}

	built := cell.build()
	got := built.Range()
	if got == nil {
		t.Fatal("built cell has no range")
	}
	if got.String() != rng.String() {
		t.Errorf("range = %s, want %s", got, &rng)
	}
}
