package markup_test

import (
	"testing"

	"github.com/yaklabco/gomarkup/pkg/markup"
	"github.com/yaklabco/gomarkup/pkg/source"
)

func TestAdjustShiftsIntoDocumentCoordinates(t *testing.T) {
	t.Parallel()

	// A sub-parse of two content lines that sat at document lines 2-3,
	// each trimmed by two columns of indentation.
	first := markup.Ranged(markup.NewText("A"), source.NewRange(1, 1, 1, 2))
	second := markup.Ranged(markup.NewText("B"), source.NewRange(2, 1, 2, 2))
	para := markup.Ranged(markup.NewParagraph(first, second), source.NewRange(1, 1, 2, 2))

	adj := &markup.RangeAdjuster{StartLine: 2, TrimmedColumns: []int{2, 2}}
	adj.Adjust(para)

	if got := para.Range(); got == nil || *got != source.NewRange(2, 3, 3, 4) {
		t.Errorf("paragraph range = %v, want 2:3-3:4", got)
	}
	if got := para.Child(0).Range(); got == nil || *got != source.NewRange(2, 3, 2, 4) {
		t.Errorf("first text range = %v, want 2:3-4", got)
	}
	if got := para.Child(1).Range(); got == nil || *got != source.NewRange(3, 3, 3, 4) {
		t.Errorf("second text range = %v, want 3:3-4", got)
	}

	if got := adj.Total(); got != source.NewRange(2, 3, 3, 4) {
		t.Errorf("total = %v, want 2:3-3:4", got)
	}
}

func TestAdjustPerLineTrims(t *testing.T) {
	t.Parallel()

	// Lines can lose different amounts of indentation.
	first := markup.Ranged(markup.NewText("a"), source.NewRange(1, 1, 1, 2))
	second := markup.Ranged(markup.NewText("b"), source.NewRange(2, 1, 2, 2))
	para := markup.NewParagraph(first, second)

	adj := &markup.RangeAdjuster{StartLine: 10, TrimmedColumns: []int{4, 2}}
	adj.Adjust(para)

	if got := para.Child(0).Range(); got == nil || *got != source.NewRange(10, 5, 10, 6) {
		t.Errorf("first text range = %v, want 10:5-6", got)
	}
	if got := para.Child(1).Range(); got == nil || *got != source.NewRange(11, 3, 11, 4) {
		t.Errorf("second text range = %v, want 11:3-4", got)
	}
}

func TestAdjustClampsLineLookup(t *testing.T) {
	t.Parallel()

	// A sub-parse reporting more lines than were recorded reuses the
	// last trim amount instead of crashing.
	text := markup.Ranged(markup.NewText("x"), source.NewRange(5, 1, 5, 2))

	adj := &markup.RangeAdjuster{StartLine: 2, TrimmedColumns: []int{4, 2}}
	adj.Adjust(text)

	if got := text.Range(); got == nil || *got != source.NewRange(6, 3, 6, 4) {
		t.Errorf("range = %v, want 6:3-4", got)
	}
}

func TestAdjustHandlesNonPositiveLines(t *testing.T) {
	t.Parallel()

	text := markup.Ranged(markup.NewText("x"), source.NewRange(0, 3, 0, 4))

	adj := &markup.RangeAdjuster{StartLine: 7, TrimmedColumns: []int{1}}
	adj.Adjust(text)

	if got := text.Range(); got == nil || *got != source.NewRange(7, 4, 7, 5) {
		t.Errorf("range = %v, want 7:4-5", got)
	}
}

func TestAdjustWithoutTrims(t *testing.T) {
	t.Parallel()

	text := markup.Ranged(markup.NewText("xy"), source.NewRange(1, 1, 1, 3))

	adj := &markup.RangeAdjuster{StartLine: 5}
	adj.Adjust(text)

	if got := text.Range(); got == nil || *got != source.NewRange(5, 1, 5, 3) {
		t.Errorf("range = %v, want 5:1-3", got)
	}
}

func TestAdjustStampsFile(t *testing.T) {
	t.Parallel()

	file := "doc.md"
	text := markup.Ranged(markup.NewText("x"), source.NewRange(1, 1, 1, 2))

	adj := &markup.RangeAdjuster{StartLine: 1, TrimmedColumns: []int{0}, File: &file}
	adj.Adjust(text)

	got := text.Range()
	if got == nil {
		t.Fatal("range missing")
	}
	if got.Start.File == nil || *got.Start.File != file {
		t.Errorf("start file = %v, want %q", got.Start.File, file)
	}
	if got.End.File == nil || *got.End.File != file {
		t.Errorf("end file = %v, want %q", got.End.File, file)
	}
}

func TestAdjustSkipsUnrangedElements(t *testing.T) {
	t.Parallel()

	// Built elements without recorded ranges are left alone and do not
	// contribute to the total.
	para := markup.NewParagraph(
		markup.NewText("plain"),
		markup.Ranged(markup.NewText("ranged"), source.NewRange(1, 1, 1, 7)),
	)

	adj := &markup.RangeAdjuster{StartLine: 3, TrimmedColumns: []int{2}}
	adj.Adjust(para)

	if got := para.Child(0).Range(); got != nil {
		t.Errorf("unranged text range = %v, want nil", got)
	}
	if got := para.Child(1).Range(); got == nil || *got != source.NewRange(3, 3, 3, 9) {
		t.Errorf("ranged text range = %v, want 3:3-9", got)
	}
	if got := adj.Total(); got != source.NewRange(3, 3, 3, 9) {
		t.Errorf("total = %v, want 3:3-9", got)
	}
}

func TestAdjustTotalStartsAtZero(t *testing.T) {
	t.Parallel()

	adj := &markup.RangeAdjuster{StartLine: 2, TrimmedColumns: []int{1}}
	adj.Adjust(markup.NewParagraph(markup.NewText("no ranges")))

	if got := adj.Total(); got != (source.Range{}) {
		t.Errorf("total = %v, want zero range", got)
	}
}
