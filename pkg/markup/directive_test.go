package markup_test

import (
	"testing"

	"github.com/yaklabco/gomarkup/pkg/markup"
	"github.com/yaklabco/gomarkup/pkg/source"
)

func TestBlockDirectiveBasics(t *testing.T) {
	t.Parallel()

	d := markup.NewBlockDirective("Outer", markup.NewParagraph(markup.NewText("body")))

	if d.Kind() != markup.KindBlockDirective {
		t.Errorf("kind = %v, want %v", d.Kind(), markup.KindBlockDirective)
	}
	if d.Name() != "Outer" {
		t.Errorf("name = %q, want Outer", d.Name())
	}
	if d.NameRange() != nil {
		t.Errorf("name range = %v, want nil for built directives", d.NameRange())
	}
	if !d.ArgumentText().IsEmpty() {
		t.Error("argument text should be empty")
	}
	if got := d.ChildCount(); got != 1 {
		t.Errorf("child count = %d, want 1", got)
	}
}

func TestBlockDirectiveArguments(t *testing.T) {
	t.Parallel()

	text := markup.ArgumentText{Segments: []markup.ArgumentTextSegment{
		{Text: "x: 1, y: 2", ParseOffset: 0},
	}}
	d := markup.NewBlockDirectiveWithArguments("Options", text)

	got := d.ArgumentText()
	if got.IsEmpty() {
		t.Fatal("argument text should not be empty")
	}
	if got.String() != "x: 1, y: 2" {
		t.Errorf("argument text = %q", got.String())
	}

	args := got.ParseNameValueArguments()
	if len(args) != 2 {
		t.Fatalf("got %d arguments, want 2", len(args))
	}
	if args[0].Name != "x" || args[1].Name != "y" {
		t.Errorf("argument names = %q, %q, want x, y", args[0].Name, args[1].Name)
	}
}

func TestArgumentTextIsCopied(t *testing.T) {
	t.Parallel()

	segments := []markup.ArgumentTextSegment{{Text: "x: 1", ParseOffset: 0}}
	d := markup.NewBlockDirectiveWithArguments("Outer", markup.ArgumentText{Segments: segments})

	// Mutating the input after construction changes nothing.
	segments[0].Text = "mutated"
	if got := d.ArgumentText().String(); got != "x: 1" {
		t.Errorf("argument text = %q, want x: 1", got)
	}

	// Mutating a returned copy changes nothing either.
	out := d.ArgumentText()
	out.Segments[0].Text = "also mutated"
	if got := d.ArgumentText().String(); got != "x: 1" {
		t.Errorf("argument text = %q, want x: 1", got)
	}
}

func TestWithNameClearsNameRange(t *testing.T) {
	t.Parallel()

	nameRng := source.NewRange(1, 2, 1, 7)
	d := markup.RangedDirectiveName(markup.NewBlockDirective("Outer"), nameRng)

	if got := d.NameRange(); got == nil || *got != nameRng {
		t.Fatalf("name range = %v, want %v", got, nameRng)
	}

	renamed := d.WithName("Inner")
	if renamed.Name() != "Inner" {
		t.Errorf("name = %q, want Inner", renamed.Name())
	}
	if renamed.NameRange() != nil {
		t.Errorf("renamed name range = %v, want nil", renamed.NameRange())
	}

	// The original keeps both name and range.
	if d.Name() != "Outer" || d.NameRange() == nil {
		t.Error("original directive should be untouched")
	}
}

func TestRangedDirectiveNameKeepsParsedRange(t *testing.T) {
	t.Parallel()

	outer := source.NewRange(1, 1, 4, 2)
	nameRng := source.NewRange(1, 2, 1, 7)

	d := markup.Ranged(markup.NewBlockDirective("Outer"), outer)
	named := markup.RangedDirectiveName(d, nameRng)

	if got := named.Range(); got == nil || *got != outer {
		t.Errorf("range = %v, want %v preserved", got, outer)
	}
	if got := named.NameRange(); got == nil || *got != nameRng {
		t.Errorf("name range = %v, want %v", got, nameRng)
	}
}

func TestDoxygenParameterName(t *testing.T) {
	t.Parallel()

	p := markup.NewDoxygenParameter("count", markup.NewParagraph(markup.NewText("how many")))

	if p.Name() != "count" {
		t.Errorf("name = %q, want count", p.Name())
	}

	renamed := p.WithName("limit")
	if renamed.Name() != "limit" {
		t.Errorf("renamed = %q, want limit", renamed.Name())
	}
	if p.Name() != "count" {
		t.Errorf("original = %q, want count", p.Name())
	}
	if !renamed.HasSameStructure(markup.NewDoxygenParameter("limit", markup.NewParagraph(markup.NewText("how many")))) {
		t.Error("rename should only change the name")
	}
}
