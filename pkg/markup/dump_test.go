package markup_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/yaklabco/gomarkup/pkg/markup"
	"github.com/yaklabco/gomarkup/pkg/source"
)

func TestDump(t *testing.T) {
	t.Parallel()

	doc := buildDocument()

	want := `Document
├─ Heading level: 1
│  └─ Text "Title"
├─ Paragraph
│  ├─ Text "one "
│  ├─ Emphasis
│  │  └─ Text "two"
│  └─ Text " three"
└─ UnorderedList
   ├─ ListItem
   │  └─ Paragraph
   │     └─ Text "A"
   └─ ListItem
      └─ Paragraph
         └─ Text "B"`

	if diff := cmp.Diff(want, markup.Dump(doc)); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
}

func TestDumpPayloadDetails(t *testing.T) {
	t.Parallel()

	doc := markup.NewDocument(
		markup.NewUnorderedList(
			markup.NewListItemWithCheckbox(markup.CheckboxChecked,
				markup.NewParagraph(markup.NewText("done"))),
			markup.NewListItemWithCheckbox(markup.CheckboxUnchecked,
				markup.NewParagraph(markup.NewText("todo"))),
		),
		markup.NewCodeBlockWithLanguage("go", "x := 1"),
		markup.NewTable(
			[]markup.TableAlignment{markup.AlignLeft, markup.AlignRight},
			markup.NewTableHead(
				markup.NewTableCell(markup.NewText("h1")),
				markup.NewTableCell(markup.NewText("h2")),
			),
			markup.NewTableBody(
				markup.NewTableRow(
					markup.NewSpanningTableCell(2, 1, markup.NewText("wide")),
					markup.NewSpanningTableCell(0, 1),
				),
			),
		),
	)

	want := `Document
├─ UnorderedList
│  ├─ ListItem checkbox: [x]
│  │  └─ Paragraph
│  │     └─ Text "done"
│  └─ ListItem checkbox: [ ]
│     └─ Paragraph
│        └─ Text "todo"
├─ CodeBlock language: go "x := 1"
└─ Table alignments: left|right
   ├─ TableHead
   │  ├─ TableCell
   │  │  └─ Text "h1"
   │  └─ TableCell
   │     └─ Text "h2"
   └─ TableBody
      └─ TableRow
         ├─ TableCell colspan: 2 rowspan: 1
         │  └─ Text "wide"
         └─ TableCell colspan: 0 rowspan: 1`

	if diff := cmp.Diff(want, markup.Dump(doc)); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
}

func TestDumpDirectiveAndDoxygen(t *testing.T) {
	t.Parallel()

	doc := markup.NewDocument(
		markup.NewBlockDirectiveWithArguments("Outer",
			markup.ArgumentText{Segments: []markup.ArgumentTextSegment{
				{Text: "x: 1", ParseOffset: 0},
			}},
			markup.NewParagraph(markup.NewText("body")),
		),
		markup.NewDoxygenParameter("count",
			markup.NewParagraph(
				markup.NewText("Number of "),
				markup.NewSymbolLink("Collection/items"),
			),
		),
	)

	want := `Document
├─ BlockDirective name: "Outer" arguments: "x: 1"
│  └─ Paragraph
│     └─ Text "body"
└─ DoxygenParameter name: "count"
   └─ Paragraph
      ├─ Text "Number of "
      └─ SymbolLink destination: "Collection/items"`

	if diff := cmp.Diff(want, markup.Dump(doc)); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
}

func TestDumpWithRanges(t *testing.T) {
	t.Parallel()

	directive := markup.Ranged(
		markup.NewBlockDirective("Outer",
			markup.NewUnorderedList(
				markup.NewListItem(
					markup.NewParagraph(
						markup.Ranged(markup.NewText("A"), source.Range{
							Start: source.Location{Line: 2, Column: 3},
							End:   source.Location{Line: 2, Column: 4},
						}),
					),
				),
			),
		),
		source.Range{
			Start: source.Location{Line: 1, Column: 1},
			End:   source.Location{Line: 4, Column: 2},
		},
	)
	doc := markup.NewDocument(directive)

	want := `Document
└─ BlockDirective @1:1-4:2 name: "Outer"
   └─ UnorderedList
      └─ ListItem
         └─ Paragraph
            └─ Text @2:3-4 "A"`

	if diff := cmp.Diff(want, markup.DumpWithOptions(doc, markup.DumpOptions{IncludeRanges: true})); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}

	// Ranges are omitted by default.
	if diff := cmp.Diff(`Document
└─ BlockDirective name: "Outer"
   └─ UnorderedList
      └─ ListItem
         └─ Paragraph
            └─ Text "A"`, markup.Dump(doc)); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
}
