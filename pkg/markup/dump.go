package markup

import (
	"fmt"
	"strings"
)

// DumpOptions controls the debug rendering of a tree.
type DumpOptions struct {
	// IncludeRanges prints each element's own recorded source range
	// after its kind name.
	IncludeRanges bool
}

// Dump renders a tree one element per line, children indented under
// their parents with box-drawing connectors. It is meant for debugging
// and golden tests.
func Dump(m Markup) string {
	return DumpWithOptions(m, DumpOptions{})
}

// DumpWithOptions is Dump with explicit options.
func DumpWithOptions(m Markup, opts DumpOptions) string {
	var b strings.Builder
	dumpElement(&b, m, "", "", "", opts)
	return strings.TrimRight(b.String(), "\n")
}

func dumpElement(b *strings.Builder, m Markup, prefix, connector, childPrefix string, opts DumpOptions) {
	b.WriteString(prefix)
	b.WriteString(connector)
	b.WriteString(m.Kind().String())
	if opts.IncludeRanges {
		if rng := m.backing().raw.parsedRange; rng != nil {
			fmt.Fprintf(b, " @%v", rng)
		}
	}
	if detail := dumpDetail(m); detail != "" {
		b.WriteByte(' ')
		b.WriteString(detail)
	}
	b.WriteByte('\n')

	count := m.ChildCount()
	i := 0
	for child := range m.Children() {
		last := i == count-1
		conn, next := "├─ ", childPrefix+"│  "
		if last {
			conn, next = "└─ ", childPrefix+"   "
		}
		dumpElement(b, child, childPrefix, conn, next, opts)
		i++
	}
}

// dumpDetail renders the kind-specific payload of an element.
func dumpDetail(m Markup) string {
	switch t := m.(type) {
	case *Heading:
		return fmt.Sprintf("level: %d", t.Level())
	case *CodeBlock:
		if lang, ok := t.Language(); ok {
			return fmt.Sprintf("language: %s %s", lang, dumpLiteral(t.Code()))
		}
		return dumpLiteral(t.Code())
	case *HTMLBlock:
		return dumpLiteral(t.HTML())
	case *OrderedList:
		if t.StartIndex() != 1 {
			return fmt.Sprintf("start: %d", t.StartIndex())
		}
	case *ListItem:
		switch t.Checkbox() {
		case CheckboxChecked:
			return "checkbox: [x]"
		case CheckboxUnchecked:
			return "checkbox: [ ]"
		}
	case *BlockDirective:
		detail := fmt.Sprintf("name: %q", t.Name())
		if text := t.ArgumentText(); !text.IsEmpty() {
			detail += fmt.Sprintf(" arguments: %q", text.String())
		}
		return detail
	case *Table:
		marks := make([]string, 0, len(t.Alignments()))
		for _, a := range t.Alignments() {
			switch a {
			case AlignLeft:
				marks = append(marks, "left")
			case AlignCenter:
				marks = append(marks, "center")
			case AlignRight:
				marks = append(marks, "right")
			default:
				marks = append(marks, "-")
			}
		}
		if len(marks) > 0 {
			return "alignments: " + strings.Join(marks, "|")
		}
	case *TableCell:
		if t.Colspan() != 1 || t.Rowspan() != 1 {
			return fmt.Sprintf("colspan: %d rowspan: %d", t.Colspan(), t.Rowspan())
		}
	case *DoxygenParameter:
		return fmt.Sprintf("name: %q", t.Name())
	case *Text:
		return dumpLiteral(t.Content())
	case *InlineCode:
		return dumpLiteral(t.Code())
	case *CustomInline:
		return dumpLiteral(t.Text())
	case *InlineHTML:
		return dumpLiteral(t.HTML())
	case *Link:
		if dest, ok := t.Destination(); ok {
			return fmt.Sprintf("destination: %q", dest)
		}
	case *Image:
		if src, ok := t.Source(); ok {
			return fmt.Sprintf("source: %q", src)
		}
	case *SymbolLink:
		return fmt.Sprintf("destination: %q", t.Destination())
	case *InlineAttributes:
		return fmt.Sprintf("attributes: %q", t.Attributes())
	}
	return ""
}

func dumpLiteral(s string) string {
	return fmt.Sprintf("%q", s)
}
