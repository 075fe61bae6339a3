// Package render serializes markup trees to HTML.
//
// Output follows CommonMark's reference shape for the base elements.
// The extended elements map to plain HTML: directives become div
// containers tagged with data attributes, Doxygen commands become
// definition lists, symbol links become code tags, and spanning table
// cells carry colspan and rowspan attributes.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/yaklabco/gomarkup/pkg/langdetect"
	"github.com/yaklabco/gomarkup/pkg/markup"
)

// Options controls HTML output. The zero value renders safe HTML:
// raw HTML suppressed, soft breaks kept as newlines, no language
// inference.
type Options struct {
	// AllowHTML passes HTML blocks and inline HTML through to the
	// output. When false they are replaced with a comment.
	AllowHTML bool

	// SoftBreakAsHardBreak renders soft line breaks as break tags.
	SoftBreakAsHardBreak bool

	// LanguageInference guesses a language for code blocks that have
	// no info string and tags them with a language- class.
	LanguageInference bool
}

// HTML renders m with default options.
func HTML(m markup.Markup) string {
	return HTMLWithOptions(m, Options{})
}

// HTMLWithOptions renders m as HTML.
func HTMLWithOptions(m markup.Markup, opts Options) string {
	return newRenderer(opts).v.Visit(m)
}

const omittedHTML = "<!-- raw HTML omitted -->"

type renderer struct {
	opts Options
	v    *markup.Visitor[string]
}

func newRenderer(opts Options) *renderer {
	r := &renderer{opts: opts}
	r.v = &markup.Visitor[string]{
		Document:    func(d *markup.Document) string { return r.children(d) },
		CustomBlock: func(b *markup.CustomBlock) string { return r.children(b) },
		Paragraph: func(p *markup.Paragraph) string {
			return "<p>" + r.children(p) + "</p>\n"
		},
		Heading: func(h *markup.Heading) string {
			level := min(max(h.Level(), 1), 6)
			return fmt.Sprintf("<h%d>%s</h%d>\n", level, r.children(h), level)
		},
		BlockQuote: func(q *markup.BlockQuote) string {
			return "<blockquote>\n" + r.children(q) + "</blockquote>\n"
		},
		CodeBlock:     r.codeBlock,
		ThematicBreak: func(*markup.ThematicBreak) string { return "<hr />\n" },
		HTMLBlock: func(h *markup.HTMLBlock) string {
			if !r.opts.AllowHTML {
				return omittedHTML + "\n"
			}
			block := h.HTML()
			if !strings.HasSuffix(block, "\n") {
				block += "\n"
			}
			return block
		},
		UnorderedList: func(l *markup.UnorderedList) string {
			return "<ul>\n" + r.children(l) + "</ul>\n"
		},
		OrderedList: func(l *markup.OrderedList) string {
			open := "<ol>"
			if start := l.StartIndex(); start != 1 {
				open = fmt.Sprintf("<ol start=\"%d\">", start)
			}
			return open + "\n" + r.children(l) + "</ol>\n"
		},
		ListItem:       r.listItem,
		Table:          r.table,
		BlockDirective: r.blockDirective,
		DoxygenDiscussion: func(d *markup.DoxygenDiscussion) string {
			return r.doxygen("discussion", d)
		},
		DoxygenNote: func(n *markup.DoxygenNote) string {
			return r.doxygen("note", n)
		},
		DoxygenAbstract: func(a *markup.DoxygenAbstract) string {
			return r.doxygen("abstract", a)
		},
		DoxygenReturns: func(ret *markup.DoxygenReturns) string {
			return r.doxygen("returns", ret)
		},
		DoxygenParameter: func(p *markup.DoxygenParameter) string {
			return r.doxygen("param "+p.Name(), p)
		},

		Text: func(t *markup.Text) string {
			return html.EscapeString(t.Content())
		},
		Emphasis: func(e *markup.Emphasis) string {
			return "<em>" + r.children(e) + "</em>"
		},
		Strong: func(s *markup.Strong) string {
			return "<strong>" + r.children(s) + "</strong>"
		},
		Strikethrough: func(s *markup.Strikethrough) string {
			return "<del>" + r.children(s) + "</del>"
		},
		InlineCode: func(c *markup.InlineCode) string {
			return "<code>" + html.EscapeString(c.Code()) + "</code>"
		},
		SymbolLink: func(s *markup.SymbolLink) string {
			return "<code>" + html.EscapeString(s.Destination()) + "</code>"
		},
		Link: func(l *markup.Link) string {
			dest, _ := l.Destination()
			open := `<a href="` + html.EscapeString(dest) + `"`
			if title, ok := l.Title(); ok {
				open += ` title="` + html.EscapeString(title) + `"`
			}
			return open + ">" + r.children(l) + "</a>"
		},
		Image: func(i *markup.Image) string {
			src, _ := i.Source()
			tag := `<img src="` + html.EscapeString(src) + `" alt="` + html.EscapeString(plainText(i)) + `"`
			if title, ok := i.Title(); ok {
				tag += ` title="` + html.EscapeString(title) + `"`
			}
			return tag + " />"
		},
		LineBreak: func(*markup.LineBreak) string { return "<br />\n" },
		SoftBreak: func(*markup.SoftBreak) string {
			if r.opts.SoftBreakAsHardBreak {
				return "<br />\n"
			}
			return "\n"
		},
		InlineHTML: func(h *markup.InlineHTML) string {
			if !r.opts.AllowHTML {
				return omittedHTML
			}
			return h.HTML()
		},
		InlineAttributes: func(a *markup.InlineAttributes) string {
			return `<span data-attributes="` + html.EscapeString(a.Attributes()) + `">` +
				r.children(a) + "</span>"
		},
		CustomInline: func(c *markup.CustomInline) string {
			if text := c.Text(); text != "" {
				return html.EscapeString(text)
			}
			return r.children(c)
		},
	}
	return r
}

func (r *renderer) children(m markup.Markup) string {
	var sb strings.Builder
	for child := range m.Children() {
		sb.WriteString(r.v.Visit(child))
	}
	return sb.String()
}

func (r *renderer) codeBlock(c *markup.CodeBlock) string {
	tag := ""
	if lang, ok := c.Language(); ok {
		tag = langdetect.Normalize(lang)
	} else if r.opts.LanguageInference {
		tag = langdetect.Infer([]byte(c.Code()))
	}

	var sb strings.Builder
	sb.WriteString("<pre><code")
	if tag != "" {
		sb.WriteString(` class="language-` + html.EscapeString(tag) + `"`)
	}
	sb.WriteString(">")
	sb.WriteString(html.EscapeString(c.Code()))
	sb.WriteString("</code></pre>\n")
	return sb.String()
}

func (r *renderer) listItem(li *markup.ListItem) string {
	var sb strings.Builder
	sb.WriteString("<li>")
	switch li.Checkbox() {
	case markup.CheckboxChecked:
		sb.WriteString(`<input type="checkbox" checked="" disabled="" />`)
	case markup.CheckboxUnchecked:
		sb.WriteString(`<input type="checkbox" disabled="" />`)
	}
	sb.WriteString("\n")
	sb.WriteString(r.children(li))
	sb.WriteString("</li>\n")
	return sb.String()
}

func (r *renderer) table(t *markup.Table) string {
	alignments := t.Alignments()

	var sb strings.Builder
	sb.WriteString("<table>\n")
	if head := t.Head(); head != nil {
		sb.WriteString("<thead>\n<tr>\n")
		r.cells(&sb, head, "th", alignments)
		sb.WriteString("</tr>\n</thead>\n")
	}
	if body := t.Body(); body != nil {
		sb.WriteString("<tbody>\n")
		for row := range body.Children() {
			sb.WriteString("<tr>\n")
			r.cells(&sb, row, "td", alignments)
			sb.WriteString("</tr>\n")
		}
		sb.WriteString("</tbody>\n")
	}
	sb.WriteString("</table>\n")
	return sb.String()
}

// cells writes one row's cells. Span-folded cells keep their column
// slot for alignment lookup but emit nothing; the spanning neighbor's
// colspan and rowspan attributes cover them.
func (r *renderer) cells(sb *strings.Builder, row markup.Markup, tag string, alignments []markup.TableAlignment) {
	column := 0
	for child := range row.Children() {
		cell, ok := child.(*markup.TableCell)
		if !ok {
			continue
		}
		index := column
		column++
		if cell.Colspan() == 0 || cell.Rowspan() == 0 {
			continue
		}

		sb.WriteString("<" + tag)
		if index < len(alignments) {
			switch alignments[index] {
			case markup.AlignLeft:
				sb.WriteString(` align="left"`)
			case markup.AlignCenter:
				sb.WriteString(` align="center"`)
			case markup.AlignRight:
				sb.WriteString(` align="right"`)
			}
		}
		if cell.Colspan() > 1 {
			fmt.Fprintf(sb, ` colspan="%d"`, cell.Colspan())
		}
		if cell.Rowspan() > 1 {
			fmt.Fprintf(sb, ` rowspan="%d"`, cell.Rowspan())
		}
		sb.WriteString(">")
		sb.WriteString(r.children(cell))
		sb.WriteString("</" + tag + ">\n")
	}
}

func (r *renderer) blockDirective(d *markup.BlockDirective) string {
	var sb strings.Builder
	sb.WriteString(`<div data-directive="` + html.EscapeString(d.Name()) + `"`)
	if args := d.ArgumentText(); !args.IsEmpty() {
		sb.WriteString(` data-arguments="` + html.EscapeString(args.String()) + `"`)
	}
	sb.WriteString(">\n")
	sb.WriteString(r.children(d))
	sb.WriteString("</div>\n")
	return sb.String()
}

func (r *renderer) doxygen(term string, m markup.Markup) string {
	return "<dl>\n<dt>" + html.EscapeString(term) + "</dt>\n<dd>\n" +
		r.children(m) + "</dd>\n</dl>\n"
}

// plainText flattens the literal text under m, for alt attributes.
// The nil Default descends through every container.
func plainText(m markup.Markup) string {
	var sb strings.Builder
	w := &markup.Walker{
		Text:       func(t *markup.Text) { sb.WriteString(t.Content()) },
		InlineCode: func(c *markup.InlineCode) { sb.WriteString(c.Code()) },
		SymbolLink: func(s *markup.SymbolLink) { sb.WriteString(s.Destination()) },
	}
	w.Walk(m)
	return sb.String()
}
