package format

import (
	"strings"

	"github.com/yaklabco/gomarkup/pkg/markup"
)

// textEscapes are the characters escaped wherever they appear in
// literal text. '|' is included so text survives table cells, '&' so
// entity references stay literal on the way back in.
const textEscapes = "\\`*_[]<&~|"

func newInlineVisitor(f *formatter) *markup.Visitor[string] {
	return &markup.Visitor[string]{
		Text: func(t *markup.Text) string {
			return escapeText(t.Content())
		},
		Emphasis: func(e *markup.Emphasis) string {
			marker := f.opts.effectiveEmphasisMarker()
			return marker + f.renderInlineChildren(e) + marker
		},
		Strong: func(s *markup.Strong) string {
			marker := strings.Repeat(f.opts.effectiveEmphasisMarker(), 2)
			return marker + f.renderInlineChildren(s) + marker
		},
		Strikethrough: func(s *markup.Strikethrough) string {
			return "~~" + f.renderInlineChildren(s) + "~~"
		},
		InlineCode: func(c *markup.InlineCode) string {
			return codeSpan(c.Code(), 1)
		},
		SymbolLink: func(s *markup.SymbolLink) string {
			return codeSpan(s.Destination(), 2)
		},
		Link: func(l *markup.Link) string {
			dest, _ := l.Destination()
			title, hasTitle := l.Title()
			return "[" + f.renderInlineChildren(l) + "](" + linkTarget(dest, title, hasTitle) + ")"
		},
		Image: func(i *markup.Image) string {
			src, _ := i.Source()
			title, hasTitle := i.Title()
			return "![" + f.renderInlineChildren(i) + "](" + linkTarget(src, title, hasTitle) + ")"
		},
		InlineAttributes: func(a *markup.InlineAttributes) string {
			return "^[" + f.renderInlineChildren(a) + "](" + a.Attributes() + ")"
		},
		LineBreak: func(*markup.LineBreak) string {
			return "\\\n"
		},
		SoftBreak: func(*markup.SoftBreak) string {
			if f.opts.effectiveSoftBreakMode() == SoftBreakSpace {
				return " "
			}
			return "\n"
		},
		InlineHTML: func(h *markup.InlineHTML) string {
			return h.HTML()
		},
		CustomInline: func(c *markup.CustomInline) string {
			if text := c.Text(); text != "" {
				return text
			}
			return f.renderInlineChildren(c)
		},

		// Block elements in inline position degrade to their text.
		Default: f.renderInlineChildren,
	}
}

func escapeText(s string) string {
	if !strings.ContainsAny(s, textEscapes) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(textEscapes, s[i]) >= 0 {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// codeSpan wraps code in a backtick delimiter longer than any run it
// contains, padding the content when its edges would bleed into the
// delimiter.
func codeSpan(code string, minWidth int) string {
	width := minWidth
	if run := longestRun(code, '`'); run >= width {
		width = run + 1
	}
	delim := strings.Repeat("`", width)
	if needsCodePadding(code) {
		return delim + " " + code + " " + delim
	}
	return delim + code + delim
}

// needsCodePadding reports whether a code span needs the one-space
// padding the parser strips back off: edge backticks always, edge
// spaces unless the content is nothing but spaces.
func needsCodePadding(code string) bool {
	if code == "" {
		return false
	}
	if code[0] == '`' || code[len(code)-1] == '`' {
		return true
	}
	if (code[0] == ' ' || code[len(code)-1] == ' ') && strings.TrimSpace(code) != "" {
		return true
	}
	return false
}

// linkTarget renders the destination-and-title span of a link or
// image, without the surrounding parentheses.
func linkTarget(dest string, title string, hasTitle bool) string {
	out := formatDestination(dest)
	if hasTitle {
		out += ` "` + titleEscaper.Replace(title) + `"`
	}
	return out
}

var (
	titleEscaper       = strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	destinationEscaper = strings.NewReplacer(`\`, `\\`, `<`, `\<`, `>`, `\>`)
)

// formatDestination writes a destination bare when it can stand
// alone, and wraps it in angle brackets when it contains characters
// that would end a bare destination early.
func formatDestination(dest string) string {
	if dest == "" {
		return "<>"
	}
	if strings.ContainsAny(dest, " \t\n()<>") {
		return "<" + destinationEscaper.Replace(dest) + ">"
	}
	return dest
}
