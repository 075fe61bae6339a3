// Package goldmark bridges the goldmark CommonMark parser into the
// markup vocabulary.
//
// The bridge parses plain CommonMark and GFM text. It knows nothing
// about block directives or Doxygen commands; the outer parser hands
// it one stretch of ordinary Markdown at a time and splices the
// result back into the surrounding tree.
package goldmark

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/gomarkup/pkg/markup"
)

// Options configures a Bridge.
type Options struct {
	// SymbolLinks promotes code spans written with two or more
	// backticks to SymbolLink elements.
	SymbolLinks bool

	// SmartPunctuation rewrites straight quotes, dashes, and ellipses
	// into their typographic forms.
	SmartPunctuation bool

	// TableSpans folds empty body cells into the column span of the
	// cell to their left, and cells holding a lone ^ into the row
	// span of the cell above.
	TableSpans bool
}

// Bridge parses CommonMark and GFM text into markup trees.
//
// A Bridge is immutable after construction and safe for concurrent
// use.
type Bridge struct {
	opts Options
	md   goldmark.Markdown
}

// New creates a bridge with the given options.
func New(opts Options) *Bridge {
	return &Bridge{
		opts: opts,
		md:   newGoldmarkInstance(opts),
	}
}

// Options returns the options the bridge was built with.
func (b *Bridge) Options() Options {
	return b.opts
}

// ParseDocument parses content into a document tree.
//
// Every element carries a best-effort range in file's coordinates,
// measured in 1-based lines and byte columns. Elements the underlying
// grammar keeps no position for, such as soft breaks and autolinks,
// stay unranged; Range() on those falls back to the nearest enclosing
// recorded range.
func (b *Bridge) ParseDocument(content []byte, file *string) *markup.Document {
	reader := text.NewReader(content)
	gmDoc := b.md.Parser().Parse(reader, parser.WithContext(parser.NewContext()))

	m := newMapper(content, file, b.opts)
	return m.mapDocument(gmDoc)
}

// ParseDocument parses content with a single-use bridge.
func ParseDocument(content []byte, file *string, opts Options) *markup.Document {
	return New(opts).ParseDocument(content, file)
}

// newGoldmarkInstance creates a configured goldmark.Markdown instance.
//
//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance(opts Options) goldmark.Markdown {
	extensions := []goldmark.Extender{
		extension.GFM,
		&attributesExtension{},
	}
	if opts.SmartPunctuation {
		extensions = append(extensions, newTypographer())
	}

	return goldmark.New(goldmark.WithExtensions(extensions...))
}

// newTypographer builds a typographer that substitutes literal
// characters rather than the default HTML entities, so smart
// punctuation survives as plain text content.
//
//nolint:ireturn // extension.NewTypographer returns an interface
func newTypographer() goldmark.Extender {
	return extension.NewTypographer(
		extension.WithTypographicSubstitutions(extension.TypographicSubstitutions{
			extension.LeftSingleQuote:  []byte("‘"),
			extension.RightSingleQuote: []byte("’"),
			extension.LeftDoubleQuote:  []byte("“"),
			extension.RightDoubleQuote: []byte("”"),
			extension.EnDash:           []byte("–"),
			extension.EmDash:           []byte("—"),
			extension.Ellipsis:         []byte("…"),
			extension.Apostrophe:       []byte("’"),
		}),
	)
}
