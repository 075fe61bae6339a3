package render_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomarkup/pkg/markup"
	"github.com/yaklabco/gomarkup/pkg/parser"
	"github.com/yaklabco/gomarkup/pkg/render"
)

func parseDoc(t *testing.T, source string, opts parser.Options) *markup.Document {
	t.Helper()
	doc, err := parser.ParseString(context.Background(), source, opts)
	require.NoError(t, err)
	return doc
}

func TestHTML_Blocks(t *testing.T) {
	source := "## Title\n\nUses *markup* and `code`.\n\n> quoted\n\n---\n"
	doc := parseDoc(t, source, parser.Options{})

	want := "<h2>Title</h2>\n" +
		"<p>Uses <em>markup</em> and <code>code</code>.</p>\n" +
		"<blockquote>\n<p>quoted</p>\n</blockquote>\n" +
		"<hr />\n"
	assert.Equal(t, want, render.HTML(doc))
}

func TestHTML_Lists(t *testing.T) {
	t.Run("unordered", func(t *testing.T) {
		doc := parseDoc(t, "- first\n- second\n", parser.Options{})
		want := "<ul>\n" +
			"<li>\n<p>first</p>\n</li>\n" +
			"<li>\n<p>second</p>\n</li>\n" +
			"</ul>\n"
		assert.Equal(t, want, render.HTML(doc))
	})

	t.Run("ordered from one", func(t *testing.T) {
		doc := parseDoc(t, "1. only\n", parser.Options{})
		assert.Equal(t, "<ol>\n<li>\n<p>only</p>\n</li>\n</ol>\n", render.HTML(doc))
	})

	t.Run("ordered start attribute", func(t *testing.T) {
		doc := parseDoc(t, "3. a\n4. b\n", parser.Options{})
		want := "<ol start=\"3\">\n" +
			"<li>\n<p>a</p>\n</li>\n" +
			"<li>\n<p>b</p>\n</li>\n" +
			"</ol>\n"
		assert.Equal(t, want, render.HTML(doc))
	})
}

func TestHTML_Checkboxes(t *testing.T) {
	doc := parseDoc(t, "- [x] done\n- [ ] open\n", parser.Options{})

	want := "<ul>\n" +
		"<li><input type=\"checkbox\" checked=\"\" disabled=\"\" />\n<p>done</p>\n</li>\n" +
		"<li><input type=\"checkbox\" disabled=\"\" />\n<p>open</p>\n</li>\n" +
		"</ul>\n"
	assert.Equal(t, want, render.HTML(doc))
}

func TestHTML_CodeBlocks(t *testing.T) {
	t.Run("info string normalized", func(t *testing.T) {
		doc := parseDoc(t, "```golang\nfmt.Println()\n```\n", parser.Options{})
		want := "<pre><code class=\"language-go\">fmt.Println()\n</code></pre>\n"
		assert.Equal(t, want, render.HTML(doc))
	})

	t.Run("no info string", func(t *testing.T) {
		doc := parseDoc(t, "```\na < b\n```\n", parser.Options{})
		assert.Equal(t, "<pre><code>a &lt; b\n</code></pre>\n", render.HTML(doc))
	})

	t.Run("inferred language", func(t *testing.T) {
		doc := parseDoc(t, "```\npackage demo\n\nfunc Run() {}\n```\n", parser.Options{})
		opts := render.Options{LanguageInference: true}
		want := "<pre><code class=\"language-go\">package demo\n\nfunc Run() {}\n</code></pre>\n"
		assert.Equal(t, want, render.HTMLWithOptions(doc, opts))
	})
}

func TestHTML_RawHTML(t *testing.T) {
	t.Run("block suppressed", func(t *testing.T) {
		doc := parseDoc(t, "<div>\nhi\n</div>\n", parser.Options{})
		assert.Equal(t, "<!-- raw HTML omitted -->\n", render.HTML(doc))
	})

	t.Run("block allowed", func(t *testing.T) {
		doc := parseDoc(t, "<div>\nhi\n</div>\n", parser.Options{})
		opts := render.Options{AllowHTML: true}
		assert.Equal(t, "<div>\nhi\n</div>\n", render.HTMLWithOptions(doc, opts))
	})

	t.Run("inline suppressed", func(t *testing.T) {
		doc := parseDoc(t, "a <b>x</b> z\n", parser.Options{})
		want := "<p>a <!-- raw HTML omitted -->x<!-- raw HTML omitted --> z</p>\n"
		assert.Equal(t, want, render.HTML(doc))
	})

	t.Run("inline allowed", func(t *testing.T) {
		doc := parseDoc(t, "a <b>x</b> z\n", parser.Options{})
		opts := render.Options{AllowHTML: true}
		assert.Equal(t, "<p>a <b>x</b> z</p>\n", render.HTMLWithOptions(doc, opts))
	})
}

func TestHTML_SoftBreaks(t *testing.T) {
	doc := parseDoc(t, "line one\nline two\n", parser.Options{})

	assert.Equal(t, "<p>line one\nline two</p>\n", render.HTML(doc))

	opts := render.Options{SoftBreakAsHardBreak: true}
	assert.Equal(t, "<p>line one<br />\nline two</p>\n", render.HTMLWithOptions(doc, opts))
}

func TestHTML_Directives(t *testing.T) {
	opts := parser.Options{BlockDirectives: true}

	t.Run("bare", func(t *testing.T) {
		doc := parseDoc(t, "@TechnologyRoot\n", opts)
		assert.Equal(t, "<div data-directive=\"TechnologyRoot\">\n</div>\n", render.HTML(doc))
	})

	t.Run("arguments and contents", func(t *testing.T) {
		doc := parseDoc(t, "@Outer(x: 1, y: 2) { *Contents* }\n", opts)
		want := "<div data-directive=\"Outer\" data-arguments=\"x: 1, y: 2\">\n" +
			"<p><em>Contents</em></p>\n" +
			"</div>\n"
		assert.Equal(t, want, render.HTML(doc))
	})
}

func TestHTML_Doxygen(t *testing.T) {
	opts := parser.Options{MinimalDoxygen: true}

	t.Run("parameter", func(t *testing.T) {
		doc := parseDoc(t, "@param coordinate The coordinate to transform.\n", opts)
		want := "<dl>\n<dt>param coordinate</dt>\n<dd>\n" +
			"<p>The coordinate to transform.</p>\n" +
			"</dd>\n</dl>\n"
		assert.Equal(t, want, render.HTML(doc))
	})

	t.Run("returns", func(t *testing.T) {
		doc := parseDoc(t, "@returns The result.\n", opts)
		want := "<dl>\n<dt>returns</dt>\n<dd>\n<p>The result.</p>\n</dd>\n</dl>\n"
		assert.Equal(t, want, render.HTML(doc))
	})
}

func TestHTML_SymbolLinks(t *testing.T) {
	doc := parseDoc(t, "See ``Markup/children``.\n", parser.Options{SymbolLinks: true})
	assert.Equal(t, "<p>See <code>Markup/children</code>.</p>\n", render.HTML(doc))
}

func TestHTML_TableSpans(t *testing.T) {
	source := "| a | b | c |\n" +
		"|:--|:-:|--:|\n" +
		"| wide || tail |\n" +
		"| ^ | x | y |\n"
	doc := parseDoc(t, source, parser.Options{TableSpans: true})

	want := "<table>\n" +
		"<thead>\n<tr>\n" +
		"<th align=\"left\">a</th>\n" +
		"<th align=\"center\">b</th>\n" +
		"<th align=\"right\">c</th>\n" +
		"</tr>\n</thead>\n" +
		"<tbody>\n" +
		"<tr>\n" +
		"<td align=\"left\" colspan=\"2\" rowspan=\"2\">wide</td>\n" +
		"<td align=\"right\">tail</td>\n" +
		"</tr>\n" +
		"<tr>\n" +
		"<td align=\"center\">x</td>\n" +
		"<td align=\"right\">y</td>\n" +
		"</tr>\n" +
		"</tbody>\n" +
		"</table>\n"
	assert.Equal(t, want, render.HTML(doc))
}

func TestHTML_LinksAndImages(t *testing.T) {
	t.Run("href escaping", func(t *testing.T) {
		doc := parseDoc(t, "[docs](https://example.com/a?b=1&c=2)\n", parser.Options{})
		want := "<p><a href=\"https://example.com/a?b=1&amp;c=2\">docs</a></p>\n"
		assert.Equal(t, want, render.HTML(doc))
	})

	t.Run("link title", func(t *testing.T) {
		doc := parseDoc(t, "[site](https://example.com \"Home page\")\n", parser.Options{})
		want := "<p><a href=\"https://example.com\" title=\"Home page\">site</a></p>\n"
		assert.Equal(t, want, render.HTML(doc))
	})

	t.Run("image alt flattens formatting", func(t *testing.T) {
		doc := parseDoc(t, "![an *emphasized* name](pic.png)\n", parser.Options{})
		want := "<p><img src=\"pic.png\" alt=\"an emphasized name\" /></p>\n"
		assert.Equal(t, want, render.HTML(doc))
	})
}

func TestHTML_TextEscaping(t *testing.T) {
	doc := parseDoc(t, "AT&T says 1 < 2\n", parser.Options{})
	assert.Equal(t, "<p>AT&amp;T says 1 &lt; 2</p>\n", render.HTML(doc))
}

func TestHTML_Strikethrough(t *testing.T) {
	doc := parseDoc(t, "~~gone~~ kept\n", parser.Options{})
	assert.Equal(t, "<p><del>gone</del> kept</p>\n", render.HTML(doc))
}

func TestHTML_ConstructedInlines(t *testing.T) {
	para := markup.NewParagraph(
		markup.NewText("a"),
		markup.NewLineBreak(),
		markup.NewInlineAttributes("class: note", markup.NewText("styled")),
	)

	want := "<p>a<br />\n<span data-attributes=\"class: note\">styled</span></p>\n"
	assert.Equal(t, want, render.HTML(para))
}
