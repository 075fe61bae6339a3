package parser

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/gomarkup/internal/logging"
	"github.com/yaklabco/gomarkup/pkg/markup"
	"github.com/yaklabco/gomarkup/pkg/parser/goldmark"
	"github.com/yaklabco/gomarkup/pkg/source"
)

// container is one node of the parse-time hierarchy lines are
// assembled into. adjustment is the indentation column count the
// enclosing container strips from its content.
type container interface {
	lower(l *lowerer, adjustment int) []markup.Markup
}

// rootContainer holds the document's top-level containers.
type rootContainer struct {
	children []container
}

// lineRun is a maximal run of lines with no recognized custom syntax,
// destined for one CommonMark sub-parse.
type lineRun struct {
	lines []trackedLine

	// inCodeFence is true while the run has an unclosed code fence,
	// which keeps custom syntax inert on following lines.
	inCodeFence bool
}

func newLineRun(line trackedLine) *lineRun {
	run := &lineRun{}
	run.append(line)
	return run
}

func (r *lineRun) append(line trackedLine) {
	r.lines = append(r.lines, line)
	if line.looksLikeFence() {
		r.inCodeFence = !r.inCodeFence
	}
}

// directiveContainer is an open block directive and the child
// containers of its content region.
type directiveContainer struct {
	pending  *pendingDirective
	children []container
}

// doxygenContainer is an open doxygen command.
type doxygenContainer struct {
	pending *pendingDoxygen
}

// lowerer converts a finished container hierarchy into markup nodes.
// Each line run goes through the CommonMark bridge and its ranges are
// adjusted back to document coordinates.
type lowerer struct {
	bridge *goldmark.Bridge
	file   *string
	logger *log.Logger
}

func (l *lowerer) lowerRoot(root *rootContainer) *markup.Document {
	children := root.lower(l, 0)
	doc := markup.NewDocument(children...)
	if rng := unionRanges(children); rng.IsValid() {
		doc = markup.Ranged(doc, rng)
	}
	return doc
}

func (l *lowerer) lowerChildren(children []container, adjustment int) []markup.Markup {
	var out []markup.Markup
	for _, c := range children {
		out = append(out, c.lower(l, adjustment)...)
	}
	return out
}

func (r *rootContainer) lower(l *lowerer, adjustment int) []markup.Markup {
	return l.lowerChildren(r.children, adjustment)
}

func (r *lineRun) lower(l *lowerer, adjustment int) []markup.Markup {
	children, _ := l.lowerLines(r.lines, adjustment)
	return children
}

func (c *directiveContainer) lower(l *lowerer, _ int) []markup.Markup {
	children := l.lowerChildren(c.children, c.pending.indentationAdjustment())

	directive := markup.NewBlockDirectiveWithArguments(
		c.pending.name,
		markup.ArgumentText{Segments: c.pending.arguments},
		children...,
	)
	rng := source.Range{Start: c.pending.at, End: c.pending.end}
	rng = rng.ExtendToInclude(unionRanges(children))
	directive = markup.Ranged(directive, rng)
	directive = markup.RangedDirectiveName(directive, c.pending.nameRange)
	return []markup.Markup{directive}
}

func (c *doxygenContainer) lower(l *lowerer, _ int) []markup.Markup {
	children, total := l.lowerLines(c.pending.lines, c.pending.atIndentation)

	var node markup.Markup
	switch c.pending.kind {
	case doxygenDiscussion:
		node = markup.NewDoxygenDiscussion(children...)
	case doxygenNote:
		node = markup.NewDoxygenNote(children...)
	case doxygenAbstract:
		node = markup.NewDoxygenAbstract(children...)
	case doxygenParameter:
		node = markup.NewDoxygenParameter(c.pending.parameterName, children...)
	case doxygenReturns:
		node = markup.NewDoxygenReturns(children...)
	}

	rng := source.Range{Start: c.pending.at, End: c.pending.end}
	rng = rng.ExtendToInclude(total)
	return []markup.Markup{markup.Ranged(node, rng)}
}

// lowerLines strips up to adjustment columns of indentation from each
// line, joins them for one bridge sub-parse, and readjusts the
// resulting ranges to document coordinates. It returns the
// sub-document's top-level children and the union of their adjusted
// ranges.
func (l *lowerer) lowerLines(lines []trackedLine, adjustment int) ([]markup.Markup, source.Range) {
	if len(lines) == 0 {
		return nil, source.Range{}
	}

	logical := make([]string, len(lines))
	trimmed := make([]int, len(lines))
	for i, line := range lines {
		rest := line.rest()
		extra := trimIndentationColumns(rest, adjustment)
		logical[i] = rest[extra:]
		trimmed[i] = line.cursor + extra
	}

	sub := l.bridge.ParseDocument([]byte(strings.Join(logical, "\n")), nil)

	adjuster := markup.RangeAdjuster{
		StartLine:      lines[0].number,
		TrimmedColumns: trimmed,
		File:           l.file,
	}
	adjuster.Adjust(sub)

	var children []markup.Markup
	for child := range sub.Children() {
		children = append(children, child)
	}
	l.logger.Debug("lowered line run",
		logging.FieldLine, lines[0].number,
		logging.FieldLines, len(lines),
		logging.FieldNodes, len(children))
	return children, adjuster.Total()
}

// unionRanges is the union of the children's ranges, invalid when none
// carries one.
func unionRanges(children []markup.Markup) source.Range {
	var union source.Range
	for _, child := range children {
		if rng := child.Range(); rng != nil {
			union = union.ExtendToInclude(*rng)
		}
	}
	return union
}
