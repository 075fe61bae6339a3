package parser

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/gomarkup/internal/logging"
)

// containerStack assembles input lines into a container hierarchy.
// The root container is always present at the bottom and is never
// closed.
type containerStack struct {
	containers []container
	opts       Options
	logger     *log.Logger
}

func newContainerStack(opts Options) *containerStack {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &containerStack{
		containers: []container{&rootContainer{}},
		opts:       opts,
		logger:     logger,
	}
}

func (s *containerStack) top() container {
	return s.containers[len(s.containers)-1]
}

func (s *containerStack) push(c container) {
	s.containers = append(s.containers, c)
}

// closeTop pops the top container and adopts it into its parent. The
// root container stays put.
func (s *containerStack) closeTop() {
	if len(s.containers) == 1 {
		return
	}
	closed := s.top()
	s.containers = s.containers[:len(s.containers)-1]
	switch parent := s.top().(type) {
	case *rootContainer:
		parent.children = append(parent.children, closed)
	case *directiveContainer:
		parent.children = append(parent.children, closed)
	}
	s.logger.Debug("closed container",
		logging.FieldContainer, containerKind(closed),
		logging.FieldDepth, len(s.containers))
}

// closeThrough closes containers from the top down to and including c.
func (s *containerStack) closeThrough(c container) {
	for len(s.containers) > 1 {
		closed := s.top()
		s.closeTop()
		if closed == c {
			return
		}
	}
}

// finish closes every open container and returns the root.
func (s *containerStack) finish() *rootContainer {
	for len(s.containers) > 1 {
		s.closeTop()
	}
	return s.containers[0].(*rootContainer)
}

// accept dispatches one line through the stack.
func (s *containerStack) accept(line trackedLine) {
	if line.isBlank() {
		s.closeForBlank()
	}

	if s.openDoxygenCommand(line) {
		return
	}

	s.updateIndentation(line)

	if s.closeAtBrace(line) {
		return
	}

	if s.openBlockDirective(line) {
		return
	}

	s.foldIntoTop(line)
}

// closeForBlank closes a top container that a blank line terminates: a
// doxygen command, or a directive still expecting opening punctuation
// or already finished.
func (s *containerStack) closeForBlank() {
	switch top := s.top().(type) {
	case *doxygenContainer:
		s.closeTop()
	case *directiveContainer:
		if top.pending.closesOnBlank() {
			s.closeTop()
		}
	}
}

// openDoxygenCommand recognizes a doxygen command and pushes it,
// closing whatever container it interrupts. Commands are inert inside
// directive content regions and inside code.
func (s *containerStack) openDoxygenCommand(line trackedLine) bool {
	if !s.opts.MinimalDoxygen || line.isBlank() {
		return false
	}
	if s.insideDirectiveContents() || s.suppressesCustomSyntax(line) {
		return false
	}
	pending := lexDoxygenCommand(line)
	if pending == nil {
		return false
	}
	if len(s.containers) > 1 {
		s.closeTop()
	}
	s.push(&doxygenContainer{pending: pending})
	s.logger.Debug("opened doxygen command",
		logging.FieldCommand, pending.kind,
		logging.FieldLine, line.number)
	return true
}

// updateIndentation records the first non-blank content line's
// indentation on every directive whose content region just opened.
// That indentation becomes the columns stripped from the directive's
// content before sub-parsing.
func (s *containerStack) updateIndentation(line trackedLine) {
	if line.isBlank() {
		return
	}
	columns := line.indentationColumns()
	for _, c := range s.containers {
		if dc, ok := c.(*directiveContainer); ok && dc.pending.awaitingChildContent() && dc.pending.innerIndentation < 0 {
			dc.pending.innerIndentation = columns
		}
	}
}

// closeAtBrace handles a line whose first significant character is a
// closing brace. It closes the innermost directive with an open
// content region together with every container stacked above it, so
// one brace can finish several unclosed directives at once.
func (s *containerStack) closeAtBrace(line trackedLine) bool {
	if line.isBlank() || s.inCodeFence() || s.indentedAsCode(line) {
		return false
	}
	probe := line
	probe.trimWhitespace()
	if !probe.lex("}") {
		return false
	}

	target := -1
	for i := len(s.containers) - 1; i > 0; i-- {
		if dc, ok := s.containers[i].(*directiveContainer); ok && dc.pending.awaitingChildContent() {
			target = i
			break
		}
	}
	if target < 0 {
		return false
	}

	dc := s.containers[target].(*directiveContainer)
	for len(s.containers) > target+1 {
		s.closeTop()
	}
	dc.pending.finishAtBrace(probe)
	s.closeTop()

	if !probe.isBlank() {
		s.accept(probe)
	}
	return true
}

// openBlockDirective recognizes @Name and pushes a directive
// container. How the current top yields depends on what it is.
func (s *containerStack) openBlockDirective(line trackedLine) bool {
	if !s.opts.BlockDirectives || line.isBlank() || s.suppressesCustomSyntax(line) {
		return false
	}
	pending := lexDirectiveOpen(line)
	if pending == nil {
		return false
	}

	switch top := s.top().(type) {
	case *rootContainer:
	case *lineRun, *doxygenContainer:
		s.closeTop()
	case *directiveContainer:
		// A directive accepting content gains a nested child; one
		// still parsing its own syntax is cut short by a sibling.
		if !top.pending.awaitingChildContent() {
			s.closeTop()
		}
	}

	dc := &directiveContainer{pending: pending}
	s.push(dc)
	s.logger.Debug("opened directive",
		logging.FieldDirective, pending.name,
		logging.FieldLine, line.number)
	s.settleDirective(dc)
	return true
}

// settleDirective applies the aftermath of feeding a directive's state
// machine: deliver content captured from its opening line, close it if
// its syntax completed, and re-dispatch text that fell outside it.
func (s *containerStack) settleDirective(dc *directiveContainer) {
	pending := dc.pending
	if child := pending.pendingChildLine; child != nil {
		pending.pendingChildLine = nil
		s.push(newLineRun(*child))
	}
	if pending.state == stateDone {
		s.closeThrough(dc)
	}
	if sibling := pending.pendingSiblingLine; sibling != nil {
		pending.pendingSiblingLine = nil
		s.accept(*sibling)
	}
}

// foldIntoTop is the final dispatch step: the line joins whatever
// container is open.
func (s *containerStack) foldIntoTop(line trackedLine) {
	switch top := s.top().(type) {
	case *lineRun:
		top.append(line)
	case *doxygenContainer:
		top.pending.lines = append(top.pending.lines, line)
	case *directiveContainer:
		if top.pending.awaitingChildContent() {
			s.push(newLineRun(line))
			return
		}
		top.pending.accept(&line)
		s.settleDirective(top)
	case *rootContainer:
		s.push(newLineRun(line))
	}
}

// insideDirectiveContents reports whether any stacked directive has an
// open content region.
func (s *containerStack) insideDirectiveContents() bool {
	for _, c := range s.containers {
		if dc, ok := c.(*directiveContainer); ok && dc.pending.awaitingChildContent() {
			return true
		}
	}
	return false
}

// inCodeFence reports whether the top container is a line run with an
// unclosed code fence.
func (s *containerStack) inCodeFence() bool {
	run, ok := s.top().(*lineRun)
	return ok && run.inCodeFence
}

// indentedAsCode reports whether the line sits four or more columns
// past the current container's indentation adjustment, making it
// indented-code content in the eventual sub-parse.
func (s *containerStack) indentedAsCode(line trackedLine) bool {
	return line.indentationColumns() >= s.indentationAdjustment()+4
}

// suppressesCustomSyntax reports whether directive and doxygen syntax
// is inert on this line because it would land inside code.
func (s *containerStack) suppressesCustomSyntax(line trackedLine) bool {
	return s.inCodeFence() || line.looksLikeFence() || s.indentedAsCode(line)
}

// indentationAdjustment is the innermost stacked directive's
// indentation adjustment, zero at top level.
func (s *containerStack) indentationAdjustment() int {
	for i := len(s.containers) - 1; i > 0; i-- {
		if dc, ok := s.containers[i].(*directiveContainer); ok {
			return dc.pending.indentationAdjustment()
		}
	}
	return 0
}

func containerKind(c container) string {
	switch c.(type) {
	case *rootContainer:
		return "root"
	case *lineRun:
		return "line_run"
	case *directiveContainer:
		return "directive"
	case *doxygenContainer:
		return "doxygen"
	default:
		return "unknown"
	}
}
