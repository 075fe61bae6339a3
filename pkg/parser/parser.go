// Package parser turns documentation markup into markup trees. It
// layers two custom grammars over CommonMark and GFM: block directives
// of the form @Name(arguments) { contents }, and a minimal set of
// Doxygen-style commands.
//
// Parsing is line oriented. Lines are assembled into a hierarchy of
// containers (line runs, directives, doxygen commands); each line run
// is handed to the CommonMark bridge as its own sub-parse, and the
// resulting ranges are adjusted back to whole-document coordinates.
// Malformed markup never fails: anything unrecognized parses as plain
// CommonMark content. Errors report only I/O and cancellation.
package parser

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/yaklabco/gomarkup/internal/logging"
	"github.com/yaklabco/gomarkup/pkg/markup"
	"github.com/yaklabco/gomarkup/pkg/parser/goldmark"
)

// ParseDocument parses content into a markup tree.
func ParseDocument(ctx context.Context, content []byte, opts Options) (*markup.Document, error) {
	return parse(ctx, content, nil, opts)
}

// ParseString parses content into a markup tree.
func ParseString(ctx context.Context, content string, opts Options) (*markup.Document, error) {
	return parse(ctx, []byte(content), nil, opts)
}

// ParseFile reads and parses the file at path. Ranges in the returned
// tree carry the path as their file.
func ParseFile(ctx context.Context, path string, opts Options) (*markup.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return parse(ctx, content, &path, opts)
}

func parse(ctx context.Context, content []byte, file *string, opts Options) (*markup.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	lines := splitLines(content, file)
	stack := newContainerStack(opts)
	stack.logger.Debug("parsing document", logging.FieldLines, len(lines))
	for _, line := range lines {
		stack.accept(line)
	}
	root := stack.finish()

	l := &lowerer{
		bridge: goldmark.New(opts.bridgeOptions()),
		file:   file,
		logger: stack.logger,
	}
	return l.lowerRoot(root), nil
}

func (o Options) bridgeOptions() goldmark.Options {
	return goldmark.Options{
		SymbolLinks:      o.SymbolLinks,
		SmartPunctuation: o.SmartPunctuation,
		TableSpans:       o.TableSpans,
	}
}

// splitLines breaks content into tracked lines without their
// terminators. LF and CRLF both end a line.
func splitLines(content []byte, file *string) []trackedLine {
	if len(content) == 0 {
		return nil
	}
	raw := strings.Split(string(content), "\n")
	lines := make([]trackedLine, len(raw))
	for i, text := range raw {
		lines[i] = trackedLine{
			text:   strings.TrimSuffix(text, "\r"),
			number: i + 1,
			file:   file,
		}
	}
	return lines
}
