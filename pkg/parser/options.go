package parser

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Options selects which grammar the parser recognizes on top of
// CommonMark and GFM. The zero value parses plain CommonMark.
type Options struct {
	// BlockDirectives enables the @Name(arguments) { contents }
	// container syntax.
	BlockDirectives bool `yaml:"block_directives"`

	// MinimalDoxygen enables a small fixed set of Doxygen-style
	// commands (@discussion, @note, @brief, @abstract, @param,
	// @return, @returns, @result), introduced by @ or backslash.
	MinimalDoxygen bool `yaml:"minimal_doxygen"`

	// SymbolLinks promotes code spans fenced by two or more backticks
	// to symbol links.
	SymbolLinks bool `yaml:"symbol_links"`

	// SmartPunctuation substitutes typographic quotes, dashes, and
	// ellipses in text.
	SmartPunctuation bool `yaml:"smart_punctuation"`

	// TableSpans recognizes column-span and row-span folding in
	// table cells.
	TableSpans bool `yaml:"table_spans"`

	// Logger receives debug traces of container assembly. Nil means
	// no tracing.
	Logger *log.Logger `yaml:"-"`
}

// LoadOptions reads parser options from a YAML file.
func LoadOptions(path string) (Options, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read options file: %w", err)
	}
	return unmarshalOptions(content)
}

// LoadOptionsFrom reads parser options from a YAML stream.
func LoadOptionsFrom(r io.Reader) (Options, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return Options{}, fmt.Errorf("read options: %w", err)
	}
	return unmarshalOptions(content)
}

func unmarshalOptions(content []byte) (Options, error) {
	var opts Options
	if err := yaml.Unmarshal(content, &opts); err != nil {
		return Options{}, fmt.Errorf("parse yaml: %w", err)
	}
	return opts, nil
}
