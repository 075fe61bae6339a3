package format

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// OrderedListStyle selects how ordered list items are numbered.
type OrderedListStyle string

const (
	// OrderedListIncrementing numbers items upward from the list's
	// start index.
	OrderedListIncrementing OrderedListStyle = "incrementing"

	// OrderedListRepeating writes the start index on every item.
	OrderedListRepeating OrderedListStyle = "repeating"
)

// SoftBreakMode selects what a soft line break becomes in output.
type SoftBreakMode string

const (
	// SoftBreakNewline keeps soft breaks as line breaks in the source.
	SoftBreakNewline SoftBreakMode = "newline"

	// SoftBreakSpace joins softly broken lines with a single space.
	SoftBreakSpace SoftBreakMode = "space"
)

// Options controls the Markdown the formatter writes. The zero value
// formats with conventional defaults: "-" bullets, incrementing
// ordered lists, backtick fences, a five-dash thematic break, "*"
// emphasis, and soft breaks kept as newlines. Unrecognized values
// fall back to the same defaults.
type Options struct {
	// UnorderedListMarker is the bullet character, one of "-", "*",
	// or "+".
	UnorderedListMarker string `yaml:"unordered_list_marker"`

	// OrderedListStyle selects incrementing or repeating item
	// numbers.
	OrderedListStyle OrderedListStyle `yaml:"ordered_list_style"`

	// CodeFenceCharacter is the fence character, "`" or "~". Fences
	// grow past the longest matching run in the code they enclose.
	CodeFenceCharacter string `yaml:"code_fence_character"`

	// ThematicBreakCharacter is the break character, one of "-",
	// "*", or "_".
	ThematicBreakCharacter string `yaml:"thematic_break_character"`

	// ThematicBreakWidth is how many break characters to write,
	// minimum three.
	ThematicBreakWidth int `yaml:"thematic_break_width"`

	// EmphasisMarker is the emphasis delimiter, "*" or "_". Strong
	// emphasis doubles it.
	EmphasisMarker string `yaml:"emphasis_marker"`

	// SoftBreakMode selects newline or space for soft breaks.
	SoftBreakMode SoftBreakMode `yaml:"soft_break_mode"`
}

func (o Options) effectiveUnorderedListMarker() string {
	switch o.UnorderedListMarker {
	case "-", "*", "+":
		return o.UnorderedListMarker
	}
	return "-"
}

func (o Options) effectiveOrderedListStyle() OrderedListStyle {
	if o.OrderedListStyle == OrderedListRepeating {
		return OrderedListRepeating
	}
	return OrderedListIncrementing
}

func (o Options) effectiveCodeFenceCharacter() string {
	if o.CodeFenceCharacter == "~" {
		return "~"
	}
	return "`"
}

func (o Options) effectiveThematicBreakCharacter() string {
	switch o.ThematicBreakCharacter {
	case "-", "*", "_":
		return o.ThematicBreakCharacter
	}
	return "-"
}

func (o Options) effectiveThematicBreakWidth() int {
	if o.ThematicBreakWidth >= 3 {
		return o.ThematicBreakWidth
	}
	return 5
}

func (o Options) effectiveEmphasisMarker() string {
	if o.EmphasisMarker == "_" {
		return "_"
	}
	return "*"
}

func (o Options) effectiveSoftBreakMode() SoftBreakMode {
	if o.SoftBreakMode == SoftBreakSpace {
		return SoftBreakSpace
	}
	return SoftBreakNewline
}

// LoadOptions reads formatter options from a YAML file.
func LoadOptions(path string) (Options, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read options file: %w", err)
	}
	return unmarshalOptions(content)
}

// LoadOptionsFrom reads formatter options from a YAML stream.
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
