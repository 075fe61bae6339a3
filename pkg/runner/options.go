// Package runner discovers markup files and parses them concurrently.
package runner

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/gomarkup/pkg/parser"
)

// Options controls discovery and parsing behavior.
type Options struct {
	// Paths are the files or directories to process. Empty defaults
	// to the working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative
	// Paths. Empty means the process working directory.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with
	// leading dot) considered markup. Defaults to DefaultExtensions().
	Extensions []string

	// IncludeGlobs restricts discovery to matching paths, relative to
	// WorkingDir. Empty means everything matching Extensions.
	IncludeGlobs []string

	// ExcludeGlobs are glob patterns used to skip files or
	// directories.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are
	// traversed.
	FollowSymlinks bool

	// Jobs caps the number of concurrent parse workers. Zero or
	// negative means one per CPU.
	Jobs int

	// Parser configures the grammar for every parsed file.
	Parser parser.Options

	// Logger receives per-file progress at debug level. Nil means no
	// logging.
	Logger *log.Logger
}

// DefaultExtensions returns the default set of markup file extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

// effectiveExtensions returns the extensions to use, defaulting if
// empty.
func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

// effectivePaths returns the paths to process, defaulting to "." if
// empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

// logger returns the configured logger or a discarding one.
func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}
