// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"
	FieldJobs       = "jobs"

	// Parser fields.
	FieldLine      = "line"
	FieldLines     = "lines"
	FieldContainer = "container"
	FieldDirective = "directive"
	FieldCommand   = "command"
	FieldDepth     = "depth"
	FieldNodes     = "nodes"
)
