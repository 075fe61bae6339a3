package runner

import "github.com/yaklabco/gomarkup/pkg/markup"

// FileResult is the outcome of parsing one file.
type FileResult struct {
	// Path is the absolute path that was parsed.
	Path string

	// Document is the parsed tree, nil when Error is set.
	Document *markup.Document

	// Diagnostics are the argument diagnostics collected from every
	// block directive in the document.
	Diagnostics []markup.ArgumentDiagnostic

	// Error is set if the file could not be read or parsed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during
	// discovery.
	FilesDiscovered int

	// FilesParsed is the number of files parsed successfully.
	FilesParsed int

	// FilesErrored is the number of files that could not be parsed.
	FilesErrored int

	// FilesWithDiagnostics is the number of files with at least one
	// argument diagnostic.
	FilesWithDiagnostics int

	// DiagnosticsTotal is the number of argument diagnostics across
	// all files.
	DiagnosticsTotal int
}

// Result is the overall run result.
type Result struct {
	// Files holds the outcome for each file, ordered by path.
	Files []FileResult

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasErrors reports whether any file failed to parse.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// HasDiagnostics reports whether any argument diagnostics were found.
func (r *Result) HasDiagnostics() bool {
	if r == nil {
		return false
	}
	return r.Stats.DiagnosticsTotal > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileResult) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesParsed++
	if len(outcome.Diagnostics) > 0 {
		r.Stats.FilesWithDiagnostics++
		r.Stats.DiagnosticsTotal += len(outcome.Diagnostics)
	}
}

// collectDiagnostics gathers argument diagnostics from every block
// directive in the document, in document order.
func collectDiagnostics(doc *markup.Document) []markup.ArgumentDiagnostic {
	var diags []markup.ArgumentDiagnostic
	w := &markup.Walker{}
	w.BlockDirective = func(d *markup.BlockDirective) {
		_, found := d.ArgumentText().ParseNameValueArgumentsWithDiagnostics()
		diags = append(diags, found...)
		w.Descend(d)
	}
	w.Walk(doc)
	return diags
}
