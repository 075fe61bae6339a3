package runner_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/gomarkup/pkg/markup"
	"github.com/yaklabco/gomarkup/pkg/parser"
	"github.com/yaklabco/gomarkup/pkg/runner"
)

func TestRun_NoFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	result, err := runner.Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesDiscovered != 0 {
		t.Errorf("FilesDiscovered = %d, want 0", result.Stats.FilesDiscovered)
	}
	if len(result.Files) != 0 {
		t.Errorf("len(Files) = %d, want 0", len(result.Files))
	}
	if result.HasErrors() || result.HasDiagnostics() {
		t.Error("empty run should have no errors or diagnostics")
	}
}

func TestRun_MultipleFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	names := []string{"a.md", "b.md", "c.md", "d.md", "e.md"}
	writeTree(t, dir, names...)

	result, err := runner.Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesDiscovered != len(names) {
		t.Errorf("FilesDiscovered = %d, want %d", result.Stats.FilesDiscovered, len(names))
	}
	if result.Stats.FilesParsed != len(names) {
		t.Errorf("FilesParsed = %d, want %d", result.Stats.FilesParsed, len(names))
	}
	if len(result.Files) != len(names) {
		t.Fatalf("len(Files) = %d, want %d", len(result.Files), len(names))
	}

	for i, fr := range result.Files {
		if fr.Error != nil {
			t.Errorf("Files[%d].Error = %v, want nil", i, fr.Error)
		}
		if fr.Document == nil {
			t.Errorf("Files[%d].Document is nil", i)
		}
		if i > 0 && result.Files[i].Path < result.Files[i-1].Path {
			t.Errorf("files out of order: %s before %s", result.Files[i-1].Path, result.Files[i].Path)
		}
	}
}

func TestRun_CollectsDiagnostics(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, "clean.md")
	dupesFile := filepath.Join(dir, "dupes.md")
	content := "@Outer(x: 1, x: 2) {\n  Body.\n}\n"
	if err := os.WriteFile(dupesFile, []byte(content), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	result, err := runner.Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Parser:     parser.Options{BlockDirectives: true},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesParsed != 2 {
		t.Errorf("FilesParsed = %d, want 2", result.Stats.FilesParsed)
	}
	if result.Stats.FilesWithDiagnostics != 1 {
		t.Errorf("FilesWithDiagnostics = %d, want 1", result.Stats.FilesWithDiagnostics)
	}
	if result.Stats.DiagnosticsTotal != 1 {
		t.Errorf("DiagnosticsTotal = %d, want 1", result.Stats.DiagnosticsTotal)
	}
	if !result.HasDiagnostics() {
		t.Error("HasDiagnostics() should be true")
	}
	if result.HasErrors() {
		t.Error("HasErrors() should be false")
	}

	for _, fr := range result.Files {
		isDupes := filepath.Base(fr.Path) == "dupes.md"
		if isDupes && len(fr.Diagnostics) != 1 {
			t.Fatalf("dupes.md diagnostics = %d, want 1", len(fr.Diagnostics))
		}
		if !isDupes && len(fr.Diagnostics) != 0 {
			t.Errorf("%s diagnostics = %d, want 0", filepath.Base(fr.Path), len(fr.Diagnostics))
		}
		if isDupes {
			d := fr.Diagnostics[0]
			if d.Kind != markup.DiagnosticDuplicateArgument {
				t.Errorf("diagnostic kind = %v, want duplicate argument", d.Kind)
			}
			if !strings.Contains(d.Message(), `duplicate argument "x"`) {
				t.Errorf("unexpected message: %s", d.Message())
			}
		}
	}
}

func TestRun_SerialVsParallelConsistency(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	names := make([]string, 0, 20)
	for idx := range 20 {
		names = append(names, string(rune('a'+idx%26))+string(rune('0'+idx/26))+".md")
	}
	writeTree(t, dir, names...)

	serialOpts := runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Jobs:       1,
	}
	parallelOpts := serialOpts
	parallelOpts.Jobs = 4

	serial, err := runner.Run(context.Background(), serialOpts)
	if err != nil {
		t.Fatalf("Run(serial) error = %v", err)
	}
	parallel, err := runner.Run(context.Background(), parallelOpts)
	if err != nil {
		t.Fatalf("Run(parallel) error = %v", err)
	}

	if serial.Stats != parallel.Stats {
		t.Errorf("stats mismatch: serial=%+v, parallel=%+v", serial.Stats, parallel.Stats)
	}
	if len(serial.Files) != len(parallel.Files) {
		t.Fatalf("file count mismatch: serial=%d, parallel=%d", len(serial.Files), len(parallel.Files))
	}
	for i := range serial.Files {
		if serial.Files[i].Path != parallel.Files[i].Path {
			t.Errorf("Files[%d] path mismatch: serial=%s, parallel=%s",
				i, serial.Files[i].Path, parallel.Files[i].Path)
		}
	}
}

func TestRun_ContextCancellation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, "a.md", "b.md", "c.md")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Run(ctx, runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got: %v", err)
	}
}

func TestRun_DistinctDocumentIdentities(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	names := make([]string, 0, 12)
	for idx := range 12 {
		names = append(names, string(rune('a'+idx))+".md")
	}
	writeTree(t, dir, names...)

	result, err := runner.Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Jobs:       4,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(result.Files) != len(names) {
		t.Fatalf("len(Files) = %d, want %d", len(result.Files), len(names))
	}

	// Documents parsed by concurrent workers must still get distinct
	// identities.
	for i := range result.Files {
		for j := i + 1; j < len(result.Files); j++ {
			if result.Files[i].Document.IsIdentical(result.Files[j].Document) {
				t.Errorf("documents %s and %s share an identity",
					filepath.Base(result.Files[i].Path), filepath.Base(result.Files[j].Path))
			}
		}
	}
}

func TestResult_HasErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result *runner.Result
		want   bool
	}{
		{
			name:   "nil result",
			result: nil,
			want:   false,
		},
		{
			name: "all parsed",
			result: &runner.Result{
				Stats: runner.Stats{FilesParsed: 3},
			},
			want: false,
		},
		{
			name: "one errored",
			result: &runner.Result{
				Stats: runner.Stats{FilesParsed: 2, FilesErrored: 1},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.result.HasErrors(); got != tt.want {
				t.Errorf("HasErrors() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResult_HasDiagnostics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result *runner.Result
		want   bool
	}{
		{
			name:   "nil result",
			result: nil,
			want:   false,
		},
		{
			name: "no diagnostics",
			result: &runner.Result{
				Stats: runner.Stats{DiagnosticsTotal: 0},
			},
			want: false,
		},
		{
			name: "with diagnostics",
			result: &runner.Result{
				Stats: runner.Stats{DiagnosticsTotal: 3},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.result.HasDiagnostics(); got != tt.want {
				t.Errorf("HasDiagnostics() = %v, want %v", got, tt.want)
			}
		})
	}
}
