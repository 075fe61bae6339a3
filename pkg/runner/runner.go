package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/gomarkup/internal/logging"
	"github.com/yaklabco/gomarkup/pkg/parser"
)

// Run discovers files under opts.Paths and parses them concurrently
// with a bounded worker pool. Results come back in path order
// regardless of worker scheduling, and the context cancels both
// discovery and in-flight parsing.
func Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileResult, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	logger := opts.logger()
	logger.Debug("parsing files",
		logging.FieldFiles, len(files),
		logging.FieldJobs, jobs)

	workCh := make(chan string)
	outCh := make(chan FileResult)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(ctx, workCh, outCh, opts)
		}()
	}

	// Feed work in a separate goroutine.
	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	// Close outCh when all workers are done.
	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers finish out of order; key by path and rebuild in
	// discovery order.
	outcomes := make(map[string]FileResult, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	return result, nil
}

// worker parses files from workCh and sends outcomes to outCh.
func worker(ctx context.Context, workCh <-chan string, outCh chan<- FileResult, opts Options) {
	logger := opts.logger()
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := FileResult{Path: path}
		doc, err := parser.ParseFile(ctx, path, opts.Parser)
		if err != nil {
			outcome.Error = fmt.Errorf("parse %s: %w", path, err)
			logger.Debug("parse failed",
				logging.FieldPath, path,
				logging.FieldError, err)
		} else {
			outcome.Document = doc
			outcome.Diagnostics = collectDiagnostics(doc)
			logger.Debug("parsed file", logging.FieldPath, path)
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}
