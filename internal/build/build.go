// Package build parses a set of Mix source files in parallel and collects
// the per-file results.
package build

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/mix-lang/mix/internal/ast"
	"github.com/mix-lang/mix/internal/diag"
	"github.com/mix-lang/mix/internal/parser"
)

// Result is the outcome of parsing one file.
type Result struct {
	Path   string
	Source string
	File   *ast.File
	// Diagnostics holds every lexer, parser and read diagnostic for the file.
	Diagnostics diag.List
	// Err is a *parser.FatalError when the parse stopped early, or the read
	// error when the file could not be loaded.
	Err error
}

// Report collects the results of one build, in the order the paths were
// given.
type Report struct {
	ID       uuid.UUID
	Results  []Result
	Duration time.Duration
}

// Diagnostics returns the diagnostics of every file, file by file.
func (r *Report) Diagnostics() diag.List {
	var out diag.List
	for _, res := range r.Results {
		out = append(out, res.Diagnostics...)
	}
	return out
}

// HasErrors reports whether any file produced an error diagnostic or failed.
func (r *Report) HasErrors() bool {
	for _, res := range r.Results {
		if res.Err != nil || res.Diagnostics.HasErrors() {
			return true
		}
	}
	return false
}

// Fatal returns the fatal parse errors of all files joined, or nil.
func (r *Report) Fatal() error {
	var errs []error
	for _, res := range r.Results {
		if errors.Is(res.Err, parser.ErrFatal) {
			errs = append(errs, res.Err)
		}
	}
	return errors.Join(errs...)
}

type Option func(*Driver)

// WithJobs bounds the number of files parsed at the same time. Values below
// one mean runtime.GOMAXPROCS(0).
func WithJobs(n int) Option {
	return func(d *Driver) {
		d.jobs = n
	}
}

// WithLogger sets the logger for per-file debug events. It is also handed to
// every parser.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(d *Driver) {
		d.log = logger
	}
}

// Driver parses files from a filesystem. A Driver is safe for concurrent use.
type Driver struct {
	fs   afero.Fs
	jobs int
	log  logrus.FieldLogger
}

// New returns a driver reading from fs.
func New(fs afero.Fs, opts ...Option) *Driver {
	d := &Driver{fs: fs}
	for _, opt := range opts {
		opt(d)
	}

	if d.jobs < 1 {
		d.jobs = runtime.GOMAXPROCS(0)
	}
	if d.log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		d.log = discard
	}
	return d
}

// Build parses every path, each with its own lexer and parser. Problems in
// the sources are reported through the results; the error is only non-nil
// when ctx is done before all files were parsed.
func (d *Driver) Build(ctx context.Context, paths []string) (*Report, error) {
	report := &Report{
		ID:      uuid.New(),
		Results: make([]Result, len(paths)),
	}
	for i, path := range paths {
		report.Results[i].Path = path
	}
	log := d.log.WithField("build", report.ID.String())
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.jobs)

	for i, path := range paths {
		i, path := i, path
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report.Results[i] = d.parseFile(log.WithField("file", path), path)
			return nil
		})
	}

	// gctx is done once Wait returns.
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	report.Duration = time.Since(start)

	log.WithFields(logrus.Fields{
		"files":    len(paths),
		"duration": report.Duration,
	}).Debug("build finished")

	if err != nil {
		return report, fmt.Errorf("build %s interrupted: %w", report.ID, err)
	}
	return report, nil
}

func (d *Driver) parseFile(log logrus.FieldLogger, path string) Result {
	res := Result{Path: path}

	data, err := afero.ReadFile(d.fs, path)
	if err != nil {
		log.WithError(err).Debug("read failed")
		res.Err = err
		res.Diagnostics = diag.List{{
			Stage:    diag.StageBuild,
			Severity: diag.SeverityError,
			Code:     diag.CodeBuildReadFailed,
			Message:  fmt.Sprintf("cannot read source file: %v", err),
			Span:     diag.Span{Filename: path},
		}}
		return res
	}
	res.Source = string(data)

	res.File, res.Diagnostics, res.Err = parser.Parse(path, res.Source, parser.WithLogger(log))

	log.WithFields(logrus.Fields{
		"diagnostics": len(res.Diagnostics),
		"fatal":       res.Err != nil,
	}).Debug("parsed")
	return res
}
