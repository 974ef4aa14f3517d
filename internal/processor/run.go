package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/srt-strip/internal/converter"
)

// Failure records a path whose conversion returned an error.
type Failure struct {
	Path string
	Err  error
}

// Result summarizes a Run. Remaining holds paths never attempted because the
// run stopped early.
type Result struct {
	Converted   []string
	Skipped     []string
	Failed      []Failure
	Remaining   []string
	Interrupted error
}

// Err joins every failure and the interruption cause, or returns nil.
func (r Result) Err() error {
	var errs []error
	for _, f := range r.Failed {
		errs = append(errs, fmt.Errorf("%s: %w", f.Path, f.Err))
	}
	if r.Interrupted != nil {
		errs = append(errs, r.Interrupted)
	}
	return errors.Join(errs...)
}

// Run converts each .srt path in order. Other paths are skipped without
// output. With conversion.on_error=abort the first failure ends the run and
// later paths are left untouched.
func (p *implProcessor) Run(ctx context.Context, paths []string) Result {
	startTime := time.Now()
	var res Result

	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			p.logger.Warn(ctx, "Run interrupted before %s: %v", path, err)
			res.Interrupted = err
			res.Remaining = append(res.Remaining, paths[i:]...)
			break
		}

		if !converter.IsSubtitle(path) {
			p.logger.Debug(ctx, "Ignoring non-subtitle file: %s", path)
			res.Skipped = append(res.Skipped, path)
			continue
		}

		txtPath, err := p.Process(ctx, path)
		if err != nil {
			p.logger.Error(ctx, "Failed to convert %s: %v", path, err)
			res.Failed = append(res.Failed, Failure{Path: path, Err: err})
			if !p.cfg.ContinueOnError() {
				res.Remaining = append(res.Remaining, paths[i+1:]...)
				break
			}
			continue
		}

		res.Converted = append(res.Converted, txtPath)
	}

	p.logger.Info(ctx, "Run complete in %s: %d converted, %d skipped, %d failed",
		time.Since(startTime), len(res.Converted), len(res.Skipped), len(res.Failed))

	return res
}
