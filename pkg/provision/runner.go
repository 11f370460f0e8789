package provision

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/arthur-debert/archup/pkg/errors"
	"github.com/arthur-debert/archup/pkg/logging"
	"github.com/arthur-debert/archup/pkg/style"
	"github.com/rs/zerolog"
)

// RootDiagnostic is printed when the tool is started as root
const RootDiagnostic = "archup must not run as root; it escalates with sudo where needed"

// RunnerOptions contains options for the runner
type RunnerOptions struct {
	// Out receives operator-facing step output, stdout when nil
	Out io.Writer

	// Euid supplies the effective UID, os.Geteuid when nil
	Euid func() int

	// DryRun previews the sequence: checks run, actions do not
	DryRun bool
}

// Runner executes a step sequence
type Runner struct {
	out    io.Writer
	euid   func() int
	dryRun bool
	logger zerolog.Logger
}

// NewRunner creates a runner
func NewRunner(opts RunnerOptions) *Runner {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	euid := opts.Euid
	if euid == nil {
		euid = os.Geteuid
	}
	return &Runner{
		out:    out,
		euid:   euid,
		dryRun: opts.DryRun,
		logger: logging.GetLogger("provision"),
	}
}

// Run executes steps in declaration order, aborting on the first
// failure. The returned results cover every step that was reached.
// Nothing runs, not even checks, when the effective UID is root:
// every step escalates through sudo on its own, and a root run would
// scatter root-owned files through the home directory.
func (r *Runner) Run(ctx context.Context, steps []Step) ([]Result, error) {
	if r.euid() == 0 {
		return nil, errors.New(errors.ErrRunAsRoot, RootDiagnostic)
	}

	results := make([]Result, 0, len(steps))
	for i, step := range steps {
		fmt.Fprintln(r.out, style.RenderStepHeader(style.StepView{
			Index:   i + 1,
			Total:   len(steps),
			Name:    step.Name,
			Summary: step.Summary,
		}))

		result := r.runStep(ctx, step)
		results = append(results, result)

		fmt.Fprintln(r.out, style.RenderResult(style.ResultView{
			Name:   result.Name,
			Status: result.Status,
			Detail: result.Note,
		}))

		if result.Err != nil {
			return results, errors.Wrapf(result.Err, errors.ErrStepFailed,
				"step %s failed", step.Name)
		}
	}
	return results, nil
}

func (r *Runner) runStep(ctx context.Context, step Step) Result {
	done := logging.LogOperationStart(r.logger, step.Name)
	defer done()

	start := time.Now()

	if step.Check != nil {
		alreadyDone, err := step.Check(ctx)
		if err != nil {
			return Result{Name: step.Name, Status: style.StatusFailed, Err: err, Duration: time.Since(start)}
		}
		if alreadyDone {
			r.logger.Debug().Str("step", step.Name).Msg("Nothing to do")
			return Result{Name: step.Name, Status: style.StatusSkipped, Note: step.DoneNote, Duration: time.Since(start)}
		}
	}

	if r.dryRun {
		return Result{Name: step.Name, Status: style.StatusWould, Duration: time.Since(start)}
	}

	if err := step.Run(ctx); err != nil {
		return Result{Name: step.Name, Status: style.StatusFailed, Err: err, Duration: time.Since(start)}
	}
	return Result{Name: step.Name, Status: style.StatusDone, Duration: time.Since(start)}
}
