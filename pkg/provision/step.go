// Package provision defines the fixed step sequence that turns a
// fresh Arch install into a working machine, and the runner that
// executes it. Steps run in declaration order, at most once per
// invocation, and the first failure aborts the whole run. There is no
// retry and no rollback; re-running the tool is the recovery story.
package provision

import (
	"context"
	"time"

	"github.com/arthur-debert/archup/pkg/style"
)

// Step is a pure description of one provisioning action
type Step struct {
	// Name is the stable identifier shown to the operator
	Name string

	// Summary is one line of operator text describing the action
	Summary string

	// Check reports whether the step's work is already done. A nil
	// Check means the step always runs; its action must then be safe
	// to repeat.
	Check func(ctx context.Context) (bool, error)

	// DoneNote is shown when Check reports done
	DoneNote string

	// Run performs the action
	Run func(ctx context.Context) error
}

// Result records one step's outcome
type Result struct {
	Name     string
	Status   style.Status
	Note     string
	Err      error
	Duration time.Duration
}

// Views converts results for the renderer
func Views(results []Result) []style.ResultView {
	views := make([]style.ResultView, len(results))
	for i, r := range results {
		detail := r.Note
		if r.Err != nil {
			detail = r.Err.Error()
		}
		views[i] = style.ResultView{
			Name:   r.Name,
			Status: r.Status,
			Detail: detail,
		}
	}
	return views
}
