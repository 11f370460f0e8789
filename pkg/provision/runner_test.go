// pkg/provision/runner_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test sequential execution, the root precondition, skip
// semantics, fail-fast abort, and dry-run behavior

package provision_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/arthur-debert/archup/pkg/errors"
	"github.com/arthur-debert/archup/pkg/provision"
	"github.com/arthur-debert/archup/pkg/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRunner(out *bytes.Buffer, dryRun bool) *provision.Runner {
	return provision.NewRunner(provision.RunnerOptions{
		Out:    out,
		Euid:   func() int { return 1000 },
		DryRun: dryRun,
	})
}

func recordingStep(name string, order *[]string) provision.Step {
	return provision.Step{
		Name:    name,
		Summary: "test step",
		Run: func(ctx context.Context) error {
			*order = append(*order, name)
			return nil
		},
	}
}

func TestRunExecutesInDeclarationOrder(t *testing.T) {
	var order []string
	steps := []provision.Step{
		recordingStep("first", &order),
		recordingStep("second", &order),
		recordingStep("third", &order),
	}

	var out bytes.Buffer
	results, err := newRunner(&out, false).Run(context.Background(), steps)

	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, order)
	require.Len(t, results, 3)
	for _, r := range results {
		assert.Equal(t, style.StatusDone, r.Status)
	}
}

func TestRunAsRootRefusesBeforeAnyStep(t *testing.T) {
	var order []string
	steps := []provision.Step{recordingStep("first", &order)}

	var out bytes.Buffer
	runner := provision.NewRunner(provision.RunnerOptions{
		Out:  &out,
		Euid: func() int { return 0 },
	})

	results, err := runner.Run(context.Background(), steps)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRunAsRoot))
	assert.Empty(t, results)
	assert.Empty(t, order, "no step may execute as root")
}

func TestRunAbortsOnFirstFailure(t *testing.T) {
	var order []string
	boom := errors.New(errors.ErrCommandRun, "pacman exploded")
	steps := []provision.Step{
		recordingStep("first", &order),
		{
			Name: "second",
			Run:  func(ctx context.Context) error { return boom },
		},
		recordingStep("third", &order),
	}

	var out bytes.Buffer
	results, err := newRunner(&out, false).Run(context.Background(), steps)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStepFailed))
	assert.True(t, errors.HasErrorCode(err, errors.ErrCommandRun), "cause stays in the chain")
	assert.Contains(t, err.Error(), "second")

	assert.Equal(t, []string{"first"}, order, "steps after the failure must not run")
	require.Len(t, results, 2)
	assert.Equal(t, style.StatusDone, results[0].Status)
	assert.Equal(t, style.StatusFailed, results[1].Status)
}

func TestRunSkipsWhenCheckReportsDone(t *testing.T) {
	ran := false
	steps := []provision.Step{
		{
			Name:     "guarded",
			Check:    func(ctx context.Context) (bool, error) { return true, nil },
			DoneNote: "already there",
			Run: func(ctx context.Context) error {
				ran = true
				return nil
			},
		},
	}

	var out bytes.Buffer
	results, err := newRunner(&out, false).Run(context.Background(), steps)

	require.NoError(t, err)
	assert.False(t, ran, "a done step must not run")
	require.Len(t, results, 1)
	assert.Equal(t, style.StatusSkipped, results[0].Status)
	assert.Equal(t, "already there", results[0].Note)
}

func TestRunCheckFailureAborts(t *testing.T) {
	ran := false
	steps := []provision.Step{
		{
			Name:  "guarded",
			Check: func(ctx context.Context) (bool, error) { return false, errors.New(errors.ErrFileAccess, "stat failed") },
			Run: func(ctx context.Context) error {
				ran = true
				return nil
			},
		},
	}

	var out bytes.Buffer
	_, err := newRunner(&out, false).Run(context.Background(), steps)

	require.Error(t, err)
	assert.False(t, ran)
	assert.True(t, errors.HasErrorCode(err, errors.ErrFileAccess))
}

func TestDryRunNeverExecutes(t *testing.T) {
	ran := false
	steps := []provision.Step{
		{
			Name: "mutating",
			Run: func(ctx context.Context) error {
				ran = true
				return nil
			},
		},
		{
			Name:     "guarded",
			Check:    func(ctx context.Context) (bool, error) { return true, nil },
			DoneNote: "already there",
			Run: func(ctx context.Context) error {
				ran = true
				return nil
			},
		},
	}

	var out bytes.Buffer
	results, err := newRunner(&out, true).Run(context.Background(), steps)

	require.NoError(t, err)
	assert.False(t, ran, "dry-run must not execute actions")
	require.Len(t, results, 2)
	assert.Equal(t, style.StatusWould, results[0].Status)
	assert.Equal(t, style.StatusSkipped, results[1].Status, "checks still resolve in dry-run")
}

func TestRunStreamsStepOutput(t *testing.T) {
	var order []string
	steps := []provision.Step{
		recordingStep("network-setup", &order),
		recordingStep("system-update", &order),
	}

	var out bytes.Buffer
	_, err := newRunner(&out, false).Run(context.Background(), steps)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "[1/2]")
	assert.Contains(t, out.String(), "network-setup")
	assert.Contains(t, out.String(), "[2/2]")
	assert.Contains(t, out.String(), "system-update")
}

func TestViews(t *testing.T) {
	results := []provision.Result{
		{Name: "ok", Status: style.StatusDone},
		{Name: "skipped", Status: style.StatusSkipped, Note: "already there"},
		{Name: "bad", Status: style.StatusFailed, Err: errors.New(errors.ErrCommandRun, "exit 1")},
	}

	views := provision.Views(results)

	require.Len(t, views, 3)
	assert.Equal(t, "", views[0].Detail)
	assert.Equal(t, "already there", views[1].Detail)
	assert.Contains(t, views[2].Detail, "exit 1")
}
