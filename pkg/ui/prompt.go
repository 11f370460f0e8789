package ui

import (
	"context"

	"github.com/arthur-debert/archup/pkg/errors"
	"github.com/charmbracelet/huh"
)

// Prompter blocks until the operator acknowledges a prompt. The answer
// itself is advisory; callers verify the actual condition afterwards.
type Prompter interface {
	Confirm(ctx context.Context, title, description string) error
}

// huhPrompter renders an interactive confirm with huh
type huhPrompter struct{}

// NewPrompter creates the interactive terminal prompter
func NewPrompter() Prompter {
	return &huhPrompter{}
}

func (p *huhPrompter) Confirm(ctx context.Context, title, description string) error {
	// Either answer proceeds; the probe that follows is the real gate
	confirmed := true
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Continue").
				Negative("Skip").
				Value(&confirmed),
		),
	).RunWithContext(ctx)
	if err != nil {
		return errors.Wrap(err, errors.ErrPromptFailed, "operator prompt failed")
	}
	return nil
}

// autoConfirm satisfies every prompt without rendering anything, for
// unattended runs
type autoConfirm struct{}

// AutoConfirm creates a Prompter that never blocks
func AutoConfirm() Prompter {
	return &autoConfirm{}
}

func (p *autoConfirm) Confirm(ctx context.Context, title, description string) error {
	return nil
}
