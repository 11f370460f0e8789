package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/archup/pkg/command"
	"github.com/arthur-debert/archup/pkg/filesystem"
	"github.com/arthur-debert/archup/pkg/paths"
	"github.com/arthur-debert/archup/pkg/provision"
	"github.com/arthur-debert/archup/pkg/ui"
	"github.com/spf13/cobra"
)

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "plan",
		Short:   MsgPlanShort,
		Long:    MsgPlanLong,
		Example: MsgPlanExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")

			p, err := paths.New("")
			if err != nil {
				return err
			}

			// The plan is built with the same wiring as a real run so
			// the export matches what would execute. Nothing is invoked
			// here; steps stay inert descriptions.
			env := provision.Env{
				Cmd:    command.NewOS(),
				FS:     filesystem.NewOS(),
				Paths:  p,
				Prompt: ui.AutoConfirm(),
				Shell:  os.Getenv("SHELL"),
			}

			m := provision.Default()
			doc := provision.BuildDoc(m, provision.Plan(env, m))

			out, err := doc.Render(format)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringP("format", "f", provision.FormatText, MsgFlagFormat)

	return cmd
}
