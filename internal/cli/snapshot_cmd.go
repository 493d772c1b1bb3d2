package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/studyflow/studyflow/internal/cli/formatter"
)

func newSnapshotCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Save or restore session state as JSON",
	}

	cmd.AddCommand(
		newSnapshotSaveCmd(app),
		newSnapshotLoadCmd(app),
	)

	return cmd
}

func newSnapshotSaveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "save PATH",
		Short: "Write courses, deadlines, obligations and preferences to a snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Snapshots.Save(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Snapshot written to %s\n", args[0])
			return nil
		},
	}
}

func newSnapshotLoadCmd(app *App) *cobra.Command {
	var replace, yes bool

	cmd := &cobra.Command{
		Use:   "load PATH",
		Short: "Restore state from a snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if replace && !yes && app.IsInteractive != nil && app.IsInteractive() {
				confirmed := false
				form := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().
						Title("Replace all existing courses, deadlines and obligations?").
						Value(&confirmed),
				)).WithTheme(studyflowHuhTheme()).WithShowHelp(false)
				if err := form.Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			summary, err := app.Snapshots.Load(context.Background(), args[0], replace)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Restored %d course(s), %d deadline(s)\n", len(summary.Courses), len(summary.Deadlines))
			if summary.SkippedDupes > 0 {
				fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("Skipped %d deadline(s) already present.", summary.SkippedDupes)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Wipe existing state before restoring")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
