package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/studyflow/studyflow/internal/cli/formatter"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Parse syllabus text into courses and deadlines",
		Long: "Reads raw syllabus text from FILE (or stdin when FILE is \"-\"),\n" +
			"extracts course codes and dated deadlines, and stores them.\n" +
			"Unrecognizable input still yields a placeholder course.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw []byte
			var sourceName string
			var err error

			if args[0] == "-" {
				raw, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
			} else {
				raw, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("reading %s: %w", args[0], err)
				}
				sourceName = filepath.Base(args[0])
			}

			summary, err := app.Planner.ImportText(context.Background(), string(raw), sourceName)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if summary.Fallback {
				fmt.Fprintln(out, formatter.Dim("No course code recognized; created a placeholder course."))
			}
			for _, c := range summary.Courses {
				fmt.Fprintf(out, "Course   %s  %s\n", formatter.Bold(c.Code), c.Name)
			}
			for _, d := range summary.Deadlines {
				fmt.Fprintf(out, "Deadline %s  %s (%s)\n", d.Date.Format("2006-01-02"), d.Title, d.Type)
			}
			if summary.SkippedDupes > 0 {
				fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("Skipped %d already-tracked deadline(s).", summary.SkippedDupes)))
			}
			return nil
		},
	}
}
