package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studyflow/studyflow/internal/cli/formatter"
)

func newCourseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Manage courses",
	}

	cmd.AddCommand(
		newCourseAddCmd(app),
		newCourseListCmd(app),
		newCourseRemoveCmd(app),
	)

	return cmd
}

func newCourseAddCmd(app *App) *cobra.Command {
	var name string
	var difficulty, credits int

	cmd := &cobra.Command{
		Use:   "add CODE",
		Short: "Add or update a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Courses.Add(context.Background(), args[0], name, difficulty, credits)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved course %s (%s)\n", formatter.Bold(c.Code), c.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Course name (defaults to the code)")
	cmd.Flags().IntVar(&difficulty, "difficulty", 0, "Difficulty 1-5 (default 3)")
	cmd.Flags().IntVar(&credits, "credits", 0, "Credit hours 1-6 (default 3)")
	return cmd
}

func newCourseListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tracked courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			courses, err := app.Courses.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCourses(courses))
			return nil
		},
	}
}

func newCourseRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove CODE",
		Short: "Remove a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Courses.Remove(context.Background(), args[0]); err != nil {
				return err
			}
			app.Planner.InvalidateCache()
			fmt.Fprintf(cmd.OutOrStdout(), "Removed course %s\n", args[0])
			return nil
		},
	}
}
