package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/studyflow/studyflow/internal/cli/formatter"
	"github.com/studyflow/studyflow/internal/domain"
	"github.com/studyflow/studyflow/internal/service"
)

func newDeadlineCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deadline",
		Short: "Manage deadlines",
	}

	cmd.AddCommand(
		newDeadlineAddCmd(app),
		newDeadlineListCmd(app),
		newDeadlineRemoveCmd(app),
	)

	return cmd
}

func newDeadlineAddCmd(app *App) *cobra.Command {
	var date, typeStr, course, priority string
	var hours int

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Add a deadline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := app.Deadlines.Add(context.Background(), service.AddDeadlineInput{
				Title:      args[0],
				Date:       date,
				Type:       typeStr,
				CourseCode: course,
				Priority:   priority,
				StudyHours: hours,
			})
			if err != nil {
				return err
			}
			app.Planner.InvalidateCache()
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %q on %s\n", d.Type, d.Title, d.Date.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&typeStr, "type", "", "assignment|exam|quiz|project|presentation|practical")
	cmd.Flags().StringVar(&course, "course", "", "Course code")
	cmd.Flags().StringVar(&priority, "priority", "", "low|medium|high (default derives from type)")
	cmd.Flags().IntVar(&hours, "hours", 0, "Study hours needed (default derives from type)")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func newDeadlineListCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List deadlines",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			var deadlines []*domain.Deadline
			var err error
			if days > 0 {
				deadlines, err = app.Deadlines.Upcoming(ctx, time.Now(), days)
			} else {
				deadlines, err = app.Deadlines.List(ctx)
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDeadlines(deadlines, time.Now()))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Only show deadlines due within N days")
	return cmd
}

func newDeadlineRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a deadline (accepts a unique ID prefix)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			deadlines, err := app.Deadlines.List(ctx)
			if err != nil {
				return err
			}
			ids := make([]string, 0, len(deadlines))
			for _, d := range deadlines {
				ids = append(ids, d.ID)
			}
			id, err := resolveID(ids, args[0], "deadline")
			if err != nil {
				return err
			}
			if err := app.Deadlines.Remove(ctx, id); err != nil {
				return err
			}
			app.Planner.InvalidateCache()
			fmt.Fprintf(cmd.OutOrStdout(), "Removed deadline %s\n", id)
			return nil
		},
	}
}
