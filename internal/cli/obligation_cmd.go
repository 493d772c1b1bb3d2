package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studyflow/studyflow/internal/cli/formatter"
	"github.com/studyflow/studyflow/internal/service"
)

func newObligationCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "obligation",
		Short: "Manage fixed commitments",
	}

	cmd.AddCommand(
		newObligationAddCmd(app),
		newObligationListCmd(app),
		newObligationRemoveCmd(app),
	)

	return cmd
}

func newObligationAddCmd(app *App) *cobra.Command {
	var typeStr, start, end, startDate, endDate string
	var days []string

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Add an obligation (recurring via --days, one-off via --from/--to)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := app.Obligations.Add(context.Background(), service.AddObligationInput{
				Title:     args[0],
				Type:      typeStr,
				Days:      days,
				StartTime: start,
				EndTime:   end,
				StartDate: startDate,
				EndDate:   endDate,
			})
			if err != nil {
				return err
			}
			app.Planner.InvalidateCache()
			fmt.Fprintf(cmd.OutOrStdout(), "Added obligation %q\n", o.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&typeStr, "type", "", "work|meeting|appointment|exercise|social|class|other")
	cmd.Flags().StringSliceVar(&days, "days", nil, "Weekdays for recurring obligations (e.g. mon,wed,fri)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (e.g. 9:00 or 2:30 PM)")
	cmd.Flags().StringVar(&end, "end", "", "End time")
	cmd.Flags().StringVar(&startDate, "from", "", "First date for one-off obligations (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "to", "", "Last date (defaults to --from)")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func newObligationListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List obligations",
		RunE: func(cmd *cobra.Command, args []string) error {
			obligations, err := app.Obligations.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatObligations(obligations))
			return nil
		},
	}
}

func newObligationRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove an obligation (accepts a unique ID prefix)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			obligations, err := app.Obligations.List(ctx)
			if err != nil {
				return err
			}
			ids := make([]string, 0, len(obligations))
			for _, o := range obligations {
				ids = append(ids, o.ID)
			}
			id, err := resolveID(ids, args[0], "obligation")
			if err != nil {
				return err
			}
			if err := app.Obligations.Remove(ctx, id); err != nil {
				return err
			}
			app.Planner.InvalidateCache()
			fmt.Fprintf(cmd.OutOrStdout(), "Removed obligation %s\n", id)
			return nil
		},
	}
}
