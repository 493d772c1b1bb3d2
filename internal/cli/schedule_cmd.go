package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/studyflow/studyflow/internal/cli/formatter"
	"github.com/studyflow/studyflow/internal/domain"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Generate and inspect study schedules",
	}

	cmd.AddCommand(
		newScheduleGenerateCmd(app),
		newScheduleShowCmd(app),
	)

	return cmd
}

func parseStart(start string) (time.Time, error) {
	if start == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse("2006-01-02", start)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start date %q (want YYYY-MM-DD): %w", start, err)
	}
	return t, nil
}

func newScheduleGenerateCmd(app *App) *cobra.Command {
	var start string
	var days int
	var variants bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Synthesize the schedule for the coming horizon",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			from, err := parseStart(start)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if variants {
				all, err := app.Planner.Variants(ctx, from, days)
				if err != nil {
					return err
				}
				for _, intensity := range []domain.Intensity{domain.IntensityRelaxed, domain.IntensityBalanced, domain.IntensityIntensive} {
					fmt.Fprintf(out, "%s: %s\n", formatter.Bold(string(intensity)), formatter.ScheduleSummary(all[intensity]))
				}
				return nil
			}

			schedule, err := app.Planner.Generate(ctx, from, days)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Generated: %s\n", formatter.ScheduleSummary(schedule))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "First day of the horizon (default today)")
	cmd.Flags().IntVar(&days, "days", 0, "Horizon length (default from preferences)")
	cmd.Flags().BoolVar(&variants, "variants", false, "Summarize all three intensity renditions")
	return cmd
}

func newScheduleShowCmd(app *App) *cobra.Command {
	var start, date string
	var days int
	var browse bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the schedule (or browse it with --browse)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			from, err := parseStart(start)
			if err != nil {
				return err
			}

			schedule, err := app.Planner.Generate(ctx, from, days)
			if err != nil {
				return err
			}

			if browse {
				return runBrowser(schedule)
			}

			out := cmd.OutOrStdout()
			if date != "" {
				day, ok := schedule[date]
				if !ok {
					return fmt.Errorf("no schedule for %s (outside horizon or excluded weekend)", date)
				}
				fmt.Fprint(out, formatter.FormatDay(day))
				return nil
			}
			fmt.Fprint(out, formatter.FormatSchedule(schedule))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "First day of the horizon (default today)")
	cmd.Flags().IntVar(&days, "days", 0, "Horizon length (default from preferences)")
	cmd.Flags().StringVar(&date, "date", "", "Show a single day (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&browse, "browse", false, "Open the interactive day browser")
	return cmd
}
