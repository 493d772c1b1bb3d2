package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studyflow/studyflow/internal/cli/formatter"
	"github.com/studyflow/studyflow/internal/domain"
	"github.com/studyflow/studyflow/internal/service"
)

func newPrefsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Manage scheduling preferences",
	}

	cmd.AddCommand(
		newPrefsShowCmd(app),
		newPrefsSetCmd(app),
		newPrefsSetupCmd(app),
	)

	return cmd
}

func newPrefsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Prefs.Get(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatPreferences(p))
			return nil
		},
	}
}

func formatPreferences(p domain.Preferences) string {
	onOff := func(b bool) string {
		if b {
			return formatter.StyleGreen.Render("on")
		}
		return formatter.Dim("off")
	}
	rows := [][]string{
		{"wake hour", fmt.Sprintf("%d:00", p.WakeHour)},
		{"sleep hour", fmt.Sprintf("%d:00", p.SleepHour)},
		{"focus minutes", fmt.Sprintf("%d", p.FocusMinutes)},
		{"intensity", string(p.Intensity)},
		{"breaks", onOff(p.IncludeBreaks)},
		{"procrastination buffer", fmt.Sprintf("%d%%", p.ProcrastinationBufferPct)},
		{"weekends", onOff(p.IncludeWeekends)},
		{"horizon days", fmt.Sprintf("%d", p.HorizonDays)},
	}
	return formatter.RenderTable([]string{"PREFERENCE", "VALUE"}, rows)
}

func newPrefsSetCmd(app *App) *cobra.Command {
	var wake, sleep, focus, buffer, horizon int
	var intensity string
	var breaks, weekends bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update individual preferences via flags",
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := service.PreferencesPatch{Intensity: intensity}
			if cmd.Flags().Changed("wake") {
				patch.WakeHour = &wake
			}
			if cmd.Flags().Changed("sleep") {
				patch.SleepHour = &sleep
			}
			if cmd.Flags().Changed("focus") {
				patch.FocusMinutes = &focus
			}
			if cmd.Flags().Changed("buffer") {
				patch.ProcrastinationBufferPct = &buffer
			}
			if cmd.Flags().Changed("horizon") {
				patch.HorizonDays = &horizon
			}
			if cmd.Flags().Changed("breaks") {
				patch.IncludeBreaks = &breaks
			}
			if cmd.Flags().Changed("weekends") {
				patch.IncludeWeekends = &weekends
			}

			p, err := app.Prefs.Update(context.Background(), patch)
			if err != nil {
				return err
			}
			app.Planner.InvalidateCache()
			fmt.Fprint(cmd.OutOrStdout(), formatPreferences(p))
			return nil
		},
	}

	cmd.Flags().IntVar(&wake, "wake", 0, "Wake hour (0-23)")
	cmd.Flags().IntVar(&sleep, "sleep", 0, "Sleep hour (0-23)")
	cmd.Flags().IntVar(&focus, "focus", 0, "Focus minutes (15-60)")
	cmd.Flags().StringVar(&intensity, "intensity", "", "relaxed|balanced|intensive")
	cmd.Flags().BoolVar(&breaks, "breaks", true, "Schedule short breaks")
	cmd.Flags().IntVar(&buffer, "buffer", 0, "Procrastination buffer percent (0-100)")
	cmd.Flags().BoolVar(&weekends, "weekends", true, "Include weekends")
	cmd.Flags().IntVar(&horizon, "horizon", 0, "Planning horizon in days (1-120)")
	return cmd
}

func newPrefsSetupCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Interactive preference setup",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Prefs.Get(ctx)
			if err != nil {
				return err
			}

			form, apply := wizardPreferences(&p)
			if err := form.Run(); err != nil {
				return err
			}
			apply()

			if err := app.Prefs.Save(ctx, p); err != nil {
				return err
			}
			app.Planner.InvalidateCache()
			fmt.Fprintln(cmd.OutOrStdout(), "Preferences saved.")
			fmt.Fprint(cmd.OutOrStdout(), formatPreferences(p))
			return nil
		},
	}
}
