package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/studyflow/studyflow/internal/cli/formatter"
	"github.com/studyflow/studyflow/internal/domain"
)

// studyflowHuhTheme returns a custom huh theme using the Gruvbox palette.
func studyflowHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardPreferences builds the interactive preference setup form. The
// returned apply func copies the validated answers back into p and must be
// called after the form runs without error.
func wizardPreferences(p *domain.Preferences) (*huh.Form, func()) {
	wake := strconv.Itoa(p.WakeHour)
	sleep := strconv.Itoa(p.SleepHour)
	focus := strconv.Itoa(p.FocusMinutes)
	horizon := strconv.Itoa(p.HorizonDays)
	intensity := string(p.Intensity)

	hourValidator := func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 || n > 23 {
			return fmt.Errorf("enter an hour between 0 and 23")
		}
		return nil
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Wake hour").
				Description("Hour you start your day (0-23)").
				Validate(hourValidator).
				Value(&wake),
			huh.NewInput().
				Title("Sleep hour").
				Description("Hour you wind down (0-23)").
				Validate(hourValidator).
				Value(&sleep),
			huh.NewInput().
				Title("Focus minutes").
				Description("Length of one study session (15-60)").
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 15 || n > 60 {
						return fmt.Errorf("enter minutes between 15 and 60")
					}
					return nil
				}).
				Value(&focus),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Intensity").
				Options(
					huh.NewOption("Relaxed — fewer sessions", string(domain.IntensityRelaxed)),
					huh.NewOption("Balanced", string(domain.IntensityBalanced)),
					huh.NewOption("Intensive — pack the day", string(domain.IntensityIntensive)),
				).
				Value(&intensity),
			huh.NewConfirm().
				Title("Schedule short breaks?").
				Value(&p.IncludeBreaks),
			huh.NewConfirm().
				Title("Include weekends?").
				Value(&p.IncludeWeekends),
			huh.NewInput().
				Title("Horizon days").
				Description("How many days ahead to plan (1-120)").
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 1 || n > 120 {
						return fmt.Errorf("enter days between 1 and 120")
					}
					return nil
				}).
				Value(&horizon),
		),
	).WithTheme(studyflowHuhTheme()).WithShowHelp(false)

	apply := func() {
		p.WakeHour, _ = strconv.Atoi(wake)
		p.SleepHour, _ = strconv.Atoi(sleep)
		p.FocusMinutes, _ = strconv.Atoi(focus)
		p.HorizonDays, _ = strconv.Atoi(horizon)
		p.Intensity = domain.Intensity(intensity)
	}
	return form, apply
}
