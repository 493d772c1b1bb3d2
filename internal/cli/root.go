package cli

import (
	"github.com/spf13/cobra"

	"github.com/studyflow/studyflow/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Courses     service.CourseService
	Deadlines   service.DeadlineService
	Obligations service.ObligationService
	Prefs       service.PreferencesService
	Planner     service.PlannerService
	Snapshots   service.SnapshotService

	// IsInteractive reports whether stdin is a terminal; destructive
	// prompts are skipped when it is nil or returns false.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "studyflow" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "studyflow",
		Short: "Syllabus-to-schedule study planner",
		Long: "StudyFlow turns raw syllabus text into tracked courses and deadlines,\n" +
			"then synthesizes a day-by-day study schedule around your fixed commitments.",
		SilenceUsage: true,
	}

	root.AddCommand(
		newCourseCmd(app),
		newDeadlineCmd(app),
		newObligationCmd(app),
		newImportCmd(app),
		newPrefsCmd(app),
		newScheduleCmd(app),
		newSnapshotCmd(app),
	)

	return root
}
