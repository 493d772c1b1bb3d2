package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/studyflow/studyflow/internal/cli"
	"github.com/studyflow/studyflow/internal/config"
	"github.com/studyflow/studyflow/internal/db"
	"github.com/studyflow/studyflow/internal/repository"
	"github.com/studyflow/studyflow/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local overrides; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Styled output only on real terminals.
	if cfg.NoColor || !isatty.IsTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	courseRepo := repository.NewSQLiteCourseRepo(database)
	deadlineRepo := repository.NewSQLiteDeadlineRepo(database)
	obligationRepo := repository.NewSQLiteObligationRepo(database)
	prefsRepo := repository.NewSQLitePreferencesRepo(database)

	// Service telemetry goes to stderr only when requested; piped output
	// stays clean.
	var obsWriter io.Writer
	if cfg.LogUseCases {
		obsWriter = os.Stderr
	}
	observer := service.NewLogUseCaseObserver(obsWriter)

	planner := service.NewPlannerService(courseRepo, deadlineRepo, obligationRepo, prefsRepo, observer)

	app := &cli.App{
		Courses:     service.NewCourseService(courseRepo),
		Deadlines:   service.NewDeadlineService(deadlineRepo),
		Obligations: service.NewObligationService(obligationRepo),
		Prefs:       service.NewPreferencesService(prefsRepo),
		Planner:     planner,
		Snapshots:   service.NewSnapshotService(courseRepo, deadlineRepo, obligationRepo, prefsRepo, planner, observer),
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
