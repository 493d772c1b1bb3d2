package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyflow/studyflow/internal/repository"
	"github.com/studyflow/studyflow/internal/service"
	"github.com/studyflow/studyflow/internal/testutil"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	courses := repository.NewSQLiteCourseRepo(database)
	deadlines := repository.NewSQLiteDeadlineRepo(database)
	obligations := repository.NewSQLiteObligationRepo(database)
	prefs := repository.NewSQLitePreferencesRepo(database)

	planner := service.NewPlannerService(courses, deadlines, obligations, prefs, service.NoopUseCaseObserver{})
	return &App{
		Courses:     service.NewCourseService(courses),
		Deadlines:   service.NewDeadlineService(deadlines),
		Obligations: service.NewObligationService(obligations),
		Prefs:       service.NewPreferencesService(prefs),
		Planner:     planner,
		Snapshots:   service.NewSnapshotService(courses, deadlines, obligations, prefs, planner, service.NoopUseCaseObserver{}),
	}
}

func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestCourseAddListRemove(t *testing.T) {
	app := newTestApp(t)

	out, err := execute(t, app, "course", "add", "bio1205", "--name", "Intro to Biology", "--difficulty", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "BIO1205")

	out, err = execute(t, app, "course", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Intro to Biology")

	_, err = execute(t, app, "course", "remove", "BIO1205")
	require.NoError(t, err)

	out, err = execute(t, app, "course", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "no courses yet")
}

func TestDeadlineAddAndListWithinWindow(t *testing.T) {
	app := newTestApp(t)

	out, err := execute(t, app, "deadline", "add", "Final Exam",
		"--date", "2099-12-10", "--type", "exam", "--course", "BIO1205")
	require.NoError(t, err)
	assert.Contains(t, out, "Final Exam")

	out, err = execute(t, app, "deadline", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "2099-12-10")

	out, err = execute(t, app, "deadline", "list", "--days", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "no deadlines")
}

func TestDeadlineRemoveByPrefix(t *testing.T) {
	app := newTestApp(t)

	_, err := execute(t, app, "deadline", "add", "Quiz 1", "--date", "2099-10-01", "--type", "quiz")
	require.NoError(t, err)

	deadlines, err := app.Deadlines.List(t.Context())
	require.NoError(t, err)
	require.Len(t, deadlines, 1)
	prefix := deadlines[0].ID[:8]

	out, err := execute(t, app, "deadline", "remove", prefix)
	require.NoError(t, err)
	assert.Contains(t, out, "Removed deadline")

	_, err = execute(t, app, "deadline", "remove", prefix)
	assert.Error(t, err)
}

func TestObligationAddRejectsMissingTimes(t *testing.T) {
	app := newTestApp(t)
	_, err := execute(t, app, "obligation", "add", "Standup", "--days", "mon")
	assert.Error(t, err)
}

func TestObligationAddAndList(t *testing.T) {
	app := newTestApp(t)

	_, err := execute(t, app, "obligation", "add", "Morning shift",
		"--type", "work", "--days", "mon,wed", "--start", "9:00", "--end", "13:00")
	require.NoError(t, err)

	out, err := execute(t, app, "obligation", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Morning shift")
	assert.Contains(t, out, "Mon,Wed")
}

func TestImportFromFile(t *testing.T) {
	app := newTestApp(t)

	path := filepath.Join(t.TempDir(), "syllabus.txt")
	text := "BIOLOGY 1205 - Intro to Bio\nThe midterm exam is on September 13, 2024."
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))

	out, err := execute(t, app, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "BIO1205")
	assert.Contains(t, out, "2024-09-13")
}

func TestImportFromStdin(t *testing.T) {
	app := newTestApp(t)

	root := NewRootCmd(app)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetIn(strings.NewReader("Welcome to introductory chemistry."))
	root.SetArgs([]string{"import", "-"})
	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "placeholder course")
	assert.Contains(t, buf.String(), "CHM101")
}

func TestPrefsShowAndSet(t *testing.T) {
	app := newTestApp(t)

	out, err := execute(t, app, "prefs", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "balanced")

	out, err = execute(t, app, "prefs", "set", "--wake", "6", "--intensity", "intensive", "--weekends=false")
	require.NoError(t, err)
	assert.Contains(t, out, "6:00")
	assert.Contains(t, out, "intensive")

	_, err = execute(t, app, "prefs", "set", "--wake", "99")
	assert.Error(t, err)
}

func TestScheduleGenerateAndShow(t *testing.T) {
	app := newTestApp(t)

	_, err := execute(t, app, "course", "add", "BIO1205", "--name", "Bio")
	require.NoError(t, err)

	out, err := execute(t, app, "schedule", "generate", "--start", "2024-09-09", "--days", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "3 days")

	out, err = execute(t, app, "schedule", "show", "--start", "2024-09-09", "--days", "1", "--date", "2024-09-09")
	require.NoError(t, err)
	assert.Contains(t, out, "Monday, September 9 2024")
	assert.Contains(t, out, "Lunch")

	_, err = execute(t, app, "schedule", "show", "--start", "2024-09-09", "--days", "1", "--date", "2024-09-10")
	assert.Error(t, err)
}

func TestScheduleGenerateVariants(t *testing.T) {
	app := newTestApp(t)

	out, err := execute(t, app, "schedule", "generate", "--variants", "--start", "2024-09-09", "--days", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "relaxed")
	assert.Contains(t, out, "balanced")
	assert.Contains(t, out, "intensive")
}

func TestSnapshotSaveAndLoadRoundTrip(t *testing.T) {
	app := newTestApp(t)

	_, err := execute(t, app, "course", "add", "CHM2045", "--name", "General Chemistry")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "state.json")
	out, err := execute(t, app, "snapshot", "save", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Snapshot written")

	fresh := newTestApp(t)
	out, err = execute(t, fresh, "snapshot", "load", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Restored 1 course(s)")

	out, err = execute(t, fresh, "course", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "CHM2045")
}

func TestResolveID(t *testing.T) {
	ids := []string{"abc-123", "abd-456"}

	got, err := resolveID(ids, "abc-123", "deadline")
	require.NoError(t, err)
	assert.Equal(t, "abc-123", got)

	got, err = resolveID(ids, "abd", "deadline")
	require.NoError(t, err)
	assert.Equal(t, "abd-456", got)

	_, err = resolveID(ids, "ab", "deadline")
	assert.Error(t, err)

	_, err = resolveID(ids, "zzz", "deadline")
	assert.Error(t, err)
}
