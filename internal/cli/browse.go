package cli

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studyflow/studyflow/internal/cli/formatter"
	"github.com/studyflow/studyflow/internal/domain"
)

// browseModel pages through a generated schedule one day at a time.
type browseModel struct {
	dates    []string
	schedule map[string]domain.DaySchedule
	idx      int
	viewport viewport.Model
	ready    bool
}

func newBrowseModel(schedule map[string]domain.DaySchedule) browseModel {
	dates := make([]string, 0, len(schedule))
	for d := range schedule {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return browseModel{dates: dates, schedule: schedule}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-3)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 3
		}
		m.viewport.SetContent(m.currentDay())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "l", "right", "tab":
			if m.idx < len(m.dates)-1 {
				m.idx++
				m.viewport.SetContent(m.currentDay())
				m.viewport.GotoTop()
			}
			return m, nil
		case "h", "left", "shift+tab":
			if m.idx > 0 {
				m.idx--
				m.viewport.SetContent(m.currentDay())
				m.viewport.GotoTop()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m browseModel) currentDay() string {
	if len(m.dates) == 0 {
		return formatter.Dim("no days in horizon")
	}
	return formatter.FormatDay(m.schedule[m.dates[m.idx]])
}

func (m browseModel) View() string {
	if !m.ready {
		return "loading..."
	}
	position := formatter.Dim(fmt.Sprintf("day %d/%d", m.idx+1, len(m.dates)))
	help := formatter.Dim("h/l: prev/next day · j/k: scroll · q: quit")
	return fmt.Sprintf("%s\n%s  %s\n", m.viewport.View(), position, help)
}

func runBrowser(schedule map[string]domain.DaySchedule) error {
	p := tea.NewProgram(newBrowseModel(schedule), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
