package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"biodesign/internal/design"
	"biodesign/internal/export"
	"biodesign/internal/history"
	"biodesign/internal/profile"
)

// Tab identifies the dashboard pages.
type Tab int

const (
	TabProcess Tab = iota
	TabMedia
	TabControls
	TabPAT
	TabSafety
	TabProfile
	TabSummary
	TabHistory
	tabCount
)

var tabTitles = [tabCount]string{"Process", "Media", "Controls", "PAT", "Safety", "Profile", "Summary", "History"}

// ExportDirName is where the dashboard's ctrl+e export lands.
const ExportDirName = "exports"

// Dashboard is the root model of the interactive TUI.
type Dashboard struct {
	d          *design.Design
	designPath string
	store      *history.Store
	styles     Styles

	tab      Tab
	process  ProcessPageModel
	media    MediaPageModel
	controls ControlsPageModel
	pat      PATPageModel
	safety   SafetyPageModel
	profile  ProfilePageModel
	summary  SummaryPageModel
	history  HistoryPageModel

	status    string
	statusErr bool
	width     int
	height    int
}

// NewDashboard builds the dashboard over a working design, the file it is
// saved to, and the session history store.
func NewDashboard(d *design.Design, designPath string, store *history.Store) Dashboard {
	styles := DefaultStyles()
	db := Dashboard{
		d:          d,
		designPath: designPath,
		store:      store,
		styles:     styles,
		process:    NewProcessPageModel(d, styles),
		media:      NewMediaPageModel(d, styles),
		controls:   NewControlsPageModel(d, styles),
		pat:        NewPATPageModel(d, styles),
		safety:     NewSafetyPageModel(d, styles),
		profile:    NewProfilePageModel(styles),
		summary:    NewSummaryPageModel(d, styles),
		history:    NewHistoryPageModel(store, styles),
	}
	if curves, err := profile.ComputeDefault(float64(d.Parameters.Duration)); err == nil {
		db.profile.SetCurves(curves)
	}
	db.status = "Ready"
	return db
}

// Init implements tea.Model.
func (m Dashboard) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.profile.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			// Only quit from the read-only pages; forms need the letter.
			if m.tab == TabProfile || m.tab == TabSummary || m.tab == TabHistory {
				return m, tea.Quit
			}
		case "tab":
			return m.switchTab(1), nil
		case "shift+tab":
			return m.switchTab(-1), nil
		case "ctrl+r":
			return m.recompute(), nil
		case "ctrl+s":
			return m.saveDesign(), nil
		case "ctrl+e":
			return m.exportAll(), nil
		case "x":
			if m.tab == TabHistory {
				if err := m.history.Clear(); err != nil {
					return m.fail(err), nil
				}
				return m.ok("History cleared"), nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.tab {
	case TabProcess:
		m.process, cmd = m.process.Update(msg)
	case TabMedia:
		m.media, cmd = m.media.Update(msg)
	case TabControls:
		m.controls, cmd = m.controls.Update(msg)
	case TabPAT:
		m.pat, cmd = m.pat.Update(msg)
	case TabSafety:
		m.safety, cmd = m.safety.Update(msg)
	case TabProfile:
		m.profile, cmd = m.profile.Update(msg)
	case TabSummary:
		m.summary, cmd = m.summary.Update(msg)
	case TabHistory:
		m.history, cmd = m.history.Update(msg)
	}
	return m, cmd
}

// applyCurrent folds the focused form page back into the design.
func (m *Dashboard) applyCurrent() error {
	switch m.tab {
	case TabProcess:
		return m.process.Apply(m.d)
	case TabMedia:
		return m.media.Apply(m.d)
	case TabControls:
		return m.controls.Apply(m.d)
	case TabPAT:
		return m.pat.Apply(m.d)
	case TabSafety:
		return m.safety.Apply(m.d)
	default:
		return nil
	}
}

func (m Dashboard) switchTab(dir int) Dashboard {
	if err := m.applyCurrent(); err != nil {
		return m.fail(err)
	}
	m.tab = Tab((int(m.tab) + dir + int(tabCount)) % int(tabCount))
	if m.tab == TabHistory {
		if err := m.history.Refresh(); err != nil {
			return m.fail(err)
		}
	}
	return m.ok("")
}

// recompute applies the current form, recomputes the curves and records the
// run in the session history.
func (m Dashboard) recompute() Dashboard {
	if err := m.applyCurrent(); err != nil {
		return m.fail(err)
	}

	curves, err := profile.ComputeDefault(float64(m.d.Parameters.Duration))
	if err != nil {
		return m.fail(err)
	}
	m.profile.SetCurves(curves)

	run, err := m.store.Record(m.d, curves)
	if err != nil {
		return m.fail(err)
	}
	if m.tab == TabHistory {
		if err := m.history.Refresh(); err != nil {
			return m.fail(err)
		}
	}
	return m.ok(fmt.Sprintf("Computed %d h profile, recorded run %s", m.d.Parameters.Duration, run.ID[:8]))
}

func (m Dashboard) saveDesign() Dashboard {
	if err := m.applyCurrent(); err != nil {
		return m.fail(err)
	}
	if err := m.d.Save(m.designPath); err != nil {
		return m.fail(err)
	}
	return m.ok("Saved " + m.designPath)
}

func (m Dashboard) exportAll() Dashboard {
	if err := m.applyCurrent(); err != nil {
		return m.fail(err)
	}
	if err := export.WriteAll(context.Background(), ExportDirName, m.d); err != nil {
		return m.fail(err)
	}
	return m.ok("Exported artifacts to " + ExportDirName + "/")
}

func (m Dashboard) ok(status string) Dashboard {
	if status == "" {
		status = "Ready"
	}
	m.status = status
	m.statusErr = false
	return m
}

func (m Dashboard) fail(err error) Dashboard {
	m.status = err.Error()
	m.statusErr = true
	return m
}

// View implements tea.Model.
func (m Dashboard) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Header.Render("Bioprocess Designer"))
	sb.WriteString("\n")

	tabs := make([]string, tabCount)
	for i := Tab(0); i < tabCount; i++ {
		if i == m.tab {
			tabs[i] = m.styles.TabActive.Render(tabTitles[i])
		} else {
			tabs[i] = m.styles.TabInactive.Render(tabTitles[i])
		}
	}
	sb.WriteString(strings.Join(tabs, " "))
	sb.WriteString("\n\n")

	switch m.tab {
	case TabProcess:
		sb.WriteString(m.process.View())
	case TabMedia:
		sb.WriteString(m.media.View())
	case TabControls:
		sb.WriteString(m.controls.View())
	case TabPAT:
		sb.WriteString(m.pat.View())
	case TabSafety:
		sb.WriteString(m.safety.View())
	case TabProfile:
		sb.WriteString(m.profile.View())
	case TabSummary:
		sb.WriteString(m.summary.View())
	case TabHistory:
		sb.WriteString(m.history.View())
	}
	sb.WriteString("\n")

	statusStyle := m.styles.StatusOK
	if m.statusErr {
		statusStyle = m.styles.StatusError
	}
	sb.WriteString(statusStyle.Render(m.status))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Footer.Render("tab/shift+tab pages · ctrl+r compute · ctrl+s save · ctrl+e export · ctrl+c quit"))
	return sb.String()
}
