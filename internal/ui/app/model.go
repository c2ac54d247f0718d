package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	achievementdto "eduvibe/internal/modules/achievement/dto"
	goaldto "eduvibe/internal/modules/goal/dto"
	playlistdto "eduvibe/internal/modules/playlist/dto"
	"eduvibe/internal/ui/components"
	"eduvibe/internal/ui/theme"
	achievementsview "eduvibe/internal/ui/views/achievements"
	dashboardview "eduvibe/internal/ui/views/dashboard"
	focusview "eduvibe/internal/ui/views/focus"
	goalsview "eduvibe/internal/ui/views/goals"
	playlistsview "eduvibe/internal/ui/views/playlists"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type PlaylistPort interface {
	playlistsview.Port
	Create(ctx context.Context, name, source, url string, titles []string) (playlistdto.CreateOutput, error)
}

type GoalPort interface {
	goalsview.Port
	Add(ctx context.Context, title, category string) (goaldto.GoalOutput, error)
}

// Handlers are the inbound adapters the TUI drives.
type Handlers struct {
	Dashboard    dashboardview.Port
	Playlists    PlaylistPort
	Goals        GoalPort
	Focus        focusview.Port
	Achievements achievementsview.Port
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabDashboard tabID = iota
	tabPlaylists
	tabGoals
	tabFocus
	tabAchievements
	tabCount
)

var tabLabels = [tabCount]string{
	"Dashboard", "Playlists", "Goals", "Focus", "Achievements",
}

// ─── async messages ───────────────────────────────────────────────────────────

// recordChangedMsg arrives when the record was written outside this process.
type recordChangedMsg struct{}

type playlistCreatedMsg struct {
	out playlistdto.CreateOutput
	err error
}

type goalAddedMsg struct {
	goal goaldto.GoalOutput
	err  error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Toggle  key.Binding
	Focus   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Toggle:  key.NewBinding(key.WithKeys("c", " "), key.WithHelp("c/space", "complete")),
		Focus:   key.NewBinding(key.WithKeys("s", "p", "x"), key.WithHelp("s/p/x", "focus start/pause/stop")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Toggle, k.Focus},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, live reload, the
// help overlay and the command palette; rendering is delegated to sub-views.
type Model struct {
	handlers Handlers
	changes  <-chan struct{}

	dashView    dashboardview.Model
	listView    playlistsview.Model
	goalView    goalsview.Model
	focusView   focusview.Model
	achieveView achievementsview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

// NewModel builds the TUI. changes may be nil when live reload is off.
func NewModel(h Handlers, focusMinutes int, changes <-chan struct{}) Model {
	return Model{
		handlers:    h,
		changes:     changes,
		dashView:    dashboardview.New(h.Dashboard),
		listView:    playlistsview.New(h.Playlists),
		goalView:    goalsview.New(h.Goals),
		focusView:   focusview.New(h.Focus, focusMinutes),
		achieveView: achievementsview.New(h.Achievements),
		activeTab:   tabDashboard,
		keys:        defaultKeys(),
		help:        help.New(),
		palette:     components.NewPalette(),
		status:      "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.reloadAll(), m.waitForChange())
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case recordChangedMsg:
		return m, tea.Batch(m.reloadAll(), m.waitForChange())

	case dashboardview.LoadedMsg:
		m.dashView, cmd = m.dashView.Update(msg)
		return m, cmd
	case playlistsview.LoadedMsg:
		m.listView, cmd = m.listView.Update(msg)
		return m, cmd
	case goalsview.LoadedMsg:
		m.goalView, cmd = m.goalView.Update(msg)
		return m, cmd
	case achievementsview.LoadedMsg:
		m.achieveView, cmd = m.achieveView.Update(msg)
		return m, cmd
	case focusview.LoadedMsg, focusview.StartedMsg:
		m.focusView, cmd = m.focusView.Update(msg)
		return m, cmd

	case playlistsview.ToggledMsg:
		if msg.Err != nil {
			m.status = "playlist: " + msg.Err.Error()
			return m, nil
		}
		m.status = completionStatus(msg.Out) + earnedStatus(msg.Out.NewlyEarned)
		return m, m.reloadAll()

	case goalsview.ToggledMsg:
		if msg.Err != nil {
			m.status = "goal: " + msg.Err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("goals %d/%d done today", msg.Out.Today.Completed, msg.Out.Today.Total)
		if msg.Out.StreakUpdated {
			m.status += fmt.Sprintf("  streak %d", msg.Out.Streak)
		}
		return m, m.reloadAll()

	case goalsview.DeletedMsg:
		if msg.Err != nil {
			m.status = "goal: " + msg.Err.Error()
			return m, nil
		}
		m.status = "deleted goal " + msg.Goal.Title
		return m, m.reloadAll()

	case focusview.StoppedMsg:
		m.focusView, cmd = m.focusView.Update(msg)
		if msg.Err != nil {
			m.status = "focus: " + msg.Err.Error()
			return m, cmd
		}
		if msg.Out.Recorded {
			m.status = fmt.Sprintf("recorded %.0f min of %s", msg.Out.Session.Hours*60, msg.Out.Session.Task) +
				earnedStatus(msg.Out.NewlyEarned)
		}
		return m, tea.Batch(cmd, m.reloadAll())

	case playlistCreatedMsg:
		if msg.err != nil {
			m.status = "playlist: " + msg.err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("created %s with %d videos", msg.out.Playlist.Name, msg.out.Playlist.TotalVideos) +
			earnedStatus(msg.out.NewlyEarned)
		m.activeTab = tabPlaylists
		return m, m.reloadAll()

	case goalAddedMsg:
		if msg.err != nil {
			m.status = "goal: " + msg.err.Error()
			return m, nil
		}
		m.status = "added goal " + msg.goal.Title
		m.activeTab = tabGoals
		return m, m.reloadAll()

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if !(m.activeTab == tabPlaylists && m.listView.Filtering()) {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "tab":
				m.activeTab = (m.activeTab + 1) % tabCount
				return m, nil
			case "shift+tab":
				m.activeTab = (m.activeTab + tabCount - 1) % tabCount
				return m, nil
			case "?":
				m.showHelp = true
				return m, nil
			case ":":
				return m, m.palette.Open()
			}
		}
	}

	// Focus ticks must keep flowing while another tab is shown.
	var cmds []tea.Cmd
	if _, ok := msg.(tea.KeyMsg); !ok && m.activeTab != tabFocus {
		m.focusView, cmd = m.focusView.Update(msg)
		cmds = append(cmds, cmd)
	}
	switch m.activeTab {
	case tabDashboard:
		m.dashView, cmd = m.dashView.Update(msg)
	case tabPlaylists:
		m.listView, cmd = m.listView.Update(msg)
	case tabGoals:
		m.goalView, cmd = m.goalView.Update(msg)
	case tabFocus:
		m.focusView, cmd = m.focusView.Update(msg)
	case tabAchievements:
		m.achieveView, cmd = m.achieveView.Update(msg)
	}
	return m, tea.Batch(append(cmds, cmd)...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := max(m.height-lipgloss.Height(tabBar)-lipgloss.Height(statusBar), 1)

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}
	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabDashboard:
		return m.dashView.View()
	case tabPlaylists:
		return m.listView.View()
	case tabGoals:
		return m.goalView.View()
	case tabFocus:
		return m.focusView.View()
	case tabAchievements:
		return m.achieveView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + tabLabels[i] + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + tabLabels[i] + " ")
		}
	}
	bar := "eduvibe  " + strings.Join(parts, theme.Muted.Render(" │ "))
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.focusView.HasActive() {
		left = theme.Hot.Render("● focus") + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	input = strings.TrimSpace(input)
	if input == "" {
		return m, nil
	}
	command, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)

	switch command {
	case "playlist:add":
		name, titles, ok := parsePlaylist(rest)
		if !ok {
			m.status = "usage: playlist:add <name> | <title>; <title>; ..."
			return m, nil
		}
		return m, m.createPlaylistCmd(name, titles)

	case "playlist:search":
		m.activeTab = tabPlaylists
		return m, m.listView.Search(rest)

	case "goal:add":
		title, category := parseGoal(rest)
		if title == "" {
			m.status = "usage: goal:add <title> [#category]"
			return m, nil
		}
		return m, m.addGoalCmd(title, category)

	case "focus:start":
		m.activeTab = tabFocus
		if m.focusView.HasActive() {
			m.status = "a focus session is already running"
			return m, nil
		}
		return m, m.focusView.StartCmd(rest)

	case "focus:stop":
		return m, m.focusView.StopCmd(rest)

	case "calendar:month":
		m.activeTab = tabDashboard
		return m, m.dashView.ShowMonth(rest)

	default:
		m.status = "unknown command: " + command
	}
	return m, nil
}

// parsePlaylist splits "name | a; b; c".
func parsePlaylist(input string) (string, []string, bool) {
	name, list, found := strings.Cut(input, "|")
	name = strings.TrimSpace(name)
	if !found || name == "" {
		return "", nil, false
	}
	var titles []string
	for _, t := range strings.Split(list, ";") {
		if t = strings.TrimSpace(t); t != "" {
			titles = append(titles, t)
		}
	}
	return name, titles, len(titles) > 0
}

// parseGoal takes a trailing #category off the title.
func parseGoal(input string) (string, string) {
	fields := strings.Fields(input)
	if n := len(fields); n > 1 && strings.HasPrefix(fields[n-1], "#") {
		return strings.Join(fields[:n-1], " "), strings.TrimPrefix(fields[n-1], "#")
	}
	return strings.Join(fields, " "), ""
}

func completionStatus(out playlistdto.CompletionOutput) string {
	if !out.Video.Completed {
		return fmt.Sprintf("unchecked %s  %s %d%%", out.Video.Title, out.Playlist.Name, out.Playlist.Progress)
	}
	return fmt.Sprintf("completed %s  %s %d%%  streak %d", out.Video.Title, out.Playlist.Name, out.Playlist.Progress, out.Streak)
}

func earnedStatus(items []achievementdto.Item) string {
	if len(items) == 0 {
		return ""
	}
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	return "  🏆 " + strings.Join(names, ", ")
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.dashView, _ = m.dashView.Update(sz)
	m.listView, _ = m.listView.Update(sz)
	m.goalView, _ = m.goalView.Update(sz)
	m.focusView, _ = m.focusView.Update(sz)
	m.achieveView, _ = m.achieveView.Update(sz)
}

func (m Model) reloadAll() tea.Cmd {
	return tea.Batch(
		m.dashView.Reload(),
		m.listView.Reload(),
		m.goalView.Reload(),
		m.focusView.Reload(),
		m.achieveView.Reload(),
	)
}

func (m Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	changes := m.changes
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return recordChangedMsg{}
	}
}

func (m Model) createPlaylistCmd(name string, titles []string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.handlers.Playlists.Create(context.Background(), name, "", "", titles)
		return playlistCreatedMsg{out: out, err: err}
	}
}

func (m Model) addGoalCmd(title, category string) tea.Cmd {
	return func() tea.Msg {
		goal, err := m.handlers.Goals.Add(context.Background(), title, category)
		return goalAddedMsg{goal: goal, err: err}
	}
}
