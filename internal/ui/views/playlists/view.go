package playlists

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	playlistdto "eduvibe/internal/modules/playlist/dto"
	"eduvibe/internal/ui/theme"
)

type Port interface {
	List(ctx context.Context, search string) ([]playlistdto.PlaylistOutput, error)
	Check(ctx context.Context, playlistID, videoID string) (playlistdto.CompletionOutput, error)
	Uncheck(ctx context.Context, playlistID, videoID string) (playlistdto.CompletionOutput, error)
}

type LoadedMsg struct {
	Playlists []playlistdto.PlaylistOutput
	Err       error
}

// ToggledMsg reports a completion change; the app turns it into status text.
type ToggledMsg struct {
	Out playlistdto.CompletionOutput
	Err error
}

type playlistItem struct {
	p playlistdto.PlaylistOutput
}

func (i playlistItem) Title() string { return i.p.Name }
func (i playlistItem) Description() string {
	return fmt.Sprintf("%s  %d/%d  %d%%", i.p.Source, i.p.CompletedVideos, i.p.TotalVideos, i.p.Progress)
}
func (i playlistItem) FilterValue() string { return i.p.Name }

type Model struct {
	port    Port
	search  string
	list    list.Model
	preview viewport.Model
	err     error
	width   int
	height  int
}

func New(port Port) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Playlists"
	l.Styles.Title = theme.Title
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Background(theme.Mantle).Foreground(theme.Text).Padding(1)
	return Model{port: port, list: l, preview: vp}
}

func (m Model) Init() tea.Cmd { return m.Reload() }

func (m Model) Reload() tea.Cmd {
	search := m.search
	return func() tea.Msg {
		items, err := m.port.List(context.Background(), search)
		return LoadedMsg{Playlists: items, Err: err}
	}
}

// Search narrows the list through the playlist index; empty shows all.
func (m *Model) Search(text string) tea.Cmd {
	m.search = strings.TrimSpace(text)
	if m.search == "" {
		m.list.Title = "Playlists"
	} else {
		m.list.Title = "Playlists matching " + m.search
	}
	return m.Reload()
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		listW := m.width * 4 / 10
		m.list.SetSize(listW, m.height)
		m.preview.Width = m.width - listW - 4
		m.preview.Height = m.height - 4

	case LoadedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			selected := m.selectedID()
			items := make([]list.Item, len(msg.Playlists))
			cursor := 0
			for i, p := range msg.Playlists {
				items[i] = playlistItem{p: p}
				if p.ID == selected {
					cursor = i
				}
			}
			cmds = append(cmds, m.list.SetItems(items))
			m.list.Select(cursor)
		}
		m.preview.SetContent(m.renderDetail())
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		if !m.Filtering() {
			switch msg.String() {
			case "c", " ":
				return m, m.checkNextCmd()
			case "u":
				return m, m.uncheckLastCmd()
			}
		}
	}

	var cmd tea.Cmd
	prev := m.list.Index()
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	if m.list.Index() != prev {
		m.preview.SetContent(m.renderDetail())
	}
	m.preview, cmd = m.preview.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.err != nil {
		return theme.Warn.Render("playlists: " + m.err.Error())
	}
	listW := m.width * 4 / 10
	listPane := lipgloss.NewStyle().Width(listW).Height(m.height).Render(m.list.View())
	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(max(m.width-listW-2, 10)).
		Height(max(m.height-2, 1)).
		Render(m.preview.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

func (m Model) selected() (playlistdto.PlaylistOutput, bool) {
	item, ok := m.list.SelectedItem().(playlistItem)
	return item.p, ok
}

func (m Model) selectedID() string {
	p, _ := m.selected()
	return p.ID
}

func (m Model) renderDetail() string {
	p, ok := m.selected()
	if !ok {
		return theme.Muted.Render("No playlists yet. Press : and use playlist:add.")
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(p.Name) + "\n")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("%s  %d%%  id %s", p.Source, p.Progress, p.ID)) + "\n\n")
	for _, v := range p.Videos {
		line := fmt.Sprintf("%s %2d. %s", theme.Check(v.Completed), v.Position, v.Title)
		if v.Locked {
			line = theme.Muted.Render(fmt.Sprintf("🔒  %2d. %s", v.Position, v.Title))
		}
		sb.WriteString(line + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("c: complete next video  u: undo last  /: filter"))
	return sb.String()
}

func (m Model) checkNextCmd() tea.Cmd {
	p, ok := m.selected()
	if !ok {
		return nil
	}
	for _, v := range p.Videos {
		if !v.Completed && !v.Locked {
			return func() tea.Msg {
				out, err := m.port.Check(context.Background(), p.ID, v.ID)
				return ToggledMsg{Out: out, Err: err}
			}
		}
	}
	return nil
}

func (m Model) uncheckLastCmd() tea.Cmd {
	p, ok := m.selected()
	if !ok {
		return nil
	}
	for i := len(p.Videos) - 1; i >= 0; i-- {
		v := p.Videos[i]
		if v.Completed {
			return func() tea.Msg {
				out, err := m.port.Uncheck(context.Background(), p.ID, v.ID)
				return ToggledMsg{Out: out, Err: err}
			}
		}
	}
	return nil
}
