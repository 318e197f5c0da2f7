package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"offeradmin/internal/progress"
)

const (
	defaultActivityWidth  = 70
	defaultActivityHeight = 14
	// maxActivity bounds the history kept by AppModel.
	maxActivity = 200
)

// ActivityView lists the operations reported in this session, newest last.
// Shown as an overlay (SPC l); Esc dismisses.
type ActivityView struct {
	events   []progress.Event
	viewport viewport.Model
}

// Ensure ActivityView implements View.
var _ View = (*ActivityView)(nil)

// NewActivityView creates a view over a copy of events.
func NewActivityView(events []progress.Event) *ActivityView {
	vp := viewport.New(defaultActivityWidth, defaultActivityHeight)
	vp.Style = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1)
	a := &ActivityView{
		events:   append([]progress.Event(nil), events...),
		viewport: vp,
	}
	a.refreshContent()
	return a
}

// Init implements View.
func (a *ActivityView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (a *ActivityView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case progress.Event:
		a.events = append(a.events, msg)
		a.refreshContent()
		return a, nil
	case tea.KeyMsg:
		if msg.String() == "esc" || msg.String() == "q" {
			return a, func() tea.Msg { return DismissModalMsg{} }
		}
	case tea.WindowSizeMsg:
		a.SetSize(msg.Width, msg.Height)
		return a, nil
	}

	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	return a, cmd
}

// SetSize fits the viewport into a terminal of w by h cells.
func (a *ActivityView) SetSize(w, h int) {
	w -= 4
	h = h/2 + 2
	if w < 40 {
		w = 40
	}
	if h < 8 {
		h = 8
	}
	a.viewport.Width = w
	a.viewport.Height = h
	a.refreshContent()
}

// View implements View.
func (a *ActivityView) View() string {
	header := Styles.Title.Render("Activity") + Styles.Hint.Render("  Esc: close")
	return header + "\n" + a.viewport.View()
}

// refreshContent rebuilds the viewport content and scrolls to the newest event.
func (a *ActivityView) refreshContent() {
	lines := make([]string, 0, len(a.events))
	for _, ev := range a.events {
		line := fmt.Sprintf("[%s] %s %s", ev.Timestamp.Format("15:04:05"), statusIcon(ev.Status), ev.Message)
		if ev.IsError() {
			line = Styles.StatusError.Render(line)
		}
		lines = append(lines, line)
	}
	content := strings.Join(lines, "\n")
	if content == "" {
		content = Styles.Empty.Render("Nothing reported yet")
	}
	a.viewport.SetContent(content)
	a.viewport.GotoBottom()
}

func statusIcon(s progress.Status) string {
	switch s {
	case progress.StatusRunning:
		return "●"
	case progress.StatusDone:
		return "✓"
	case progress.StatusError:
		return "✗"
	default:
		return "•"
	}
}
