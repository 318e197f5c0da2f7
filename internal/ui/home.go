package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// homeEntry is one destination on the Home screen.
type homeEntry struct {
	label string
	hint  string
	cmd   tea.Cmd
}

func (e homeEntry) FilterValue() string { return e.label }
func (e homeEntry) Title() string       { return e.label + "  " + e.hint }
func (e homeEntry) Description() string { return "" }

// HomeView is the default screen: a short menu of destinations.
type HomeView struct {
	list list.Model
}

// Ensure HomeView implements View.
var _ View = (*HomeView)(nil)

// NewHomeView creates the Home screen.
func NewHomeView() *HomeView {
	items := []list.Item{
		homeEntry{
			label: "Manage Offers",
			hint:  "create, edit and delete offers",
			cmd:   func() tea.Msg { return OpenOffersMsg{} },
		},
		homeEntry{
			label: "Quit",
			hint:  "leave the console",
			cmd:   tea.Quit,
		},
	}
	l := list.New(items, NewCompactListDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	return &HomeView{list: l}
}

// Selected returns the index of the highlighted entry.
func (h *HomeView) Selected() int {
	return h.list.Index()
}

// Init implements View.
func (h *HomeView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (h *HomeView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.list.SetWidth(msg.Width)
		h.list.SetHeight(msg.Height - 4) // Reserve space for header and hint
		return h, nil
	case tea.KeyMsg:
		if msg.String() == "enter" {
			if e, ok := h.list.SelectedItem().(homeEntry); ok {
				return h, e.cmd
			}
			return h, nil
		}
	}
	// list.Model handles j/k/g/G navigation natively.
	var cmd tea.Cmd
	h.list, cmd = h.list.Update(msg)
	return h, cmd
}

// View implements View.
func (h *HomeView) View() string {
	// Set default dimensions if not set (for tests)
	if h.list.Width() == 0 {
		h.list.SetWidth(80)
	}
	if h.list.Height() == 0 {
		h.list.SetHeight(10)
	}

	var b strings.Builder
	b.WriteString(Styles.Title.Render("Offer Admin") + "\n")
	b.WriteString(Styles.Hint.Render("Press [SPC] for commands, enter to open") + "\n\n")
	b.WriteString(h.list.View())
	return b.String()
}
