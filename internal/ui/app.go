package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"offeradmin/internal/logger"
	"offeradmin/internal/progress"
)

// AppModel is the root model. It switches between the Home screen and the
// offers screen, owns overlays and the status line, and runs the Offers
// Service calls.
type AppModel struct {
	Mode       AppMode
	Home       *HomeView
	Offers     *OfferAdminView
	KeyHandler *KeyHandler
	Overlays   OverlayStack
	Service    OffersService
	Log        *logger.Logger
	// Status is the last reported operation, shown below the screen.
	Status progress.Event
	// Activity is the session's report history, oldest first.
	Activity []progress.Event

	ctx     context.Context
	session uint64
	width   int
	height  int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model. The console starts on the offers screen.
func (a *appModelAdapter) Init() tea.Cmd {
	if a.Mode == ModeOffers {
		return a.openOffers()
	}
	return a.currentView().Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		if a.Home != nil {
			a.Home.Update(msg)
		}
		if a.Offers != nil {
			a.Offers.Update(msg)
		}
		return a, nil
	case ShowActivityMsg:
		a.Overlays.Push(Overlay{View: a.newActivityView(), Dismiss: "esc"})
		return a, nil
	case NavigateHomeMsg:
		return a.handleNavigateHome()
	case OpenOffersMsg:
		return a.handleOpenOffers()
	case ReloadOffersMsg:
		return a.handleReloadOffers()
	case SubmitOfferMsg:
		return a.handleSubmitOffer()
	case ShowDeleteOfferMsg:
		return a.handleShowDeleteOffer(msg)
	case DeleteOfferMsg:
		return a.handleDeleteOffer(msg)
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case OffersLoadedMsg:
		return a.handleOffersLoaded(msg)
	case OfferCreatedMsg:
		return a.handleOfferCreated(msg)
	case OfferUpdatedMsg:
		return a.handleOfferUpdated(msg)
	case OfferDeletedMsg:
		return a.handleOfferDeleted(msg)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		// Overlays take input first
		if top, ok := a.Overlays.Peek(); ok {
			if top.IsDismissKey(msg.String()) {
				a.Overlays.Pop()
				return a, nil
			}
			cmd, _ := a.Overlays.UpdateTop(msg)
			return a, cmd
		}
		// While a form input has focus every key is text
		if !a.typing() && a.KeyHandler != nil {
			a.KeyHandler.Mode = a.Mode
			if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
				return a, keyCmd
			}
		}
		// App-level navigation
		if a.Mode == ModeOffers && !a.typing() && msg.String() == "esc" {
			return a, navigateHome
		}
	}

	v, cmd := a.currentView().Update(msg)
	a.setCurrentView(v)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	base := a.currentView().View()
	if top, ok := a.Overlays.Peek(); ok {
		base += "\n" + top.View.View()
	}
	if line := a.statusLine(); line != "" {
		base += "\n" + line
	}
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		base += "\n" + RenderKeybindHelp(a.KeyHandler, a.Mode)
	}
	return base
}

// report sets the status line and records ev in the activity history.
func (a *AppModel) report(ev progress.Event) {
	a.Status = ev
	a.Activity = append(a.Activity, ev)
	if n := len(a.Activity) - maxActivity; n > 0 {
		a.Activity = append([]progress.Event(nil), a.Activity[n:]...)
	}
}

func (a *AppModel) newActivityView() *ActivityView {
	v := NewActivityView(a.Activity)
	if a.width > 0 && a.height > 0 {
		v.SetSize(a.width, a.height)
	}
	return v
}

func (a *AppModel) statusLine() string {
	if a.Status.IsZero() {
		return ""
	}
	if a.Status.IsError() {
		return Styles.StatusError.Render(a.Status.Message)
	}
	return Styles.StatusOK.Render(a.Status.Message)
}

// typing reports whether the offers screen routes keys to a form input.
func (a *AppModel) typing() bool {
	return a.Mode == ModeOffers && a.Offers != nil && a.Offers.Typing()
}

func (a *appModelAdapter) currentView() View {
	switch a.Mode {
	case ModeOffers:
		if a.Offers != nil {
			return a.Offers
		}
	case ModeHome:
		if a.Home != nil {
			return a.Home
		}
	}
	if a.Home == nil {
		a.Home = NewHomeView()
	}
	return a.Home
}

func (a *appModelAdapter) setCurrentView(v View) {
	switch a.Mode {
	case ModeHome:
		if h, ok := v.(*HomeView); ok {
			a.Home = h
		}
	case ModeOffers:
		if o, ok := v.(*OfferAdminView); ok {
			a.Offers = o
		}
	}
}

func navigateHome() tea.Msg { return NavigateHomeMsg{} }

// Option configures an AppModel.
type Option func(*AppModel)

// WithContext sets the context passed to Offers Service calls.
func WithContext(ctx context.Context) Option {
	return func(a *AppModel) {
		if ctx != nil {
			a.ctx = ctx
		}
	}
}

// WithStartMode selects the first screen. The default is ModeOffers.
func WithStartMode(mode AppMode) Option {
	return func(a *AppModel) {
		a.Mode = mode
	}
}

// NewAppModel creates the root application model.
func NewAppModel(svc OffersService, log *logger.Logger, opts ...Option) *AppModel {
	if log == nil {
		log = logger.Discard()
	}
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC o", func() tea.Msg { return OpenOffersMsg{} }, "Offers")
	reg.BindWithDescForMode("SPC h", navigateHome, "Back to Home", []AppMode{ModeOffers})
	reg.BindWithDescForMode("SPC r", func() tea.Msg { return ReloadOffersMsg{} }, "Reload offers", []AppMode{ModeOffers})
	reg.BindWithDescForMode("SPC s", submitOffer, "Submit form", []AppMode{ModeOffers})
	reg.BindWithDesc("SPC l", func() tea.Msg { return ShowActivityMsg{} }, "Activity")

	a := &AppModel{
		Mode:       ModeOffers,
		Home:       NewHomeView(),
		KeyHandler: NewKeyHandler(reg),
		Service:    svc,
		Log:        log,
		ctx:        context.Background(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
