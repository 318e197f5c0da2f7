package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"offeradmin/internal/offer"
	"offeradmin/internal/ui/textutil"
)

const (
	focusList      = "offers"
	inputWidth     = 48
	labelWidth     = 12
	formHeight     = 12 // title, heading, four inputs, button, section title and spacing
	defaultWidth   = 80
	defaultHeight  = 24
	descriptionMax = 60
)

// offerItem implements list.Item for offer.Offer.
type offerItem struct {
	o offer.Offer
}

func (i offerItem) FilterValue() string { return i.o.Title + " " + i.o.Code }

func (i offerItem) Title() string {
	title := i.o.Title
	if title == "" {
		title = "(untitled)"
	}
	return fmt.Sprintf("%s  Use Code: %s", title, i.o.Code)
}

func (i offerItem) Description() string {
	desc := textutil.Truncate(i.o.Description, descriptionMax)
	if i.o.Img == "" {
		return desc
	}
	return desc + "  [" + i.o.Img + "]"
}

// OfferAdminView is the offers screen: a form of four inputs holding the
// Draft, and the list of current offers with edit and delete actions.
type OfferAdminView struct {
	// Session identifies this screen instance in result messages.
	Session uint64
	// Offers is the local collection, in server order.
	Offers []offer.Offer
	// Edit is Composing, or Editing the offer whose fields were copied into the form.
	Edit offer.EditState

	inputs  []textinput.Model // indexed by offer.Field
	list    list.Model
	focus   *FocusManager
	spinner spinner.Model
	loading bool
	pending int // mutations in flight
	width   int
	height  int
}

// Ensure OfferAdminView implements View.
var _ View = (*OfferAdminView)(nil)

// NewOfferAdminView creates an empty screen in Composing mode with the
// image input focused.
func NewOfferAdminView(session uint64) *OfferAdminView {
	fields := offer.Fields()
	inputs := make([]textinput.Model, len(fields))
	order := make([]string, 0, len(fields)+1)
	for i, f := range fields {
		ti := textinput.New()
		ti.Placeholder = f.Placeholder()
		ti.Prompt = "> "
		ti.Width = inputWidth
		inputs[i] = ti
		order = append(order, f.String())
	}
	order = append(order, focusList)

	l := list.New(nil, NewOfferListDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))

	v := &OfferAdminView{
		Session: session,
		Offers:  []offer.Offer{},
		Edit:    offer.Composing{},
		inputs:  inputs,
		list:    l,
		focus:   &FocusManager{Current: order[0], Order: order},
		spinner: s,
	}
	v.syncFocus()
	return v
}

// Init implements View.
func (v *OfferAdminView) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize lays the screen out for a terminal of w by h cells.
func (v *OfferAdminView) SetSize(w, h int) {
	v.width, v.height = w, h
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	iw := w - labelWidth - 4
	if iw > inputWidth {
		iw = inputWidth
	}
	if iw < 10 {
		iw = 10
	}
	for i := range v.inputs {
		v.inputs[i].Width = iw
	}
	v.list.SetWidth(w)
	lh := h - formHeight - 4
	if lh < 3 {
		lh = 3
	}
	v.list.SetHeight(lh)
}

// SetLoading marks a list request in flight and returns the spinner tick.
func (v *OfferAdminView) SetLoading(loading bool) tea.Cmd {
	wasBusy := v.Busy()
	v.loading = loading
	if !wasBusy && v.Busy() {
		return v.spinner.Tick
	}
	return nil
}

// BeginRequest counts a mutation in flight and returns the spinner tick.
func (v *OfferAdminView) BeginRequest() tea.Cmd {
	wasBusy := v.Busy()
	v.pending++
	if !wasBusy {
		return v.spinner.Tick
	}
	return nil
}

// EndRequest counts a finished mutation.
func (v *OfferAdminView) EndRequest() {
	if v.pending > 0 {
		v.pending--
	}
}

// Busy reports whether any request of this screen is in flight.
func (v *OfferAdminView) Busy() bool {
	return v.loading || v.pending > 0
}

// Loading reports whether a list request is in flight.
func (v *OfferAdminView) Loading() bool {
	return v.loading
}

// Draft returns the form contents.
func (v *OfferAdminView) Draft() offer.Draft {
	var d offer.Draft
	for i, f := range offer.Fields() {
		d.Set(f, v.inputs[i].Value())
	}
	return d
}

// SetField overwrites one form input.
func (v *OfferAdminView) SetField(f offer.Field, value string) {
	if int(f) < 0 || int(f) >= len(v.inputs) {
		return
	}
	v.inputs[f].SetValue(value)
}

// SetDraft overwrites the whole form.
func (v *OfferAdminView) SetDraft(d offer.Draft) {
	for i, f := range offer.Fields() {
		v.inputs[i].SetValue(d.Get(f))
	}
}

// ResetDraft empties the form.
func (v *OfferAdminView) ResetDraft() {
	v.SetDraft(offer.Draft{})
}

// BeginEdit copies o into the form, targets o for the next submit and moves
// focus to the first input.
func (v *OfferAdminView) BeginEdit(o offer.Offer) tea.Cmd {
	v.SetDraft(o.Draft())
	v.Edit = offer.Editing{ID: o.ID}
	v.focus.SetFocus(offer.FieldImg.String())
	return v.syncFocus()
}

// FinishEdit returns to Composing.
func (v *OfferAdminView) FinishEdit() {
	v.Edit = offer.Composing{}
}

// SetOffers replaces the local collection.
func (v *OfferAdminView) SetOffers(offers []offer.Offer) {
	v.Offers = offer.Clone(offers)
	v.refreshList()
}

// ApplyCreated appends a created offer.
func (v *OfferAdminView) ApplyCreated(o offer.Offer) {
	v.Offers = offer.Append(v.Offers, o)
	v.refreshList()
}

// ApplyUpdated replaces the entry with id by o, keeping its position.
func (v *OfferAdminView) ApplyUpdated(id string, o offer.Offer) {
	v.Offers = offer.Replace(v.Offers, id, o)
	v.refreshList()
}

// ApplyDeleted removes the entry with id, if present.
func (v *OfferAdminView) ApplyDeleted(id string) {
	v.Offers = offer.Remove(v.Offers, id)
	v.refreshList()
}

// Find returns the offer with id from the local collection.
func (v *OfferAdminView) Find(id string) (offer.Offer, bool) {
	if i := offer.IndexOf(v.Offers, id); i >= 0 {
		return v.Offers[i], true
	}
	return offer.Offer{}, false
}

// Selected returns the offer under the list cursor.
func (v *OfferAdminView) Selected() (offer.Offer, bool) {
	idx := v.list.Index()
	if idx < 0 || idx >= len(v.Offers) {
		return offer.Offer{}, false
	}
	return v.Offers[idx], true
}

// Select moves the list cursor to the offer with id.
func (v *OfferAdminView) Select(id string) bool {
	i := offer.IndexOf(v.Offers, id)
	if i < 0 {
		return false
	}
	v.list.Select(i)
	return true
}

// FocusList moves focus from the form to the offers list.
func (v *OfferAdminView) FocusList() {
	v.focus.SetFocus(focusList)
	v.syncFocus()
}

// FocusedField returns the form input that has focus, if any.
func (v *OfferAdminView) FocusedField() (offer.Field, bool) {
	for i, f := range offer.Fields() {
		if v.focus.Is(f.String()) {
			return offer.Field(i), true
		}
	}
	return 0, false
}

// Typing reports whether keystrokes go to a form input.
func (v *OfferAdminView) Typing() bool {
	_, ok := v.FocusedField()
	return ok
}

// Heading is the form heading for the current edit mode.
func (v *OfferAdminView) Heading() string {
	if offer.IsEditing(v.Edit) {
		return "Edit Offer"
	}
	return "Add New Offer"
}

// SubmitLabel is the submit button label for the current edit mode.
func (v *OfferAdminView) SubmitLabel() string {
	if offer.IsEditing(v.Edit) {
		return "Update Offer"
	}
	return "Add Offer"
}

// Update implements View.
func (v *OfferAdminView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetSize(msg.Width, msg.Height)
		return v, nil
	case spinner.TickMsg:
		if !v.Busy() {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	case tea.KeyMsg:
		return v, v.handleKey(msg)
	}

	// Cursor blink and other input messages go to the focused input.
	if f, ok := v.FocusedField(); ok {
		var cmd tea.Cmd
		v.inputs[f], cmd = v.inputs[f].Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *OfferAdminView) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab":
		v.focus.Next()
		return v.syncFocus()
	case "shift+tab":
		v.focus.Prev()
		return v.syncFocus()
	case "ctrl+s":
		return submitOffer
	}

	if f, ok := v.FocusedField(); ok {
		switch msg.String() {
		case "enter":
			return submitOffer
		case "esc":
			v.FocusList()
			return nil
		}
		var cmd tea.Cmd
		v.inputs[f], cmd = v.inputs[f].Update(msg)
		return cmd
	}

	switch msg.String() {
	case "e", "enter":
		if o, ok := v.Selected(); ok {
			return v.BeginEdit(o)
		}
		return nil
	case "d", "x", "delete":
		if o, ok := v.Selected(); ok {
			id := o.ID
			return func() tea.Msg { return ShowDeleteOfferMsg{ID: id} }
		}
		return nil
	case "i", "a":
		v.focus.SetFocus(offer.FieldImg.String())
		return v.syncFocus()
	}
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return cmd
}

func submitOffer() tea.Msg { return SubmitOfferMsg{} }

// syncFocus focuses the input that owns focus and blurs the others.
func (v *OfferAdminView) syncFocus() tea.Cmd {
	var cmd tea.Cmd
	for i, f := range offer.Fields() {
		if v.focus.Is(f.String()) {
			cmd = v.inputs[i].Focus()
		} else {
			v.inputs[i].Blur()
		}
	}
	return cmd
}

func (v *OfferAdminView) refreshList() {
	idx := v.list.Index()
	items := make([]list.Item, len(v.Offers))
	for i, o := range v.Offers {
		items[i] = offerItem{o: o}
	}
	v.list.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		v.list.Select(idx)
	}
}

// View implements View.
func (v *OfferAdminView) View() string {
	// Set default dimensions if not set (for tests)
	if v.list.Width() == 0 || v.list.Height() == 0 {
		v.SetSize(v.width, v.height)
	}

	var b strings.Builder
	b.WriteString(Styles.Title.Render("Admin Panel - Manage Offers") + "\n\n")
	b.WriteString(Styles.Section.Render(v.Heading()) + "\n")
	for i, f := range offer.Fields() {
		label := textutil.PadRightVisual(f.Placeholder(), labelWidth)
		style := Styles.Muted
		if v.focus.Is(f.String()) {
			style = Styles.Selected
		}
		b.WriteString(style.Render(label) + " " + v.inputs[i].View() + "\n")
	}
	b.WriteString("\n" + Styles.Button.Render(v.SubmitLabel()) + "\n\n")

	title := fmt.Sprintf("Current Offers (%d)", len(v.Offers))
	if v.Busy() {
		title += " " + v.spinner.View()
	}
	titleStyle := Styles.Section
	if v.focus.Is(focusList) {
		titleStyle = Styles.Selected
	}
	b.WriteString(titleStyle.Render(title) + "\n")
	if len(v.Offers) == 0 {
		if v.loading {
			b.WriteString(Styles.Empty.Render("Loading offers…") + "\n")
		} else {
			b.WriteString(Styles.Empty.Render("No offers yet") + "\n")
		}
	} else {
		b.WriteString(v.list.View() + "\n")
	}
	b.WriteString("\n" + Styles.Hint.Render("tab: next field  enter: submit  e: edit  d: delete  esc: Back to Home"))
	return b.String()
}
