package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"offeradmin/internal/offer"
	"offeradmin/internal/offerclient"
	"offeradmin/internal/progress"
)

// openOffers replaces the offers screen with a fresh one and loads it.
func (a *AppModel) openOffers() tea.Cmd {
	a.session++
	a.Offers = NewOfferAdminView(a.session)
	if a.width > 0 || a.height > 0 {
		a.Offers.SetSize(a.width, a.height)
	}
	a.report(progress.Running("load", "Loading offers…"))
	return tea.Batch(
		a.Offers.Init(),
		a.Offers.SetLoading(true),
		loadOffersCmd(a.ctx, a.Service, a.session),
	)
}

// current returns the offers screen if msgSession belongs to it.
func (a *AppModel) current(msgSession uint64) (*OfferAdminView, bool) {
	if a.Mode != ModeOffers || a.Offers == nil || a.Offers.Session != msgSession {
		return nil, false
	}
	return a.Offers, true
}

// reportFailure logs err and, for the visible screen, shows it in the status line.
// Local state is left as it was.
func (a *AppModel) reportFailure(op, offerID string, err error, visible bool) {
	a.Log.OperationFailed(op, offerID, offerclient.KindOf(err).String(), offerclient.StatusCode(err), err)
	if visible {
		a.report(progress.Failed(op, err))
	}
}

func (a *appModelAdapter) handleNavigateHome() (tea.Model, tea.Cmd) {
	a.Overlays.Clear()
	if a.KeyHandler != nil {
		a.KeyHandler.Reset()
	}
	a.Mode = ModeHome
	a.Offers = nil
	return a, nil
}

func (a *appModelAdapter) handleOpenOffers() (tea.Model, tea.Cmd) {
	a.Overlays.Clear()
	a.Mode = ModeOffers
	return a, a.openOffers()
}

func (a *appModelAdapter) handleReloadOffers() (tea.Model, tea.Cmd) {
	v, ok := a.current(a.session)
	if !ok {
		return a, nil
	}
	a.report(progress.Running("load", "Reloading offers…"))
	return a, tea.Batch(v.SetLoading(true), loadOffersCmd(a.ctx, a.Service, v.Session))
}

func (a *appModelAdapter) handleSubmitOffer() (tea.Model, tea.Cmd) {
	v, ok := a.current(a.session)
	if !ok {
		return a, nil
	}
	d := v.Draft()
	if id, editing := offer.Target(v.Edit); editing {
		a.report(progress.Running("update", "Updating offer…"))
		return a, tea.Batch(v.BeginRequest(), updateOfferCmd(a.ctx, a.Service, v.Session, id, d))
	}
	a.report(progress.Running("create", "Adding offer…"))
	return a, tea.Batch(v.BeginRequest(), createOfferCmd(a.ctx, a.Service, v.Session, d))
}

func (a *appModelAdapter) handleShowDeleteOffer(msg ShowDeleteOfferMsg) (tea.Model, tea.Cmd) {
	v, ok := a.current(a.session)
	if !ok {
		return a, nil
	}
	o, found := v.Find(msg.ID)
	if !found {
		return a, nil
	}
	a.Overlays.Push(Overlay{View: NewDeleteOfferConfirmModal(o), Dismiss: "esc"})
	return a, nil
}

func (a *appModelAdapter) handleDeleteOffer(msg DeleteOfferMsg) (tea.Model, tea.Cmd) {
	// Only the open confirmation for this offer may start the request.
	top, ok := a.Overlays.Peek()
	if !ok {
		return a, nil
	}
	if m, isConfirm := top.View.(*ConfirmModal); !isConfirm || m.Subject != msg.ID {
		return a, nil
	}
	a.Overlays.Pop()
	v, ok := a.current(a.session)
	if !ok {
		return a, nil
	}
	a.report(progress.Running("delete", "Deleting offer…"))
	return a, tea.Batch(v.BeginRequest(), deleteOfferCmd(a.ctx, a.Service, v.Session, msg.ID))
}

func (a *appModelAdapter) handleOffersLoaded(msg OffersLoadedMsg) (tea.Model, tea.Cmd) {
	v, ok := a.current(msg.Session)
	if ok {
		v.SetLoading(false)
	}
	if msg.Err != nil {
		a.reportFailure("load", "", msg.Err, ok)
		return a, nil
	}
	if !ok {
		return a, nil
	}
	v.SetOffers(msg.Offers)
	a.Log.OperationSucceeded("load", "")
	a.report(progress.Done("load", fmt.Sprintf("Loaded %d offers", len(msg.Offers))))
	return a, nil
}

func (a *appModelAdapter) handleOfferCreated(msg OfferCreatedMsg) (tea.Model, tea.Cmd) {
	v, ok := a.current(msg.Session)
	if ok {
		v.EndRequest()
	}
	if msg.Err != nil {
		a.reportFailure("create", "", msg.Err, ok)
		return a, nil
	}
	a.Log.OperationSucceeded("create", msg.Offer.ID)
	if !ok {
		return a, nil
	}
	v.ApplyCreated(msg.Offer)
	v.ResetDraft()
	a.report(progress.Done("create", fmt.Sprintf("Added offer %q", msg.Offer.Title)))
	return a, nil
}

func (a *appModelAdapter) handleOfferUpdated(msg OfferUpdatedMsg) (tea.Model, tea.Cmd) {
	v, ok := a.current(msg.Session)
	if ok {
		v.EndRequest()
	}
	if msg.Err != nil {
		a.reportFailure("update", msg.ID, msg.Err, ok)
		return a, nil
	}
	a.Log.OperationSucceeded("update", msg.ID)
	if !ok {
		return a, nil
	}
	v.ApplyUpdated(msg.ID, msg.Offer)
	v.FinishEdit()
	v.ResetDraft()
	a.report(progress.Done("update", fmt.Sprintf("Updated offer %q", msg.Offer.Title)))
	return a, nil
}

func (a *appModelAdapter) handleOfferDeleted(msg OfferDeletedMsg) (tea.Model, tea.Cmd) {
	v, ok := a.current(msg.Session)
	if ok {
		v.EndRequest()
	}
	if msg.Err != nil {
		a.reportFailure("delete", msg.ID, msg.Err, ok)
		return a, nil
	}
	a.Log.OperationSucceeded("delete", msg.ID)
	if !ok {
		return a, nil
	}
	v.ApplyDeleted(msg.ID)
	a.report(progress.Done("delete", "Offer deleted"))
	return a, nil
}
