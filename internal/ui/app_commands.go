package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"offeradmin/internal/offer"
)

// OffersService is the Offers Service as the console uses it.
// *offerclient.Client implements it.
type OffersService interface {
	List(ctx context.Context) ([]offer.Offer, error)
	Create(ctx context.Context, d offer.Draft) (offer.Offer, error)
	Update(ctx context.Context, id string, d offer.Draft) (offer.Offer, error)
	Delete(ctx context.Context, id string) error
}

var errNoService = errors.New("no offers service configured")

// loadOffersCmd fetches the collection.
func loadOffersCmd(ctx context.Context, svc OffersService, session uint64) tea.Cmd {
	return func() tea.Msg {
		if svc == nil {
			return OffersLoadedMsg{Session: session, Err: errNoService}
		}
		offers, err := svc.List(ctx)
		if offers == nil && err == nil {
			offers = []offer.Offer{}
		}
		return OffersLoadedMsg{Session: session, Offers: offers, Err: err}
	}
}

// createOfferCmd creates an offer from d.
func createOfferCmd(ctx context.Context, svc OffersService, session uint64, d offer.Draft) tea.Cmd {
	return func() tea.Msg {
		if svc == nil {
			return OfferCreatedMsg{Session: session, Err: errNoService}
		}
		o, err := svc.Create(ctx, d)
		return OfferCreatedMsg{Session: session, Offer: o, Err: err}
	}
}

// updateOfferCmd overwrites the offer with id using d.
func updateOfferCmd(ctx context.Context, svc OffersService, session uint64, id string, d offer.Draft) tea.Cmd {
	return func() tea.Msg {
		if svc == nil {
			return OfferUpdatedMsg{Session: session, ID: id, Err: errNoService}
		}
		o, err := svc.Update(ctx, id, d)
		return OfferUpdatedMsg{Session: session, ID: id, Offer: o, Err: err}
	}
}

// deleteOfferCmd deletes the offer with id.
func deleteOfferCmd(ctx context.Context, svc OffersService, session uint64, id string) tea.Cmd {
	return func() tea.Msg {
		if svc == nil {
			return OfferDeletedMsg{Session: session, ID: id, Err: errNoService}
		}
		return OfferDeletedMsg{Session: session, ID: id, Err: svc.Delete(ctx, id)}
	}
}
