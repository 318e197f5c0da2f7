package ui

import "offeradmin/internal/offer"

// NavigateHomeMsg leaves the offers screen for the Home screen (esc, SPC h).
// It has no data effect.
type NavigateHomeMsg struct{}

// OpenOffersMsg opens a fresh offers screen, which loads the collection (SPC o).
type OpenOffersMsg struct{}

// ReloadOffersMsg fetches the collection again on the current offers screen (SPC r).
type ReloadOffersMsg struct{}

// SubmitOfferMsg submits the form: create while composing, update while editing.
type SubmitOfferMsg struct{}

// ShowDeleteOfferMsg opens the delete confirmation for an offer (d on a list entry).
type ShowDeleteOfferMsg struct {
	ID string
}

// DeleteOfferMsg is sent when the delete confirmation is accepted.
type DeleteOfferMsg struct {
	ID string
}

// ShowActivityMsg opens the activity overlay (SPC l).
type ShowActivityMsg struct{}

// DismissModalMsg closes the top overlay without acting.
type DismissModalMsg struct{}

// The result messages below carry the Session of the offers screen that
// issued the request. Results for a screen that has since been closed are
// logged but not applied.

// OffersLoadedMsg is sent when the list request completes.
type OffersLoadedMsg struct {
	Session uint64
	Offers  []offer.Offer
	Err     error
}

// OfferCreatedMsg is sent when the create request completes.
type OfferCreatedMsg struct {
	Session uint64
	Offer   offer.Offer
	Err     error
}

// OfferUpdatedMsg is sent when the update request completes. ID is the
// target captured when the form was submitted.
type OfferUpdatedMsg struct {
	Session uint64
	ID      string
	Offer   offer.Offer
	Err     error
}

// OfferDeletedMsg is sent when the delete request completes.
type OfferDeletedMsg struct {
	Session uint64
	ID      string
	Err     error
}
