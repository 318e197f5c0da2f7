// Package ui is the offer admin console built on Bubble Tea.
//
// Core pieces:
//   - AppModel: root model switching between the Home screen and the offers screen
//   - OfferAdminView: form of four inputs plus the list of current offers
//   - View: a screen or modal with its own model, update, view (Elm-style)
//   - FocusManager: tracks and rotates focus across the form inputs and the list
//   - Overlay: modal views (delete confirmation) stacked above the screen
//   - KeybindRegistry: spacemacs-style SPC leader bindings
//
// Network calls run as tea.Cmd functions and report back with result messages
// handled in AppModel's Update; only Update mutates view state.
package ui
