package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"offeradmin/internal/offer"
)

func TestDeleteOfferConfirmModal(t *testing.T) {
	m := NewDeleteOfferConfirmModal(offer.Offer{ID: "b2", Title: "Free Shipping", Code: "SHIPFREE"})

	out := m.View()
	assert.Contains(t, out, "Delete offer?")
	assert.Contains(t, out, "Free Shipping")
	assert.Contains(t, out, "SHIPFREE")

	assert.Equal(t, "b2", m.Subject)

	for _, k := range []string{"y", "enter"} {
		m := NewDeleteOfferConfirmModal(offer.Offer{ID: "b2"})
		_, cmd := m.Update(keyMsg(k))
		require.NotNil(t, cmd, k)
		assert.Equal(t, DeleteOfferMsg{ID: "b2"}, cmd(), k)
	}

	_, cmd := m.Update(keyMsg("esc"))
	require.NotNil(t, cmd)
	assert.Equal(t, DismissModalMsg{}, cmd())

	_, cmd = m.Update(keyMsg("j"))
	assert.Nil(t, cmd)
}

func TestConfirmModal_ConfirmsOnce(t *testing.T) {
	m := NewDeleteOfferConfirmModal(offer.Offer{ID: "a1"})

	_, cmd := m.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, DeleteOfferMsg{ID: "a1"}, cmd())

	for _, k := range []string{"enter", "y"} {
		_, cmd = m.Update(keyMsg(k))
		assert.Nil(t, cmd, k)
	}

	_, cmd = m.Update(keyMsg("esc"))
	require.NotNil(t, cmd, "cancel still closes the modal")
	assert.Equal(t, DismissModalMsg{}, cmd())
}

func TestOverlayStack(t *testing.T) {
	var s OverlayStack
	_, ok := s.Peek()
	assert.False(t, ok)

	s.Push(Overlay{View: NewConfirmModal("one", "", nil), Dismiss: "esc"})
	s.Push(Overlay{View: NewConfirmModal("two", "", nil), Dismiss: "esc"})
	assert.Equal(t, 2, s.Len())

	top, ok := s.Peek()
	require.True(t, ok)
	assert.True(t, top.IsDismissKey("esc"))
	assert.False(t, top.IsDismissKey("y"))
	assert.Equal(t, "two", top.View.(*ConfirmModal).Title)

	cmd, ok := s.UpdateTop(keyMsg("y"))
	assert.True(t, ok)
	assert.Nil(t, cmd, "nil OnConfirm")

	s.Pop()
	top, _ = s.Peek()
	assert.Equal(t, "one", top.View.(*ConfirmModal).Title)

	s.Clear()
	assert.Equal(t, 0, s.Len())
	_, ok = s.Pop()
	assert.False(t, ok)
}
