package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"offeradmin/internal/offer"
)

func TestOfferAdminView_StartsComposingWithImageFocused(t *testing.T) {
	v := NewOfferAdminView(1)

	assert.Equal(t, offer.Composing{}, v.Edit)
	assert.NotNil(t, v.Offers)
	assert.Empty(t, v.Offers)
	assert.True(t, v.Draft().IsEmpty())
	f, ok := v.FocusedField()
	require.True(t, ok)
	assert.Equal(t, offer.FieldImg, f)
	assert.Equal(t, "Add New Offer", v.Heading())
	assert.Equal(t, "Add Offer", v.SubmitLabel())
}

func TestOfferAdminView_TabRotatesFocus(t *testing.T) {
	v := NewOfferAdminView(1)

	want := []string{"title", "code", "description", focusList, "img"}
	for _, id := range want {
		v.Update(keyMsg("tab"))
		assert.Equal(t, id, v.focus.Current)
	}
	v.Update(keyMsg("shift+tab"))
	assert.Equal(t, focusList, v.focus.Current)
	assert.False(t, v.Typing())
}

func TestOfferAdminView_SetFieldEditsOnlyThatField(t *testing.T) {
	v := NewOfferAdminView(1)
	v.SetDraft(offer.Draft{Img: "i", Title: "t", Code: "c", Description: "d"})

	v.SetField(offer.FieldCode, "NEW")

	assert.Equal(t, offer.Draft{Img: "i", Title: "t", Code: "NEW", Description: "d"}, v.Draft())
	assert.Equal(t, offer.Composing{}, v.Edit, "editing a field never changes the mode")
}

func TestOfferAdminView_BeginEditOverwritesDraft(t *testing.T) {
	v := NewOfferAdminView(1)
	v.SetOffers(sampleOffers())
	v.SetDraft(offer.Draft{Title: "unsaved"})
	v.FocusList()

	target := sampleOffers()[2]
	v.BeginEdit(target)

	assert.Equal(t, target.Draft(), v.Draft())
	assert.Equal(t, offer.Editing{ID: "c3"}, v.Edit)
	f, ok := v.FocusedField()
	require.True(t, ok)
	assert.Equal(t, offer.FieldImg, f)

	// Beginning another edit retargets.
	v.BeginEdit(sampleOffers()[0])
	assert.Equal(t, offer.Editing{ID: "a1"}, v.Edit)
	assert.Equal(t, sampleOffers()[0].Draft(), v.Draft())
}

func TestOfferAdminView_ListKeys(t *testing.T) {
	v := NewOfferAdminView(1)
	v.SetSize(100, 40)
	v.SetOffers(sampleOffers())
	v.FocusList()

	_, cmd := v.Update(keyMsg("d"))
	require.NotNil(t, cmd)
	assert.Equal(t, ShowDeleteOfferMsg{ID: "a1"}, cmd())

	v.Update(keyMsg("j"))
	o, ok := v.Selected()
	require.True(t, ok)
	assert.Equal(t, "b2", o.ID)

	v.Update(keyMsg("enter"))
	assert.Equal(t, offer.Editing{ID: "b2"}, v.Edit)
}

func TestOfferAdminView_ListKeysOnEmptyList(t *testing.T) {
	v := NewOfferAdminView(1)
	v.FocusList()

	_, cmd := v.Update(keyMsg("d"))
	assert.Nil(t, cmd)
	v.Update(keyMsg("e"))
	assert.Equal(t, offer.Composing{}, v.Edit)
}

func TestOfferAdminView_SubmitKeys(t *testing.T) {
	v := NewOfferAdminView(1)

	_, cmd := v.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, SubmitOfferMsg{}, cmd())

	v.FocusList()
	_, cmd = v.Update(keyMsg("ctrl+s"))
	require.NotNil(t, cmd)
	assert.Equal(t, SubmitOfferMsg{}, cmd())
}

func TestOfferAdminView_ApplyMutations(t *testing.T) {
	v := NewOfferAdminView(1)
	v.SetOffers(sampleOffers())

	v.ApplyCreated(offer.Offer{ID: "d4", Title: "New"})
	assert.Equal(t, []string{"a1", "b2", "c3", "d4"}, offerIDs(v.Offers))

	v.ApplyUpdated("b2", offer.Offer{ID: "b2", Title: "Changed"})
	assert.Equal(t, []string{"a1", "b2", "c3", "d4"}, offerIDs(v.Offers))
	assert.Equal(t, "Changed", v.Offers[1].Title)

	v.ApplyDeleted("a1")
	assert.Equal(t, []string{"b2", "c3", "d4"}, offerIDs(v.Offers))

	v.ApplyDeleted("missing")
	assert.Equal(t, []string{"b2", "c3", "d4"}, offerIDs(v.Offers))
}

func TestOfferAdminView_SetOffersDoesNotAlias(t *testing.T) {
	src := sampleOffers()
	v := NewOfferAdminView(1)
	v.SetOffers(src)
	src[0].Title = "mutated"
	assert.Equal(t, "Spring Sale", v.Offers[0].Title)
}

func TestOfferAdminView_SelectionClampedAfterDelete(t *testing.T) {
	v := NewOfferAdminView(1)
	v.SetSize(100, 40)
	v.SetOffers(sampleOffers())
	require.True(t, v.Select("c3"))

	v.ApplyDeleted("c3")

	o, ok := v.Selected()
	require.True(t, ok)
	assert.Equal(t, "b2", o.ID)
	assert.False(t, v.Select("c3"))
}

func TestOfferAdminView_BusyTracking(t *testing.T) {
	v := NewOfferAdminView(1)
	assert.False(t, v.Busy())

	assert.NotNil(t, v.SetLoading(true))
	assert.True(t, v.Loading())
	assert.Nil(t, v.BeginRequest(), "spinner already running")
	v.SetLoading(false)
	assert.True(t, v.Busy())
	v.EndRequest()
	assert.False(t, v.Busy())
	v.EndRequest()
	assert.False(t, v.Busy())
}

func TestOfferAdminView_View(t *testing.T) {
	v := NewOfferAdminView(1)
	out := v.View()
	assert.Contains(t, out, "No offers yet")
	assert.Contains(t, out, "Image URL")
	assert.Contains(t, out, "Description")

	v.SetLoading(true)
	assert.Contains(t, v.View(), "Loading offers")

	v.SetLoading(false)
	v.SetOffers(sampleOffers())
	out = v.View()
	assert.Contains(t, out, "Current Offers (3)")
	assert.Contains(t, out, "Free Shipping")
	assert.Contains(t, out, "Use Code: SHIPFREE")
	assert.False(t, strings.Contains(out, "No offers yet"))
}

func TestOfferItem(t *testing.T) {
	item := offerItem{o: offer.Offer{
		ID:          "x",
		Img:         "https://img/x.png",
		Title:       "",
		Code:        "X",
		Description: strings.Repeat("long ", 30),
	}}
	assert.Equal(t, "(untitled)  Use Code: X", item.Title())
	assert.Contains(t, item.Description(), "…")
	assert.Contains(t, item.Description(), "[https://img/x.png]")
	assert.Equal(t, " X", item.FilterValue())
}
