package offer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffer_UnmarshalJSON_IDForms(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"underscore id", `{"_id":"x1","title":"T"}`, "x1"},
		{"plain id", `{"id":"x2"}`, "x2"},
		{"numeric id", `{"id":12}`, "12"},
		{"object id", `{"_id":{"$oid":"65f0c1"}}`, "65f0c1"},
		{"no id", `{"title":"T"}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var o Offer
			require.NoError(t, json.Unmarshal([]byte(tt.data), &o))
			assert.Equal(t, tt.want, o.ID)
		})
	}
}

func TestOffer_UnmarshalJSON_Fields(t *testing.T) {
	var o Offer
	data := `{"_id":"x1","img":"a.png","title":"T","code":"C1","description":"D","__v":0}`
	require.NoError(t, json.Unmarshal([]byte(data), &o))
	assert.Equal(t, Offer{ID: "x1", Img: "a.png", Title: "T", Code: "C1", Description: "D"}, o)
}

func TestOffer_UnmarshalJSON_NonStringFields(t *testing.T) {
	var o Offer
	data := `{"_id":"x1","img":null,"title":"T","code":123,"description":true}`
	require.NoError(t, json.Unmarshal([]byte(data), &o))
	assert.Equal(t, Offer{ID: "x1", Title: "T", Code: "123", Description: "true"}, o)
	assert.Equal(t, "123", o.Draft().Code)
}

func TestOffer_UnmarshalJSON_Invalid(t *testing.T) {
	var o Offer
	assert.Error(t, json.Unmarshal([]byte(`["not","an","object"]`), &o))
}

func TestOffer_MarshalJSON_UsesUnderscoreID(t *testing.T) {
	b, err := json.Marshal(Offer{ID: "x1", Title: "T"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"x1","img":"","title":"T","code":"","description":""}`, string(b))
}

func TestDraft_MarshalJSON_OmitsID(t *testing.T) {
	b, err := json.Marshal(Draft{Img: "a.png", Title: "T", Code: "C1", Description: "D"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"img":"a.png","title":"T","code":"C1","description":"D"}`, string(b))
}

func TestDraft_GetSet(t *testing.T) {
	var d Draft
	assert.True(t, d.IsEmpty())
	for _, f := range Fields() {
		d.Set(f, f.String()+"-value")
	}
	assert.False(t, d.IsEmpty())
	assert.Equal(t, Draft{Img: "img-value", Title: "title-value", Code: "code-value", Description: "description-value"}, d)
	for _, f := range Fields() {
		assert.Equal(t, f.String()+"-value", d.Get(f))
	}

	d.Set(Field(99), "ignored")
	assert.Equal(t, "", d.Get(Field(99)))
}

func TestOffer_DraftRoundTrip(t *testing.T) {
	o := Offer{ID: "x2", Img: "b.png", Title: "T2", Code: "C2", Description: "D2"}
	assert.Equal(t, o, o.Draft().WithID("x2"))
}

func TestField_Placeholders(t *testing.T) {
	want := []string{"Image URL", "Offer Title", "Offer Code", "Description"}
	for i, f := range Fields() {
		assert.Equal(t, want[i], f.Placeholder())
	}
}

func TestEditState(t *testing.T) {
	id, ok := Target(Composing{})
	assert.False(t, ok)
	assert.Empty(t, id)
	assert.False(t, IsEditing(Composing{}))

	id, ok = Target(Editing{ID: "x2"})
	assert.True(t, ok)
	assert.Equal(t, "x2", id)
	assert.True(t, IsEditing(Editing{ID: "x2"}))
}
