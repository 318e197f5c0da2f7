// Package offer defines the offer record managed by the admin console, the
// draft that stages its editable fields, and the edit state of the form.
package offer

import (
	"encoding/json"

	"offeradmin/internal/jsonutil"
)

// Offer is a persisted promotional-code record. ID is assigned by the
// Offers Service and never changes.
type Offer struct {
	ID          string `json:"_id"`
	Img         string `json:"img"`
	Title       string `json:"title"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

// UnmarshalJSON accepts the identifier as "_id" or "id", in string, numeric,
// or {"$oid": ...} form. Non-string content fields keep their value as text.
func (o *Offer) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := jsonutil.UnmarshalWithContext(data, &raw, "decode offer"); err != nil {
		return err
	}
	*o = Offer{
		ID:          jsonutil.DocumentID(raw, "_id", "id"),
		Img:         jsonutil.ToString(raw["img"]),
		Title:       jsonutil.ToString(raw["title"]),
		Code:        jsonutil.ToString(raw["code"]),
		Description: jsonutil.ToString(raw["description"]),
	}
	return nil
}

// Draft returns the offer's editable fields.
func (o Offer) Draft() Draft {
	return Draft{
		Img:         o.Img,
		Title:       o.Title,
		Code:        o.Code,
		Description: o.Description,
	}
}

// Draft is the unsaved form state: an offer's content fields without an id.
// It is also the request body for create and update.
type Draft struct {
	Img         string `json:"img"`
	Title       string `json:"title"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

// IsEmpty reports whether every field is blank.
func (d Draft) IsEmpty() bool {
	return d == Draft{}
}

// Get returns the value of one field.
func (d Draft) Get(f Field) string {
	switch f {
	case FieldImg:
		return d.Img
	case FieldTitle:
		return d.Title
	case FieldCode:
		return d.Code
	case FieldDescription:
		return d.Description
	}
	return ""
}

// Set replaces the value of one field. Unknown fields are ignored.
func (d *Draft) Set(f Field, v string) {
	switch f {
	case FieldImg:
		d.Img = v
	case FieldTitle:
		d.Title = v
	case FieldCode:
		d.Code = v
	case FieldDescription:
		d.Description = v
	}
}

// WithID builds the offer the draft describes, as stored under id.
func (d Draft) WithID(id string) Offer {
	return Offer{
		ID:          id,
		Img:         d.Img,
		Title:       d.Title,
		Code:        d.Code,
		Description: d.Description,
	}
}

// Ensure Offer implements json.Unmarshaler.
var _ json.Unmarshaler = (*Offer)(nil)
