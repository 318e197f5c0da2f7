package offer

// EditState says what the draft represents: a new offer being composed or
// changes to an existing one. Only Composing and Editing implement it.
type EditState interface {
	editState()
}

// Composing is the state of a draft that will be created as a new offer.
type Composing struct{}

// Editing is the state of a draft that will update the offer with ID.
type Editing struct {
	ID string
}

func (Composing) editState() {}
func (Editing) editState()   {}

// Target returns the id being edited, if any.
func Target(s EditState) (string, bool) {
	if e, ok := s.(Editing); ok {
		return e.ID, true
	}
	return "", false
}

// IsEditing reports whether s targets an existing offer.
func IsEditing(s EditState) bool {
	_, ok := Target(s)
	return ok
}
