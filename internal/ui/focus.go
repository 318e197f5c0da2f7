package ui

// FocusManager tracks and rotates focus across the regions of a screen.
type FocusManager struct {
	Current string   // ID of the focused region
	Order   []string // tab order
}

// Next moves focus to the next region in order and returns its ID.
func (f *FocusManager) Next() string {
	return f.move(1)
}

// Prev moves focus to the previous region in order and returns its ID.
func (f *FocusManager) Prev() string {
	return f.move(-1)
}

func (f *FocusManager) move(step int) string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := f.indexOf(f.Current)
	if idx < 0 && step < 0 {
		idx = 0
	}
	next := (idx + step + len(f.Order)) % len(f.Order)
	f.Current = f.Order[next]
	return f.Current
}

// SetFocus focuses the region with the given ID.
// Returns false if the ID is not part of the order.
func (f *FocusManager) SetFocus(id string) bool {
	if f.indexOf(id) < 0 {
		return false
	}
	f.Current = id
	return true
}

// Is reports whether id has focus.
func (f *FocusManager) Is(id string) bool {
	return f.Current == id
}

func (f *FocusManager) indexOf(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}

