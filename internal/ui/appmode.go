package ui

// AppMode represents the top-level screen shown by the console.
type AppMode int

const (
	ModeHome AppMode = iota
	ModeOffers
)

func (m AppMode) String() string {
	switch m {
	case ModeHome:
		return "Home"
	case ModeOffers:
		return "Offers"
	default:
		return "Unknown"
	}
}
