package offer

// The collection helpers never modify their input; each returns a fresh
// slice so earlier snapshots stay intact.

// IndexOf returns the position of the offer with id, or -1.
func IndexOf(offers []Offer, id string) int {
	for i, o := range offers {
		if o.ID == id {
			return i
		}
	}
	return -1
}

// Append returns offers with o added at the end.
func Append(offers []Offer, o Offer) []Offer {
	out := make([]Offer, 0, len(offers)+1)
	out = append(out, offers...)
	return append(out, o)
}

// Replace returns offers with every entry whose ID is id swapped for o.
// Length and order are preserved; an absent id leaves the copy unchanged.
func Replace(offers []Offer, id string, o Offer) []Offer {
	out := make([]Offer, len(offers))
	for i, cur := range offers {
		if cur.ID == id {
			out[i] = o
			continue
		}
		out[i] = cur
	}
	return out
}

// Remove returns offers without the entries whose ID is id, order preserved.
func Remove(offers []Offer, id string) []Offer {
	out := make([]Offer, 0, len(offers))
	for _, cur := range offers {
		if cur.ID != id {
			out = append(out, cur)
		}
	}
	return out
}

// Clone returns a copy of offers; nil stays nil.
func Clone(offers []Offer) []Offer {
	if offers == nil {
		return nil
	}
	out := make([]Offer, len(offers))
	copy(out, offers)
	return out
}
