// Package offerstore is the in-memory offer collection behind the dev
// Offers Service.
package offerstore

import (
	"errors"
	"sync"

	"offeradmin/internal/offer"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no offer has the requested id.
var ErrNotFound = errors.New("offer not found")

// Store holds offers in insertion order. It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	offers   map[string]offer.Offer // id -> offer
	order    []string               // ids in insertion order
	newID    func() string
	onChange func()
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces the default UUIDv4 id generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		s.newID = gen
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		offers: make(map[string]offer.Offer),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetOnChange registers a callback invoked after every successful mutation.
// The callback runs without the store lock held.
func (s *Store) SetOnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// List returns every offer in insertion order.
func (s *Store) List() []offer.Offer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]offer.Offer, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.offers[id])
	}
	return out
}

// Get returns the offer with id.
func (s *Store) Get(id string) (offer.Offer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.offers[id]
	if !ok {
		return offer.Offer{}, ErrNotFound
	}
	return o, nil
}

// Create stores d under a fresh id and returns the new offer.
func (s *Store) Create(d offer.Draft) offer.Offer {
	s.mu.Lock()
	id := s.newID()
	for _, taken := s.offers[id]; taken; _, taken = s.offers[id] {
		id = s.newID()
	}
	o := d.WithID(id)
	s.offers[id] = o
	s.order = append(s.order, id)
	s.mu.Unlock()

	s.callOnChange()
	return o
}

// Update replaces the content of offer id with d.
func (s *Store) Update(id string, d offer.Draft) (offer.Offer, error) {
	s.mu.Lock()
	if _, ok := s.offers[id]; !ok {
		s.mu.Unlock()
		return offer.Offer{}, ErrNotFound
	}
	o := d.WithID(id)
	s.offers[id] = o
	s.mu.Unlock()

	s.callOnChange()
	return o, nil
}

// Delete removes offer id.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	if _, ok := s.offers[id]; !ok {
		s.mu.Unlock()
		return ErrNotFound
	}
	delete(s.offers, id)
	for i, cur := range s.order {
		if cur == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.callOnChange()
	return nil
}

// Len returns the number of stored offers.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Seed creates one offer per draft, in order.
func (s *Store) Seed(drafts ...offer.Draft) []offer.Offer {
	out := make([]offer.Offer, 0, len(drafts))
	for _, d := range drafts {
		out = append(out, s.Create(d))
	}
	return out
}

// SampleDrafts is a small catalogue for local runs (offers-dev -seed).
func SampleDrafts() []offer.Draft {
	return []offer.Draft{
		{Img: "https://example.com/img/welcome.png", Title: "Welcome discount", Code: "WELCOME10", Description: "10% off your first order"},
		{Img: "https://example.com/img/shipping.png", Title: "Free shipping", Code: "SHIPFREE", Description: "Free shipping on orders over 50"},
		{Img: "https://example.com/img/bundle.png", Title: "Bundle deal", Code: "BUNDLE3", Description: "Buy two, get the third free"},
	}
}

func (s *Store) callOnChange() {
	s.mu.RLock()
	fn := s.onChange
	s.mu.RUnlock()
	if fn != nil {
		fn()
	}
}
