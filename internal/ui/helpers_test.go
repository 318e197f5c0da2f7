package ui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"offeradmin/internal/logger"
	"offeradmin/internal/offer"
	"offeradmin/internal/offerclient"
)

// fakeService is an in-memory OffersService that records calls.
type fakeService struct {
	mu     sync.Mutex
	offers []offer.Offer
	nextID int
	fail   map[string]error
	calls  []string
}

var _ OffersService = (*fakeService)(nil)

func newFakeService(offers ...offer.Offer) *fakeService {
	return &fakeService{offers: offer.Clone(offers), fail: map[string]error{}}
}

func (f *fakeService) failOn(op string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail[op] = err
}

func (f *fakeService) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeService) record(call string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	op, _, _ := strings.Cut(call, " ")
	return f.fail[op]
}

func (f *fakeService) List(ctx context.Context) ([]offer.Offer, error) {
	if err := f.record("list"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return offer.Clone(f.offers), nil
}

func (f *fakeService) Create(ctx context.Context, d offer.Draft) (offer.Offer, error) {
	if err := f.record("create"); err != nil {
		return offer.Offer{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	o := d.WithID(fmt.Sprintf("new-%d", f.nextID))
	f.offers = offer.Append(f.offers, o)
	return o, nil
}

func (f *fakeService) Update(ctx context.Context, id string, d offer.Draft) (offer.Offer, error) {
	if err := f.record("update " + id); err != nil {
		return offer.Offer{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if offer.IndexOf(f.offers, id) < 0 {
		return offer.Offer{}, &offerclient.Error{Kind: offerclient.KindNotFound, Op: "update", ID: id, StatusCode: 404}
	}
	o := d.WithID(id)
	f.offers = offer.Replace(f.offers, id, o)
	return o, nil
}

func (f *fakeService) Delete(ctx context.Context, id string) error {
	if err := f.record("delete " + id); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if offer.IndexOf(f.offers, id) < 0 {
		return &offerclient.Error{Kind: offerclient.KindNotFound, Op: "delete", ID: id, StatusCode: 404}
	}
	f.offers = offer.Remove(f.offers, id)
	return nil
}

var errUnreachable = &offerclient.Error{
	Kind: offerclient.KindTransport,
	Op:   "list",
	Err:  errors.New("connection refused"),
}

func sampleOffers() []offer.Offer {
	return []offer.Offer{
		{ID: "a1", Img: "https://img/a.png", Title: "Spring Sale", Code: "SPRING", Description: "10% off"},
		{ID: "b2", Img: "https://img/b.png", Title: "Free Shipping", Code: "SHIPFREE", Description: "No minimum"},
		{ID: "c3", Img: "https://img/c.png", Title: "Bundle", Code: "BUNDLE3", Description: "Three for two"},
	}
}

// isAppMsg reports whether msg is produced by the console's own commands,
// as opposed to spinner ticks and cursor blinks.
func isAppMsg(msg tea.Msg) bool {
	switch msg.(type) {
	case NavigateHomeMsg, OpenOffersMsg, ReloadOffersMsg, SubmitOfferMsg,
		ShowDeleteOfferMsg, DeleteOfferMsg, DismissModalMsg, ShowActivityMsg,
		OffersLoadedMsg, OfferCreatedMsg, OfferUpdatedMsg, OfferDeletedMsg:
		return true
	}
	return false
}

// runCmd executes cmd, expanding batches, and returns the console messages it
// produced. Timer-driven commands are abandoned after a short wait.
func runCmd(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, runCmd(t, c)...)
			}
			return out
		}
		if isAppMsg(msg) {
			return []tea.Msg{msg}
		}
		return nil
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

// send delivers msg and every console message its commands lead to.
func send(t *testing.T, m tea.Model, msg tea.Msg) {
	t.Helper()
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		_, cmd := m.Update(next)
		queue = append(queue, runCmd(t, cmd)...)
	}
}

// press sends each key in order.
func press(t *testing.T, m tea.Model, keys ...string) {
	t.Helper()
	for _, k := range keys {
		send(t, m, keyMsg(k))
	}
}

// typeText sends s one rune at a time.
func typeText(t *testing.T, m tea.Model, s string) {
	t.Helper()
	for _, r := range s {
		if r == ' ' {
			send(t, m, keyMsg(" "))
			continue
		}
		send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// newTestApp starts the console against svc and runs the initial load.
func newTestApp(t *testing.T, svc OffersService) (*AppModel, tea.Model, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	log, err := logger.New(&logs, "debug")
	require.NoError(t, err)
	a := NewAppModel(svc, log)
	m := a.AsTeaModel()
	for _, msg := range runCmd(t, m.Init()) {
		send(t, m, msg)
	}
	send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return a, m, &logs
}

func offerIDs(offers []offer.Offer) []string {
	out := make([]string, len(offers))
	for i, o := range offers {
		out[i] = o.ID
	}
	return out
}
