package offerserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"offeradmin/internal/offer"
	"offeradmin/internal/offerstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, *offerstore.Store) {
	t.Helper()
	var n int
	store := offerstore.New(offerstore.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("x%d", n)
	}))
	return NewServer(store, "", nil), store
}

func serve(s *Server, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestServer_ListEmpty(t *testing.T) {
	s, _ := newTestServer(t)

	w := serve(s, http.MethodGet, "/offers", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestServer_CreateThenList(t *testing.T) {
	s, _ := newTestServer(t)

	w := serve(s, http.MethodPost, "/offers", []byte(`{"img":"a.png","title":"T","code":"C1","description":"D"}`))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"_id":"x1","img":"a.png","title":"T","code":"C1","description":"D"}`, w.Body.String())

	w = serve(s, http.MethodGet, "/offers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got []offer.Offer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, []offer.Offer{{ID: "x1", Img: "a.png", Title: "T", Code: "C1", Description: "D"}}, got)
}

func TestServer_CreateInvalidJSON(t *testing.T) {
	s, store := newTestServer(t)

	w := serve(s, http.MethodPost, "/offers", []byte("invalid json"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, store.Len())
}

func TestServer_GetOffer(t *testing.T) {
	s, store := newTestServer(t)
	store.Create(offer.Draft{Title: "T"})

	w := serve(s, http.MethodGet, "/offers/x1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"_id":"x1"`)

	w = serve(s, http.MethodGet, "/offers/x9", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_Update(t *testing.T) {
	s, store := newTestServer(t)
	store.Seed(offer.Draft{Title: "one"}, offer.Draft{Title: "two"})

	w := serve(s, http.MethodPut, "/offers/x2", []byte(`{"img":"b.png","title":"T2","code":"C2","description":"D2"}`))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"_id":"x2","img":"b.png","title":"T2","code":"C2","description":"D2"}`, w.Body.String())

	got := store.List()
	assert.Equal(t, "one", got[0].Title)
	assert.Equal(t, "T2", got[1].Title)
}

func TestServer_UpdateIgnoresBodyID(t *testing.T) {
	s, store := newTestServer(t)
	store.Create(offer.Draft{Title: "one"})

	w := serve(s, http.MethodPut, "/offers/x1", []byte(`{"_id":"other","title":"T"}`))
	require.Equal(t, http.StatusOK, w.Code)
	o, err := store.Get("x1")
	require.NoError(t, err)
	assert.Equal(t, "T", o.Title)
}

func TestServer_UpdateMissing(t *testing.T) {
	s, _ := newTestServer(t)

	w := serve(s, http.MethodPut, "/offers/x9", []byte(`{"title":"T"}`))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "offer not found")
}

func TestServer_Delete(t *testing.T) {
	s, store := newTestServer(t)
	store.Seed(offer.Draft{}, offer.Draft{}, offer.Draft{})

	w := serve(s, http.MethodDelete, "/offers/x2", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 2, store.Len())

	w = serve(s, http.MethodDelete, "/offers/x2", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_MethodNotAllowed(t *testing.T) {
	s, _ := newTestServer(t)

	w := serve(s, http.MethodPatch, "/offers/x1", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestNewServer_DefaultAddr(t *testing.T) {
	s, _ := newTestServer(t)
	assert.Equal(t, DefaultAddr, s.Addr())
}
