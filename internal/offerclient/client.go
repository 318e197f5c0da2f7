// Package offerclient talks to the Offers Service, the REST collection at
// {base}/offers that stores every offer the console manages.
package offerclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"offeradmin/internal/jsonutil"
	"offeradmin/internal/offer"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// DefaultBaseURL is where the Offers Service listens in local setups.
const DefaultBaseURL = "http://localhost:3000"

const (
	tracerName = "offeradmin/offerclient"
	// maxErrorRead bounds how much of a failed response is kept for diagnostics.
	maxErrorRead = 4 << 10
	maxErrorBody = 200
)

// Client is an Offers Service client. It is safe for concurrent use.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	timeout        time.Duration
	tracerProvider oteltrace.TracerProvider
	tracer         oteltrace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client. Its transport is still wrapped for tracing.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets a per-request timeout. Zero keeps the transport default (none).
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithTracerProvider records spans for every call on tp.
func WithTracerProvider(tp oteltrace.TracerProvider) Option {
	return func(c *Client) {
		c.tracerProvider = tp
	}
}

// New creates a client for the service rooted at baseURL (e.g. "http://localhost:3000").
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("offers url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("offers url %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("offers url %q: missing host", baseURL)
	}

	c := &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		httpClient:     &http.Client{},
		tracerProvider: noop.NewTracerProvider(),
	}
	for _, opt := range opts {
		opt(c)
	}

	base := c.httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	hc := *c.httpClient
	if c.timeout > 0 {
		hc.Timeout = c.timeout
	}
	hc.Transport = otelhttp.NewTransport(base, otelhttp.WithTracerProvider(c.tracerProvider))
	c.httpClient = &hc
	c.tracer = c.tracerProvider.Tracer(tracerName)
	return c, nil
}

// BaseURL returns the service root the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// List fetches the whole collection, in server order.
func (c *Client) List(ctx context.Context) ([]offer.Offer, error) {
	var offers []offer.Offer
	if err := c.do(ctx, "list", http.MethodGet, "", nil, &offers); err != nil {
		return nil, err
	}
	if offers == nil {
		offers = []offer.Offer{}
	}
	return offers, nil
}

// Create stores d as a new offer and returns it with its assigned id.
func (c *Client) Create(ctx context.Context, d offer.Draft) (offer.Offer, error) {
	var created offer.Offer
	if err := c.do(ctx, "create", http.MethodPost, "", d, &created); err != nil {
		return offer.Offer{}, err
	}
	return created, nil
}

// Update replaces the content of offer id with d and returns the stored offer.
func (c *Client) Update(ctx context.Context, id string, d offer.Draft) (offer.Offer, error) {
	var updated offer.Offer
	if err := c.do(ctx, "update", http.MethodPut, id, d, &updated); err != nil {
		return offer.Offer{}, err
	}
	return updated, nil
}

// Delete removes offer id. The response body is ignored.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, "delete", http.MethodDelete, id, nil, nil)
}

// do performs one call. id selects /offers/{id} when non-empty; body is sent
// as JSON when non-nil; out receives the decoded response when non-nil.
func (c *Client) do(ctx context.Context, op, method, id string, body, out interface{}) (err error) {
	ctx, span := c.tracer.Start(ctx, "offers."+op,
		oteltrace.WithSpanKind(oteltrace.SpanKindClient),
		oteltrace.WithAttributes(attribute.String("offeradmin.offer.op", op)),
	)
	if id != "" {
		span.SetAttributes(attribute.String("offeradmin.offer.id", id))
	}
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	fail := func(kind Kind, status int, respBody []byte, cause error) error {
		return &Error{
			Kind:       kind,
			Op:         op,
			ID:         id,
			StatusCode: status,
			Body:       snippet(respBody),
			Err:        cause,
		}
	}

	endpoint := c.baseURL + "/offers"
	if id != "" {
		endpoint += "/" + url.PathEscape(id)
	}

	var reqBody io.Reader
	if body != nil {
		b, mErr := json.Marshal(body)
		if mErr != nil {
			return fail(KindUnknown, 0, nil, fmt.Errorf("encode request: %w", mErr))
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fail(KindUnknown, 0, nil, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fail(KindTransport, 0, nil, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		kind := KindStatus
		if resp.StatusCode == http.StatusNotFound {
			kind = KindNotFound
		}
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorRead))
		return fail(kind, resp.StatusCode, respBody, fmt.Errorf("unexpected status %s", resp.Status))
	}

	if out == nil {
		return nil
	}
	// Success bodies are read whole: the collection has no size limit.
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail(KindTransport, resp.StatusCode, nil, fmt.Errorf("read response: %w", err))
	}
	if err := jsonutil.UnmarshalWithContext(respBody, out, "decode "+op+" response"); err != nil {
		return fail(KindDecode, resp.StatusCode, respBody, err)
	}
	return nil
}

// snippet trims a response body for error messages, cutting on a rune boundary.
func snippet(b []byte) string {
	s := strings.ToValidUTF8(strings.TrimSpace(string(b)), "\uFFFD")
	if len(s) <= maxErrorBody {
		return s
	}
	cut := maxErrorBody
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}
