// Package api is the client for the Sentinel REST backend.
//
// Every call goes through Client.Do, which applies the defaults the backend
// expects (GET, JSON content type), merges caller options over them and
// turns every failure into an error that is both logged and returned:
//
//   - transport failures wrap the underlying net error (code API)
//   - non-2xx responses are *RequestError carrying the status code
//   - bodies that are not valid JSON wrap the decode error (code API)
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sentinel-lite/sentinel/internal/errors"
	"github.com/sentinel-lite/sentinel/internal/logger"
)

// DefaultBaseURL is where the backend listens out of the box.
const DefaultBaseURL = "http://localhost:8000"

// RequestIDHeader is stamped on every outgoing request.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody caps how much of a failed response is kept for diagnostics.
const maxErrorBody = 4096

// Client talks to the Sentinel REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
	requestID  func() string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets a whole-request timeout. Zero leaves the network stack's
// defaults in charge.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets where request failures are logged.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRequestIDFunc overrides request ID generation (tests).
func WithRequestIDFunc(fn func() string) Option {
	return func(c *Client) {
		if fn != nil {
			c.requestID = fn
		}
	}
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logger.NewEnvLogger("[api]"),
		requestID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root this client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// request holds the per-call settings that RequestOptions adjust.
type request struct {
	method string
	body   interface{}
	query  url.Values
	header http.Header
}

// RequestOption adjusts a single call made through Do.
type RequestOption func(*request)

// WithMethod sets the HTTP method (default GET).
func WithMethod(method string) RequestOption {
	return func(r *request) {
		r.method = method
	}
}

// WithBody sets a value to be JSON-encoded as the request body.
func WithBody(body interface{}) RequestOption {
	return func(r *request) {
		r.body = body
	}
}

// WithQuery adds query parameters.
func WithQuery(q url.Values) RequestOption {
	return func(r *request) {
		for k, vs := range q {
			for _, v := range vs {
				r.query.Add(k, v)
			}
		}
	}
}

// WithHeader sets a header, replacing any default of the same name.
func WithHeader(key, value string) RequestOption {
	return func(r *request) {
		r.header.Set(key, value)
	}
}

func defaultRequest() *request {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	return &request{
		method: http.MethodGet,
		query:  url.Values{},
		header: h,
	}
}

// Do performs a request against path and decodes a successful JSON response
// into out. out may be nil when the caller doesn't need the body.
func (c *Client) Do(ctx context.Context, path string, out interface{}, opts ...RequestOption) error {
	r := defaultRequest()
	for _, opt := range opts {
		opt(r)
	}

	target := c.baseURL + path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			c.logger.Error("%s %s: encode body: %v", r.method, path, err)
			return errors.WrapWithCode(err, errors.ErrInput,
				"Couldn't encode the request body for "+path,
				"This is a bug; please report it")
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		c.logger.Error("%s %s: build request: %v", r.method, path, err)
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid API address: "+c.baseURL,
			"Set api.url to something like http://localhost:8000")
	}
	req.Header = r.header.Clone()
	reqID := c.requestID()
	req.Header.Set(RequestIDHeader, reqID)

	c.logger.Debug("%s %s (request %s)", r.method, target, reqID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			c.logger.Debug("%s %s canceled: %v", r.method, path, ctx.Err())
			return ctx.Err()
		}
		c.logger.Error("%s %s failed: %v", r.method, path, err)
		return errors.WrapWithCode(err, errors.ErrAPI,
			"Couldn't reach the Sentinel API at "+c.baseURL,
			"Check the backend is running and api.url is correct")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		reqErr := &RequestError{
			StatusCode: resp.StatusCode,
			Method:     r.method,
			Path:       path,
			Detail:     extractDetail(detail),
		}
		c.logger.Error("%s (request %s)", reqErr.Error(), reqID)
		return reqErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		// Mutation replies may be empty. A read must carry a body.
		if err == io.EOF && r.method != http.MethodGet {
			return nil
		}
		c.logger.Error("%s %s: decode response: %v", r.method, path, err)
		return errors.WrapWithCode(&MalformedError{Path: path, Err: err}, errors.ErrAPI,
			"Malformed response from "+path,
			"Check that api.url points at a Sentinel backend")
	}
	return nil
}

// extractDetail pulls the "detail" field FastAPI-style backends put in error
// bodies, falling back to the trimmed raw text.
func extractDetail(body []byte) string {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return ""
	}
	var payload struct {
		Detail interface{} `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != nil {
		if s, ok := payload.Detail.(string); ok {
			return s
		}
		if b, err := json.Marshal(payload.Detail); err == nil {
			return string(b)
		}
	}
	return string(body)
}
