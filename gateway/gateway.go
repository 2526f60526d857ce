// Package gateway implements the client for the stockdesk platform
// gateway: user management, market data, AI advice and stock
// management, all served from a single configured base URL.
//
// Every operation is a synchronous request/response pair. Failures are
// returned as errors, never raised out of band: a non-2xx response
// becomes an *APIError, a transport failure is wrapped and returned
// as-is, and local precondition failures use sentinel errors so that
// callers can treat all three the same way.
package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// DefaultBaseURL is the gateway address used when none is configured.
const DefaultBaseURL = "http://localhost:9000"

// Client issues requests against the gateway and maintains the session
// as a side effect of the authentication calls.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *Session
}

// NewClient returns a client for the gateway at baseURL, falling back
// to DefaultBaseURL when empty. The session is shared with every model
// built on the client; it is populated by Login and read back on every
// credential-based call.
func NewClient(baseURL string, session *Session) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if session == nil {
		session = NewSession()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		session:    session,
	}
}

// SetHTTPClient replaces the underlying HTTP client, e.g. to add a
// timeout. The client itself adds no timeout or retry of its own.
func (c *Client) SetHTTPClient(hc *http.Client) { c.httpClient = hc }

// Session returns the session this client reads and updates.
func (c *Client) Session() *Session { return c.session }

// headers returns the headers sent on every request: the JSON content
// type, plus the bearer token when one is stored. Credential-based
// endpoints still carry email/password in their payload; the token is
// never sufficient for those.
func (c *Client) headers() http.Header {
	h := make(http.Header)
	h.Set("Content-Type", "application/json")
	if token := c.session.Token(); token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

// credentials is the identity pair sent to the credential-based
// endpoints.
type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// do issues one request and returns the raw body of a 2xx response.
// Any other status is normalized into an *APIError.
func (c *Client) do(method, path string, query url.Values, payload any) ([]byte, error) {
	uri := c.baseURL + path
	if len(query) > 0 {
		uri += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("cannot encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, uri, body)
	if err != nil {
		return nil, fmt.Errorf("cannot create http request %q: %w", uri, err)
	}
	req.Header = c.headers()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot execute http request: %w", err)
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, fmt.Errorf("cannot read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp.StatusCode, buf.Bytes())
	}
	return buf.Bytes(), nil
}

// APIError is a non-2xx gateway response normalized to a single
// descriptive failure.
type APIError struct {
	Status int
	Detail string
}

// Error formats the failure as "API Error: {status} - {detail}".
func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("API Error: %d", e.Status)
	}
	return fmt.Sprintf("API Error: %d - %s", e.Status, e.Detail)
}

// newAPIError assembles the failure detail, preferring a "message"
// field in a JSON error body, then a bare JSON string body, then the
// raw response text.
func newAPIError(status int, body []byte) *APIError {
	detail := string(body)

	var withMessage struct {
		Message *string `json:"message"`
	}
	if err := json.Unmarshal(body, &withMessage); err == nil && withMessage.Message != nil {
		detail = *withMessage.Message
	} else {
		var s string
		if err := json.Unmarshal(body, &s); err == nil {
			detail = s
		}
	}
	return &APIError{Status: status, Detail: detail}
}

// decodeText interprets a free-form response body: a JSON string is
// unquoted, anything else is relayed as raw text. A non-JSON 2xx body
// is a legal success outcome for the free-form endpoints.
func decodeText(body []byte) string {
	var s string
	if err := json.Unmarshal(body, &s); err == nil {
		return s
	}
	return string(body)
}
