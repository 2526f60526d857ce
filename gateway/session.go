package gateway

import "sync"

// Session holds the client-side authentication state: the bearer token
// returned by login, the resolved user id, and the credential pair that
// the gateway's credential-based endpoints require on every call.
//
// One Session is created per client and shared by every model built on
// it. Writes are serialized so the client may be handed to more than
// one goroutine, even though each call is a plain synchronous
// request/response.
type Session struct {
	mu       sync.Mutex
	token    string
	userID   string
	email    string
	password string
}

// NewSession returns an empty session.
func NewSession() *Session { return &Session{} }

// SetToken replaces the stored bearer token.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// SetCredentials replaces the stored identity pair. Email and password
// are always set, and later cleared, together.
func (s *Session) SetCredentials(email, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.email = email
	s.password = password
}

// SetUserID replaces the stored account identifier.
func (s *Session) SetUserID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = id
}

// Clear resets every field. Used on logout and on failed login so that
// no partial credential survives a half-authenticated state.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.userID = ""
	s.email = ""
	s.password = ""
}

// Token returns the stored bearer token, empty when absent.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// UserID returns the stored account identifier, empty when absent.
func (s *Session) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

// Credentials returns the stored identity pair, empty strings when
// absent.
func (s *Session) Credentials() (email, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.email, s.password
}
