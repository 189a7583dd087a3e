package gateway

import "sync"

// Session holds the bearer token for one authenticated user. It is an
// explicit object handed to the gateway at construction, with its
// lifecycle tied to login and logout rather than ambient globals.
type Session struct {
	mu    sync.RWMutex
	token string
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

func (s *Session) Authenticated() bool {
	return s.Token() != ""
}
