package admin

import "sync"

// Store keeps one draft per admin session id. The original single-page
// panel kept this state in component memory with an advisory uploading
// flag; here every transition runs under the store lock so two browser
// tabs racing the same draft cannot interleave.
type Store struct {
	mu     sync.Mutex
	drafts map[string]*Draft
}

func NewStore() *Store {
	return &Store{drafts: make(map[string]*Draft)}
}

// With runs fn against the session's draft, creating it on first use.
// Long-running work (upload batches) must not happen inside fn; claim
// the upload slot here, do the network calls outside, then re-enter.
func (s *Store) With(sessionID string, fn func(d *Draft) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[sessionID]
	if !ok {
		d = &Draft{}
		s.drafts[sessionID] = d
	}
	return fn(d)
}

// Snapshot returns a copy of the session's draft for rendering.
func (s *Store) Snapshot(sessionID string) Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.drafts[sessionID]; ok {
		cp := *d
		cp.PendingImages = append([]string(nil), d.PendingImages...)
		return cp
	}
	return Draft{}
}

// Drop forgets a session's draft (logout).
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, sessionID)
}
