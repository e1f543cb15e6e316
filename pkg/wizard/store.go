package wizard

import (
	"sync"
	"time"

	"github.com/directpavers/paverquote/pkg/domain"
	"github.com/directpavers/paverquote/pkg/models"
)

// Store keeps active wizard sessions in memory with a sliding TTL. Sessions
// are throwaway state; losing them on restart only sends the visitor back to
// the welcome step.
type Store struct {
	sessions      map[string]*entry
	mu            sync.RWMutex
	sessionTTL    time.Duration
	cleanupPeriod time.Duration
	done          chan struct{}
}

type entry struct {
	session  *Session
	lastSeen time.Time
}

// NewStore creates a session store and starts its janitor
func NewStore(sessionTTL, cleanupPeriod time.Duration) *Store {
	s := &Store{
		sessions:      make(map[string]*entry),
		sessionTTL:    sessionTTL,
		cleanupPeriod: cleanupPeriod,
		done:          make(chan struct{}),
	}
	go s.cleanupExpired()
	return s
}

// Put stores a session and marks it fresh
func (s *Store) Put(session *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = &entry{session: session, lastSeen: time.Now()}
}

// Get returns a copy of the session, refreshing its TTL
func (s *Store) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, exists := s.sessions[id]
	if !exists || time.Since(e.lastSeen) > s.sessionTTL {
		delete(s.sessions, id)
		return nil, domain.NewNotFoundError("session")
	}
	e.lastSeen = time.Now()

	copied := copySession(e.session)
	return copied, nil
}

// Update applies fn to the session under the store lock. Errors from fn leave
// the stored session untouched.
func (s *Store) Update(id string, fn func(*Session) error) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, exists := s.sessions[id]
	if !exists || time.Since(e.lastSeen) > s.sessionTTL {
		delete(s.sessions, id)
		return nil, domain.NewNotFoundError("session")
	}

	working := copySession(e.session)
	if err := fn(working); err != nil {
		return nil, err
	}

	working.UpdatedAt = time.Now()
	e.session = working
	e.lastSeen = time.Now()

	return copySession(working), nil
}

// Delete removes a session
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Count returns the number of live sessions
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close stops the janitor goroutine
func (s *Store) Close() {
	close(s.done)
}

func (s *Store) cleanupExpired() {
	ticker := time.NewTicker(s.cleanupPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.mu.Lock()
			now := time.Now()
			for id, e := range s.sessions {
				if now.Sub(e.lastSeen) > s.sessionTTL {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		}
	}
}

func copySession(src *Session) *Session {
	dst := *src
	dst.Photos = append([]PhotoEntry(nil), src.Photos...)
	dst.Zones = append([]models.DeliveryZone(nil), src.Zones...)
	if src.Material != nil {
		m := *src.Material
		dst.Material = &m
	}
	if src.Labor != nil {
		l := *src.Labor
		dst.Labor = &l
	}
	return &dst
}
