package services

import (
	"sync"
	"time"

	"bootcamp-landing/pkg/form"
)

// DefaultSessionTTL is how long an untouched form is kept in memory.
const DefaultSessionTTL = 30 * time.Minute

// HolderFactory creates the form for a new visitor session.
type HolderFactory func() *form.Holder

type formSession struct {
	holder   *form.Holder
	lastSeen time.Time
}

// FormSessions keeps one form.Holder per visitor session. Idle sessions are
// evicted and their holders closed, which cancels pending reset timers.
type FormSessions struct {
	newHolder HolderFactory
	ttl       time.Duration
	now       func() time.Time

	mu       sync.Mutex
	sessions map[string]*formSession

	stop     chan struct{}
	stopOnce sync.Once
}

// NewFormSessions creates a store. Call StartJanitor to evict idle sessions
// in the background and Close on shutdown.
func NewFormSessions(newHolder HolderFactory, ttl time.Duration) *FormSessions {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &FormSessions{
		newHolder: newHolder,
		ttl:       ttl,
		now:       time.Now,
		sessions:  make(map[string]*formSession),
		stop:      make(chan struct{}),
	}
}

// Get returns the holder for id, creating it on first use.
func (s *FormSessions) Get(id string) *form.Holder {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, exists := s.sessions[id]
	if !exists {
		sess = &formSession{holder: s.newHolder()}
		s.sessions[id] = sess
	}
	sess.lastSeen = s.now()
	return sess.holder
}

// Snapshot returns the form state for id without creating a session.
// Unknown ids read as an empty, idle form.
func (s *FormSessions) Snapshot(id string) form.Snapshot {
	s.mu.Lock()
	sess, exists := s.sessions[id]
	if exists {
		sess.lastSeen = s.now()
	}
	s.mu.Unlock()

	if !exists {
		return form.Snapshot{}
	}
	return sess.holder.Snapshot()
}

// Len returns the number of live sessions.
func (s *FormSessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Evict closes and removes sessions idle for longer than the TTL. It returns
// how many were removed.
func (s *FormSessions) Evict() int {
	s.mu.Lock()
	var expired []*form.Holder
	for id, sess := range s.sessions {
		if s.now().Sub(sess.lastSeen) > s.ttl {
			expired = append(expired, sess.holder)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, h := range expired {
		h.Close()
	}
	return len(expired)
}

// StartJanitor evicts idle sessions every interval until Close.
func (s *FormSessions) StartJanitor(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Evict()
			case <-s.stop:
				return
			}
		}
	}()
}

// Close stops the janitor and closes every holder.
func (s *FormSessions) Close() {
	s.stopOnce.Do(func() { close(s.stop) })

	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*formSession)
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.holder.Close()
	}
}
