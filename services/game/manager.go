package game

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"HighStakes/services/poker"
)

var ErrSessionNotFound = errors.New("run not found")

type entry struct {
	mu         sync.Mutex
	session    *Session
	lastActive time.Time
}

// Manager keeps the live runs of a server. The map is guarded by a RWMutex
// and every run has its own mutex, so two runs never wait on each other.
type Manager struct {
	sessions map[string]*entry
	mutex    sync.RWMutex
	newRNG   func() poker.RandomSource
	onDelete []func(id string)
}

// NewManager creates an empty registry. newRNG gives every new run its own
// random source; nil seeds one from the clock.
func NewManager(newRNG func() poker.RandomSource) *Manager {
	if newRNG == nil {
		newRNG = func() poker.RandomSource {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		}
	}
	return &Manager{
		sessions: make(map[string]*entry),
		newRNG:   newRNG,
	}
}

// Create starts a new run and returns its first state.
func (m *Manager) Create() State {
	s := NewSession(m.newRNG())
	st := s.Snapshot()

	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.sessions[s.ID] = &entry{session: s, lastActive: time.Now()}
	return st
}

func (m *Manager) Get(id string) (State, error) {
	var st State
	err := m.With(id, func(s *Session) error {
		st = s.Snapshot()
		return nil
	})
	return st, err
}

// With runs fn while holding the run's lock. fn must not call back into
// the Manager.
func (m *Manager) With(id string, fn func(s *Session) error) error {
	m.mutex.RLock()
	e, ok := m.sessions[id]
	m.mutex.RUnlock()
	if !ok {
		return ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session == nil { // deleted while we waited
		return ErrSessionNotFound
	}
	e.lastActive = time.Now()
	return fn(e.session)
}

// OnDelete registers fn to be called with the id of every run that is
// deleted or pruned. Register hooks before serving.
func (m *Manager) OnDelete(fn func(id string)) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.onDelete = append(m.onDelete, fn)
}

func (m *Manager) Delete(id string) error {
	if !m.remove(id, func(*entry) bool { return true }) {
		return ErrSessionNotFound
	}
	return nil
}

// deleteIfIdle drops the run only if nobody used it since cutoff.
func (m *Manager) deleteIfIdle(id string, cutoff time.Time) bool {
	return m.remove(id, func(e *entry) bool { return e.lastActive.Before(cutoff) })
}

// remove deletes the run when drop agrees, deciding under the run's lock,
// then calls the delete hooks outside every lock.
func (m *Manager) remove(id string, drop func(e *entry) bool) bool {
	m.mutex.Lock()
	e, ok := m.sessions[id]
	if !ok {
		m.mutex.Unlock()
		return false
	}

	e.mu.Lock()
	if !drop(e) {
		e.mu.Unlock()
		m.mutex.Unlock()
		return false
	}
	delete(m.sessions, id)
	e.session = nil
	e.mu.Unlock()
	hooks := m.onDelete
	m.mutex.Unlock()

	for _, fn := range hooks {
		fn(id)
	}
	return true
}

func (m *Manager) Len() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.sessions)
}

// Prune drops the runs nobody touched for maxIdle and returns how many
// were dropped.
func (m *Manager) Prune(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)
	var stale []string

	m.mutex.RLock()
	for id, e := range m.sessions {
		e.mu.Lock()
		if e.lastActive.Before(cutoff) {
			stale = append(stale, id)
		}
		e.mu.Unlock()
	}
	m.mutex.RUnlock()

	pruned := 0
	for _, id := range stale {
		if m.deleteIfIdle(id, cutoff) {
			pruned++
		}
	}
	return pruned
}
