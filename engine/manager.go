package engine

import (
	"fmt"
	"sync"

	"checkers/game"
	"checkers/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Manager keeps the sessions of the process in memory. The manager is safe
// for concurrent use; each session it hands out still has a single owner.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	options  []searcher.Option
}

// NewManager returns a manager whose sessions share the given search options.
func NewManager(options ...searcher.Option) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		options:  options,
	}
}

func (m *Manager) Create(human game.Side, setup bool) (string, *Session, error) {
	session, err := NewSession(human, setup, m.options...)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create session: %w", err)
	}

	id := uuid.New().String()
	m.mu.Lock()
	m.sessions[id] = session
	m.mu.Unlock()

	log.Info().Str("session", id).Msg("session created")
	return id, session, nil
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, ErrNoSession)
	}
	return session, nil
}

func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sessions)
}
