package session

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"checkers/internal/checkers"
)

var ErrNotFound = errors.New("game not found")

// Session 一局棋。State 本身不是并发安全的，同一局只能由一个 goroutine 驱动。
type Session struct {
	ID        string
	State     *checkers.GameState
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Manager struct {
	mu    sync.RWMutex
	games map[string]*Session
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*Session)}
}

// NewGame 建局但不开始；调用方负责 ToggleTurnPlayer。
func (m *Manager) NewGame(opts checkers.Options) *Session {
	id := uuid.NewString()
	if opts.Logger != nil {
		opts.Logger = opts.Logger.With("game_id", id)
	}
	now := time.Now()
	s := &Session{
		ID:        id,
		State:     checkers.NewGameState(opts),
		CreatedAt: now,
		UpdatedAt: now,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[id] = s
	return s
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (m *Manager) Touch(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.games[id]
	if !ok {
		return ErrNotFound
	}
	s.UpdatedAt = time.Now()
	return nil
}

func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

// List 按创建时间排序。
func (m *Manager) List() []*Session {
	m.mu.RLock()
	out := make([]*Session, 0, len(m.games))
	for _, s := range m.games {
		out = append(out, s)
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
