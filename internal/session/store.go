// Package session keeps per-browser chat transcripts in memory.
package session

import (
	"sync"
	"time"
)

// Transcript roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is a single entry in a chat transcript.
type Turn struct {
	Role string
	Text string
}

type conversation struct {
	turns        []Turn
	lastActivity time.Time
}

// Options configures a Store.
type Options struct {
	// MaxTurns caps the transcript length per session. Oldest turns are
	// dropped first. Values <= 0 fall back to the default of 40.
	MaxTurns int
}

// Store holds chat transcripts keyed by session ID.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*conversation
	maxTurns int
}

// NewStore creates an empty Store.
func NewStore(opts Options) *Store {
	maxTurns := opts.MaxTurns
	if maxTurns <= 0 {
		maxTurns = 40
	}

	return &Store{
		sessions: make(map[string]*conversation),
		maxTurns: maxTurns,
	}
}

// Append adds turns to the end of a session's transcript, dropping the
// oldest entries once the cap is exceeded.
func (s *Store) Append(id string, turns ...Turn) {
	if len(turns) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	conv := s.getOrCreateLocked(id)
	conv.lastActivity = time.Now()

	conv.turns = append(conv.turns, turns...)
	if len(conv.turns) > s.maxTurns {
		conv.turns = conv.turns[len(conv.turns)-s.maxTurns:]
	}
}

// Snapshot returns a copy of a session's transcript.
func (s *Store) Snapshot(id string) []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv := s.getOrCreateLocked(id)
	conv.lastActivity = time.Now()

	turns := make([]Turn, len(conv.turns))
	copy(turns, conv.turns)
	return turns
}

// Clear empties a session's transcript without removing the session.
func (s *Store) Clear(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if conv, ok := s.sessions[id]; ok {
		conv.turns = nil
		conv.lastActivity = time.Now()
	}
}

func (s *Store) getOrCreateLocked(id string) *conversation {
	if conv, ok := s.sessions[id]; ok {
		return conv
	}

	conv := &conversation{lastActivity: time.Now()}
	s.sessions[id] = conv
	return conv
}
