package consultation

import (
	"sync"

	"github.com/google/uuid"

	"healthcare-chatbot/internal/dialogue"
)

// SessionStore keeps open dialogue sessions in memory, keyed by session ID.
// Sessions are removed once finalized; nothing outlives the consultation.
// The lock only guards the map itself: each session's steps are strictly
// sequential from its own client.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*dialogue.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[uuid.UUID]*dialogue.Session)}
}

func (st *SessionStore) Put(s *dialogue.Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID] = s
}

func (st *SessionStore) Get(id uuid.UUID) (*dialogue.Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	return s, ok
}

func (st *SessionStore) Delete(id uuid.UUID) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}
