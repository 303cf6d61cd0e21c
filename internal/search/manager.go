package search

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/patrickmn/go-cache"
)

const sessionTTL = 30 * time.Minute

// Manager hands out search sessions keyed by an opaque token. Sessions are
// in-memory and expire after idle; an expired token simply yields a fresh
// session whose remote sources fetch again.
type Manager struct {
	assembler *Assembler
	sessions  *cache.Cache
}

func NewManager(assembler *Assembler) *Manager {
	return &Manager{
		assembler: assembler,
		sessions:  cache.New(sessionTTL, 10*time.Minute),
	}
}

// Get returns the session for the given id, or a new one when the id is
// empty or unknown. The returned session's id is what the caller should
// carry on subsequent requests.
func (m *Manager) Get(id string) *Session {
	if id != "" {
		if cached, found := m.sessions.Get(id); found {
			m.sessions.Set(id, cached, cache.DefaultExpiration)
			return cached.(*Session)
		}
	}

	session := NewSession(newSessionID(), m.assembler)
	m.sessions.Set(session.ID(), session, cache.DefaultExpiration)
	return session
}

func newSessionID() string {
	buf := make([]byte, 16)
	rand.Read(buf)
	return hex.EncodeToString(buf)
}
