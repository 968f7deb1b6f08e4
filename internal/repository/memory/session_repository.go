package memory

import (
	"sync"

	"course-mentor-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps dialogue state in memory for the process lifetime.
// Sessions have no defined expiry, so entries never get purged.
type SessionRepository struct {
	cache *cache.Cache

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		cache: cache.New(cache.NoExpiration, 0),
		locks: make(map[string]*sync.Mutex),
	}
}

// Acquire serializes turn processing per session id: the returned func
// releases the lock. Turns for distinct session ids never contend.
func (r *SessionRepository) Acquire(sessionID string) func() {
	r.mu.Lock()
	l, ok := r.locks[sessionID]
	if !ok {
		l = &sync.Mutex{}
		r.locks[sessionID] = l
	}
	r.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// GetOrCreate returns the session for the id, creating a default-initialized
// one on first use.
func (r *SessionRepository) GetOrCreate(sessionID string) *store.Session {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session)
	}
	session := &store.Session{ID: sessionID}
	r.cache.Set(sessionID, session, cache.NoExpiration)
	return session
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.ID, session, cache.NoExpiration)
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
