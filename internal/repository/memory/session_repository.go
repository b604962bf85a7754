package memory

import (
	"time"

	"agri-solve-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps live app sessions in process memory. Sessions
// expire after a period of inactivity and are recreated from the database
// on the next authenticated request.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	c := cache.New(12*time.Hour, 15*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(userId string, session *store.AppSession) {
	r.cache.Set(userId, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(userId string) (*store.AppSession, bool) {
	if x, found := r.cache.Get(userId); found {
		return x.(*store.AppSession), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(userId string) {
	r.cache.Delete(userId)
}
