package auth

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// ReplayGuard remembers consumed token IDs until they would have expired anyway.
// Entries leave only by expiry, never by capacity.
type ReplayGuard struct {
	mu   sync.Mutex
	seen *expirable.LRU[string, struct{}]
}

func NewReplayGuard(ttl time.Duration) *ReplayGuard {
	return &ReplayGuard{
		seen: expirable.NewLRU[string, struct{}](0, nil, ttl),
	}
}

// Consume records id and reports whether it was seen for the first time.
func (g *ReplayGuard) Consume(id string) bool {
	if id == "" {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.seen.Get(id); ok {
		return false
	}
	g.seen.Add(id, struct{}{})
	return true
}
