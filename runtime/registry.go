package runtime

import (
	"chatroom/contract"
	"sync"

	"github.com/samber/lo"
)

// Registry is the live subscriber set of the hub.
// Sinks returns a copy so a broadcast never iterates the map itself.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]contract.EventSink // map subscriber -> Sink
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]contract.EventSink)}
}

func (r *Registry) Subscribe(subscriberID string, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[subscriberID] = sink
}

// Unsubscribe reports whether the subscriber was still registered.
func (r *Registry) Unsubscribe(subscriberID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[subscriberID]; !ok {
		return false
	}
	delete(r.sessions, subscriberID)
	return true
}

// Sinks takes a snapshot of every registered sink.
func (r *Registry) Sinks() []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Values(r.sessions)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
