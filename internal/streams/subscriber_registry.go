package streams

import (
	"sync"

	"hit-reports/internal/events"
)

// Subscriber receives every report event published for the host it registered
// under. A Send error marks the subscriber dead; the dispatcher drops it.
type Subscriber interface {
	Send(event events.ReportEvent) error
	Close()
}

// SubscriberRegistry tracks report subscribers keyed by host. It is created
// once at process start, injected wherever needed, and closed at shutdown;
// there is deliberately no package-level instance.
type SubscriberRegistry struct {
	mu     sync.RWMutex
	byHost map[string]map[Subscriber]struct{}
	closed bool
}

func NewSubscriberRegistry() *SubscriberRegistry {
	return &SubscriberRegistry{byHost: make(map[string]map[Subscriber]struct{})}
}

// Register subscribes the client to every report published for host.
func (r *SubscriberRegistry) Register(host string, sub Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		sub.Close()
		return
	}
	if _, ok := r.byHost[host]; !ok {
		r.byHost[host] = make(map[Subscriber]struct{})
	}
	r.byHost[host][sub] = struct{}{}
}

func (r *SubscriberRegistry) Unregister(host string, sub Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if subs, ok := r.byHost[host]; ok {
		delete(subs, sub)
		if len(subs) == 0 {
			delete(r.byHost, host)
		}
	}
}

// SubscribersFor snapshots the current subscribers for host.
func (r *SubscriberRegistry) SubscribersFor(host string) []Subscriber {
	r.mu.RLock()
	defer r.mu.RUnlock()
	subs := make([]Subscriber, 0, len(r.byHost[host]))
	for sub := range r.byHost[host] {
		subs = append(subs, sub)
	}
	return subs
}

// Close drops and closes every subscriber. Further registrations are closed
// immediately.
func (r *SubscriberRegistry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	for host, subs := range r.byHost {
		for sub := range subs {
			sub.Close()
		}
		delete(r.byHost, host)
	}
}
