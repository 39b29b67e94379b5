package streams

import (
	"sync"
	"testing"

	"hit-reports/internal/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSubscriber records sends and close calls; sendErr makes it report dead.
type fakeSubscriber struct {
	mu      sync.Mutex
	sent    []events.ReportEvent
	closed  bool
	sendErr error
}

func (s *fakeSubscriber) Send(event events.ReportEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent = append(s.sent, event)
	return nil
}

func (s *fakeSubscriber) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

func (s *fakeSubscriber) sentEvents() []events.ReportEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]events.ReportEvent(nil), s.sent...)
}

func (s *fakeSubscriber) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func TestSubscriberRegistry_RegisterAndSnapshot(t *testing.T) {
	t.Parallel()

	registry := NewSubscriberRegistry()
	subA := &fakeSubscriber{}
	subB := &fakeSubscriber{}

	registry.Register("alpha", subA)
	registry.Register("alpha", subB)
	registry.Register("beta", &fakeSubscriber{})

	assert.Len(t, registry.SubscribersFor("alpha"), 2)
	assert.Len(t, registry.SubscribersFor("beta"), 1)
	assert.Empty(t, registry.SubscribersFor("gamma"))
}

func TestSubscriberRegistry_Unregister(t *testing.T) {
	t.Parallel()

	registry := NewSubscriberRegistry()
	sub := &fakeSubscriber{}

	registry.Register("alpha", sub)
	registry.Unregister("alpha", sub)

	assert.Empty(t, registry.SubscribersFor("alpha"))

	// Unregistering an unknown subscriber is harmless.
	registry.Unregister("alpha", &fakeSubscriber{})
	registry.Unregister("unknown", sub)
}

func TestSubscriberRegistry_CloseDropsEveryone(t *testing.T) {
	t.Parallel()

	registry := NewSubscriberRegistry()
	subA := &fakeSubscriber{}
	subB := &fakeSubscriber{}
	registry.Register("alpha", subA)
	registry.Register("beta", subB)

	registry.Close()

	assert.True(t, subA.isClosed())
	assert.True(t, subB.isClosed())
	assert.Empty(t, registry.SubscribersFor("alpha"))

	// Registration after close is rejected by closing the subscriber.
	late := &fakeSubscriber{}
	registry.Register("alpha", late)
	assert.True(t, late.isClosed())
	assert.Empty(t, registry.SubscribersFor("alpha"))
}

func TestSubscriberRegistry_SnapshotIsolation(t *testing.T) {
	t.Parallel()

	registry := NewSubscriberRegistry()
	sub := &fakeSubscriber{}
	registry.Register("alpha", sub)

	snapshot := registry.SubscribersFor("alpha")
	require.Len(t, snapshot, 1)

	registry.Unregister("alpha", sub)
	assert.Len(t, snapshot, 1, "snapshot is unaffected by later mutation")
}
