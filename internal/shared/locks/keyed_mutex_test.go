package locks

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	t.Parallel()

	km := NewKeyedMutex()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := km.Lock("2025-12-28|intranet")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestKeyedMutex_DifferentKeysIndependent(t *testing.T) {
	t.Parallel()

	km := NewKeyedMutex()

	unlockA := km.Lock("key-a")
	// A held lock on one key must not block another key.
	unlockB := km.Lock("key-b")
	unlockB()
	unlockA()

	// Relocking a released key succeeds.
	unlock := km.Lock("key-a")
	unlock()
}
