package locks

import "sync"

// KeyedMutex serializes critical sections per string key. Entries are kept
// for the process lifetime; key cardinality is expected to stay small
// (date+host pairs).
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for key and returns its unlock function.
func (k *KeyedMutex) Lock(key string) func() {
	k.mu.Lock()
	keyLock, ok := k.locks[key]
	if !ok {
		keyLock = &sync.Mutex{}
		k.locks[key] = keyLock
	}
	k.mu.Unlock()

	keyLock.Lock()
	return keyLock.Unlock
}
