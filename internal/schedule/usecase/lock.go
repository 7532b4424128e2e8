package usecase

import "sync"

// userLocks serializes read-modify-write sequences per user. Entries are
// dropped once nobody holds or waits on them.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*userLock
}

type userLock struct {
	mu   sync.Mutex
	refs int
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[string]*userLock)}
}

// Lock blocks until userID's lock is held and returns its release func.
func (k *userLocks) Lock(userID string) func() {
	k.mu.Lock()
	ul, ok := k.locks[userID]
	if !ok {
		ul = &userLock{}
		k.locks[userID] = ul
	}
	ul.refs++
	k.mu.Unlock()

	ul.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			ul.mu.Unlock()

			k.mu.Lock()
			ul.refs--
			if ul.refs == 0 {
				delete(k.locks, userID)
			}
			k.mu.Unlock()
		})
	}
}

func (k *userLocks) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
