package services

import "sync"

// userLocker serializes mutating operations per user ID so that the balance
// read-modify-write and the ledger append form one critical section.
// Locks are created on first use and kept for the process lifetime; the
// user ID space in practice is small enough that they are never reaped.
type userLocker struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newUserLocker() *userLocker {
	return &userLocker{
		locks: make(map[int64]*sync.Mutex),
	}
}

// lock acquires the mutex for userID and returns its unlock function.
func (l *userLocker) lock(userID int64) func() {
	l.mu.Lock()
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
