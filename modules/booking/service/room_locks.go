package service

import (
	"sync"

	"github.com/google/uuid"
)

// roomLocks hands out one mutex per room identity so that
// check-then-write on a room is serialized while distinct rooms proceed
// concurrently. Locks are never evicted; the room registry is small and
// slow-changing.
type roomLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newRoomLocks() *roomLocks {
	return &roomLocks{locks: make(map[uuid.UUID]*sync.Mutex)}
}

// Lock acquires the mutex for roomID, creating it on first use, and
// returns the unlock function.
func (r *roomLocks) Lock(roomID uuid.UUID) func() {
	r.mu.Lock()
	l, ok := r.locks[roomID]
	if !ok {
		l = &sync.Mutex{}
		r.locks[roomID] = l
	}
	r.mu.Unlock()

	l.Lock()
	return l.Unlock
}
