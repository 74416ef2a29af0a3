package service

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRoomLocksSerializePerRoom(t *testing.T) {
	locks := newRoomLocks()
	roomID := uuid.New()

	// Without mutual exclusion this counter loop is a data race the
	// -race detector would catch, and the final count would drift.
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock(roomID)
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestRoomLocksIndependentRooms(t *testing.T) {
	locks := newRoomLocks()
	roomA := uuid.New()
	roomB := uuid.New()

	unlockA := locks.Lock(roomA)
	defer unlockA()

	// Holding A must not block B.
	done := make(chan struct{})
	go func() {
		unlockB := locks.Lock(roomB)
		unlockB()
		close(done)
	}()
	<-done
}

func TestRoomLocksReuseSameMutex(t *testing.T) {
	locks := newRoomLocks()
	roomID := uuid.New()

	unlock := locks.Lock(roomID)
	unlock()

	assert.Len(t, locks.locks, 1)
	unlock = locks.Lock(roomID)
	unlock()
	assert.Len(t, locks.locks, 1)
}
