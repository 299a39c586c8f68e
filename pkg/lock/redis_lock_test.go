package lock

import (
	"context"
	"testing"
)

func TestAcquireWithoutRedisAlwaysGrants(t *testing.T) {
	locker := NewSessionLocker(nil, 0)

	release, ok := locker.Acquire(context.Background(), "session-1")
	if !ok {
		t.Fatal("Acquire() = false, want true with locking disabled")
	}
	if release == nil {
		t.Fatal("Acquire() returned nil release function")
	}
	release()

	// A second acquire must also succeed; there is nothing to contend on.
	release2, ok := locker.Acquire(context.Background(), "session-1")
	if !ok {
		t.Fatal("second Acquire() = false, want true")
	}
	release2()
}

func TestAcquireNilLocker(t *testing.T) {
	var locker *SessionLocker

	release, ok := locker.Acquire(context.Background(), "session-1")
	if !ok {
		t.Fatal("Acquire() on nil locker = false, want true")
	}
	release()
}
