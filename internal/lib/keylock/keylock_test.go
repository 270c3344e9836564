package keylock_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"photofolio/internal/lib/keylock"
)

func TestLockSerializesSameKey(t *testing.T) {
	var l keylock.Locker

	var inside, maxInside int32
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			unlock := l.Lock("photo")
			defer unlock()

			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
		}()
	}
	wg.Wait()

	require.Equal(t, int32(1), maxInside)
	require.Equal(t, 0, l.Len())
}

func TestLockDifferentKeysIndependent(t *testing.T) {
	var l keylock.Locker

	unlockA := l.Lock("a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlock := l.Lock("b")
		unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on b blocked by a")
	}
}

func TestUnlockTwiceIsNoop(t *testing.T) {
	var l keylock.Locker

	unlock := l.Lock("a")
	unlock()
	unlock()

	require.Equal(t, 0, l.Len())

	unlock = l.Lock("a")
	unlock()
}
