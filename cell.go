package lazy

import (
	"sync"
	"sync/atomic"
)

// Guard states. A cell normally moves stateNone -> stateBusy -> stateDone on
// its first Get of a generation. A constructor panic moves it
// stateBusy -> stateBad instead, which is terminal until the next Reset.
const (
	stateNone uint32 = iota // no value, no constructor in flight
	stateBusy               // a constructor call is in flight
	stateDone               // value constructed and cached
	stateBad                // constructor panicked this generation
)

// Cell is a storage slot for a single lazily constructed value of type T.
// The zero Cell is ready to use. A Cell must not be copied after first use.
//
// Cells are meant to be package-level variables that live for the whole
// process; a Cell is never torn down individually. Reset recycles every
// initialized Cell at once, and the next Get starts a fresh generation with a
// freshly constructed value.
type Cell[T any] struct {
	state uint32 // one of the state constants above, accessed atomically
	mu    sync.Mutex
	value T
	next  node // intrusive registry link, non-nil only while registered
}

// Get returns a pointer to the cell's value, constructing it first if this is
// the cell's first access since process start or since the last Reset.
//
// When multiple goroutines call Get concurrently on an unconstructed cell,
// exactly one of them runs init; the rest block until it finishes, and every
// call returns a pointer to the same cached value. The pointer stays valid
// until the next Reset and must not be dereferenced after it.
//
// If init panics, the panic propagates to the winning caller and the cell is
// poisoned: every later Get in the same generation panics instead of retrying
// the constructor. Reset clears the poisoning along with the cached state.
//
// Because no call to Get returns until the one call to init returns, an init
// that calls Get on its own cell deadlocks.
func (c *Cell[T]) Get(init func() T) *T {
	// fast path: already constructed, no need to lock
	if atomic.LoadUint32(&c.state) == stateDone {
		return &c.value
	}
	return c.getSlow(init)
}

func (c *Cell[T]) getSlow(init func() T) *T {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch atomic.LoadUint32(&c.state) {
	case stateDone: // lost the race, the winner already finished
		return &c.value
	case stateBad:
		panic("lazy: Get on poisoned Cell: an earlier constructor panicked; call Reset to recover")
	}

	atomic.StoreUint32(&c.state, stateBusy)
	defer func() {
		// still stateBusy here means init panicked and we are unwinding;
		// poison the cell but keep it registered so Reset can revive it
		if atomic.LoadUint32(&c.state) == stateBusy {
			atomic.StoreUint32(&c.state, stateBad)
			register(c)
		}
	}()

	c.value = init()
	atomic.StoreUint32(&c.state, stateDone)
	register(c)
	return &c.value
}

// Initialized reports whether the cell currently holds a constructed value.
// It never blocks. If called concurrently with Get it may return false while
// the constructor is still running.
func (c *Cell[T]) Initialized() bool {
	return atomic.LoadUint32(&c.state) == stateDone
}

// resetCell discards the cached value, returns the guard to stateNone and
// detaches the cell from the registry list, returning the node that was
// linked after it. Only the Reset walk calls this, so under the documented
// quiescence contract the mutex is never contended here.
func (c *Cell[T]) resetCell() node {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	c.value = zero
	atomic.StoreUint32(&c.state, stateNone)
	next := c.next
	c.next = nil
	return next
}

// link stores the cell's registry successor. register calls this with the
// registry lock held.
func (c *Cell[T]) link(n node) {
	c.next = n
}
