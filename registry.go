package lazy

import "sync"

// node is the type-erased handle the registry keeps for a cell. Cells hold
// values of arbitrary types, so the registry list works through this small
// capability interface instead: link a cell into the list, and reset it back
// out of it.
type node interface {
	link(node)
	resetCell() node
}

// registry is the process-wide list of cells that finished initialization
// (or were poisoned) in the current generation. It starts empty and is
// drained wholesale by Reset. The cells themselves carry the list links, so
// the registry is just the head.
var registry struct {
	mu   sync.Mutex
	head node
}

// register prepends a cell to the registry. The goroutine whose constructor
// call won calls this exactly once per cell per generation, while still
// holding the cell's own mutex; the lock order is always cell then registry.
func register(n node) {
	registry.mu.Lock()
	n.link(registry.head)
	registry.head = n
	registry.mu.Unlock()
}

// Reset returns every initialized Cell in the process to its uninitialized
// state, discarding all cached values, and empties the registry. The next Get
// on each cell runs its constructor again as if the cell had never been used.
// Cells that were never accessed are not touched. Calling Reset with nothing
// initialized is a no-op, so it is always safe to call it twice in a row.
//
// Reset carries a safety contract that cannot be checked at compile time or
// at run time, and violating it is a data race, not a reported error. The
// caller must guarantee that for the whole duration of the call:
//
//   - no goroutine is inside Get on any cell, and
//   - no pointer returned by any earlier Get is still in use anywhere in the
//     program.
//
// In practice this means calling Reset only from a single goroutine at a
// known quiescent point, such as between iterations of a fuzz harness after
// all worker goroutines have finished.
//
// The whole list is detached in one swap before any cell is reset, so a cell
// initialized by a later generation is never reverted by a Reset call that
// predates it.
func Reset() {
	registry.mu.Lock()
	head := registry.head
	registry.head = nil
	registry.mu.Unlock()

	for n := head; n != nil; {
		n = n.resetCell()
	}
}
