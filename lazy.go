// This package provides lazily initialized values that can be forcibly reset
// and initialized all over again.
//
// Cell
//
// The Cell defined by this package is a storage slot whose value is built by a
// constructor function on first access and cached for every access after that.
// Construction happens exactly once no matter how many goroutines race to be
// first; the losers block until the winner's constructor finishes and then all
// of them observe the same value. This is the behavior of sync.OnceValue, with
// one addition: every Cell that completes initialization is tracked in a
// process-wide registry, and a single call to Reset puts all of them back in
// their never-initialized state so the next access rebuilds them from scratch.
//
// The intended user is a program that reuses one process across many logical
// runs, a fuzz harness being the typical case. Such a program calls Reset at a
// quiescent point between iterations so that no lazily-built global leaks
// state from one iteration into the next.
//
// Reset itself is NOT safe against concurrent use of the cells it resets. The
// caller must guarantee that no goroutine is inside Get and that no pointer
// returned by an earlier Get is still in use anywhere. See Reset for the full
// contract. Within those rules Cell and Value are concurrency safe and have
// well defined behavior for concurrent access. See the test cases.
package lazy
