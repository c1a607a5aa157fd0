package lazy

// Value is a Cell bound to its constructor at declaration time, so reads
// don't have to repeat the initializer at every call site:
//
//	var config = lazy.New(func() Config { return loadConfig() })
//
//	func handler() {
//		cfg := config.Get()
//		...
//	}
//
// Value adds nothing beyond the Cell it wraps; it forwards every access, and
// the cell registers and resets exactly as if it were used directly.
type Value[T any] struct {
	cell Cell[T]
	init func() T
}

// New returns a Value that will build its contents with init on first Get.
// init is not called here.
func New[T any](init func() T) *Value[T] {
	return &Value[T]{init: init}
}

// Get returns a pointer to the value, constructing it on first use. It has
// the same concurrency, pointer-lifetime and poisoning behavior as Cell.Get.
func (v *Value[T]) Get() *T {
	return v.cell.Get(v.init)
}

// Initialized reports whether the value has been constructed in the current
// generation. It never blocks.
func (v *Value[T]) Initialized() bool {
	return v.cell.Initialized()
}
