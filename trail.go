package starfield

// Trail is a fixed-capacity history of recent samples. Pushing into a full
// trail evicts the oldest sample. Index 0 is always the oldest sample.
type Trail[T any] struct {
	buf  []T
	head int // index of the oldest sample
	n    int
}

// NewTrail creates an empty trail that holds at most capacity samples.
// A capacity below 1 is raised to 1.
func NewTrail[T any](capacity int) Trail[T] {
	if capacity < 1 {
		capacity = 1
	}
	return Trail[T]{buf: make([]T, capacity)}
}

// Push appends v, evicting the oldest sample when the trail is full.
func (t *Trail[T]) Push(v T) {
	if len(t.buf) == 0 {
		*t = NewTrail[T](1)
	}
	if t.n < len(t.buf) {
		t.buf[(t.head+t.n)%len(t.buf)] = v
		t.n++
		return
	}
	t.buf[t.head] = v
	t.head = (t.head + 1) % len(t.buf)
}

// At returns the i-th sample, oldest first. Panics if i is out of range.
func (t *Trail[T]) At(i int) T {
	if i < 0 || i >= t.n {
		panic("starfield: trail index out of range")
	}
	return t.buf[(t.head+i)%len(t.buf)]
}

// Last returns the newest sample and whether one exists.
func (t *Trail[T]) Last() (T, bool) {
	var zero T
	if t.n == 0 {
		return zero, false
	}
	return t.At(t.n - 1), true
}

// Len returns the number of stored samples.
func (t *Trail[T]) Len() int {
	return t.n
}

// Cap returns the fixed capacity.
func (t *Trail[T]) Cap() int {
	return len(t.buf)
}

// Clear drops every sample without releasing the backing storage.
func (t *Trail[T]) Clear() {
	t.head = 0
	t.n = 0
}
