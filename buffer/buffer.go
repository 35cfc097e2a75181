package buffer

// Buffer owns a fixed-length sequence of float64 values backed by a single
// allocation. The zero value is an empty buffer that owns nothing; an empty
// buffer is also the state left behind after a move or Release.
type Buffer struct {
	values []float64
}

// New returns a zero-filled Buffer of the given length.
func New(length int) *Buffer {
	if length < 0 {
		length = 0
	}
	return &Buffer{values: make([]float64, length)}
}

// FromValues returns a Buffer holding a copy of the given values in order.
// The Buffer owns its storage exclusively; later changes to the arguments
// are not visible through it.
func FromValues(values ...float64) *Buffer {
	if len(values) == 0 {
		return &Buffer{}
	}
	vs := make([]float64, len(values))
	copy(vs, values)
	return &Buffer{values: vs}
}

// Len returns the number of elements the buffer owns.
func (b *Buffer) Len() int {
	return len(b.values)
}

// IsEmpty reports whether the buffer owns no elements.
func (b *Buffer) IsEmpty() bool {
	return len(b.values) == 0
}

// At returns the element at index i. It panics if i is out of range.
func (b *Buffer) At(i int) float64 {
	return b.values[i]
}

// Values returns the owned storage as a slice. The slice aliases the
// buffer's allocation; it is invalidated by CopyFrom, MoveFrom, Swap and
// Release on either party.
func (b *Buffer) Values() []float64 {
	return b.values
}

// Equal reports whether b and other hold the same element sequence.
func (b *Buffer) Equal(other *Buffer) bool {
	if len(b.values) != len(other.values) {
		return false
	}
	for i, v := range b.values {
		if v != other.values[i] {
			return false
		}
	}
	return true
}

// resize sets the length to n, reusing existing capacity when possible.
// Elements newly exposed from reused capacity are not cleared; callers that
// need zeroed storage follow up with zero. Kept unexported so the public
// Buffer stays fixed-size.
func (b *Buffer) resize(n int) {
	if n < 0 {
		n = 0
	}
	if n <= cap(b.values) {
		b.values = b.values[:n]
		return
	}
	vs := make([]float64, n)
	copy(vs, b.values)
	b.values = vs
}

// zero sets all elements to 0.
func (b *Buffer) zero() {
	for i := range b.values {
		b.values[i] = 0
	}
}
