package buffer

// Clone returns a deep copy of the buffer backed by its own allocation.
// Mutating or releasing either buffer leaves the other untouched.
func (b *Buffer) Clone() *Buffer {
	if len(b.values) == 0 {
		return &Buffer{}
	}
	vs := make([]float64, len(b.values))
	copy(vs, b.values)
	return &Buffer{values: vs}
}

// CopyFrom replaces b's contents with a deep copy of src. The replacement
// allocation is built in full before the old one is dropped, so if building
// it fails b is left unchanged. Copying a buffer from itself is a no-op.
func (b *Buffer) CopyFrom(src *Buffer) {
	if b == src {
		return
	}
	tmp := src.Clone()
	b.Swap(tmp)
}

// Take returns a new Buffer owning src's allocation, leaving src empty.
// The transfer is constant time: no elements are copied and nothing is
// allocated.
func Take(src *Buffer) *Buffer {
	dst := &Buffer{}
	dst.MoveFrom(src)
	return dst
}

// MoveFrom transfers ownership of src's allocation to b in constant time.
// b's previous allocation is dropped and src is left empty. Moving a buffer
// from itself is a no-op.
func (b *Buffer) MoveFrom(src *Buffer) {
	if b == src {
		return
	}
	b.values = src.values
	src.values = nil
}

// Swap exchanges the owned allocations of b and other in constant time.
// It never allocates and has no failure path; swapping a buffer with itself
// leaves it unchanged.
func (b *Buffer) Swap(other *Buffer) {
	b.values, other.values = other.values, b.values
}

// Release drops the owned allocation, leaving the buffer empty. Releasing
// an empty or already-released buffer has no effect.
func (b *Buffer) Release() {
	b.values = nil
}
