// Package arena provides bump allocation for AST nodes. An arena hands out
// pointers into fixed-capacity chunks and releases everything at once; there
// is no per-object free, and objects never move once placed.
package arena

// Arena is a typed bump allocator. Chunks are allocated with a fixed capacity
// and never grown, so pointers handed out by Alloc stay valid until Release.
type Arena[T any] struct {
	chunks    [][]T
	chunkSize int
	count     int
	released  bool
}

// New returns an arena whose chunks hold chunkSize objects each.
func New[T any](chunkSize int) *Arena[T] {
	if chunkSize < 1 {
		chunkSize = 1
	}
	return &Arena[T]{chunkSize: chunkSize}
}

// Alloc returns a pointer to a zeroed T placed in the arena.
func (a *Arena[T]) Alloc() *T {
	if a.released {
		panic("arena: allocate after release")
	}
	n := len(a.chunks)
	if n == 0 || len(a.chunks[n-1]) == cap(a.chunks[n-1]) {
		a.chunks = append(a.chunks, make([]T, 0, a.chunkSize))
		n++
	}
	chunk := a.chunks[n-1]
	chunk = chunk[:len(chunk)+1]
	a.chunks[n-1] = chunk
	a.count++
	return &chunk[len(chunk)-1]
}

// AllocSlice returns a zeroed slice of n objects backed by arena memory. The
// slice is placed in the current chunk when it fits, otherwise in a dedicated
// chunk, so its backing array never moves.
func (a *Arena[T]) AllocSlice(n int) []T {
	if a.released {
		panic("arena: allocate after release")
	}
	if n == 0 {
		return nil
	}
	a.count += n
	last := len(a.chunks) - 1
	if last >= 0 && cap(a.chunks[last])-len(a.chunks[last]) >= n {
		chunk := a.chunks[last]
		start := len(chunk)
		chunk = chunk[:start+n]
		a.chunks[last] = chunk
		return chunk[start : start+n : start+n]
	}
	chunk := make([]T, n, max(n, a.chunkSize))
	a.chunks = append(a.chunks, chunk)
	return chunk[0:n:n]
}

// Len returns the number of objects allocated so far.
func (a *Arena[T]) Len() int { return a.count }

// Release drops all chunks at once and poisons the arena: any further
// allocation panics. Pointers previously handed out must not be used again.
func (a *Arena[T]) Release() {
	a.chunks = nil
	a.released = true
}

// Released reports whether the arena has been torn down.
func (a *Arena[T]) Released() bool { return a.released }
