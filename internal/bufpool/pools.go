// Package bufpool implements a pool of byte buffers and a segmented
// Buffer type built on top of it, so the encoder can grow its output
// without the O(n²) cost of repeated contiguous reallocation.
package bufpool

import (
	"math/bits"
	"sync"
)

const (
	minPooledSegmentShift = 12 // minimum shift size of buffer to pool
	numPools              = bits.UintSize - minPooledSegmentShift
)

// sliceHeaderPool caches the slice headers themselves; a sync.Pool
// cannot hold a []byte directly without allocating to box it.
var sliceHeaderPool = sync.Pool{New: func() any { return new([]byte) }}

var bufferPools [numPools]sync.Pool

// shiftClass returns the pool index and backing capacity (1<<shift) that
// Get(n) would hand out, so a caller can pre-warm the tier a given
// Options.ChunkFlushThreshold will actually draw from.
func shiftClass(n int) (index, shift int) {
	if n < 1<<minPooledSegmentShift {
		n = 1 << minPooledSegmentShift
	}
	shift = bits.Len(uint(n - 1))
	if shift-minPooledSegmentShift >= numPools {
		shift = numPools - 1 + minPooledSegmentShift
	}
	return shift - minPooledSegmentShift, shift
}

// Get acquires an empty buffer with enough capacity to hold n bytes.
// The unused buffer content is not guaranteed to be zeroed.
func Get(n int) []byte {
	index, shift := shiftClass(n)
	if p, _ := bufferPools[index].Get().(*[]byte); p != nil {
		b := (*p)[:0]
		*p = nil
		sliceHeaderPool.Put(p)
		return b
	}
	return make([]byte, 0, 1<<shift)
}

// Put releases a buffer back to the pools. The caller must relinquish
// ownership of the slice.
func Put(b []byte) {
	if cap(b) < 1<<minPooledSegmentShift {
		return
	}
	p := sliceHeaderPool.Get().(*[]byte)
	*p = b
	shift := bits.Len(uint(cap(b)) - 1)
	if shift-minPooledSegmentShift >= numPools {
		return
	}
	bufferPools[shift-minPooledSegmentShift].Put(p)
}

// WarmForThreshold pre-populates the size class that Get(threshold) will
// draw from with one buffer, so an Encoder built with a non-default
// Options.ChunkFlushThreshold does not pay a cold sync.Pool miss (and the
// resulting bare make) for its very first segment. It is a hint, not a
// guarantee: concurrent Buffers racing for the same class still fall back
// to make like any other pool miss.
func WarmForThreshold(threshold int) {
	if threshold <= 0 {
		return
	}
	Put(Get(threshold))
}
