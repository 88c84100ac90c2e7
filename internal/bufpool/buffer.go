package bufpool

import "io"

// FlushThreshold is the default segment size at which Buffer flushes
// a completed segment to its sink instead of retaining it in memory.
const FlushThreshold = 64 << 10

// Buffer is a segmented, pool-backed byte buffer. Unlike bytes.Buffer,
// writes past FlushThreshold are handed off to an underlying io.Writer
// as soon as a segment fills, so encoding a large value never requires
// one contiguous allocation proportional to the whole output.
type Buffer struct {
	w         io.Writer
	length    int
	segments  [][]byte
	threshold int
}

// NewBuffer returns a Buffer that flushes filled segments to w once they
// reach FlushThreshold. If w is nil, the buffer retains everything in
// memory and behaves like a plain growable byte slice (useful for Encode
// into []byte).
func NewBuffer(w io.Writer) *Buffer {
	return &Buffer{w: w, threshold: FlushThreshold}
}

// NewBufferWithThreshold is NewBuffer with the flush threshold overridden.
// A threshold <= 0 restores FlushThreshold.
func NewBufferWithThreshold(w io.Writer, threshold int) *Buffer {
	if threshold <= 0 {
		threshold = FlushThreshold
	}
	if threshold != FlushThreshold {
		WarmForThreshold(threshold)
	}
	return &Buffer{w: w, threshold: threshold}
}

func (b *Buffer) last() *[]byte {
	return &b.segments[len(b.segments)-1]
}

// Len returns the number of bytes currently buffered in memory
// (bytes already flushed to the sink are not counted).
func (b *Buffer) Len() int { return b.length }

func (b *Buffer) available() int {
	if len(b.segments) == 0 {
		return 0
	}
	last := *b.last()
	return cap(last) - len(last)
}

func (b *Buffer) grow(n int) {
	if b.available() < n {
		if len(b.segments) > 0 && len(*b.last()) == 0 {
			Put(*b.last())
			b.segments = b.segments[:len(b.segments)-1]
		}
		size := n
		if size < b.threshold {
			size = b.threshold
		}
		b.segments = append(b.segments, Get(size))
	}
}

// Write appends p to the buffer, growing and flushing as needed.
// It never returns an error unless the underlying sink does.
func (b *Buffer) Write(p []byte) (int, error) {
	written := len(p)
	for len(p) > 0 {
		if b.w != nil && len(b.segments) > 0 && len(*b.last()) > 0 && b.available() < len(p) {
			// Flush the partly filled segment before starting a new one,
			// so segments reach the sink in the order they were written.
			if err := b.flushSegment(); err != nil {
				return written - len(p), err
			}
		}
		b.grow(len(p))
		last := b.last()
		n := copy((*last)[len(*last):cap(*last)], p)
		*last = (*last)[:len(*last)+n]
		b.length += n
		p = p[n:]
		if b.w != nil && len(*last) >= b.threshold {
			if err := b.flushSegment(); err != nil {
				return written - len(p), err
			}
		}
	}
	return written, nil
}

// WriteByte implements io.ByteWriter.
func (b *Buffer) WriteByte(c byte) error {
	_, err := b.Write([]byte{c})
	return err
}

// WriteString appends s to the buffer.
func (b *Buffer) WriteString(s string) (int, error) {
	return b.Write([]byte(s))
}

func (b *Buffer) flushSegment() error {
	seg := *b.last()
	if _, err := b.w.Write(seg); err != nil {
		return err
	}
	b.length -= len(seg)
	Put(seg)
	b.segments = b.segments[:len(b.segments)-1]
	return nil
}

// Flush writes any buffered, unflushed content to the sink.
// It is a no-op if the Buffer has no sink.
func (b *Buffer) Flush() error {
	if b.w == nil {
		return nil
	}
	for len(b.segments) > 0 {
		if err := b.flushSegment(); err != nil {
			return err
		}
	}
	return nil
}

// Bytes returns the buffered content as a single contiguous slice.
// Only meaningful for a Buffer without a sink (w == nil); once bytes
// have been flushed they are no longer available here.
func (b *Buffer) Bytes() []byte {
	if len(b.segments) == 0 {
		return nil
	}
	if len(b.segments) > 1 {
		p := Get(b.length)
		for i := range b.segments {
			p = append(p, b.segments[i]...)
			Put(b.segments[i])
			b.segments[i] = nil
		}
		b.segments = append(b.segments[:0], p)
	}
	return b.segments[0]
}

// Reset releases all segments back to the pool.
func (b *Buffer) Reset() {
	for i := range b.segments {
		Put(b.segments[i])
		b.segments[i] = nil
	}
	b.segments = b.segments[:0]
	b.length = 0
}
