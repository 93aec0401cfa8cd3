// Package scratch builds short-lived strings for per-frame GUI text
// without heap churn.
package scratch

import (
	"strconv"
	"unsafe"
)

// Buffer is a reusable byte arena. Strings returned by Take alias it and
// stay valid until the next Reset. Not safe for concurrent use.
type Buffer struct {
	buf  []byte
	mark int
}

func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = 1024
	}
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// Reset invalidates every string taken since the last Reset. Call it once
// per frame before building text. The capacity is kept.
//
// Growth reallocates, which leaves earlier views pointing at the old
// array; they stay readable until the frame ends.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
	b.mark = 0
}

func (b *Buffer) Cap() int { return cap(b.buf) }

func (b *Buffer) S(s string) *Buffer {
	b.buf = append(b.buf, s...)
	return b
}

func (b *Buffer) C(c byte) *Buffer {
	b.buf = append(b.buf, c)
	return b
}

// I appends a base-10 integer.
func (b *Buffer) I(v int) *Buffer {
	b.buf = strconv.AppendInt(b.buf, int64(v), 10)
	return b
}

// U appends an unsigned base-10 integer.
func (b *Buffer) U(v uint64) *Buffer {
	b.buf = strconv.AppendUint(b.buf, v, 10)
	return b
}

// F appends v with prec digits after the decimal point.
func (b *Buffer) F(v float64, prec int) *Buffer {
	b.buf = strconv.AppendFloat(b.buf, v, 'f', prec, 64)
	return b
}

// Take returns the text appended since the previous Take without copying.
func (b *Buffer) Take() string {
	s := b.buf[b.mark:]
	b.mark = len(b.buf)
	if len(s) == 0 {
		return ""
	}
	return unsafe.String(&s[0], len(s))
}
