// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/microjson

package microjson

import "strconv"

// boundedWriter tracks a cursor over a fixed destination slice. One byte of
// the destination is reserved for the trailing zero terminator. Every write
// is all-or-nothing: a write that does not fit flags overflow and commits
// nothing, and once overflow is flagged all further writes are absorbed as
// no-ops. The walker above never has to check capacity itself.
//
// In counting mode the writer has no destination and only accumulates the
// would-be text length; it cannot overflow.
type boundedWriter struct {
	dst      []byte
	limit    int
	n        int
	counting bool
	overflow bool
}

// newBoundedWriter returns a writer over dst reserving one terminator byte.
func newBoundedWriter(dst []byte) *boundedWriter {
	return &boundedWriter{dst: dst, limit: len(dst) - 1}
}

// newCountingWriter returns a writer that measures instead of writing.
func newCountingWriter() *boundedWriter {
	return &boundedWriter{counting: true}
}

// writeString appends s if it fits within the reserved limit.
func (w *boundedWriter) writeString(s string) {
	if w.counting {
		w.n += len(s)
		return
	}

	if w.overflow || w.n+len(s) > w.limit {
		w.overflow = true
		return
	}

	copy(w.dst[w.n:], s)
	w.n += len(s)
}

// writeByte appends a single byte if it fits within the reserved limit.
func (w *boundedWriter) writeByte(c byte) {
	if w.counting {
		w.n++
		return
	}

	if w.overflow || w.n+1 > w.limit {
		w.overflow = true
		return
	}

	w.dst[w.n] = c
	w.n++
}

// writeBytes appends b if it fits within the reserved limit.
func (w *boundedWriter) writeBytes(b []byte) {
	if w.counting {
		w.n += len(b)
		return
	}

	if w.overflow || w.n+len(b) > w.limit {
		w.overflow = true
		return
	}

	copy(w.dst[w.n:], b)
	w.n += len(b)
}

// writeInt appends the base-10 text of a signed integer. The scratch array
// keeps formatting off the heap.
func (w *boundedWriter) writeInt(v int64) {
	var scratch [20]byte
	w.writeBytes(strconv.AppendInt(scratch[:0], v, 10))
}

// writeUint appends the base-10 text of an unsigned integer.
func (w *boundedWriter) writeUint(v uint64) {
	var scratch [20]byte
	w.writeBytes(strconv.AppendUint(scratch[:0], v, 10))
}

// finalize closes the render: on overflow it reports ErrBufferTooSmall,
// otherwise it writes the zero terminator (guaranteed to fit by the reserved
// limit) and returns the number of text bytes written. Counting writers
// return the measured length without terminating anything.
func (w *boundedWriter) finalize() (int, error) {
	if w.counting {
		return w.n, nil
	}

	if w.overflow || w.limit < 0 {
		return 0, ErrBufferTooSmall
	}

	w.dst[w.n] = 0
	return w.n, nil
}
