// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/microjson

package microjson

import (
	"bytes"
	"errors"
	"testing"
)

const guardByte = 0xAA

// guardedBuffer returns a capacity-sized window into a larger backing slice
// whose surrounding bytes are filled with a guard pattern.
func guardedBuffer(capacity int) (window, backing []byte) {
	backing = bytes.Repeat([]byte{guardByte}, capacity+16)
	return backing[:capacity:capacity], backing
}

// checkGuard fails the test if any byte past capacity was touched.
func checkGuard(t *testing.T, backing []byte, capacity int) {
	t.Helper()

	for i := capacity; i < len(backing); i++ {
		if backing[i] != guardByte {
			t.Fatalf("guard byte at offset %d overwritten: %#x", i, backing[i])
		}
	}
}

func TestWriterExactFit(t *testing.T) {
	t.Parallel()

	// "abc" plus terminator fills the buffer completely.
	window, backing := guardedBuffer(4)
	w := newBoundedWriter(window)
	w.writeString("abc")
	n, err := w.finalize()
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}

	if n != 3 || string(window[:3]) != "abc" || window[3] != 0 {
		t.Fatalf("buffer = %q, n = %d", window, n)
	}

	checkGuard(t, backing, 4)
}

func TestWriterOneByteShort(t *testing.T) {
	t.Parallel()

	window, backing := guardedBuffer(3)
	w := newBoundedWriter(window)
	w.writeString("abc")
	if _, err := w.finalize(); !errors.Is(err, ErrBufferTooSmall) {
		t.Fatalf("finalize: err = %v, want ErrBufferTooSmall", err)
	}

	checkGuard(t, backing, 3)
}

func TestWriterOverflowIsSticky(t *testing.T) {
	t.Parallel()

	window, backing := guardedBuffer(4)
	w := newBoundedWriter(window)
	w.writeString("abcdef")
	if !w.overflow {
		t.Fatal("overflow not flagged")
	}

	// Later writes, including ones that would fit, are absorbed without
	// effect and without touching the buffer.
	w.writeByte('x')
	w.writeString("y")
	w.writeBytes([]byte("z"))
	w.writeInt(-1)
	w.writeUint(7)
	if w.n != 0 {
		t.Fatalf("cursor advanced after overflow: %d", w.n)
	}

	if _, err := w.finalize(); !errors.Is(err, ErrBufferTooSmall) {
		t.Fatal("finalize after overflow must fail")
	}

	checkGuard(t, backing, 4)
}

func TestWriterRejectedWriteCommitsNothing(t *testing.T) {
	t.Parallel()

	window, backing := guardedBuffer(6)
	w := newBoundedWriter(window)
	w.writeString("abc")
	w.writeString("defgh") // would cross the limit, must not be written partially
	if !w.overflow {
		t.Fatal("overflow not flagged")
	}

	if string(window[:3]) != "abc" {
		t.Fatalf("committed prefix clobbered: %q", window[:3])
	}

	for i := 3; i < len(window); i++ {
		if window[i] != guardByte {
			t.Fatalf("partial write at offset %d: %#x", i, window[i])
		}
	}

	checkGuard(t, backing, 6)
}

func TestWriterZeroCapacity(t *testing.T) {
	t.Parallel()

	w := newBoundedWriter(nil)
	w.writeByte('{')
	w.writeByte('}')
	if _, err := w.finalize(); !errors.Is(err, ErrBufferTooSmall) {
		t.Fatal("zero capacity must fail")
	}
}

func TestWriterIntegerFormatting(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		write func(w *boundedWriter)
		want  string
	}{
		{"zero", func(w *boundedWriter) { w.writeInt(0) }, "0"},
		{"positive", func(w *boundedWriter) { w.writeInt(32767) }, "32767"},
		{"negative", func(w *boundedWriter) { w.writeInt(-32767) }, "-32767"},
		{"min int64", func(w *boundedWriter) { w.writeInt(-9223372036854775808) }, "-9223372036854775808"},
		{"max int64", func(w *boundedWriter) { w.writeInt(9223372036854775807) }, "9223372036854775807"},
		{"max uint64", func(w *boundedWriter) { w.writeUint(18446744073709551615) }, "18446744073709551615"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			buf := make([]byte, 32)
			w := newBoundedWriter(buf)
			tc.write(w)
			n, err := w.finalize()
			if err != nil {
				t.Fatalf("finalize: %v", err)
			}

			if string(buf[:n]) != tc.want {
				t.Fatalf("formatted = %q, want %q", buf[:n], tc.want)
			}
		})
	}
}

func TestCountingWriterNeverOverflows(t *testing.T) {
	t.Parallel()

	w := newCountingWriter()
	w.writeString("abc")
	w.writeByte('"')
	w.writeInt(-100)
	w.writeUint(5)
	n, err := w.finalize()
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}

	if want := len("abc") + 1 + len("-100") + 1; n != want {
		t.Fatalf("counted = %d, want %d", n, want)
	}
}
