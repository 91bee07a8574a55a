// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/microjson

package microjson

import "fmt"

// defaultMaxDepth bounds nesting when caller does not provide a limit.
const defaultMaxDepth = 64

// Options configures one render call.
type Options struct {
	// MaxDepth is the maximum object/array nesting depth, the root object
	// counting as one level. Values <= 0 select the default of 64. Exceeding
	// the limit reports ErrMaxDepth instead of exhausting the call stack.
	MaxDepth int
}

// Render writes the compact JSON text of doc into dst followed by a zero
// terminator. On success it returns the number of text bytes written, with
// dst[n] == 0. It returns ErrBufferTooSmall exactly when text plus
// terminator does not fit in len(dst): a buffer one byte short fails, an
// exactly sufficient one succeeds. On any error the contents of dst are
// unspecified, but nothing beyond len(dst) is ever touched.
//
// Render does not allocate for the output and takes no ownership of doc;
// the document is read-only for the duration of the call.
func Render(dst []byte, doc Document, opt Options) (int, error) {
	w := newBoundedWriter(dst)
	if err := renderDocument(w, doc, normalizeMaxDepth(opt.MaxDepth)); err != nil {
		return 0, err
	}

	return w.finalize()
}

// Size returns the exact number of JSON text bytes Render would produce for
// doc, excluding the terminator. A buffer of Size(doc)+1 bytes is the
// smallest one Render will accept.
func Size(doc Document, opt Options) (int, error) {
	w := newCountingWriter()
	if err := renderDocument(w, doc, normalizeMaxDepth(opt.MaxDepth)); err != nil {
		return 0, err
	}

	return w.finalize()
}

// normalizeMaxDepth applies the default nesting limit.
func normalizeMaxDepth(depth int) int {
	if depth <= 0 {
		return defaultMaxDepth
	}

	return depth
}

// renderDocument emits one object: `{` + `"key": value` pairs separated by
// `, ` + `}`. An empty document renders exactly {}. depth is the remaining
// nesting budget including this level.
func renderDocument(w *boundedWriter, doc Document, depth int) error {
	if depth < 1 {
		return ErrMaxDepth
	}

	w.writeByte('{')
	for i, entry := range doc {
		if i > 0 {
			w.writeString(", ")
		}

		w.writeByte('"')
		w.writeString(entry.Key)
		w.writeString(`": `)
		if err := renderValue(w, entry.Value, depth); err != nil {
			return fmt.Errorf("key %q: %w", entry.Key, err)
		}
	}

	w.writeByte('}')
	return nil
}

// renderValue dispatches one value to its rendering rule, recursing into
// document or array rendering for the composite kinds.
func renderValue(w *boundedWriter, v Value, depth int) error {
	switch v.kind {
	case KindBool:
		w.writeString(boolToken(v.b))
	case KindInt:
		w.writeInt(v.i)
	case KindUint:
		w.writeUint(v.u)
	case KindString:
		w.writeByte('"')
		w.writeString(v.s)
		w.writeByte('"')
	case KindRaw:
		// Trusted passthrough: no quoting, no validity checking.
		w.writeString(v.s)
	case KindObject:
		return renderDocument(w, v.doc, depth-1)
	case KindArray:
		return renderArray(w, v.arr, depth-1)
	default:
		return fmt.Errorf("%w: kind %s", ErrInvalidValue, v.kind)
	}

	return nil
}

// renderArray emits one array: `[` + elements separated by `, ` + `]`. The
// declared element kind selects the storage variant read; zero elements
// render exactly [].
func renderArray(w *boundedWriter, a Array, depth int) error {
	if depth < 1 {
		return ErrMaxDepth
	}

	w.writeByte('[')
	switch a.elem {
	case KindBool:
		for i, v := range a.bools {
			if i > 0 {
				w.writeString(", ")
			}

			w.writeString(boolToken(v))
		}
	case KindInt:
		for i, v := range a.ints {
			if i > 0 {
				w.writeString(", ")
			}

			w.writeInt(v)
		}
	case KindUint:
		for i, v := range a.uints {
			if i > 0 {
				w.writeString(", ")
			}

			w.writeUint(v)
		}
	case KindString:
		for i, v := range a.strs {
			if i > 0 {
				w.writeString(", ")
			}

			w.writeByte('"')
			w.writeString(v)
			w.writeByte('"')
		}
	case KindRaw:
		for i, v := range a.strs {
			if i > 0 {
				w.writeString(", ")
			}

			w.writeString(v)
		}
	case KindObject:
		for i, doc := range a.docs {
			if i > 0 {
				w.writeString(", ")
			}

			if err := renderDocument(w, doc, depth-1); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}
	case KindArray:
		for i, nested := range a.arrs {
			if i > 0 {
				w.writeString(", ")
			}

			if err := renderArray(w, nested, depth-1); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}
	default:
		return fmt.Errorf("%w: array element kind %s", ErrInvalidValue, a.elem)
	}

	w.writeByte(']')
	return nil
}

// boolToken returns the JSON literal for a boolean.
func boolToken(v bool) string {
	if v {
		return "true"
	}

	return "false"
}
