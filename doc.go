// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/microjson

/*
Package microjson renders an in-memory tree of typed key/value entries into
compact JSON text inside a caller-supplied, fixed-capacity buffer.

The renderer never allocates for the output, never grows the buffer and never
writes past its declared capacity. A render either fits completely or is
reported as too large; there is no silent truncation. This targets constrained
callers (embedded protocols, preallocated arenas, C interop) where heap
allocation and buffer growth are undesirable.

Build a document and render it:

	doc := microjson.Document{
		microjson.String("name", "demo"),
		microjson.Int("count", 3),
		microjson.Strings("values", []string{"DEADBEEF", "1337BEEF"}),
	}

	buf := make([]byte, 128)
	n, err := microjson.Render(buf, doc, microjson.Options{})
	if err != nil {
		return err
	}

	fmt.Println(string(buf[:n]))

Compute the exact capacity a document needs (text plus terminator byte):

	need, err := microjson.Size(doc, microjson.Options{})
	if err != nil {
		return err
	}

	buf := make([]byte, need+1)

Nest objects and arrays:

	doc := microjson.Document{
		microjson.Object("outer", microjson.Document{
			microjson.Bool("inner", true),
		}),
		microjson.Arrays("grid", []microjson.Array{
			microjson.StringArray([]string{"1", "2"}),
			microjson.StringArray([]string{"3", "4"}),
		}),
	}

Output format is fixed: objects render as `{"key": value, ...}`, arrays as
`[v, v]`, with a single space after each `:` and `,` and no other whitespace.
Entry order is preserved and duplicate keys are passed through verbatim. Keys
and string values are emitted byte-for-byte without escaping; validating or
escaping strings is the caller's responsibility.

Raw fragments bypass every remaining guarantee of the format: a value built
with Raw, Raws or RawArray is emitted verbatim, unquoted and unchecked, so a
caller can splice pre-rendered JSON (or deliberately non-JSON text) into the
output. Raw values are only reachable through those constructors and are
never produced by any other path.

One byte of the buffer is always reserved for a trailing zero terminator, so
a successful render of n text bytes requires len(buf) >= n+1 and leaves
buf[n] == 0. On failure the buffer contents are unspecified, but the renderer
is guaranteed not to have touched anything beyond len(buf).
*/
package microjson
