// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/microjson

package main

import (
	"strings"
	"testing"

	"github.com/woozymasta/microjson"
)

// decodeAndRender decodes a document file and renders it, failing on error.
func decodeAndRender(t *testing.T, data string, checkRaw bool) string {
	t.Helper()

	doc, err := decodeDocument([]byte(data), checkRaw)
	if err != nil {
		t.Fatalf("decodeDocument: %v", err)
	}

	buf := make([]byte, 4096)
	n, err := microjson.Render(buf, doc, microjson.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	return string(buf[:n])
}

func TestDecodeDocumentScalars(t *testing.T) {
	t.Parallel()

	document := `entries:
  - key: s
    type: string
    value: text
  - key: b
    type: bool
    value: false
  - key: i
    type: int
    value: -32767
  - key: u
    type: uint
    value: 18446744073709551615
`
	got := decodeAndRender(t, document, false)
	want := `{"s": "text", "b": false, "i": -32767, "u": 18446744073709551615}`
	if got != want {
		t.Fatalf("rendered = %s, want %s", got, want)
	}
}

func TestDecodeDocumentNestedComposites(t *testing.T) {
	t.Parallel()

	document := `entries:
  - key: keys
    type: array
    elem: object
    items:
      - entries:
          - key: key_id
            type: int
            value: 1
      - entries: []
  - key: grid
    type: array
    elem: array
    items:
      - elem: int
        items: [1, 2]
      - elem: int
        items: []
`
	got := decodeAndRender(t, document, false)
	want := `{"keys": [{"key_id": 1}, {}], "grid": [[1, 2], []]}`
	if got != want {
		t.Fatalf("rendered = %s, want %s", got, want)
	}
}

func TestDecodeDocumentEmptyEntries(t *testing.T) {
	t.Parallel()

	if got := decodeAndRender(t, "entries: []", false); got != "{}" {
		t.Fatalf("rendered = %s, want {}", got)
	}

	// A file without an entries list decodes as an empty document.
	if got := decodeAndRender(t, "{}", false); got != "{}" {
		t.Fatalf("rendered = %s, want {}", got)
	}
}

func TestDecodeDocumentSampleRoundTrip(t *testing.T) {
	t.Parallel()

	doc, err := decodeDocument([]byte(microjson.SampleDocumentYAML), true)
	if err != nil {
		t.Fatalf("decodeDocument: %v", err)
	}

	need, err := microjson.Size(doc, microjson.Options{})
	if err != nil {
		t.Fatalf("Size: %v", err)
	}

	buf := make([]byte, need+1)
	n, err := microjson.Render(buf, doc, microjson.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	wantBuf := make([]byte, need+1)
	m, err := microjson.Render(wantBuf, microjson.SampleDocument(), microjson.Options{})
	if err != nil {
		t.Fatalf("Render sample: %v", err)
	}

	if string(buf[:n]) != string(wantBuf[:m]) {
		t.Fatalf("decoded sample differs from built-in sample\ndecoded: %s\nbuilt-in: %s", buf[:n], wantBuf[:m])
	}
}

func TestDecodeDocumentErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		document string
		checkRaw bool
		want     string
	}{
		{
			"missing type",
			"entries:\n  - key: k\n    value: 1\n",
			false,
			"missing type",
		},
		{
			"unknown type",
			"entries:\n  - key: k\n    type: float\n    value: 1.5\n",
			false,
			`unknown type "float"`,
		},
		{
			"missing array elem",
			"entries:\n  - key: k\n    type: array\n    items: [1]\n",
			false,
			"missing array elem",
		},
		{
			"unknown array elem",
			"entries:\n  - key: k\n    type: array\n    elem: float\n    items: [1.5]\n",
			false,
			`unknown array elem "float"`,
		},
		{
			"scalar type mismatch",
			"entries:\n  - key: k\n    type: int\n    value: text\n",
			false,
			"decode int value",
		},
		{
			"invalid raw with check",
			"entries:\n  - key: k\n    type: raw\n    value: not json\n",
			true,
			"not valid JSON",
		},
		{
			"invalid raw array item with check",
			"entries:\n  - key: k\n    type: array\n    elem: raw\n    items: [\"null\", \"not json\"]\n",
			true,
			"raw item 1 is not valid JSON",
		},
		{
			"not yaml",
			"\t{nope",
			false,
			"decode document file",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := decodeDocument([]byte(tc.document), tc.checkRaw)
			if err == nil {
				t.Fatal("expected error")
			}

			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error = %v, want substring %q", err, tc.want)
			}
		})
	}
}

func TestDecodeDocumentValidRawWithCheck(t *testing.T) {
	t.Parallel()

	document := `entries:
  - key: k
    type: raw
    value: '{"ok": [1, 2]}'
`
	got := decodeAndRender(t, document, true)
	want := `{"k": {"ok": [1, 2]}}`
	if got != want {
		t.Fatalf("rendered = %s, want %s", got, want)
	}
}
