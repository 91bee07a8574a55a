// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/microjson

package microjson

// SampleDocument returns a built-in document exercising every value kind:
// scalars, scalar arrays, nested objects, array-of-objects (including an
// empty one), array-of-arrays and a raw fragment. It is used by tests,
// benchmarks and the CLI example subcommand.
func SampleDocument() Document {
	return Document{
		String("name", "demo"),
		Bool("enabled", true),
		Int("count", -3),
		Uint("max", 65535),
		Strings("features", []string{"render", "size"}),
		Object("limits", Document{
			Int("low", -32767),
			Int("high", 32767),
		}),
		Objects("keys", []Document{
			{
				Int("key_id", 1),
				Strings("values", []string{"DEADBEEF", "1337BEEF"}),
			},
			{},
		}),
		Arrays("grid", []Array{
			StringArray([]string{"1", "2", "3"}),
			StringArray([]string{"1", "2", "3"}),
		}),
		Raw("extra", `{"pretty": false}`),
	}
}

// SampleDocumentYAML is the document-file form of SampleDocument accepted by
// the cmd/microjson render and size subcommands.
const SampleDocumentYAML = `entries:
  - key: name
    type: string
    value: demo
  - key: enabled
    type: bool
    value: true
  - key: count
    type: int
    value: -3
  - key: max
    type: uint
    value: 65535
  - key: features
    type: array
    elem: string
    items: [render, size]
  - key: limits
    type: object
    entries:
      - key: low
        type: int
        value: -32767
      - key: high
        type: int
        value: 32767
  - key: keys
    type: array
    elem: object
    items:
      - entries:
          - key: key_id
            type: int
            value: 1
          - key: values
            type: array
            elem: string
            items: [DEADBEEF, 1337BEEF]
      - entries: []
  - key: grid
    type: array
    elem: array
    items:
      - elem: string
        items: ["1", "2", "3"]
      - elem: string
        items: ["1", "2", "3"]
  - key: extra
    type: raw
    value: '{"pretty": false}'
`
