// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/microjson

package main

import (
	"fmt"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/microjson"
)

// documentFile is the top-level document description. YAML is a superset of
// JSON, so both file forms decode through the same path.
type documentFile struct {
	Entries []entryNode `yaml:"entries"`
}

// entryNode is one key/value node of a document file. Which fields apply
// depends on type: scalars and raw use value, object uses entries, array
// uses elem plus items.
type entryNode struct {
	Key     string      `yaml:"key"`
	Type    string      `yaml:"type"`
	Value   yaml.Node   `yaml:"value"`
	Entries []entryNode `yaml:"entries"`
	Elem    string      `yaml:"elem"`
	Items   []yaml.Node `yaml:"items"`
}

// arrayNode describes one nested array element inside an array of arrays.
type arrayNode struct {
	Elem  string      `yaml:"elem"`
	Items []yaml.Node `yaml:"items"`
}

// objectNode describes one object element inside an array of objects.
type objectNode struct {
	Entries []entryNode `yaml:"entries"`
}

// decodeDocument converts document file bytes into a renderable document.
// With checkRaw set, raw fragments must be valid JSON.
func decodeDocument(data []byte, checkRaw bool) (microjson.Document, error) {
	var file documentFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode document file: %w", err)
	}

	return decodeEntries(file.Entries, checkRaw)
}

// decodeEntries converts a node list into an ordered document.
func decodeEntries(nodes []entryNode, checkRaw bool) (microjson.Document, error) {
	doc := make(microjson.Document, 0, len(nodes))
	for i, node := range nodes {
		entry, err := decodeEntry(node, checkRaw)
		if err != nil {
			return nil, fmt.Errorf("entry %d (key %q): %w", i, node.Key, err)
		}

		doc = append(doc, entry)
	}

	return doc, nil
}

// decodeEntry converts one node according to its declared type.
func decodeEntry(node entryNode, checkRaw bool) (microjson.Entry, error) {
	switch normalizeTypeName(node.Type) {
	case "bool":
		var v bool
		if err := node.Value.Decode(&v); err != nil {
			return microjson.Entry{}, fmt.Errorf("decode bool value: %w", err)
		}

		return microjson.Bool(node.Key, v), nil
	case "int":
		var v int64
		if err := node.Value.Decode(&v); err != nil {
			return microjson.Entry{}, fmt.Errorf("decode int value: %w", err)
		}

		return microjson.Int(node.Key, v), nil
	case "uint":
		var v uint64
		if err := node.Value.Decode(&v); err != nil {
			return microjson.Entry{}, fmt.Errorf("decode uint value: %w", err)
		}

		return microjson.Uint(node.Key, v), nil
	case "string":
		var v string
		if err := node.Value.Decode(&v); err != nil {
			return microjson.Entry{}, fmt.Errorf("decode string value: %w", err)
		}

		return microjson.String(node.Key, v), nil
	case "raw":
		var v string
		if err := node.Value.Decode(&v); err != nil {
			return microjson.Entry{}, fmt.Errorf("decode raw value: %w", err)
		}

		if checkRaw && !jsontext.Value(v).IsValid() {
			return microjson.Entry{}, fmt.Errorf("raw fragment is not valid JSON: %q", v)
		}

		return microjson.Raw(node.Key, v), nil
	case "object":
		nested, err := decodeEntries(node.Entries, checkRaw)
		if err != nil {
			return microjson.Entry{}, err
		}

		return microjson.Object(node.Key, nested), nil
	case "array":
		arr, err := decodeArray(arrayNode{Elem: node.Elem, Items: node.Items}, checkRaw)
		if err != nil {
			return microjson.Entry{}, err
		}

		return microjson.ArrayEntry(node.Key, arr), nil
	case "":
		return microjson.Entry{}, fmt.Errorf("missing type (expected one of bool, int, uint, string, raw, object, array)")
	default:
		return microjson.Entry{}, fmt.Errorf("unknown type %q (expected one of bool, int, uint, string, raw, object, array)", node.Type)
	}
}

// decodeArray converts an elem/items pair into a homogeneous array payload.
func decodeArray(node arrayNode, checkRaw bool) (microjson.Array, error) {
	switch normalizeTypeName(node.Elem) {
	case "bool":
		values := make([]bool, 0, len(node.Items))
		for i, item := range node.Items {
			var v bool
			if err := item.Decode(&v); err != nil {
				return microjson.Array{}, fmt.Errorf("decode bool item %d: %w", i, err)
			}

			values = append(values, v)
		}

		return microjson.BoolArray(values), nil
	case "int":
		values := make([]int64, 0, len(node.Items))
		for i, item := range node.Items {
			var v int64
			if err := item.Decode(&v); err != nil {
				return microjson.Array{}, fmt.Errorf("decode int item %d: %w", i, err)
			}

			values = append(values, v)
		}

		return microjson.IntArray(values), nil
	case "uint":
		values := make([]uint64, 0, len(node.Items))
		for i, item := range node.Items {
			var v uint64
			if err := item.Decode(&v); err != nil {
				return microjson.Array{}, fmt.Errorf("decode uint item %d: %w", i, err)
			}

			values = append(values, v)
		}

		return microjson.UintArray(values), nil
	case "string":
		values, err := decodeStringItems(node.Items)
		if err != nil {
			return microjson.Array{}, err
		}

		return microjson.StringArray(values), nil
	case "raw":
		values, err := decodeStringItems(node.Items)
		if err != nil {
			return microjson.Array{}, err
		}

		if checkRaw {
			for i, v := range values {
				if !jsontext.Value(v).IsValid() {
					return microjson.Array{}, fmt.Errorf("raw item %d is not valid JSON: %q", i, v)
				}
			}
		}

		return microjson.RawArray(values), nil
	case "object":
		values := make([]microjson.Document, 0, len(node.Items))
		for i, item := range node.Items {
			var obj objectNode
			if err := item.Decode(&obj); err != nil {
				return microjson.Array{}, fmt.Errorf("decode object item %d: %w", i, err)
			}

			nested, err := decodeEntries(obj.Entries, checkRaw)
			if err != nil {
				return microjson.Array{}, fmt.Errorf("object item %d: %w", i, err)
			}

			values = append(values, nested)
		}

		return microjson.ObjectArray(values), nil
	case "array":
		values := make([]microjson.Array, 0, len(node.Items))
		for i, item := range node.Items {
			var nested arrayNode
			if err := item.Decode(&nested); err != nil {
				return microjson.Array{}, fmt.Errorf("decode array item %d: %w", i, err)
			}

			arr, err := decodeArray(nested, checkRaw)
			if err != nil {
				return microjson.Array{}, fmt.Errorf("array item %d: %w", i, err)
			}

			values = append(values, arr)
		}

		return microjson.NestedArray(values), nil
	case "":
		return microjson.Array{}, fmt.Errorf("missing array elem (expected one of bool, int, uint, string, raw, object, array)")
	default:
		return microjson.Array{}, fmt.Errorf("unknown array elem %q (expected one of bool, int, uint, string, raw, object, array)", node.Elem)
	}
}

// decodeStringItems decodes a flat list of string items.
func decodeStringItems(items []yaml.Node) ([]string, error) {
	values := make([]string, 0, len(items))
	for i, item := range items {
		var v string
		if err := item.Decode(&v); err != nil {
			return nil, fmt.Errorf("decode string item %d: %w", i, err)
		}

		values = append(values, v)
	}

	return values, nil
}

// normalizeTypeName normalizes type identifiers from document files.
func normalizeTypeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
