// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/microjson

package microjson

// Kind discriminates the seven value variants the renderer understands and,
// for arrays, selects the element storage convention.
type Kind int

const (
	// KindInvalid is the zero Kind; rendering it reports ErrInvalidValue.
	KindInvalid Kind = iota
	// KindArray is a homogeneous array of one declared element kind.
	KindArray
	// KindBool renders the literal true or false.
	KindBool
	// KindInt renders a signed base-10 integer.
	KindInt
	// KindObject is a nested ordered entry sequence.
	KindObject
	// KindString renders quoted, unescaped text.
	KindString
	// KindUint renders an unsigned base-10 integer.
	KindUint
	// KindRaw renders text verbatim: unquoted, unescaped, unchecked.
	KindRaw
)

// kindNames maps kinds to human-readable identifiers used by errors, the
// String method and the CLI document format.
var kindNames = map[Kind]string{
	KindInvalid: "invalid",
	KindArray:   "array",
	KindBool:    "bool",
	KindInt:     "int",
	KindObject:  "object",
	KindString:  "string",
	KindUint:    "uint",
	KindRaw:     "raw",
}

// String returns the lowercase identifier of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "invalid"
}

// Document is an ordered, possibly empty sequence of entries forming one
// JSON object. Order is preserved in output and duplicate keys are allowed;
// the renderer never deduplicates or sorts.
type Document []Entry

// Entry is a single key/value member of a document.
type Entry struct {
	Key   string
	Value Value
}

// Value is one typed value inside a document or array. The zero Value is
// invalid; values are built through the package constructors, which keeps
// the raw passthrough variant an explicit opt-in.
type Value struct {
	kind Kind
	b    bool
	i    int64
	u    uint64
	s    string
	doc  Document
	arr  Array
}

// Kind reports the variant held by the value.
func (v Value) Kind() Kind { return v.kind }

// Array is a homogeneous array payload: one declared element kind plus the
// matching storage variant. Scalar element kinds hold their values inline;
// composite element kinds hold one reference per element. The zero Array is
// invalid.
type Array struct {
	elem  Kind
	bools []bool
	ints  []int64
	uints []uint64
	strs  []string
	docs  []Document
	arrs  []Array
}

// Elem reports the declared element kind of the array.
func (a Array) Elem() Kind { return a.elem }

// Len reports the element count. A count of zero renders as [] regardless
// of the element kind.
func (a Array) Len() int {
	switch a.elem {
	case KindBool:
		return len(a.bools)
	case KindInt:
		return len(a.ints)
	case KindUint:
		return len(a.uints)
	case KindString, KindRaw:
		return len(a.strs)
	case KindObject:
		return len(a.docs)
	case KindArray:
		return len(a.arrs)
	}

	return 0
}

// Bool returns an entry holding a boolean value.
func Bool(key string, v bool) Entry {
	return Entry{Key: key, Value: Value{kind: KindBool, b: v}}
}

// Int returns an entry holding a signed integer value.
func Int(key string, v int64) Entry {
	return Entry{Key: key, Value: Value{kind: KindInt, i: v}}
}

// Uint returns an entry holding an unsigned integer value.
func Uint(key string, v uint64) Entry {
	return Entry{Key: key, Value: Value{kind: KindUint, u: v}}
}

// String returns an entry holding a string value. The text is rendered
// inside double quotes byte-for-byte, without escaping.
func String(key, v string) Entry {
	return Entry{Key: key, Value: Value{kind: KindString, s: v}}
}

// Raw returns an entry holding a raw fragment. The fragment is rendered
// verbatim with no quoting, escaping or validity checking, so it can embed
// pre-rendered JSON or deliberately non-JSON text. Use with trusted input
// only; this bypasses every guarantee the rest of the format provides.
func Raw(key, fragment string) Entry {
	return Entry{Key: key, Value: Value{kind: KindRaw, s: fragment}}
}

// Object returns an entry holding a nested document.
func Object(key string, doc Document) Entry {
	return Entry{Key: key, Value: Value{kind: KindObject, doc: doc}}
}

// Bools returns an entry holding an array of booleans.
func Bools(key string, v []bool) Entry {
	return Entry{Key: key, Value: arrayValue(BoolArray(v))}
}

// Ints returns an entry holding an array of signed integers.
func Ints(key string, v []int64) Entry {
	return Entry{Key: key, Value: arrayValue(IntArray(v))}
}

// Uints returns an entry holding an array of unsigned integers.
func Uints(key string, v []uint64) Entry {
	return Entry{Key: key, Value: arrayValue(UintArray(v))}
}

// Strings returns an entry holding an array of strings.
func Strings(key string, v []string) Entry {
	return Entry{Key: key, Value: arrayValue(StringArray(v))}
}

// Raws returns an entry holding an array of raw fragments. See Raw for the
// trust implications.
func Raws(key string, fragments []string) Entry {
	return Entry{Key: key, Value: arrayValue(RawArray(fragments))}
}

// Objects returns an entry holding an array of nested documents.
func Objects(key string, v []Document) Entry {
	return Entry{Key: key, Value: arrayValue(ObjectArray(v))}
}

// Arrays returns an entry holding an array of nested arrays.
func Arrays(key string, v []Array) Entry {
	return Entry{Key: key, Value: arrayValue(NestedArray(v))}
}

// ArrayEntry returns an entry holding an arbitrary array payload, for
// callers that build Array values dynamically. The typed helpers (Bools,
// Strings, ...) cover the common cases.
func ArrayEntry(key string, a Array) Entry {
	return Entry{Key: key, Value: arrayValue(a)}
}

// arrayValue wraps an array payload into a value.
func arrayValue(a Array) Value {
	return Value{kind: KindArray, arr: a}
}

// BoolArray returns an array payload of booleans.
func BoolArray(v []bool) Array {
	return Array{elem: KindBool, bools: v}
}

// IntArray returns an array payload of signed integers.
func IntArray(v []int64) Array {
	return Array{elem: KindInt, ints: v}
}

// UintArray returns an array payload of unsigned integers.
func UintArray(v []uint64) Array {
	return Array{elem: KindUint, uints: v}
}

// StringArray returns an array payload of strings.
func StringArray(v []string) Array {
	return Array{elem: KindString, strs: v}
}

// RawArray returns an array payload of raw fragments. See Raw for the trust
// implications.
func RawArray(fragments []string) Array {
	return Array{elem: KindRaw, strs: fragments}
}

// ObjectArray returns an array payload of nested documents.
func ObjectArray(v []Document) Array {
	return Array{elem: KindObject, docs: v}
}

// NestedArray returns an array payload whose elements are arrays themselves.
func NestedArray(v []Array) Array {
	return Array{elem: KindArray, arrs: v}
}
