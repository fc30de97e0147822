/*
Package omap provides a string-to-string map that preserves insertion
order.

The attribute, style and event collections of a block node are rendered
into markup, so their iteration order is part of the synthesized output.
A plain Go map would make that output non-deterministic; omap.Map keeps
keys in the order they were first set, which reproduces the definition
order of the block templates.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 The Pagesmith Authors

*/
package omap

import (
	"strings"

	"github.com/elliotchance/orderedmap"
)

// Map is an insertion-ordered string map. The zero value of *Map (nil) is
// a valid empty map for all read operations.
type Map struct {
	om *orderedmap.OrderedMap
}

// New creates an empty Map.
func New() *Map {
	return &Map{om: orderedmap.NewOrderedMap()}
}

// From creates a Map from alternating key/value arguments, keeping the
// argument order. An odd trailing key is ignored.
func From(kv ...string) *Map {
	m := New()
	for i := 0; i+1 < len(kv); i += 2 {
		m.Set(kv[i], kv[i+1])
	}
	return m
}

// Get returns the value for key and whether it is present.
func (m *Map) Get(key string) (string, bool) {
	if m == nil || m.om == nil {
		return "", false
	}
	v, ok := m.om.Get(key)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Set stores a value under key. A key that is already present keeps its
// position; a new key is appended.
func (m *Map) Set(key, value string) {
	if m.om == nil {
		m.om = orderedmap.NewOrderedMap()
	}
	m.om.Set(key, value)
}

// Delete removes a key, if present.
func (m *Map) Delete(key string) {
	if m == nil || m.om == nil {
		return
	}
	m.om.Delete(key)
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil || m.om == nil {
		return 0
	}
	return m.om.Len()
}

// Keys returns all keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil || m.om == nil {
		return nil
	}
	raw := m.om.Keys()
	keys := make([]string, len(raw))
	for i, k := range raw {
		keys[i] = k.(string)
	}
	return keys
}

// Clone returns an independent copy. Cloning nil yields an empty Map.
func (m *Map) Clone() *Map {
	c := New()
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		c.Set(k, v)
	}
	return c
}

// Merge returns a new Map holding the union of m and patch. Keys present
// in both take the patch value but keep their original position; keys only
// in the patch are appended in patch order. Neither input is modified.
// A nil patch yields a clone of m.
func (m *Map) Merge(patch *Map) *Map {
	merged := m.Clone()
	for _, k := range patch.Keys() {
		v, _ := patch.Get(k)
		merged.Set(k, v)
	}
	return merged
}

// String renders the map as "k=v; …" in insertion order, for traces and
// test failure messages.
func (m *Map) String() string {
	var sb strings.Builder
	for i, k := range m.Keys() {
		if i > 0 {
			sb.WriteString("; ")
		}
		v, _ := m.Get(k)
		sb.WriteString(k)
		sb.WriteString("=")
		sb.WriteString(v)
	}
	return sb.String()
}
