// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Entry is one key and value of an [Ordered] map.
type Entry[V any] struct {
	Key   string
	Value V
}

// Ordered is a string keyed map that keeps the order of its
// entries when it is encoded as JSON or YAML.
type Ordered[V any] []Entry[V]

// Get returns the value for the given key and whether it exists.
func (o Ordered[V]) Get(key string) (V, bool) {
	for _, e := range o {
		if e.Key == key {
			return e.Value, true
		}
	}
	var zero V
	return zero, false
}

// Map returns the entries as a regular map.
func (o Ordered[V]) Map() map[string]V {
	m := make(map[string]V, len(o))
	for _, e := range o {
		m[e.Key] = e.Value
	}
	return m
}

// MarshalJSON implements [json.Marshaler].
func (o Ordered[V]) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, e := range o {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		b.Write(k)
		b.WriteByte(':')
		b.Write(v)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// MarshalYAML implements [yaml.Marshaler].
func (o Ordered[V]) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range o {
		var v yaml.Node
		if err := v.Encode(e.Value); err != nil {
			return nil, err
		}
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key}, &v)
	}
	return n, nil
}
