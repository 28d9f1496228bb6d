// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"strings"
	"sync"
)

// StyleMap is an in-memory [Target] that records style properties in
// the order they were first set. It is safe for concurrent use; when
// a property is set concurrently the last write wins.
type StyleMap struct {
	mu    sync.Mutex
	order []string
	props map[string]string
}

// NewStyleMap returns a new empty [StyleMap].
func NewStyleMap() *StyleMap {
	return &StyleMap{props: map[string]string{}}
}

// SetProperty implements [Target].
func (m *StyleMap) SetProperty(name, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.props == nil {
		m.props = map[string]string{}
	}
	if _, ok := m.props[name]; !ok {
		m.order = append(m.order, name)
	}
	m.props[name] = value
}

// Get returns the value of the given property and whether it is set.
func (m *StyleMap) Get(name string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.props[name]
	return v, ok
}

// Len returns the number of properties.
func (m *StyleMap) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.order)
}

// Properties returns all of the properties in the order they were first set.
func (m *StyleMap) Properties() []Property {
	m.mu.Lock()
	defer m.mu.Unlock()
	props := make([]Property, len(m.order))
	for i, n := range m.order {
		props[i] = Property{Name: n, Value: m.props[n]}
	}
	return props
}

// String returns the properties as CSS declarations, one per line.
func (m *StyleMap) String() string {
	var b strings.Builder
	for _, p := range m.Properties() {
		b.WriteString(p.Name)
		b.WriteString(": ")
		b.WriteString(p.Value)
		b.WriteString(";\n")
	}
	return b.String()
}
