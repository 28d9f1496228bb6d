// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dom applies themes to the elements of HTML documents.
package dom

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"cogentcore.org/materialtheme/theme"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element is an HTML element that is a [theme.Target]: setting a
// property updates the declarations of its style attribute.
type Element struct {
	mu   sync.Mutex
	Node *html.Node
}

// NewElement returns a new [Element] for the given element node.
func NewElement(n *html.Node) *Element {
	return &Element{Node: n}
}

// declarations returns the parsed declarations of the style attribute.
func (e *Element) declarations() []*css.Declaration {
	style := e.attr("style")
	if strings.TrimSpace(style) == "" {
		return nil
	}
	decls, err := parser.ParseDeclarations(style)
	if err != nil {
		slog.Debug("ignoring invalid style attribute", "style", style, "err", err)
		return nil
	}
	return decls
}

func (e *Element) attr(key string) string {
	for _, a := range e.Node.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func (e *Element) setAttr(key, val string) {
	for i, a := range e.Node.Attr {
		if a.Key == key {
			e.Node.Attr[i].Val = val
			return
		}
	}
	e.Node.Attr = append(e.Node.Attr, html.Attribute{Key: key, Val: val})
}

// SetProperty implements [theme.Target], replacing any existing
// declaration of the property in the style attribute or adding
// one at the end.
func (e *Element) SetProperty(name, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	decls := e.declarations()
	found := false
	for _, d := range decls {
		if d.Property == name {
			d.Value = value
			found = true
		}
	}
	if !found {
		d := css.NewDeclaration()
		d.Property = name
		d.Value = value
		decls = append(decls, d)
	}
	strs := make([]string, len(decls))
	for i, d := range decls {
		strs[i] = d.String()
	}
	e.setAttr("style", strings.Join(strs, " "))
}

// Property returns the value of the given property in the
// style attribute and whether it is set.
func (e *Element) Property(name string) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, d := range e.declarations() {
		if d.Property == name {
			return d.Value, true
		}
	}
	return "", false
}

// Document is a parsed HTML document.
type Document struct {
	Node *html.Node
	root *Element
}

// Parse parses an HTML document from the given reader.
func Parse(r io.Reader) (*Document, error) {
	n, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parsing html: %w", err)
	}
	return &Document{Node: n}, nil
}

// Root returns the <html> element of the document, or nil if there is none.
func (d *Document) Root() *Element {
	if d.root != nil {
		return d.root
	}
	n := find(d.Node, atom.Html)
	if n == nil {
		return nil
	}
	d.root = NewElement(n)
	return d.root
}

// Head returns the <head> element node of the document, or nil if there is none.
func (d *Document) Head() *html.Node {
	return find(d.Node, atom.Head)
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.Node)
}

// Environment returns a [theme.Environment] whose default target is
// the root element of the document, with the given dark preference.
func (d *Document) Environment(prefersDark func() bool) theme.Environment {
	return theme.Environment{
		PrefersDark: prefersDark,
		DefaultTarget: func() theme.Target {
			if r := d.Root(); r != nil {
				return r
			}
			return nil
		},
	}
}

// AddStyleSheet adds a <style> element with the stylesheet of the
// theme to the head of the document. See [theme.Stylesheet].
func (d *Document) AddStyleSheet(t *theme.Theme, opts theme.ApplyOptions) error {
	head := d.Head()
	if head == nil {
		return fmt.Errorf("dom: document has no head")
	}
	style := &html.Node{Type: html.ElementNode, DataAtom: atom.Style, Data: "style"}
	style.AppendChild(&html.Node{Type: html.TextNode, Data: "\n" + theme.Stylesheet(t, opts)})
	head.AppendChild(style)
	return nil
}

func find(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if f := find(c, a); f != nil {
			return f
		}
	}
	return nil
}
