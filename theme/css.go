// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"cogentcore.org/materialtheme/base/errors"
	"github.com/aymerick/douceur/css"
)

// StyleSheet returns a CSS stylesheet that sets the properties that
// [Environment.Apply] would set on the :root element. If opts.Dark
// is nil, the light scheme is used by default and the dark scheme
// is added in a prefers-color-scheme: dark media query.
func StyleSheet(t *Theme, opts ApplyOptions) *css.Stylesheet {
	ss := css.NewStylesheet()
	root := NewRuleSet(":root")
	opts.Target = root
	errors.Log(Environment{}.Apply(t, opts))
	ss.Rules = append(ss.Rules, root.Rule)

	if opts.Dark == nil {
		dark := NewRuleSet(":root")
		setProperties(dark, SchemeProperties(t.Schemes.Dark, ""))
		dark.EmbedLevel = 1
		media := css.NewRule(css.AtRule)
		media.Name = "@media"
		media.Prelude = "(prefers-color-scheme: dark)"
		media.Rules = []*css.Rule{dark.Rule}
		ss.Rules = append(ss.Rules, media)
	}
	return ss
}

// Stylesheet returns the text of [StyleSheet].
func Stylesheet(t *Theme, opts ApplyOptions) string {
	return StyleSheet(t, opts).String() + "\n"
}

// RuleSet is a [Target] that collects properties as the
// declarations of a CSS rule.
type RuleSet struct {
	*css.Rule
}

// NewRuleSet returns a new [RuleSet] for the given selectors.
func NewRuleSet(selectors ...string) *RuleSet {
	r := css.NewRule(css.QualifiedRule)
	r.Selectors = selectors
	return &RuleSet{Rule: r}
}

// SetProperty implements [Target], replacing any existing
// declaration of the property.
func (r *RuleSet) SetProperty(name, value string) {
	for _, d := range r.Declarations {
		if d.Property == name {
			d.Value = value
			return
		}
	}
	d := css.NewDeclaration()
	d.Property = name
	d.Value = value
	r.Declarations = append(r.Declarations, d)
}
