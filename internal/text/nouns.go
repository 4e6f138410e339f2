// Package text provides noun comparison helpers for kgr.
// Suggestions that differ from the input only by case or pluralization are
// not worth a prompt, so the engine filters them out with SameNoun.
package text

import (
	"strings"

	"github.com/gertd/go-pluralize"
)

// Comparer compares values as English nouns.
type Comparer struct {
	client *pluralize.Client
}

// NewComparer creates a new noun comparer.
func NewComparer() *Comparer {
	return &Comparer{client: pluralize.NewClient()}
}

// SameNoun reports whether a and b are the same noun, ignoring case and
// singular/plural differences ("Company" vs "companies").
func (c *Comparer) SameNoun(a, b string) bool {
	a = strings.TrimSpace(strings.ToLower(a))
	b = strings.TrimSpace(strings.ToLower(b))
	if a == b {
		return true
	}
	if a == "" || b == "" {
		return false
	}
	return c.client.Singular(a) == c.client.Singular(b)
}
