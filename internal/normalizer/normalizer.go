// Package normalizer flattens the generic XML-derived tree into plain
// JSON-compatible data. This is the core of the tool: a small set of
// deterministic rewrite rules applied depth-first.
//
// The rules, in order:
//
//  1. Sibling elements sharing a tag name become an array over their
//     normalized members, order and length preserved. A tag that occurs
//     once keeps its own shape, unwrapped.
//  2. An element whose sole content is text collapses to that text as a
//     bare string.
//  3. Anything else becomes an object: attributes first, in reported
//     order, under their (optionally prefixed) names; then child groups in
//     document order. Declarations and leftover mixed-content text are
//     never emitted.
//  4. Scalars pass through unchanged.
package normalizer

import (
	"github.com/iancoleman/strcase"

	"github.com/mcncl/xmljson/internal/models"
)

// DefaultPrefix is prepended to attribute keys when prefixing is enabled.
const DefaultPrefix = "_"

// Key casing modes for child element keys. Attribute values are never
// case-converted.
const (
	KeyCaseNone  = "none"
	KeyCaseSnake = "snake"
	KeyCaseCamel = "camel"
	KeyCaseKebab = "kebab"
)

// Options controls normalization output shape.
type Options struct {
	// PrefixAttributes controls whether attribute keys are prefixed to
	// distinguish them from child element keys.
	PrefixAttributes bool
	// Prefix is the attribute key prefix; DefaultPrefix when empty.
	Prefix string
	// KeyCase optionally case-converts element-derived keys. Empty or
	// KeyCaseNone leaves keys untouched.
	KeyCase string
}

// DefaultOptions returns the options the tool ships with: attribute
// prefixing on, underscore prefix, no key casing.
func DefaultOptions() Options {
	return Options{PrefixAttributes: true, Prefix: DefaultPrefix}
}

// Normalize rewrites node into a fresh JSON-compatible value. It does not
// fail on trees produced by the parser adapter; malformed input is rejected
// before a tree exists.
func Normalize(node models.Node, opts Options) models.Value {
	if opts.Prefix == "" {
		opts.Prefix = DefaultPrefix
	}
	return normalizeNode(node, opts)
}

func normalizeNode(node models.Node, opts Options) models.Value {
	switch n := node.(type) {
	case models.Scalar:
		return string(n)
	case *models.Element:
		return normalizeElement(n, opts)
	default:
		return nil
	}
}

func normalizeElement(e *models.Element, opts Options) models.Value {
	if e.IsTextOnly() {
		return e.Text
	}

	obj := models.NewObject()

	// Attribute keys are inserted before child-derived keys. A same-named
	// child element later overwrites the attribute's value at this position.
	for _, attr := range e.Attributes {
		key := attr.Name
		if opts.PrefixAttributes {
			key = opts.Prefix + attr.Name
		}
		obj.Set(key, attr.Value)
	}

	for _, group := range e.Children {
		obj.Set(childKey(group.Name, opts), normalizeGroup(group.Nodes, opts))
	}

	// e.Text alongside attributes or children is dropped: no key is
	// synthesized for mixed content, and e.Declaration is never emitted.
	return obj
}

// normalizeGroup decides array-vs-scalar shape at the point of emission:
// singleton groups normalize to the child's own shape.
func normalizeGroup(nodes []models.Node, opts Options) models.Value {
	if len(nodes) == 1 {
		return normalizeNode(nodes[0], opts)
	}
	arr := make(models.Array, len(nodes))
	for i, n := range nodes {
		arr[i] = normalizeNode(n, opts)
	}
	return arr
}

func childKey(name string, opts Options) string {
	switch opts.KeyCase {
	case KeyCaseSnake:
		return strcase.ToSnake(name)
	case KeyCaseCamel:
		return strcase.ToLowerCamel(name)
	case KeyCaseKebab:
		return strcase.ToKebab(name)
	default:
		return name
	}
}
