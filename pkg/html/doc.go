// Package html models the attribute layer of server-rendered markup. An
// Attribute pairs a name with a typed Value (absent, boolean, scalar or list)
// and renders itself with HTML5 escaping. Attributes is the ordered collection
// an element renders into its opening tag; owners can bind names to getter and
// setter callbacks so that reads and writes through the collection reach the
// owner's own state instead of stored attributes.
//
// Element is the minimal markup node used by form elements: a tag, its
// Attributes and escaped content. Component adapts any renderer to the
// templ.Component interface so elements can be embedded in templ views.
package html
