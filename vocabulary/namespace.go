// Package vocabulary defines the IRI namespaces shared by mu services.
//
// Extensions mint identifiers by appending a local name to a namespace:
//
//	vocabulary.MUExt.Term("Order") // "http://mu.semte.ch/vocabularies/ext/Order"
package vocabulary

import (
	"fmt"
	"strings"
)

// Namespace is a base IRI. Every Namespace ends in "/" so that appending a
// local name yields a valid IRI.
type Namespace string

// Base IRIs for the mu vocabularies.
const (
	MU     Namespace = "http://mu.semte.ch/vocabularies/"
	MUCore Namespace = MU + "core/"
	MUExt  Namespace = MU + "ext/"
)

// ServiceResourceBase is the base IRI for resources identifying a service.
const ServiceResourceBase = "http://mu.semte.ch/services/"

// UUID is the mu-core:uuid predicate every mu resource carries.
const UUID = string(MUCore) + "uuid"

// Term returns the IRI for local within the namespace.
func (ns Namespace) Term(local string) string {
	return string(ns) + local
}

// String implements fmt.Stringer.
func (ns Namespace) String() string {
	return string(ns)
}

// Contains reports whether iri lives directly or transitively under ns.
func (ns Namespace) Contains(iri string) bool {
	return strings.HasPrefix(iri, string(ns))
}

// Local strips the namespace from iri. The second result is false when iri
// is not in ns or nothing remains after the prefix.
func (ns Namespace) Local(iri string) (string, bool) {
	if !ns.Contains(iri) {
		return "", false
	}
	local := iri[len(ns):]
	return local, local != ""
}

// Prefix pairs a short name with its namespace.
type Prefix struct {
	Name      string
	Namespace Namespace
}

// Prefixes returns the predefined prefixes in a fixed order.
func Prefixes() []Prefix {
	return []Prefix{
		{Name: "mu", Namespace: MU},
		{Name: "mu-core", Namespace: MUCore},
		{Name: "mu-ext", Namespace: MUExt},
	}
}

// PrefixDeclarations renders the predefined prefixes as SPARQL PREFIX lines.
func PrefixDeclarations() string {
	var b strings.Builder
	for _, p := range Prefixes() {
		fmt.Fprintf(&b, "PREFIX %s: <%s>\n", p.Name, p.Namespace)
	}
	return b.String()
}
