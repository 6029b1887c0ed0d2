package ast

import "github.com/aril-lang/arilc/internal/nametbl"

// NameHandle is the interned identifier type IR nodes carry. Aliased here so
// callers only importing ast don't also need to spell out nametbl.
type NameHandle = nametbl.Handle

// NodeList is an ordered, growable sequence of IR nodes (spec §2 component
// 3, "node container utilities"). Grounded on original_source's Nodes
// container (ir/ir.h: nodesAdd/nodesFor/nodesInsert/nodesGet), translated
// into an idiomatic Go generic instead of the C version's manually resized
// array-of-pointers.
type NodeList[T Node] struct {
	items []T
}

// NewNodeList creates a node list, optionally pre-sized.
func NewNodeList[T Node](capacity int) *NodeList[T] {
	return &NodeList[T]{items: make([]T, 0, capacity)}
}

// Add appends a node to the end of the list.
func (n *NodeList[T]) Add(item T) {
	n.items = append(n.items, item)
}

// Insert places item at position i, shifting everything after it right.
// Mirrors the C original's nodesInsert, used by fncall lowering to prepend
// the receiver as argument 0 (spec §4.4 step 4).
func (n *NodeList[T]) Insert(i int, item T) {
	n.items = append(n.items, item)
	copy(n.items[i+1:], n.items[i:])
	n.items[i] = item
}

// Len returns the number of nodes in the list.
func (n *NodeList[T]) Len() int {
	if n == nil {
		return 0
	}
	return len(n.items)
}

// At returns the node at index i.
func (n *NodeList[T]) At(i int) T { return n.items[i] }

// Set replaces the node at index i.
func (n *NodeList[T]) Set(i int, item T) { n.items[i] = item }

// Slice returns the underlying items as a plain slice. Callers must not
// retain a pointer into it across a later Add/Insert (which may reallocate).
func (n *NodeList[T]) Slice() []T {
	if n == nil {
		return nil
	}
	return n.items
}

// Namespace maps a name handle to the declaration node it is bound to within
// some lexical container (a module's public names, a struct's
// methods/properties). Spec §3 "Module node": "a public-name namespace (map
// from name handle to declaration)".
type Namespace struct {
	entries map[*NameHandle]Decl
}

// NewNamespace creates an empty namespace.
func NewNamespace() *Namespace {
	return &Namespace{entries: make(map[*NameHandle]Decl)}
}

// Find looks up name in this namespace only (no parent chaining — namespace
// chaining across modules is done explicitly via qualifier lookup, spec
// §4.3 step 1).
func (ns *Namespace) Find(name *NameHandle) (Decl, bool) {
	if ns == nil {
		return nil, false
	}
	d, ok := ns.entries[name]
	return d, ok
}

// Set binds name to decl. Returns false if name was already bound (the
// caller is responsible for raising ErrorDupName; spec §3 "two declarations
// with the same name at the same module level is an error raised at
// parse-add time").
func (ns *Namespace) Set(name *NameHandle, decl Decl) bool {
	if _, exists := ns.entries[name]; exists {
		return false
	}
	ns.entries[name] = decl
	return true
}

// Overwrite unconditionally (re)binds name to decl. Used when a forward
// declaration is later replaced by its full form.
func (ns *Namespace) Overwrite(name *NameHandle, decl Decl) {
	ns.entries[name] = decl
}
