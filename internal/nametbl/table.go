// Package nametbl implements the interned name table and the scope hooking
// stack described in spec §4.1. Every source identifier string interns to a
// single *Handle; handle identity is pointer equality. Each handle carries a
// mutable "current binding" slot that the name resolution pass hooks and
// unhooks as it enters and leaves lexical scopes (§4.3, §5).
//
// The binding a handle carries is opaque (any) rather than a concrete
// *ast.Decl: nametbl is a leaf package (per the dependency order in spec
// §2's component table) and must not import the IR node model that refers
// back to it through every Name field.
package nametbl

import (
	"golang.org/x/text/unicode/norm"

	"github.com/minio/highwayhash"
)

// tableKey is the fixed HighwayHash key used to bucket interned identifiers.
// Grounded on viant-linager's inspector/graph/hash.go, which hashes AST
// fingerprints the same way: a fixed 32-byte key, highwayhash.Sum64.
var tableKey = []byte("ARIL-NAMETABLE-KEY-0123456789ABC")

// Handle is an interned identifier. Two calls to Table.Intern with equal
// strings return the identical *Handle (testable property §8.4).
type Handle struct {
	text    string
	private bool

	// current is the declaration (or other binding payload) currently
	// assigned to this name, or nil if unbound. Mutated only through
	// Table.Hook / Table.PopScope.
	current any
}

// Text returns the original, NFC-normalized spelling of the identifier.
func (h *Handle) Text() string { return h.text }

// Private reports whether the identifier begins with '_' (spec §3).
func (h *Handle) Private() bool { return h.private }

// Current returns the declaration currently hooked to this name, or nil.
func (h *Handle) Current() any { return h.current }

// scratchEntry records the binding a Hook call displaced, so PopScope can
// restore it.
type scratchEntry struct {
	handle *Handle
	prev   any
}

// Table is the process-wide (or, for isolated tests, per-analysis) interned
// name table plus its LIFO hook stack. Per spec §5 it is single-threaded;
// there is no internal locking.
type Table struct {
	buckets map[uint64][]*Handle
	scratch []scratchEntry
	marks   []int
}

// New creates an empty name table.
func New() *Table {
	return &Table{
		buckets: make(map[uint64][]*Handle),
	}
}

func normalize(s string) string {
	return norm.NFC.String(s)
}

func hashOf(s string) uint64 {
	h, err := highwayhash.New64(tableKey)
	if err != nil {
		// tableKey is a fixed, valid 32-byte key; this cannot fail.
		panic(err)
	}
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// Intern returns the unique handle for s, creating it on first use.
// Idempotent: Intern(s) == Intern(s) for any s (testable property §8.4).
func (t *Table) Intern(s string) *Handle {
	s = normalize(s)
	key := hashOf(s)
	for _, h := range t.buckets[key] {
		if h.text == s {
			return h
		}
	}
	h := &Handle{text: s, private: len(s) > 0 && s[0] == '_'}
	t.buckets[key] = append(t.buckets[key], h)
	return h
}

// Lookup returns the handle for s without interning it, if it already
// exists.
func (t *Table) Lookup(s string) (*Handle, bool) {
	s = normalize(s)
	key := hashOf(s)
	for _, h := range t.buckets[key] {
		if h.text == s {
			return h, true
		}
	}
	return nil, false
}

// Hook sets handle.current to decl, saving the previous binding on the
// scratch list of the innermost open scope so PopScope can restore it.
// A Hook made while no scope is open belongs to no scope: no PopScope ever
// restores the binding it displaced.
func (t *Table) Hook(h *Handle, decl any) {
	t.scratch = append(t.scratch, scratchEntry{handle: h, prev: h.current})
	h.current = decl
}

// PushScope opens a new scope for hooking. Every PushScope must be paired
// with exactly one PopScope on every exit path (spec §5).
func (t *Table) PushScope() {
	t.marks = append(t.marks, len(t.scratch))
}

// PopScope restores every binding hooked since the matching PushScope, in
// reverse order, then closes the scope. Panics if there is no open scope,
// which indicates an unbalanced push/pop pair in the caller.
func (t *Table) PopScope() {
	if len(t.marks) == 0 {
		panic("nametbl: PopScope with no matching PushScope")
	}
	mark := t.marks[len(t.marks)-1]
	t.marks = t.marks[:len(t.marks)-1]

	for i := len(t.scratch) - 1; i >= mark; i-- {
		entry := t.scratch[i]
		entry.handle.current = entry.prev
	}
	t.scratch = t.scratch[:mark]
}

// Depth returns the number of currently open scopes. Used to assert the
// hook-stack-balance invariant (spec §8.3) around traversal handlers.
func (t *Table) Depth() int {
	return len(t.marks)
}
