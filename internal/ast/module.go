package ast

import "fmt"

// ModuleNode holds an ordered list of top-level declarations plus a public
// name namespace, and an owning parent module (nil at the root). Spec §3
// "Module node".
type ModuleNode struct {
	Header
	Name  *NameHandle // nil for the root/program module
	Decls *NodeList[Decl]
	Public *Namespace // public (non "_"-prefixed) top-level names
	Owner  *ModuleNode
}

func (*ModuleNode) Tag() Tag { return TagModule }

// NewModule creates an empty module owned by owner (nil for the root).
func NewModule(name *NameHandle, owner *ModuleNode) *ModuleNode {
	return &ModuleNode{
		Name:   name,
		Decls:  NewNodeList[Decl](64),
		Public: NewNamespace(),
		Owner:  owner,
	}
}

// AddDecl adds a newly parsed top-level declaration to the module: it is
// always appended to the ordered declaration list, and additionally
// registered in the public namespace unless its name is private
// (spec §3 invariant: "every declaration in the ordered list is also
// reachable from the namespace iff its first character is not '_'").
//
// Returns false if a declaration with the same name already exists at this
// module level (spec §3: "two declarations with the same name at the same
// module level is an error raised at parse-add time"); the caller reports
// ErrorDupName.
func (m *ModuleNode) AddDecl(d Decl) bool {
	name := d.DeclName()
	if name != nil && name.Private() {
		for _, other := range m.Decls.Slice() {
			if other.DeclName() == name {
				m.Decls.Add(d)
				return false
			}
		}
	}
	m.Decls.Add(d)
	if name == nil || name.Private() {
		return true
	}
	return m.Public.Set(name, d)
}

// LookupQualified resolves a dotted path of module-name qualifiers starting
// from m, then looks up the final name in the resulting module's namespace
// (spec §4.3 step 1; supplemented from original_source's iterative
// namespaceFind walk over qualNames).
func (m *ModuleNode) LookupQualified(qualifiers []*NameHandle, name *NameHandle) (Decl, error) {
	cur := m
	for _, q := range qualifiers {
		next, ok := cur.Public.Find(q)
		if !ok {
			return nil, fmt.Errorf("module %s does not exist", q.Text())
		}
		mod, ok := next.(*ModuleNode)
		if !ok {
			return nil, fmt.Errorf("%s is not a module", q.Text())
		}
		cur = mod
	}
	d, ok := cur.Public.Find(name)
	if !ok {
		return nil, fmt.Errorf("name %s not found", name.Text())
	}
	return d, nil
}

// ensure ModuleNode also satisfies the Decl interface when nested as a
// submodule declaration (its "value type" slot is unused and always nil).
func (m *ModuleNode) DeclName() *NameHandle       { return m.Name }
func (m *ModuleNode) ValueType() Type             { return nil }
func (m *ModuleNode) SetValueType(Type)           {}

var _ Decl = (*ModuleNode)(nil)
