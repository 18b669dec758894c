package asm

import "hackasm/pkg/hack"

// SymbolTable binds symbol names to addresses. Entries keep insertion
// order and lookups scan linearly, so a duplicate insertion shadows
// nothing: the first entry for a name always wins. Redefinition is not
// rejected here; that matches the reference assembler's behavior.
type SymbolTable struct {
	entries []hack.Symbol
	nextVar uint16
}

// NewSymbolTable returns a table seeded with the architecture's
// predefined symbols and the variable allocator pointing at the first
// free RAM slot.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		entries: hack.Predefined(),
		nextVar: hack.VarBase,
	}
}

// Insert appends a binding. It does not check for an existing entry with
// the same name.
func (st *SymbolTable) Insert(name string, address uint16) {
	st.entries = append(st.entries, hack.Symbol{Name: name, Address: address})
}

// Lookup returns the address bound to name, scanning entries in
// insertion order.
func (st *SymbolTable) Lookup(name string) (uint16, bool) {
	for _, e := range st.entries {
		if e.Name == name {
			return e.Address, true
		}
	}
	return 0, false
}

// AllocateVariable resolves name, binding it to the next free variable
// slot if it is not yet known. The allocator only advances on a fresh
// binding, so re-references are stable.
func (st *SymbolTable) AllocateVariable(name string) uint16 {
	if addr, ok := st.Lookup(name); ok {
		return addr
	}
	addr := st.nextVar
	st.Insert(name, addr)
	st.nextVar++
	return addr
}

// Len reports the number of entries, predefined symbols included.
func (st *SymbolTable) Len() int {
	return len(st.entries)
}

// Entries returns a copy of the table in insertion order.
func (st *SymbolTable) Entries() []hack.Symbol {
	out := make([]hack.Symbol, len(st.entries))
	copy(out, st.entries)
	return out
}
