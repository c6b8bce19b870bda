package ll

import (
	"bytes"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// SymbolSet is an ordered set of grammar symbols. Symbols are ordered by their
// display name, which makes printing a set reproducible. Clients may read
// sets, but only the analysis adds to them: sets never shrink.
type SymbolSet struct {
	tree *treeset.Set
}

// We need this for the set of symbols. It sorts symbols by name, then by kind,
// keeping a terminal named "$" apart from the end-of-input marker.
func symbolComparator(s1, s2 interface{}) int {
	A := s1.(Symbol)
	B := s2.(Symbol)
	if c := utils.StringComparator(A.Name, B.Name); c != 0 {
		return c
	}
	return utils.IntComparator(int(A.Kind), int(B.Kind))
}

func newSymbolSet(syms ...Symbol) *SymbolSet {
	S := &SymbolSet{tree: treeset.NewWith(symbolComparator)}
	for _, A := range syms {
		S.tree.Add(A)
	}
	return S
}

// add inserts A and returns true if S changed.
func (S *SymbolSet) add(A Symbol) bool {
	if S.tree.Contains(A) {
		return false
	}
	S.tree.Add(A)
	return true
}

// unionWithout adds all elements of other except for symbol ex and returns true
// if S changed.
func (S *SymbolSet) unionWithout(other *SymbolSet, ex Symbol) bool {
	if other == nil || other == S {
		return false
	}
	before := S.tree.Size()
	it := other.tree.Iterator()
	for it.Next() {
		if A := it.Value().(Symbol); A != ex {
			S.tree.Add(A)
		}
	}
	return S.tree.Size() > before
}

// union adds all elements of other and returns true if S changed.
func (S *SymbolSet) union(other *SymbolSet) bool {
	if other == nil || other == S {
		return false
	}
	before := S.tree.Size()
	it := other.tree.Iterator()
	for it.Next() {
		S.tree.Add(it.Value())
	}
	return S.tree.Size() > before
}

// Contains checks if A is an element of S.
func (S *SymbolSet) Contains(A Symbol) bool {
	if S == nil {
		return false
	}
	return S.tree.Contains(A)
}

// Size returns the number of elements.
func (S *SymbolSet) Size() int {
	if S == nil {
		return 0
	}
	return S.tree.Size()
}

// Empty is true for a set without elements.
func (S *SymbolSet) Empty() bool {
	return S.Size() == 0
}

// Values returns the elements of S in order.
func (S *SymbolSet) Values() []Symbol {
	if S == nil {
		return nil
	}
	syms := make([]Symbol, 0, S.tree.Size())
	it := S.tree.Iterator()
	for it.Next() {
		syms = append(syms, it.Value().(Symbol))
	}
	return syms
}

// Names returns the display names of the elements of S in order.
func (S *SymbolSet) Names() []string {
	syms := S.Values()
	names := make([]string, len(syms))
	for i, A := range syms {
		names[i] = A.String()
	}
	return names
}

// Equals checks if two sets contain the same symbols.
func (S *SymbolSet) Equals(other *SymbolSet) bool {
	if S.Size() != other.Size() {
		return false
	}
	for _, A := range S.Values() {
		if !other.Contains(A) {
			return false
		}
	}
	return true
}

// Copy returns a copy of S, which the caller is free to keep.
func (S *SymbolSet) Copy() *SymbolSet {
	return newSymbolSet(S.Values()...)
}

// String prints a set as "[a, b, ε]".
func (S *SymbolSet) String() string {
	var b bytes.Buffer
	b.WriteString("[")
	for i, A := range S.Values() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(A.String())
	}
	b.WriteString("]")
	return b.String()
}
