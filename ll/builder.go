package ll

import "fmt"

// GrammarBuilder is a builder type for grammars. Create one with
// NewGrammarBuilder and add rules with LHS(…):
//
//    b := ll.NewGrammarBuilder("Expressions")
//    b.LHS("E").N("E").T("+").N("T").End()   // E -> E + T
//    b.LHS("E").N("T").End()                 // E -> T
//    b.LHS("T").T("id").End()                // T -> id
//    g, err := b.Grammar()
//
// The LHS of the first rule is the start symbol, unless GrammarWithStart is used.
type GrammarBuilder struct {
	name  string
	heads []string // non-terminals in order of first appearance as LHS
	seen  map[string]bool
	prods []production
	nrefs map[string]bool // names referenced with N(…)
	trefs map[string]bool // names referenced with T(…)
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar
// to build.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	return &GrammarBuilder{
		name:  gname,
		seen:  make(map[string]bool),
		nrefs: make(map[string]bool),
		trefs: make(map[string]bool),
	}
}

// RuleBuilder is a builder type for a single rule.
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs string
	rhs []string
}

// LHS starts a rule given the left hand side symbol (non-terminal).
func (gb *GrammarBuilder) LHS(name string) *RuleBuilder {
	if !gb.seen[name] {
		gb.seen[name] = true
		gb.heads = append(gb.heads, name)
	}
	return &RuleBuilder{gb: gb, lhs: name}
}

// N appends a non-terminal to the builder.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.gb.nrefs[name] = true
	rb.rhs = append(rb.rhs, name)
	return rb
}

// T appends a terminal to the builder.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	rb.gb.trefs[name] = true
	rb.rhs = append(rb.rhs, name)
	return rb
}

// End ends a rule.
func (rb *RuleBuilder) End() {
	rb.gb.prods = append(rb.gb.prods, production{lhs: rb.lhs, rhs: rb.rhs})
}

// Epsilon sets an epsilon-production as the RHS and ends the rule.
func (rb *RuleBuilder) Epsilon() {
	rb.rhs = nil
	rb.End()
}

// Grammar returns the grammar built so far, with the LHS of the first rule as
// start symbol.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if len(gb.heads) == 0 {
		return nil, fmt.Errorf("%w: grammar %q has no rules", ErrInvalidGrammar, gb.name)
	}
	return gb.GrammarWithStart(gb.heads[0])
}

// GrammarWithStart returns the grammar built so far, with an explicit start symbol.
// It checks that symbols referenced as non-terminals head a rule and that symbols
// referenced as terminals do not.
func (gb *GrammarBuilder) GrammarWithStart(start string) (*Grammar, error) {
	for name := range gb.nrefs {
		if !gb.seen[name] {
			return nil, fmt.Errorf("%w: non-terminal %q has no rules", ErrInvalidGrammar, name)
		}
	}
	for name := range gb.trefs {
		if gb.seen[name] {
			return nil, fmt.Errorf("%w: terminal %q heads a rule", ErrInvalidGrammar, name)
		}
	}
	g, err := newGrammar(gb.name, start, gb.heads, gb.prods)
	if err != nil {
		return nil, err
	}
	g.Dump()
	return g, nil
}
