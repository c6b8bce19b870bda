package ll

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidGrammar is returned if a grammar cannot be constructed from its
// rules, e.g. if the start symbol does not head any rule.
var ErrInvalidGrammar = errors.New("invalid grammar")

// Rule is a type for rules of a grammar. Rules consist of a non-terminal on the
// left hand side and a sequence of symbols on the right hand side. An
// epsilon-production has an empty RHS.
type Rule struct {
	Serial int      // order number of this rule within a grammar
	LHS    Symbol   // left hand side of the rule
	rhs    []Symbol // right hand side of the rule
}

// RHS returns the right hand side of a rule. The slice is shared with the rule
// and must not be modified.
func (r *Rule) RHS() []Symbol {
	return r.rhs
}

// IsEpsilon is true for epsilon-productions.
func (r *Rule) IsEpsilon() bool {
	return len(r.rhs) == 0
}

func (r *Rule) String() string {
	var b bytes.Buffer
	b.WriteString(r.LHS.Name)
	b.WriteString(" ->")
	if r.IsEpsilon() {
		b.WriteString(" ")
		b.WriteString(EpsilonToken)
	}
	for _, A := range r.rhs {
		b.WriteString(" ")
		b.WriteString(A.Name)
	}
	return b.String()
}

// Grammar is a type for a context-free grammar. Grammars are immutable once
// created. Create one with NewGrammar or with a GrammarBuilder.
type Grammar struct {
	Name         string
	start        Symbol
	nonterminals []Symbol          // in deterministic traversal order
	terminals    []Symbol          // sorted by name, derived once
	rules        []*Rule           // all rules, ordered by serial
	rulesByLHS   map[string][]*Rule // rules per non-terminal name
}

// NewGrammar creates a grammar from a mapping of non-terminal names to their
// productions. Each production is a sequence of symbol names, where EpsilonToken
// stands for the empty string. Non-terminals are the keys of the mapping; they are
// traversed in sorted order, while productions keep the order given.
//
// NewGrammar returns an error wrapping ErrInvalidGrammar if start is not a key
// of rules.
func NewGrammar(name string, start string, rules map[string][][]string) (*Grammar, error) {
	heads := make([]string, 0, len(rules))
	for lhs := range rules {
		heads = append(heads, lhs)
	}
	sort.Strings(heads)
	prods := make([]production, 0, len(rules))
	for _, lhs := range heads {
		for _, rhs := range rules[lhs] {
			prods = append(prods, production{lhs: lhs, rhs: rhs})
		}
		if len(rules[lhs]) == 0 {
			prods = append(prods, production{lhs: lhs, headOnly: true})
		}
	}
	return newGrammar(name, start, heads, prods)
}

// production is a rule in its raw form, with symbol names not yet classified.
type production struct {
	lhs      string
	rhs      []string
	headOnly bool // non-terminal without any production
}

// newGrammar classifies all symbols and builds the grammar. heads lists the
// non-terminal names in traversal order.
func newGrammar(name string, start string, heads []string, prods []production) (*Grammar, error) {
	if len(heads) == 0 {
		return nil, fmt.Errorf("%w: grammar %q has no rules", ErrInvalidGrammar, name)
	}
	g := &Grammar{
		Name:       name,
		rulesByLHS: make(map[string][]*Rule, len(heads)),
	}
	for _, lhs := range heads {
		if lhs == EpsilonToken {
			return nil, fmt.Errorf("%w: %s cannot head a rule", ErrInvalidGrammar, EpsilonToken)
		}
		g.rulesByLHS[lhs] = []*Rule{}
		g.nonterminals = append(g.nonterminals, NonTerminal(lhs))
	}
	if _, ok := g.rulesByLHS[start]; !ok {
		tracer().Errorf("start symbol %q is not a non-terminal of grammar %q", start, name)
		return nil, fmt.Errorf("%w: start symbol %q has no rules", ErrInvalidGrammar, start)
	}
	g.start = NonTerminal(start)
	for _, p := range prods {
		if p.headOnly {
			continue
		}
		r := &Rule{Serial: len(g.rules), LHS: NonTerminal(p.lhs), rhs: make([]Symbol, 0, len(p.rhs))}
		for _, sym := range p.rhs {
			if sym == EpsilonToken {
				continue // epsilon is the unit of concatenation
			}
			r.rhs = append(r.rhs, g.classify(sym))
		}
		g.rules = append(g.rules, r)
		g.rulesByLHS[p.lhs] = append(g.rulesByLHS[p.lhs], r)
	}
	g.terminals = g.findTerminals()
	return g, nil
}

func (g *Grammar) classify(name string) Symbol {
	if _, ok := g.rulesByLHS[name]; ok {
		return NonTerminal(name)
	}
	return Terminal(name)
}

// findTerminals collects every terminal of any RHS, once.
func (g *Grammar) findTerminals() []Symbol {
	seen := make(map[string]bool)
	terms := []Symbol{}
	for _, r := range g.rules {
		for _, A := range r.rhs {
			if A.IsTerminal() && !seen[A.Name] {
				seen[A.Name] = true
				terms = append(terms, A)
			}
		}
	}
	sort.Slice(terms, func(i, j int) bool { return terms[i].Name < terms[j].Name })
	return terms
}

// Start returns the start symbol of the grammar.
func (g *Grammar) Start() Symbol {
	return g.start
}

// NonTerminals returns all non-terminals, in traversal order.
func (g *Grammar) NonTerminals() []Symbol {
	return append([]Symbol(nil), g.nonterminals...)
}

// Terminals returns all terminals, sorted by name.
func (g *Grammar) Terminals() []Symbol {
	return append([]Symbol(nil), g.terminals...)
}

// Rules returns the rules for non-terminal N, in the order they were given.
func (g *Grammar) Rules(N Symbol) []*Rule {
	if !N.IsNonTerminal() {
		return nil
	}
	return g.rulesByLHS[N.Name]
}

// Rule gets a grammar rule by its serial number.
func (g *Grammar) Rule(no int) *Rule {
	if no < 0 || no >= len(g.rules) {
		return nil
	}
	return g.rules[no]
}

// Size returns the number of rules in the grammar.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Symbol finds a grammar symbol by name.
func (g *Grammar) Symbol(name string) (Symbol, bool) {
	if _, ok := g.rulesByLHS[name]; ok {
		return NonTerminal(name), true
	}
	for _, A := range g.terminals {
		if A.Name == name {
			return A, true
		}
	}
	return Symbol{}, false
}

// EachNonTerminal iterates over all non-terminals of the grammar, in traversal
// order. It returns the results of the mapper function as a slice.
func (g *Grammar) EachNonTerminal(mapper func(N Symbol) interface{}) []interface{} {
	var r []interface{}
	for _, N := range g.nonterminals {
		r = append(r, mapper(N))
	}
	return r
}

// EachSymbol iterates over all terminals and then over all non-terminals of
// the grammar. It returns the results of the mapper function as a slice.
func (g *Grammar) EachSymbol(mapper func(A Symbol) interface{}) []interface{} {
	var r []interface{}
	for _, A := range g.terminals {
		r = append(r, mapper(A))
	}
	for _, N := range g.nonterminals {
		r = append(r, mapper(N))
	}
	return r
}

// Dump is a debugging helper: dump the rules of a grammar to the tracer.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	tracer().Debugf("start symbol = %s", g.start)
	for _, r := range g.rules {
		tracer().Debugf("%3d: %s", r.Serial, r)
	}
	tracer().Debugf("-------------------------------------------------------")
}
