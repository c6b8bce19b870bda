package ll

// FirstSets maps each non-terminal to its FIRST set, drawn from the terminals
// plus epsilon.
type FirstSets map[Symbol]*SymbolSet

// FollowSets maps each non-terminal to its FOLLOW set, drawn from the terminals
// plus the end-of-input marker.
type FollowSets map[Symbol]*SymbolSet

// Analysis is an object for static analysis of a grammar, computing FIRST and
// FOLLOW sets.
//
// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc, Jr.
// Section 4.5 and 4.6
type Analysis struct {
	g            *Grammar
	first        FirstSets
	follow       FollowSets
	firstPasses  int
	followPasses int
}

// NewAnalysis creates an analysis object for a grammar. Sets are computed on
// demand.
func NewAnalysis(g *Grammar) *Analysis {
	return &Analysis{g: g}
}

// Analyze creates an analysis for a grammar and computes FIRST and FOLLOW sets.
func Analyze(g *Grammar) *Analysis {
	ga := NewAnalysis(g)
	ga.ComputeFirst()
	ga.ComputeFollow()
	return ga
}

// Grammar returns the grammar this analysis is for.
func (ga *Analysis) Grammar() *Grammar {
	return ga.g
}

// ComputeFirst computes FIRST(N) for every non-terminal N. Each call starts
// from empty sets and iterates until a fixed point is reached. The returned sets
// must not be modified.
func (ga *Analysis) ComputeFirst() FirstSets {
	first := make(FirstSets, len(ga.g.nonterminals))
	for _, N := range ga.g.nonterminals {
		first[N] = newSymbolSet()
	}
	passes := 1
	for firstPass(ga.g, first) {
		passes++
	}
	tracer().Debugf("FIRST sets of %q stable after %d passes", ga.g.Name, passes)
	ga.first, ga.firstPasses = first, passes
	return first
}

// ComputeFollow computes FOLLOW(N) for every non-terminal N. If FIRST sets
// have not been computed yet, ComputeFollow will compute them first. The
// returned sets must not be modified.
func (ga *Analysis) ComputeFollow() FollowSets {
	if ga.first == nil {
		ga.ComputeFirst()
	}
	follow := make(FollowSets, len(ga.g.nonterminals))
	for _, N := range ga.g.nonterminals {
		follow[N] = newSymbolSet()
	}
	follow[ga.g.start].add(EndOfInput)
	passes := 1
	for followPass(ga.g, ga.first, follow) {
		passes++
	}
	tracer().Debugf("FOLLOW sets of %q stable after %d passes", ga.g.Name, passes)
	ga.follow, ga.followPasses = follow, passes
	return follow
}

// firstPass applies the FIRST inference rules to every rule once and reports
// whether any set has grown.
func firstPass(g *Grammar, first FirstSets) bool {
	changed := false
	for _, N := range g.nonterminals {
		for _, r := range g.rulesByLHS[N.Name] {
			if walkFirst(r.rhs, first, first[N]) {
				changed = true
			}
		}
	}
	return changed
}

// walkFirst adds the FIRST set of a symbol sequence to set S and reports
// whether S changed. A terminal ends the walk, as does a non-terminal which
// cannot derive epsilon. If the walk runs through the sequence, epsilon is added.
func walkFirst(seq []Symbol, first FirstSets, S *SymbolSet) bool {
	changed := false
	for _, A := range seq {
		switch A.Kind {
		case TerminalKind:
			return S.add(A) || changed
		case NonTerminalKind:
			if S.unionWithout(first[A], Epsilon) {
				changed = true
			}
			if !first[A].Contains(Epsilon) {
				return changed
			}
		}
	}
	return S.add(Epsilon) || changed
}

// followPass applies the FOLLOW inference rules to every occurence of a
// non-terminal B in a rule A → α B β once and reports whether any set has grown.
func followPass(g *Grammar, first FirstSets, follow FollowSets) bool {
	changed := false
	for _, A := range g.nonterminals {
		for _, r := range g.rulesByLHS[A.Name] {
			for i, B := range r.rhs {
				if !B.IsNonTerminal() {
					continue
				}
				fbeta := newSymbolSet()
				walkFirst(r.rhs[i+1:], first, fbeta)
				if follow[B].unionWithout(fbeta, Epsilon) {
					changed = true
				}
				if fbeta.Contains(Epsilon) && follow[B].union(follow[A]) {
					changed = true
				}
			}
		}
	}
	return changed
}

// FirstOfSequence returns FIRST of a sequence of symbols. The FIRST set of
// the empty sequence is {ε}.
func (ga *Analysis) FirstOfSequence(seq []Symbol) *SymbolSet {
	if ga.first == nil {
		ga.ComputeFirst()
	}
	S := newSymbolSet()
	walkFirst(seq, ga.first, S)
	return S
}

// First returns FIRST(N) for a non-terminal N, or nil if N is not a
// non-terminal of the grammar.
func (ga *Analysis) First(N Symbol) *SymbolSet {
	if ga.first == nil {
		ga.ComputeFirst()
	}
	return ga.first[N]
}

// Follow returns FOLLOW(N) for a non-terminal N, or nil if N is not a
// non-terminal of the grammar.
func (ga *Analysis) Follow(N Symbol) *SymbolSet {
	if ga.follow == nil {
		ga.ComputeFollow()
	}
	return ga.follow[N]
}

// DerivesEpsilon is true if N may derive the empty string.
func (ga *Analysis) DerivesEpsilon(N Symbol) bool {
	return ga.First(N).Contains(Epsilon)
}

// Passes returns the number of full passes the most recent FIRST and FOLLOW
// computations needed to reach their fixed points, including the final pass
// without changes. Zero means not computed yet.
func (ga *Analysis) Passes() (first int, follow int) {
	return ga.firstPasses, ga.followPasses
}
