package ll

import (
	"errors"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// expect checks a set against a list of symbol names, in order.
func expect(t *testing.T, label string, S *SymbolSet, names ...string) {
	t.Helper()
	got := S.Names()
	if len(got) != len(names) {
		t.Errorf("expected %s = %v, is %v", label, names, S)
		return
	}
	for i := range names {
		if got[i] != names[i] {
			t.Errorf("expected %s = %v, is %v", label, names, S)
			return
		}
	}
}

func mustGrammar(t *testing.T, start string, rules map[string][][]string) *Grammar {
	t.Helper()
	g, err := NewGrammar("G", start, rules)
	if err != nil {
		t.Fatalf("cannot create grammar: %v", err)
	}
	return g
}

//  S -> A B
//  A -> a | ε
//  B -> b
func TestFirstFollowNullablePrefix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "firstfollow.ll")
	defer teardown()
	//
	g := mustGrammar(t, "S", map[string][][]string{
		"S": {{"A", "B"}},
		"A": {{"a"}, {"ε"}},
		"B": {{"b"}},
	})
	ga := NewAnalysis(g)
	first := ga.ComputeFirst()
	expect(t, "FIRST(A)", first[NonTerminal("A")], "a", "ε")
	expect(t, "FIRST(B)", first[NonTerminal("B")], "b")
	expect(t, "FIRST(S)", first[NonTerminal("S")], "a", "b")
	follow := ga.ComputeFollow()
	expect(t, "FOLLOW(A)", follow[NonTerminal("A")], "b")
	expect(t, "FOLLOW(B)", follow[NonTerminal("B")], "$")
	expect(t, "FOLLOW(S)", follow[NonTerminal("S")], "$")
}

func TestOnlyEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "firstfollow.ll")
	defer teardown()
	//
	g := mustGrammar(t, "S", map[string][][]string{
		"S": {{"ε"}},
	})
	ga := Analyze(g)
	expect(t, "FIRST(S)", ga.First(NonTerminal("S")), "ε")
	expect(t, "FOLLOW(S)", ga.Follow(NonTerminal("S")), "$")
	if len(g.Terminals()) != 0 {
		t.Errorf("expected grammar without terminals, have %v", g.Terminals())
	}
}

//  E -> E + T | T
//  T -> id
func TestLeftRecursion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "firstfollow.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("LeftRec")
	b.LHS("E").N("E").T("+").N("T").End()
	b.LHS("E").N("T").End()
	b.LHS("T").T("id").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	ga := Analyze(g)
	expect(t, "FIRST(E)", ga.First(NonTerminal("E")), "id")
	expect(t, "FIRST(T)", ga.First(NonTerminal("T")), "id")
	expect(t, "FOLLOW(E)", ga.Follow(NonTerminal("E")), "$", "+")
	expect(t, "FOLLOW(T)", ga.Follow(NonTerminal("T")), "$", "+")
}

//  S -> A
//  A -> B x
//  B -> A
func TestNoBaseCaseTerminates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "firstfollow.ll")
	defer teardown()
	//
	g := mustGrammar(t, "S", map[string][][]string{
		"S": {{"A"}},
		"A": {{"B", "x"}},
		"B": {{"A"}},
	})
	ga := Analyze(g)
	for _, N := range g.NonTerminals() {
		if !ga.First(N).Empty() {
			t.Errorf("expected FIRST(%s) to be empty, is %v", N, ga.First(N))
		}
	}
	expect(t, "FOLLOW(S)", ga.Follow(NonTerminal("S")), "$")
	expect(t, "FOLLOW(A)", ga.Follow(NonTerminal("A")), "$", "x")
	expect(t, "FOLLOW(B)", ga.Follow(NonTerminal("B")), "x")
}

// The expression grammar from the dragon book, after removal of left recursion.
//
//  E  -> T E'
//  E' -> + T E' | ε
//  T  -> F T'
//  T' -> * F T' | ε
//  F  -> ( E ) | id
func TestExpressionGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "firstfollow.ll")
	defer teardown()
	//
	g := mustGrammar(t, "E", map[string][][]string{
		"E":  {{"T", "E'"}},
		"E'": {{"+", "T", "E'"}, {"ε"}},
		"T":  {{"F", "T'"}},
		"T'": {{"*", "F", "T'"}, {"ε"}},
		"F":  {{"(", "E", ")"}, {"id"}},
	})
	ga := Analyze(g)
	expect(t, "FIRST(E)", ga.First(NonTerminal("E")), "(", "id")
	expect(t, "FIRST(E')", ga.First(NonTerminal("E'")), "+", "ε")
	expect(t, "FIRST(T')", ga.First(NonTerminal("T'")), "*", "ε")
	expect(t, "FOLLOW(E)", ga.Follow(NonTerminal("E")), "$", ")")
	expect(t, "FOLLOW(E')", ga.Follow(NonTerminal("E'")), "$", ")")
	expect(t, "FOLLOW(T)", ga.Follow(NonTerminal("T")), "$", ")", "+")
	expect(t, "FOLLOW(T')", ga.Follow(NonTerminal("T'")), "$", ")", "+")
	expect(t, "FOLLOW(F)", ga.Follow(NonTerminal("F")), "$", ")", "*", "+")
}

func TestDerivesEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "firstfollow.ll")
	defer teardown()
	//
	// A and B vanish only together, C needs a terminal, D loops
	g := mustGrammar(t, "S", map[string][][]string{
		"S": {{"A", "B", "C"}},
		"A": {{"a"}, {"B", "B"}},
		"B": {{"ε"}, {"b", "B"}},
		"C": {{"A", "c"}},
		"D": {{"D"}, {"A", "D"}},
	})
	ga := Analyze(g)
	nullable := map[string]bool{"S": false, "A": true, "B": true, "C": false, "D": false}
	for name, want := range nullable {
		if got := ga.DerivesEpsilon(NonTerminal(name)); got != want {
			t.Errorf("expected %s to derive ε = %v, is %v", name, want, got)
		}
	}
}

func TestEndOfInputOnlyFromStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "firstfollow.ll")
	defer teardown()
	//
	// X is unreachable from S and never followed by anything
	g := mustGrammar(t, "S", map[string][][]string{
		"S": {{"a", "A"}},
		"A": {{"b"}},
		"X": {{"A", "x"}},
	})
	ga := Analyze(g)
	expect(t, "FOLLOW(S)", ga.Follow(NonTerminal("S")), "$")
	expect(t, "FOLLOW(A)", ga.Follow(NonTerminal("A")), "$", "x")
	expect(t, "FOLLOW(X)", ga.Follow(NonTerminal("X")))
	for _, N := range g.NonTerminals() {
		if ga.Follow(N).Contains(Epsilon) {
			t.Errorf("FOLLOW(%s) contains epsilon", N)
		}
	}
}

func TestIdempotence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "firstfollow.ll")
	defer teardown()
	//
	g := mustGrammar(t, "S", map[string][][]string{
		"S": {{"A", "B"}, {"S", "s"}},
		"A": {{"a"}, {"ε"}},
		"B": {{"b"}, {"A"}},
	})
	ga := NewAnalysis(g)
	follow1 := ga.ComputeFollow() // computes FIRST implicitly
	first1 := ga.ComputeFirst()
	first2 := ga.ComputeFirst()
	follow2 := ga.ComputeFollow()
	for _, N := range g.NonTerminals() {
		if !first1[N].Equals(first2[N]) {
			t.Errorf("FIRST(%s) differs: %v vs %v", N, first1[N], first2[N])
		}
		if !follow1[N].Equals(follow2[N]) {
			t.Errorf("FOLLOW(%s) differs: %v vs %v", N, follow1[N], follow2[N])
		}
	}
	if p1, p2 := ga.Passes(); p1 == 0 || p2 == 0 {
		t.Errorf("expected pass counts to be recorded, are %d/%d", p1, p2)
	}
}

func TestMonotonePasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "firstfollow.ll")
	defer teardown()
	//
	g := mustGrammar(t, "E", map[string][][]string{
		"E":  {{"T", "E'"}},
		"E'": {{"+", "T", "E'"}, {"ε"}},
		"T":  {{"F", "T'"}},
		"T'": {{"*", "F", "T'"}, {"ε"}},
		"F":  {{"(", "E", ")"}, {"id"}},
	})
	first := FirstSets{}
	follow := FollowSets{}
	for _, N := range g.NonTerminals() {
		first[N] = newSymbolSet()
		follow[N] = newSymbolSet()
	}
	follow[g.Start()].add(EndOfInput)
	subset := func(prev, cur map[Symbol]*SymbolSet) {
		for N, S := range prev {
			for _, A := range S.Values() {
				if !cur[N].Contains(A) {
					t.Errorf("set of %s lost element %s", N, A)
				}
			}
		}
	}
	snapshot := func(m map[Symbol]*SymbolSet) map[Symbol]*SymbolSet {
		c := make(map[Symbol]*SymbolSet, len(m))
		for N, S := range m {
			c[N] = S.Copy()
		}
		return c
	}
	for changed := true; changed; {
		prev := snapshot(first)
		changed = firstPass(g, first)
		subset(prev, first)
	}
	for changed := true; changed; {
		prev := snapshot(follow)
		changed = followPass(g, first, follow)
		subset(prev, follow)
	}
	expect(t, "FOLLOW(F)", follow[NonTerminal("F")], "$", ")", "*", "+")
}

func TestFirstOfSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "firstfollow.ll")
	defer teardown()
	//
	g := mustGrammar(t, "S", map[string][][]string{
		"S": {{"A", "B"}},
		"A": {{"a"}, {"ε"}},
		"B": {{"b"}},
	})
	ga := NewAnalysis(g)
	expect(t, "FIRST()", ga.FirstOfSequence(nil), "ε")
	expect(t, "FIRST(A)", ga.FirstOfSequence([]Symbol{NonTerminal("A")}), "a", "ε")
	expect(t, "FIRST(A A)", ga.FirstOfSequence([]Symbol{NonTerminal("A"), NonTerminal("A")}), "a", "ε")
	expect(t, "FIRST(A B)", ga.FirstOfSequence([]Symbol{NonTerminal("A"), NonTerminal("B")}), "a", "b")
	expect(t, "FIRST(b A)", ga.FirstOfSequence([]Symbol{Terminal("b"), NonTerminal("A")}), "b")
}

func TestInvalidStartSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "firstfollow.ll")
	defer teardown()
	//
	_, err := NewGrammar("G", "X", map[string][][]string{
		"S": {{"a"}},
	})
	if !errors.Is(err, ErrInvalidGrammar) {
		t.Errorf("expected ErrInvalidGrammar for unknown start symbol, got %v", err)
	}
	_, err = NewGrammar("G", "S", map[string][][]string{})
	if !errors.Is(err, ErrInvalidGrammar) {
		t.Errorf("expected ErrInvalidGrammar for empty grammar, got %v", err)
	}
}

func TestParallelAnalyses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "firstfollow.ll")
	defer teardown()
	//
	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			g, err := NewGrammar("G", "E", map[string][][]string{
				"E": {{"E", "+", "T"}, {"T"}},
				"T": {{"id"}},
			})
			if err != nil {
				return
			}
			results[i] = NewAnalysis(g).Follow(NonTerminal("T")).String()
		}(i)
	}
	wg.Wait()
	for i, r := range results {
		if r != "[$, +]" {
			t.Errorf("analysis #%d: expected FOLLOW(T) = [$, +], is %s", i, r)
		}
	}
}
