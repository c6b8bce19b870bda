/*
Package ll implements prerequisites for LL parsing: a grammar model and the
static analysis computing FIRST and FOLLOW sets.

Building a Grammar

Grammars are either created from an in-memory mapping of rules, or
specified using a grammar builder object. Clients add rules, consisting of
non-terminal symbols and terminals. Grammars may contain epsilon-productions.

Example:

    b := ll.NewGrammarBuilder("G")
    b.LHS("S").N("A").N("B").End()   // S  ->  A B
    b.LHS("A").T("a").End()          // A  ->  a
    b.LHS("A").Epsilon()             // A  ->  ε
    b.LHS("B").T("b").End()          // B  ->  b
    g, err := b.Grammar()

The same grammar from a mapping, where "ε" denotes the empty string:

    g, err := ll.NewGrammar("G", "S", map[string][][]string{
        "S": {{"A", "B"}},
        "A": {{"a"}, {"ε"}},
        "B": {{"b"}},
    })

A symbol is a non-terminal if and only if it heads at least one rule. Every other
symbol of a right-hand side is a terminal.

Static Grammar Analysis

After the grammar is complete, it is subjected to an Analysis object, which
computes FIRST and FOLLOW sets for the grammar and determines all epsilon-derivable
non-terminals. Both computations iterate until a fixed point is reached, i.e. until
a full pass over all rules does not change any set.

    ga := ll.Analyze(g)
    g.EachNonTerminal(func(N ll.Symbol) interface{} {
        fmt.Printf("FIRST(%s) = %v\n", N, ga.First(N))
        return nil
    })

    // Output:
    FIRST(S) = [a, b]
    FIRST(A) = [a, ε]
    FIRST(B) = [b]

An Analysis is not safe for concurrent use, but independent grammars may be
analysed in parallel without any synchronization.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'firstfollow.ll'.
func tracer() tracing.Trace {
	return tracing.Select("firstfollow.ll")
}
