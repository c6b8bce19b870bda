/*
Package gramtext reads grammars from a line-oriented text format.

The first line which is neither blank nor a comment names the start symbol.
Every following line holds the alternatives for a non-terminal:

    # expression grammar
    E
    E  -> T E'
    E' -> + T E' | ε
    T  -> F T'
    T' -> * F T' | ε
    F  -> ( E ) | id

Symbols are separated by whitespace, alternatives by '|'. The literal ε denotes
an empty alternative. Lines starting with '#' and blank lines are ignored.
Several lines for the same non-terminal add up.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gramtext

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/npillmayer/firstfollow/ll"
	"github.com/npillmayer/firstfollow/ll/scanner"
	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
)

// tracer traces with key 'firstfollow.gramtext'.
func tracer() tracing.Trace {
	return tracing.Select("firstfollow.gramtext")
}

var (
	// ErrEmptyInput is returned for grammar sources without a start symbol line.
	ErrEmptyInput = errors.New("grammar input is empty")
	// ErrMalformedLine is returned for a rule line which cannot be read.
	ErrMalformedLine = errors.New("malformed grammar line")
)

// Arrow separates the LHS of a rule line from its alternatives.
const Arrow = "->"

// Token types of rule lines.
const (
	tokSymbol = iota + 1
	tokBar
)

var tokenIds = map[string]int{
	"SYMBOL": tokSymbol,
	"|":      tokBar,
}

var (
	lexerOnce sync.Once
	lexer     *scanner.LMAdapter
	lexerErr  error
)

// ruleLexer lazily compiles the DFA for rule lines, once.
func ruleLexer() (*scanner.LMAdapter, error) {
	lexerOnce.Do(func() {
		init := func(lx *lexmachine.Lexer) {
			lx.Add([]byte(`[^ \t\r\n|]+`), scanner.MakeToken("SYMBOL", tokenIds["SYMBOL"]))
			lx.Add([]byte(`( |\t|\r|\n)+`), scanner.Skip)
		}
		lexer, lexerErr = scanner.NewLMAdapter(init, []string{"|"}, tokenIds)
	})
	return lexer, lexerErr
}

// ReadFile reads a grammar from a file. The grammar is named after the file.
func ReadFile(filename string) (*ll.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return Read(name, f)
}

// Read reads a grammar in text format from r.
func Read(name string, r io.Reader) (*ll.Grammar, error) {
	start, rules, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return NewGrammar(name, start, rules)
}

// NewGrammar creates a grammar from rules as returned by Parse or ParseRule.
// Symbols are classified by their rule heads: every name heading a rule
// is a non-terminal. Non-terminals keep the order of their first rule line.
func NewGrammar(name string, start string, rules []Rule) (*ll.Grammar, error) {
	heads := make(map[string]bool)
	for _, rule := range rules {
		heads[rule.LHS] = true
	}
	b := ll.NewGrammarBuilder(name)
	for _, rule := range rules {
		rb := b.LHS(rule.LHS)
		if len(rule.RHS) == 1 && rule.RHS[0] == ll.EpsilonToken {
			rb.Epsilon()
			continue
		}
		for _, sym := range rule.RHS {
			if heads[sym] {
				rb.N(sym)
			} else {
				rb.T(sym)
			}
		}
		rb.End()
	}
	return b.GrammarWithStart(start)
}

// Rule is a single alternative of a rule line, as read from the input.
type Rule struct {
	Line int
	LHS  string
	RHS  []string // symbol names, or ε alone for an empty alternative
}

// Parse reads the start symbol and the rules of a grammar from r, without
// classifying symbols.
func Parse(r io.Reader) (string, []Rule, error) {
	lx, err := ruleLexer()
	if err != nil {
		return "", nil, err
	}
	var start string
	var rules []Rule
	lineno := 0
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		lineno++
		line := strings.TrimSpace(scan.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if start == "" {
			if strings.Contains(line, Arrow) || len(strings.Fields(line)) != 1 {
				return "", nil, fmt.Errorf("%w: line %d: expected start symbol, have %q",
					ErrMalformedLine, lineno, line)
			}
			start = line
			tracer().Debugf("start symbol is %s", start)
			continue
		}
		alts, err := parseLine(lx, lineno, line)
		if err != nil {
			tracer().Errorf(err.Error())
			return "", nil, err
		}
		rules = append(rules, alts...)
	}
	if err := scan.Err(); err != nil {
		return "", nil, err
	}
	if start == "" {
		return "", nil, ErrEmptyInput
	}
	return start, rules, nil
}

// ParseRule reads a single rule line "LHS -> a b | c" and returns one
// rule per alternative.
func ParseRule(line string) ([]Rule, error) {
	lx, err := ruleLexer()
	if err != nil {
		return nil, err
	}
	return parseLine(lx, 0, strings.TrimSpace(line))
}

// parseLine splits a line "LHS -> a b | c" into its alternatives.
func parseLine(lx *scanner.LMAdapter, lineno int, line string) ([]Rule, error) {
	left, right, found := cut(line, Arrow)
	if !found {
		return nil, fmt.Errorf("%w: line %d: missing '%s': %q", ErrMalformedLine, lineno, Arrow, line)
	}
	lhs, err := tokenize(lx, left)
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedLine, lineno, err)
	}
	if len(lhs) != 1 || len(lhs[0]) != 1 || lhs[0][0] == ll.EpsilonToken {
		return nil, fmt.Errorf("%w: line %d: LHS must be a single symbol, have %q",
			ErrMalformedLine, lineno, strings.TrimSpace(left))
	}
	alts, err := tokenize(lx, right)
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedLine, lineno, err)
	}
	rules := make([]Rule, 0, len(alts))
	for i, alt := range alts {
		if len(alt) == 0 {
			return nil, fmt.Errorf("%w: line %d: alternative #%d is empty, use %s",
				ErrMalformedLine, lineno, i+1, ll.EpsilonToken)
		}
		rules = append(rules, Rule{Line: lineno, LHS: lhs[0][0], RHS: alt})
	}
	return rules, nil
}

// tokenize splits input into alternatives of symbol names.
func tokenize(lx *scanner.LMAdapter, input string) ([][]string, error) {
	sc, err := lx.Scanner(input)
	if err != nil {
		return nil, err
	}
	var scanErr error
	sc.SetErrorHandler(func(e error) {
		if scanErr == nil {
			scanErr = e
		}
	})
	alts := [][]string{nil}
	for token := sc.NextToken(); token.TokType() != scanner.EOF; token = sc.NextToken() {
		switch token.TokType() {
		case tokBar:
			alts = append(alts, nil)
		case tokSymbol:
			alts[len(alts)-1] = append(alts[len(alts)-1], token.Lexeme())
		}
	}
	return alts, scanErr
}

// cut slices s around the first instance of sep.
func cut(s, sep string) (before, after string, found bool) {
	if i := strings.Index(s, sep); i >= 0 {
		return s[:i], s[i+len(sep):], true
	}
	return s, "", false
}

// Format renders a grammar in text format. Reading the output with Read
// reproduces the grammar.
func Format(g *ll.Grammar) string {
	var b bytes.Buffer
	b.WriteString(g.Start().Name)
	b.WriteString("\n")
	g.EachNonTerminal(func(N ll.Symbol) interface{} {
		rules := g.Rules(N)
		if len(rules) == 0 {
			return nil
		}
		b.WriteString(N.Name)
		b.WriteString(" ")
		b.WriteString(Arrow)
		for i, r := range rules {
			if i > 0 {
				b.WriteString(" |")
			}
			if r.IsEpsilon() {
				b.WriteString(" ")
				b.WriteString(ll.EpsilonToken)
			}
			for _, A := range r.RHS() {
				b.WriteString(" ")
				b.WriteString(A.Name)
			}
		}
		b.WriteString("\n")
		return nil
	})
	return b.String()
}
