package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/cnf/structhash"
	"github.com/pterm/pterm"

	"github.com/npillmayer/firstfollow/ll"
	"github.com/npillmayer/firstfollow/ll/gramtext"
	"github.com/npillmayer/firstfollow/ll/report"
)

const helpText = `Enter rules as "LHS -> a b | c | ε", or one of the commands
  :start S       set the start symbol (default: LHS of the first rule)
  :first [N]     show FIRST sets, or FIRST(N)
  :follow [N]    show FOLLOW sets, or FOLLOW(N)
  :show          show the report for the grammar
  :table         show results as a table
  :grammar       show the grammar
  :load FILE     load a grammar file, replacing the current grammar
  :reset         clear the grammar
  :quit          leave`

var errNoGrammar = errors.New("no rules entered yet")

// Intp is our interpreter object
type Intp struct {
	repl  *readline.Instance
	start string
	rules []gramtext.Rule
	cache map[string]*ll.Analysis // analyses by grammar fingerprint
}

// NewIntp creates an interpreter. repl may be nil if the interpreter is not
// used interactively.
func NewIntp(repl *readline.Instance) *Intp {
	return &Intp{
		repl:  repl,
		cache: make(map[string]*ll.Analysis),
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval evaluates a rule or a command, given on a line by itself, and prints
// the result.
func (intp *Intp) Eval(line string) (bool, error) {
	result, quit, err := intp.execute(line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false, err
	}
	if result != "" {
		pterm.Info.Println(result)
	}
	return quit, nil
}

func (intp *Intp) execute(line string) (string, bool, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", false, nil
	}
	if !strings.HasPrefix(line, ":") {
		rules, err := gramtext.ParseRule(line)
		if err != nil {
			return "", false, err
		}
		intp.rules = append(intp.rules, rules...)
		return "", false, nil
	}
	args := strings.Fields(line)
	cmd, args := args[0], args[1:]
	switch cmd {
	case ":quit", ":q":
		return "", true, nil
	case ":help":
		return helpText, false, nil
	case ":reset":
		intp.start, intp.rules = "", nil
		return "", false, nil
	case ":start":
		if len(args) != 1 {
			return "", false, fmt.Errorf("usage: :start S")
		}
		intp.start = args[0]
		return "", false, nil
	case ":load":
		if len(args) != 1 {
			return "", false, fmt.Errorf("usage: :load FILE")
		}
		return "", false, intp.load(args[0])
	}
	ga, err := intp.analysis()
	if err != nil {
		return "", false, err
	}
	switch cmd {
	case ":first":
		return setsResult("FIRST", ga, args, ga.First)
	case ":follow":
		return setsResult("FOLLOW", ga, args, ga.Follow)
	case ":show":
		return report.String(ga.ComputeFirst(), ga.ComputeFollow()), false, nil
	case ":table":
		printTable(ga)
		return "", false, nil
	case ":grammar":
		return gramtext.Format(ga.Grammar()), false, nil
	}
	return "", false, fmt.Errorf("unknown command %s, type :help for help", cmd)
}

func setsResult(label string, ga *ll.Analysis, args []string, sets func(ll.Symbol) *ll.SymbolSet) (string, bool, error) {
	g := ga.Grammar()
	names := args
	if len(names) == 0 {
		g.EachNonTerminal(func(N ll.Symbol) interface{} {
			names = append(names, N.Name)
			return nil
		})
	}
	var b bytes.Buffer
	for i, name := range names {
		N, ok := g.Symbol(name)
		if !ok || !N.IsNonTerminal() {
			return "", false, fmt.Errorf("%s is not a non-terminal", name)
		}
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s(%s) = %s", label, N.Name, sets(N))
	}
	return b.String(), false, nil
}

// load replaces the current grammar by the contents of a grammar file.
func (intp *Intp) load(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	start, rules, err := gramtext.Parse(f)
	if err != nil {
		return err
	}
	intp.start, intp.rules = start, rules
	tracer().Infof("loaded %d rules from %s", len(rules), filename)
	return nil
}

// source is the part of the interpreter state which determines a grammar.
type source struct {
	Start string
	Rules [][]string
}

// fingerprint identifies a grammar by its start symbol and rules.
func (intp *Intp) fingerprint(start string) (string, error) {
	src := source{Start: start, Rules: make([][]string, len(intp.rules))}
	for i, r := range intp.rules {
		src.Rules[i] = append([]string{r.LHS}, r.RHS...)
	}
	return structhash.Hash(src, 1)
}

// analysis returns the analysis for the current grammar. Analyses are cached,
// as long as the grammar does not change, queries do not recompute sets.
func (intp *Intp) analysis() (*ll.Analysis, error) {
	if len(intp.rules) == 0 {
		return nil, errNoGrammar
	}
	start := intp.start
	if start == "" {
		start = intp.rules[0].LHS
	}
	key, err := intp.fingerprint(start)
	if err != nil {
		return nil, err
	}
	if ga, ok := intp.cache[key]; ok {
		tracer().Debugf("using cached analysis %s", key)
		return ga, nil
	}
	g, err := gramtext.NewGrammar("repl", start, intp.rules)
	if err != nil {
		return nil, err
	}
	ga := ll.Analyze(g)
	intp.cache[key] = ga
	return ga, nil
}
