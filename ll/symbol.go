package ll

import "fmt"

// SymbolKind tags the variant of a grammar symbol.
type SymbolKind int8

// Kinds of grammar symbols.
const (
	TerminalKind SymbolKind = iota
	NonTerminalKind
	EpsilonKind    // the empty string
	EndOfInputKind // end of the token stream, only found in FOLLOW sets
)

func (k SymbolKind) String() string {
	switch k {
	case TerminalKind:
		return "terminal"
	case NonTerminalKind:
		return "non-terminal"
	case EpsilonKind:
		return "epsilon"
	case EndOfInputKind:
		return "end-of-input"
	}
	return fmt.Sprintf("SymbolKind(%d)", int(k))
}

// EpsilonToken is the reserved name denoting the empty string in rule input.
const EpsilonToken = "ε"

// EndOfInputToken is the display name of the end-of-input marker.
const EndOfInputToken = "$"

// Symbol is a grammar symbol. Symbols are small values and may be used as map keys.
// Epsilon and EndOfInput are the only symbols of their kind.
type Symbol struct {
	Kind SymbolKind
	Name string
}

var (
	// Epsilon is the marker for the empty string.
	Epsilon = Symbol{Kind: EpsilonKind, Name: EpsilonToken}
	// EndOfInput is the end-of-input marker '$'.
	EndOfInput = Symbol{Kind: EndOfInputKind, Name: EndOfInputToken}
)

// Terminal creates a terminal symbol.
func Terminal(name string) Symbol {
	return Symbol{Kind: TerminalKind, Name: name}
}

// NonTerminal creates a non-terminal symbol.
func NonTerminal(name string) Symbol {
	return Symbol{Kind: NonTerminalKind, Name: name}
}

// IsTerminal is true for terminal symbols.
func (A Symbol) IsTerminal() bool {
	return A.Kind == TerminalKind
}

// IsNonTerminal is true for non-terminal symbols.
func (A Symbol) IsNonTerminal() bool {
	return A.Kind == NonTerminalKind
}

// IsEpsilon is true for the epsilon marker.
func (A Symbol) IsEpsilon() bool {
	return A.Kind == EpsilonKind
}

// IsEndOfInput is true for the end-of-input marker.
func (A Symbol) IsEndOfInput() bool {
	return A.Kind == EndOfInputKind
}

func (A Symbol) String() string {
	return A.Name
}
