package firstfollow

import "fmt"

// --- Tokens of grammar sources ---------------------------------------------

// TokType is a category type for a Token. Scanners define their own constants.
type TokType int

// Token is an input token as produced by a scanner. Tokens reflect the
// lexical elements of a grammar source, i.e. symbol names and separators.
//
// An example would be a token for a grammar symbol:
//
//    TokType = Symbol      // identifier for this kind of tokens (scanner specific)
//    Lexeme  = "Expr"      // lexeme how it appeared in the input line
//    Span    = 5…9         // occured from column 5 on
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span captures a run of input positions: a start position and the position
// just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
