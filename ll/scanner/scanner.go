/*
Package scanner defines an interface for scanners to be used by grammar readers.

The default implementation is an adapter for lexmachine. Clients provide
the patterns for their lexical elements, the adapter compiles them into a DFA and
creates scanners for input strings.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/firstfollow"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'firstfollow.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("firstfollow.scanner")
}

// EOF is the token type signalling the end of input.
const EOF firstfollow.TokType = -1

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() firstfollow.Token
	SetErrorHandler(func(error))
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for
// the lexmachine scanner.
type DefaultToken struct {
	kind   firstfollow.TokType
	lexeme string
	span   firstfollow.Span
}

// MakeDefaultToken creates a token.
func MakeDefaultToken(typ firstfollow.TokType, lexeme string, span firstfollow.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() firstfollow.TokType {
	return t.kind
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() firstfollow.Span {
	return t.span
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}
