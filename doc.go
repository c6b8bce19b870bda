/*
Package firstfollow computes FIRST and FOLLOW sets of context-free grammars.

FIRST and FOLLOW sets are the foundation of predictive (LL) parsing: they tell a
top-down parser which terminals may start a phrase of a non-terminal and which
terminals may appear right behind it. Package structure is as follows:

■ ll: Package ll holds the grammar model and the fixed-point analysis producing
FIRST and FOLLOW sets.

■ ll/gramtext: Package gramtext reads grammars from a small line-oriented text format.

■ ll/report: Package report renders analysis results as text.

■ ll/scanner: Package scanner defines the tokenizer interface used by grammar readers,
together with an adapter for lexmachine.

■ cmd/firstfollow: A command-line driver, with a batch and an interactive mode.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package firstfollow
