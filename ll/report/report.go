/*
Package report renders the results of a grammar analysis as text.

Reports list FIRST sets, a blank line, then FOLLOW sets, one line per
non-terminal:

    FIRST(A) = [a, ε]
    FIRST(B) = [b]
    FIRST(S) = [a, b]

    FOLLOW(A) = [b]
    FOLLOW(B) = [$]
    FOLLOW(S) = [$]

Non-terminals are sorted by name, elements of sets in the order of ll.SymbolSet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package report

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/npillmayer/firstfollow/ll"
)

// Write writes a report of FIRST and FOLLOW sets to w.
func Write(w io.Writer, first ll.FirstSets, follow ll.FollowSets) error {
	for _, N := range sortedKeys(first) {
		if _, err := fmt.Fprintf(w, "FIRST(%s) = %s\n", N.Name, first[N]); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	for _, N := range sortedKeys(follow) {
		if _, err := fmt.Fprintf(w, "FOLLOW(%s) = %s\n", N.Name, follow[N]); err != nil {
			return err
		}
	}
	return nil
}

// String returns a report of FIRST and FOLLOW sets as a string.
func String(first ll.FirstSets, follow ll.FollowSets) string {
	var b bytes.Buffer
	Write(&b, first, follow) // writing to a buffer does not fail
	return b.String()
}

// Table returns the results of an analysis as rows of a table, with a header row
// first. Rows hold a non-terminal, its FIRST and FOLLOW sets, and whether it
// derives the empty string.
func Table(ga *ll.Analysis) [][]string {
	rows := [][]string{{"Non-terminal", "FIRST", "FOLLOW", "Nullable"}}
	first := ga.ComputeFirst()
	follow := ga.ComputeFollow()
	for _, N := range sortedKeys(first) {
		nullable := "no"
		if ga.DerivesEpsilon(N) {
			nullable = "yes"
		}
		rows = append(rows, []string{
			N.Name,
			strings.Join(first[N].Names(), " "),
			strings.Join(follow[N].Names(), " "),
			nullable,
		})
	}
	return rows
}

func sortedKeys(sets map[ll.Symbol]*ll.SymbolSet) []ll.Symbol {
	keys := make([]ll.Symbol, 0, len(sets))
	for N := range sets {
		keys = append(keys, N)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Name < keys[j].Name })
	return keys
}
