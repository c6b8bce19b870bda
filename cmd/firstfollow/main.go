package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/firstfollow/ll"
	"github.com/npillmayer/firstfollow/ll/gramtext"
	"github.com/npillmayer/firstfollow/ll/report"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// tracer traces with key 'firstfollow.cli'.
func tracer() tracing.Trace {
	return tracing.Select("firstfollow.cli")
}

// main() reads a grammar from a text file, computes FIRST and FOLLOW sets and
// writes a report, either to stdout or to an output file.
//
// With flag -i, main() starts an interactive CLI instead, where users may enter
// grammar rules line by line and query FIRST and FOLLOW sets.
//
func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	gfile := flag.String("grammar", "grammar.txt", "Grammar input file")
	ofile := flag.String("out", "", "Output file for results (default stdout)")
	table := flag.Bool("table", false, "Print results as a table")
	interactive := flag.Bool("i", false, "Interactive mode")
	flag.Parse()
	setTraceLevel(tracing.TraceLevelFromString(*tlevel))
	//
	if *interactive {
		repl, err := readline.New("ff> ")
		if err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(3)
		}
		defer repl.Close()
		intp := NewIntp(repl)
		if isSet("grammar") {
			if err := intp.load(*gfile); err != nil {
				pterm.Error.Println(err.Error())
			}
		}
		pterm.Info.Println("Welcome to the FIRST/FOLLOW shell, type :help for help")
		tracer().Infof("Quit with <ctrl>D")
		intp.REPL()
		return
	}
	if err := process(*gfile, *ofile, *table); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

// process reads a grammar, analyses it and writes the results.
func process(gfile, ofile string, asTable bool) error {
	g, err := gramtext.ReadFile(gfile)
	if err != nil {
		return fmt.Errorf("cannot read grammar: %w", err)
	}
	tracer().Infof("grammar %q has %d rules", g.Name, g.Size())
	ga := ll.Analyze(g)
	if asTable && ofile == "" {
		printTable(ga)
		return nil
	}
	out := os.Stdout
	if ofile != "" {
		f, err := os.Create(ofile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if err := report.Write(out, ga.ComputeFirst(), ga.ComputeFollow()); err != nil {
		return err
	}
	if ofile != "" {
		pterm.Success.Printf("Analysis complete, results written to %s\n", ofile)
	}
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func printTable(ga *ll.Analysis) {
	pterm.DefaultTable.WithHasHeader().WithData(report.Table(ga)).Render()
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range []string{"firstfollow.cli", "firstfollow.ll", "firstfollow.gramtext", "firstfollow.scanner"} {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func isSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
