// Command lunalex tokenizes Luna source files and prints the resulting
// token stream. Flag parsing follows the same pborman/getopt style as
// openconfig-goyang's yang.go.
//
// The default output is one line per token (span, offset, kind/text).
// --debug pretty-prints the full token slice with godebug/pretty instead,
// and raises internal/log to TRACE. --repr dumps with alecthomas/repr.
//
// Usage: lunalex [--debug] [--repr] [--continuation] [--config PATH] FILE
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/kylelemons/godebug/pretty"
	"github.com/pborman/getopt/v2"

	"github.com/lunalang/luna"
	"github.com/lunalang/luna/internal/log"
)

func main() {
	var (
		debug        bool
		useRepr      bool
		continuation bool
		configPath   string
		help         bool
	)
	getopt.BoolVarLong(&debug, "debug", 0, "pretty-print tokens and raise scanner logging to TRACE")
	getopt.BoolVarLong(&useRepr, "repr", 0, "print tokens with alecthomas/repr instead of one line per token")
	getopt.BoolVarLong(&continuation, "continuation", 0, "print the entry-stack observed after every token")
	getopt.StringVarLong(&configPath, "config", 'c', "path to a lexical-constant override file", "PATH")
	getopt.BoolVarLong(&help, "help", '?', "display help")
	getopt.SetParameters("FILE")
	getopt.Parse()

	args := getopt.Args()
	if help || len(args) != 1 {
		getopt.PrintUsage(os.Stderr)
		os.Exit(2)
	}
	path := args[0]

	if debug {
		log.SetLevel("TRACE")
	}
	mode := modeDefault
	switch {
	case useRepr:
		mode = modeRepr
	case debug:
		mode = modeDebug
	}

	var cfg *luna.Config
	if configPath != "" {
		loaded, err := luna.LoadConfig(configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}

	stack := luna.NewStack()
	if continuation {
		printContinuation(cfg, stack, path, mode)
		return
	}

	toks, err := luna.TryTokenizeFileWith(cfg, stack, path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	printTokens(toks, mode)
}

// printMode selects one of the three output renderings; modeDefault is the
// terse one-line-per-token form, suited to piping into other tools.
type printMode int

const (
	modeDefault printMode = iota
	modeDebug
	modeRepr
)

func printContinuation(cfg *luna.Config, stack *luna.Stack, path string, mode printMode) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, ct := range luna.TokenizeContinuationWith(cfg, stack, string(data)) {
		switch mode {
		case modeRepr:
			repr.Println(ct)
		case modeDebug:
			fmt.Println(pretty.Sprint(ct))
		default:
			fmt.Printf("%s top=%s\n", tokenLine(ct.Token), ct.Stack.Top())
		}
	}
}

func printTokens(toks []luna.Token, mode printMode) {
	for _, t := range toks {
		switch mode {
		case modeRepr:
			repr.Println(t)
		case modeDebug:
			fmt.Println(pretty.Sprint(t))
		default:
			fmt.Println(tokenLine(t))
		}
	}
}

// tokenLine renders the default one-line-per-token form: span, offset, then
// the symbol's kind and text (Symbol.String already combines the two, e.g.
// Var("x") or a bare EOL for payload-less kinds).
func tokenLine(t luna.Token) string {
	return fmt.Sprintf("%d %d %s", t.Span, t.Offset, t.Element)
}
