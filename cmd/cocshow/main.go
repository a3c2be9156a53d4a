// Command cocshow is a demonstrator CLI over the term catalog: it never
// parses concrete syntax, it only lists, prints, type-checks, and
// normalizes the pre-built term.Expr values in internal/library's
// catalog.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/purelang/coc/internal/config"
	"github.com/purelang/coc/internal/errors"
	"github.com/purelang/coc/internal/library"
	"github.com/purelang/coc/internal/printer"
	"github.com/purelang/coc/internal/reduce"
	"github.com/purelang/coc/internal/term"
	"github.com/purelang/coc/internal/trace"
	"github.com/purelang/coc/internal/typecheck"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
)

func main() {
	var (
		catalogFlag = flag.String("catalog", "", "path to a YAML catalog file (defaults to the built-in catalog)")
		configFlag  = flag.String("config", "", "path to a coc.yaml config file")
		jsonFlag    = flag.Bool("json", false, "print structured errors as JSON")
		traceFlag   = flag.Bool("trace", false, "print the beta/eta/axiom/rule steps taken")
		helpFlag    = flag.Bool("help", false, "show help")
	)
	flag.Parse()

	if *helpFlag || flag.NArg() == 0 {
		printHelp()
		return
	}

	opts, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		os.Exit(1)
	}
	if !opts.ColorOutput {
		color.NoColor = true
	}

	entries, err := loadCatalog(*catalogFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		os.Exit(1)
	}

	switch flag.Arg(0) {
	case "list":
		cmdList(entries)
	case "show":
		requireName(flag.Args())
		cmdShow(entries, flag.Arg(1))
	case "typecheck":
		requireName(flag.Args())
		cmdTypecheck(entries, flag.Arg(1), *jsonFlag, *traceFlag, opts.MaxTermSize)
	case "normalize":
		requireName(flag.Args())
		cmdNormalize(entries, flag.Arg(1), *traceFlag, opts.MaxTermSize)
	case "repl":
		runREPL(entries, os.Stdin, os.Stdout, opts.MaxTermSize)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", red("Error"), flag.Arg(0))
		printHelp()
		os.Exit(1)
	}
}

func requireName(args []string) {
	if len(args) < 2 {
		fmt.Fprintf(os.Stderr, "%s: missing <name> argument\n", red("Error"))
		os.Exit(1)
	}
}

func loadCatalog(path string) ([]library.Entry, error) {
	if path == "" {
		return library.Default(), nil
	}
	return library.LoadFile(path)
}

func lookup(entries []library.Entry, name string) library.Entry {
	entry, ok := library.Find(entries, name)
	if !ok {
		fmt.Fprintf(os.Stderr, "%s: no catalog entry named %q\n", red("Error"), name)
		os.Exit(1)
	}
	return entry
}

// termSize counts the nodes in e, the unit internal/config's
// MaxTermSize is measured in.
func termSize(e term.Expr) int {
	switch x := e.(type) {
	case term.ConstExpr, term.VarExpr:
		return 1
	case term.Lam:
		return 1 + termSize(x.Domain) + termSize(x.Body)
	case term.Pi:
		return 1 + termSize(x.Domain) + termSize(x.Codomain)
	case term.App:
		return 1 + termSize(x.Fun) + termSize(x.Arg)
	default:
		panic("cocshow: unknown Expr shape")
	}
}

// checkSize refuses to hand an oversized term to the reducer or checker
// rather than let a command run unbounded work, per internal/config's
// MaxTermSize knob.
func checkSize(name string, e term.Expr, max int) bool {
	if n := termSize(e); n > max {
		fmt.Fprintf(os.Stderr, "%s: %q has %d nodes, over the configured limit of %d\n", red("Error"), name, n, max)
		return false
	}
	return true
}

func printTrace(w io.Writer, tr *trace.Tracer) {
	entries := tr.Entries()
	if len(entries) == 0 {
		return
	}
	fmt.Fprintln(w, dim("trace:"))
	for _, e := range entries {
		fmt.Fprintf(w, "  %s %s\n", yellow(e.Kind), printer.Print(e.Expr))
	}
}

func cmdList(entries []library.Entry) {
	names := make([]string, 0, len(entries))
	byName := make(map[string]library.Entry, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
		byName[e.Name] = e
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%-20s %s\n", cyan(name), dim(byName[name].Description))
	}
}

func cmdShow(entries []library.Entry, name string) {
	entry := lookup(entries, name)
	fmt.Println(printer.PrintColor(entry.Term))
}

func cmdTypecheck(entries []library.Entry, name string, asJSON, traced bool, maxSize int) {
	entry := lookup(entries, name)
	if !checkSize(name, entry.Term, maxSize) {
		os.Exit(1)
	}

	var tr *trace.Tracer
	if traced {
		tr = trace.New()
	}
	typ, err := typecheck.TypeOfTraced(entry.Term, tr)
	if traced {
		printTrace(os.Stdout, tr)
	}
	if err != nil {
		report := errors.FromTypeError(err)
		if asJSON {
			out, jerr := report.ToJSON(false)
			if jerr != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), jerr)
				os.Exit(1)
			}
			fmt.Println(out)
		} else {
			fmt.Fprintf(os.Stderr, "%s [%s]: %s\n", red("TypeError"), report.Code, report.Message)
		}
		os.Exit(1)
	}
	fmt.Printf("%s %s\n", bold(name), dim(":"))
	fmt.Println(printer.PrintColor(typ))
}

func cmdNormalize(entries []library.Entry, name string, traced bool, maxSize int) {
	entry := lookup(entries, name)
	if !checkSize(name, entry.Term, maxSize) {
		os.Exit(1)
	}

	fmt.Printf("%s\n%s\n", dim("before:"), printer.PrintColor(entry.Term))

	var tr *trace.Tracer
	if traced {
		tr = trace.New()
	}
	after := reduce.NormalizeTraced(entry.Term, tr)
	if traced {
		printTrace(os.Stdout, tr)
	}
	fmt.Printf("%s\n%s\n", dim("after: "), printer.PrintColor(after))
}

func runREPL(entries []library.Entry, in io.Reader, out io.Writer, maxSize int) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetMultiLineMode(false)

	historyFile := filepath.Join(os.TempDir(), ".cocshow_history")
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	line.SetCompleter(func(prefix string) (c []string) {
		for _, n := range names {
			if len(n) >= len(prefix) && n[:len(prefix)] == prefix {
				c = append(c, n)
			}
		}
		return
	})

	fmt.Fprintf(out, "%s\n", bold("cocshow repl"))
	fmt.Fprintln(out, dim("enter a catalog name to show, type, and normalize it. :list shows names. :quit exits."))

	for {
		input, err := line.Prompt("coc> ")
		if err == io.EOF {
			fmt.Fprintln(out, green("goodbye"))
			return
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("Error"), err)
			continue
		}
		line.AppendHistory(input)

		switch input {
		case "":
			continue
		case ":quit", ":q":
			return
		case ":list":
			cmdList(entries)
			continue
		}

		entry, ok := library.Find(entries, input)
		if !ok {
			fmt.Fprintf(out, "%s: no catalog entry named %q\n", red("Error"), input)
			continue
		}
		if n := termSize(entry.Term); n > maxSize {
			fmt.Fprintf(out, "%s: %q has %d nodes, over the configured limit of %d\n", red("Error"), input, n, maxSize)
			continue
		}
		fmt.Fprintln(out, printer.PrintColor(entry.Term))
		if typ, terr := typecheck.TypeOf(entry.Term); terr != nil {
			report := errors.FromTypeError(terr)
			fmt.Fprintf(out, "%s [%s]: %s\n", red("TypeError"), report.Code, report.Message)
		} else {
			fmt.Fprintf(out, "%s %s\n", yellow(":"), printer.PrintColor(typ))
			fmt.Fprintf(out, "%s %s\n", yellow("⇝"), printer.PrintColor(reduce.Normalize(entry.Term)))
		}
	}
}

func printHelp() {
	fmt.Println(bold("cocshow"))
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  cocshow <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Printf("  %s             List catalog entries\n", cyan("list"))
	fmt.Printf("  %s <name>      Pretty-print a term\n", cyan("show"))
	fmt.Printf("  %s <name> Infer and print a term's type, or report the type error\n", cyan("typecheck"))
	fmt.Printf("  %s <name>  Print a term before and after normalization\n", cyan("normalize"))
	fmt.Printf("  %s             Start an interactive loop over the catalog\n", cyan("repl"))
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  --catalog <path>  Load a YAML catalog file instead of the built-in one")
	fmt.Println("  --config <path>   Load a coc.yaml config file")
	fmt.Println("  --json            Print typecheck errors as JSON reports")
	fmt.Println("  --trace           Print the beta/eta/axiom/rule steps taken")
}
