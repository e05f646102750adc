// Command discosolve is a small demo harness for the disco
// constraint-solving core: it runs one of a handful of canned
// scenarios (or a synonym config plus scenario name) through
// types.Solve and prints the resulting substitution or structured
// error.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	discoerrors "github.com/discolang/disco/internal/errors"
	"github.com/discolang/disco/internal/discocfg"
	"github.com/discolang/disco/internal/replcore"
	"github.com/discolang/disco/internal/types"
)

var (
	// Version info, set by ldflags during build.
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"

	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

func main() {
	var (
		versionFlag = flag.Bool("version", false, "Print version information")
		helpFlag    = flag.Bool("help", false, "Show help")
		jsonFlag    = flag.Bool("json", false, "Print the error report as JSON on failure")
		configFlag  = flag.String("config", "", "Path to a YAML file of extra type synonyms")
	)
	flag.Parse()

	if *versionFlag {
		printVersion()
		return
	}

	if *helpFlag || flag.NArg() == 0 {
		printHelp()
		return
	}

	switch command := flag.Arg(0); command {
	case "list":
		listScenarios()
	case "solve":
		if flag.NArg() < 2 {
			fmt.Fprintf(os.Stderr, "%s: missing scenario name\n", red("Error"))
			fmt.Println("Usage: discosolve solve <scenario>")
			os.Exit(1)
		}
		runScenario(flag.Arg(1), *configFlag, *jsonFlag)
	case "repl":
		runREPL(*configFlag)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", red("Error"), command)
		printHelp()
		os.Exit(1)
	}
}

func listScenarios() {
	for _, s := range scenarios() {
		fmt.Printf("%s  %s\n", bold(s.name), s.desc)
	}
}

func runScenario(name, configPath string, asJSON bool) {
	s, ok := findScenario(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "%s: no such scenario %q\n", red("Error"), name)
		os.Exit(1)
	}

	synonyms := types.TypeSynonyms{}
	if configPath != "" {
		cfg, err := discocfg.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
			os.Exit(1)
		}
		synonyms = cfg.SynonymTable()
	}

	sub, serr := types.Solve(synonyms, s.constraint)
	if serr != nil {
		report := discoerrors.FromSolveError(serr)
		if asJSON {
			out, _ := report.ToJSON(false)
			fmt.Println(out)
		} else {
			fmt.Printf("%s %s: %s\n", red("solve failed"), cyan(report.Code), serr.Error())
		}
		os.Exit(1)
	}

	fmt.Println(green("solved:"))
	for _, v := range sub.Domain() {
		t, _ := sub.Lookup(v)
		fmt.Printf("  %s %s %s\n", yellow(v), bold("↦"), t)
	}
}

func runREPL(configPath string) {
	synonyms := types.TypeSynonyms{}
	if configPath != "" {
		cfg, err := discocfg.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
			os.Exit(1)
		}
		synonyms = cfg.SynonymTable()
	}

	built := scenarios()
	rcScenarios := make([]replcore.Scenario, len(built))
	for i, s := range built {
		rcScenarios[i] = replcore.Scenario{Name: s.name, Desc: s.desc, Constraint: s.constraint}
	}

	shell := replcore.New(rcScenarios, synonyms)
	shell.Start(os.Stdout)
}

func printVersion() {
	fmt.Printf("discosolve %s (commit %s, built %s)\n", Version, Commit, BuildTime)
}

func printHelp() {
	fmt.Println(bold("discosolve") + " — run a constraint through the disco solver")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  discosolve list")
	fmt.Println("  discosolve [-config synonyms.yml] [-json] solve <scenario>")
	fmt.Println("  discosolve [-config synonyms.yml] repl")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
}
