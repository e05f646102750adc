// Package replcore is a minimal read-eval-print shell over the
// constraint solver's canned scenarios, adapted from the teacher's
// liner+color REPL loop: a line-edited prompt, a small set of
// colon-commands, and per-line dispatch to a handler.
package replcore

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	discoerrors "github.com/discolang/disco/internal/errors"
	"github.com/discolang/disco/internal/types"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
)

// Scenario is one named constraint the shell can solve.
type Scenario struct {
	Name       string
	Desc       string
	Constraint types.Constraint
}

// Shell is the REPL state: the available scenarios, the synonym table
// solves run against, and the session's command history.
type Shell struct {
	scenarios []Scenario
	synonyms  types.TypeSynonyms
	history   []string
}

// New builds a shell over the given scenarios and synonym table.
func New(scenarios []Scenario, synonyms types.TypeSynonyms) *Shell {
	if synonyms == nil {
		synonyms = types.TypeSynonyms{}
	}
	return &Shell{scenarios: scenarios, synonyms: synonyms}
}

func (sh *Shell) find(name string) (Scenario, bool) {
	for _, s := range sh.scenarios {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}

// Start begins the REPL session, reading lines until EOF or :quit.
func (sh *Shell) Start(out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCompleter(func(s string) (c []string) {
		if strings.HasPrefix(s, ":") {
			for _, cmd := range []string{":help", ":list", ":solve", ":quit"} {
				if strings.HasPrefix(cmd, s) {
					c = append(c, cmd)
				}
			}
		}
		return
	})

	fmt.Fprintf(out, "%s\n", bold("disco"))
	fmt.Fprintln(out, dim("Type :help for commands, :quit to exit"))

	for {
		input, err := line.Prompt("disco> ")
		if err == io.EOF {
			fmt.Fprintln(out, green("Goodbye!"))
			return
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("Error"), err)
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)
		sh.history = append(sh.history, input)

		if sh.handleCommand(input, out) {
			return
		}
	}
}

// handleCommand dispatches one line of input, returning true if the
// session should end.
func (sh *Shell) handleCommand(input string, out io.Writer) bool {
	fields := strings.Fields(input)
	switch fields[0] {
	case ":quit", ":q", ":exit":
		fmt.Fprintln(out, green("Goodbye!"))
		return true

	case ":help":
		sh.printHelp(out)

	case ":list":
		for _, s := range sh.scenarios {
			fmt.Fprintf(out, "%s  %s\n", bold(s.Name), s.Desc)
		}

	case ":solve":
		if len(fields) < 2 {
			fmt.Fprintf(out, "%s: usage :solve <scenario>\n", red("Error"))
			return false
		}
		sh.solveAndPrint(fields[1], out)

	case ":history":
		for i, h := range sh.history {
			fmt.Fprintf(out, "%3d  %s\n", i+1, h)
		}

	default:
		fmt.Fprintf(out, "%s: unknown command %q (try :help)\n", red("Error"), fields[0])
	}
	return false
}

func (sh *Shell) solveAndPrint(name string, out io.Writer) {
	s, ok := sh.find(name)
	if !ok {
		fmt.Fprintf(out, "%s: no such scenario %q\n", red("Error"), name)
		return
	}

	sub, serr := types.Solve(sh.synonyms, s.Constraint)
	if serr != nil {
		report := discoerrors.FromSolveError(serr)
		fmt.Fprintf(out, "%s %s: %s\n", red("solve failed"), cyan(report.Code), serr.Error())
		return
	}

	fmt.Fprintln(out, green("solved:"))
	for _, v := range sub.Domain() {
		t, _ := sub.Lookup(v)
		fmt.Fprintf(out, "  %s %s %s\n", yellow(v), bold("↦"), t)
	}
}

func (sh *Shell) printHelp(out io.Writer) {
	fmt.Fprintln(out, ":list            list available scenarios")
	fmt.Fprintln(out, ":solve <name>    run the solver over a scenario")
	fmt.Fprintln(out, ":history         show command history")
	fmt.Fprintln(out, ":quit            exit")
}
