package types

import (
	"fmt"
	"strconv"
	"strings"
)

// freshCounter generates deterministic fresh unification-variable
// names within a single solve. Per spec.md §5, the starting index is
// derived from the input (max free-variable index + 1) so a "fresh"
// name never collides with a name already present in the constraint —
// this also makes tests reproducible, since the same input always
// yields the same fresh names.
type freshCounter struct {
	next  int
	seen  map[string]bool
}

// newFreshCounter seeds the counter from every free variable name
// appearing in simples and every key of sorts.
func newFreshCounter(simples []SimpleConstraint, sorts SortMap) *freshCounter {
	max := 0
	seen := make(map[string]bool)
	note := func(t Type) {
		for name := range FreeVars(t) {
			seen[name] = true
			if idx, ok := parseFreshIndex(name); ok && idx >= max {
				max = idx + 1
			}
		}
	}
	for _, c := range simples {
		note(c.T1)
		note(c.T2)
	}
	for v := range sorts {
		seen[v] = true
		if idx, ok := parseFreshIndex(v); ok && idx >= max {
			max = idx + 1
		}
	}
	return &freshCounter{next: max, seen: seen}
}

// parseFreshIndex recognizes this package's own "t<N>" fresh-name
// shape so a freshCounter seeded from previously-generated names still
// advances past them.
func parseFreshIndex(name string) (int, bool) {
	if !strings.HasPrefix(name, "t") {
		return 0, false
	}
	n, err := strconv.Atoi(name[1:])
	if err != nil {
		return 0, false
	}
	return n, true
}

// fresh returns the next fresh unification-variable name, incrementing
// the counter and skipping any name already present in the input.
func (f *freshCounter) fresh() string {
	for {
		name := fmt.Sprintf("t%d", f.next)
		f.next++
		if !f.seen[name] {
			f.seen[name] = true
			return name
		}
	}
}

func (f *freshCounter) freshVar() *AVar {
	return NewUnifVar(f.fresh())
}
