// Package discocfg loads the type-synonym and sort tables the solver
// needs from YAML, the way internal/eval_harness loads benchmark specs
// in the teacher repo: read the file, unmarshal, validate required
// fields, wrap any failure with context.
package discocfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/discolang/disco/internal/types"
)

// QualifierSet is the YAML-facing form of a types.Sort: a plain list
// of qualifier names instead of the in-memory set representation.
type QualifierSet []string

// BaseEntry configures one base type's place in the subtyping lattice
// and the qualifiers it satisfies. ExtendsAbove, if set, names an
// existing base type that the new base sits directly above in the
// numeric subtype chain (so ExtendsAbove <: Name); if empty, the new
// base is added as a standalone atom incomparable to every other base,
// the same way Bool, Unit, and Char are.
type BaseEntry struct {
	Name         string       `yaml:"name"`
	Qualifiers   QualifierSet `yaml:"qualifiers"`
	ExtendsAbove string       `yaml:"extends_above,omitempty"`
}

// ToSort converts the YAML-facing qualifier list into a types.Sort.
func (q QualifierSet) ToSort() types.Sort {
	quals := make([]types.Qualifier, len(q))
	for i, name := range q {
		quals[i] = types.Qualifier(name)
	}
	return types.NewSort(quals...)
}

// SynonymEntry binds a type-synonym name to the constructor expression
// it expands to. Base names resolve to ABase. The constructors known to
// internal/types (arrow, pair, sum, list) are built through their
// helpers when given the matching number of args; any other con name or
// arg count is passed through as a raw TyCon without validation.
type SynonymEntry struct {
	Name string     `yaml:"name"`
	Type TypeExpr   `yaml:"type"`
}

// TypeExpr is a small recursive YAML shape for describing a Type
// without exposing the internal/types constructors directly to
// configuration authors.
type TypeExpr struct {
	Base string     `yaml:"base,omitempty"`
	Var  string     `yaml:"var,omitempty"`
	Con  string     `yaml:"con,omitempty"` // "arrow", "pair", "sum", "list"
	Args []TypeExpr `yaml:"args,omitempty"`
}

// Config is the top-level YAML document: additional base types beyond
// the built-in lattice, plus the type synonyms available to a solve.
type Config struct {
	Bases    []BaseEntry    `yaml:"bases"`
	Synonyms []SynonymEntry `yaml:"synonyms"`
}

// Load reads and validates a YAML config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("discocfg: failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("discocfg: failed to parse YAML: %w", err)
	}

	for i, s := range cfg.Synonyms {
		if s.Name == "" {
			return nil, fmt.Errorf("discocfg: synonym at index %d missing required field: name", i)
		}
	}

	for i, b := range cfg.Bases {
		if b.Name == "" {
			return nil, fmt.Errorf("discocfg: base at index %d missing required field: name", i)
		}
		err := types.RegisterBase(types.BaseAtom(b.Name), b.Qualifiers.ToSort(), types.BaseAtom(b.ExtendsAbove))
		if err != nil {
			return nil, fmt.Errorf("discocfg: base %q: %w", b.Name, err)
		}
	}

	return &cfg, nil
}

// SynonymTable builds a types.TypeSynonyms table from the config's
// synonym entries.
func (c *Config) SynonymTable() types.TypeSynonyms {
	out := make(types.TypeSynonyms, len(c.Synonyms))
	for _, s := range c.Synonyms {
		out[s.Name] = resolveExpr(s.Type)
	}
	return out
}

func resolveExpr(e TypeExpr) types.Type {
	switch {
	case e.Base != "":
		return &types.ABase{Base: types.BaseAtom(e.Base)}
	case e.Var != "":
		return types.NewUnifVar(e.Var)
	case e.Con != "":
		args := make([]types.Type, len(e.Args))
		for i, a := range e.Args {
			args[i] = resolveExpr(a)
		}
		switch e.Con {
		case "arrow":
			if len(args) == 2 {
				return types.Arrow(args[0], args[1])
			}
		case "pair":
			if len(args) == 2 {
				return types.Pair(args[0], args[1])
			}
		case "sum":
			if len(args) == 2 {
				return types.Sum(args[0], args[1])
			}
		case "list":
			if len(args) == 1 {
				return types.ListOf(args[0])
			}
		}
		return &types.TyCon{Con: types.Constructor(e.Con), Args: args}
	default:
		return &types.TyDef{Name: ""}
	}
}
