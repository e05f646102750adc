package main

import "github.com/discolang/disco/internal/types"

// scenario is one named, self-contained constraint to feed to
// types.Solve. The seven built in here are the literal end-to-end
// examples from the core specification's worked-scenario table.
type scenario struct {
	name       string
	desc       string
	constraint types.Constraint
}

func scenarios() []scenario {
	v := types.NewUnifVar("v")
	v1 := types.NewUnifVar("v1")
	v2 := types.NewUnifVar("v2")
	iv := &types.ABase{Base: types.BInt}
	nv := &types.ABase{Base: types.BNat}

	return []scenario{
		{
			name:       "var-leq-int",
			desc:       "v <: Int with an empty sort map",
			constraint: types.Sub{T1: v, T2: iv},
		},
		{
			name: "nat-leq-var-num",
			desc: "Nat <: v with v required to satisfy {num}",
			constraint: types.And{Cs: []types.Constraint{
				types.Sub{T1: nv, T2: v},
				types.Qual{Q: types.QNum, T: v},
			}},
		},
		{
			name: "mutual-subtype",
			desc: "v1 <: v2 and v2 <: v1",
			constraint: types.And{Cs: []types.Constraint{
				types.Sub{T1: v1, T2: v2},
				types.Sub{T1: v2, T2: v1},
			}},
		},
		{
			name:       "skolem-vs-base",
			desc:       "All<a. a <: Int> — a rigid variable can never equal a base type",
			constraint: types.All{Vars: []string{"a"}, Body: types.Sub{T1: types.NewUnifVar("a"), T2: iv}},
		},
		{
			name: "arrow-variance",
			desc: "(v1 -> v2) <: (Int -> Nat): arrow is contravariant in its input",
			constraint: types.Sub{
				T1: types.Arrow(v1, v2),
				T2: types.Arrow(iv, nv),
			},
		},
		{
			name:       "qual-on-concrete-base",
			desc:       "Qual num Bool — Bool never satisfies num",
			constraint: types.Qual{Q: types.QNum, T: &types.ABase{Base: types.BBool}},
		},
		{
			name: "or-first-alternative",
			desc: "Or [v = Int, v = Nat] with no sort — the first alternative wins",
			constraint: types.Or{Cs: []types.Constraint{
				types.Eq{T1: v, T2: iv},
				types.Eq{T1: v, T2: nv},
			}},
		},
	}
}

func findScenario(name string) (scenario, bool) {
	for _, s := range scenarios() {
		if s.name == name {
			return s, true
		}
	}
	return scenario{}, false
}
