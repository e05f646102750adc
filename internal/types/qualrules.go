package types

// qualArgRule is one argument position's requirement when a
// constructed type must satisfy a qualifier: nil means "no additional
// requirement on this argument", a non-nil value names the qualifier
// the argument must itself satisfy.
type qualArgRule *Qualifier

func q(val Qualifier) qualArgRule { return &val }

// qualRules is the declarative table mapping (constructor, qualifier)
// to a per-argument requirement list. A missing (constructor,
// qualifier) entry means the qualifier cannot hold for that
// constructor at all, and decomposition of Qual on such a type fails
// with Unqual.
//
// list and pair/sum are containers regardless of their element
// qualifiers; "finite" only propagates through list/pair/sum when the
// element(s) are themselves finite; arrow never satisfies a data
// qualifier (functions are not num/ord/finite/etc. in disco).
var qualRules = map[Constructor]map[Qualifier][]qualArgRule{
	CList: {
		QContainer: {nil},
		QFinite:    {q(QFinite)},
	},
	CPair: {
		QContainer: {nil, nil},
		QFinite:    {q(QFinite), q(QFinite)},
		QOrd:       {q(QOrd), q(QOrd)},
	},
	CSum: {
		QContainer: {nil, nil},
		QFinite:    {q(QFinite), q(QFinite)},
		QOrd:       {q(QOrd), q(QOrd)},
	},
}
