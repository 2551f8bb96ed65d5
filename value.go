// Package edn reads and writes Clojure's Extensible Data Notation (EDN).
//
// The package turns EDN source text into an in-memory tree of Value nodes
// (Parse), renders such a tree back to EDN text (Print), and folds a tree
// into idiomatic Go containers through a user-supplied tag registry
// (Normalize). Lexing, parsing, printing and normalizing are pure,
// synchronous transformations over owned buffers and trees: no component
// reads past its immediate input and there is no backtracking across
// component boundaries.
package edn

import (
	"fmt"
	"math/big"
)

// Kind discriminates the concrete type implementing Value.
type Kind int

// The Value variants that make up the EDN data model.
const (
	KindNil Kind = iota
	KindBool
	KindInteger
	KindFloat
	KindRational
	KindSpecialFloat
	KindChar
	KindString
	KindKeyword
	KindKeywordNil
	KindSymbol
	KindList
	KindVector
	KindSet
	KindMap
	KindTagged
	KindDiscard
	KindMetadata
)

var kindNames = map[Kind]string{
	KindNil:          "nil",
	KindBool:         "bool",
	KindInteger:      "integer",
	KindFloat:        "float",
	KindRational:     "rational",
	KindSpecialFloat: "special-float",
	KindChar:         "char",
	KindString:       "string",
	KindKeyword:      "keyword",
	KindKeywordNil:   "keyword-nil",
	KindSymbol:       "symbol",
	KindList:         "list",
	KindVector:       "vector",
	KindSet:          "set",
	KindMap:          "map",
	KindTagged:       "tagged",
	KindDiscard:      "discard",
	KindMetadata:     "metadata",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Value is the tagged union of all parsed EDN forms. Every variant listed
// in Kind has exactly one concrete type implementing Value; containers own
// their children and the tree has no cycles.
//
// Equality is structural and variant-discriminating: a Vector and a List
// holding the same elements are not Equal, and KeywordNil is never Equal
// to Nil.
type Value interface {
	Kind() Kind
	String() string
	Equal(other Value) bool
}

// Nil is the EDN value nil.
type Nil struct{}

func (Nil) Kind() Kind { return KindNil }
func (Nil) String() string { return "nil" }
func (Nil) Equal(o Value) bool {
	_, ok := o.(Nil)
	return ok
}

// Bool is an EDN boolean.
type Bool bool

func (b Bool) Kind() Kind { return KindBool }
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (b Bool) Equal(o Value) bool {
	ob, ok := o.(Bool)
	return ok && ob == b
}

// Integer is a signed, arbitrary-precision integer. All integer bases
// (decimal, hexadecimal, octal, radix) fold into this single variant.
type Integer struct {
	Val *big.Int
}

// NewInteger returns an Integer wrapping the given int64.
func NewInteger(i int64) Integer { return Integer{Val: big.NewInt(i)} }

func (i Integer) Kind() Kind { return KindInteger }
func (i Integer) String() string { return i.Val.String() }
func (i Integer) Equal(o Value) bool {
	oi, ok := o.(Integer)
	return ok && i.Val.Cmp(oi.Val) == 0
}

// Float is a 64-bit floating-point value.
type Float float64

func (f Float) Kind() Kind { return KindFloat }
func (f Float) String() string {
	return fmt.Sprintf("%v", float64(f))
}
func (f Float) Equal(o Value) bool {
	of, ok := o.(Float)
	return ok && of == f
}

// Rational is an exact fraction, never simplified at parse time. The
// denominator is always strictly positive; the sign lives entirely on the
// numerator.
type Rational struct {
	Num   *big.Int
	Denom *big.Int
}

func (r Rational) Kind() Kind { return KindRational }
func (r Rational) String() string { return fmt.Sprintf("%s/%s", r.Num, r.Denom) }
func (r Rational) Equal(o Value) bool {
	or, ok := o.(Rational)
	return ok && r.Num.Cmp(or.Num) == 0 && r.Denom.Cmp(or.Denom) == 0
}

// SpecialKind distinguishes the three non-finite float sentinels.
type SpecialKind int

const (
	PosInf SpecialKind = iota
	NegInf
	NaN
)

// SpecialFloat represents ##Inf, ##-Inf and ##NaN. The parser itself never
// produces this variant: inf_pos/inf_neg/nan decode to
// Tagged(inf,pos)/Tagged(inf,neg)/Tagged(nan,nil) instead, and SpecialFloat
// exists as the Print-friendly alternate representation for callers who
// build a tree directly rather than through Parse.
type SpecialFloat struct {
	Which SpecialKind
}

func (s SpecialFloat) Kind() Kind { return KindSpecialFloat }
func (s SpecialFloat) String() string {
	switch s.Which {
	case PosInf:
		return "##Inf"
	case NegInf:
		return "##-Inf"
	default:
		return "##NaN"
	}
}
func (s SpecialFloat) Equal(o Value) bool {
	os, ok := o.(SpecialFloat)
	return ok && os.Which == s.Which
}

// Char is a single Unicode scalar value.
type Char rune

func (c Char) Kind() Kind { return KindChar }
func (c Char) String() string { return "\\" + string(rune(c)) }
func (c Char) Equal(o Value) bool {
	oc, ok := o.(Char)
	return ok && oc == c
}

// String is a UTF-8 text value.
type String string

func (s String) Kind() Kind { return KindString }
func (s String) String() string { return string(s) }
func (s String) Equal(o Value) bool {
	os, ok := o.(String)
	return ok && os == s
}

// Keyword is an interned name, optionally namespaced with a single '/'.
// It is distinct from Symbol even when the names match.
type Keyword struct {
	Name string
}

func (k Keyword) Kind() Kind { return KindKeyword }
func (k Keyword) String() string { return ":" + k.Name }
func (k Keyword) Equal(o Value) bool {
	ok2, ok := o.(Keyword)
	return ok && ok2.Name == k.Name
}

// KeywordNil is the unique representation of the source text ":nil",
// kept distinct from both Nil and Keyword{Name: "nil"} so the printer can
// re-emit ":nil" verbatim. No parse path other than literal ":nil"
// produces this variant.
type KeywordNil struct{}

func (KeywordNil) Kind() Kind { return KindKeywordNil }
func (KeywordNil) String() string { return ":nil" }
func (KeywordNil) Equal(o Value) bool {
	_, ok := o.(KeywordNil)
	return ok
}

// Symbol is an interned name, optionally namespaced with a single '/'.
type Symbol struct {
	Name string
}

func (s Symbol) Kind() Kind { return KindSymbol }
func (s Symbol) String() string { return s.Name }
func (s Symbol) Equal(o Value) bool {
	os, ok := o.(Symbol)
	return ok && os.Name == s.Name
}

// List is an ordered sequence read with parentheses. Insertion order is
// preserved.
type List struct {
	Items []Value
}

func (l List) Kind() Kind { return KindList }
func (l List) String() string { return "(" + joinValues(l.Items) + ")" }
func (l List) Equal(o Value) bool {
	ol, ok := o.(List)
	return ok && equalValueSlices(l.Items, ol.Items)
}

// Vector is an ordered sequence read with square brackets. It is
// distinguished from List even when it holds the same elements.
type Vector struct {
	Items []Value
}

func (v Vector) Kind() Kind { return KindVector }
func (v Vector) String() string { return "[" + joinValues(v.Items) + "]" }
func (v Vector) Equal(o Value) bool {
	ov, ok := o.(Vector)
	return ok && equalValueSlices(v.Items, ov.Items)
}

// Set is a sequence read with "#{ }". Element uniqueness is NOT enforced
// at parse time; Normalize is where uniqueness is established.
type Set struct {
	Items []Value
}

func (s Set) Kind() Kind { return KindSet }
func (s Set) String() string { return "#{" + joinValues(s.Items) + "}" }
func (s Set) Equal(o Value) bool {
	os, ok := o.(Set)
	return ok && equalValueSlices(s.Items, os.Items)
}

// Pair is one key/value entry of a Map, in the order it was read.
type Pair struct {
	Key Value
	Val Value
}

// Map is a sequence of key/value Pairs read with "{ }". Key uniqueness is
// NOT enforced at parse time, and insertion order is preserved.
type Map struct {
	Pairs []Pair
}

func (m Map) Kind() Kind { return KindMap }
func (m Map) String() string {
	s := "{"
	for i, p := range m.Pairs {
		if i > 0 {
			s += " "
		}
		s += p.Key.String() + " " + p.Val.String()
	}
	return s + "}"
}
func (m Map) Equal(o Value) bool {
	om, ok := o.(Map)
	if !ok || len(om.Pairs) != len(m.Pairs) {
		return false
	}
	for i, p := range m.Pairs {
		if !p.Key.Equal(om.Pairs[i].Key) || !p.Val.Equal(om.Pairs[i].Val) {
			return false
		}
	}
	return true
}

// Tagged is a tagged literal, "#tag value", such as #inst or #myapp/Person.
type Tagged struct {
	Tag string
	Val Value
}

func (t Tagged) Kind() Kind { return KindTagged }
func (t Tagged) String() string { return "#" + t.Tag + " " + t.Val.String() }
func (t Tagged) Equal(o Value) bool {
	ot, ok := o.(Tagged)
	return ok && ot.Tag == t.Tag && t.Val.Equal(ot.Val)
}

// Discard is the "#_ value" form. The wrapped value is preserved, not
// deleted, so downstream consumers may choose whether to honour it.
type Discard struct {
	Val Value
}

func (d Discard) Kind() Kind { return KindDiscard }
func (d Discard) String() string { return "#_" + d.Val.String() }
func (d Discard) Equal(o Value) bool {
	od, ok := o.(Discard)
	return ok && d.Val.Equal(od.Val)
}

// Metadata is the "^meta target" form. Chained metadata nests so that the
// earliest '^' ends up outermost: "^a ^b x" parses as
// Metadata{Target: Metadata{Target: x, Meta: b}, Meta: a}.
type Metadata struct {
	Target Value
	Meta   Value
}

func (m Metadata) Kind() Kind { return KindMetadata }
func (m Metadata) String() string { return "^" + m.Meta.String() + " " + m.Target.String() }
func (m Metadata) Equal(o Value) bool {
	om, ok := o.(Metadata)
	return ok && m.Target.Equal(om.Target) && m.Meta.Equal(om.Meta)
}

func joinValues(vs []Value) string {
	s := ""
	for i, v := range vs {
		if i > 0 {
			s += " "
		}
		s += v.String()
	}
	return s
}

func equalValueSlices(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
