package edn

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrintCanonicalRenderings(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"nil", Nil{}, "nil"},
		{"true", Bool(true), "true"},
		{"false", Bool(false), "false"},
		{"integer", NewInteger(42), "42"},
		{"negative integer", NewInteger(-7), "-7"},
		{"rational", Rational{Num: big.NewInt(22), Denom: big.NewInt(7)}, "22/7"},
		{"special inf", SpecialFloat{Which: PosInf}, "##Inf"},
		{"special neg inf", SpecialFloat{Which: NegInf}, "##-Inf"},
		{"special nan", SpecialFloat{Which: NaN}, "##NaN"},
		{"char", Char('a'), `\a`},
		{"string with escapes", String("a\tb\nc"), `"a\tb\nc"`},
		{"keyword", Keyword{Name: "foo"}, ":foo"},
		{"keyword-nil", KeywordNil{}, ":nil"},
		{"symbol", Symbol{Name: "foo"}, "foo"},
		{"list", List{Items: []Value{NewInteger(1), NewInteger(2)}}, "(1 2)"},
		{"vector", Vector{Items: []Value{NewInteger(1), NewInteger(2)}}, "[1 2]"},
		{"set", Set{Items: []Value{NewInteger(1)}}, "#{1}"},
		{"map", Map{Pairs: []Pair{{Key: Keyword{Name: "a"}, Val: NewInteger(1)}}}, "{:a 1}"},
		{"tagged", Tagged{Tag: "foo", Val: NewInteger(1)}, "#foo 1"},
		{"discard", Discard{Val: Nil{}}, "#_nil"},
		{
			"metadata",
			Metadata{Target: Symbol{Name: "x"}, Meta: Keyword{Name: "a"}},
			"^:a x",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NewPrinter().Sprint(tt.v))
		})
	}
}

func TestPrintFloatAlwaysHasFloatSyntax(t *testing.T) {
	require.Equal(t, "5.0", NewPrinter().Sprint(Float(5)))
	require.Equal(t, "3.14", NewPrinter().Sprint(Float(3.14)))
}

func TestPrintCharNamesOption(t *testing.T) {
	p := &Printer{CharNames: true}
	require.Equal(t, `\newline`, p.Sprint(Char('\n')))
	require.Equal(t, `\space`, p.Sprint(Char(' ')))

	plain := NewPrinter()
	require.Equal(t, "\\\n", plain.Sprint(Char('\n')))
}

func TestPrintParseRoundTrip(t *testing.T) {
	srcs := []string{
		`{}`,
		`1 2 3`,
		`#{1 true :foo ns/foo}`,
		`#myapp/Person {:first "Fred" :last "Mertz"}`,
		`0xFF 0777 2r1010 22/7`,
		`##Inf ##-Inf ##NaN`,
		`"hello\tworld"`,
		`^:a ^:b value`,
	}
	for _, src := range srcs {
		t.Run(src, func(t *testing.T) {
			vals, err := Parse([]byte(src))
			require.NoError(t, err)
			for _, v := range vals {
				text := Print(v)
				reparsed, err := ParseOne(text)
				require.NoError(t, err, "reparsing %q", text)
				require.Truef(t, v.Equal(reparsed), "round trip: %s -> %s -> %s", v, text, reparsed)
			}
		})
	}
}
