package edn

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func assertValuesEqual(t *testing.T, want, got []Value) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.Truef(t, want[i].Equal(got[i]), "index %d: want %s, got %s", i, want[i], got[i])
	}
}

// TestParseScenarios walks a table of representative end-to-end inputs,
// one per EDN construct.
func TestParseScenarios(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Value
	}{
		{
			name: "empty map",
			in:   "{}",
			want: []Value{Map{}},
		},
		{
			name: "three integers",
			in:   "1 2 3",
			want: []Value{NewInteger(1), NewInteger(2), NewInteger(3)},
		},
		{
			name: "set with discard and namespaced symbol",
			in:   `#{1 true #_ nil :foo ns/foo}`,
			want: []Value{Set{Items: []Value{
				NewInteger(1),
				Bool(true),
				Discard{Val: Nil{}},
				Keyword{Name: "foo"},
				Symbol{Name: "ns/foo"},
			}}},
		},
		{
			name: "tagged map literal",
			in:   `#myapp/Person {:first "Fred" :last "Mertz"}`,
			want: []Value{Tagged{
				Tag: "myapp/Person",
				Val: Map{Pairs: []Pair{
					{Key: Keyword{Name: "first"}, Val: String("Fred")},
					{Key: Keyword{Name: "last"}, Val: String("Mertz")},
				}},
			}},
		},
		{
			name: "chained metadata",
			in:   `^:a ^:b value`,
			want: []Value{Metadata{
				Target: Metadata{Target: Symbol{Name: "value"}, Meta: Keyword{Name: "b"}},
				Meta:   Keyword{Name: "a"},
			}},
		},
		{
			name: "numeric bases",
			in:   `0xFF 0777 2r1010 22/7`,
			want: []Value{
				NewInteger(255),
				NewInteger(511),
				NewInteger(10),
				Rational{Num: big.NewInt(22), Denom: big.NewInt(7)},
			},
		},
		{
			name: "special float sentinels",
			in:   `##Inf ##-Inf ##NaN`,
			want: []Value{
				Tagged{Tag: "inf", Val: Symbol{Name: "pos"}},
				Tagged{Tag: "inf", Val: Symbol{Name: "neg"}},
				Tagged{Tag: "nan", Val: Nil{}},
			},
		},
		{
			name: "string with tab escape",
			in:   `"hello\tworld"`,
			want: []Value{String("hello\tworld")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.in))
			require.NoError(t, err)
			assertValuesEqual(t, tt.want, got)
		})
	}
}

func TestParseBoundaryBehaviors(t *testing.T) {
	t.Run("empty input is a parse error", func(t *testing.T) {
		_, err := Parse([]byte(""))
		require.Error(t, err)
		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		require.Equal(t, MissingValue, pe.Reason)
	})

	t.Run("whitespace-only input is a parse error", func(t *testing.T) {
		_, err := Parse([]byte("  \n\t "))
		require.Error(t, err)
	})

	t.Run("zero variants all parse to integer 0", func(t *testing.T) {
		got, err := Parse([]byte("0 00 000 +0 -0"))
		require.NoError(t, err)
		want := []Value{NewInteger(0), NewInteger(0), NewInteger(0), NewInteger(0), NewInteger(0)}
		assertValuesEqual(t, want, got)
	})

	t.Run("standalone slash is a symbol", func(t *testing.T) {
		got, err := Parse([]byte("/"))
		require.NoError(t, err)
		assertValuesEqual(t, []Value{Symbol{Name: "/"}}, got)
	})

	t.Run("sign-prefixed words are symbols, digits are integers", func(t *testing.T) {
		got, err := Parse([]byte("+abc -def -123 +5"))
		require.NoError(t, err)
		want := []Value{
			Symbol{Name: "+abc"},
			Symbol{Name: "-def"},
			NewInteger(-123),
			NewInteger(5),
		}
		assertValuesEqual(t, want, got)
	})

	t.Run(":nil is distinct from nil", func(t *testing.T) {
		got, err := Parse([]byte(":nil nil"))
		require.NoError(t, err)
		require.IsType(t, KeywordNil{}, got[0])
		require.IsType(t, Nil{}, got[1])
		require.False(t, got[0].Equal(got[1]))
	})

	t.Run("unclosed list is a parse error", func(t *testing.T) {
		_, err := Parse([]byte("(1 2 3"))
		require.Error(t, err)
		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		require.Equal(t, UnclosedContainer, pe.Reason)
	})

	t.Run("missing map value is a parse error", func(t *testing.T) {
		_, err := Parse([]byte("{:a}"))
		require.Error(t, err)
		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		require.Equal(t, MissingValue, pe.Reason)
	})

	t.Run("rational with zero denominator is a lex error", func(t *testing.T) {
		_, err := Parse([]byte("1/0"))
		require.Error(t, err)
		var le *LexError
		require.ErrorAs(t, err, &le)
	})

	t.Run("stray close delimiter is a parse error", func(t *testing.T) {
		_, err := Parse([]byte(")"))
		require.Error(t, err)
		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		require.Equal(t, Unexpected, pe.Reason)
	})
}

func TestParseVectorsListsAreDistinct(t *testing.T) {
	list, err := Parse([]byte("(1 2)"))
	require.NoError(t, err)
	vec, err := Parse([]byte("[1 2]"))
	require.NoError(t, err)
	require.False(t, list[0].Equal(vec[0]))
}
