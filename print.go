package edn

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// errWriter accumulates writes against an io.Writer, recording the first
// error and silently discarding everything after it. Callers chain writes
// without checking an error after every call, then inspect ew.err once at
// the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) write(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}

// Printer renders a Value tree to EDN text. The zero value is ready to use.
type Printer struct {
	// CharNames, when true, renders \newline, \return, \tab and \space for
	// the four characters the lexer accepts those names for, instead of
	// the generic \X form. The lexer accepts both forms either way, so
	// this is purely a printer-side style choice.
	CharNames bool
}

// NewPrinter returns a Printer with default (generic-char-escape) settings.
func NewPrinter() *Printer {
	return &Printer{}
}

// Print renders v to canonical EDN text using default Printer settings.
func Print(v Value) []byte {
	var buf bytes.Buffer
	_ = NewPrinter().Fprint(&buf, v)
	return buf.Bytes()
}

// Sprint renders v to an EDN string using p's settings.
func (p *Printer) Sprint(v Value) string {
	var buf bytes.Buffer
	_ = p.Fprint(&buf, v)
	return buf.String()
}

// Fprint writes v to w as EDN text, in the tree's recorded order, with a
// single space between adjacent items and no trailing separator.
func (p *Printer) Fprint(w io.Writer, v Value) error {
	ew := &errWriter{w: w}
	p.writeValue(ew, v)
	return ew.err
}

func (p *Printer) writeValue(ew *errWriter, v Value) {
	switch t := v.(type) {
	case Nil:
		ew.write("nil")
	case Bool:
		ew.write(t.String())
	case Integer:
		ew.write(t.Val.String())
	case Float:
		ew.write(formatFloat(float64(t)))
	case Rational:
		ew.write(t.Num.String())
		ew.write("/")
		ew.write(t.Denom.String())
	case SpecialFloat:
		ew.write(t.String())
	case Char:
		p.writeChar(ew, rune(t))
	case String:
		p.writeString(ew, string(t))
	case Keyword:
		ew.write(":")
		ew.write(t.Name)
	case KeywordNil:
		ew.write(":nil")
	case Symbol:
		ew.write(t.Name)
	case List:
		p.writeSeq(ew, "(", ")", t.Items)
	case Vector:
		p.writeSeq(ew, "[", "]", t.Items)
	case Set:
		p.writeSeq(ew, "#{", "}", t.Items)
	case Map:
		p.writeMap(ew, t)
	case Tagged:
		if s := specialFloatText(t); s != "" {
			ew.write(s)
			return
		}
		ew.write("#")
		ew.write(t.Tag)
		ew.write(" ")
		p.writeValue(ew, t.Val)
	case Discard:
		ew.write("#_")
		p.writeValue(ew, t.Val)
	case Metadata:
		ew.write("^")
		p.writeValue(ew, t.Meta)
		ew.write(" ")
		p.writeValue(ew, t.Target)
	default:
		if ew.err == nil {
			ew.err = fmt.Errorf("edn: print: unhandled value type %T", v)
		}
	}
}

func (p *Printer) writeSeq(ew *errWriter, open, shut string, items []Value) {
	ew.write(open)
	for i, item := range items {
		if i > 0 {
			ew.write(" ")
		}
		p.writeValue(ew, item)
	}
	ew.write(shut)
}

func (p *Printer) writeMap(ew *errWriter, m Map) {
	ew.write("{")
	for i, pair := range m.Pairs {
		if i > 0 {
			ew.write(" ")
		}
		p.writeValue(ew, pair.Key)
		ew.write(" ")
		p.writeValue(ew, pair.Val)
	}
	ew.write("}")
}

// specialFloatText recognizes the Tagged shape the parser produces for
// ##Inf/##-Inf/##NaN (inf_pos decodes to Tagged(inf,pos), and so on) and
// renders it back as the sentinel spelling rather than a generic "#tag
// value", so the common case round-trips textually and not just
// structurally.
func specialFloatText(t Tagged) string {
	if t.Tag == "inf" {
		if sym, ok := t.Val.(Symbol); ok {
			switch sym.Name {
			case "pos":
				return "##Inf"
			case "neg":
				return "##-Inf"
			}
		}
	}
	if t.Tag == "nan" {
		if _, ok := t.Val.(Nil); ok {
			return "##NaN"
		}
	}
	return ""
}

var charNames = map[rune]string{
	'\n': "newline",
	'\r': "return",
	'\t': "tab",
	' ':  "space",
}

func (p *Printer) writeChar(ew *errWriter, r rune) {
	if p.CharNames {
		if name, ok := charNames[r]; ok {
			ew.write("\\")
			ew.write(name)
			return
		}
	}
	ew.write("\\")
	ew.write(string(r))
}

var stringEscapes = map[rune]string{
	'\n': `\n`,
	'\r': `\r`,
	'\t': `\t`,
	'"':  `\"`,
	'\\': `\\`,
}

func (p *Printer) writeString(ew *errWriter, s string) {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		if esc, ok := stringEscapes[r]; ok {
			b.WriteString(esc)
			continue
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	ew.write(b.String())
}

// formatFloat renders a finite f so that re-lexing the result yields a Float
// token rather than an Integer one: a float lexeme must contain a '.' or an
// exponent, so whole-number floats get an explicit ".0". NaN and ±Inf come
// out as strconv spells them plus ".0" ("NaN.0", "+Inf.0") and do not
// re-lex as a Float.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
