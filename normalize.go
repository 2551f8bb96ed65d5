package edn

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// HandlerFunc folds a Tagged value's already-normalized payload into a
// host-native representation. handlers is passed through so a handler may
// recursively normalize nested tagged values using the same registry.
type HandlerFunc func(tag string, v interface{}, handlers Handlers) (interface{}, error)

// Handlers is the normalizer's tag-dispatch table: a lookup from tag name
// to the transformation that folds a tagged literal into a host value.
type Handlers map[string]HandlerFunc

// NormPair is one key/value entry of a normalized Map.
type NormPair struct {
	Key interface{}
	Val interface{}
}

// NormMap is the host-native form of a Value Map: Go has no ordered,
// arbitrary-key associative container in its standard library, so pair
// order is preserved explicitly instead of folding into map[interface{}].
type NormMap struct {
	Pairs []NormPair
}

// NormSet is the host-native form of a Value Set, with element uniqueness
// now enforced (a Set's elements are not deduplicated until normalized).
// Order of first occurrence is preserved for deterministic printing/tests,
// even though set semantics don't require it.
type NormSet struct {
	Items []interface{}
}

// MarshalJSON renders m as a JSON object in pair order, since the plain
// struct form would otherwise marshal as {"Pairs": [...]}.
func (m NormMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range m.Pairs {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(fmt.Sprintf("%v", p.Key))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(p.Val)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON renders s as a JSON array, since the plain struct form would
// otherwise marshal as {"Items": [...]}.
func (s NormSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Items)
}

// NormMetadata is the host-native form of a Value Metadata node.
type NormMetadata struct {
	Target interface{}
	Meta   interface{}
}

// DiscardMode selects how Normalize treats a Discard node: EDN leaves this
// undefined, so it is a configuration point rather than a silent default.
type DiscardMode int

const (
	// DiscardPassthrough normalizes and returns the wrapped value as if
	// the #_ had not been present.
	DiscardPassthrough DiscardMode = iota
	// DiscardError fails normalization outright when a Discard node is
	// encountered.
	DiscardError
)

// Normalizer folds a Value tree into host-native Go values through a
// tag-dispatch registry. The zero value uses DiscardPassthrough and an
// empty Handlers table.
type Normalizer struct {
	Handlers    Handlers
	DiscardMode DiscardMode
}

// NewNormalizer returns a Normalizer using handlers and the default
// DiscardMode.
func NewNormalizer(handlers Handlers) *Normalizer {
	return &Normalizer{Handlers: handlers}
}

// Normalize folds v into a host-native Go value using the default
// (DiscardPassthrough) Normalizer. It is the package-level convenience
// form of (*Normalizer).Normalize.
func Normalize(v Value, handlers Handlers) (interface{}, error) {
	return (&Normalizer{Handlers: handlers}).Normalize(v)
}

// Normalize folds a single Value node into its host-native representation,
// recursing into containers and consulting Handlers for Tagged nodes.
func (n *Normalizer) Normalize(v Value) (interface{}, error) {
	switch t := v.(type) {
	case Nil:
		return nil, nil
	case Bool:
		return bool(t), nil
	case Integer:
		return t.Val, nil
	case Float:
		return float64(t), nil
	case String:
		return string(t), nil
	case Char:
		return string(rune(t)), nil
	case KeywordNil:
		return nil, nil
	case Keyword:
		return t.Name, nil
	case Symbol:
		return t, nil
	case List:
		return n.normalizeSeq(t.Items)
	case Vector:
		return n.normalizeSeq(t.Items)
	case Set:
		return n.normalizeSet(t.Items)
	case Map:
		return n.normalizeMap(t)
	case Metadata:
		target, err := n.Normalize(t.Target)
		if err != nil {
			return nil, err
		}
		meta, err := n.Normalize(t.Meta)
		if err != nil {
			return nil, err
		}
		return NormMetadata{Target: target, Meta: meta}, nil
	case SpecialFloat:
		return n.normalizeSpecialFloat(t), nil
	case Tagged:
		return n.normalizeTagged(t)
	case Discard:
		return n.normalizeDiscard(t)
	default:
		return nil, fmt.Errorf("edn: normalize: unhandled value type %T", v)
	}
}

func (n *Normalizer) normalizeSeq(items []Value) (interface{}, error) {
	out := make([]interface{}, len(items))
	for i, item := range items {
		v, err := n.Normalize(item)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (n *Normalizer) normalizeSet(items []Value) (interface{}, error) {
	set := NormSet{}
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		v, err := n.Normalize(item)
		if err != nil {
			return nil, err
		}
		key := fmt.Sprintf("%#v", v)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		set.Items = append(set.Items, v)
	}
	return set, nil
}

func (n *Normalizer) normalizeMap(m Map) (interface{}, error) {
	out := NormMap{Pairs: make([]NormPair, 0, len(m.Pairs))}
	for _, p := range m.Pairs {
		k, err := n.Normalize(p.Key)
		if err != nil {
			return nil, err
		}
		v, err := n.Normalize(p.Val)
		if err != nil {
			return nil, err
		}
		out.Pairs = append(out.Pairs, NormPair{Key: k, Val: v})
	}
	return out, nil
}

// normalizeSpecialFloat turns a SpecialFloat node (##Inf/##-Inf/##NaN built
// directly as that variant) into the host's own non-finite float64 value.
// The Tagged form the parser produces for the sentinels is handled in
// normalizeTagged.
func (n *Normalizer) normalizeSpecialFloat(s SpecialFloat) float64 {
	switch s.Which {
	case PosInf:
		return math.Inf(1)
	case NegInf:
		return math.Inf(-1)
	default:
		return math.NaN()
	}
}

func (n *Normalizer) normalizeTagged(t Tagged) (interface{}, error) {
	if t.Tag == "inf" {
		if sym, ok := t.Val.(Symbol); ok {
			switch sym.Name {
			case "pos":
				return math.Inf(1), nil
			case "neg":
				return math.Inf(-1), nil
			}
		}
	}
	if t.Tag == "nan" {
		return math.NaN(), nil
	}

	handler, ok := n.Handlers[t.Tag]
	if !ok {
		return nil, HandlerNotFound(t.Tag)
	}
	val, err := n.Normalize(t.Val)
	if err != nil {
		return nil, err
	}
	return handler(t.Tag, val, n.Handlers)
}

func (n *Normalizer) normalizeDiscard(d Discard) (interface{}, error) {
	switch n.DiscardMode {
	case DiscardError:
		return nil, fmt.Errorf("edn: normalize: discard encountered with DiscardError mode")
	default:
		return n.Normalize(d.Val)
	}
}

// BuiltinHandlers returns a Handlers table for the #inst tag, the one EDN
// extension common enough to be worth a default: RFC3339 text normalizes
// to a time.Time. Callers that want #uuid or application-specific tags
// build their own Handlers, optionally merging these in.
func BuiltinHandlers() Handlers {
	return Handlers{
		"inst": func(tag string, v interface{}, h Handlers) (interface{}, error) {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("edn: #inst payload is not a string: %v", v)
			}
			return time.Parse(time.RFC3339Nano, s)
		},
	}
}
