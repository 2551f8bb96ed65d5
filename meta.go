package edn

// GetMetadata returns the meta value attached to v and true, or
// (nil, false) if v carries no metadata.
func GetMetadata(v Value) (Value, bool) {
	if m, ok := v.(Metadata); ok {
		return m.Meta, true
	}
	return nil, false
}

// WithMetadata wraps v with meta, unconditionally. Calling it again on the
// result nests rather than replaces, matching the grammar's right-nesting
// rule for repeated '^' prefixes.
func WithMetadata(v, meta Value) Value {
	return Metadata{Target: v, Meta: meta}
}

// StripMetadata recursively removes every Metadata wrapper from v,
// descending into containers; every other node is returned unchanged.
// It is idempotent: stripping an already-stripped tree is a no-op.
func StripMetadata(v Value) Value {
	switch t := v.(type) {
	case Metadata:
		return StripMetadata(t.Target)
	case List:
		return List{Items: stripValues(t.Items)}
	case Vector:
		return Vector{Items: stripValues(t.Items)}
	case Set:
		return Set{Items: stripValues(t.Items)}
	case Map:
		pairs := make([]Pair, len(t.Pairs))
		for i, p := range t.Pairs {
			pairs[i] = Pair{Key: StripMetadata(p.Key), Val: StripMetadata(p.Val)}
		}
		return Map{Pairs: pairs}
	case Tagged:
		return Tagged{Tag: t.Tag, Val: StripMetadata(t.Val)}
	case Discard:
		return Discard{Val: StripMetadata(t.Val)}
	default:
		return v
	}
}

func stripValues(items []Value) []Value {
	out := make([]Value, len(items))
	for i, item := range items {
		out[i] = StripMetadata(item)
	}
	return out
}

// MergeMetadata attaches newMeta to v. If v already carries metadata, the
// existing and new meta values are combined into a single map rather than
// one replacing the other; otherwise v is wrapped fresh, same as
// WithMetadata. The result's outermost form is always Metadata.
func MergeMetadata(v, newMeta Value) Value {
	if m, ok := v.(Metadata); ok {
		return Metadata{Target: m.Target, Meta: combineMeta(m.Meta, newMeta)}
	}
	return Metadata{Target: v, Meta: newMeta}
}

// combineMeta folds existing and next into map form (a keyword becomes
// {keyword: true}, a string becomes {:tag string}, a map stands for
// itself, anything else becomes {:value x}) and concatenates their pair
// lists in (existing, next) order.
func combineMeta(existing, next Value) Value {
	e := metaMapForm(existing)
	n := metaMapForm(next)
	pairs := make([]Pair, 0, len(e.Pairs)+len(n.Pairs))
	pairs = append(pairs, e.Pairs...)
	pairs = append(pairs, n.Pairs...)
	return Map{Pairs: pairs}
}

func metaMapForm(v Value) Map {
	switch t := v.(type) {
	case Map:
		return t
	case Keyword, KeywordNil:
		return Map{Pairs: []Pair{{Key: t, Val: Bool(true)}}}
	case String:
		return Map{Pairs: []Pair{{Key: Keyword{Name: "tag"}, Val: t}}}
	default:
		return Map{Pairs: []Pair{{Key: Keyword{Name: "value"}, Val: v}}}
	}
}
