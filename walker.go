package i18ntree

import "github.com/dmitrymomot/i18ntree/pkg/i18n"

// slot is where a walked value is written once it is known. Containers
// (maps, sequences) pass their children a slot closing over their own
// storage, so resolving a pending node mutates the skeleton in place
// without a second traversal.
type slot func(Value)

// pending is a translation node discovered mid-walk, parked until the
// batched catalog load completes (§9 "Generator/coroutine resolution").
// raw is the original node, kept so a formatter failure can be spliced
// back in as an augmented copy of it (§7 "Formatter failure").
type pending struct {
	node i18n.Node
	raw  Value
	set  slot
}

// Walk produces a skeleton copy of v with every translation node replaced
// by a placeholder slot, plus the pending resolutions and the catalog
// keys they need (§4.2). Maps and sequences are copied, so filling the
// skeleton's slots never writes into v: the tree walker never mutates its
// input (§3 invariant). Leaves, and a translation node whose payload fails
// to parse, are placed in the skeleton as the same values found in v.
func Walk(v Value) (Value, []*pending, []string) {
	var result Value
	pendings, keys := walk(v, func(rv Value) { result = rv })
	return result, pendings, keys
}

func walk(v Value, set slot) ([]*pending, []string) {
	switch t := v.(type) {
	case nil:
		set(nil)
		return nil, nil

	case Opaque:
		if canon, ok := t.Raw.(Canonicalizable); ok {
			canonical, err := canon.Canonicalize()
			if err == nil {
				return walk(canonical, set)
			}
		}
		set(t)
		return nil, nil

	case *Map:
		if IsTranslationNode(t) {
			node, err := parseTranslateNode(t)
			if err != nil {
				set(t)
				return nil, nil
			}
			set(Null{})
			p := &pending{node: node, raw: t, set: set}
			return []*pending{p}, []string{node.Key}
		}

		out := NewMap()
		set(out)

		var pendings []*pending
		var keys []string
		for _, k := range t.Keys() {
			child, _ := t.Get(k)
			key := k
			childPendings, childKeys := walk(child, func(rv Value) { out.Set(key, rv) })
			pendings = append(pendings, childPendings...)
			keys = append(keys, childKeys...)
		}
		return pendings, keys

	case Seq:
		out := make(Seq, len(t))
		set(out)

		var pendings []*pending
		var keys []string
		for i, elem := range t {
			idx := i
			childPendings, childKeys := walk(elem, func(rv Value) { out[idx] = rv })
			pendings = append(pendings, childPendings...)
			keys = append(keys, childKeys...)
		}
		return pendings, keys

	default:
		set(t)
		return nil, nil
	}
}
