package i18ntree

import (
	"errors"
	"time"

	"github.com/dmitrymomot/i18ntree/pkg/i18n"
)

// ErrInvalidTranslationNode marks a node that looked like it might be a
// translation node (it has an "@translate" key) but fails schema
// validation (§4.1). Per §7 "Invalid node", callers never see this error
// surfaced through Translate: the walker leaves the node unchanged instead.
var ErrInvalidTranslationNode = errors.New("i18ntree: invalid translation node")

const translateKey = "@translate"

// IsTranslationNode reports whether v is a well-formed translation node:
// a mapping with exactly one top-level key "@translate", whose value is
// itself a mapping constrained to "key" (required, non-empty string),
// "quantity" (number), "placeholders" (mapping), and "fallback" (string),
// with no other keys present at either level (§4.1).
func IsTranslationNode(v Value) bool {
	m, ok := v.(*Map)
	if !ok || m.Len() != 1 {
		return false
	}

	inner, ok := m.Get(translateKey)
	if !ok {
		return false
	}

	body, ok := inner.(*Map)
	if !ok {
		return false
	}

	key, ok := body.Get("key")
	if !ok {
		return false
	}
	if s, ok := key.(String); !ok || s == "" {
		return false
	}

	for _, k := range body.Keys() {
		v, _ := body.Get(k)
		switch k {
		case "key":
			// validated above
		case "quantity":
			if _, ok := v.(Number); !ok {
				return false
			}
		case "placeholders":
			if _, ok := v.(*Map); !ok {
				return false
			}
		case "fallback":
			if _, ok := v.(String); !ok {
				return false
			}
		default:
			return false
		}
	}

	return true
}

// parseTranslateNode extracts the validated "@translate" body of v into
// an i18n.Node. Callers must check IsTranslationNode(v) first.
func parseTranslateNode(v Value) (i18n.Node, error) {
	m, ok := v.(*Map)
	if !ok {
		return i18n.Node{}, ErrInvalidTranslationNode
	}
	inner, ok := m.Get(translateKey)
	if !ok {
		return i18n.Node{}, ErrInvalidTranslationNode
	}
	body, ok := inner.(*Map)
	if !ok {
		return i18n.Node{}, ErrInvalidTranslationNode
	}

	keyVal, _ := body.Get("key")
	key, ok := keyVal.(String)
	if !ok || key == "" {
		return i18n.Node{}, ErrInvalidTranslationNode
	}

	node := i18n.Node{Key: string(key)}

	if qv, ok := body.Get("quantity"); ok {
		n, ok := qv.(Number)
		if !ok {
			return i18n.Node{}, ErrInvalidTranslationNode
		}
		f := float64(n)
		node.Quantity = &f
	}

	if fv, ok := body.Get("fallback"); ok {
		s, ok := fv.(String)
		if !ok {
			return i18n.Node{}, ErrInvalidTranslationNode
		}
		str := string(s)
		node.Fallback = &str
	}

	if pv, ok := body.Get("placeholders"); ok {
		pm, ok := pv.(*Map)
		if !ok {
			return i18n.Node{}, ErrInvalidTranslationNode
		}
		placeholders := make(map[string]i18n.Placeholder, pm.Len())
		for _, name := range pm.Keys() {
			raw, _ := pm.Get(name)
			ph, err := convertPlaceholder(raw)
			if err != nil {
				return i18n.Node{}, err
			}
			placeholders[name] = ph
		}
		node.Placeholders = placeholders
	}

	return node, nil
}

// convertPlaceholder maps a raw placeholder Value onto the typed
// i18n.Placeholder variant the formatter pipeline expects (§3 "Placeholder
// value", §9 "Placeholder typing"). Scalars convert directly. Typed
// payload mappings are disambiguated by their distinguishing field: a
// "currency" key marks a currency payload, "units"/"round" mark a
// duration payload, a "timezone" key marks a date payload. A bare
// {value: ...} mapping with none of those keys falls back to duration for
// a numeric value (the common case of a raw millisecond count) and date
// for a string value (an ISO-ish timestamp).
func convertPlaceholder(v Value) (i18n.Placeholder, error) {
	switch t := v.(type) {
	case Null:
		return i18n.ScalarPlaceholder{Value: nil}, nil
	case Bool:
		return i18n.ScalarPlaceholder{Value: bool(t)}, nil
	case Number:
		return i18n.ScalarPlaceholder{Value: float64(t)}, nil
	case String:
		return i18n.ScalarPlaceholder{Value: string(t)}, nil
	case *Map:
		return convertPlaceholderMap(t)
	default:
		gv, err := ToGo(v)
		if err != nil {
			return nil, err
		}
		return i18n.ScalarPlaceholder{Value: gv}, nil
	}
}

func convertPlaceholderMap(m *Map) (i18n.Placeholder, error) {
	if _, ok := m.Get("currency"); ok {
		return convertCurrencyPlaceholder(m)
	}
	if _, hasUnits := m.Get("units"); hasUnits {
		return convertDurationPlaceholder(m)
	}
	if _, hasRound := m.Get("round"); hasRound {
		return convertDurationPlaceholder(m)
	}
	if _, hasTZ := m.Get("timezone"); hasTZ {
		return convertDatePlaceholder(m)
	}

	value, _ := m.Get("value")
	switch value.(type) {
	case String:
		return convertDatePlaceholder(m)
	default:
		return convertDurationPlaceholder(m)
	}
}

func convertCurrencyPlaceholder(m *Map) (i18n.Placeholder, error) {
	amount := floatField(m, "value")
	currency := stringField(m, "currency")
	return i18n.CurrencyPlaceholder{
		Value:     amount,
		Currency:  currency,
		Precision: intPtrField(m, "precision"),
	}, nil
}

func convertDurationPlaceholder(m *Map) (i18n.Placeholder, error) {
	ph := i18n.DurationPlaceholder{
		ValueMS:   floatField(m, "value"),
		Precision: intPtrField(m, "precision"),
	}
	if b, ok := m.Get("round"); ok {
		if bv, ok := b.(Bool); ok {
			ph.Round = bool(bv)
		}
	}
	if u, ok := m.Get("units"); ok {
		if seq, ok := u.(Seq); ok {
			units := make([]string, 0, len(seq))
			for _, elem := range seq {
				if s, ok := elem.(String); ok {
					units = append(units, string(s))
				}
			}
			ph.Units = units
		}
	}
	return ph, nil
}

func convertDatePlaceholder(m *Map) (i18n.Placeholder, error) {
	value, _ := m.Get("value")
	moment, err := coerceTime(value)
	if err != nil {
		return nil, err
	}
	return i18n.DatePlaceholder{
		Value:    moment,
		Timezone: stringField(m, "timezone"),
	}, nil
}

func coerceTime(v Value) (time.Time, error) {
	switch t := v.(type) {
	case String:
		for _, layout := range []string{time.RFC3339, time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
			if parsed, err := time.Parse(layout, string(t)); err == nil {
				return parsed, nil
			}
		}
		return time.Time{}, errors.New("i18ntree: unrecognized date placeholder value " + string(t))
	case Number:
		return time.UnixMilli(int64(t)).UTC(), nil
	case Opaque:
		if moment, ok := t.Raw.(time.Time); ok {
			return moment, nil
		}
	}
	return time.Time{}, ErrInvalidTranslationNode
}

func floatField(m *Map, name string) float64 {
	v, ok := m.Get(name)
	if !ok {
		return 0
	}
	n, ok := v.(Number)
	if !ok {
		return 0
	}
	return float64(n)
}

func stringField(m *Map, name string) string {
	v, ok := m.Get(name)
	if !ok {
		return ""
	}
	s, ok := v.(String)
	if !ok {
		return ""
	}
	return string(s)
}

func intPtrField(m *Map, name string) *int {
	v, ok := m.Get(name)
	if !ok {
		return nil
	}
	n, ok := v.(Number)
	if !ok {
		return nil
	}
	i := int(n)
	return &i
}
