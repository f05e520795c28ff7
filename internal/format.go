package internal

import (
	"sort"
	"strconv"
	"strings"
)

// maxFormatDepth bounds how deeply Format descends into nested lists and
// dictionaries.
const maxFormatDepth = 64

// Format renders a box for display. Strings are quoted, lists and
// dictionaries show their items, methods show their parameters, and other
// boxes show their variable names.
func (a *Actor) Format(b *Box) string {
	w := strings.Builder{}
	a.formatRecurse(&w, b, 0)
	return w.String()
}

func (a *Actor) formatRecurse(w *strings.Builder, b *Box, depth int) {
	if b == nil || b.IsNull() {
		w.WriteString("null")
		return
	}
	if depth > maxFormatDepth {
		w.WriteString("...")
		return
	}
	switch v := b.Value.(type) {
	case bool:
		w.WriteString(strconv.FormatBool(v))
	case int64:
		w.WriteString(strconv.FormatInt(v, 10))
	case float64:
		w.WriteString((&RealExpr{Value: v}).String())
	case []byte:
		w.WriteString(strconv.Quote(string(v)))
	case []*Box:
		w.WriteByte('(')
		for i, x := range v {
			if i > 0 {
				w.WriteString(", ")
			}
			a.formatRecurse(w, x, depth+1)
		}
		w.WriteByte(')')
	case map[*Box]*Box:
		keys := make([]string, 0, len(v))
		for k, x := range v {
			kw := strings.Builder{}
			a.formatRecurse(&kw, k, depth+1)
			kw.WriteString(": ")
			a.formatRecurse(&kw, x, depth+1)
			keys = append(keys, kw.String())
		}
		sort.Strings(keys)
		w.WriteByte('[')
		w.WriteString(strings.Join(keys, ", "))
		w.WriteByte(']')
	default:
		if m := b.GetMethod(); m != nil {
			w.WriteString("method(")
			w.WriteString(strings.Join(m.Params, ", "))
			w.WriteByte(')')
			return
		}
		names := b.VariableNames()
		sort.Strings(names)
		w.WriteByte('{')
		w.WriteString(strings.Join(names, ", "))
		w.WriteByte('}')
	}
}
