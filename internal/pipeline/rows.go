package pipeline

// DefaultKeyField names the synthetic field that carries the key of a
// keyed-object payload.
const DefaultKeyField = "x"

// Row is one record of field/value pairs. Rows built from non-object
// elements have no fields.
type Row struct {
	v Value
}

func RowOf(v Value) Row { return Row{v: v} }

// Value returns the underlying payload element.
func (r Row) Value() Value { return r.v }

func (r Row) Get(key string) (Value, bool) { return r.v.Field(key) }

// Text returns the first non-empty stringified value among keys.
func (r Row) Text(keys ...string) string {
	for _, key := range keys {
		v, ok := r.Get(key)
		if !ok {
			continue
		}
		if s := v.Text(); s != "" {
			return s
		}
	}
	return ""
}

// NormalizeRows decodes a payload into rows. Arrays pass through, a
// {"data": [...]} envelope is unwrapped, and a keyed object becomes one row
// per key carrying the key under keyField. Anything else yields no rows.
func NormalizeRows(v Value, keyField string) []Row {
	if keyField == "" {
		keyField = DefaultKeyField
	}

	switch v.Kind() {
	case KindArray:
		return rowsOf(v.Items())
	case KindObject:
		if data, ok := v.Field("data"); ok && data.Kind() == KindArray {
			return rowsOf(data.Items())
		}
		members := v.Object().Members()
		rows := make([]Row, 0, len(members))
		for _, m := range members {
			obj := NewObject()
			obj.Set(keyField, String(m.Key))
			if nested := m.Value.Object(); nested != nil {
				for _, f := range nested.Members() {
					obj.Set(f.Key, f.Value)
				}
			} else {
				obj.Set("value", m.Value)
			}
			rows = append(rows, RowOf(ObjectValue(obj)))
		}
		return rows
	default:
		return []Row{}
	}
}

func rowsOf(items []Value) []Row {
	rows := make([]Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, RowOf(item))
	}
	return rows
}
