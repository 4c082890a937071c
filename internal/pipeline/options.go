package pipeline

// Option is one entry of a filter selector.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// OptionKeys lists the candidate fields tried, in order, for the identifier
// and the display name of object elements.
type OptionKeys struct {
	Value []string
	Label []string
}

// DefaultOptionKeys covers the naming variants seen across filter endpoints.
var DefaultOptionKeys = OptionKeys{
	Value: []string{"value", "id", "key", "code", "name"},
	Label: []string{"label", "name", "title", "displayName"},
}

// NormalizeOptions turns a payload into options deduplicated by value, first
// occurrence wins. Elements without an identifier are dropped.
func NormalizeOptions(v Value, keys OptionKeys) []Option {
	out := []Option{}
	seen := map[string]struct{}{}
	add := func(o Option) {
		if o.Value == "" {
			return
		}
		if _, dup := seen[o.Value]; dup {
			return
		}
		seen[o.Value] = struct{}{}
		if o.Label == "" {
			o.Label = o.Value
		}
		out = append(out, o)
	}

	switch v.Kind() {
	case KindArray:
		for _, item := range v.Items() {
			switch {
			case item.IsScalar():
				s := item.Text()
				add(Option{Value: s, Label: s})
			case item.Kind() == KindObject:
				row := RowOf(item)
				add(Option{Value: row.Text(keys.Value...), Label: row.Text(keys.Label...)})
			}
		}
	case KindObject:
		for _, m := range v.Object().Members() {
			add(Option{Value: trimKey(m.Key), Label: m.Value.Text()})
		}
	}
	return out
}

// OptionValues projects options onto their identifiers.
func OptionValues(opts []Option) []string {
	values := make([]string, 0, len(opts))
	for _, o := range opts {
		values = append(values, o.Value)
	}
	return values
}

func trimKey(k string) string {
	return String(k).Text()
}
