package datasource

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Params is a request payload sent as a JSON body on POST and as a query
// string on GET.
type Params map[string]any

// Query encodes p. Slices become repeated keys; nil values, empty strings
// and empty slices are left out.
func (p Params) Query() url.Values {
	q := url.Values{}
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch v := p[k].(type) {
		case nil:
		case string:
			if strings.TrimSpace(v) != "" {
				q.Set(k, v)
			}
		case []string:
			for _, item := range v {
				q.Add(k, item)
			}
		case int:
			q.Set(k, strconv.Itoa(v))
		case int64:
			q.Set(k, strconv.FormatInt(v, 10))
		case float64:
			q.Set(k, strconv.FormatFloat(v, 'f', -1, 64))
		case bool:
			q.Set(k, strconv.FormatBool(v))
		case *int:
			if v != nil {
				q.Set(k, strconv.Itoa(*v))
			}
		}
	}
	return q
}

// Compact drops the entries Query would leave out, for use as a JSON body.
func (p Params) Compact() Params {
	out := Params{}
	for k, v := range p {
		switch t := v.(type) {
		case nil:
			continue
		case string:
			if strings.TrimSpace(t) == "" {
				continue
			}
		case *int:
			if t == nil {
				continue
			}
			out[k] = *t
			continue
		}
		out[k] = v
	}
	return out
}
