package rapidtables

import "sort"

// Field is a single key-value pair of a [Row].
type Field struct {
	Key   string
	Value any
}

// Row is an ordered [Record]. The zero value is an empty row ready to use.
type Row struct {
	keys   []string
	values map[string]any
}

// NewRow builds a row from fields in order. A repeated key keeps its first
// position and its last value.
func NewRow(fields ...Field) Row {
	r := Row{values: make(map[string]any, len(fields))}
	for _, f := range fields {
		r.Set(f.Key, f.Value)
	}
	return r
}

// MapRow builds a row from m with keys in sorted order, since map iteration
// order is unspecified.
func MapRow(m map[string]any) Row {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	r := Row{keys: keys, values: make(map[string]any, len(m))}
	for k, v := range m {
		r.values[k] = v
	}
	return r
}

// Set stores value under key, appending key to the column order if new.
func (r *Row) Set(key string, value any) {
	if r.values == nil {
		r.values = make(map[string]any)
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Keys returns the row's keys in order.
func (r Row) Keys() []string { return r.keys }

// Value returns the value stored under key.
func (r Row) Value(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Len returns the number of fields.
func (r Row) Len() int { return len(r.keys) }

// Fields returns the row's fields in order.
func (r Row) Fields() []Field {
	out := make([]Field, len(r.keys))
	for i, k := range r.keys {
		out[i] = Field{Key: k, Value: r.values[k]}
	}
	return out
}
