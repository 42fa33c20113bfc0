// internal/domain/models/extra.go
package models

import (
	"bytes"
	"encoding/json"
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Documents in this service accept any client-supplied shape. The typed
// fields are the ones the service reads; everything else lands in an inline
// Extra map so it is stored and echoed back untouched.

// extraFields returns the keys of the JSON object b that are not in known.
// Numbers keep their JSON shape: integers that fit int32 are stored as
// int32, everything else as float64.
func extraFields(b []byte, known ...string) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var all map[string]any
	if err := dec.Decode(&all); err != nil {
		return nil, err
	}
	for _, k := range known {
		delete(all, k)
	}
	if len(all) == 0 {
		return nil, nil
	}
	for k, v := range all {
		all[k] = numbers(v)
	}
	return all, nil
}

// numbers replaces json.Number values, which would otherwise be stored as
// strings, with int32 or float64.
func numbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil && i >= math.MinInt32 && i <= math.MaxInt32 {
			return int32(i)
		}
		f, _ := t.Float64()
		return f
	case map[string]any:
		for k, e := range t {
			t[k] = numbers(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = numbers(e)
		}
		return t
	default:
		return v
	}
}

// marshalWithExtra encodes typed (an alias type without custom marshalers)
// and merges the extra keys into the resulting object. Typed fields win on
// key collisions.
func marshalWithExtra(typed any, extra map[string]any) ([]byte, error) {
	b, err := json.Marshal(typed)
	if err != nil || len(extra) == 0 {
		return b, err
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(b, &obj); err != nil {
		return nil, err
	}
	for k, v := range extra {
		if _, taken := obj[k]; taken {
			continue
		}
		raw, err := json.Marshal(jsonValue(v))
		if err != nil {
			return nil, err
		}
		obj[k] = raw
	}
	return json.Marshal(obj)
}

// jsonValue converts BSON container types decoded into an inline map into
// plain maps and slices so they encode as JSON objects and arrays.
func jsonValue(v any) any {
	switch t := v.(type) {
	case primitive.D:
		m := make(map[string]any, len(t))
		for _, e := range t {
			m[e.Key] = jsonValue(e.Value)
		}
		return m
	case primitive.M:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = jsonValue(e)
		}
		return m
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = jsonValue(e)
		}
		return m
	case primitive.A:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = jsonValue(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = jsonValue(e)
		}
		return out
	default:
		return v
	}
}
