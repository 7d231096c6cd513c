// Request data handed to the dispatcher. Always passed explicitly by the caller.

package models

import (
	"net/url"
	"strconv"
)

// Request is a key/value view of an incoming request. Keys are strings or ints.
type Request map[any]any

// RequestFromValues copies query/form values into a Request, keeping the first value per key.
func RequestFromValues(v url.Values) Request {
	r := make(Request, len(v))
	for k, vals := range v {
		if len(vals) == 0 {
			continue
		}
		r[k] = vals[0]
	}
	return r
}

// RequestFromMap copies a string-keyed map into a Request.
func RequestFromMap(m map[string]any) Request {
	r := make(Request, len(m))
	for k, v := range m {
		r[k] = v
	}
	return r
}

// AsRequest accepts the mapping shapes the dispatcher understands.
// ok is false for anything that is not a mapping (nil, scalars, slices...).
func AsRequest(v any) (Request, bool) {
	switch m := v.(type) {
	case Request:
		return m, m != nil
	case map[any]any:
		return Request(m), m != nil
	case map[string]any:
		if m == nil {
			return nil, false
		}
		return RequestFromMap(m), true
	case map[string]string:
		if m == nil {
			return nil, false
		}
		r := make(Request, len(m))
		for k, s := range m {
			r[k] = s
		}
		return r, true
	case map[int]any:
		if m == nil {
			return nil, false
		}
		r := make(Request, len(m))
		for k, x := range m {
			r[k] = x
		}
		return r, true
	case url.Values:
		if m == nil {
			return nil, false
		}
		return RequestFromValues(m), true
	}
	return nil, false
}

// Lookup finds key in r. Integer keys also match their canonical decimal
// string ("42") and such strings match the integer, so a numeric path key
// works against string-keyed HTTP input.
func (r Request) Lookup(key any) (any, bool) {
	if v, ok := r[key]; ok {
		return v, true
	}
	switch k := key.(type) {
	case int:
		v, ok := r[strconv.Itoa(k)]
		return v, ok
	case string:
		if n, err := strconv.Atoi(k); err == nil && strconv.Itoa(n) == k {
			v, ok := r[n]
			return v, ok
		}
	}
	return nil, false
}
