package optargs

import (
	"fmt"
	"strings"
)

// Getter converts a raw textual value into a typed one. Returning false is
// the universal "could not give you this" signal, covering both malformed
// input and, at the accessor level, values that were never resolved.
type Getter[T any] func(raw string) (T, bool)

// parseScalar is the fallback scalar conversion, using fmt.Sscan. A string
// target short-circuits and takes the raw value whole, spaces included; any
// other target must be a single token.
func parseScalar[T any](raw string) (T, bool) {
	var v T
	if s, ok := any(&v).(*string); ok {
		*s = raw
		return v, true
	}
	if len(strings.Fields(raw)) != 1 {
		var zero T
		return zero, false
	}
	if n, err := fmt.Sscan(raw, &v); err != nil || n != 1 {
		var zero T
		return zero, false
	}
	return v, true
}

// Slice parses a MultiValue raw value into a []T: split on whitespace, each
// token parsed as T. Any token that fails to parse discards the whole
// result, never a partial slice.
func Slice[T any](raw string) ([]T, bool) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil, false
	}
	out := make([]T, 0, len(fields))
	for _, f := range fields {
		v, ok := parseScalar[T](f)
		if !ok {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}

// Dict parses a KeyValueList raw value into a map[K]V. Each chunk splits at
// its first colon; a chunk without one, or any key or value that fails to
// parse, discards the whole result.
func Dict[K comparable, V any](raw string) (map[K]V, bool) {
	chunks := strings.Fields(raw)
	if len(chunks) == 0 {
		return nil, false
	}
	out := make(map[K]V, len(chunks))
	for _, c := range chunks {
		ks, vs, found := strings.Cut(c, ":")
		if !found {
			return nil, false
		}
		k, ok := parseScalar[K](ks)
		if !ok {
			return nil, false
		}
		v, ok := parseScalar[V](vs)
		if !ok {
			return nil, false
		}
		out[k] = v
	}
	return out, true
}
