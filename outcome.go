package optargs

import (
	"fmt"
	"io"
)

// Outcome is the immutable result of a successful parse. It owns a snapshot
// of the specs taken when Parse ran; mutating the registry afterwards does
// not affect it.
type Outcome struct {
	program string
	args    map[string]*resolved
}

// Raw returns the resolved raw text for name: the matched token(s), the
// positional token, or the declared default. False for unknown names and
// options that resolved nothing.
func (o *Outcome) Raw(name string) (string, bool) {
	r, ok := o.args[name]
	if !ok || r.value == nil {
		return "", false
	}
	return *r.value, true
}

// Count returns how many times the option's flag matched. An option that
// resolved from its default or from stream position alone counts zero, so
// callers can tell an explicitly passed value from a defaulted one.
func (o *Outcome) Count(name string) int {
	r, ok := o.args[name]
	if !ok {
		return 0
	}
	return r.count
}

func (o *Outcome) dump(w io.Writer) {
	for name, r := range o.args {
		if r.value == nil {
			fmt.Fprintf(w, "%s:<none>\n", name)
			continue
		}
		fmt.Fprintf(w, "%s:%q\n", name, *r.value)
	}
}

// Get converts the resolved raw value for name with the target type's
// standard textual parse. Unknown names, unresolved values and conversion
// failures all read as absent; callers cannot tell them apart.
func Get[T any](o *Outcome, name string) (T, bool) {
	raw, ok := o.Raw(name)
	if !ok {
		var zero T
		return zero, false
	}
	return parseScalar[T](raw)
}

// GetWith converts the resolved raw value for name with the supplied
// Getter. This is the path for aggregate kinds; see Slice and Dict.
func GetWith[T any](o *Outcome, name string, get Getter[T]) (T, bool) {
	raw, ok := o.Raw(name)
	if !ok {
		var zero T
		return zero, false
	}
	return get(raw)
}
