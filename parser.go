package optargs

import "strings"

// resolved is the per-option working state for one Parse call.
type resolved struct {
	spec  OptionSpec
	value *string
	count int
}

// Parse resolves argv, whose first element is conventionally the program
// name, against the declared options. The live registry is never mutated;
// matches land in a working copy seeded with the declared defaults, and
// that copy becomes the returned Outcome. Flag options resolve first, then
// positionals over whatever tokens the flags did not consume, then required
// options are validated. Any failure aborts the parse with no Outcome.
func (p *Parser) Parse(argv []string) (*Outcome, error) {
	if len(p.specs) == 0 {
		return nil, ErrNoOptions
	}
	args := separateFlags(argv)

	// Consumption is tracked by token position, not value, so duplicate
	// token values are each independently consumable.
	consumed := make([]bool, len(args))

	work := make(map[string]*resolved, len(p.specs))
	for name, spec := range p.specs {
		r := &resolved{spec: spec}
		if spec.Default != nil {
			v := *spec.Default
			r.value = &v
		}
		work[name] = r
	}

	for name, r := range work {
		long := "--" + name
		short := ""
		if r.spec.Short != 0 {
			short = "-" + string(r.spec.Short)
		}
		i := -1
		for tok, rest := range Slide(args) {
			i++
			if tok != long && (short == "" || tok != short) {
				continue
			}
			r.count++
			consumed[i] = true
			switch r.spec.Kind.class {
			case kindSwitch:
				v := "true"
				r.value = &v
			case kindValue:
				if len(rest) == 0 || isFlagToken(rest[0]) {
					return nil, MissingValueError{Option: name}
				}
				v := rest[0]
				r.value = &v
				consumed[i+1] = true
			case kindMultiValue, kindKeyValueList:
				if rest == nil {
					return nil, MissingValueError{Option: name}
				}
				n := 0
				for n < len(rest) && !isFlagToken(rest[n]) {
					consumed[i+1+n] = true
					n++
				}
				v := strings.Join(rest[:n], " ")
				r.value = &v
			case kindPositional:
				// The flag token is consumed and counted, but positional
				// values only ever come from stream position.
			}
		}
	}

	for _, r := range work {
		if r.spec.Kind.class != kindPositional || r.value != nil {
			continue
		}
		pos := 0
		for i, tok := range args {
			if i == 0 || consumed[i] {
				continue
			}
			if pos == r.spec.Kind.pos {
				v := tok
				r.value = &v
				break
			}
			pos++
		}
	}

	for _, r := range work {
		if r.spec.Required && r.value == nil {
			return nil, ErrMissingRequired
		}
	}

	out := &Outcome{program: p.program, args: work}
	if p.debug != nil {
		out.dump(p.debug)
	}
	return out, nil
}
