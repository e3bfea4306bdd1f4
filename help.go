package optargs

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/anacrolix/missinggo"
	"github.com/samber/lo"
)

// Soft width for help text. Lines break before the word that would cross it.
const helpWrapColumn = 60

// WriteHelp writes the usage summary and per-option help to w. Options are
// ordered by name so output is stable across calls.
func (p *Parser) WriteHelp(w io.Writer) {
	names := lo.Keys(p.specs)
	sort.Strings(names)

	fmt.Fprintf(w, "Usage: %s", p.program)
	for _, name := range names {
		ph := placeholder(p.specs[name])
		if ph == "" {
			fmt.Fprintf(w, " [--%s]", name)
		} else {
			fmt.Fprintf(w, " [--%s %s]", name, ph)
		}
	}
	fmt.Fprintln(w)
	if p.description != "" {
		fmt.Fprintf(w, "\n%s", missinggo.Unchomp(p.description))
	}
	fmt.Fprintf(w, "\nOptions:\n")
	tw := tabwriter.NewWriter(w, 8, 2, 3, ' ', 0)
	for _, name := range names {
		spec := p.specs[name]
		forms := "--" + name
		if spec.Short != 0 {
			forms += ", -" + string(spec.Short)
		}
		attrs := spec.Kind.String()
		if spec.Required {
			attrs += ", required"
		}
		lines := wrap(spec.Help, helpWrapColumn)
		if len(lines) == 0 {
			lines = []string{""}
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", forms, attrs, lines[0])
		for _, line := range lines[1:] {
			fmt.Fprintf(tw, "  \t\t%s\n", line)
		}
	}
	tw.Flush()
}

// placeholder is the value stand-in shown next to the flag in the usage
// line: the uppercased name for Value, uppercased name plus "..." for
// MultiValue, a literal k:v sketch for KeyValueList, nothing otherwise.
func placeholder(spec OptionSpec) string {
	switch spec.Kind.class {
	case kindValue:
		return strings.ToUpper(spec.Name)
	case kindMultiValue:
		return strings.ToUpper(spec.Name) + "..."
	case kindKeyValueList:
		return "k:v k2:v2..."
	default:
		return ""
	}
}

func wrap(s string, width int) (lines []string) {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	cur := words[0]
	for _, word := range words[1:] {
		if len(cur)+1+len(word) > width {
			lines = append(lines, cur)
			cur = word
			continue
		}
		cur += " " + word
	}
	return append(lines, cur)
}
