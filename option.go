package optargs

import "io"

// Kind classifies how an option claims tokens from the stream.
type Kind struct {
	class kindClass
	pos   int
}

type kindClass int

const (
	kindValue kindClass = iota
	kindSwitch
	kindMultiValue
	kindKeyValueList
	kindPositional
)

var (
	// Value consumes exactly one token after its flag.
	Value = Kind{class: kindValue}
	// Switch consumes no further tokens and resolves to "true" when present.
	Switch = Kind{class: kindSwitch}
	// MultiValue consumes a run of tokens up to the next flag or end of input.
	MultiValue = Kind{class: kindMultiValue}
	// KeyValueList is a MultiValue whose tokens are colon-split k:v pairs.
	KeyValueList = Kind{class: kindKeyValueList}
)

// Positional is the kind for an option whose value comes from stream
// position rather than a flag. index is 0-based and counted over tokens no
// flag option consumed, skipping the program name.
func Positional(index int) Kind {
	return Kind{class: kindPositional, pos: index}
}

func (k Kind) String() string {
	switch k.class {
	case kindValue:
		return "Value"
	case kindSwitch:
		return "Switch"
	case kindMultiValue:
		return "MultiValue"
	case kindKeyValueList:
		return "KeyValueList"
	default:
		return "Positional"
	}
}

// OptionSpec describes one declared option.
type OptionSpec struct {
	Name     string
	Default  *string
	Short    rune
	Required bool
	Help     string
	Kind     Kind
}

// Default wraps a literal for the Declare default argument.
func Default(s string) *string {
	return &s
}

// Parser is a registry of option specs. The zero value is not usable; use
// New. A Parser may be used from one goroutine at a time.
type Parser struct {
	program     string
	description string
	noHelp      bool
	debug       io.Writer
	specs       map[string]OptionSpec
}

// Opt configures a Parser at construction.
type Opt func(*Parser)

// Description sets text rendered between the usage line and the option help.
func Description(s string) Opt {
	return func(p *Parser) {
		p.description = s
	}
}

// NoDefaultHelp suppresses the built-in help switch.
func NoDefaultHelp() Opt {
	return func(p *Parser) {
		p.noHelp = true
	}
}

// Debug makes every successful Parse dump the resolved values to w.
func Debug(w io.Writer) Opt {
	return func(p *Parser) {
		p.debug = w
	}
}

// New returns a Parser for the named program. Unless NoDefaultHelp is
// given, a "help" switch with short flag 'h' is declared up front.
func New(program string, opts ...Opt) *Parser {
	p := &Parser{
		program: program,
		specs:   make(map[string]OptionSpec),
	}
	for _, opt := range opts {
		opt(p)
	}
	if !p.noHelp {
		p.Declare("help", Default("false"), 'h', false, "Show this help message", Switch)
	}
	return p
}

// Declare adds an option, overwriting any existing spec under the same
// name. Neither names nor short flags are checked against other specs; on a
// name collision the last declaration wins.
func (p *Parser) Declare(name string, def *string, short rune, required bool, help string, kind Kind) {
	p.specs[name] = OptionSpec{
		Name:     name,
		Default:  def,
		Short:    short,
		Required: required,
		Help:     help,
		Kind:     kind,
	}
}

// Remove deletes a declared option by name.
func (p *Parser) Remove(name string) error {
	if _, ok := p.specs[name]; !ok {
		return UnknownOptionError{Name: name}
	}
	delete(p.specs, name)
	return nil
}
