// Package optargs parses command-line arguments against a declarative
// registry of options.
//
// Options are declared by name with an optional default, a short flag, a
// required marker, help text and a kind that controls how many tokens the
// option claims from the stream:
//
//	p := optargs.New("runner")
//	p.Declare("verbose", optargs.Default("false"), 'v', false,
//		"produce verbose output", optargs.Switch)
//	p.Declare("frequencies", nil, 'f', false,
//		"favorite frequencies", optargs.MultiValue)
//
//	res, err := p.Parse(os.Args)
//	if err != nil {
//		// ...
//	}
//	verbose, _ := optargs.Get[bool](res, "verbose")
//	freqs, _ := optargs.GetWith(res, "frequencies", optargs.Slice[int])
//
// The first element of the argument slice is taken to be the program name.
// Bundled short flags like -xyz are split into -x -y -z before matching.
// Parse never mutates the parser, so the same registry can be reused for
// any number of argument streams; each call returns a fresh Outcome.
//
// Options can also be declared from a tagged struct, see DeclareStruct.
package optargs
