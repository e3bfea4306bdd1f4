package optargs

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/bradfitz/iter"
	"github.com/huandu/xstrings"
	"golang.org/x/xerrors"
)

// DeclareStruct declares one option per exported field of the struct
// pointed to by v. The long name derives from the field name (NoUpload
// becomes no-upload) unless a name tag overrides it. Tags:
//
//	Verbose bool   `short:"v" help:"produce verbose output"`
//	Length  int    `required:"true"`
//	Files   []string                      // MultiValue
//	Socks   map[string]bool               // KeyValueList
//	Input   string `pos:"0"`              // Positional
//
// bool fields become Switch options defaulting to "false", slices
// MultiValue, maps KeyValueList and anything else Value. A default tag
// seeds the declared default. Declarations land in the registry exactly as
// if made through Declare, overwriting same-named entries.
func DeclareStruct(p *Parser, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return xerrors.Errorf("declare struct: want pointer to struct, got %T", v)
	}
	st := rv.Elem().Type()
	for i := range iter.N(st.NumField()) {
		sf := st.Field(i)
		if sf.PkgPath != "" {
			continue
		}
		spec, err := fieldSpec(sf)
		if err != nil {
			return xerrors.Errorf("declare struct field %s: %w", sf.Name, err)
		}
		p.Declare(spec.Name, spec.Default, spec.Short, spec.Required, spec.Help, spec.Kind)
	}
	return nil
}

func fieldSpec(sf reflect.StructField) (spec OptionSpec, err error) {
	spec.Name = sf.Tag.Get("name")
	if spec.Name == "" {
		spec.Name = fieldFlagName(sf.Name)
	}
	spec.Help = sf.Tag.Get("help")
	if s := sf.Tag.Get("short"); s != "" {
		r := []rune(s)
		if len(r) != 1 {
			return OptionSpec{}, xerrors.Errorf("bad short tag %q", s)
		}
		spec.Short = r[0]
	}
	if s := sf.Tag.Get("required"); s != "" {
		spec.Required, err = strconv.ParseBool(s)
		if err != nil {
			return OptionSpec{}, xerrors.Errorf("bad required tag %q: %w", s, err)
		}
	}
	if s, ok := sf.Tag.Lookup("default"); ok {
		spec.Default = Default(s)
	}
	switch {
	case sf.Tag.Get("pos") != "":
		idx, err := strconv.Atoi(sf.Tag.Get("pos"))
		if err != nil {
			return OptionSpec{}, xerrors.Errorf("bad pos tag %q: %w", sf.Tag.Get("pos"), err)
		}
		spec.Kind = Positional(idx)
	case sf.Type.Kind() == reflect.Bool:
		spec.Kind = Switch
		if spec.Default == nil {
			spec.Default = Default("false")
		}
	case sf.Type.Kind() == reflect.Slice:
		spec.Kind = MultiValue
	case sf.Type.Kind() == reflect.Map:
		spec.Kind = KeyValueList
	default:
		spec.Kind = Value
	}
	return spec, nil
}

// Turn a struct field name into a long flag name: NoUpload -> no-upload.
func fieldFlagName(fieldName string) string {
	return strings.ReplaceAll(xstrings.ToSnakeCase(fieldName), "_", "-")
}
