package optargs

import (
	"unicode"
	"unicode/utf8"
)

// isLongFlag reports whether s is a --style flag. A bare "--" is an
// ordinary token.
func isLongFlag(s string) bool {
	return len(s) >= 3 && s[0] == '-' && s[1] == '-'
}

// isShortFlag reports whether s is a -x style flag. The character after the
// dash must be alphabetic, so negative numbers like -60 are not flags.
func isShortFlag(s string) bool {
	if len(s) < 2 || s[0] != '-' {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[1:])
	return unicode.IsLetter(r)
}

func isFlagToken(s string) bool {
	return isShortFlag(s) || isLongFlag(s)
}

// separateFlags rewrites argv so that bundled short flags are individually
// addressable: "-xyz" becomes "-x" "-y" "-z". Long flags and ordinary
// tokens pass through untouched, and relative order is preserved.
func separateFlags(argv []string) []string {
	out := make([]string, 0, len(argv))
	for _, tok := range argv {
		switch {
		case isLongFlag(tok):
			out = append(out, tok)
		case isShortFlag(tok):
			if len(tok) == 2 {
				out = append(out, tok)
				continue
			}
			for _, c := range tok[1:] {
				out = append(out, "-"+string(c))
			}
		default:
			out = append(out, tok)
		}
	}
	return out
}
