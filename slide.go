package optargs

import "iter"

// Slide yields every token of tokens paired with the remainder strictly
// after it. The remainder is nil for the last token, and otherwise shares
// backing storage with tokens. The sequence is restartable: ranging over it
// again replays identical pairs.
func Slide(tokens []string) iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		for i, tok := range tokens {
			var rest []string
			if i+1 < len(tokens) {
				rest = tokens[i+1:]
			}
			if !yield(tok, rest) {
				return
			}
		}
	}
}
