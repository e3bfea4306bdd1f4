package optargs

import "github.com/dustin/go-humanize"

// Bytes is a convenience target type for byte quantities given in human
// readable form, like 100GB. Use with GetWith and ParseBytes.
type Bytes int64

var _ Getter[Bytes] = ParseBytes

// ParseBytes is a Getter for Bytes.
func ParseBytes(raw string) (Bytes, bool) {
	ui64, err := humanize.ParseBytes(raw)
	if err != nil {
		return 0, false
	}
	return Bytes(ui64), true
}

func (b Bytes) Int64() int64 {
	return int64(b)
}

func (b Bytes) String() string {
	return humanize.Bytes(uint64(b))
}
