package encode

import "fmt"

// Format selects the output layout
type Format int

const (
	// Plain is a decimal entry count followed by one decimal word per line.
	Plain Format = iota
	// JSON is a bracketed array of decimal words ending with rout.Sentinel.
	JSON
)

func (f Format) String() string {
	switch f {
	case Plain:
		return "plain"
	case JSON:
		return "json"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}
