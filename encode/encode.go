// Package encode serializes a rout.Image as a plain word list or a JSON array.
//
// Both layouts list word values in ascending address order as unsigned
// decimal numbers. The plain layout is prefixed with the entry count:
//
//	2
//	1
//	2
//
// The JSON layout places one element per line and appends rout.Sentinel at
// the address one word past the highest entry:
//
//	[
//	1,
//	2,
//	3735928559
//	]
//
// Encoding never modifies the image it is given.
package encode

import (
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/rout"
	"github.com/wippyai/rout/errors"
)

// Terminate returns a copy of entries with the sentinel word appended one
// word past the last address. entries must be sorted by address.
func Terminate(entries []rout.Entry) ([]rout.Entry, error) {
	if len(entries) == 0 {
		return nil, errors.EmptyInput(errors.PhaseEncode, JSON.String())
	}

	last := entries[len(entries)-1].Addr
	if last > 0xFFFFFFFF-rout.WordSize {
		return nil, errors.Overflow(errors.PhaseEncode, 0, last, rout.WordSize)
	}

	out := make([]rout.Entry, len(entries), len(entries)+1)
	copy(out, entries)
	return append(out, rout.Entry{Addr: last + rout.WordSize, Value: rout.Sentinel}), nil
}

// Entries returns the sequence that format f serializes for img
func Entries(img rout.Image, f Format) ([]rout.Entry, error) {
	entries := img.Sorted()
	switch f {
	case Plain:
		return entries, nil
	case JSON:
		return Terminate(entries)
	default:
		return nil, errors.Unsupported(errors.PhaseEncode, f.String()+" output")
	}
}

// Render returns img serialized in format f
func Render(img rout.Image, f Format) (string, error) {
	entries, err := Entries(img, f)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	switch f {
	case Plain:
		writePlain(&b, entries)
	case JSON:
		writeJSON(&b, entries)
	}

	Logger().Debug("image rendered",
		zap.Stringer("format", f),
		zap.Int("entries", len(entries)),
		zap.Int("bytes", b.Len()))
	return b.String(), nil
}

// Encode writes img serialized in format f to w
func Encode(w io.Writer, img rout.Image, f Format) error {
	text, err := Render(img, f)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, text); err != nil {
		return errors.Wrap(errors.PhaseWrite, errors.KindIO, err, "write output")
	}
	return nil
}

func writePlain(b *strings.Builder, entries []rout.Entry) {
	b.WriteString(strconv.Itoa(len(entries)))
	b.WriteByte('\n')
	for _, e := range entries {
		b.WriteString(strconv.FormatUint(uint64(e.Value), 10))
		b.WriteByte('\n')
	}
}

func writeJSON(b *strings.Builder, entries []rout.Entry) {
	b.WriteString("[\n")
	for i, e := range entries {
		b.WriteString(strconv.FormatUint(uint64(e.Value), 10))
		if i < len(entries)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteByte(']')
}
