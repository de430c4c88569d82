// Package dump parses textual disassembly dumps into a rout.Image.
//
// A data line holds a hexadecimal base address followed by four 8-digit
// hexadecimal words, each separated by a single whitespace character:
//
//	1000 aabbccdd 11223344 55667788 99aabbcc
//
// The pattern is searched for anywhere in the line, so address prefixes such
// as "0x" and trailing columns (ASCII renderings, comments) are tolerated.
// Lines without a match are skipped.
package dump

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/wippyai/rout"
	"github.com/wippyai/rout/errors"
)

// maxLineSize bounds a single dump line.
const maxLineSize = 16 << 20

// ws matches one Unicode White_Space character.
const ws = `[\s\v\x{85}\p{Z}]`

var lineRegex = regexp.MustCompile(
	`([0-9a-fA-F]+)` + ws + `([0-9a-fA-F]{8})` + ws + `([0-9a-fA-F]{8})` + ws + `([0-9a-fA-F]{8})` + ws + `([0-9a-fA-F]{8})`,
)

// Stats describes a completed parse
type Stats struct {
	Lines   int // lines read
	Matched int // data lines
	Skipped int // lines without a match
}

// Parser converts dump text into an image.
// A Parser is not safe for concurrent use; Stats reflects the last run.
type Parser struct {
	stats Stats
}

// NewParser creates a parser
func NewParser() *Parser {
	return &Parser{}
}

// Stats returns counters for the most recent Parse call
func (p *Parser) Stats() Stats {
	return p.stats
}

// Parse reads r to the end and returns the words found on its data lines.
// Input must be valid UTF-8. A captured field that cannot be decoded aborts
// the parse with no result.
func (p *Parser) Parse(r io.Reader) (rout.Image, error) {
	p.stats = Stats{}
	img := make(rout.Image)

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseRead, errors.KindIO, err, "read dump")
	}
	if !utf8.Valid(data) {
		return nil, errors.New(errors.PhaseRead, errors.KindIO).
			Detail("dump is not valid UTF-8").
			Build()
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		p.stats.Lines++
		m := lineRegex.FindStringSubmatch(scanner.Text())
		if m == nil {
			p.stats.Skipped++
			continue
		}
		if err := parseLine(img, p.stats.Lines, m); err != nil {
			Logger().Debug("dump line rejected",
				zap.Int("line", p.stats.Lines),
				zap.Error(err))
			return nil, err
		}
		p.stats.Matched++
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.New(errors.PhaseRead, errors.KindIO).
			Line(p.stats.Lines + 1).
			Detail("scan dump").
			Cause(err).
			Build()
	}

	Logger().Debug("dump parsed",
		zap.Int("lines", p.stats.Lines),
		zap.Int("matched", p.stats.Matched),
		zap.Int("skipped", p.stats.Skipped),
		zap.Int("entries", img.Len()))
	if hi, ok := img.Max(); ok {
		Logger().Debug("highest address", zap.Uint32("addr", hi))
	}
	return img, nil
}

// parseLine stores the four words of one matched line.
// m holds the full match followed by the address and word captures.
func parseLine(img rout.Image, line int, m []string) error {
	base, err := strconv.ParseUint(m[1], 16, 32)
	if err != nil {
		return errors.MalformedField(line, "address", m[1], err)
	}

	const span = rout.WordSize * (rout.WordsPerLine - 1)
	if base > 0xFFFFFFFF-span {
		return errors.Overflow(errors.PhaseParse, line, uint32(base), span)
	}

	for i := 0; i < rout.WordsPerLine; i++ {
		word, err := strconv.ParseUint(m[2+i], 16, 32)
		if err != nil {
			return errors.MalformedField(line, "word "+strconv.Itoa(i), m[2+i], err)
		}
		img.Set(uint32(base)+uint32(rout.WordSize*i), uint32(word))
	}
	return nil
}

// Parse parses dump text from r
func Parse(r io.Reader) (rout.Image, error) {
	return NewParser().Parse(r)
}

// ParseString parses dump text held in memory
func ParseString(s string) (rout.Image, error) {
	return NewParser().Parse(strings.NewReader(s))
}

// ParseFile parses the dump stored at path
func ParseFile(path string) (rout.Image, error) {
	img, _, err := ParseFileStats(path)
	return img, err
}

// ParseFileStats parses the dump stored at path and reports parse counters.
func ParseFileStats(path string) (rout.Image, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, errors.IO(errors.PhaseRead, path, err)
	}
	defer f.Close()

	p := NewParser()
	img, err := p.Parse(f)
	if err != nil {
		if e, ok := err.(*errors.Error); ok && e.Path == "" {
			e.Path = path
		}
		return nil, p.Stats(), err
	}
	return img, p.Stats(), nil
}
