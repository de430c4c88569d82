package dump

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wippyai/rout"
	"github.com/wippyai/rout/errors"
)

func TestParse_Lines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  rout.Image
	}{
		{
			name:  "single data line",
			input: "1000 AABBCCDD 11223344 55667788 99AABBCC",
			want: rout.Image{
				0x1000: 0xAABBCCDD,
				0x1004: 0x11223344,
				0x1008: 0x55667788,
				0x100C: 0x99AABBCC,
			},
		},
		{
			name:  "lowercase digits",
			input: "ff00 deadbeef 00000001 0000cafe 7fffffff",
			want: rout.Image{
				0xFF00: 0xDEADBEEF,
				0xFF04: 0x00000001,
				0xFF08: 0x0000CAFE,
				0xFF0C: 0x7FFFFFFF,
			},
		},
		{
			name:  "prefixed address and trailing columns",
			input: "0x00400000 3c1c0042 279c8010 0399e021 27bdffe0  <.B.'...>",
			want: rout.Image{
				0x400000: 0x3C1C0042,
				0x400004: 0x279C8010,
				0x400008: 0x0399E021,
				0x40000C: 0x27BDFFE0,
			},
		},
		{
			name:  "tab separated",
			input: "20\t00000001\t00000002\t00000003\t00000004",
			want:  rout.Image{0x20: 1, 0x24: 2, 0x28: 3, 0x2C: 4},
		},
		{
			name:  "no-break space separated",
			input: "1000\u00a000000001 00000002 00000003 00000004",
			want:  rout.Image{0x1000: 1, 0x1004: 2, 0x1008: 3, 0x100C: 4},
		},
		{
			name:  "vertical tab and next line separated",
			input: "40\v00000001\u008500000002\u200300000003\u300000000004",
			want:  rout.Image{0x40: 1, 0x44: 2, 0x48: 3, 0x4C: 4},
		},
		{
			name:  "header line",
			input: "this is a header",
			want:  rout.Image{},
		},
		{
			name:  "three words",
			input: "1000 AABBCCDD 11223344 55667788",
			want:  rout.Image{},
		},
		{
			name:  "double space after address",
			input: "1000  AABBCCDD 11223344 55667788 99AABBCC",
			want:  rout.Image{},
		},
		{
			name:  "colon after address",
			input: "1000: AABBCCDD 11223344 55667788 99AABBCC",
			want:  rout.Image{},
		},
		{
			name:  "short word",
			input: "1000 AABBCCD 11223344 55667788 99AABBCC",
			want:  rout.Image{},
		},
		{
			name:  "blank",
			input: "",
			want:  rout.Image{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseString(tt.input)
			if err != nil {
				t.Fatalf("ParseString: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParse_LastWriteWins(t *testing.T) {
	input := strings.Join([]string{
		"1000 00000001 00000002 00000003 00000004",
		"1008 0000000A 0000000B 0000000C 0000000D",
	}, "\n")

	img, err := ParseString(input)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}

	want := rout.Image{
		0x1000: 0x1,
		0x1004: 0x2,
		0x1008: 0xA,
		0x100C: 0xB,
		0x1010: 0xC,
		0x1014: 0xD,
	}
	if !img.Equal(want) {
		t.Errorf("got %v, want %v", img, want)
	}
}

func TestParse_MixedContent(t *testing.T) {
	input := "Contents of section .text:\r\n" +
		"\r\n" +
		"2000 00000005 00000006 00000007 00000008\r\n" +
		"garbage 1234\r\n" +
		"1000 00000001 00000002 00000003 00000004\r\n"

	p := NewParser()
	img, err := p.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if img.Len() != 8 {
		t.Errorf("Len = %d, want 8", img.Len())
	}
	if img[0x200C] != 8 {
		t.Errorf("img[0x200c] = %d, want 8", img[0x200C])
	}

	stats := p.Stats()
	if stats.Lines != 5 || stats.Matched != 2 || stats.Skipped != 3 {
		t.Errorf("Stats = %+v, want {Lines:5 Matched:2 Skipped:3}", stats)
	}
}

func TestParse_Idempotent(t *testing.T) {
	input := "3000 00000001 00000002 00000003 00000004\n1000 0000000A 0000000B 0000000C 0000000D\n"

	first, err := ParseString(input)
	if err != nil {
		t.Fatalf("first parse: %v", err)
	}
	second, err := ParseString(input)
	if err != nil {
		t.Fatalf("second parse: %v", err)
	}
	if !first.Equal(second) {
		t.Errorf("parses differ: %v vs %v", first, second)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  errors.Kind
		line  int
	}{
		{
			name:  "address wider than 32 bits",
			input: "header\n123456789 00000000 00000000 00000000 00000000\n",
			kind:  errors.KindMalformedField,
			line:  2,
		},
		{
			name:  "word addresses wrap",
			input: "FFFFFFFC 00000000 00000000 00000000 00000000\n",
			kind:  errors.KindOverflow,
			line:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := ParseString(tt.input)
			if err == nil {
				t.Fatalf("expected error, got image %v", img)
			}
			if img != nil {
				t.Errorf("expected no partial image, got %v", img)
			}
			if !errors.Is(err, &errors.Error{Phase: errors.PhaseParse, Kind: tt.kind}) {
				t.Fatalf("err = %v, want parse/%s", err, tt.kind)
			}
			if e := err.(*errors.Error); e.Line != tt.line {
				t.Errorf("Line = %d, want %d", e.Line, tt.line)
			}
		})
	}
}

func TestParse_InvalidUTF8(t *testing.T) {
	img, err := ParseString("\xff\xfe header\n1000 00000001 00000002 00000003 00000004\n")
	if err == nil {
		t.Fatalf("expected error, got image %v", img)
	}
	if img != nil {
		t.Errorf("expected no partial image, got %v", img)
	}
	if !errors.Is(err, &errors.Error{Phase: errors.PhaseRead, Kind: errors.KindIO}) {
		t.Fatalf("err = %v, want read/io", err)
	}
}

func TestParse_HighestAlignedBase(t *testing.T) {
	img, err := ParseString("FFFFFFF0 00000001 00000002 00000003 00000004")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if img[0xFFFFFFFC] != 4 {
		t.Errorf("img[0xfffffffc] = %d, want 4", img[0xFFFFFFFC])
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("ok", func(t *testing.T) {
		path := filepath.Join(dir, "ok.dump")
		if err := os.WriteFile(path, []byte("0 00000001 00000002 00000003 00000004\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		img, stats, err := ParseFileStats(path)
		if err != nil {
			t.Fatalf("ParseFileStats: %v", err)
		}
		if img.Len() != 4 || stats.Matched != 1 {
			t.Errorf("Len = %d, Matched = %d; want 4, 1", img.Len(), stats.Matched)
		}
	})

	t.Run("missing", func(t *testing.T) {
		_, err := ParseFile(filepath.Join(dir, "missing.dump"))
		if !errors.Is(err, &errors.Error{Phase: errors.PhaseRead, Kind: errors.KindIO}) {
			t.Fatalf("err = %v, want read/io", err)
		}
		if !os.IsNotExist(err.(*errors.Error).Cause) {
			t.Errorf("cause = %v, want not-exist", err.(*errors.Error).Cause)
		}
	})

	t.Run("malformed carries path", func(t *testing.T) {
		path := filepath.Join(dir, "bad.dump")
		if err := os.WriteFile(path, []byte("100000000 00000000 00000000 00000000 00000000\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := ParseFile(path)
		if err == nil {
			t.Fatal("expected error")
		}
		if e := err.(*errors.Error); e.Path != path {
			t.Errorf("Path = %q, want %q", e.Path, path)
		}
	})
}
