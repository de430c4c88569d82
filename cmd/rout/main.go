package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/wippyai/rout/dump"
	"github.com/wippyai/rout/encode"
	"github.com/wippyai/rout/errors"
)

var version = "1.0"

type options struct {
	inFile  string
	outFile string
	json    bool
	verbose bool
	preview bool
	version bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, diagnostic(err, isTerminal(os.Stderr)))
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	var o options

	fs := flag.NewFlagSet("rout", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.inFile, "infile", "", "Path of input dump file (required)")
	fs.StringVar(&o.inFile, "i", "", "Shorthand for -infile")
	fs.StringVar(&o.outFile, "outfile", "", "Path of output file (default stdout)")
	fs.StringVar(&o.outFile, "o", "", "Shorthand for -outfile")
	fs.BoolVar(&o.json, "json", false, "Output a JSON list terminated by 0xdeadbeef")
	fs.BoolVar(&o.json, "j", false, "Shorthand for -json")
	fs.BoolVar(&o.verbose, "verbose", false, "Log progress to stderr")
	fs.BoolVar(&o.verbose, "v", false, "Shorthand for -verbose")
	fs.BoolVar(&o.preview, "preview", false, "Browse the output words in the terminal instead of writing them")
	fs.BoolVar(&o.preview, "p", false, "Shorthand for -preview")
	fs.BoolVar(&o.version, "version", false, "Print version and exit")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: rout -i <dump file> [-o <output file>] [-j] [-p] [-v]")
		fmt.Fprintln(stderr, "Takes in a dump file and outputs the file in .rout format.")
		fmt.Fprintln(stderr)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return nil, errors.InvalidInput(errors.PhaseConfig, fmt.Sprintf("unexpected argument %q", fs.Arg(0)))
	}
	if o.inFile == "" && !o.version {
		fs.Usage()
		return nil, errors.InvalidInput(errors.PhaseConfig, "-infile is required")
	}
	return &o, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if opts.version {
		fmt.Fprintf(stdout, "rout %s\n", version)
		return nil
	}

	log := newLogger(stderr, opts.verbose)
	defer func() { _ = log.Sync() }()
	dump.SetLogger(log.Named("dump"))
	encode.SetLogger(log.Named("encode"))

	if err := convert(log, opts, stdout); err != nil {
		log.Debug("conversion failed",
			zap.String("infile", opts.inFile),
			zap.Error(err))
		return err
	}
	return nil
}

func convert(log *zap.Logger, opts *options, stdout io.Writer) error {
	format := encode.Plain
	if opts.json {
		format = encode.JSON
	}

	img, stats, err := dump.ParseFileStats(opts.inFile)
	if err != nil {
		return err
	}
	log.Debug("dump loaded",
		zap.String("infile", opts.inFile),
		zap.Int("data_lines", stats.Matched),
		zap.Int("skipped_lines", stats.Skipped),
		zap.Int("words", img.Len()))

	if opts.preview {
		entries, err := encode.Entries(img, format)
		if err != nil {
			return err
		}
		return runPreview(opts.inFile, format, entries)
	}

	if err := encode.Emit(img, format, opts.outFile, stdout); err != nil {
		return err
	}
	if opts.outFile != "" {
		log.Info("output written",
			zap.String("outfile", opts.outFile),
			zap.Stringer("format", format))
	}
	return nil
}
