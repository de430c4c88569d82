package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/wippyai/rout/errors"
)

var diagStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FF6B6B"))

// newLogger logs to w at debug level when verbose, otherwise warnings only.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level))
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// diagnostic formats a fatal error for stderr
func diagnostic(err error, color bool) string {
	msg := "rout: " + err.Error()

	var e *errors.Error
	if errors.As(err, &e) && e.Kind == errors.KindInvalidInput {
		msg += " (see -h)"
	}
	if color {
		return diagStyle.Render(msg)
	}
	return msg
}
