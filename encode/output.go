package encode

import (
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/wippyai/rout"
	"github.com/wippyai/rout/errors"
)

// WriteFile writes text to path exactly, creating or truncating the file.
func WriteFile(path, text string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.IO(errors.PhaseWrite, path, err)
	}
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return errors.IO(errors.PhaseWrite, path, err)
	}
	if err := f.Close(); err != nil {
		return errors.IO(errors.PhaseWrite, path, err)
	}

	Logger().Debug("output written",
		zap.String("path", path),
		zap.Int("bytes", len(text)))
	return nil
}

// WriteStdout writes text followed by a newline to w
func WriteStdout(w io.Writer, text string) error {
	if _, err := io.WriteString(w, text+"\n"); err != nil {
		return errors.Wrap(errors.PhaseWrite, errors.KindIO, err, "write stdout")
	}
	return nil
}

// Emit renders img in format f and delivers it to outPath, or to stdout
// when outPath is empty. Nothing is written if rendering fails.
func Emit(img rout.Image, f Format, outPath string, stdout io.Writer) error {
	text, err := Render(img, f)
	if err != nil {
		return err
	}
	if outPath != "" {
		return WriteFile(outPath, text)
	}
	return WriteStdout(stdout, text)
}
