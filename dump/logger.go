package dump

import "go.uber.org/zap"

var logger = zap.NewNop()

// Logger returns the logger that receives parse diagnostics.
func Logger() *zap.Logger {
	return logger
}

// SetLogger routes parse diagnostics to l; nil silences them.
// Call it before parsing starts.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
