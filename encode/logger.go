package encode

import "go.uber.org/zap"

var logger = zap.NewNop()

// Logger returns the logger that receives render and write events
func Logger() *zap.Logger {
	return logger
}

// SetLogger routes encoder events to l. A nil l restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
