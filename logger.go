package heightbrush

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// loggerPtr stores the active logger. It is swapped atomically so SetLogger
// can be called while operations are running on other images.
var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// SetLogger configures the logger used by the package.
// By default nothing is logged. Pass nil to restore the silent logger.
//
// Only debug level diagnostics are emitted, e.g. when a brush falls
// completely outside of the target image and the operation is skipped.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *zap.Logger {
	return loggerPtr.Load()
}
