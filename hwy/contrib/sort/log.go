package sort

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logger receives non-fatal diagnostics such as length shortfalls.
// It discards everything until SetLogger is called.
var logger = zap.NewNop()

// SetLogger sets the logger used for sort diagnostics. A nil logger restores
// the default, which discards everything. It must not be called concurrently
// with Sort.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l.Named("sort")
}

// reportShortfall logs the shortfall of a slice of length n, if any, at the
// given level. The plan is only computed when the level is enabled.
func reportShortfall(level zapcore.Level, msg string, n int) {
	if !logger.Core().Enabled(level) {
		return
	}
	p := PlanFor(n)
	err := p.Shortfall()
	if err == nil {
		return
	}
	if ce := logger.Check(level, msg); ce != nil {
		ce.Write(
			zap.Int("len", p.Len),
			zap.Int("vectorizable", p.Vectorizable),
			zap.Int("remainder", p.Remainder),
			zap.Int("tail", p.Tail),
			zap.Error(err),
		)
	}
}
