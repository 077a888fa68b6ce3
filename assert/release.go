//go:build !debug

package assert

import "go.uber.org/zap"

// Enabled reports whether failed invariants panic.
const Enabled = false

func fail(msg string, fields []zap.Field) {
	zap.L().Warn("invariant violated: "+msg, fields...)
}
