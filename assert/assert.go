// Package assert reports programmer errors. Builds tagged debug panic on a
// failed invariant; release builds log a warning and let the caller skip
// the offending entity.
package assert

import "go.uber.org/zap"

// Invariant reports whether cond holds. When it does not, the failure is
// raised according to the build mode and false is returned.
func Invariant(cond bool, msg string, fields ...zap.Field) bool {
	if cond {
		return true
	}
	fail(msg, fields)
	return false
}
