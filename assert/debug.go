//go:build debug

package assert

import (
	"fmt"

	"go.uber.org/zap"
)

// Enabled reports whether failed invariants panic.
const Enabled = true

func fail(msg string, fields []zap.Field) {
	zap.L().Error("invariant violated: "+msg, fields...)
	panic(fmt.Sprintf("invariant violated: %s", msg))
}
