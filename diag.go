package shape

import (
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// diagLogger holds the logger used for advisory diagnostics. Stored through
// an atomic so SetDiagLogger is safe against concurrent Check calls.
var diagLogger atomic.Pointer[zerolog.Logger]

func init() {
	l := zerolog.New(os.Stderr).Level(zerolog.DebugLevel)
	diagLogger.Store(&l)
}

// SetDiagLogger replaces the logger used for advisory diagnostics. Pass
// zerolog.Nop() to silence them. Diagnostics never influence a Check verdict;
// callers must not parse the emitted text.
func SetDiagLogger(l zerolog.Logger) {
	diagLogger.Store(&l)
}

// Diagf emits one advisory diagnostic line attributed to the named shape.
// It is the hook used by shape implementations (exported for subpackages).
func Diagf(shapeName string, format string, args ...any) {
	diagLogger.Load().Debug().Str("shape", shapeName).Msgf(format, args...)
}
