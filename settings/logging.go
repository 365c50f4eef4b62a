package settings

import "github.com/animakit/animaconf/logger"

// log receives the resolver's diagnostic trace. Swap it with SetLogger.
var log = logger.NewLogger("settings")

// SetLogger replaces the logger used for the package's diagnostic trace.
// Pass the result of [logger.Nop] to silence it. A nil logger is ignored.
func SetLogger(l *logger.Logger) {
	if l != nil {
		log = l
	}
}
