package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide structured logger.
var Log *logrus.Logger

// init keeps Log usable in tests and tools that never call InitLogger.
func init() {
	InitLogger("info")
}

// InitLogger configures Log with a JSON formatter on stdout at the given level.
// Unknown levels fall back to info.
func InitLogger(level string) {
	Log = logrus.New()
	Log.SetFormatter(&logrus.JSONFormatter{})
	Log.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)
}
