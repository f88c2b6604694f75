package monitoring

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// ConfigureLogging sets up the standard logrus logger for a command.
func ConfigureLogging(level log.Level, out io.Writer) {
	log.SetOutput(out)
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}
