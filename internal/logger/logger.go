package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

const DefaultLevel = logrus.WarnLevel

// New returns a text logger writing to out. An empty level means warn;
// verbose forces debug regardless of level.
func New(out io.Writer, level string, verbose bool) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableQuote:     true,
	})

	parsed := DefaultLevel
	if level = strings.TrimSpace(level); level != "" {
		var err error
		parsed, err = logrus.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
	}
	if verbose {
		parsed = logrus.DebugLevel
	}
	log.SetLevel(parsed)

	return log, nil
}
