package util

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// SetupLogger sets the level and formatter of the standard logrus logger
// An empty level leaves the current level alone. A format of "json" switches to the JSON formatter.
func SetupLogger(level, format string) error {
	if level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return err
		}

		logrus.SetLevel(lvl)
	}

	if strings.ToLower(format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{})
	}

	return nil
}
