package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const logFileName = "tino.log"

// New returns a logger that discards everything unless debug is set, in which case
// entries are appended to tino.log next to the config file. The TUI owns the terminal,
// so nothing is ever written to stdout or stderr.
func New(debug bool, configPath string) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if !debug {
		log.SetOutput(io.Discard)
		return log, io.NopCloser(nil), nil
	}

	path := filepath.Join(filepath.Dir(configPath), logFileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	log.SetOutput(f)
	log.SetLevel(logrus.DebugLevel)

	return log, f, nil
}
