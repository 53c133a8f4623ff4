package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the shared log instance, set by Init. Packages that want
// scoped fields use Logger.WithField.
var Logger = logrus.New()

// Config controls log level, destination and rotation.
type Config struct {
	Level      string // debug, info, warn, error
	OutputFile string // optional; empty logs to stdout only
	MaxSize    int    // max size per log file in MB
	MaxBackups int    // rotated files to keep
	MaxAge     int    // days to keep rotated files
	Compress   bool   // gzip rotated files
}

// Init configures the shared logger. With an OutputFile set, output
// goes to stdout and a size-rotated file.
func Init(config Config) error {
	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}

	writers := []io.Writer{os.Stdout}
	if config.OutputFile != "" {
		if err := os.MkdirAll(filepath.Dir(config.OutputFile), 0755); err != nil {
			return err
		}
		writers = append(writers, &lumberjack.Logger{
			Filename:   config.OutputFile,
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		})
	}
	out := io.MultiWriter(writers...)

	formatter := &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "06-01-02 15:04:05",
	}

	Logger.SetLevel(level)
	Logger.SetOutput(out)
	Logger.SetFormatter(formatter)

	// Mirror onto the global logrus logger so packages that log via
	// logrus.WithField end up in the same destinations.
	logrus.SetLevel(level)
	logrus.SetOutput(out)
	logrus.SetFormatter(formatter)
	return nil
}
