package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/sirupsen/logrus"
)

const logDir = "logs"

var serverTypePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

type Options struct {
	ServerType string
	Level      string
	Dir        string
	Console    io.Writer
}

// NewLogger returns a JSON logger writing to logs/<serverType>.log and the
// console. The returned closer flushes the file writer.
func NewLogger(serverType string) (*logrus.Logger, io.Closer, error) {
	return New(Options{
		ServerType: serverType,
		Level:      os.Getenv("LOG_LEVEL"),
		Dir:        logDir,
		Console:    os.Stdout,
	})
}

func New(opts Options) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})
	logger.SetLevel(parseLevel(opts.Level))

	if !serverTypePattern.MatchString(opts.ServerType) {
		return nil, nil, fmt.Errorf("invalid server type for log file: %q", opts.ServerType)
	}
	if err := os.MkdirAll(opts.Dir, 0750); err != nil {
		return nil, nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	writer, err := NewAsyncFileWriter(filepath.Join(opts.Dir, opts.ServerType+".log"), 32*1024)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize async log writer: %w", err)
	}
	logger.SetOutput(writer)

	if opts.Console != nil {
		logger.AddHook(NewConsoleHook(opts.Console))
	}
	return logger, writer, nil
}

func parseLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}
