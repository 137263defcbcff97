// Package logger wraps go-logging with a stderr backend and a file backend.
// The file backend always records at DEBUG so security events survive a
// restrictive console level.
package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/op/go-logging"
)

const (
	logFileName = "evolvo.log"
	timeFormat  = "2006/01/02 15:04:05"
)

var (
	logger  *logging.Logger
	logFile *os.File
)

// InitLogger sets up the console backend at the given level and, when the
// log folder is usable, a DEBUG-level file backend next to it.
func InitLogger(level logging.Level, logFolder string) {
	newLogger := logging.MustGetLogger("evolvo")
	backends := make([]logging.Backend, 0, 2)

	console := logging.NewBackendFormatter(
		logging.NewLogBackend(os.Stderr, "", 0),
		newFormatter(true),
	)
	leveled := logging.AddModuleLevel(console)
	leveled.SetLevel(level, "evolvo")
	backends = append(backends, leveled)

	if fileBackend := initFileBackend(logFolder); fileBackend != nil {
		fileLeveled := logging.AddModuleLevel(fileBackend)
		fileLeveled.SetLevel(logging.DEBUG, "evolvo")
		backends = append(backends, fileLeveled)
	}

	newLogger.SetBackend(logging.MultiLogger(backends...))
	logger = newLogger
}

func initFileBackend(logFolder string) logging.Backend {
	if err := os.MkdirAll(logFolder, 0o750); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create log folder %s: %v\n", logFolder, err)
		return nil
	}

	logPath := filepath.Join(logFolder, logFileName)
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o660)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file %s: %v\n", logPath, err)
		return nil
	}

	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = file

	return logging.NewBackendFormatter(logging.NewLogBackend(file, "", 0), newFormatter(true))
}

func newFormatter(withTime bool) logging.Formatter {
	format := `%{level} - %{message}`
	if withTime {
		format = `%{time:` + timeFormat + `} %{level} - %{message}`
	}
	return logging.MustStringFormatter(format)
}

// CloseLogger releases the log file during shutdown.
func CloseLogger() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

func ensure() *logging.Logger {
	if logger == nil {
		InitLogger(logging.INFO, "log")
	}
	return logger
}

func Debug(args ...any) { ensure().Debug(args...) }

func Debugf(format string, args ...any) { ensure().Debugf(format, args...) }

func Info(args ...any) { ensure().Info(args...) }

func Infof(format string, args ...any) { ensure().Infof(format, args...) }

func Warning(args ...any) { ensure().Warning(args...) }

func Warningf(format string, args ...any) { ensure().Warningf(format, args...) }

func Error(args ...any) { ensure().Error(args...) }

func Errorf(format string, args ...any) { ensure().Errorf(format, args...) }
