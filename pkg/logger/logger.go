package logger

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// std is the process-wide logger. Initialized to stderr so packages can log
// before InitLog runs (e.g., during flag parsing).
var (
	std  = logrus.New()
	once sync.Once
	file *os.File
)

func init() {
	std.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	std.SetOutput(os.Stderr)
	std.SetLevel(logrus.InfoLevel)
}

// InitLog redirects log output to the given file path (in addition to stderr).
// The parent directory is created if it does not exist.
func InitLog(path string) error {
	var initErr error
	once.Do(func() {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			initErr = err
			return
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			initErr = err
			return
		}
		file = f
		std.SetOutput(io.MultiWriter(os.Stderr, f))
	})
	return initErr
}

// FlushLog syncs and closes the log file, if any.
func FlushLog() {
	if file != nil {
		_ = file.Sync()
		_ = file.Close()
	}
}

// SetLevel changes the minimum log level ("debug", "info", "warn", "error").
func SetLevel(level string) {
	lv, err := logrus.ParseLevel(level)
	if err != nil {
		return
	}
	std.SetLevel(lv)
}

func Debug(format string, args ...any) { std.Debugf(format, args...) }
func Info(format string, args ...any)  { std.Infof(format, args...) }
func Warn(format string, args ...any)  { std.Warnf(format, args...) }
func Error(format string, args ...any) { std.Errorf(format, args...) }
func Fatal(format string, args ...any) { std.Fatalf(format, args...) }
