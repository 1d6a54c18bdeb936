package log

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	fileLogger *lumberjack.Logger
	logger     zerolog.Logger
)

type Config struct {
	// Level of the logger. Valid options: debug, info, warn, error, disable.
	Level string `yaml:"level"`

	// Console enables human readable output on stderr.
	Console bool `yaml:"console"`

	// File is the path of the JSON log file. Empty disables file logging.
	File string `yaml:"file,omitempty"`

	// MaxSize is the maximum size in megabytes of the log file before it gets
	// rotated. It defaults to 100 megabytes.
	MaxSize int `yaml:"maxsize,omitempty"`

	// MaxAge is the maximum number of days to retain old log files based on the
	// timestamp encoded in their filename.  Note that a day is defined as 24
	// hours and may not exactly correspond to calendar days due to daylight
	// savings, leap seconds, etc. The default is not to remove old log files
	// based on age.
	MaxAge int `yaml:"maxage,omitempty"`

	// MaxBackups is the maximum number of old log files to retain.  The default
	// is to retain all old log files (though MaxAge may still cause them to get
	// deleted.)
	MaxBackups int `yaml:"maxbackups,omitempty"`

	// Compress determines if the rotated log files should be compressed
	// using gzip.
	Compress bool `yaml:"compress,omitempty"`
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.TimestampFieldName = "time"
	zerolog.LevelFieldName = "level"
	zerolog.MessageFieldName = "message"
}

func Start(config Config, logWriters ...io.Writer) error {

	// create lumberjack file logger if a file target is configured
	if config.File != "" {
		err := os.MkdirAll(filepath.Dir(config.File), 0700)
		if err != nil {
			return err
		}
		fileLogger = &lumberjack.Logger{
			Filename:   config.File,
			MaxSize:    config.MaxSize,
			MaxAge:     config.MaxAge,
			MaxBackups: config.MaxBackups,
			Compress:   config.Compress,
		}
		logWriters = append(logWriters, fileLogger)
	}

	// write formated log to stderr, disable color on windows
	if config.Console {
		logWriters = append(logWriters, zerolog.ConsoleWriter{
			Out:     os.Stderr,
			NoColor: runtime.GOOS == "windows",
		})
	}

	// set loglevel
	switch config.Level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "disable":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	default:
		return errors.New("unrecognized logging level '" + config.Level + "'")
	}

	// initialize logger
	logger = zerolog.New(io.MultiWriter(logWriters...)).With().Timestamp().Logger()
	return nil
}

// Stop closes the underlying file logger if one was configured.
func Stop() error {
	if fileLogger == nil {
		return nil
	}
	return fileLogger.Close()
}

// Debug starts a new message with debug level.
//
// You must call Msg on the returned event in order to send the event.
func Debug() *zerolog.Event {
	return logger.Debug()
}

// Info starts a new message with info level.
//
// You must call Msg on the returned event in order to send the event.
func Info() *zerolog.Event {
	return logger.Info()
}

// Warn starts a new message with warn level.
//
// You must call Msg on the returned event in order to send the event.
func Warn() *zerolog.Event {
	return logger.Warn()
}

// Error starts a new message with error level.
//
// You must call Msg on the returned event in order to send the event.
func Error() *zerolog.Event {
	return logger.Error()
}

// With creates a new logger context.
//
// You must call Logger on the returned Context in order to get a logger.
func With() zerolog.Context {
	return logger.With()
}
