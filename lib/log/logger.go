package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

type LogLevel int

const (
	TRACE LogLevel = 5
	DEBUG LogLevel = 10
	INFO  LogLevel = 20
	WARN  LogLevel = 30
	ERROR LogLevel = 40
)

var levelNames = map[LogLevel]string{
	TRACE: "TRACE",
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
}

func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return strings.ToLower(name)
	}
	return fmt.Sprintf("level(%d)", int(l))
}

var (
	loggers  = make(map[LogLevel]*log.Logger)
	minLevel = TRACE
	// closed on the next Init unless it is stdout
	output io.Closer
)

// Init directs all log output to file, discarding anything below level. A nil
// file disables logging altogether.
func Init(file *os.File, useStdout bool, level LogLevel) error {
	loggers = make(map[LogLevel]*log.Logger)
	if output != nil {
		if e := output.Close(); e != nil {
			return e
		}
		output = nil
	}
	minLevel = level
	if file == nil {
		return nil
	}
	if !useStdout {
		output = file
	}
	flags := log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile
	for lvl, name := range levelNames {
		loggers[lvl] = log.New(file, fmt.Sprintf("%-6s", name), flags)
	}
	return nil
}

func ParseLevel(value string) (LogLevel, error) {
	switch strings.ToLower(value) {
	case "trace":
		return TRACE, nil
	case "debug":
		return DEBUG, nil
	case "info":
		return INFO, nil
	case "warn", "warning":
		return WARN, nil
	case "err", "error":
		return ERROR, nil
	}
	return 0, fmt.Errorf("%s: invalid log level", value)
}

// Enabled reports whether messages at level would be written.
func Enabled(level LogLevel) bool {
	return loggers[level] != nil && minLevel <= level
}

type Logger interface {
	Tracef(string, ...any)
	Debugf(string, ...any)
	Infof(string, ...any)
	Warnf(string, ...any)
	Errorf(string, ...any)
}

type logger struct {
	name      string
	calldepth int
}

// NewLogger returns a logger that prefixes every message with [name].
func NewLogger(name string, calldepth int) Logger {
	return &logger{name: name, calldepth: calldepth}
}

func (l *logger) output(level LogLevel, message string, args ...any) {
	if !Enabled(level) {
		return
	}
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}
	if l.name != "" {
		message = fmt.Sprintf("[%s] %s", l.name, message)
	}
	loggers[level].Output(l.calldepth, message) //nolint:errcheck // we can't do anything with what we log
}

func (l *logger) Tracef(message string, args ...any) {
	l.output(TRACE, message, args...)
}

func (l *logger) Debugf(message string, args ...any) {
	l.output(DEBUG, message, args...)
}

func (l *logger) Infof(message string, args ...any) {
	l.output(INFO, message, args...)
}

func (l *logger) Warnf(message string, args ...any) {
	l.output(WARN, message, args...)
}

func (l *logger) Errorf(message string, args ...any) {
	l.output(ERROR, message, args...)
}

var root = logger{calldepth: 4}

func Tracef(message string, args ...any) {
	root.Tracef(message, args...)
}

func Debugf(message string, args ...any) {
	root.Debugf(message, args...)
}

func Infof(message string, args ...any) {
	root.Infof(message, args...)
}

func Warnf(message string, args ...any) {
	root.Warnf(message, args...)
}

func Errorf(message string, args ...any) {
	root.Errorf(message, args...)
}
