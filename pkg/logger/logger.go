/*
Copyright 2026 The sql-aide Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

var (
	ErrInvalidLoggerType = errors.New("invalid logger type")
	ErrInvalidLogLevel   = errors.New("invalid log level")

	levelToString = map[LogLevel]string{
		LogDebug: "debug",
		LogInfo:  "info",
		LogWarn:  "warn",
		LogError: "error",
	}
)

const (
	// LogFormatText is the log format to use for human readable output
	LogFormatText = "text"

	// LogFormatJSON is the log format to use for JSON output
	LogFormatJSON = "json"

	// DefaultTimeFormat is the time format used by both formats
	DefaultTimeFormat = time.RFC3339
)

// FieldLogger is a Logger able to attach a field to every entry.
type FieldLogger interface {
	Logger
	With(key, value string) Logger
}

// With attaches key=value to the entries of l when it supports fields and
// returns l unchanged otherwise.
func With(l Logger, key, value string) Logger {
	if fl, ok := l.(FieldLogger); ok {
		return fl.With(key, value)
	}
	return l
}

// LogLevel ...
type LogLevel int8

// Log levels
const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarn
	LogError
)

func (l LogLevel) String() string {
	if s, ok := levelToString[l]; ok {
		return s
	}
	return fmt.Sprintf("LogLevel(%d)", int8(l))
}

// Logger ...
type Logger interface {
	Errorf(string, ...interface{})
	Warningf(string, ...interface{})
	Infof(string, ...interface{})
	Debugf(string, ...interface{})
	Close() error
}

// ParseLogLevel maps a level name (case insensitive) to its LogLevel.
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return LogError, nil
	case "warn", "warning":
		return LogWarn, nil
	case "info":
		return LogInfo, nil
	case "debug":
		return LogDebug, nil
	}
	return LogInfo, fmt.Errorf("%w: %q", ErrInvalidLogLevel, s)
}

func LogLevelFromEnvironment() LogLevel {
	logLevel, _ := os.LookupEnv("LOG_LEVEL")
	level, err := ParseLogLevel(logLevel)
	if err != nil {
		return LogInfo
	}
	return level
}

type (
	// Options can be used to configure a new logger.
	Options struct {
		// Name of the subsystem to prefix logs with
		Name string

		// The threshold for the logger. Anything less severe is supressed
		Level LogLevel

		// Where to write the logs to. Defaults to os.Stderr if nil
		Output io.Writer

		// The format in which logs will be formatted. (eg: text/json)
		LogFormat string

		// The file to write to, appended to when it already exists.
		LogFile string

		// Disables ANSI colors in the text format.
		NoColor bool
	}
)

// DefaultOptions returns text logging at the level found in LOG_LEVEL.
func DefaultOptions() *Options {
	return &Options{
		Name:      "sqade",
		Level:     LogLevelFromEnvironment(),
		LogFormat: LogFormatText,
	}
}

func (o *Options) WithName(name string) *Options {
	o.Name = name
	return o
}

func (o *Options) WithLevel(level LogLevel) *Options {
	o.Level = level
	return o
}

func (o *Options) WithOutput(out io.Writer) *Options {
	o.Output = out
	return o
}

func (o *Options) WithLogFormat(format string) *Options {
	o.LogFormat = format
	return o
}

func (o *Options) WithLogFile(file string) *Options {
	o.LogFile = file
	return o
}

func (o *Options) WithNoColor(noColor bool) *Options {
	o.NoColor = noColor
	return o
}

// NewLogger is a factory for selecting a logger based on options
func NewLogger(opts *Options) (Logger, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	switch opts.LogFormat {
	case LogFormatJSON, LogFormatText, "":
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidLoggerType, opts.LogFormat)
	}

	var out io.Writer = os.Stderr
	if opts.Output != nil {
		out = opts.Output
	}

	var file *os.File
	if opts.LogFile != "" {
		f, err := setup(opts.LogFile)
		if err != nil {
			return nil, err
		}
		file = f
		out = f
	}

	text := opts.LogFormat != LogFormatJSON
	return newZerologLogger(opts.Name, out, file, opts.Level, text, opts.NoColor || file != nil), nil
}
