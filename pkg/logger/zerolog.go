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
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

var _ Logger = (*ZerologLogger)(nil)

// ZerologLogger adapts a zerolog.Logger to the Logger interface.
type ZerologLogger struct {
	zl   zerolog.Logger
	file *os.File
}

func newZerologLogger(name string, out io.Writer, file *os.File, level LogLevel, text bool, noColor bool) *ZerologLogger {
	if text {
		out = zerolog.ConsoleWriter{
			Out:        out,
			NoColor:    noColor,
			TimeFormat: DefaultTimeFormat,
		}
	}

	ctx := zerolog.New(out).Level(zerologLevel(level)).With().Timestamp()
	if name != "" {
		ctx = ctx.Str("module", name)
	}

	return &ZerologLogger{
		zl:   ctx.Logger(),
		file: file,
	}
}

func zerologLevel(level LogLevel) zerolog.Level {
	switch level {
	case LogDebug:
		return zerolog.DebugLevel
	case LogInfo:
		return zerolog.InfoLevel
	case LogWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// With returns a child logger carrying an extra string field.
func (l *ZerologLogger) With(key, value string) Logger {
	return &ZerologLogger{
		zl:   l.zl.With().Str(key, value).Logger(),
		file: l.file,
	}
}

func (l *ZerologLogger) Errorf(f string, v ...interface{}) {
	l.zl.Error().Msg(fmt.Sprintf(f, v...))
}

func (l *ZerologLogger) Warningf(f string, v ...interface{}) {
	l.zl.Warn().Msg(fmt.Sprintf(f, v...))
}

func (l *ZerologLogger) Infof(f string, v ...interface{}) {
	l.zl.Info().Msg(fmt.Sprintf(f, v...))
}

func (l *ZerologLogger) Debugf(f string, v ...interface{}) {
	l.zl.Debug().Msg(fmt.Sprintf(f, v...))
}

// Close releases the log file, if any.
func (l *ZerologLogger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
