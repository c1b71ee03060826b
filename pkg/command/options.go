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

package command

import (
	"io"

	"github.com/TDress/sql-aide/pkg/logger"
)

// Options tune compiled commands.
type Options struct {
	Logger logger.Logger
}

// DefaultOptions discard all log output.
func DefaultOptions() *Options {
	return &Options{}
}

// WithLogger sets the logger that reports the procedure calls of piped commands.
func (o *Options) WithLogger(l logger.Logger) *Options {
	o.Logger = l
	return o
}

func (o *Options) logger() logger.Logger {
	if o != nil && o.Logger != nil {
		return o.Logger
	}
	l, err := logger.NewLogger(logger.DefaultOptions().WithOutput(io.Discard))
	if err != nil {
		return logger.NewMemoryLoggerWithLevel(logger.LogError)
	}
	return l
}
