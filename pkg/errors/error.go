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

package errors

import (
	"fmt"
	"runtime/debug"
)

// Errors returned by sqade packages implement the following interface.
//
// An error can be created with:
//
// errors.New
// errors.Wrap
//
//	if len(values) != len(slots) {
//	   return errors.New("argument count mismatch").WithCode(errors.CodArgumentMismatch)
//	}
//
// or
//
//	rows, err := db.QueryContext(ctx, stmt)
//	if err != nil {
//	   return nil, errors.Wrap(err, "message from database server").WithCode(errors.CodExecutionFailed)
//	}
//
// Errors are compared by code: two errors carrying the same non-internal code
// are equal for errors.Is. The class sentinels in meta.go rely on that.
type Error interface {
	Error() string
	Message() string
	Cause() error
	Code() Code
	Stack() string
}

func New(message string) *sqadeError {
	c, ok := CodeMap[message]
	if !ok {
		c = CodInternalError
	}
	return &sqadeError{
		code:  c,
		msg:   message,
		stack: string(debug.Stack()),
	}
}

// Newf formats according to a format specifier and returns the resulting error.
func Newf(format string, args ...interface{}) *sqadeError {
	return New(fmt.Sprintf(format, args...))
}

type sqadeError struct {
	code  Code
	msg   string
	stack string
}

func (f *sqadeError) Error() string {
	return f.msg
}

func (f *sqadeError) Message() string {
	return f.msg
}

func (f *sqadeError) Cause() error {
	return f
}

func (f *sqadeError) Code() Code {
	return f.code
}

func (f *sqadeError) Stack() string {
	return f.stack
}

func (e *sqadeError) WithCode(code Code) *sqadeError {
	e.code = code
	return e
}

func (e *sqadeError) Is(target error) bool {
	switch t := target.(type) {
	case *sqadeError:
		return compare(e, t)
	case *wrappedError:
		return compare(e, t)
	default:
		return e.Cause().Error() == target.Error()
	}
}

func compare(e Error, t Error) bool {
	if e.Code() != CodInternalError || t.Code() != CodInternalError {
		return e.Code() == t.Code()
	}
	return e.Message() == t.Message() && e.Cause().Error() == t.Cause().Error()
}

// CodeOf returns the code carried by err, CodInternalError for foreign errors
// and CodSuccessCompletion for nil.
func CodeOf(err error) Code {
	if err == nil {
		return CodSuccessCompletion
	}
	var e Error
	if As(err, &e) {
		return e.Code()
	}
	return CodInternalError
}
