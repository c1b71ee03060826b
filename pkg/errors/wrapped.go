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

import "fmt"

type wrappedError struct {
	cause error
	msg   string
}

func Wrap(err error, message string) *wrappedError {
	if err == nil {
		return nil
	}

	var e *sqadeError
	if se, ok := err.(*sqadeError); ok {
		cp := *se
		e = &cp
	} else {
		if w, isWrapped := err.(*wrappedError); isWrapped {
			e = New(w.Error()).WithCode(w.Code())
		} else {
			e = New(err.Error())
		}
	}
	c, ok := CodeMap[message]
	if ok {
		e.code = c
	}
	return &wrappedError{
		cause: e,
		msg:   message,
	}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...interface{}) *wrappedError {
	return Wrap(err, fmt.Sprintf(format, args...))
}

func (w *wrappedError) Error() string {
	return w.msg + ": " + w.cause.Error()
}

func (w *wrappedError) Message() string {
	return w.msg
}

func (w *wrappedError) Cause() error {
	return w.cause
}

func (w *wrappedError) Unwrap() error {
	return w.cause
}

func (w *wrappedError) Code() Code {
	return w.cause.(*sqadeError).code
}

func (w *wrappedError) Stack() string {
	return w.cause.(*sqadeError).stack
}

func (w *wrappedError) WithCode(code Code) *wrappedError {
	w.cause.(*sqadeError).code = code
	return w
}

func (e *wrappedError) Is(target error) bool {
	switch t := target.(type) {
	case *sqadeError:
		return compare(e, t)
	case *wrappedError:
		return compare(e, t)
	default:
		return e.Cause().Error() == target.Error()
	}
}
