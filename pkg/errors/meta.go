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

type Code string

const (
	CodSuccessCompletion   Code = "00000"
	CodInternalError       Code = "XX000"
	CodConfigUnreadable    Code = "F0000"
	CodConfigMalformed     Code = "F0001"
	CodInvalidCommandSpec  Code = "42P10"
	CodInvalidSettings     Code = "22023"
	CodArgumentMismatch    Code = "07001"
	CodExecutionFailed     Code = "38000"
	CodFeatureNotSupported Code = "0A000"
)

var (
	CodeMap = make(map[string]Code)
)

// Class sentinels, matched with the standard errors.Is.
var (
	ErrConfigUnreadable = New("unable to read configuration file").WithCode(CodConfigUnreadable)
	ErrConfigMalformed  = New("unable to parse configuration file").WithCode(CodConfigMalformed)
	ErrValidation       = New("invalid command configuration").WithCode(CodInvalidCommandSpec)
	ErrInvalidSettings  = New("invalid connection settings").WithCode(CodInvalidSettings)
	ErrSubstitution     = New("unable to bind command arguments").WithCode(CodArgumentMismatch)
	ErrExecution        = New("execution failed").WithCode(CodExecutionFailed)
	ErrNotSupported     = New("not supported").WithCode(CodFeatureNotSupported)
)

// IsConfigError reports whether err is a configuration loading failure,
// whichever of the two file problems caused it.
func IsConfigError(err error) bool {
	c := CodeOf(err)
	return c == CodConfigUnreadable || c == CodConfigMalformed
}
