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

package helper

import (
	"fmt"
	"io"
	"regexp"

	"github.com/fatih/color"
)

var leadingIndent = regexp.MustCompile(`(?m)^[ \t]+`)

var (
	successColor = color.New(color.FgGreen)
	failureColor = color.New(color.FgRed)
)

// SetNoColor turns coloured console output off or on.
func SetNoColor(noColor bool) {
	color.NoColor = noColor
}

// StripIndent removes the leading white space of every line of msg.
func StripIndent(msg string) string {
	return leadingIndent.ReplaceAllString(msg, "")
}

// PrintSuccess writes msg in green.
func PrintSuccess(w io.Writer, msg string) {
	fmt.Fprintln(w, successColor.Sprint(StripIndent(msg)))
}

// PrintFailure writes msg in red.
func PrintFailure(w io.Writer, msg string) {
	fmt.Fprintln(w, failureColor.Sprint(StripIndent(msg)))
}
