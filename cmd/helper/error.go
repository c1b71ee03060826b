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
	"os"

	"github.com/TDress/sql-aide/pkg/errors"
)

var osexit = os.Exit

// QuitToStdErr prints an error on stderr and exits with status 1
func QuitToStdErr(msg interface{}) {
	PrintFailure(os.Stderr, fmt.Sprint(UnwrapMessage(msg)))
	osexit(1)
}

func OverrideQuitter(quitter func(int)) {
	osexit = quitter
}

// UnwrapMessage prefixes errors with "Error: " and leaves anything else as is.
func UnwrapMessage(msg interface{}) interface{} {
	if err, ok := msg.(error); ok {
		if errors.CodeOf(err) == errors.CodInternalError {
			return "Error: " + err.Error()
		}
		return fmt.Sprintf("Error [%s]: %s", errors.CodeOf(err), err.Error())
	}
	return msg
}
