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

package multierr

import "strings"

// MultiErr collects every failure of a batch so all of them can be reported
// while the batch as a whole still fails. errors.Is and errors.As look
// through every collected failure.
type MultiErr struct {
	errs []error
}

func NewMultiErr() *MultiErr {
	return &MultiErr{}
}

// Append records err, ignoring nil.
func (me *MultiErr) Append(err error) *MultiErr {
	if err != nil {
		me.errs = append(me.errs, err)
	}
	return me
}

// Reduce returns nil for an empty batch, the single error when there is
// only one, and the aggregate otherwise.
func (me *MultiErr) Reduce() error {
	switch len(me.errs) {
	case 0:
		return nil
	case 1:
		return me.errs[0]
	}
	return me
}

func (me *MultiErr) Unwrap() []error {
	return me.errs
}

// Error lists one failure per line.
func (me *MultiErr) Error() string {
	msgs := make([]string, len(me.errs))
	for i, err := range me.errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}
