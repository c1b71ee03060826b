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

// Package placeholder extracts and fills the `{:name}` argument slots of
// command templates.
//
// Slots are positional: a name that appears twice in a template is two
// slots, bound to two distinct values in order of occurrence.
package placeholder

import (
	"iter"
	"regexp"
	"slices"
	"strings"
	"unicode"

	"github.com/TDress/sql-aide/pkg/errors"
)

// ForbiddenChars may not appear inside a placeholder token.
const ForbiddenChars = "@#$%^&*()~"

var (
	// occurrenceRE matches one slot. The token cannot span whitespace, so
	// `{:a b}` is not a slot at all; candidateRE is what reports it.
	occurrenceRE = regexp.MustCompile(`\{:(\S*?)\}`)

	// candidateRE matches anything that looks like a slot, however malformed.
	candidateRE = regexp.MustCompile(`\{:(.*?)\}`)
)

// ArgNames yields the argument name of every slot of tmpl, left to right.
// Empty tokens are skipped. Each call rescans tmpl.
func ArgNames(tmpl string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, m := range occurrenceRE.FindAllStringSubmatch(tmpl, -1) {
			if m[1] == "" {
				continue
			}
			if !yield(m[1]) {
				return
			}
		}
	}
}

// ParseArgNames returns the argument names of tmpl in order of occurrence,
// duplicates included. It never returns nil.
func ParseArgNames(tmpl string) []string {
	names := slices.Collect(ArgNames(tmpl))
	if names == nil {
		return []string{}
	}
	return names
}

// Count returns the number of slots in tmpl.
func Count(tmpl string) int {
	n := 0
	for range ArgNames(tmpl) {
		n++
	}
	return n
}

// Insert fills the slots of tmpl with values, the first value going to the
// leftmost slot. Each value replaces the first slot left in the text built so
// far, so a value that looks like a slot takes the next value too. Leftover
// values or slots fail the call.
func Insert(values []string, tmpl string) (string, error) {
	supplied, slots := len(values), Count(tmpl)

	out := tmpl
	for len(values) > 0 {
		span := firstSlot(out)
		if span == nil {
			break
		}
		out = out[:span[0]] + values[0] + out[span[1]:]
		values = values[1:]
	}

	if len(values) > 0 || firstSlot(out) != nil {
		return "", errors.Newf(
			"unable to insert command arguments into the SQL query string: %d value(s) supplied for %d placeholder(s)",
			supplied, slots,
		).WithCode(errors.CodArgumentMismatch)
	}
	return out, nil
}

func firstSlot(s string) []int {
	for _, m := range occurrenceRE.FindAllStringSubmatchIndex(s, -1) {
		if m[3] > m[2] {
			return m[:2]
		}
	}
	return nil
}

// Tokens returns the raw token of every slot-like occurrence of tmpl,
// including empty and malformed ones, for validation.
func Tokens(tmpl string) []string {
	var tokens []string
	for _, m := range candidateRE.FindAllStringSubmatch(tmpl, -1) {
		tokens = append(tokens, m[1])
	}
	return tokens
}

// ValidateToken checks a single placeholder token.
func ValidateToken(token string) error {
	if token == "" {
		return errors.New("placeholder name is empty").WithCode(errors.CodInvalidCommandSpec)
	}
	if strings.IndexFunc(token, unicode.IsSpace) >= 0 {
		return errors.Newf("placeholder %q contains white space", token).WithCode(errors.CodInvalidCommandSpec)
	}
	if strings.ContainsAny(token, ForbiddenChars) {
		return errors.Newf("placeholder %q contains one of the special characters %s", token, ForbiddenChars).WithCode(errors.CodInvalidCommandSpec)
	}
	return nil
}

// Validate checks every slot-like occurrence of tmpl and returns the first
// offending token's error.
func Validate(tmpl string) error {
	for _, token := range Tokens(tmpl) {
		if err := ValidateToken(token); err != nil {
			return err
		}
	}
	return nil
}
