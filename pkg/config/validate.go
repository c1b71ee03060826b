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

package config

import (
	"slices"
	"strings"
	"unicode"

	"github.com/TDress/sql-aide/pkg/errors"
	"github.com/TDress/sql-aide/pkg/multierr"
	"github.com/TDress/sql-aide/pkg/placeholder"
)

func invalid(name, format string, args ...interface{}) error {
	return errors.Wrapf(errors.Newf(format, args...), "invalid command %q", name).WithCode(errors.CodInvalidCommandSpec)
}

// ValidateCommand checks the structure of a single command entry. The
// returned error names the command and the offending property.
func ValidateCommand(name string, spec *CommandSpec) error {
	if name == "" {
		return errors.New("command name must not be empty").WithCode(errors.CodInvalidCommandSpec)
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return invalid(name, "command name must not contain white space")
	}
	if spec == nil {
		return invalid(name, "configuration is missing")
	}
	if spec.Description == "" {
		return invalid(name, `property "description" must be a non-empty string`)
	}

	if !spec.IsStoredProcedure() {
		return validateRawSQL(name, spec)
	}
	return validateProcedure(name, spec)
}

func validateRawSQL(name string, spec *CommandSpec) error {
	if spec.SQL == "" {
		return invalid(name, `property "sql" must be a non-empty string`)
	}
	if len(spec.ArgPipeMap) > 0 {
		return invalid(name, `property "argPipeMap" is only allowed on stored procedure commands`)
	}
	if err := placeholder.Validate(spec.SQL); err != nil {
		return errors.Wrapf(err, `invalid command %q: property "sql" must use arguments of the form {:arg}`, name)
	}
	return nil
}

func validateProcedure(name string, spec *CommandSpec) error {
	if spec.ProcedureName == "" {
		return invalid(name, `property "procedureName" must be a non-empty string`)
	}
	if spec.ProcedureArgs == nil {
		return invalid(name, `property "procedureArgs" must be an array of argument names`)
	}
	if i := slices.Index(spec.ProcedureArgs, ""); i >= 0 {
		return invalid(name, `property "procedureArgs" has an empty name at position %d`, i)
	}
	if i := slices.Index(spec.CommandArgs, ""); i >= 0 {
		return invalid(name, `property "commandArgs" has an empty name at position %d`, i)
	}

	// without rules or declared command arguments the procedure arguments
	// are read from the command line as they are
	if len(spec.ArgPipeMap) == 0 && len(spec.CommandArgs) == 0 {
		return nil
	}

	for i := range spec.ArgPipeMap {
		if err := validatePipeRule(name, i, &spec.ArgPipeMap[i], spec); err != nil {
			return err
		}
	}

	for _, arg := range spec.ProcedureArgs {
		if slices.Contains(spec.CommandArgs, arg) {
			continue
		}
		covered := slices.ContainsFunc(spec.ArgPipeMap, func(r PipeRule) bool {
			return r.PipeToArg == arg
		})
		if !covered {
			return invalid(name, `procedure argument %q is neither in "commandArgs" nor the "pipeToArg" of an "argPipeMap" rule`, arg)
		}
	}
	return nil
}

func validatePipeRule(name string, i int, rule *PipeRule, spec *CommandSpec) error {
	if rule.PipeToArg == "" {
		return invalid(name, `argPipeMap[%d]: property "pipeToArg" must be a non-empty string`, i)
	}
	if !slices.Contains(spec.ProcedureArgs, rule.PipeToArg) {
		return invalid(name, `argPipeMap[%d]: "pipeToArg" %q is not one of "procedureArgs"`, i, rule.PipeToArg)
	}
	if rule.PipeFromProcedureName == "" {
		return invalid(name, `argPipeMap[%d]: property "pipeFromProcedureName" must be a non-empty string`, i)
	}
	if rule.ResultField == "" {
		return invalid(name, `argPipeMap[%d]: property "resultField" must be a non-empty string`, i)
	}
	for _, p := range rule.PipeFromParams {
		if !slices.Contains(spec.CommandArgs, p) {
			return invalid(name, `argPipeMap[%d]: "pipeFromParams" entry %q is not one of "commandArgs"`, i, p)
		}
	}
	return nil
}

// ValidateCommands validates every entry of a configuration. All invalid
// entries are reported together; a single one fails the whole batch.
func ValidateCommands(cmds Commands) error {
	merr := multierr.NewMultiErr()
	seen := make(map[string]struct{}, len(cmds))

	for i := range cmds {
		e := &cmds[i]
		if _, dup := seen[e.Name]; dup {
			merr.Append(invalid(e.Name, "command is defined more than once"))
			continue
		}
		seen[e.Name] = struct{}{}

		if e.decodeErr != nil {
			merr.Append(e.decodeErr)
			continue
		}
		merr.Append(ValidateCommand(e.Name, &e.Spec))
	}

	return merr.Reduce()
}
