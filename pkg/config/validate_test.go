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
	"fmt"
	"testing"

	"github.com/TDress/sql-aide/pkg/errors"
	"github.com/stretchr/testify/require"
)

func validRawSQL() *CommandSpec {
	return &CommandSpec{
		SQL:         `select "{:one} then {:two} then {:three}"`,
		Description: "this command is a test",
	}
}

func validProcedure() *CommandSpec {
	return &CommandSpec{
		IsProcedure:   true,
		ProcedureName: "example-name",
		CommandArgs:   []string{"example_arg1", "example_arg2", "example_arg3"},
		ProcedureArgs: []string{"example_arg1", "example-field-name"},
		ArgPipeMap: []PipeRule{{
			PipeToArg:             "example-field-name",
			PipeFromParams:        []string{"example_arg2", "example_arg3"},
			PipeFromProcedureName: "example-procedure-name",
			ResultField:           "example-field-name",
		}},
		Description: "Example stored procedure description",
	}
}

func requireInvalid(t *testing.T, name string, spec *CommandSpec, contains string) {
	t.Helper()

	err := ValidateCommand(name, spec)
	require.ErrorIs(t, err, errors.ErrValidation)
	require.Contains(t, err.Error(), contains)
}

func TestValidateRawSQL(t *testing.T) {
	require.NoError(t, ValidateCommand("test", validRawSQL()))
	require.NoError(t, ValidateCommand("test", &CommandSpec{SQL: `select "{:one-argument}"`, Description: "d"}))
	require.NoError(t, ValidateCommand("test", &CommandSpec{SQL: `select "no arguments"`, Description: "d"}))

	requireInvalid(t, "", validRawSQL(), "command name must not be empty")
	requireInvalid(t, "sp name", validRawSQL(), `invalid command "sp name": command name must not contain white space`)
	requireInvalid(t, "tab\tname", validProcedure(), "must not contain white space")
	requireInvalid(t, "test", nil, "configuration is missing")
	requireInvalid(t, "test", &CommandSpec{SQL: "select 1"}, `invalid command "test": property "description"`)
	requireInvalid(t, "test", &CommandSpec{Description: "d"}, `property "sql"`)

	spec := validRawSQL()
	spec.ArgPipeMap = validProcedure().ArgPipeMap
	requireInvalid(t, "test", spec, `property "argPipeMap"`)
}

func TestValidateRawSQLPlaceholders(t *testing.T) {
	for _, sql := range []string{
		`select "{:argument name with whitespace}"`,
		`select "{:}"`,
		`select "{:%$*}"`,
		`select {:ok} and {:tab	here}`,
	} {
		requireInvalid(t, "test", &CommandSpec{SQL: sql, Description: "d"}, `invalid command "test"`)
	}

	for _, c := range "@#$%^&*()~" {
		spec := &CommandSpec{SQL: fmt.Sprintf("select {:a%cb}", c), Description: "d"}
		requireInvalid(t, "test", spec, "special characters")
	}
}

func TestValidateProcedure(t *testing.T) {
	require.NoError(t, ValidateCommand("test", validProcedure()))

	noPipe := &CommandSpec{
		ProcedureName: "get_user",
		ProcedureArgs: []string{"id"},
		Description:   "Get a user",
	}
	require.True(t, noPipe.IsStoredProcedure())
	require.NoError(t, ValidateCommand("test", noPipe))

	noArgs := &CommandSpec{IsProcedure: true, ProcedureName: "ping", ProcedureArgs: []string{}, Description: "d"}
	require.NoError(t, ValidateCommand("test", noArgs))

	requireInvalid(t, "test", &CommandSpec{IsProcedure: true, ProcedureArgs: []string{}, Description: "d"}, `property "procedureName"`)
	requireInvalid(t, "test", &CommandSpec{IsProcedure: true, ProcedureName: "p", Description: "d"}, `property "procedureArgs"`)
	requireInvalid(t, "test", &CommandSpec{IsProcedure: true, ProcedureName: "p", ProcedureArgs: []string{"a", ""}, Description: "d"}, "empty name at position 1")
	requireInvalid(t, "test", &CommandSpec{IsProcedure: true, ProcedureName: "p", Description: ""}, `property "description"`)
}

func TestValidatePipeCoverage(t *testing.T) {
	spec := &CommandSpec{
		IsProcedure:   true,
		ProcedureName: "p",
		ProcedureArgs: []string{"a", "b"},
		CommandArgs:   []string{"a"},
		ArgPipeMap: []PipeRule{{
			PipeToArg:             "b",
			PipeFromProcedureName: "q",
			PipeFromParams:        []string{"a"},
			ResultField:           "b",
		}},
		Description: "d",
	}
	require.NoError(t, ValidateCommand("test", spec))

	spec.ProcedureArgs = []string{"a", "b", "c"}
	requireInvalid(t, "test", spec, `procedure argument "c" is neither in "commandArgs" nor the "pipeToArg"`)

	spec.ProcedureArgs = []string{"a", "b"}
	spec.ArgPipeMap[0].PipeToArg = "a"
	requireInvalid(t, "test", spec, `procedure argument "b"`)
}

func TestValidatePipeCoverageWithoutRules(t *testing.T) {
	spec := &CommandSpec{
		IsProcedure:   true,
		ProcedureName: "p",
		ProcedureArgs: []string{"a", "b"},
		CommandArgs:   []string{"a"},
		Description:   "d",
	}
	requireInvalid(t, "test", spec, `procedure argument "b" is neither in "commandArgs"`)

	spec.ArgPipeMap = []PipeRule{}
	requireInvalid(t, "test", spec, `procedure argument "b"`)

	spec.CommandArgs = []string{"b", "a"}
	require.NoError(t, ValidateCommand("test", spec))
	require.False(t, spec.IsPiped())

	spec.CommandArgs = nil
	require.NoError(t, ValidateCommand("test", spec))
}

func TestValidatePipeRules(t *testing.T) {
	withRule := func(mutate func(r *PipeRule)) *CommandSpec {
		spec := validProcedure()
		mutate(&spec.ArgPipeMap[0])
		return spec
	}

	requireInvalid(t, "test", withRule(func(r *PipeRule) { r.PipeToArg = "" }), `argPipeMap[0]: property "pipeToArg"`)
	requireInvalid(t, "test", withRule(func(r *PipeRule) { r.PipeToArg = "orphan" }), `"pipeToArg" "orphan" is not one of "procedureArgs"`)
	requireInvalid(t, "test", withRule(func(r *PipeRule) { r.PipeFromProcedureName = "" }), `property "pipeFromProcedureName"`)
	requireInvalid(t, "test", withRule(func(r *PipeRule) { r.ResultField = "" }), `property "resultField"`)
	requireInvalid(t, "test", withRule(func(r *PipeRule) { r.PipeFromParams = []string{"example_arg9"} }), `"pipeFromParams" entry "example_arg9"`)

	spec := validProcedure()
	spec.CommandArgs = []string{"example_arg1", "example_arg2"}
	requireInvalid(t, "test", spec, `"pipeFromParams" entry "example_arg3"`)

	spec = validProcedure()
	spec.ProcedureArgs = []string{"example_arg1", "example-field-name", "orphan-argument"}
	requireInvalid(t, "test", spec, `"orphan-argument"`)
}

func TestValidateCommandsAllOrNothing(t *testing.T) {
	cmds := Commands{
		Entry{Name: "one", Spec: *validRawSQL()},
		Entry{Name: "two", Spec: *validProcedure()},
		Entry{Name: "three", Spec: CommandSpec{SQL: "select {:bad arg}", Description: "d"}},
		Entry{Name: "four", Spec: CommandSpec{SQL: "select 4", Description: "d"}},
		Entry{Name: "five", Spec: CommandSpec{ProcedureName: "p", ProcedureArgs: []string{}, Description: "d"}},
	}

	err := ValidateCommands(cmds)
	require.ErrorIs(t, err, errors.ErrValidation)
	require.Contains(t, err.Error(), `"three"`)

	cmds[2].Spec.SQL = "select {:good_arg}"
	require.NoError(t, ValidateCommands(cmds))
}

func TestValidateCommandsReportsEveryEntry(t *testing.T) {
	cmds := Commands{
		Entry{Name: "a", Spec: CommandSpec{SQL: "select 1"}},
		Entry{Name: "b", Spec: CommandSpec{SQL: "select 2", Description: "d"}},
		Entry{Name: "c", Spec: CommandSpec{Description: "d"}},
		Entry{Name: "b", Spec: CommandSpec{SQL: "select 3", Description: "d"}},
	}

	err := ValidateCommands(cmds)
	require.ErrorIs(t, err, errors.ErrValidation)
	require.Contains(t, err.Error(), `invalid command "a"`)
	require.Contains(t, err.Error(), `invalid command "c"`)
	require.Contains(t, err.Error(), `invalid command "b": command is defined more than once`)
}
