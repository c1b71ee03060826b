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
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"reflect"

	"github.com/TDress/sql-aide/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
)

// DefaultCommandsFile is the command configuration read when no other file is given.
const DefaultCommandsFile = "custom-commands.json"

// PipeRule derives one procedure argument from the result of an upstream
// procedure call.
type PipeRule struct {
	PipeToArg             string   `json:"pipeToArg"`
	PipeFromProcedureName string   `json:"pipeFromProcedureName"`
	PipeFromParams        []string `json:"pipeFromParams"`
	IsResultSet           bool     `json:"isResultSet"`
	ResultField           string   `json:"resultField"`
}

// CommandSpec is one entry of the command configuration, as written.
type CommandSpec struct {
	SQL           string     `json:"sql"`
	Description   string     `json:"description"`
	IsProcedure   bool       `json:"isProcedure"`
	ProcedureName string     `json:"procedureName"`
	ProcedureArgs []string   `json:"procedureArgs"`
	CommandArgs   []string   `json:"commandArgs"`
	ArgPipeMap    []PipeRule `json:"argPipeMap"`
}

// IsStoredProcedure reports whether the entry calls a stored procedure
// rather than running its sql template. An entry without sql that names a
// procedure is a procedure call even when isProcedure is not set.
func (s *CommandSpec) IsStoredProcedure() bool {
	return s.IsProcedure || (s.SQL == "" && s.ProcedureName != "")
}

// IsPiped reports whether some procedure arguments are derived from
// upstream procedure calls.
func (s *CommandSpec) IsPiped() bool {
	return s.IsStoredProcedure() && len(s.ArgPipeMap) > 0
}

// Entry is a named command specification in configuration order.
type Entry struct {
	Name string
	Spec CommandSpec

	// decodeErr is set when the entry could not be decoded into a CommandSpec.
	decodeErr error
}

// Commands holds the entries of a command configuration in document order.
type Commands []Entry

// Names returns the command names in configuration order.
func (c Commands) Names() []string {
	names := make([]string, len(c))
	for i, e := range c {
		names[i] = e.Name
	}
	return names
}

// LoadCommands reads and parses a command configuration file. A missing file
// and malformed JSON are reported as configuration errors; any other read
// failure is returned untouched.
func LoadCommands(filename string) (Commands, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Newf("unable to read %s file", filename).WithCode(errors.CodConfigUnreadable)
		}
		return nil, err
	}

	cmds, err := ParseCommands(data)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse %s file. Make sure it is valid json", filename).WithCode(errors.CodConfigMalformed)
	}
	return cmds, nil
}

// ParseCommands splits a command configuration into its entries, keeping the
// order in which they are written. Comments and trailing commas are allowed.
//
// An entry that cannot be decoded does not fail parsing: it is kept and
// reported by ValidateCommands, so that a single bad entry is diagnosed
// like any other invalid command.
func ParseCommands(data []byte) (Commands, error) {
	data = jsonc.ToJSON(data)
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid json").WithCode(errors.CodConfigMalformed)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, errors.New("the top level value must be an object of commands").WithCode(errors.CodConfigMalformed)
	}

	cmds := Commands{}
	root.ForEach(func(key, value gjson.Result) bool {
		e := Entry{Name: key.String()}
		if !value.IsObject() {
			e.decodeErr = invalid(e.Name, "configuration must be an object")
		} else if err := json.Unmarshal([]byte(value.Raw), &e.Spec); err != nil {
			e.decodeErr = decodeError(e.Name, err)
		}
		cmds = append(cmds, e)
		return true
	})

	return cmds, nil
}

func decodeError(name string, err error) error {
	typeErr, ok := err.(*json.UnmarshalTypeError)
	if !ok {
		return errors.Wrapf(err, "invalid command %q", name).WithCode(errors.CodInvalidCommandSpec)
	}
	return invalid(name, "property %q must be %s, got %s", typeErr.Field, describeKind(typeErr.Type), typeErr.Value)
}

func describeKind(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Slice:
		return "an array"
	case reflect.Struct:
		return "an object"
	default:
		return fmt.Sprintf("of type %s", t)
	}
}
