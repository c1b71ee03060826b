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

package sqade

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/TDress/sql-aide/pkg/errors"
	"github.com/TDress/sql-aide/pkg/sqlservice"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

const testCommands = `{
	"users": {
		"sql": "select id, name from users order by id",
		"description": "List users"
	},
	"user": {
		"sql": "select name from users where id = {:id}",
		"description": "Show one user"
	},
	"broken": {
		"sql": "select nope from missing",
		"description": "Always fails"
	},
	"get-user": {
		"procedureName": "get_user",
		"procedureArgs": ["id"],
		"description": "Get a user through a procedure"
	}
}`

type env struct {
	dir      string
	settings string
	commands string
}

func newEnv(t *testing.T, commands string) *env {
	t.Helper()

	dir := t.TempDir()
	dbFile := filepath.Join(dir, "app.db")

	svc, err := sqlservice.Open(sqlservice.DefaultOptions().WithDatabase(dbFile))
	require.NoError(t, err)
	_, err = svc.DB().Exec(`CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT)`)
	require.NoError(t, err)
	_, err = svc.DB().Exec(`INSERT INTO users (id, name) VALUES (1, 'ada'), (2, 'bob')`)
	require.NoError(t, err)
	require.NoError(t, svc.Close())

	settings := map[string]interface{}{
		"connections": map[string]interface{}{
			"local": map[string]interface{}{"type": "sqlite", "database": dbFile, "verifyOnValidate": true},
			"other": map[string]interface{}{"type": "sqlite", "database": filepath.Join(dir, "other.db")},
			"gone":  map[string]interface{}{"type": "sqlite", "database": filepath.Join(dir, "missing", "x.db"), "verifyOnValidate": true},
		},
		"activeDb": "local",
	}
	data, err := json.Marshal(settings)
	require.NoError(t, err)

	e := &env{
		dir:      dir,
		settings: filepath.Join(dir, "sqade-settings.json"),
		commands: filepath.Join(dir, "custom-commands.json"),
	}
	require.NoError(t, os.WriteFile(e.settings, data, 0644))
	require.NoError(t, os.WriteFile(e.commands, []byte(commands), 0644))
	return e
}

type result struct {
	cl     *commandline
	out    string
	log    string
	errs   []interface{}
	cmdErr error
}

func (e *env) run(t *testing.T, args ...string) *result {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	args = append([]string{"--config", e.settings, "--commands", e.commands, "--no-color"}, args...)

	var logBuf bytes.Buffer
	cl := NewCommandLine()
	res := &result{cl: cl}
	cl.stderr = &logBuf
	cl.onError = func(msg interface{}) { res.errs = append(res.errs, msg) }

	cmd, err := cl.newCommand(args)
	require.NoError(t, err)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	res.cmdErr = cmd.Execute()
	res.out = out.String()
	res.log = logBuf.String()
	return res
}

func TestListing(t *testing.T) {
	e := newEnv(t, testCommands)

	res := e.run(t)
	require.NoError(t, res.cmdErr)
	var want strings.Builder
	for _, l := range [][2]string{
		{"commands", "List the available commands"},
		{"db", "Manage your database connections"},
		{"version", "Show the sqade version"},
		{"users", "List users"},
		{"user", "Show one user"},
		{"broken", "Always fails"},
		{"get-user", "Get a user through a procedure"},
	} {
		fmt.Fprintf(&want, "%-13s%s\n", l[0], l[1])
	}
	require.Equal(t, want.String(), res.out)

	listed := e.run(t, "commands")
	require.Equal(t, res.out, listed.out)
}

func TestRunQuery(t *testing.T) {
	e := newEnv(t, testCommands)

	res := e.run(t, "users")
	require.NoError(t, res.cmdErr)
	require.Empty(t, res.errs)
	require.Contains(t, res.out, "2 row(s)")
	require.Contains(t, res.out, "ada")
	require.Contains(t, res.out, "bob")
}

func TestRunQueryOutputs(t *testing.T) {
	e := newEnv(t, testCommands)

	res := e.run(t, "user", "2", "-o", "json")
	require.NoError(t, res.cmdErr)
	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(res.out), &records))
	require.Equal(t, []map[string]interface{}{{"name": "bob"}}, records)

	res = e.run(t, "--output", "plain", "users")
	require.NoError(t, res.cmdErr)
	require.Equal(t, "id: 1\nname: ada\n\nid: 2\nname: bob\n", res.out)

	res = e.run(t, "--output", "xml", "users")
	require.Error(t, res.cmdErr)
	require.Contains(t, res.cmdErr.Error(), "invalid output format")
}

func TestRunArgumentMismatch(t *testing.T) {
	e := newEnv(t, testCommands)

	res := e.run(t, "user", "1", "2")
	require.ErrorIs(t, res.cmdErr, errors.ErrSubstitution)
	require.Contains(t, res.cmdErr.Error(), "user expects 1 argument(s) (id), got 2")
}

func TestRunFailures(t *testing.T) {
	e := newEnv(t, testCommands)

	res := e.run(t, "broken")
	require.NoError(t, res.cmdErr)
	require.Len(t, res.errs, 1)
	require.ErrorIs(t, res.errs[0].(error), errors.ErrExecution)

	res = e.run(t, "get-user", "1")
	require.Len(t, res.errs, 1)
	require.ErrorIs(t, res.errs[0].(error), errors.ErrNotSupported)

	res = e.run(t, "nope")
	require.Error(t, res.cmdErr)
	require.Contains(t, res.cmdErr.Error(), `unknown command "nope"`)
}

func TestVerifyOnValidate(t *testing.T) {
	e := newEnv(t, testCommands)

	res := e.run(t, "db", "--switch-db", "gone")
	require.Empty(t, res.errs)

	res = e.run(t, "users")
	require.ErrorIs(t, res.cmdErr, errors.ErrExecution)
	require.Contains(t, res.cmdErr.Error(), "connection gone failed verification")
}

func TestDb(t *testing.T) {
	e := newEnv(t, testCommands)

	res := e.run(t, "db")
	require.NoError(t, res.cmdErr)
	require.Equal(t, "Currently connected to: local\n", res.out)

	res = e.run(t, "db", "--switch-db", "other")
	require.NoError(t, res.cmdErr)
	require.Empty(t, res.errs)
	require.Equal(t, "Now connected to: other.\n", res.out)

	res = e.run(t, "db")
	require.Equal(t, "Currently connected to: other\n", res.out)

	res = e.run(t, "db", "-s", "nope")
	require.Len(t, res.errs, 1)
	require.ErrorIs(t, res.errs[0].(error), errors.ErrInvalidSettings)
	require.Contains(t, fmt.Sprint(res.errs[0]), "the connection with name nope was not found")

	res = e.run(t, "db", "--list")
	require.NoError(t, res.cmdErr)
	require.Contains(t, res.out, "3 connection(s)")
	require.Contains(t, res.out, "local")
	require.Regexp(t, `\*\s*\|\s*other`, res.out)
}

func TestShadowedCommand(t *testing.T) {
	e := newEnv(t, `{
		"db": {"sql": "select 1", "description": "shadowing db"},
		"one": {"sql": "select 1 as one", "description": "One"}
	}`)

	res := e.run(t, "db")
	require.Equal(t, "Currently connected to: local\n", res.out)
	require.Contains(t, res.log, "command db is skipped")

	res = e.run(t)
	require.NotContains(t, res.out, "shadowing db")
	require.Contains(t, res.out, "One")
}

func TestLogFile(t *testing.T) {
	e := newEnv(t, `{
		"db": {"sql": "select 1", "description": "shadowing db"}
	}`)
	logFile := filepath.Join(e.dir, "logs", "sqade.log")

	res := e.run(t, "--log-file", logFile, "db")
	require.NoError(t, res.cmdErr)
	require.Empty(t, res.log)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	require.Contains(t, string(data), "command db is skipped")

	require.ErrorIs(t, res.cl.log.Close(), os.ErrClosed)
}

func TestLogFileClosedAfterCustomCommand(t *testing.T) {
	e := newEnv(t, testCommands)
	logFile := filepath.Join(e.dir, "sqade.log")

	res := e.run(t, "--log-file", logFile, "--log-level", "debug", "users")
	require.NoError(t, res.cmdErr)
	require.Empty(t, res.errs)
	require.Nil(t, res.cl.db)
	require.ErrorIs(t, res.cl.log.Close(), os.ErrClosed)
}

func TestInvalidFiles(t *testing.T) {
	bootstrap := func(args ...string) error {
		viper.Reset()
		t.Cleanup(viper.Reset)
		cl := NewCommandLine()
		cl.stderr = &bytes.Buffer{}
		_, err := cl.newCommand(args)
		return err
	}

	e := newEnv(t, `{
		"a": {"sql": "select 1", "description": "a"},
		"b": {"sql": "select {:bad arg}", "description": "b"}
	}`)
	err := bootstrap("--config", e.settings, "--commands", e.commands, "a")
	require.ErrorIs(t, err, errors.ErrValidation)

	err = bootstrap("--config", e.settings, "--commands", filepath.Join(e.dir, "none.json"))
	require.ErrorIs(t, err, errors.ErrConfigUnreadable)

	err = bootstrap("--config", filepath.Join(e.dir, "none.json"), "--commands", e.commands)
	require.ErrorIs(t, err, errors.ErrConfigUnreadable)

	require.NoError(t, os.WriteFile(e.settings, []byte(`{"connections": {"x": {"type": "oracle"}}}`), 0644))
	err = bootstrap("--config", e.settings, "--commands", e.commands)
	require.ErrorIs(t, err, errors.ErrInvalidSettings)

	err = bootstrap("--log-level", "loud")
	require.Error(t, err)
}
