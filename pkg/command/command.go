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

package command

import (
	"context"
	"fmt"

	"github.com/TDress/sql-aide/pkg/config"
	"github.com/TDress/sql-aide/pkg/errors"
	"github.com/TDress/sql-aide/pkg/logger"
	"github.com/TDress/sql-aide/pkg/placeholder"
	"github.com/TDress/sql-aide/pkg/sqlservice"
)

// Database runs the statements of compiled commands.
type Database interface {
	Query(ctx context.Context, stmt string) (*sqlservice.Result, error)
	CallProcedure(ctx context.Context, name string, params sqlservice.Params) (*sqlservice.Result, error)
}

var _ Database = (*sqlservice.SQLService)(nil)

// Command is a compiled command. It is immutable and safe to execute any
// number of times.
type Command struct {
	name        string
	description string
	args        []string
	variant     Variant
	log         logger.Logger
}

// Compile validates spec and builds the command it describes.
func Compile(name string, spec *config.CommandSpec, opts *Options) (*Command, error) {
	if err := config.ValidateCommand(name, spec); err != nil {
		return nil, err
	}

	v := variantOf(spec)
	return &Command{
		name:        name,
		description: spec.Description,
		args:        v.CLIArgs(),
		variant:     v,
		log:         opts.logger(),
	}, nil
}

func (c *Command) Name() string {
	return c.name
}

func (c *Command) Description() string {
	return c.description
}

// Args returns the names of the command line arguments, in order.
func (c *Command) Args() []string {
	return clone(c.args)
}

func (c *Command) Kind() Kind {
	return c.variant.Kind()
}

// Variant returns the executable form of the command.
func (c *Command) Variant() Variant {
	return c.variant
}

// Usage returns the command name followed by its arguments.
func (c *Command) Usage() string {
	use := c.name
	for _, a := range c.args {
		use += " <" + a + ">"
	}
	return use
}

// Execute runs the command with one value per argument. A wrong number of
// values is a substitution error; failures of db are execution errors.
func (c *Command) Execute(ctx context.Context, db Database, values []string) (*sqlservice.Result, error) {
	if len(values) != len(c.args) {
		return nil, errors.Newf("command %q takes %d argument(s), got %d", c.name, len(c.args), len(values)).WithCode(errors.CodArgumentMismatch)
	}

	switch v := c.variant.(type) {
	case *RawSQL:
		return c.runSQL(ctx, db, v, values)
	case *StoredProcedure:
		return c.runProcedure(ctx, db, v, values)
	case *PipedProcedure:
		return NewResolver(db, c.log).Run(ctx, v, values)
	default:
		panic(fmt.Sprintf("unknown command variant %T", v))
	}
}

func (c *Command) runSQL(ctx context.Context, db Database, v *RawSQL, values []string) (*sqlservice.Result, error) {
	stmt, err := placeholder.Insert(values, v.SQL)
	if err != nil {
		return nil, errors.Wrapf(err, "command %q", c.name)
	}

	res, err := db.Query(ctx, stmt)
	if err != nil {
		return nil, executionError(err, "command %q", c.name)
	}
	return orEmpty(res), nil
}

func (c *Command) runProcedure(ctx context.Context, db Database, v *StoredProcedure, values []string) (*sqlservice.Result, error) {
	params := make(sqlservice.Params, len(v.Args))
	for i, a := range v.Args {
		params[i] = sqlservice.Param{Name: a, Value: values[i]}
	}

	res, err := db.CallProcedure(ctx, v.Name, params)
	if err != nil {
		return nil, executionError(err, "command %q: calling %s", c.name, v.Name)
	}
	return orEmpty(res), nil
}

// executionError wraps a failure of the database, making sure it carries an
// execution code.
func executionError(err error, format string, args ...interface{}) error {
	w := errors.Wrapf(err, format, args...)
	if w.Code() == errors.CodInternalError {
		w = w.WithCode(errors.CodExecutionFailed)
	}
	return w
}

func orEmpty(res *sqlservice.Result) *sqlservice.Result {
	if res == nil {
		return &sqlservice.Result{Columns: []string{}, RecordSet: []sqlservice.Record{}}
	}
	return res
}
