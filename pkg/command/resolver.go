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
	"strings"

	"github.com/TDress/sql-aide/pkg/config"
	"github.com/TDress/sql-aide/pkg/errors"
	"github.com/TDress/sql-aide/pkg/logger"
	"github.com/TDress/sql-aide/pkg/sqlservice"
	"github.com/rs/xid"
)

// Resolver runs piped procedures: every pipe rule calls its upstream
// procedure in turn, and the fields extracted from their results complete
// the arguments of the final call.
type Resolver struct {
	db  Database
	log logger.Logger
}

func NewResolver(db Database, log logger.Logger) *Resolver {
	return &Resolver{db: db, log: log}
}

// Run resolves the arguments of p from values, one per command argument, and
// calls p. The first failing upstream call aborts the run.
func (r *Resolver) Run(ctx context.Context, p *PipedProcedure, values []string) (*sqlservice.Result, error) {
	log := logger.With(r.log, "invocation", xid.New().String())

	params, err := r.resolve(ctx, log, p, values)
	if err != nil {
		return nil, err
	}

	log.Infof("calling procedure %s with params %s", p.Name, formatParams(params))
	res, err := r.db.CallProcedure(ctx, p.Name, params)
	if err != nil {
		return nil, executionError(err, "calling %s", p.Name)
	}
	return orEmpty(res), nil
}

// resolve returns the arguments of the final call of p without making it.
// Upstream procedures are still called.
func (r *Resolver) resolve(ctx context.Context, log logger.Logger, p *PipedProcedure, values []string) (sqlservice.Params, error) {
	if len(values) != len(p.CommandArgs) {
		return nil, errors.Newf("procedure %s takes %d command argument(s), got %d", p.Name, len(p.CommandArgs), len(values)).WithCode(errors.CodArgumentMismatch)
	}

	commandInputs := make(map[string]interface{}, len(p.CommandArgs))
	for i, a := range p.CommandArgs {
		commandInputs[a] = values[i]
	}

	procedureInputs := make(map[string]interface{}, len(p.ProcedureArgs))
	for _, a := range p.ProcedureArgs {
		if v, ok := commandInputs[a]; ok {
			procedureInputs[a] = v
		}
	}

	for i := range p.Rules {
		rule := &p.Rules[i]

		v, err := r.pipe(ctx, log, rule, commandInputs)
		if err != nil {
			return nil, errors.Wrapf(err, "argPipeMap[%d]", i)
		}
		procedureInputs[rule.PipeToArg] = v
	}

	params := make(sqlservice.Params, len(p.ProcedureArgs))
	for i, a := range p.ProcedureArgs {
		params[i] = sqlservice.Param{Name: a, Value: procedureInputs[a]}
	}
	return params, nil
}

func (r *Resolver) pipe(ctx context.Context, log logger.Logger, rule *config.PipeRule, commandInputs map[string]interface{}) (interface{}, error) {
	pipeInputs := make(sqlservice.Params, len(rule.PipeFromParams))
	for i, name := range rule.PipeFromParams {
		pipeInputs[i] = sqlservice.Param{Name: name, Value: commandInputs[name]}
	}

	log.Infof("calling procedure %s with params %s", rule.PipeFromProcedureName, formatParams(pipeInputs))
	res, err := r.db.CallProcedure(ctx, rule.PipeFromProcedureName, pipeInputs)
	if err != nil {
		return nil, executionError(err, "calling %s", rule.PipeFromProcedureName)
	}
	res = orEmpty(res)

	var rec sqlservice.Record
	if rule.IsResultSet {
		rec, err = res.First()
	} else {
		rec, err = res.Record()
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading result of %s", rule.PipeFromProcedureName)
	}

	v, err := rec.Field(rule.ResultField)
	if err != nil {
		return nil, errors.Wrapf(err, "reading result of %s", rule.PipeFromProcedureName)
	}

	log.Debugf("piping %s = %v from %s into %s", rule.ResultField, v, rule.PipeFromProcedureName, rule.PipeToArg)
	return v, nil
}

func formatParams(params sqlservice.Params) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = fmt.Sprintf("%s=%v", p.Name, p.Value)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
