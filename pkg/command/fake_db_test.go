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
	stdErrors "errors"

	"github.com/TDress/sql-aide/pkg/sqlservice"
)

type procedureCall struct {
	name   string
	params sqlservice.Params
}

// fakeDB records what it is asked to run and answers from canned results.
type fakeDB struct {
	queries []string
	calls   []procedureCall

	results  map[string]*sqlservice.Result
	failures map[string]error
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		results:  map[string]*sqlservice.Result{},
		failures: map[string]error{},
	}
}

func (db *fakeDB) returns(name string, records ...sqlservice.Record) *fakeDB {
	res := &sqlservice.Result{RecordSet: records}
	if len(records) > 0 {
		for col := range records[0] {
			res.Columns = append(res.Columns, col)
		}
	}
	db.results[name] = res
	return db
}

func (db *fakeDB) fails(name, msg string) *fakeDB {
	db.failures[name] = stdErrors.New(msg)
	return db
}

func (db *fakeDB) Query(_ context.Context, stmt string) (*sqlservice.Result, error) {
	db.queries = append(db.queries, stmt)
	if err, ok := db.failures[stmt]; ok {
		return nil, err
	}
	return db.results[stmt], nil
}

func (db *fakeDB) CallProcedure(_ context.Context, name string, params sqlservice.Params) (*sqlservice.Result, error) {
	db.calls = append(db.calls, procedureCall{name: name, params: params})
	if err, ok := db.failures[name]; ok {
		return nil, err
	}
	return db.results[name], nil
}

func (db *fakeDB) calledProcedures() []string {
	names := make([]string, len(db.calls))
	for i, c := range db.calls {
		names[i] = c.name
	}
	return names
}
