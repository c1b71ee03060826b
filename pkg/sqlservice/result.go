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

package sqlservice

import (
	"database/sql"
	"fmt"

	"github.com/TDress/sql-aide/pkg/errors"
)

// Record maps column names to the values of one row.
type Record map[string]interface{}

// Field returns the value stored under name.
func (r Record) Field(name string) (interface{}, error) {
	v, ok := r[name]
	if !ok {
		return nil, errors.Newf("field %q is not in the result", name).WithCode(errors.CodExecutionFailed)
	}
	return v, nil
}

// Result is the first result set returned by a statement.
type Result struct {
	Columns   []string
	RecordSet []Record
}

// Record returns the single record of the result. Results with no rows or
// more than one row are rejected.
func (r *Result) Record() (Record, error) {
	if len(r.RecordSet) != 1 {
		return nil, errors.Newf("expected a single record, got %d", len(r.RecordSet)).WithCode(errors.CodExecutionFailed)
	}
	return r.RecordSet[0], nil
}

// First returns the first record of the result set.
func (r *Result) First() (Record, error) {
	if len(r.RecordSet) == 0 {
		return nil, errors.New("the result set is empty").WithCode(errors.CodExecutionFailed)
	}
	return r.RecordSet[0], nil
}

// Rows returns the records as rows of strings in column order.
func (r *Result) Rows() [][]string {
	rows := make([][]string, len(r.RecordSet))
	for i, rec := range r.RecordSet {
		row := make([]string, len(r.Columns))
		for j, col := range r.Columns {
			row[j] = FormatValue(rec[col])
		}
		rows[i] = row
	}
	return rows
}

// FormatValue renders a column value for display. NULL is shown as NULL.
func FormatValue(v interface{}) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprint(v)
}

// Param is a named stored procedure argument.
type Param struct {
	Name  string
	Value interface{}
}

// Params are procedure arguments in call order.
type Params []Param

// Values returns the argument values in order.
func (p Params) Values() []interface{} {
	vals := make([]interface{}, len(p))
	for i, param := range p {
		vals[i] = param.Value
	}
	return vals
}

// Map returns the arguments keyed by name.
func (p Params) Map() map[string]interface{} {
	m := make(map[string]interface{}, len(p))
	for _, param := range p {
		m[param.Name] = param.Value
	}
	return m
}

func readResult(rows *sql.Rows) (*Result, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	res := &Result{Columns: cols, RecordSet: []Record{}}
	for rows.Next() {
		vals := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		rec := make(Record, len(cols))
		for i, col := range cols {
			if b, ok := vals[i].([]byte); ok {
				rec[col] = string(b)
				continue
			}
			rec[col] = vals[i]
		}
		res.RecordSet = append(res.RecordSet, rec)
	}
	return res, rows.Err()
}
