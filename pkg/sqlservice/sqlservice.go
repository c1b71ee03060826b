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
	"context"
	"database/sql"
	"strings"

	"github.com/TDress/sql-aide/pkg/errors"
)

// SQLService runs statements and procedure calls against one database.
type SQLService struct {
	db      *sql.DB
	typ     string
	dialect *dialect
}

// Open connects to the database described by opts. The connection is
// established lazily; use Ping to check it.
func Open(opts *Options) (*SQLService, error) {
	d, err := dialectOf(opts.Type)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(d.driver, d.dsn(opts))
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s database", opts.Type).WithCode(errors.CodExecutionFailed)
	}
	if d.driver == "sqlite" {
		// every connection to :memory: is a distinct database
		db.SetMaxOpenConns(1)
	}

	return &SQLService{db: db, typ: strings.ToLower(opts.Type), dialect: d}, nil
}

// NewSQLService wraps an already opened database of the given type.
func NewSQLService(db *sql.DB, typ string) (*SQLService, error) {
	d, err := dialectOf(typ)
	if err != nil {
		return nil, err
	}
	return &SQLService{db: db, typ: strings.ToLower(typ), dialect: d}, nil
}

// Type returns the lower-cased database type.
func (s *SQLService) Type() string {
	return s.typ
}

// DB returns the underlying database handle.
func (s *SQLService) DB() *sql.DB {
	return s.db
}

// Ping verifies that the server is reachable with the configured credentials.
func (s *SQLService) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return errors.Wrap(err, "unable to connect to the database").WithCode(errors.CodExecutionFailed)
	}
	return nil
}

// Query runs stmt and returns its first result set. Statements without a
// result set return an empty Result.
func (s *SQLService) Query(ctx context.Context, stmt string) (*Result, error) {
	return s.query(ctx, stmt)
}

// CallProcedure calls the stored procedure name with params bound in order.
func (s *SQLService) CallProcedure(ctx context.Context, name string, params Params) (*Result, error) {
	if s.dialect.call == nil {
		return nil, errors.Wrapf(ErrProceduresNotSupported, "calling %s on %s", name, s.typ).WithCode(errors.CodFeatureNotSupported)
	}
	return s.query(ctx, s.dialect.call(name, params), params.Values()...)
}

func (s *SQLService) query(ctx context.Context, stmt string, args ...interface{}) (*Result, error) {
	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, errors.Wrap(err, "message from database server").WithCode(errors.CodExecutionFailed)
	}
	defer rows.Close()

	res, err := readResult(rows)
	if err != nil {
		return nil, errors.Wrap(err, "message from database server").WithCode(errors.CodExecutionFailed)
	}
	return res, nil
}

// Close releases the database handle.
func (s *SQLService) Close() error {
	return s.db.Close()
}
