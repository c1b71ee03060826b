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
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/TDress/sql-aide/pkg/errors"
	"github.com/go-sql-driver/mysql"

	// database/sql drivers
	_ "github.com/codenotary/immudb/pkg/stdlib"
	_ "github.com/jackc/pgx/v4/stdlib"
	_ "github.com/lib/pq"
	_ "github.com/microsoft/go-mssqldb"
	_ "modernc.org/sqlite"
)

const (
	TypeMSSQL    = "mssql"
	TypeMySQL    = "mysql"
	TypePostgres = "postgres"
	TypePgx      = "pgx"
	TypeSQLite   = "sqlite"
	TypeImmudb   = "immudb"
)

// ErrProceduresNotSupported is returned when calling a stored procedure on a
// database without them.
var ErrProceduresNotSupported = errors.New("stored procedures are not supported by this database type").WithCode(errors.CodFeatureNotSupported)

type dialect struct {
	driver string
	dsn    func(o *Options) string
	// call builds the statement invoking a stored procedure. Nil when the
	// database has no stored procedures.
	call func(name string, params Params) string
}

var dialects = map[string]*dialect{
	TypeMSSQL: {
		driver: "sqlserver",
		dsn:    mssqlDSN,
		call:   mssqlCall,
	},
	TypeMySQL: {
		driver: "mysql",
		dsn:    mysqlDSN,
		call:   mysqlCall,
	},
	TypePostgres: {
		driver: "postgres",
		dsn:    postgresDSN,
		call:   postgresCall,
	},
	TypePgx: {
		driver: "pgx",
		dsn:    postgresDSN,
		call:   postgresCall,
	},
	TypeSQLite: {
		driver: "sqlite",
		dsn:    func(o *Options) string { return o.Database },
	},
	TypeImmudb: {
		driver: "immudb",
		dsn:    immudbDSN,
	},
}

// SupportedTypes lists the accepted values of Options.Type.
func SupportedTypes() []string {
	return []string{TypeMSSQL, TypeMySQL, TypePostgres, TypePgx, TypeSQLite, TypeImmudb}
}

// IsSupported reports whether t names a supported database type. Case is ignored.
func IsSupported(t string) bool {
	_, ok := dialects[strings.ToLower(t)]
	return ok
}

func dialectOf(t string) (*dialect, error) {
	d, ok := dialects[strings.ToLower(t)]
	if !ok {
		return nil, errors.Newf("unsupported database type %q, expected one of %s", t, strings.Join(SupportedTypes(), ", ")).WithCode(errors.CodFeatureNotSupported)
	}
	return d, nil
}

func hostPort(o *Options) string {
	return net.JoinHostPort(o.Host, strconv.Itoa(o.Port))
}

func mssqlDSN(o *Options) string {
	q := url.Values{}
	q.Set("database", o.Database)
	u := &url.URL{
		Scheme:   "sqlserver",
		User:     url.UserPassword(o.Login, o.Password),
		Host:     hostPort(o),
		RawQuery: q.Encode(),
	}
	return u.String()
}

func mssqlCall(name string, params Params) string {
	var sb strings.Builder
	sb.WriteString("EXEC ")
	sb.WriteString(name)
	for i, p := range params {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, " @%s = @p%d", p.Name, i+1)
	}
	return sb.String()
}

func mysqlDSN(o *Options) string {
	cfg := mysql.NewConfig()
	cfg.User = o.Login
	cfg.Passwd = o.Password
	cfg.Net = "tcp"
	cfg.Addr = hostPort(o)
	cfg.DBName = o.Database
	return cfg.FormatDSN()
}

func mysqlCall(name string, params Params) string {
	marks := make([]string, len(params))
	for i := range params {
		marks[i] = "?"
	}
	return fmt.Sprintf("CALL %s(%s)", name, strings.Join(marks, ", "))
}

func postgresDSN(o *Options) string {
	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(o.Login, o.Password),
		Host:   hostPort(o),
		Path:   "/" + o.Database,
	}
	if o.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {o.SSLMode}}.Encode()
	}
	return u.String()
}

func postgresCall(name string, params Params) string {
	args := make([]string, len(params))
	for i, p := range params {
		args[i] = fmt.Sprintf("%s => $%d", p.Name, i+1)
	}
	return fmt.Sprintf("SELECT * FROM %s(%s)", name, strings.Join(args, ", "))
}

func immudbDSN(o *Options) string {
	u := &url.URL{
		Scheme: "immudb",
		User:   url.UserPassword(o.Login, o.Password),
		Host:   hostPort(o),
		Path:   "/" + o.Database,
	}
	if o.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {o.SSLMode}}.Encode()
	}
	return u.String()
}
