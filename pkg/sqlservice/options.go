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

// Options describes how to reach a database server.
type Options struct {
	Type     string
	Host     string
	Port     int
	Database string
	Login    string
	Password string
	SSLMode  string

	// VerifyOnValidate asks the host to ping the server before running a command.
	VerifyOnValidate bool
}

// DefaultOptions returns options for a local SQLite database held in memory.
func DefaultOptions() *Options {
	return &Options{
		Type:     TypeSQLite,
		Database: ":memory:",
	}
}

// WithType sets the database type, one of SupportedTypes.
func (o *Options) WithType(t string) *Options {
	o.Type = t
	return o
}

func (o *Options) WithHost(host string) *Options {
	o.Host = host
	return o
}

func (o *Options) WithPort(port int) *Options {
	o.Port = port
	return o
}

func (o *Options) WithDatabase(database string) *Options {
	o.Database = database
	return o
}

func (o *Options) WithLogin(login string) *Options {
	o.Login = login
	return o
}

func (o *Options) WithPassword(password string) *Options {
	o.Password = password
	return o
}

// WithSSLMode sets the sslmode query parameter of postgres and immudb DSNs.
func (o *Options) WithSSLMode(mode string) *Options {
	o.SSLMode = mode
	return o
}

func (o *Options) WithVerifyOnValidate(verify bool) *Options {
	o.VerifyOnValidate = verify
	return o
}
