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
	"io/fs"
	"math"
	"sort"
	"strings"

	"github.com/TDress/sql-aide/pkg/errors"
	"github.com/TDress/sql-aide/pkg/multierr"
	"github.com/TDress/sql-aide/pkg/sqlservice"
	"github.com/spf13/viper"
)

const (
	// DefaultSettingsFile is the connection settings file searched for when none is given.
	DefaultSettingsFile = "sqade-settings.json"

	keyConnections = "connections"
	keyActiveDb    = "activedb"
)

// Connection is one named entry of the connection settings.
type Connection struct {
	Name             string
	Type             string
	Host             string
	Port             int
	Database         string
	Login            string
	Password         string
	SSLMode          string
	VerifyOnValidate bool
}

// Options converts the connection into database options.
func (c *Connection) Options() *sqlservice.Options {
	return sqlservice.DefaultOptions().
		WithType(strings.ToLower(c.Type)).
		WithHost(c.Host).
		WithPort(c.Port).
		WithDatabase(c.Database).
		WithLogin(c.Login).
		WithPassword(c.Password).
		WithSSLMode(c.SSLMode).
		WithVerifyOnValidate(c.VerifyOnValidate)
}

type rawConnection struct {
	Type             string
	Host             string
	Port             interface{}
	Database         string
	Login            string
	Password         string
	SSLMode          string
	VerifyOnValidate bool
}

// Settings are the connection settings. Connection names are case
// insensitive and kept lower-cased.
type Settings struct {
	Connections map[string]*Connection
	ActiveDb    string

	v *viper.Viper
}

// LoadSettings reads the settings file v is configured with. A missing file
// and malformed JSON are reported as configuration errors; a file without
// connections is invalid. Connection values are checked by ValidateSettings.
func LoadSettings(v *viper.Viper) (*Settings, error) {
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		var parseErr viper.ConfigParseError
		switch {
		case errors.As(err, &notFound), errors.Is(err, fs.ErrNotExist):
			return nil, errors.Newf("unable to read %s file", settingsFileName(v)).WithCode(errors.CodConfigUnreadable)
		case errors.As(err, &parseErr):
			return nil, errors.Wrapf(err, "unable to parse %s file. Make sure it is valid json", settingsFileName(v)).WithCode(errors.CodConfigMalformed)
		default:
			return nil, err
		}
	}

	if !v.IsSet(keyConnections) {
		return nil, errors.Newf("there is no connections property in your %s file. This property must be set with your connection configurations", settingsFileName(v)).WithCode(errors.CodInvalidSettings)
	}

	var raw map[string]rawConnection
	if err := v.UnmarshalKey(keyConnections, &raw); err != nil {
		return nil, errors.Wrap(err, "invalid connection settings").WithCode(errors.CodInvalidSettings)
	}

	s := &Settings{
		Connections: make(map[string]*Connection, len(raw)),
		ActiveDb:    strings.ToLower(v.GetString(keyActiveDb)),
		v:           v,
	}
	for name, rc := range raw {
		s.Connections[name] = &Connection{
			Name:             name,
			Type:             rc.Type,
			Host:             rc.Host,
			Port:             toPort(rc.Port),
			Database:         rc.Database,
			Login:            rc.Login,
			Password:         rc.Password,
			SSLMode:          rc.SSLMode,
			VerifyOnValidate: rc.VerifyOnValidate,
		}
	}
	return s, nil
}

// toPort returns the port as an integer, or 0 when it is not a whole number.
func toPort(v interface{}) int {
	switch p := v.(type) {
	case int:
		return p
	case int64:
		return int(p)
	case float64:
		if p != math.Trunc(p) || p > math.MaxInt32 || p < math.MinInt32 {
			return 0
		}
		return int(p)
	default:
		return 0
	}
}

func settingsFileName(v *viper.Viper) string {
	if f := v.ConfigFileUsed(); f != "" {
		return f
	}
	return DefaultSettingsFile
}

// Names returns the connection names in lexical order.
func (s *Settings) Names() []string {
	names := make([]string, 0, len(s.Connections))
	for name := range s.Connections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Active returns the connection named by activeDb.
func (s *Settings) Active() (*Connection, error) {
	if s.ActiveDb == "" {
		return nil, errors.New("no active database is set. Use the db command with --switch-db to choose one").WithCode(errors.CodInvalidSettings)
	}
	c, ok := s.Connections[s.ActiveDb]
	if !ok {
		return nil, errors.Newf("active database %q is not a configured connection", s.ActiveDb).WithCode(errors.CodInvalidSettings)
	}
	return c, nil
}

// SaveActive makes name the active connection and writes it back to the
// settings file.
func (s *Settings) SaveActive(name string) error {
	name = strings.ToLower(name)
	if _, ok := s.Connections[name]; !ok {
		return errors.Newf("the connection with name %s was not found in %s", name, settingsFileName(s.v)).WithCode(errors.CodInvalidSettings)
	}

	s.v.Set(keyActiveDb, name)
	if err := s.v.WriteConfig(); err != nil {
		return errors.Wrapf(err, "unable to write %s file", settingsFileName(s.v))
	}
	s.ActiveDb = name
	return nil
}

func invalidConnection(name, format string, args ...interface{}) error {
	return errors.Wrapf(errors.Newf(format, args...), "invalid connection settings on connection %q", name).WithCode(errors.CodInvalidSettings)
}

// ValidateSettings checks every connection. All problems are reported
// together and any of them fails the whole file.
func ValidateSettings(s *Settings) error {
	if len(s.Connections) == 0 {
		return errors.New("the connections property must hold at least one connection").WithCode(errors.CodInvalidSettings)
	}

	merr := multierr.NewMultiErr()
	for _, name := range s.Names() {
		merr.Append(ValidateConnection(s.Connections[name]))
	}
	return merr.Reduce()
}

// ValidateConnection checks a single connection. SQLite connections only
// need a database.
func ValidateConnection(c *Connection) error {
	if c.Name == "" {
		return errors.New("invalid connection settings: connections must have a non-empty name").WithCode(errors.CodInvalidSettings)
	}
	if !sqlservice.IsSupported(c.Type) {
		return invalidConnection(c.Name, "type must be one of %s", strings.Join(sqlservice.SupportedTypes(), ", "))
	}
	if c.Database == "" {
		return invalidConnection(c.Name, "database must not be empty")
	}
	if strings.EqualFold(c.Type, sqlservice.TypeSQLite) {
		return nil
	}

	if c.Host == "" {
		return invalidConnection(c.Name, "host must not be empty")
	}
	if c.Port < 1 {
		return invalidConnection(c.Name, "port must be a positive integer")
	}
	if c.Login == "" {
		return invalidConnection(c.Name, "login must not be empty")
	}
	if c.Password == "" {
		return invalidConnection(c.Name, "password must not be empty")
	}
	return nil
}
