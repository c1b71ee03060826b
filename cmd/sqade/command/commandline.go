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
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/TDress/sql-aide/cmd/helper"
	"github.com/TDress/sql-aide/pkg/command"
	"github.com/TDress/sql-aide/pkg/config"
	"github.com/TDress/sql-aide/pkg/errors"
	"github.com/TDress/sql-aide/pkg/logger"
	"github.com/TDress/sql-aide/pkg/sqlservice"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputPlain = "plain"
)

// database is what commands run against once connected.
type database interface {
	command.Database
	Ping(ctx context.Context) error
	Close() error
}

type commandline struct {
	config   helper.Config
	log      logger.Logger
	settings *config.Settings
	table    *command.Table
	db       database

	// registered holds the names of the custom commands added to the tree.
	registered map[string]bool

	stderr         io.Writer
	onError        func(msg interface{})
	open           func(*sqlservice.Options) (database, error)
	outputRenderer func(*sqlservice.Result, *cobra.Command) error
}

func NewCommandLine() *commandline {
	cl := &commandline{
		stderr:     os.Stderr,
		open:       openDatabase,
		registered: map[string]bool{},
	}
	cl.config.Name = "sqade"
	cl.outputRenderer = cl.renderOutputTable
	return cl
}

func openDatabase(opts *sqlservice.Options) (database, error) {
	svc, err := sqlservice.Open(opts)
	if err != nil {
		return nil, err
	}
	return svc, nil
}

// ConfigChain binds the flags of the running command and selects the output
// renderer before handing over to post.
func (cl *commandline) ConfigChain(post func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) (err error) {
	return func(cmd *cobra.Command, args []string) (err error) {
		if err = cl.config.LoadConfig(cmd); err != nil {
			return err
		}

		switch viper.GetString("output") {
		case OutputTable, "":
			cl.outputRenderer = cl.renderOutputTable
		case OutputJSON:
			cl.outputRenderer = cl.renderOutputJSON
		case OutputPlain:
			cl.outputRenderer = cl.renderOutputPlain
		default:
			return errors.Newf("invalid output format: '%s', available options: '%s', '%s', '%s'",
				viper.GetString("output"), OutputTable, OutputJSON, OutputPlain)
		}

		if post != nil {
			return post(cmd, args)
		}
		return nil
	}
}

// connect opens the active connection, checking it first when the
// connection asks for it.
func (cl *commandline) connect(cmd *cobra.Command, args []string) error {
	conn, err := cl.settings.Active()
	if err != nil {
		return err
	}

	db, err := cl.open(conn.Options())
	if err != nil {
		return err
	}
	if conn.VerifyOnValidate {
		if err := db.Ping(cmd.Context()); err != nil {
			_ = db.Close()
			return errors.Wrapf(err, "connection %s failed verification", conn.Name)
		}
		cl.log.Debugf("connection %s verified", conn.Name)
	}

	cl.db = db
	return nil
}

// disconnect releases the database connection and the log file, if any.
func (cl *commandline) disconnect(cmd *cobra.Command, args []string) {
	if cl.db != nil {
		if err := cl.db.Close(); err != nil {
			cl.quit(err)
		}
		cl.db = nil
	}
	if cl.log != nil {
		if err := cl.log.Close(); err != nil {
			cl.quit(err)
		}
	}
}

func (cl *commandline) quit(msg interface{}) error {
	if cl.onError == nil {
		helper.QuitToStdErr(msg)
	}
	cl.onError(msg)
	return nil
}

func (cl *commandline) renderOutputTable(res *sqlservice.Result, cmd *cobra.Command) error {
	helper.PrintTable(cmd.OutOrStdout(), res.Columns, res.Rows(), "")
	return nil
}

func (cl *commandline) renderOutputPlain(res *sqlservice.Result, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	for i, rec := range res.RecordSet {
		if i > 0 {
			fmt.Fprintln(out)
		}
		for _, col := range res.Columns {
			fmt.Fprintf(out, "%s: %s\n", col, sqlservice.FormatValue(rec[col]))
		}
	}
	return nil
}

func (cl *commandline) renderOutputJSON(res *sqlservice.Result, cmd *cobra.Command) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(res.RecordSet); err != nil {
		return cl.quit(fmt.Sprintf("ERROR: Failed to output json data: %v", err))
	}
	return nil
}
