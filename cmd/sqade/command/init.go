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
	"io"

	"github.com/TDress/sql-aide/cmd/helper"
	"github.com/TDress/sql-aide/pkg/command"
	"github.com/TDress/sql-aide/pkg/config"
	"github.com/TDress/sql-aide/pkg/errors"
	"github.com/TDress/sql-aide/pkg/logger"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func configureFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "connection settings file (default is "+config.DefaultSettingsFile+" in ., $HOME/.sqade or /etc/sqade)")
	flags.String("commands", config.DefaultCommandsFile, "command configuration file")
	flags.String("log-level", logger.LogInfo.String(), "log level: debug, info, warn or error")
	flags.String("log-format", logger.LogFormatText, "log format: text or json")
	flags.String("log-file", "", "append logs to this file instead of stderr")
	flags.StringP("output", "o", OutputTable, "output format: table, json or plain")
	flags.Bool("no-color", false, "disable coloured output")
}

// prescan reads the global flags from args before the command tree exists,
// since the tree depends on the files they name. Flags it does not know
// belong to custom commands and are skipped.
func (cl *commandline) prescan(args []string) error {
	flags := pflag.NewFlagSet(cl.config.Name, pflag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.SetOutput(io.Discard)
	flags.Usage = func() {}
	configureFlags(flags)

	if err := flags.Parse(args); err != nil && !errors.Is(err, pflag.ErrHelp) {
		return err
	}
	return cl.config.BindFlags(flags)
}

// load builds the logger, then reads and validates the connection settings
// and the command configuration. Both files must be valid.
func (cl *commandline) load() error {
	level, err := logger.ParseLogLevel(viper.GetString("log-level"))
	if err != nil {
		return err
	}
	noColor := viper.GetBool("no-color")
	if noColor {
		helper.SetNoColor(true)
	}

	cl.log, err = logger.NewLogger(logger.DefaultOptions().
		WithName(cl.config.Name).
		WithLevel(level).
		WithLogFormat(viper.GetString("log-format")).
		WithOutput(cl.stderr).
		WithLogFile(viper.GetString("log-file")).
		WithNoColor(noColor))
	if err != nil {
		return err
	}

	v, err := helper.SettingsViper(cl.config.Name, viper.GetString("config"))
	if err != nil {
		return err
	}
	if cl.settings, err = config.LoadSettings(v); err != nil {
		return err
	}
	if err = config.ValidateSettings(cl.settings); err != nil {
		return err
	}
	cl.log.Debugf("using settings file %s", v.ConfigFileUsed())

	commandsFile, err := homedir.Expand(viper.GetString("commands"))
	if err != nil {
		return err
	}
	cl.table, err = command.LoadTable(commandsFile, command.DefaultOptions().WithLogger(cl.log))
	if err != nil {
		return err
	}
	cl.log.Debugf("loaded %d command(s) from %s", cl.table.Len(), commandsFile)
	return nil
}
