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
	"fmt"
	"slices"
	"strconv"

	"github.com/TDress/sql-aide/cmd/docs/man"
	"github.com/TDress/sql-aide/cmd/helper"
	"github.com/TDress/sql-aide/cmd/version"
	"github.com/TDress/sql-aide/pkg/command"
	"github.com/spf13/cobra"
)

const (
	dbCommand       = "db"
	commandsCommand = "commands"
)

// reserved names are added by cobra itself.
var reserved = []string{"help", "completion"}

func (cl *commandline) dbCmd(cmd *cobra.Command) {
	ccmd := &cobra.Command{
		Use:               dbCommand,
		Short:             "Manage your database connections",
		Args:              cobra.NoArgs,
		PersistentPreRunE: cl.ConfigChain(nil),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switchTo, _ := cmd.Flags().GetString("switch-db")
			list, _ := cmd.Flags().GetBool("list")

			switch {
			case switchTo != "":
				if err := cl.settings.SaveActive(switchTo); err != nil {
					return cl.quit(err)
				}
				helper.PrintSuccess(out, fmt.Sprintf("Now connected to: %s.", cl.settings.ActiveDb))
			case list:
				cl.printConnections(cmd)
			default:
				if _, err := cl.settings.Active(); err != nil {
					return cl.quit(err)
				}
				helper.PrintSuccess(out, fmt.Sprintf("Currently connected to: %s", cl.settings.ActiveDb))
			}
			return nil
		},
	}
	ccmd.Flags().StringP("switch-db", "s", "", "switch to the connection with the given name")
	ccmd.Flags().BoolP("list", "l", false, "list the configured connections")
	cmd.AddCommand(ccmd)
}

func (cl *commandline) printConnections(cmd *cobra.Command) {
	names := cl.settings.Names()
	rows := make([][]string, len(names))
	for i, name := range names {
		c := cl.settings.Connections[name]
		active := ""
		if name == cl.settings.ActiveDb {
			active = "*"
		}
		port := ""
		if c.Port > 0 {
			port = strconv.Itoa(c.Port)
		}
		rows[i] = []string{active, name, c.Type, c.Host, port, c.Database}
	}
	helper.PrintTable(cmd.OutOrStdout(), []string{"active", "name", "type", "host", "port", "database"}, rows, fmt.Sprintf("%d connection(s)", len(rows)))
}

func (cl *commandline) commandsCmd(cmd *cobra.Command) {
	ccmd := &cobra.Command{
		Use:   commandsCommand,
		Short: "List the available commands",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			fmt.Fprint(c.OutOrStdout(), cl.listing(cmd))
			return nil
		},
	}
	cmd.AddCommand(ccmd)
}

type listed struct {
	name        string
	description string
}

func (l listed) Name() string        { return l.name }
func (l listed) Description() string { return l.description }

// listing describes the visible core commands of root, then the custom
// commands in configuration order.
func (cl *commandline) listing(root *cobra.Command) string {
	var items []listed
	for _, c := range root.Commands() {
		if c.Hidden || cl.registered[c.Name()] || slices.Contains(reserved, c.Name()) {
			continue
		}
		items = append(items, listed{name: c.Name(), description: c.Short})
	}
	for _, c := range cl.table.Commands() {
		if cl.registered[c.Name()] {
			items = append(items, listed{name: c.Name(), description: c.Description()})
		}
	}
	return command.FormatDescriptions(items)
}

// Register adds the core commands, then one command per entry of the
// command configuration. Entries named like a core command are skipped.
func (cl *commandline) Register(rootCmd *cobra.Command) *cobra.Command {
	cl.dbCmd(rootCmd)
	cl.commandsCmd(rootCmd)
	rootCmd.AddCommand(version.VersionCmd())
	rootCmd.AddCommand(man.Generate(rootCmd, "sqade", "./cmd/docs/man/sqade"))

	for _, c := range cl.table.Commands() {
		if cl.isTaken(rootCmd, c.Name()) {
			cl.log.Warningf("command %s is skipped: the name belongs to a core command", c.Name())
			continue
		}
		cl.custom(rootCmd, c)
	}
	return rootCmd
}

func (cl *commandline) isTaken(rootCmd *cobra.Command, name string) bool {
	if slices.Contains(reserved, name) {
		return true
	}
	for _, c := range rootCmd.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return true
		}
	}
	return false
}
