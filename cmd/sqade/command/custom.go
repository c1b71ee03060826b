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
	"strings"

	"github.com/TDress/sql-aide/pkg/command"
	"github.com/TDress/sql-aide/pkg/errors"
	"github.com/spf13/cobra"
)

func (cl *commandline) custom(cmd *cobra.Command, c *command.Command) {
	ccmd := &cobra.Command{
		Use:               c.Usage(),
		Short:             c.Description(),
		Args:              exactArgs(c),
		PersistentPreRunE: cl.ConfigChain(cl.connect),
		PersistentPostRun: cl.disconnect,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.Execute(cmd.Context(), cl.db, args)
			if err != nil {
				return cl.quit(err)
			}
			return cl.outputRenderer(res, cmd)
		},
	}
	cmd.AddCommand(ccmd)
	cl.registered[c.Name()] = true
}

func exactArgs(c *command.Command) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		want := c.Args()
		if len(args) == len(want) {
			return nil
		}
		return errors.Newf("%s expects %d argument(s) (%s), got %d",
			c.Name(), len(want), strings.Join(want, ", "), len(args),
		).WithCode(errors.CodArgumentMismatch)
	}
}
