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

	"github.com/TDress/sql-aide/pkg/config"
	"github.com/spf13/cobra"
)

// NewCmd ...
func (cl *commandline) NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sqade",
		Short: "Run the database commands described in " + config.DefaultCommandsFile,
		Long: fmt.Sprintf(`Run the database commands described in %s against the active
connection of %s.

Environment variables:
  SQADE_CONFIG=%s
  SQADE_COMMANDS=%s
  SQADE_LOG_LEVEL=info
  SQADE_LOG_FORMAT=text
  SQADE_LOG_FILE=
  SQADE_OUTPUT=table
  SQADE_NO_COLOR=false`,
			config.DefaultCommandsFile, config.DefaultSettingsFile,
			config.DefaultSettingsFile, config.DefaultCommandsFile),
		DisableAutoGenTag: true,
		SilenceErrors:     true,
		SilenceUsage:      true,
		Args:              cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), cl.listing(cmd))
			return nil
		},
		PersistentPostRun: cl.disconnect,
	}
	configureFlags(cmd.PersistentFlags())
	return cmd
}
