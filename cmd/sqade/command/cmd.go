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
	"github.com/TDress/sql-aide/cmd/version"
	"github.com/spf13/cobra"
)

// NewCommand builds the sqade command tree for args, the command line
// without the program name. The connection settings and the command
// configuration are read here, so custom commands exist before args are
// dispatched; an invalid file fails the whole tree.
func NewCommand(args []string) (*cobra.Command, error) {
	return NewCommandLine().newCommand(args)
}

func (cl *commandline) newCommand(args []string) (*cobra.Command, error) {
	version.App = cl.config.Name
	cl.config.Init(cl.config.Name)
	if err := cl.prescan(args); err != nil {
		return nil, err
	}
	if err := cl.load(); err != nil {
		return nil, err
	}

	cmd := cl.NewCmd()
	cl.Register(cmd)
	cmd.SetArgs(args)
	return cmd, nil
}

// Execute runs the command tree.
func Execute(cmd *cobra.Command) error {
	return cmd.Execute()
}
