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

package man

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// Generate returns a hidden command writing the man pages of cmd and its
// sub-commands to a directory, defaultDir when none is given.
func Generate(cmd *cobra.Command, title string, defaultDir string) *cobra.Command {
	return &cobra.Command{
		Use:    "mangen [dir]",
		Short:  "Generate man files in the specified directory",
		Hidden: true,
		Args:   cobra.MaximumNArgs(1),
		// man pages need neither settings nor a database
		PersistentPreRunE:  func(*cobra.Command, []string) error { return nil },
		PersistentPostRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(mangenCmd *cobra.Command, args []string) error {
			dir := defaultDir
			if len(args) > 0 {
				dir = args[0]
			}
			if err := os.MkdirAll(dir, os.ModePerm); err != nil {
				return err
			}

			header := &doc.GenManHeader{
				Title:   title,
				Section: "1",
			}
			if err := doc.GenManTree(cmd, header, dir); err != nil {
				return err
			}
			fmt.Fprintf(mangenCmd.OutOrStdout(), "SUCCESS: man files generated in the %s directory\n", dir)
			return nil
		},
	}
}
