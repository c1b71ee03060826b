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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	rootCmd := &cobra.Command{
		Use:   "sqade",
		Short: "run configured database commands",
	}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "users",
		Short: "List users",
		Run:   func(*cobra.Command, []string) {},
	})

	dir := filepath.Join(t.TempDir(), "man")
	cmd := Generate(rootCmd, "sqade", "unused")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{dir})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), dir)

	for _, page := range []string{"sqade.1", "sqade-users.1"} {
		bs, err := os.ReadFile(filepath.Join(dir, page))
		require.NoError(t, err)
		require.NotEmpty(t, bs)
	}
}

func TestGenerateTooManyArgs(t *testing.T) {
	cmd := Generate(&cobra.Command{Use: "sqade"}, "sqade", t.TempDir())
	cmd.SetArgs([]string{"a", "b"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	require.Error(t, cmd.Execute())
}
