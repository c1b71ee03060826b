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

package version

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// Build metadata, set with -ldflags "-X github.com/TDress/sql-aide/cmd/version.Version=..."
var (
	// App application name
	App string

	// Version holds the version
	Version string

	// Commit the most recent commit from which this version has been built
	Commit string

	// BuiltBy built by email
	BuiltBy string

	// BuiltAt build time as seconds since the Unix epoch
	BuiltAt string

	// Static flags the binary as statically linked
	Static string
)

// VersionCmd returns a new version command
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: fmt.Sprintf("Show the %s version", App),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), VersionStr())
		},
	}
}

// VersionStr formats and returns the version string
func VersionStr() string {
	if App == "" || Version == "" {
		return "no version info available"
	}

	const longestLabelLength = 8
	line := func(label, value string) string {
		return fmt.Sprintf("%-*s: %s", longestLabelLength, label, value)
	}

	pieces := []string{fmt.Sprintf("%s %s", App, Version)}
	if Commit != "" {
		pieces = append(pieces, line("Commit", Commit))
	}
	if BuiltBy != "" {
		pieces = append(pieces, line("Built by", BuiltBy))
	}
	if BuiltAt != "" {
		if i, err := strconv.ParseInt(BuiltAt, 10, 64); err == nil {
			pieces = append(pieces, line("Built at", time.Unix(i, 0).UTC().Format(time.RFC1123)))
		}
	}
	if Static != "" {
		pieces = append(pieces, line("Static", strconv.FormatBool(StaticBuild())))
	}
	return strings.Join(pieces, "\n")
}

// StaticBuild reports whether the binary is statically linked
func StaticBuild() bool {
	return Static == "static"
}
