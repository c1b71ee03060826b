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

package helper

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// PrintTable prints rows under a header, preceded by caption. An empty
// caption is replaced by the row count. Nothing is printed without columns.
func PrintTable(w io.Writer, cols []string, rows [][]string, caption string) {
	if len(cols) == 0 {
		return
	}
	if caption == "" {
		caption = fmt.Sprintf("%d row(s)", len(rows))
	}
	fmt.Fprintln(w, caption)

	table := tablewriter.NewWriter(w)
	table.SetHeader(cols)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	for _, row := range rows {
		if len(row) < len(cols) {
			padded := make([]string, len(cols))
			copy(padded, row)
			row = padded
		}
		table.Append(row)
	}
	table.Render()
}
