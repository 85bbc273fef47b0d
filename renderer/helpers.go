package renderer

import (
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// newMarkdownTable returns a table writer that renders a GitHub flavored
// markdown table into w.
func newMarkdownTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	return table
}

// escape makes s safe inside a markdown table cell.
func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
