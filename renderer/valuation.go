package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/holdings"
	"github.com/olekukonko/tablewriter"
)

// ValuationMarkdown renders the holdings valuation as a markdown table
// followed by the total value.
func ValuationMarkdown(v *holdings.Valuation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio\n\n")

	if len(v.Positions) == 0 {
		fmt.Fprintf(&b, "No holdings.\n\n")
	} else {
		table := newMarkdownTable(&b)
		table.SetHeader([]string{"Symbol", "Company Name", "Shares", "Current Price", "Value"})
		table.SetColumnAlignment([]int{
			tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_RIGHT,
			tablewriter.ALIGN_RIGHT,
			tablewriter.ALIGN_RIGHT,
		})
		for _, p := range v.Positions {
			table.Append([]string{
				p.Symbol,
				escape(p.CompanyName),
				p.Shares.String(),
				p.Price.String(),
				p.Value.String(),
			})
		}
		table.Render()
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "**Total Portfolio Value: %s**\n", v.Total)
	return b.String()
}
