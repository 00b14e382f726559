package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/AntonioJCosta/grocerytracker/internal/core/domain/grocery"
	"github.com/AntonioJCosta/grocerytracker/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
)

func printQueryResult(w io.Writer, item string, count int) {
	if count > 0 {
		fmt.Fprintf(w, "%s: %s\n", ui.ItemNameColor(item), ui.CountColor(count))
		return
	}
	fmt.Fprintf(w, "%s not found in the grocery list.\n", ui.ItemNameColor(item))
}

func printFrequencyList(w io.Writer, frequencies []grocery.ItemFrequency) {
	if len(frequencies) == 0 {
		fmt.Fprintln(w, ui.InfoColor("No items were loaded."))
		return
	}
	for _, f := range frequencies {
		fmt.Fprintf(w, "%s %s\n", ui.ItemNameColor(f.Item), ui.CountColor(f.Count))
	}
}

func printHistogram(w io.Writer, bars []grocery.HistogramBar) {
	if len(bars) == 0 {
		fmt.Fprintln(w, ui.InfoColor("No items were loaded."))
		return
	}
	for _, b := range bars {
		fmt.Fprintf(w, "%s %s\n", ui.ItemNameColor(b.Item), ui.BarColor(b.Bar))
	}
}

func printFrequencyTable(w io.Writer, frequencies []grocery.ItemFrequency) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Item", "Count"})
	table.SetBorder(true)
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	total := 0
	for _, f := range frequencies {
		table.Append([]string{f.Item, strconv.Itoa(f.Count)})
		total += f.Count
	}
	table.SetFooter([]string{"Total", strconv.Itoa(total)})
	table.Render()
}
