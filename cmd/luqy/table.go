package main

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

// tableStyle picks rounded borders on interactive terminals and a plain
// ASCII style when output is piped.
func tableStyle() table.Style {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return table.StyleRounded
	}
	return table.StyleDefault
}

// fieldRow is one name/value line of a settings or results table.
type fieldRow struct {
	name  string
	value string
}

// renderFieldTable renders a two-column field table under a title header.
func renderFieldTable(title string, rows []fieldRow) string {
	tw := table.NewWriter()
	tw.SetStyle(tableStyle())
	tw.AppendHeader(table.Row{title, "Value"})
	for _, row := range rows {
		tw.AppendRow(table.Row{row.name, row.value})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
