// # internal/output/print.go
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"importsearch/internal/search"
)

var (
	panelTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2")).
			Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("2")).
			Padding(0, 1)

	visitedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	ruleStyle = lipgloss.NewStyle().Faint(true)

	dimStyle = lipgloss.NewStyle().Faint(true)
)

const ruleWidth = 60

// Print writes the human-readable console block: the summary table, the
// visited-files panel, a rule and the rendered import tree. Nothing is
// written to disk for this format.
func Print(w io.Writer, result *search.Result) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleRounded)
	tbl.Style().Options.SeparateRows = true
	tbl.SetTitle("Import Summary")
	tbl.AppendHeader(table.Row{"File", "Dependencies"})
	tbl.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Colors: text.Colors{text.FgCyan}},
		{Number: 2, Colors: text.Colors{text.FgMagenta}},
	})

	for _, key := range result.Summary.Keys() {
		names, _ := result.Summary.Get(key)
		block := "None"
		if len(names) > 0 {
			block = strings.Join(names, "\n")
		}
		tbl.AppendRow(table.Row{key, block})
	}
	tbl.Render()

	visited := "None"
	if len(result.Visited) > 0 {
		visited = strings.Join(result.Visited, "\n")
	}
	fmt.Fprintln(w, panelTitleStyle.Render("Visited Files"))
	fmt.Fprintln(w, panelStyle.Render(visitedStyle.Render(visited)))

	fmt.Fprintln(w, rule("Import Tree"))

	tree := RenderTree(BuildTree(result.Graph, result.Root), result.Entry)
	if tree != "" {
		fmt.Fprintln(w, tree)
	} else {
		fmt.Fprintln(w, dimStyle.Render("No import tree to display"))
	}
}

func rule(title string) string {
	line := "── " + title + " "
	if pad := ruleWidth - lipgloss.Width(line); pad > 0 {
		line += strings.Repeat("─", pad)
	}
	return ruleStyle.Render(line)
}
