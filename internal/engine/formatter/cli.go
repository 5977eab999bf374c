package formatter

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/irahardianto/lxcctl/internal/engine/lxc"
)

// CLIFormatter outputs Result as a human-readable report.
type CLIFormatter struct {
	Color   bool
	Verbose bool

	bold  lipgloss.Style
	dim   lipgloss.Style
	green lipgloss.Style
	red   lipgloss.Style
	cyan  lipgloss.Style
}

// NewCLIFormatter creates a new CLIFormatter.
func NewCLIFormatter(color, verbose bool) *CLIFormatter {
	f := &CLIFormatter{Color: color, Verbose: verbose}
	plain := lipgloss.NewStyle()
	f.bold, f.dim, f.green, f.red, f.cyan = plain, plain, plain, plain, plain
	if color {
		f.bold = plain.Bold(true)
		f.dim = plain.Faint(true)
		f.green = plain.Foreground(lipgloss.Color("2"))
		f.red = plain.Foreground(lipgloss.Color("1"))
		f.cyan = plain.Foreground(lipgloss.Color("6"))
	}
	return f
}

// Format returns a formatted CLI report.
func (f *CLIFormatter) Format(result Result) string {
	var b strings.Builder

	if result.Error != nil {
		f.writeError(&b, result.Error)
		return b.String()
	}

	switch result.Op {
	case "list":
		if result.Names != nil {
			for _, n := range result.Names {
				b.WriteString(n + "\n")
			}
		} else {
			b.WriteString(result.Output)
		}
	case "info":
		f.writeInfo(&b, result.Info)
	case "ps", "ps-all":
		f.writeProcesses(&b, result.Processes)
	case "start", "stop":
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			f.green.Render("✅"),
			f.bold.Render(result.Container),
			f.cyan.Render(result.Info.State())))
		if f.Verbose {
			f.writeInfo(&b, result.Info)
		}
	case "create":
		b.WriteString(fmt.Sprintf("%s Created %s\n", f.green.Render("📦"), f.bold.Render(result.Container)))
		f.writeRaw(&b, result.Output)
	case "delete":
		b.WriteString(fmt.Sprintf("%s Deleted %s\n", f.green.Render("🗑️"), f.bold.Render(result.Container)))
		f.writeRaw(&b, result.Output)
	default:
		b.WriteString(result.Output)
	}

	return b.String()
}

func (f *CLIFormatter) writeError(b *strings.Builder, e *ErrorDetail) {
	b.WriteString(fmt.Sprintf("%s %s %s\n",
		f.red.Render("❌"),
		f.bold.Render(string(e.Kind)+":"),
		e.Message))
	f.writeRaw(b, e.Output)
}

// writeRaw prints command output in verbose mode.
func (f *CLIFormatter) writeRaw(b *strings.Builder, raw string) {
	if !f.Verbose || strings.TrimSpace(raw) == "" {
		return
	}
	b.WriteString(fmt.Sprintf("\n    %s\n", f.dim.Render("--- raw output ---")))
	for _, line := range strings.Split(strings.TrimRight(raw, "\n"), "\n") {
		b.WriteString(fmt.Sprintf("    %s\n", f.dim.Render(line)))
	}
}

func (f *CLIFormatter) writeInfo(b *strings.Builder, info lxc.Info) {
	keys := make([]string, 0, len(info))
	width := 0
	for k := range info {
		keys = append(keys, k)
		width = max(width, len(k))
	}
	sort.Strings(keys)

	for _, k := range keys {
		b.WriteString(fmt.Sprintf("  %s %s\n", f.bold.Render(fmt.Sprintf("%-*s", width+1, k+":")), info[k]))
	}
}

func (f *CLIFormatter) writeProcesses(b *strings.Builder, procs []lxc.Process) {
	if len(procs) == 0 {
		b.WriteString(f.dim.Render("no processes") + "\n")
		return
	}

	cols := columnOrder(procs)
	rows := make([][]string, 0, len(procs))
	for _, p := range procs {
		row := make([]string, len(cols))
		for i, c := range cols {
			row[i] = p[c]
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(f.dim).
		Headers(cols...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return f.bold.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	b.WriteString(t.String())
	b.WriteString("\n")
}

// trailingColumns are ps columns whose values contain spaces; they are
// shown last, as ps itself does.
var trailingColumns = []string{"CMD", "COMMAND", "ARGS"}

// columnOrder returns the union of record keys: CONTAINER first, command
// columns last, the rest alphabetically.
func columnOrder(procs []lxc.Process) []string {
	seen := map[string]bool{}
	var cols []string
	for _, p := range procs {
		for k := range p {
			if !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
	}

	rank := func(c string) int {
		switch {
		case c == "CONTAINER":
			return 0
		case slices.Contains(trailingColumns, c):
			return 2
		default:
			return 1
		}
	}
	sort.Slice(cols, func(i, j int) bool {
		ri, rj := rank(cols[i]), rank(cols[j])
		if ri != rj {
			return ri < rj
		}
		return cols[i] < cols[j]
	})
	return cols
}
