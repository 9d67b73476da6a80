package markdown

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

func tableLines(tbl Table) []Line {
	if len(tbl.Headers) == 0 {
		return nil
	}
	rendered := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(tbl.Headers...).
		Rows(tbl.Rows...).
		StyleFunc(func(_, col int) lipgloss.Style {
			return cellStyle(tbl.Align, col)
		}).
		String()

	rows := strings.Split(rendered, "\n")
	lines := make([]Line, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, Line{Content: []Segment{{Text: strings.TrimRight(row, " "), Kind: KindTable}}, NoWrap: true})
	}
	return lines
}

func cellStyle(align []Alignment, col int) lipgloss.Style {
	style := lipgloss.NewStyle().Padding(0, 1)
	if col >= len(align) {
		return style
	}
	switch align[col] {
	case AlignCenter:
		return style.Align(lipgloss.Center)
	case AlignRight:
		return style.Align(lipgloss.Right)
	default:
		return style
	}
}
