package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kk-code-lab/mdbullet/internal/bullet"
	"github.com/kk-code-lab/mdbullet/internal/markdown"
	"github.com/kk-code-lab/mdbullet/internal/view"
	"github.com/spf13/cobra"
)

func (c *CLI) newGlyphsCmd() *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:   "glyphs",
		Short: "Show the bullet label drawn at each nesting level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if depth < 1 {
				depth = 1
			}
			ctx, err := c.renderContext(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, depth)
			for level := 0; level < depth; level++ {
				label := bullet.Label(ctx, level)
				rows = append(rows, []string{
					strconv.Itoa(level),
					strconv.Quote(label),
					strconv.Itoa(view.Width(label)),
				})
			}
			tbl := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("level", "label", "cells").
				Rows(rows...)
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, tbl.Render()); err != nil {
				return err
			}

			p, err := c.printer(out)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
			return p.Print(ctx, markdown.Parse(sampleList(depth)))
		},
	}
	cmd.Flags().IntVarP(&depth, "depth", "d", 4, "Number of nesting levels to show")
	return cmd
}

// sampleList builds a list nested depth levels deep.
func sampleList(depth int) string {
	var b strings.Builder
	for level := 0; level < depth; level++ {
		fmt.Fprintf(&b, "%s- level %d\n", strings.Repeat("  ", level), level)
	}
	return b.String()
}
