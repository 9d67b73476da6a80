package commands

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/mdbullet/internal/app"
	"github.com/kk-code-lab/mdbullet/internal/fs"
	"github.com/kk-code-lab/mdbullet/internal/markdown"
	renderui "github.com/kk-code-lab/mdbullet/internal/ui/render"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view file",
		Short: "Open a markdown document in a scrollable viewer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := fs.ReadSource(args[0], c.stdin)
			if err != nil {
				return err
			}
			ctx, err := c.renderContext(cmd.Context())
			if err != nil {
				return err
			}
			layout, err := c.layoutOptions()
			if err != nil {
				return err
			}
			lines := markdown.Layout(ctx, markdown.Parse(src.Text), layout)

			tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)
			screen, err := c.newScreen()
			if err != nil {
				return zerr.Wrap(err, "open terminal")
			}

			theme := renderui.ThemeFromPalette(c.cfg.Palette())
			viewer, err := app.NewApplication(screen, src.Name, lines, app.Options{
				Theme:  &theme,
				Logger: c.logger,
			})
			if err != nil {
				return err
			}
			defer func() {
				_ = viewer.Close()
			}()
			return viewer.Run(ctx)
		},
	}
}
