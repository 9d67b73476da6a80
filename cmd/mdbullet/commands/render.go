package commands

import (
	"github.com/kk-code-lab/mdbullet/internal/config"
	"github.com/kk-code-lab/mdbullet/internal/fs"
	"github.com/kk-code-lab/mdbullet/internal/markdown"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render [file]",
		Short: "Print a markdown document",
		Long:  "Print a markdown document to stdout. Reads stdin when file is omitted or \"-\".",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			src, err := fs.ReadSource(path, c.stdin)
			if err != nil {
				return err
			}
			c.logger.Debug("rendering", zap.String("source", src.Name), zap.Int("bytes", len(src.Text)))

			ctx, err := c.renderContext(cmd.Context())
			if err != nil {
				return err
			}
			p, err := c.printer(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			if c.cfg.Engine == config.EngineGlamour {
				return p.PrintGlamour(ctx, src.Text)
			}
			return p.Print(ctx, markdown.Parse(src.Text))
		},
	}
}
