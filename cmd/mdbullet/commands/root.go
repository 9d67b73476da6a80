// Package commands implements the mdbullet command line interface.
package commands

import (
	"context"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/mdbullet/internal/bullet"
	"github.com/kk-code-lab/mdbullet/internal/config"
	"github.com/kk-code-lab/mdbullet/internal/logging"
	"github.com/kk-code-lab/mdbullet/internal/markdown"
	"github.com/kk-code-lab/mdbullet/internal/ui/printer"
	"github.com/kk-code-lab/mdbullet/internal/view"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// Version is set at build time.
var Version = "dev"

type flags struct {
	configPath string
	style      string
	glyphs     []string
	scale      float64
	width      int
	engine     string
	noColor    bool
	verbose    bool
}

// CLI represents the mdbullet command tree.
type CLI struct {
	rootCmd *cobra.Command
	flags   flags

	cfg    config.Config
	logger *zap.Logger

	stdin     io.Reader
	newScreen func() (tcell.Screen, error)
}

// New creates the command tree reading documents from stdin when no file
// is given.
func New(stdin io.Reader) *CLI {
	c := &CLI{
		stdin:     stdin,
		newScreen: tcell.NewScreen,
		logger:    zap.NewNop(),
	}

	rootCmd := &cobra.Command{
		Use:               "mdbullet",
		Short:             "Render markdown in the terminal with depth-aware list bullets",
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           Version,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = c.logger.Sync()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&c.flags.configPath, "config", "", "Config file (default ~/.config/mdbullet/config.yaml)")
	pf.StringVar(&c.flags.style, "style", "", "Bullet style: automatic, classic or ascii")
	pf.StringSliceVar(&c.flags.glyphs, "glyphs", nil, "Comma separated glyphs, one per nesting level")
	pf.Float64Var(&c.flags.scale, "scale", 0, "Text scale applied to label widths")
	pf.IntVar(&c.flags.width, "width", 0, "Wrap width (default terminal width)")
	pf.StringVar(&c.flags.engine, "engine", "", "Renderer: native or glamour")
	pf.BoolVar(&c.flags.noColor, "no-color", false, "Disable colour output")
	pf.BoolVarP(&c.flags.verbose, "verbose", "v", false, "Log debug output to stderr")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newRenderCmd())
	rootCmd.AddCommand(c.newViewCmd())
	rootCmd.AddCommand(c.newGlyphsCmd())
	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}

func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	logger, err := logging.New(c.flags.verbose)
	if err != nil {
		return err
	}
	c.logger = logger

	cfg, err := config.Load(c.flags.configPath)
	if err != nil {
		return err
	}

	fl := cmd.Flags()
	if fl.Changed("style") {
		cfg.Bullets.Style = c.flags.style
		cfg.Bullets.Glyphs = nil
	}
	if fl.Changed("glyphs") {
		cfg.Bullets.Glyphs = c.flags.glyphs
	}
	if fl.Changed("scale") {
		cfg.TextScale = c.flags.scale
	}
	if fl.Changed("width") {
		cfg.Width = c.flags.width
	}
	if fl.Changed("engine") {
		cfg.Engine = c.flags.engine
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	c.cfg = cfg
	c.logger.Debug("configuration loaded",
		zap.String("style", cfg.Bullets.Style),
		zap.Strings("glyphs", cfg.Bullets.Glyphs),
		zap.Float64("scale", cfg.TextScale),
		zap.String("engine", cfg.Engine))
	return nil
}

// renderContext carries the configured bullet style and text scale.
func (c *CLI) renderContext(ctx context.Context) (context.Context, error) {
	style, err := c.cfg.BulletStyle()
	if err != nil {
		return nil, err
	}
	ctx = bullet.WithStyle(ctx, style)
	return view.WithTextScale(ctx, c.cfg.TextScale), nil
}

func (c *CLI) layoutOptions() (markdown.Options, error) {
	quote, err := c.cfg.QuoteStyle()
	if err != nil {
		return markdown.Options{}, err
	}
	return markdown.Options{QuoteStyle: quote}, nil
}

func (c *CLI) printer(out io.Writer) (*printer.Printer, error) {
	layout, err := c.layoutOptions()
	if err != nil {
		return nil, err
	}
	width := c.cfg.Width
	if width == 0 {
		width = terminalWidth(out)
	}
	return printer.New(out, printer.Options{
		Width:   width,
		NoColor: c.flags.noColor,
		Palette: c.cfg.Palette(),
		Layout:  layout,
		Logger:  c.logger,
	}), nil
}

// terminalWidth reports the width of out when it is a terminal, or 0.
func terminalWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
