package main

import (
	_ "embed"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/smalltext/config"
	"github.com/lixenwraith/smalltext/logging"
	"github.com/lixenwraith/smalltext/smalltext"
	"github.com/lixenwraith/smalltext/surface"
)

//go:embed default.toml
var defaultConfig []byte

type options struct {
	configPath string
	animation  string
	print      bool
	width      int
	color      string
	verbosity  int
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "smalltext-demo",
		Short: "Render a line of styled, animated text",
		Long: `smalltext-demo renders a smalltext widget definition.

Without --print it runs an interactive terminal session:
  Tab  enable the next animation    p  pause / resume
  n    advance a manual animation   d  disable the animation
  r    replay the last animation    q  quit (also Esc, Ctrl-C)`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "Widget definition file (.toml, .yaml, .yml), built-in demo if empty")
	f.StringVarP(&opts.animation, "animation", "a", "", "Animation key to enable at start")
	f.BoolVar(&opts.print, "print", false, "Print a single rendered line to stdout and exit")
	f.IntVarP(&opts.width, "width", "w", 0, "Line width for --print, defaults to the text length")
	f.StringVar(&opts.color, "color", "auto", "Color profile for --print: auto, none, ansi, 256, truecolor")
	f.CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	// Interactive sessions own the terminal, log to file only
	if logFile := logging.Setup(opts.verbosity, opts.print); logFile != nil {
		defer logFile.Close()
	}
	log.Debug().Str("config", opts.configPath).Bool("print", opts.print).Msg("Demo started")

	style, err := loadStyle(opts.configPath)
	if err != nil {
		return err
	}

	w := smalltext.New(style, smalltext.WithLogger(logging.GetLogger("widget")))
	if opts.animation != "" && !slices.Contains(w.AnimationKeys(), opts.animation) {
		return fmt.Errorf("unknown animation %q (available: %s)", opts.animation, strings.Join(w.AnimationKeys(), ", "))
	}

	if opts.print {
		profile, err := colorProfile(opts.color, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if opts.animation != "" {
			w.EnableAnimation(opts.animation)
		}
		return printLine(cmd.OutOrStdout(), w, opts.width, profile)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	d := newDemo(w, logging.GetLogger("demo"))
	if opts.animation != "" {
		d.enable(opts.animation)
	}
	d.run(screen)
	return nil
}

// loadStyle reads the definition at path, or the embedded demo when path is empty
func loadStyle(path string) (smalltext.TextStyle, error) {
	if path == "" {
		style, err := config.Parse(defaultConfig, config.FormatTOML)
		if err != nil {
			return smalltext.TextStyle{}, fmt.Errorf("built-in config: %w", err)
		}
		return style, nil
	}
	return config.Load(path)
}

// colorProfile resolves the --color flag, auto inspects the environment of out
func colorProfile(name string, out io.Writer) (termenv.Profile, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return termenv.NewOutput(out).EnvColorProfile(), nil
	case "none", "ascii":
		return termenv.Ascii, nil
	case "ansi", "16":
		return termenv.ANSI, nil
	case "256":
		return termenv.ANSI256, nil
	case "truecolor", "true", "24bit":
		return termenv.TrueColor, nil
	}
	return termenv.Ascii, fmt.Errorf("unknown color mode %q", name)
}

// printLine renders one pass of the widget and writes it as a single line
func printLine(out io.Writer, w *smalltext.Widget, width int, profile termenv.Profile) error {
	if width <= 0 {
		width = w.Len()
	}
	line := surface.NewLine(width, profile)
	w.Render(smalltext.Rect{Width: width, Height: 1}, line)

	if _, err := fmt.Fprintln(out, line.String()); err != nil {
		return fmt.Errorf("failed to write line: %w", err)
	}
	return nil
}
