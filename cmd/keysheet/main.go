package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/keysheet"
	"pkt.systems/keysheet/internal/settings"
	"pkt.systems/keysheet/pdf"
	"pkt.systems/version"
)

const (
	defaultFooter = "pkt.systems/keysheet"
	defaultWidth  = 80
)

func init() {
	version.SetDefaultModule("pkt.systems/keysheet")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	template    string
	output      string
	configPath  string
	themeName   string
	listThemes  bool
	pageSize    string
	footer      string
	noFooter    bool
	regularFont string
	boldFont    string
	blackFont   string
	monoFont    string
	badgeLayer  bool
	layerPane   bool
	preview     bool
	width       int
	color       string
	osc8        string
	verbose     bool
	showVersion bool
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	flags := pflag.NewFlagSet("keysheet", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.template, "template", "t", "", "The path to the file with keyboard shortcuts (TOML or YAML)")
	flags.StringVarP(&opts.output, "output", "o", "", "Path to the new PDF file")
	flags.StringVar(&opts.configPath, "config", "", "Render settings file (TOML)")
	flags.StringVar(&opts.themeName, "theme", "", "Theme name")
	flags.BoolVar(&opts.listThemes, "list-themes", false, "List available themes")
	flags.StringVar(&opts.pageSize, "page-size", "", "PDF page size (default A4)")
	flags.StringVar(&opts.footer, "footer", defaultFooter, "Text printed in the bottom-right corner")
	flags.BoolVar(&opts.noFooter, "no-footer", false, "Do not print the footer")
	flags.StringVar(&opts.regularFont, "regular-font", "", "TTF path for regular font")
	flags.StringVar(&opts.boldFont, "bold-font", "", "TTF path for bold font")
	flags.StringVar(&opts.blackFont, "black-font", "", "TTF path for the title font")
	flags.StringVar(&opts.monoFont, "mono-font", "", "TTF path for key badges")
	flags.BoolVar(&opts.badgeLayer, "badge-layer", false, "Put badge backgrounds in a PDF layer that can be hidden")
	flags.BoolVar(&opts.layerPane, "open-layer-pane", false, "Ask PDF viewers to open the layer pane")
	flags.BoolVar(&opts.preview, "preview", false, "Print a terminal preview instead of writing a PDF")
	flags.IntVarP(&opts.width, "width", "w", 0, "Preview width (0 uses terminal width if available)")
	flags.StringVar(&opts.color, "color", "auto", "Preview colors: auto|on|off")
	flags.StringVarP(&opts.osc8, "osc8", "8", "auto", "Preview footer as OSC8 hyperlink: auto|on|off")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log layout details")
	flags.BoolVar(&opts.showVersion, "version", false, "Print version and exit")
	flags.SortFlags = false
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: keysheet -t TEMPLATE -o OUTPUT.pdf [flags]\n")
		fmt.Fprintf(stderr, "       keysheet -t TEMPLATE --preview [flags]\n")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if opts.showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}
	if opts.listThemes {
		for _, name := range keysheet.AvailableThemes() {
			fmt.Fprintln(stdout, name)
		}
		return 0
	}
	if strings.TrimSpace(opts.template) == "" || (!opts.preview && strings.TrimSpace(opts.output) == "") {
		flags.Usage()
		return 2
	}

	logger := newLogger(stderr, opts.verbose)
	if err := execute(opts, flags, stdout, logger); err != nil {
		logger.Error("keysheet failed", "err", err)
		return 1
	}
	return 0
}

func execute(opts options, flags *pflag.FlagSet, stdout io.Writer, logger *slog.Logger) error {
	st, err := settings.Load(opts.configPath)
	if err != nil {
		return err
	}
	themeName := st.Theme
	if flags.Changed("theme") {
		themeName = opts.themeName
	}
	theme, ok := keysheet.ThemeByName(themeName)
	if !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", themeName, strings.Join(keysheet.AvailableThemes(), ", "))
	}

	doc, err := keysheet.DecodeFile(normalizePath(opts.template))
	if err != nil {
		return err
	}

	footer := defaultFooter
	if st.Footer != nil {
		footer = *st.Footer
	}
	if flags.Changed("footer") {
		footer = opts.footer
	}
	if opts.noFooter {
		footer = ""
	}

	if opts.preview {
		useColor, err := resolveToggle(opts.color, func() bool { return isTerminal(stdout) })
		if err != nil {
			return fmt.Errorf("invalid --color %q: %w", opts.color, err)
		}
		osc8, err := resolveToggle(opts.osc8, keysheet.DetectOSC8Support)
		if err != nil {
			return fmt.Errorf("invalid --osc8 %q: %w", opts.osc8, err)
		}
		return keysheet.RenderText(keysheet.TextRequest{
			Document: doc,
			Writer:   stdout,
			Width:    resolveWidth(opts.width, stdout),
			Theme:    theme,
			Footer:   footer,
			Options:  []keysheet.TextOption{keysheet.WithColor(useColor), keysheet.WithOSC8(osc8)},
		})
	}

	cfg := pdf.DefaultConfig()
	st.Apply(&cfg)
	if opts.pageSize != "" {
		cfg.PageSize = opts.pageSize
	}
	if err := applyFontFlags(&cfg, opts); err != nil {
		return err
	}
	if opts.badgeLayer {
		cfg.BadgeLayer = true
	}
	if opts.layerPane {
		if !cfg.BadgeLayer {
			return fmt.Errorf("--open-layer-pane requires a badge layer")
		}
		cfg.OpenLayerPane = true
	}

	out := normalizePath(opts.output)
	if err := pdf.SaveFile(out, pdf.RenderRequest{
		Document: doc,
		Theme:    theme,
		Config:   cfg,
		Footer:   footer,
		Logger:   logger,
	}); err != nil {
		return err
	}
	logger.Info("cheat sheet written", "path", out, "categories", len(doc.Categories), "bindings", doc.BindingCount())
	return nil
}

func applyFontFlags(cfg *pdf.Config, opts options) error {
	fonts := []struct {
		name string
		path string
		dst  *string
	}{
		{"regular font", opts.regularFont, &cfg.RegularFont},
		{"bold font", opts.boldFont, &cfg.BoldFont},
		{"black font", opts.blackFont, &cfg.BlackFont},
		{"mono font", opts.monoFont, &cfg.MonoFont},
	}
	for _, f := range fonts {
		path := strings.TrimSpace(f.path)
		if path == "" {
			continue
		}
		path = normalizePath(path)
		if err := pdf.EnsureFont(path); err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = path
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:   level,
		NoColor: !isTerminal(w),
	}))
}

func resolveWidth(width int, w io.Writer) int {
	if width > 0 {
		return width
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			return cols
		}
	}
	return defaultWidth
}

func resolveToggle(mode string, auto func() bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return auto(), nil
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
