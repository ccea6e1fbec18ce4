package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lvim-tech/xmenu/pkg/config"
	"github.com/lvim-tech/xmenu/pkg/menu"
)

// errCancelled маркира отказ от потребителя (ESC). Exit 1, без съобщение,
// както прави самият dmenu.
var errCancelled = errors.New("cancelled")

var rootFlags struct {
	bottom      bool
	grab        bool
	insensitive bool
	fuzzy       bool
	lines       int
	monitor     int
	prompt      string
	font        string
	normalBg    string
	normalFg    string
	selectedBg  string
	selectedFg  string
	verbose     bool
}

var rootCmd = &cobra.Command{
	Use:   "xmenu [variant]",
	Short: "dmenu wrapper with configurable forks and options",
	Long: `xmenu - a thin wrapper around dmenu and compatible forks.

Reads candidate items from stdin (one per line), shows the menu,
and prints the selected item to stdout. Exits with status 1 when
the menu is cancelled, like dmenu itself.

Available variants: dmenu, rofi, bemenu, fuzzel, wmenu`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(cmd, args, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	f := rootCmd.Flags()
	f.BoolVarP(&rootFlags.bottom, "bottom", "b", false, "menu appears at the bottom of the screen")
	f.BoolVar(&rootFlags.grab, "grab", false, "grab the keyboard before reading stdin")
	f.BoolVarP(&rootFlags.insensitive, "insensitive", "i", false, "match items case insensitively")
	f.BoolVar(&rootFlags.fuzzy, "fuzzy", false, "use fuzzy matching (patched forks)")
	f.IntVarP(&rootFlags.lines, "lines", "l", 0, "list items vertically with the given number of lines")
	f.IntVarP(&rootFlags.monitor, "monitor", "m", 0, "monitor to display the menu on")
	f.StringVarP(&rootFlags.prompt, "prompt", "p", "", "prompt shown left of the input field")
	f.StringVar(&rootFlags.font, "font", "", "font or font set to use")
	f.StringVar(&rootFlags.normalBg, "nb", "", "normal background color")
	f.StringVar(&rootFlags.normalFg, "nf", "", "normal foreground color")
	f.StringVar(&rootFlags.selectedBg, "sb", "", "selected background color")
	f.StringVar(&rootFlags.selectedFg, "sf", "", "selected foreground color")
	f.BoolVar(&rootFlags.verbose, "verbose", false, "log the built command line to stderr")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
}

func runMenu(cmd *cobra.Command, args []string, in io.Reader, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	setupLogging(rootFlags.verbose || cfg.Verbose)

	variantName := cfg.DefaultMenu
	if len(args) > 0 {
		variantName = args[0]
	}

	// fall back to any installed tool only when the variant was not
	// asked for explicitly
	m, err := buildMenu(cfg, variantName, len(args) == 0)
	if err != nil {
		return err
	}

	settings := flagSettings(cmd)

	items, err := readItems(in)
	if err != nil {
		return fmt.Errorf("failed to read items: %w", err)
	}

	choice, err := m.Pick(items, settings...)
	if err != nil {
		return err
	}
	if choice == "" {
		slog.Debug("menu cancelled", "variant", m.Variant().Name)
		return errCancelled
	}

	fmt.Fprintln(out, choice)
	return nil
}

// buildMenu creates a Menu for the named variant, applying config
// overrides: executable path, extra args, and persistent option defaults.
// Flags given on the command line later override the defaults by name.
// With allowFallback, a variant whose tool is not installed is replaced
// by the first available one.
func buildMenu(cfg *config.Config, variantName string, allowFallback bool) (*menu.Menu, error) {
	variant, err := menu.LookupVariant(variantName)
	if err != nil {
		return nil, err
	}

	menuArgs := cfg.GetMenuArgs(variantName)
	if menuArgs.Command != "" {
		variant.Executable = menuArgs.Command
	}

	if allowFallback && !menu.Available(variant.Executable) {
		if alt, ok := menu.DetectAvailable(); ok && alt.Name != variantName {
			slog.Debug("menu tool not installed, falling back",
				"want", variant.Executable, "using", alt.Name)
			return buildMenu(cfg, alt.Name, false)
		}
	}
	extra, err := menuArgs.SplitArgs()
	if err != nil {
		return nil, err
	}
	variant.ExtraArgs = append(append([]string{}, variant.ExtraArgs...), extra...)

	defaults, err := configSettings(cfg)
	if err != nil {
		return nil, err
	}

	return menu.New(variant, defaults...), nil
}

// configSettings превръща [options] таблицата в default настройки
func configSettings(cfg *config.Config) ([]menu.Setting, error) {
	opts, err := cfg.DecodeOptions()
	if err != nil {
		return nil, fmt.Errorf("invalid [options] in config: %w", err)
	}

	var settings []menu.Setting
	add := func(name string, value any) {
		settings = append(settings, menu.Opt(name, value))
	}

	if opts.Bottom != nil {
		add("bottom", *opts.Bottom)
	}
	if opts.Grab != nil {
		add("grab", *opts.Grab)
	}
	if opts.Insensitive != nil {
		add("insensitive", *opts.Insensitive)
	}
	if opts.Fuzzy != nil {
		add("fuzzy", *opts.Fuzzy)
	}
	if opts.Lines != nil {
		add("lines", *opts.Lines)
	}
	if opts.Monitor != nil {
		add("monitor", *opts.Monitor)
	}
	if opts.Prompt != nil {
		add("prompt", *opts.Prompt)
	}
	if opts.Font != nil {
		add("font", *opts.Font)
	}
	if opts.NormalBg != nil {
		add("normal_bg", *opts.NormalBg)
	}
	if opts.NormalFg != nil {
		add("normal_fg", *opts.NormalFg)
	}
	if opts.SelectedBg != nil {
		add("selected_bg", *opts.SelectedBg)
	}
	if opts.SelectedFg != nil {
		add("selected_fg", *opts.SelectedFg)
	}
	if opts.Height != nil {
		add("height", *opts.Height)
	}
	if opts.Width != nil {
		add("width", *opts.Width)
	}

	return settings, nil
}

// flagSettings collects only the flags actually given on the command line,
// in a fixed order matching the flag declarations.
func flagSettings(cmd *cobra.Command) []menu.Setting {
	flagOptions := []struct {
		flag  string
		name  string
		value func() any
	}{
		{"bottom", "bottom", func() any { return rootFlags.bottom }},
		{"grab", "grab", func() any { return rootFlags.grab }},
		{"insensitive", "insensitive", func() any { return rootFlags.insensitive }},
		{"fuzzy", "fuzzy", func() any { return rootFlags.fuzzy }},
		{"lines", "lines", func() any { return rootFlags.lines }},
		{"monitor", "monitor", func() any { return rootFlags.monitor }},
		{"prompt", "prompt", func() any { return rootFlags.prompt }},
		{"font", "font", func() any { return rootFlags.font }},
		{"nb", "normal_bg", func() any { return rootFlags.normalBg }},
		{"nf", "normal_fg", func() any { return rootFlags.normalFg }},
		{"sb", "selected_bg", func() any { return rootFlags.selectedBg }},
		{"sf", "selected_fg", func() any { return rootFlags.selectedFg }},
	}

	var settings []menu.Setting
	for _, fo := range flagOptions {
		if cmd.Flags().Changed(fo.flag) {
			settings = append(settings, menu.Opt(fo.name, fo.value()))
		}
	}
	return settings
}

// readItems чете кандидатите от stdin, един на ред
func readItems(in io.Reader) ([]string, error) {
	var items []string
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		items = append(items, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
