package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/madhermit/pick/internal/config"
	"github.com/madhermit/pick/internal/logger"
	"github.com/madhermit/pick/internal/option"
	"github.com/madhermit/pick/internal/output"
	"github.com/madhermit/pick/internal/tui"
	"github.com/madhermit/pick/internal/tui/pickui"
	"github.com/madhermit/pick/internal/tui/selectui"
)

// ErrCancelled is returned when the prompt is dismissed without a pick.
var ErrCancelled = errors.New("cancelled")

var rootCmd = &cobra.Command{
	Use:   "pick [flags] [value=label ...]",
	Short: "Themeable select prompt for the terminal",
	Long: "pick shows a select control and prints the value of the chosen option.\n\n" +
		"Options come from arguments (value=label or just label), from --file,\n" +
		"or one per line on stdin.",
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.RunE = runRoot

	flags := rootCmd.Flags()
	flags.StringP("file", "f", "", "YAML options document")
	flags.String("value", "", "Initially selected value")
	flags.String("label", "", "Caption shown above the control")
	flags.String("icon", "", "Glyph before the caption (a name like globe, or a literal glyph)")
	flags.Bool("disabled", false, "Render the control without accepting input")
	flags.String("theme", "auto", "Colour theme: auto, light or dark")
	flags.Int("width", 0, "Fixed control width (0 fits the options)")
	flags.Int("max-rows", 0, "Rows shown before the menu scrolls (0 uses the default)")
	flags.Int("indent", 0, "Left padding applied to the whole control")
	flags.Bool("open", false, "Start with the menu open")
	flags.String("log-file", "", "Write logs to this file")
	flags.String("log-level", "info", "Log level")

	rootCmd.PersistentFlags().Bool("print", false, "Output in plain text (non-interactive)")
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
}

func Execute() error {
	return rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	logFile, _ := cmd.Flags().GetString("log-file")
	logLevel, _ := cmd.Flags().GetString("log-level")
	log, closer, err := logger.OpenFile(logFile, logger.Options{Level: logLevel})
	if err != nil {
		return err
	}
	defer closer.Close()

	props, stdinUsed, err := buildProps(cmd, args)
	if err != nil {
		log.Error().Err(err).Msg("building prompt")
		return err
	}

	if _, matched := option.Resolve(props.Options, props.Value); !matched && len(props.Options) > 0 {
		log.Warn().Str("value", props.Value).Msg("value matches no option, showing the first one")
	}
	log.Debug().Int("options", len(props.Options)).Str("theme", props.Theme.String()).Msg("prompt ready")

	switch output.Detect(cmd) {
	case output.JSON:
		return output.WriteJSON(cmd.OutOrStdout(), output.NewSelection(props.Options, props.Value))
	case output.Print:
		return output.WritePlain(cmd.OutOrStdout(), output.OptionLines(props.Options, props.Value))
	default:
		startOpen, _ := cmd.Flags().GetBool("open")
		return runPrompt(cmd.OutOrStdout(), cmd.ErrOrStderr(), props, startOpen, stdinUsed, log)
	}
}

func runPrompt(w, screen io.Writer, props selectui.Props, startOpen, stdinUsed bool, log zerolog.Logger) error {
	m := pickui.New(pickui.Options{Props: props, StartOpen: startOpen, Logger: log})

	opts := []tea.ProgramOption{tea.WithOutput(screen)}
	if stdinUsed {
		opts = append(opts, tea.WithInputTTY())
	}

	result, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return fmt.Errorf("run prompt: %w", err)
	}

	final, ok := result.(pickui.Model)
	if !ok || !final.Chosen() {
		return ErrCancelled
	}
	_, err = fmt.Fprintln(w, final.Value())
	return err
}

// buildProps merges the options document, positional options, stdin and
// flags. Flags that were set explicitly win over the document. stdinUsed
// reports whether options were read from stdin. Styles are rendered for
// stderr, where the prompt is drawn, so a captured stdout does not strip
// them.
func buildProps(cmd *cobra.Command, args []string) (props selectui.Props, stdinUsed bool, err error) {
	flags := cmd.Flags()

	doc := &config.Document{}
	if path, _ := flags.GetString("file"); path != "" {
		doc, err = config.Load(path)
		if err != nil {
			return props, false, err
		}
	}

	options := append(append([]option.Option(nil), doc.Options...), option.ParseAll(args)...)
	if len(options) == 0 && !isTerminalReader(cmd.InOrStdin()) {
		options, err = config.ReadLines(cmd.InOrStdin())
		if err != nil {
			return props, false, err
		}
		stdinUsed = true
	}
	if dups := option.Duplicates(options); len(dups) > 0 {
		return props, stdinUsed, fmt.Errorf("duplicate option values %q", dups)
	}

	themeName := doc.Theme
	if flags.Changed("theme") || themeName == "" {
		themeName, _ = flags.GetString("theme")
	}
	theme, err := selectui.ParseTheme(themeName)
	if err != nil {
		return props, stdinUsed, err
	}

	r := lipgloss.NewRenderer(cmd.ErrOrStderr())
	props = selectui.Props{
		Renderer: r,
		Value:    stringFlag(cmd, "value", doc.Value),
		Options:  options,
		Label:    stringFlag(cmd, "label", doc.Label),
		Icon:     tui.Icon(stringFlag(cmd, "icon", doc.Icon)),
		Disabled: doc.Disabled,
		Theme:    theme,
		Width:    doc.Width,
		MaxRows:  doc.MaxRows,
	}
	if flags.Changed("disabled") {
		props.Disabled, _ = flags.GetBool("disabled")
	}
	if flags.Changed("width") {
		props.Width, _ = flags.GetInt("width")
	}
	if flags.Changed("max-rows") {
		props.MaxRows, _ = flags.GetInt("max-rows")
	}
	if props.Width < 0 || props.MaxRows < 0 {
		return props, stdinUsed, fmt.Errorf("width and max-rows must be >= 0")
	}
	if indent, _ := flags.GetInt("indent"); indent > 0 {
		props.Class = r.NewStyle().PaddingLeft(indent)
	}
	return props, stdinUsed, nil
}

func stringFlag(cmd *cobra.Command, name, fallback string) string {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetString(name)
		return v
	}
	return fallback
}

func isTerminalReader(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && output.IsTerminal(f)
}
