package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/madhermit/pick/internal/option"
)

// Mode is how a run reports its result.
type Mode int

const (
	Interactive Mode = iota
	Print
	JSON
)

// Detect picks the output mode from the --json and --print flags. The
// prompt draws on stderr, so a non-terminal stderr forces Print.
func Detect(cmd *cobra.Command) Mode {
	if j, _ := cmd.Flags().GetBool("json"); j {
		return JSON
	}
	if p, _ := cmd.Flags().GetBool("print"); p {
		return Print
	}
	if !IsTerminal(os.Stderr) {
		return Print
	}
	return Interactive
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Selection is the JSON shape of a resolved prompt.
type Selection struct {
	Value    string          `json:"value"`
	Selected option.Option   `json:"selected"`
	Matched  bool            `json:"matched"`
	Options  []option.Option `json:"options"`
}

// NewSelection resolves value against options. A nil list is reported as
// an empty array rather than null.
func NewSelection(options []option.Option, value string) Selection {
	selected, matched := option.Resolve(options, value)
	if options == nil {
		options = []option.Option{}
	}
	return Selection{Value: value, Selected: selected, Matched: matched, Options: options}
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WritePlain writes each line followed by a newline.
func WritePlain(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// OptionLines renders one line per option, marking the one matching value
// with "* ".
func OptionLines(options []option.Option, value string) []string {
	lines := make([]string, len(options))
	for i, o := range options {
		prefix := "  "
		if o.Value == value {
			prefix = "* "
		}
		lines[i] = prefix + option.DisplayLabel(o) + "\t" + o.Value
	}
	return lines
}
