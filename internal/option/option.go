// Package option holds the caller-owned data that flows through a select
// control: the options themselves and the lookup that maps a controlled
// value onto one of them.
package option

import "strings"

// PlaceholderLabel is shown on the trigger when nothing can be displayed.
const PlaceholderLabel = "Select"

// Option is one selectable value/label pair. Value is unique within a list.
type Option struct {
	Value string `json:"value" yaml:"value" validate:"required"`
	Label string `json:"label" yaml:"label"`
}

// Placeholder stands in for the selected option when the list is empty.
var Placeholder = Option{Label: PlaceholderLabel, Value: ""}

// Resolve derives the selected option for value. The fallback order is
// fixed: exact match, first option, Placeholder. matched reports whether an
// exact match was found.
func Resolve(options []Option, value string) (selected Option, matched bool) {
	if i := Index(options, value); i >= 0 {
		return options[i], true
	}
	if len(options) > 0 {
		return options[0], false
	}
	return Placeholder, false
}

// Index returns the position of the first option whose value equals value,
// or -1.
func Index(options []Option, value string) int {
	for i, o := range options {
		if o.Value == value {
			return i
		}
	}
	return -1
}

// DisplayLabel returns the text a trigger shows for o.
func DisplayLabel(o Option) string {
	if o.Label == "" {
		return PlaceholderLabel
	}
	return o.Label
}

// Labels returns the display labels of options in order.
func Labels(options []Option) []string {
	labels := make([]string, len(options))
	for i, o := range options {
		labels[i] = DisplayLabel(o)
	}
	return labels
}

// Duplicates returns every value that appears more than once, in order of
// its second appearance.
func Duplicates(options []Option) []string {
	seen := make(map[string]int, len(options))
	var dups []string
	for _, o := range options {
		seen[o.Value]++
		if seen[o.Value] == 2 {
			dups = append(dups, o.Value)
		}
	}
	return dups
}

// Parse reads the "value=label" shorthand. Without "=", s is used as both
// value and label.
func Parse(s string) Option {
	value, label, ok := strings.Cut(s, "=")
	if !ok {
		return Option{Value: s, Label: s}
	}
	return Option{Value: strings.TrimSpace(value), Label: strings.TrimSpace(label)}
}

// ParseAll applies Parse to every non-blank entry.
func ParseAll(entries []string) []Option {
	options := make([]Option, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e) == "" {
			continue
		}
		options = append(options, Parse(e))
	}
	return options
}
