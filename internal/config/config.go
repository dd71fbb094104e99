// Package config loads and validates the YAML document that describes a
// prompt: its options, the initial value and presentation settings.
package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/madhermit/pick/internal/option"
)

// Document is the on-disk shape of an options file.
//
//	label: Region
//	icon: globe
//	theme: dark
//	value: eu
//	options:
//	  - value: us
//	    label: United States
//	  - value: eu
//	    label: Europe
type Document struct {
	Label    string          `yaml:"label"`
	Icon     string          `yaml:"icon"`
	Theme    string          `yaml:"theme" validate:"omitempty,oneof=auto light dark"`
	Value    string          `yaml:"value"`
	Disabled bool            `yaml:"disabled"`
	Width    int             `yaml:"width" validate:"gte=0"`
	MaxRows  int             `yaml:"max_rows" validate:"gte=0"`
	Options  []option.Option `yaml:"options" validate:"unique=Value,dive"`
}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads, parses and validates the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return parse(path, data)
}

// Parse parses and validates a document read from r. name is only used in
// error messages.
func Parse(name string, r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Path: name, Err: err}
	}
	return parse(name, data)
}

func parse(name string, data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Path: name, Line: extractLine(err), Err: err}
	}
	if err := Validate(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ReadLines reads one option per line in the "value=label" shorthand,
// skipping blank lines.
func ReadLines(r io.Reader) ([]option.Option, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read options: %w", err)
	}
	return option.ParseAll(lines), nil
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}

// ParseError reports a document that could not be read or decoded.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse %s (line %d): %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError lists every problem found in a document.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid options document: " + strings.Join(e.Problems, "; ")
}
