package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies a config file syntax
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatOf infers the format from a file extension
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Load reads, parses, applies environment overrides and validates path
func Load(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	f, err := Parse(path, data, format)
	if err != nil {
		return nil, err
	}
	ApplyEnv(f)
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes data without validating it; source names the input in errors
func Parse(source string, data []byte, format Format) (*File, error) {
	var f File
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &f)
	case FormatYAML:
		err = yaml.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, newParseError(source, err)
	}
	return &f, nil
}

// ParseError represents an error while parsing a configuration file
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func newParseError(path string, err error) *ParseError {
	pe := &ParseError{Path: path, Message: err.Error(), Err: err}
	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		pe.Line, pe.Column = derr.Position()
	}
	return pe
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// EnvPrefix starts every per-field environment override
const EnvPrefix = "CODEFIELD_"

// EnvKey returns the environment variable for a field setting, e.g. CODEFIELD_OTP_VALUE
func EnvKey(field, setting string) string {
	name := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToUpper(r)
		}
		return '_'
	}, field)
	return EnvPrefix + name + "_" + setting
}

// ApplyEnv overrides initial values and disabled flags from the environment
func ApplyEnv(f *File) {
	for i := range f.Fields {
		fd := &f.Fields[i]
		if v, ok := os.LookupEnv(EnvKey(fd.Name, "VALUE")); ok {
			fd.Initial = v
		}
		if v := os.Getenv(EnvKey(fd.Name, "DISABLED")); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				fd.Disabled = b
			}
		}
	}
}

// Default returns the built-in demo form: a six digit code, a masked PIN and a card number
func Default() *File {
	return &File{
		Title: "codefield",
		Fields: []Field{
			{
				Name:       "otp",
				Label:      "One-time code",
				Kind:       KindBox,
				Length:     6,
				Separators: []int{3},
				AutoFocus:  true,
			},
			{
				Name:        "pin",
				Label:       "PIN",
				Kind:        KindBox,
				Length:      4,
				Mask:        "*",
				Placeholder: "0",
			},
			{
				Name:          "card",
				Label:         "Card number",
				Kind:          KindLine,
				Length:        16,
				Separators:    []int{4, 8, 12},
				SeparatorChar: " ",
				Placeholder:   "0000 0000 0000 0000",
			},
		},
	}
}
