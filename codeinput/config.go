package codeinput

import (
	"errors"
	"fmt"
)

// DefaultSeparatorChar is the glyph used when Config.SeparatorChar is empty
const DefaultSeparatorChar = "-"

// Sentinel errors returned by Config.Validate
var (
	ErrInvalidLength     = errors.New("number of chars must be positive")
	ErrInvalidSeparator  = errors.New("separator must be a single character")
	ErrSeparatorPosition = errors.New("separator position out of range")
)

// Config is the immutable behavioral configuration of a code input.
//
// SeparatorPositions name character boundaries: position p sits after the
// p-th character. Valid positions lie in [1, NumberOfChars-1]; duplicates
// collapse. Box engines draw the glyph after cell p-1, mask engines insert it
// before logical index p once a character exists there.
type Config struct {
	NumberOfChars      int
	SeparatorPositions []int
	SeparatorChar      string // Default "-"
	InitialValue       string // Applied silently, like SetValue
	Placeholder        string
	Disabled           bool
	AutoFocus          bool
}

// DefaultConfig returns a config for n characters with no separators
func DefaultConfig(n int) Config {
	return Config{
		NumberOfChars: n,
		SeparatorChar: DefaultSeparatorChar,
	}
}

// Separator returns the effective separator glyph
func (c Config) Separator() string {
	if c.SeparatorChar == "" {
		return DefaultSeparatorChar
	}
	return c.SeparatorChar
}

// Validate checks the config once, at construction
func (c Config) Validate() error {
	if c.NumberOfChars <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, c.NumberOfChars)
	}
	if GraphemeLen(c.Separator()) != 1 {
		return fmt.Errorf("%w: %q", ErrInvalidSeparator, c.SeparatorChar)
	}
	for _, p := range c.SeparatorPositions {
		if p < 1 || p >= c.NumberOfChars {
			return fmt.Errorf("%w: %d not in [1, %d]", ErrSeparatorPosition, p, c.NumberOfChars-1)
		}
	}
	return nil
}

// normalize fills defaults and copies slices so callers cannot mutate engine state
func (c Config) normalize() Config {
	c.SeparatorChar = c.Separator()
	if c.SeparatorPositions != nil {
		c.SeparatorPositions = append([]int(nil), c.SeparatorPositions...)
	}
	return c
}
