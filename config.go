package csvfind

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional per-search configuration surface, usually loaded
// from a .csvfind.yaml next to the data. Every field is optional; empty
// fields keep the documented defaults (delimiter auto-detected, enclosure
// '"', escape '\', headers auto).
type Config struct {
	// Delimiter is the explicit field delimiter, exactly one character.
	// Empty means auto-detect.
	Delimiter string `yaml:"delimiter"`
	// Enclosure is the field enclosure character.
	Enclosure string `yaml:"enclosure"`
	// Escape is the escape character inside enclosures.
	Escape string `yaml:"escape"`
	// Headers is the header tri-state: auto, present, or absent.
	Headers string `yaml:"headers"`
	// Format is the default report format: text, xml, or html.
	Format string `yaml:"format"`
	// Output is the default report target directory.
	Output string `yaml:"output"`
}

// LoadConfig reads a yaml config file. A missing file is not an error and
// yields the zero Config; a malformed one fails with ErrValidation.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrAccess, path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrValidation, path, err)
	}
	return &cfg, nil
}

// SourceOptions translates the config into source options, validating the
// character fields on the way.
func (c *Config) SourceOptions() ([]SourceOption, error) {
	var opts []SourceOption

	if c.Delimiter != "" {
		delimiter, err := DelimiterFromString(c.Delimiter)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithDelimiter(delimiter))
	}
	if c.Enclosure != "" {
		r, err := singleRune(c.Enclosure, "enclosure")
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithEnclosure(r))
	}
	if c.Escape != "" {
		r, err := singleRune(c.Escape, "escape")
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithEscape(r))
	}
	if c.Headers != "" {
		mode, err := ParseHeaderMode(c.Headers)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithHeaders(mode))
	}
	return opts, nil
}

// DelimiterFromString validates an explicit delimiter given as a string:
// it must be exactly one character.
func DelimiterFromString(s string) (rune, error) {
	return singleRune(s, "delimiter")
}

func singleRune(s, what string) (rune, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("%w: %s must be a single character, got %q", ErrValidation, what, s)
	}
	return runes[0], nil
}

// ParseHeaderMode resolves the tri-state header declaration from its
// textual form: auto, present (or true), absent (or false).
func ParseHeaderMode(s string) (HeaderMode, error) {
	switch s {
	case "auto", "":
		return HeaderAuto, nil
	case "present", "true":
		return HeaderPresent, nil
	case "absent", "false":
		return HeaderAbsent, nil
	default:
		return 0, fmt.Errorf("%w: headers must be auto, present, or absent, got %q", ErrValidation, s)
	}
}
