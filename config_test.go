package csvfind

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, &Config{}, cfg)
	})

	t.Run("yaml fields load", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".csvfind.yaml")
		content := "delimiter: \";\"\nheaders: present\nformat: xml\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, ";", cfg.Delimiter)
		assert.Equal(t, "present", cfg.Headers)
		assert.Equal(t, "xml", cfg.Format)
	})

	t.Run("malformed yaml fails with a validation error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".csvfind.yaml")
		require.NoError(t, os.WriteFile(path, []byte(":\n\t- bad"), 0o600))

		_, err := LoadConfig(path)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestConfigSourceOptions(t *testing.T) {
	t.Parallel()

	t.Run("empty config yields no options", func(t *testing.T) {
		opts, err := (&Config{}).SourceOptions()
		require.NoError(t, err)
		assert.Empty(t, opts)
	})

	t.Run("multi-character delimiter fails validation", func(t *testing.T) {
		_, err := (&Config{Delimiter: ";;"}).SourceOptions()
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown header mode fails validation", func(t *testing.T) {
		_, err := (&Config{Headers: "maybe"}).SourceOptions()
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("full config converts", func(t *testing.T) {
		cfg := &Config{Delimiter: ";", Enclosure: "'", Escape: "/", Headers: "absent"}
		opts, err := cfg.SourceOptions()
		require.NoError(t, err)
		assert.Len(t, opts, 4)
	})
}

func TestDelimiterFromString(t *testing.T) {
	t.Parallel()

	r, err := DelimiterFromString(";")
	require.NoError(t, err)
	assert.Equal(t, ';', r)

	_, err = DelimiterFromString("")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = DelimiterFromString("ab")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParseHeaderMode(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]HeaderMode{
		"auto":    HeaderAuto,
		"":        HeaderAuto,
		"present": HeaderPresent,
		"true":    HeaderPresent,
		"absent":  HeaderAbsent,
		"false":   HeaderAbsent,
	} {
		got, err := ParseHeaderMode(input)
		require.NoError(t, err)
		assert.Equal(t, want, got, "ParseHeaderMode(%q)", input)
	}

	_, err := ParseHeaderMode("maybe")
	assert.ErrorIs(t, err, ErrValidation)
}
