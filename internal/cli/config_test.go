package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reflectkit/fields"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, fields.DefaultIgnore(), cfg.Ignore)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.NoColor)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: YAML\nno_color: true\nlog:\n  level: debug\n"), 0o600))

	cfg, err := LoadConfig(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, FormatYAML, cfg.Format)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, fields.DefaultIgnore(), cfg.Ignore)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("REFLECTKIT_LOG_LEVEL", "error")

	cfg, err := LoadConfig(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: [unterminated"), 0o600))

	_, err := LoadConfig(viper.New(), path)
	assert.Error(t, err)

	t.Setenv("REFLECTKIT_FORMAT", "xml")
	_, err = LoadConfig(viper.New(), "")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(-1))

	logger, err = NewLogger("error")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(0))

	_, err = NewLogger("loud")
	assert.Error(t, err)
}

func TestTable_Render(t *testing.T) {
	var sb bytes.Buffer
	table := NewTable(&sb, "fixture.Light", []string{"FIELD", "TYPE"}, true)
	table.AddRow("On", "bool")
	table.AddRow("Level", "int")
	table.Render()

	assert.Equal(t, "fixture.Light\n"+
		"  FIELD  TYPE\n"+
		"  -----  ----\n"+
		"  On     bool\n"+
		"  Level  int\n", sb.String())
}
