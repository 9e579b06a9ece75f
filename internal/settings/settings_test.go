package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/ini.v1"
)

func TestMissingFileIsDefault(t *testing.T) {
	f := Open(filepath.Join(t.TempDir(), "settings.ini"))
	assert.Equal(t, Default, f.LoadMode())
}

func TestSaveSurvivesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "settings.ini")
	require.NoError(t, Open(path).SaveMode(Custom))

	// Fresh handle, as after a restart.
	assert.Equal(t, Custom, Open(path).LoadMode())

	require.NoError(t, Open(path).SaveMode(Default))
	assert.Equal(t, Default, Open(path).LoadMode())
}

func TestSaveKeepsOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.ini")
	require.NoError(t, os.WriteFile(path, []byte("[Settings]\ntheme = dark\n\n[Window]\nwidth = 600\n"), 0o644))
	require.NoError(t, Open(path).SaveMode(Custom))

	cfg, err := ini.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Custom", cfg.Section("Settings").Key("word_mode").String())
	assert.Equal(t, "dark", cfg.Section("Settings").Key("theme").String())
	assert.Equal(t, "600", cfg.Section("Window").Key("width").String())
}

func TestBadValuesAreDefault(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"nokey.ini":   "[Settings]\nother = 1\n",
		"unknown.ini": "[Settings]\nword_mode = Hard\n",
	}
	for name, body := range cases {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		assert.Equal(t, Default, Open(path).LoadMode(), name)
	}
}

func TestLowercaseValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.ini")
	require.NoError(t, os.WriteFile(path, []byte("[Settings]\nword_mode = custom\n"), 0o644))
	assert.Equal(t, Custom, Open(path).LoadMode())
}

func TestSaveRejectsUnknownMode(t *testing.T) {
	assert.Error(t, Open(filepath.Join(t.TempDir(), "s.ini")).SaveMode(Mode("Hard")))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode(" CUSTOM ")
	require.NoError(t, err)
	assert.Equal(t, Custom, m)
	_, err = ParseMode("")
	assert.Error(t, err)
}
