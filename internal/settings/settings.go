// Package settings persists the word mode in an INI file:
//
//	[Settings]
//	word_mode = Custom
//
// A missing file, missing key, unparsable file or unknown value all read
// as Default so the game stays playable.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/ini.v1"
)

const (
	section = "Settings"
	keyMode = "word_mode"
)

// Mode selects the pool secrets are drawn from.
type Mode string

const (
	Default Mode = "Default"
	Custom  Mode = "Custom"
)

// ParseMode accepts "default"/"custom" in any case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "default":
		return Default, nil
	case "custom":
		return Custom, nil
	}
	return Default, fmt.Errorf("unknown word mode %q", s)
}

// File is a settings.ini on disk.
type File struct {
	path string
}

// Open returns a File for path; the file need not exist yet.
func Open(path string) *File { return &File{path: path} }

// Path is the file location.
func (f *File) Path() string { return f.path }

// LoadMode reads word_mode, falling back to Default.
func (f *File) LoadMode() Mode {
	cfg, err := ini.Load(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug().Str("settings", f.path).Msg("no settings file, using Default mode")
		} else {
			log.Warn().Err(err).Str("settings", f.path).Msg("unreadable settings, using Default mode")
		}
		return Default
	}
	raw := cfg.Section(section).Key(keyMode).String()
	if raw == "" {
		return Default
	}
	m, err := ParseMode(raw)
	if err != nil {
		log.Warn().Err(err).Str("settings", f.path).Msg("using Default mode")
		return Default
	}
	return m
}

// SaveMode writes word_mode, keeping any other keys already in the file.
func (f *File) SaveMode(m Mode) error {
	if _, err := ParseMode(string(m)); err != nil {
		return err
	}
	cfg, err := ini.LooseLoad(f.path)
	if err != nil {
		// Corrupt file: start over rather than refusing to save.
		log.Warn().Err(err).Str("settings", f.path).Msg("rewriting unreadable settings")
		cfg = ini.Empty()
	}
	cfg.Section(section).Key(keyMode).SetValue(string(m))

	if dir := filepath.Dir(f.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	if err := cfg.SaveTo(f.path); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
