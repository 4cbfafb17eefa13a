// Package config loads the TOML configuration file, falling back to
// built-in defaults when the file or any field is absent.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EditorOptions holds the [editor] section.
type EditorOptions struct {
	TabWidth         int `toml:"tab-width"`
	KillRingCapacity int `toml:"kill-ring-capacity"`
	UndoLimit        int `toml:"undo-limit"`
}

// Config is the full configuration. Keymap maps a key sequence
// ("C-x C-s") to a command name; entries override the default keymap,
// and an empty command name unbinds the sequence.
type Config struct {
	Editor EditorOptions     `toml:"editor"`
	Keymap map[string]string `toml:"keymap"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Editor: EditorOptions{
			TabWidth:         4,
			KillRingCapacity: 60,
			UndoLimit:        10000,
		},
		Keymap: map[string]string{},
	}
}

// ConfigPath returns the path of the user configuration file.
func ConfigPath() (string, error) {
	if v := os.Getenv("MULTIMACS_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "config.toml"), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "multimacs", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "multimacs", "config.toml"), nil
}

// Load reads the user configuration, merging it over the defaults. A
// missing file is not an error.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration at path, merging it over the
// defaults.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var userCfg Config
	if _, err := toml.Decode(string(data), &userCfg); err != nil {
		return cfg, err
	}

	if userCfg.Editor.TabWidth > 0 {
		cfg.Editor.TabWidth = userCfg.Editor.TabWidth
	}
	if userCfg.Editor.KillRingCapacity > 0 {
		cfg.Editor.KillRingCapacity = userCfg.Editor.KillRingCapacity
	}
	if userCfg.Editor.UndoLimit > 0 {
		cfg.Editor.UndoLimit = userCfg.Editor.UndoLimit
	}
	for seq, cmd := range userCfg.Keymap {
		cfg.Keymap[seq] = cmd
	}
	return cfg, nil
}
