package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "cleanlist.db"
	DefaultExportName     = "todo-list.pdf"
	DefaultDateFormat     = "1/2/2006"
	DefaultLogLevel       = "info"

	appDirName = "cleanlist"
)

type Keymap struct {
	Quit    string `toml:"quit"`
	Add     string `toml:"add"`
	Up      string `toml:"up"`
	Down    string `toml:"down"`
	Toggle  string `toml:"toggle"`
	Delete  string `toml:"delete"`
	Rename  string `toml:"rename"`
	Confirm string `toml:"confirm"`
	Cancel  string `toml:"cancel"`
	View    string `toml:"view"`
	Edit    string `toml:"edit"`
	Theme   string `toml:"theme"`
	Export  string `toml:"export"`
}

type Config struct {
	DBPath     string `toml:"db_path"`
	ExportPath string `toml:"export_path"`
	DateFormat string `toml:"date_format"`
	LogPath    string `toml:"log_path"`
	LogLevel   string `toml:"log_level"`
	Keys       Keymap `toml:"keys"`
}

// ResolveConfigPath returns the per-user config file location, or the
// working-directory file when no user config dir is available.
func ResolveConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, appDirName, DefaultConfigFileName)
}

func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.fillDefaults()
	return cfg, nil
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) fillDefaults() {
	d := Default()
	if c.DBPath == "" {
		c.DBPath = d.DBPath
	}
	if c.ExportPath == "" {
		c.ExportPath = d.ExportPath
	}
	if c.DateFormat == "" {
		c.DateFormat = d.DateFormat
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	k, dk := &c.Keys, d.Keys
	for _, pair := range []struct {
		dst *string
		def string
	}{
		{&k.Quit, dk.Quit},
		{&k.Add, dk.Add},
		{&k.Up, dk.Up},
		{&k.Down, dk.Down},
		{&k.Toggle, dk.Toggle},
		{&k.Delete, dk.Delete},
		{&k.Rename, dk.Rename},
		{&k.Confirm, dk.Confirm},
		{&k.Cancel, dk.Cancel},
		{&k.View, dk.View},
		{&k.Edit, dk.Edit},
		{&k.Theme, dk.Theme},
		{&k.Export, dk.Export},
	} {
		if *pair.dst == "" {
			*pair.dst = pair.def
		}
	}
}

func Default() Config {
	return Config{
		DBPath:     DefaultDBName,
		ExportPath: DefaultExportName,
		DateFormat: DefaultDateFormat,
		LogLevel:   DefaultLogLevel,
		Keys: Keymap{
			Quit:    "q",
			Add:     "a",
			Up:      "k",
			Down:    "j",
			Toggle:  " ",
			Delete:  "d",
			Rename:  "r",
			Confirm: "enter",
			Cancel:  "esc",
			View:    "v",
			Edit:    "e",
			Theme:   "t",
			Export:  "p",
		},
	}
}
