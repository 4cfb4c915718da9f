// Package config resolves the animation options from defaults, a YAML file
// and TEXTTYPE_* environment variables. Command line flags are applied on top
// by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log/v2"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/dlvhdr/texttype/internal/typewriter"
)

const (
	AppName     = "texttype"
	EnvFileName = AppName + ".env"
	EnvPrefix   = "TEXTTYPE_"

	// TextsSeparator splits TEXTTYPE_TEXTS into texts.
	TextsSeparator = ";"
)

const (
	BackendBubbleTea = "bubbletea"
	BackendTcell     = "tcell"
)

// File is the YAML config file layout. Durations are milliseconds.
type File struct {
	Texts           []string `yaml:"texts"`
	TypingSpeed     *int     `yaml:"typing_speed"`
	DeletingSpeed   *int     `yaml:"deleting_speed"`
	PauseDuration   *int     `yaml:"pause_duration"`
	Loop            *bool    `yaml:"loop"`
	ShowCursor      *bool    `yaml:"show_cursor"`
	CursorCharacter *string  `yaml:"cursor_character"`
	Backend         *string  `yaml:"backend"`
	ExitWhenDone    *bool    `yaml:"exit_when_done"`
}

type Config struct {
	Animation    typewriter.Options
	Backend      string
	ExitWhenDone bool
}

func Default() Config {
	return Config{
		Animation: typewriter.DefaultOptions(),
		Backend:   BackendBubbleTea,
	}
}

// DefaultPath is the YAML file read when no path is given.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, AppName, "config.yml"), nil
}

// Load resolves the configuration. An explicit path must exist; the default
// path and the env file are optional.
func Load(path string) (Config, error) {
	c := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			log.Warn("could not get config dir", "err", err)
		}
		path = p
	}

	if path != "" {
		if err := c.loadFile(path); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return c, err
			}
			log.Debug("no config file", "path", path)
		}
	}

	loadEnvFile()
	if err := c.ApplyEnv(os.Getenv); err != nil {
		return c, err
	}

	return c, nil
}

func (c *Config) loadFile(path string) error {
	d, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read config file: %w", err)
	}

	f := File{}
	if err := yaml.Unmarshal(d, &f); err != nil {
		return fmt.Errorf("could not parse config file %s: %w", path, err)
	}

	log.Debug("loaded config file", "path", path)
	c.ApplyFile(f)
	return nil
}

func (c *Config) ApplyFile(f File) {
	if f.Texts != nil {
		c.Animation.Texts = f.Texts
	}
	if f.TypingSpeed != nil {
		c.Animation.TypingSpeed = Millis(*f.TypingSpeed)
	}
	if f.DeletingSpeed != nil {
		c.Animation.DeletingSpeed = Millis(*f.DeletingSpeed)
	}
	if f.PauseDuration != nil {
		c.Animation.PauseDuration = Millis(*f.PauseDuration)
	}
	if f.Loop != nil {
		c.Animation.Loop = *f.Loop
	}
	if f.ShowCursor != nil {
		c.Animation.ShowCursor = *f.ShowCursor
	}
	if f.CursorCharacter != nil {
		c.Animation.CursorCharacter = *f.CursorCharacter
	}
	if f.Backend != nil {
		c.Backend = *f.Backend
	}
	if f.ExitWhenDone != nil {
		c.ExitWhenDone = *f.ExitWhenDone
	}
}

func loadEnvFile() {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Warn("could not get config dir", "err", err)
		return
	}

	p := filepath.Join(configDir, EnvFileName)
	if err := godotenv.Load(p); err != nil {
		log.Debug("could not load env file", "path", p, "err", err)
	}
}

// ApplyEnv reads TEXTTYPE_* variables through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvPrefix + "TEXTS"); v != "" {
		c.Animation.Texts = strings.Split(v, TextsSeparator)
	}

	durations := []struct {
		name string
		dst  *time.Duration
	}{
		{"TYPING_SPEED", &c.Animation.TypingSpeed},
		{"DELETING_SPEED", &c.Animation.DeletingSpeed},
		{"PAUSE_DURATION", &c.Animation.PauseDuration},
	}
	for _, d := range durations {
		v := getenv(EnvPrefix + d.name)
		if v == "" {
			continue
		}
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid value for '%s%s': %w", EnvPrefix, d.name, err)
		}
		*d.dst = Millis(ms)
	}

	bools := []struct {
		name string
		dst  *bool
	}{
		{"LOOP", &c.Animation.Loop},
		{"SHOW_CURSOR", &c.Animation.ShowCursor},
		{"EXIT_WHEN_DONE", &c.ExitWhenDone},
	}
	for _, b := range bools {
		v := getenv(EnvPrefix + b.name)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid value for '%s%s': %w", EnvPrefix, b.name, err)
		}
		*b.dst = parsed
	}

	if v := getenv(EnvPrefix + "CURSOR_CHARACTER"); v != "" {
		c.Animation.CursorCharacter = v
	}
	if v := getenv(EnvPrefix + "BACKEND"); v != "" {
		c.Backend = v
	}

	return nil
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendBubbleTea, BackendTcell:
	default:
		return &typewriter.ConfigError{
			Field:  "backend",
			Reason: fmt.Sprintf("must be %q or %q, got %q", BackendBubbleTea, BackendTcell, c.Backend),
		}
	}
	return c.Animation.Validate()
}

func Millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
