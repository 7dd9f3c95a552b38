package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"

	"github.com/BurntSushi/toml"
)

const (
	APP_NAME    = "kvikk"
	CONFIG_FILE = "config.toml"
)

var DEFAULT_CONFIG_FILE string = `# kvikk configuration
prompt = "ready> "
max_depth = 256
color = true
format = "sexpr"
`

type Config struct {
	Prompt   string       `toml:"prompt"`
	MaxDepth int          `toml:"max_depth"`
	Color    bool         `toml:"color"`
	Format   OutputFormat `toml:"format"`
}

func Default() *Config {
	return &Config{
		Prompt:   "ready> ",
		MaxDepth: 256,
		Color:    true,
		Format:   SEXPR,
	}
}

// Load reads the TOML file at path on top of the defaults. Keys missing from
// the file keep their default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// LoadOrCreate loads the config file at path, writing the default one first
// if it does not exist yet.
func LoadOrCreate(path string) (*Config, error) {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		if err := writeStringToFile(path, DEFAULT_CONFIG_FILE); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}
	return Load(path)
}

func (cfg *Config) validate() error {
	if cfg.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive, got %d", cfg.MaxDepth)
	}
	return nil
}

// ShowAll prints every setting as key='value'.
func (cfg *Config) ShowAll(w io.Writer) {
	v := reflect.ValueOf(cfg).Elem()

	for i := range v.NumField() {
		field := v.Type().Field(i)
		fieldValue := v.Field(i)

		tomlTag := field.Tag.Get("toml")
		if tomlTag != "" {
			fmt.Fprintf(w, "%s='%v'\n", tomlTag, fieldValue.Interface())
		}
	}
}

// DefaultPath is the config file inside the user's config directory, which
// is created if needed. XDG_CONFIG_HOME takes precedence on every platform.
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, CONFIG_FILE), nil
}

func configDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		var err error
		if base, err = os.UserConfigDir(); err != nil {
			return "", fmt.Errorf("could not determine config directory: %w", err)
		}
	}

	dir := filepath.Join(base, APP_NAME)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return dir, nil
}

func writeStringToFile(fileName, content string) error {
	file, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(content)
	return err
}
