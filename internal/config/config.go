// Package config loads the plx client configuration.
//
// Values come from $XDG_CONFIG_HOME/plx/config.yaml, overridden by PLX_*
// environment variables, overridden by command line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the client configuration.
type Config struct {
	Host       string        `yaml:"host" json:"host"`
	Token      string        `yaml:"token,omitempty" json:"token,omitempty"`
	AuthScheme string        `yaml:"auth_scheme,omitempty" json:"auth_scheme,omitempty"`
	Namespace  string        `yaml:"namespace" json:"namespace"`
	Owner      string        `yaml:"owner,omitempty" json:"owner,omitempty"`
	Project    string        `yaml:"project,omitempty" json:"project,omitempty"`
	Timeout    time.Duration `yaml:"timeout" json:"timeout"`
	Compress   string        `yaml:"compress,omitempty" json:"compress,omitempty"`
	Retries    int           `yaml:"retries" json:"retries"`
	LogLevel   string        `yaml:"log_level,omitempty" json:"log_level,omitempty"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Host:       "http://localhost:8000",
		AuthScheme: "Token",
		Namespace:  "default",
		Timeout:    20 * time.Second,
		Retries:    3,
		LogLevel:   "warn",
	}
}

// Dir returns $XDG_CONFIG_HOME/plx with a fallback to ~/.config/plx.
func Dir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "plx")
}

// Path returns the default configuration file.
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Load reads the file at path over the defaults. A missing file is not an
// error.
func Load(path string) (*Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return c, nil
}

// Save writes c to path, creating the directory as needed. The file may
// hold a token so it is only readable by the user.
func (c *Config) Save(path string) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

// ApplyEnv overrides fields with the PLX_* variables returned by getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	str := map[string]*string{
		"PLX_HOST":        &c.Host,
		"PLX_TOKEN":       &c.Token,
		"PLX_AUTH_SCHEME": &c.AuthScheme,
		"PLX_NAMESPACE":   &c.Namespace,
		"PLX_OWNER":       &c.Owner,
		"PLX_PROJECT":     &c.Project,
		"PLX_COMPRESS":    &c.Compress,
		"PLX_LOG_LEVEL":   &c.LogLevel,
	}
	for k, p := range str {
		if v := getenv(k); v != "" {
			*p = v
		}
	}
	if v := getenv("PLX_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("PLX_TIMEOUT: %w", err)
		}
		c.Timeout = d
	}
	if v := getenv("PLX_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PLX_RETRIES: %w", err)
		}
		c.Retries = n
	}
	return nil
}

// Validate returns an error describing the first invalid field.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Host)
	if err != nil {
		return fmt.Errorf("invalid host: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid host %q: scheme must be http or https", c.Host)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid host %q", c.Host)
	}
	switch c.Compress {
	case "", "gzip", "zstd", "br":
	default:
		return fmt.Errorf("invalid compress %q: want gzip, zstd or br", c.Compress)
	}
	if c.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}
	if c.Retries < 0 {
		return errors.New("retries must not be negative")
	}
	return nil
}

// Set assigns the field with the given YAML key from its text form.
func (c *Config) Set(key, value string) error {
	switch key {
	case "host":
		c.Host = value
	case "token":
		c.Token = value
	case "auth_scheme":
		c.AuthScheme = value
	case "namespace":
		c.Namespace = value
	case "owner":
		c.Owner = value
	case "project":
		c.Project = value
	case "compress":
		c.Compress = value
	case "log_level":
		c.LogLevel = value
	case "timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		c.Timeout = d
	case "retries":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		c.Retries = n
	default:
		return fmt.Errorf("unknown key %q", key)
	}
	return nil
}
