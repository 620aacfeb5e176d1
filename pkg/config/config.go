// Package config loads the optional padring configuration file and applies
// environment overrides. Absent file and absent keys fall back to built-in
// defaults, so a bare installation needs no configuration at all.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/provide-io/padring/pkg/utils/shellparse"
)

// Built-in defaults. The device glob matches the wacom_led attribute
// directories exposed for Intuos4-class tablets.
const (
	DefaultDeviceGlob     = "/sys/bus/usb/devices/*/wacom_led"
	DefaultConvertCommand = "i4oled"
	DefaultInjectCommand  = "xdotool getactivewindow key --clearmodifiers"
)

// Config is the padring configuration.
type Config struct {
	ProfileRoot    string `toml:"profile_root"`
	DeviceGlob     string `toml:"device_glob"`
	ConvertCommand string `toml:"convert_command"`
	InjectCommand  string `toml:"inject_command"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DeviceGlob:     DefaultDeviceGlob,
		ConvertCommand: DefaultConvertCommand,
		InjectCommand:  DefaultInjectCommand,
	}
}

// Path returns the config file location, using XDG_CONFIG_HOME or falling
// back to ~/.config.
func Path() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "padring", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "padring", "config.toml")
}

// Load reads the config file when present and applies environment
// overrides. A missing file is not an error.
func Load() (Config, error) {
	return LoadFile(Path())
}

// LoadFile is Load against an explicit file path.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	if root := os.Getenv("PADRING_PROFILE_ROOT"); root != "" {
		cfg.ProfileRoot = root
	}

	return cfg, nil
}

// Root resolves the profile root: config value first, then the invoking
// user's home directory.
func (c Config) Root() (string, error) {
	if c.ProfileRoot != "" {
		return c.ProfileRoot, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".padring"), nil
}

// ConvertArgv returns the icon converter command split into argv form.
func (c Config) ConvertArgv() ([]string, error) {
	return shellparse.Split(c.ConvertCommand)
}

// InjectArgv returns the key injector command split into argv form.
func (c Config) InjectArgv() ([]string, error) {
	return shellparse.Split(c.InjectCommand)
}
