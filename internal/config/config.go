// Package config loads the YAML configuration for the robots CLI, the
// terminal UI and the SSH server.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the top-level configuration.
type Config struct {
	ProblemsDir string      `yaml:"problems_dir"`
	DBPath      string      `yaml:"db_path"`
	TickRate    int         `yaml:"tick_rate"`
	LogLevel    string      `yaml:"log_level"`
	SSH         SSHConfig   `yaml:"ssh"`
	Theme       ThemeConfig `yaml:"theme"`
}

// SSHConfig configures the multi-session SSH server.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// ThemeConfig maps screen roles to terminal colors (ANSI code or hex).
type ThemeConfig struct {
	Red         string `yaml:"red"`
	Blue        string `yaml:"blue"`
	Yellow      string `yaml:"yellow"`
	Green       string `yaml:"green"`
	Wall        string `yaml:"wall"`
	Floor       string `yaml:"floor"`
	Destination string `yaml:"destination"`
	HUD         string `yaml:"hud"`
	Highlight   string `yaml:"highlight"`
}

// Colors returns the theme keyed by role name.
func (t ThemeConfig) Colors() map[string]string {
	return map[string]string{
		"red":         t.Red,
		"blue":        t.Blue,
		"yellow":      t.Yellow,
		"green":       t.Green,
		"wall":        t.Wall,
		"floor":       t.Floor,
		"destination": t.Destination,
		"hud":         t.HUD,
		"highlight":   t.Highlight,
	}
}

const (
	minTickRate = 1
	maxTickRate = 240
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate reports the first invalid value.
func (c Config) Validate() error {
	if c.TickRate < minTickRate || c.TickRate > maxTickRate {
		return fmt.Errorf("config: tick_rate %d not in [%d, %d]: %w", c.TickRate, minTickRate, maxTickRate, ErrInvalid)
	}
	if !validLogLevel(c.LogLevel) {
		return fmt.Errorf("config: log_level %q not one of %s: %w", c.LogLevel, strings.Join(logLevels, ", "), ErrInvalid)
	}
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("config: db_path is empty: %w", ErrInvalid)
	}
	if strings.TrimSpace(c.SSH.Address) == "" {
		return fmt.Errorf("config: ssh.address is empty: %w", ErrInvalid)
	}
	if c.SSH.IdleTimeout < 0 {
		return fmt.Errorf("config: ssh.idle_timeout %s is negative: %w", c.SSH.IdleTimeout, ErrInvalid)
	}
	for role, color := range c.Theme.Colors() {
		if strings.TrimSpace(color) == "" {
			return fmt.Errorf("config: theme.%s is empty: %w", role, ErrInvalid)
		}
	}
	return nil
}

func validLogLevel(level string) bool {
	level = strings.ToLower(level)
	for _, l := range logLevels {
		if l == level {
			return true
		}
	}
	return false
}
