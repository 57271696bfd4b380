package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/robots.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration. It matches the embedded
// defaults/robots.yaml and is used only if that file fails to parse.
func Default() Config {
	return Config{
		ProblemsDir: "",
		DBPath:      "~/.robots/robots.db",
		TickRate:    30,
		LogLevel:    "info",
		SSH: SSHConfig{
			Address:     ":2323",
			HostKey:     "~/.robots/ssh_host_ed25519",
			IdleTimeout: 10 * time.Minute,
		},
		Theme: ThemeConfig{
			Red:         "196",
			Blue:        "33",
			Yellow:      "226",
			Green:       "46",
			Wall:        "252",
			Floor:       "240",
			Destination: "213",
			HUD:         "250",
			Highlight:   "231",
		},
	}
}
