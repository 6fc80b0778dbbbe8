// Package config loads the server configuration from a YAML file with
// sensible defaults for every field; a missing file is not an error.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Server holds all configuration for the mafia server.
type Server struct {
	// Network
	BindAddress string `yaml:"bind_address"`
	Port        int    `yaml:"port"`

	// Locale selects the string table: "en" or "ru".
	Locale string `yaml:"locale"`

	// QueueSize bounds every inter-service channel. Sends block when a
	// queue is full; at chat rates the queues stay near empty.
	QueueSize int `yaml:"queue_size"`

	// WriteTimeoutMS is the per-write socket deadline in milliseconds.
	WriteTimeoutMS int `yaml:"write_timeout_ms"`

	Game Game `yaml:"game"`
}

// Game holds the gameplay knobs.
type Game struct {
	MinPlayers       int `yaml:"min_players"`
	DayDurationSec   int `yaml:"day_duration_sec"`
	NightDurationSec int `yaml:"night_duration_sec"`
}

// DefaultServer returns a Server config with the defaults.
func DefaultServer() Server {
	return Server{
		BindAddress:    "127.0.0.1",
		Port:           8080,
		Locale:         "en",
		QueueSize:      1024,
		WriteTimeoutMS: 5000,
		Game: Game{
			MinPlayers:       3,
			DayDurationSec:   180,
			NightDurationSec: 60,
		},
	}
}

// LoadServer loads the config from a YAML file. A missing file yields
// the defaults.
func LoadServer(path string) (Server, error) {
	cfg := DefaultServer()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// Addr returns the host:port to listen on.
func (s Server) Addr() string {
	return net.JoinHostPort(s.BindAddress, strconv.Itoa(s.Port))
}

// WriteTimeout returns the write deadline as a duration.
func (s Server) WriteTimeout() time.Duration {
	return time.Duration(s.WriteTimeoutMS) * time.Millisecond
}

// DayDuration returns the day phase length.
func (g Game) DayDuration() time.Duration {
	return time.Duration(g.DayDurationSec) * time.Second
}

// NightDuration returns the night phase length.
func (g Game) NightDuration() time.Duration {
	return time.Duration(g.NightDurationSec) * time.Second
}
