// Package config loads the demo configuration from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the kvdemo configuration.
type Config struct {
	// Key is the key the demo scenario writes to.
	Key string `envconfig:"KEY" default:"x"`
	// Actors is a comma-separated list of at least three client IDs
	// acting in the scenario.
	Actors string `envconfig:"ACTORS" default:"A,B,C"`
	// MetricsAddr, when set, exposes /metrics on this address.
	MetricsAddr string `envconfig:"METRICS_ADDR"`
}

// Process loads and validates the configuration from the environment.
func Process() (Config, []string, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, nil, err
	}

	actors, err := ParseActors(cfg.Actors)
	if err != nil {
		return Config{}, nil, err
	}
	if len(actors) < 3 {
		return Config{}, nil, fmt.Errorf("need at least 3 actors, got %d", len(actors))
	}

	return cfg, actors, nil
}

// ParseActors parses a comma-separated list of actor IDs, e.g.
// "A,B,C". IDs must be non-empty and unique.
func ParseActors(actorsStr string) ([]string, error) {
	if strings.TrimSpace(actorsStr) == "" {
		return nil, fmt.Errorf("actor list is empty")
	}

	parts := strings.Split(actorsStr, ",")
	actors := make([]string, 0, len(parts))
	seen := make(map[string]bool)

	for _, part := range parts {
		id := strings.TrimSpace(part)
		if id == "" {
			return nil, fmt.Errorf("empty actor ID in list: %q", actorsStr)
		}
		if seen[id] {
			return nil, fmt.Errorf("duplicate actor ID: %q", id)
		}
		seen[id] = true
		actors = append(actors, id)
	}

	return actors, nil
}
