package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr string     `env:"HTTP_ADDR" envDefault:":8080"`
	DBPath   string     `env:"DB_PATH" envDefault:"data/mexicano.db"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	SPADir   string     `env:"SPA_DIR" envDefault:"../web/dist"`

	// Store selects the tournament backend: sqlite, firestore, or memory.
	// Admin accounts and sessions always live in SQLite.
	Store                string `env:"STORE" envDefault:"sqlite"`
	FirestoreProject     string `env:"FIRESTORE_PROJECT"`
	FirestoreCredentials string `env:"FIRESTORE_CREDENTIALS"`

	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@padelmx.club"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"mexicano"`

	// PlayerPool seeds the roster of tournaments created without an
	// explicit player list.
	PlayerPool []string `env:"PLAYER_POOL" envSeparator:"," envDefault:"Mesut,Mumtaz,Berk,Erdem,Hulusi,Emre,Ahmet,Batuhan,Sercan,Okan,Deniz,Sezgin"`
	CourtCount int      `env:"COURT_COUNT" envDefault:"2"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
