// Package config loads runtime settings from the environment and the
// optional rule tables file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"shipping-tools/internal/adapters/textenc"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix of every environment variable read by Load.
const EnvPrefix = "SHIPTOOLS"

const (
	BranchStoreEmbedded = "embedded"
	BranchStoreDB       = "db"
)

// Config holds the settings shared by the binaries. Each field is read
// from SHIPTOOLS_<NAME>, falling back to the bare <NAME>.
type Config struct {
	// Branch listing.
	BranchesSource    string `envconfig:"BRANCHES_SOURCE" default:"data/codigos_sucursales_correo_argentino.csv"`
	BranchesEncoding  string `envconfig:"BRANCHES_ENCODING" default:"utf-8"`
	BranchesDelimiter string `envconfig:"BRANCHES_DELIMITER" default:","`
	BranchesSheet     string `envconfig:"BRANCHES_SHEET"`
	GeneratedPath     string `envconfig:"GENERATED_PATH" default:"internal/branchdata/branches_gen.go"`

	// Sales export.
	ShipmentsInput    string `envconfig:"SHIPMENTS_INPUT" default:"ventas.csv"`
	ShipmentsOutput   string `envconfig:"SHIPMENTS_OUTPUT" default:"ventas_filtrado.csv"`
	ShipmentsEncoding string `envconfig:"SHIPMENTS_ENCODING" default:"windows-1252"`
	OutputBOM         bool   `envconfig:"OUTPUT_BOM" default:"false"`

	// Storage. BranchStore is "embedded" (compiled-in listing) or "db".
	// DatabaseURL selects Postgres; otherwise DBPath is a SQLite file.
	BranchStore string `envconfig:"BRANCH_STORE" default:"embedded"`
	DBPath      string `envconfig:"DB_PATH" default:"data/shiptools.db"`
	DatabaseURL string `envconfig:"DATABASE_URL"`

	Port      string `envconfig:"PORT" default:"8080"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`
	RulesPath string `envconfig:"RULES_PATH"`
}

// Load reads .env files (default ".env", missing files are ignored) and
// then the environment.
func Load(envFiles ...string) (*Config, error) {
	// godotenv never overrides variables that are already set.
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: read environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// BranchesComma returns the branch listing field separator.
func (c *Config) BranchesComma() rune {
	r, _ := utf8.DecodeRuneInString(c.BranchesDelimiter)
	return r
}

// UsePostgres reports whether storage goes to Postgres.
func (c *Config) UsePostgres() bool {
	return strings.TrimSpace(c.DatabaseURL) != ""
}

func (c *Config) validate() error {
	if utf8.RuneCountInString(c.BranchesDelimiter) != 1 {
		return fmt.Errorf("branches delimiter must be one character, got %q", c.BranchesDelimiter)
	}
	if _, err := textenc.Lookup(c.BranchesEncoding); err != nil {
		return fmt.Errorf("branches encoding: %w", err)
	}
	if _, err := textenc.Lookup(c.ShipmentsEncoding); err != nil {
		return fmt.Errorf("shipments encoding: %w", err)
	}
	switch c.BranchStore {
	case BranchStoreEmbedded, BranchStoreDB:
	default:
		return fmt.Errorf("branch store must be %q or %q, got %q", BranchStoreEmbedded, BranchStoreDB, c.BranchStore)
	}
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("port is empty")
	}
	return nil
}
