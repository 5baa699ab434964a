// Package config loads run parameters from a YAML file with LOTOGEN_*
// environment overrides on top.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/dmfelipe/lotogen/internal/lottery"
)

// Config holds every run parameter. It is read once at startup and
// never mutated afterwards.
type Config struct {
	// TargetGames is the total number of games wanted, initial games
	// included.
	TargetGames int `yaml:"target_games" env:"LOTOGEN_TARGET_GAMES"`
	// InitialGames are hand-curated games always included in the
	// output. Seeding fails the run when they are inconsistent.
	InitialGames [][]int64 `yaml:"initial_games"`
	// Seed drives deterministic generation; omitted means
	// lottery.DefaultSeed.
	Seed *uint64 `yaml:"seed" env:"LOTOGEN_SEED"`
	// MaxNumber is the highest playable number, at most
	// lottery.MaxNumber.
	MaxNumber int64 `yaml:"max_number" env:"LOTOGEN_MAX_NUMBER"`
	// MinDesiredNumber is the lowest number allowed in a valid game.
	MinDesiredNumber int64 `yaml:"min_desired_number" env:"LOTOGEN_MIN_DESIRED_NUMBER"`
	// MaxAttempts caps random draws; 0 disables the cap.
	MaxAttempts int64 `yaml:"max_attempts" env:"LOTOGEN_MAX_ATTEMPTS"`

	// GamesCSV is the path of the accepted-games csv file.
	GamesCSV string `yaml:"games_csv" env:"LOTOGEN_GAMES_CSV"`
	// ReportXLSX is the path of the xlsx run report; empty skips it.
	ReportXLSX string `yaml:"report_xlsx" env:"LOTOGEN_REPORT_XLSX"`
	// DBPath is the sqlite database path; empty skips persistence.
	DBPath string `yaml:"db_path" env:"LOTOGEN_DB_PATH"`
}

// Load reads the YAML file at path, applies environment overrides and
// defaults, and validates the result.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment overrides: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Seed == nil {
		seed := lottery.DefaultSeed
		c.Seed = &seed
	}
	if c.MaxNumber == 0 {
		c.MaxNumber = lottery.MaxNumber
	}
	if c.MinDesiredNumber == 0 {
		c.MinDesiredNumber = 1
	}
	if c.GamesCSV == "" {
		c.GamesCSV = "optimized_games.csv"
	}
}

// Validate rejects parameter combinations the generator cannot honor.
func (c *Config) Validate() error {
	if c.TargetGames <= 0 {
		return fmt.Errorf("target_games must be positive, got %d", c.TargetGames)
	}
	if c.MaxNumber < lottery.GameSize || c.MaxNumber > lottery.MaxNumber {
		return fmt.Errorf("max_number must be in [%d, %d], got %d",
			lottery.GameSize, lottery.MaxNumber, c.MaxNumber)
	}
	if c.MinDesiredNumber < 1 || c.MinDesiredNumber > c.MaxNumber {
		return fmt.Errorf("min_desired_number must be in [1, %d], got %d",
			c.MaxNumber, c.MinDesiredNumber)
	}
	if c.MaxAttempts < 0 {
		return fmt.Errorf("max_attempts must not be negative, got %d", c.MaxAttempts)
	}
	for i, game := range c.InitialGames {
		if err := validateGame(game); err != nil {
			return fmt.Errorf("initial_games[%d] %v: %w", i, game, err)
		}
	}
	return nil
}

func validateGame(game []int64) error {
	if len(game) != lottery.GameSize {
		return fmt.Errorf("want %d numbers, got %d", lottery.GameSize, len(game))
	}
	for i, n := range game {
		if n < 1 || n > lottery.MaxNumber {
			return fmt.Errorf("number %d outside [1, %d]", n, lottery.MaxNumber)
		}
		if i > 0 && n <= game[i-1] {
			return fmt.Errorf("numbers must be strictly increasing")
		}
	}
	return nil
}

// Rule returns the validity window the run applies to every game.
func (c *Config) Rule() lottery.Rule {
	return lottery.Rule{MinDesired: c.MinDesiredNumber, MaxNumber: c.MaxNumber}
}

// Games returns the initial games as lottery games.
func (c *Config) Games() []lottery.Game {
	games := make([]lottery.Game, len(c.InitialGames))
	for i, g := range c.InitialGames {
		games[i] = lottery.Game(g)
	}
	return games
}
