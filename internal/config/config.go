// Package config loads auction settings from HCL.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/strategy"
)

// Defaults applied to omitted settings.
const (
	DefaultPlayersDir = "dataset"
	DefaultMaxPlayers = 11
	DefaultBudget     = 60.0
	DefaultLogLevel   = "info"
	DefaultStrategy   = strategy.OptimizedName
)

// Config is the complete auction configuration
type Config struct {
	Auction AuctionSettings `hcl:"auction,block"`
	Teams   []TeamConfig    `hcl:"team,block"`
}

// AuctionSettings holds auction-wide settings
type AuctionSettings struct {
	PlayersDir string `hcl:"players_dir,optional"`
	Seed       int64  `hcl:"seed,optional"`
	MaxPlayers int    `hcl:"max_players,optional"`
	LogLevel   string `hcl:"log_level,optional"`
}

// TeamConfig defines one participating team
type TeamConfig struct {
	Name     string  `hcl:"name,label"`
	Budget   float64 `hcl:"budget,optional"`
	Strategy string  `hcl:"strategy,optional"`
}

// DefaultConfig mirrors the classic four-team auction: two baseline and two
// statistical bidders with 60 Cr each.
func DefaultConfig() *Config {
	return &Config{
		Auction: AuctionSettings{
			PlayersDir: DefaultPlayersDir,
			MaxPlayers: DefaultMaxPlayers,
			LogLevel:   DefaultLogLevel,
		},
		Teams: []TeamConfig{
			{Name: "Team A", Budget: DefaultBudget, Strategy: strategy.BaselineName},
			{Name: "Team B", Budget: DefaultBudget, Strategy: strategy.BaselineName},
			{Name: "Team C", Budget: DefaultBudget, Strategy: strategy.StatisticalName},
			{Name: "Team D", Budget: DefaultBudget, Strategy: strategy.StatisticalName},
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields
// DefaultConfig.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and applies defaults.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Auction.PlayersDir == "" {
		c.Auction.PlayersDir = DefaultPlayersDir
	}
	if c.Auction.MaxPlayers == 0 {
		c.Auction.MaxPlayers = DefaultMaxPlayers
	}
	if c.Auction.LogLevel == "" {
		c.Auction.LogLevel = DefaultLogLevel
	}

	for i := range c.Teams {
		if c.Teams[i].Budget == 0 {
			c.Teams[i].Budget = DefaultBudget
		}
		if c.Teams[i].Strategy == "" {
			c.Teams[i].Strategy = DefaultStrategy
		}
	}
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if c.Auction.MaxPlayers < 1 {
		return fmt.Errorf("max_players must be at least 1, got %d", c.Auction.MaxPlayers)
	}
	if _, err := log.ParseLevel(c.Auction.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q", c.Auction.LogLevel)
	}

	if len(c.Teams) == 0 {
		return fmt.Errorf("at least one team must be configured")
	}

	names := make(map[string]bool, len(c.Teams))
	for _, t := range c.Teams {
		if names[t.Name] {
			return fmt.Errorf("duplicate team %q", t.Name)
		}
		names[t.Name] = true

		if t.Budget <= 0 {
			return fmt.Errorf("team %s: budget must be positive", t.Name)
		}
		if !strategy.IsKnown(t.Strategy) {
			return fmt.Errorf("team %s: invalid strategy %s (available: %v)", t.Name, t.Strategy, strategy.Names())
		}
	}
	return nil
}
