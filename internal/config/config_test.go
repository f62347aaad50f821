package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Teams, 4)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auction.hcl")
	src := `
auction {
  players_dir = "data"
  seed        = 7
  max_players = 15
  log_level   = "debug"
}

team "Mumbai" {
  budget   = 90
  strategy = "statistical"
}

team "Chennai" {}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "data", cfg.Auction.PlayersDir)
	assert.Equal(t, int64(7), cfg.Auction.Seed)
	assert.Equal(t, 15, cfg.Auction.MaxPlayers)
	assert.Equal(t, "debug", cfg.Auction.LogLevel)

	require.Len(t, cfg.Teams, 2)
	assert.Equal(t, TeamConfig{Name: "Mumbai", Budget: 90, Strategy: "statistical"}, cfg.Teams[0])
	assert.Equal(t, TeamConfig{Name: "Chennai", Budget: DefaultBudget, Strategy: DefaultStrategy}, cfg.Teams[1])
}

func TestParseAppliesAuctionDefaults(t *testing.T) {
	cfg, err := Parse([]byte("auction {}\nteam \"X\" {}\n"), "inline.hcl")
	require.NoError(t, err)
	assert.Equal(t, DefaultPlayersDir, cfg.Auction.PlayersDir)
	assert.Equal(t, DefaultMaxPlayers, cfg.Auction.MaxPlayers)
	assert.Equal(t, DefaultLogLevel, cfg.Auction.LogLevel)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("auction {"), "broken.hcl")
	assert.ErrorContains(t, err, "failed to parse HCL")

	_, err = Parse([]byte("auction {}\nteam \"X\" { colour = \"red\" }\n"), "unknown.hcl")
	assert.ErrorContains(t, err, "failed to decode HCL")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"no teams", func(c *Config) { c.Teams = nil }, "at least one team"},
		{"duplicate team", func(c *Config) { c.Teams[1].Name = c.Teams[0].Name }, "duplicate team"},
		{"bad budget", func(c *Config) { c.Teams[0].Budget = -5 }, "budget must be positive"},
		{"bad strategy", func(c *Config) { c.Teams[2].Strategy = "psychic" }, "invalid strategy"},
		{"bad squad size", func(c *Config) { c.Auction.MaxPlayers = 0 }, "max_players"},
		{"bad log level", func(c *Config) { c.Auction.LogLevel = "loud" }, "invalid log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.errMsg)
		})
	}
}
