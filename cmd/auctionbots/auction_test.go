package main

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/config"
	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/team"
)

func TestRunAuctionFromDefaultConfig(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	cfg := config.DefaultConfig()

	reg, err := loadRegistry("../../dataset", logger)
	require.NoError(t, err)

	entrants, result, err := runAuction(cfg, reg.Players(), 42, logger)
	require.NoError(t, err)
	require.Len(t, entrants, 4)
	assert.Equal(t, reg.Len(), len(result.Sales)+len(result.Unsold))

	for i, e := range entrants {
		assert.Equal(t, cfg.Teams[i].Name, e.State.Name)
		assert.Equal(t, cfg.Teams[i].Strategy, e.Strategy.Name())
		assert.LessOrEqual(t, len(e.State.Acquired), cfg.Auction.MaxPlayers)
		assert.LessOrEqual(t, e.State.ForeignCount, team.MaxForeignPlayers)
		assert.GreaterOrEqual(t, e.State.RemainingBudget, -1e-9)
	}
}

func TestBuildEntrantsRejectsUnknownStrategy(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Teams[0].Strategy = "psychic"

	_, err := buildEntrants(cfg, 1, log.NewWithOptions(io.Discard, log.Options{}))
	assert.ErrorContains(t, err, "Team A")
}

func TestGlobalsLoadOverrides(t *testing.T) {
	g := &Globals{Config: "does-not-exist.hcl", PlayersDir: "elsewhere", Seed: 9, Verbose: true}
	cfg, err := g.load()
	require.NoError(t, err)
	assert.Equal(t, "elsewhere", cfg.Auction.PlayersDir)
	assert.Equal(t, int64(9), cfg.Auction.Seed)
	assert.Equal(t, "debug", cfg.Auction.LogLevel)

	g = &Globals{Config: "does-not-exist.hcl", LogLevel: "shouty"}
	_, err = g.load()
	assert.ErrorContains(t, err, "invalid config")
}
