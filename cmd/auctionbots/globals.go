package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/config"
	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/player"
	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/randutil"
	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/report"
)

// Globals are flags shared by every command.
type Globals struct {
	Config     string `short:"c" default:"auction.hcl" help:"Auction config file (HCL)"`
	PlayersDir string `help:"Directory containing the player tables (overrides config)"`
	Seed       int64  `help:"RNG seed, 0 for time-based (overrides config)"`
	LogLevel   string `help:"Log level (debug|info|warn|error), overrides config"`
	Verbose    bool   `short:"v" help:"Verbose logging"`
	NoColor    bool   `help:"Disable coloured output"`
}

// load reads the config file and applies flag overrides.
func (g *Globals) load() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}

	if g.PlayersDir != "" {
		cfg.Auction.PlayersDir = g.PlayersDir
	}
	if g.Seed != 0 {
		cfg.Auction.Seed = g.Seed
	}
	if g.LogLevel != "" {
		cfg.Auction.LogLevel = g.LogLevel
	}
	if g.Verbose {
		cfg.Auction.LogLevel = "debug"
	}
	cfg.Auction.Seed = randutil.Resolve(cfg.Auction.Seed)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (g *Globals) logger(cfg *config.Config) *log.Logger {
	level, err := log.ParseLevel(cfg.Auction.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{Level: level})
}

func (g *Globals) printer() *report.Printer {
	return report.New(os.Stdout, !g.NoColor)
}

func loadRegistry(dir string, logger *log.Logger) (*player.Registry, error) {
	reg, err := player.LoadDir(dir)
	if err != nil {
		var dfe *player.DataFormatError
		if errors.As(err, &dfe) {
			return nil, fmt.Errorf("malformed player data: %w", err)
		}
		return nil, err
	}

	if dups := reg.Duplicates(); len(dups) > 0 {
		logger.Warn("Duplicate player names, lookups by name use the first table", "names", dups)
	}
	logger.Debug("Loaded players", "count", reg.Len(), "dir", dir)
	return reg, nil
}
