package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/auction"
	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/simulator"
)

type SimulateCmd struct {
	Runs    int `short:"n" default:"1000" help:"Number of auctions to simulate"`
	Workers int `default:"0" help:"Parallel auctions (0 for GOMAXPROCS)"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	logger := g.logger(cfg)

	reg, err := loadRegistry(cfg.Auction.PlayersDir, logger)
	if err != nil {
		return err
	}
	players := reg.Players()

	// Per-lot logging from thousands of auctions is noise; keep warnings only.
	auctionLogger := logger.With()
	if auctionLogger.GetLevel() < log.WarnLevel {
		auctionLogger.SetLevel(log.WarnLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sim := simulator.New(simulator.Config{
		Runs:    c.Runs,
		Seed:    cfg.Auction.Seed,
		Workers: c.Workers,
		Clock:   quartz.NewReal(),
		Logger:  logger,
	}, func(seed int64) ([]*auction.Entrant, error) {
		entrants, _, err := runAuction(cfg, players, seed, auctionLogger)
		return entrants, err
	})

	summary, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	g.printer().Simulation(summary)
	return nil
}
