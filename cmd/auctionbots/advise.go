package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/player"
	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/randutil"
	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/strategy"
)

type AdviseCmd struct {
	Player     string  `arg:"" help:"Name of the player on the block"`
	CurrentBid float64 `arg:"" help:"Current highest bid (Cr)"`
	PurseLeft  float64 `arg:"" help:"Remaining purse (Cr)"`
}

func (c *AdviseCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	logger := g.logger(cfg)

	reg, err := loadRegistry(cfg.Auction.PlayersDir, logger)
	if err != nil {
		return err
	}

	advisor := strategy.NewAdvisor(reg, randutil.New(cfg.Auction.Seed), logger)
	next, err := advisor.NextBid(c.Player, c.CurrentBid, c.PurseLeft)
	if errors.Is(err, player.ErrPlayerNotFound) {
		fmt.Fprintf(os.Stdout, "Player %s not found.\n", c.Player)
		return nil
	}
	if err != nil {
		return err
	}

	g.printer().Advice(c.Player, c.CurrentBid, next)
	return nil
}
