package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/auction"
	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/config"
	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/player"
	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/randutil"
	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/report"
	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/strategy"
	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/team"
)

// buildEntrants creates fresh teams for one auction. Stream 0 is reserved for
// the dealer's shuffle; team i draws from stream i+1.
func buildEntrants(cfg *config.Config, seed int64, logger *log.Logger) ([]*auction.Entrant, error) {
	entrants := make([]*auction.Entrant, 0, len(cfg.Teams))
	for i, tc := range cfg.Teams {
		s, err := strategy.New(tc.Strategy, randutil.Stream(seed, i+1), logger.WithPrefix(tc.Name))
		if err != nil {
			return nil, fmt.Errorf("team %s: %w", tc.Name, err)
		}
		entrants = append(entrants, &auction.Entrant{
			State:    team.New(tc.Name, tc.Budget, cfg.Auction.MaxPlayers),
			Strategy: s,
		})
	}
	return entrants, nil
}

func runAuction(cfg *config.Config, players []player.Player, seed int64, logger *log.Logger) ([]*auction.Entrant, *auction.Result, error) {
	entrants, err := buildEntrants(cfg, seed, logger)
	if err != nil {
		return nil, nil, err
	}
	dealer := auction.NewDealer(players, entrants, randutil.Stream(seed, 0), logger)
	return entrants, dealer.Run(), nil
}

type RunCmd struct {
	Evaluate bool `default:"true" negatable:"" help:"Print strategy value-for-money evaluation"`
}

func (c *RunCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	logger := g.logger(cfg)

	reg, err := loadRegistry(cfg.Auction.PlayersDir, logger)
	if err != nil {
		return err
	}

	logger.Info("Starting auction", "players", reg.Len(), "teams", len(cfg.Teams), "seed", cfg.Auction.Seed)
	entrants, result, err := runAuction(cfg, reg.Players(), cfg.Auction.Seed, logger)
	if err != nil {
		return err
	}

	out := g.printer()
	for _, s := range result.Sales {
		out.Sale(s)
	}
	for _, p := range result.Unsold {
		out.Unsold(p)
	}

	states := make([]*team.State, len(entrants))
	rows := make([]report.EvaluationRow, len(entrants))
	for i, e := range entrants {
		states[i] = e.State
		out.TeamSummary(e.State)
		rows[i] = report.EvaluationRow{
			Team:       e.State.Name,
			Strategy:   e.Strategy.Name(),
			Evaluation: strategy.Evaluate(e.State, e.Strategy),
		}
	}

	out.Rankings(auction.Rank(states))
	if c.Evaluate {
		out.Evaluations(rows)
	}
	return nil
}
