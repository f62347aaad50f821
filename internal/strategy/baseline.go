package strategy

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/player"
	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/team"
)

// BaselineName is the config name of the Baseline strategy.
const BaselineName = "baseline"

// Linear value model over batting average, strike rate and economy.
const (
	baselineIntercept  = 1.0
	baselineBatAvg     = 0.1
	baselineStrikeRate = 0.05
	baselineEconomy    = 0.2
)

// Baseline bids from a fixed linear value model and ignores squad needs.
type Baseline struct {
	rng    Source
	logger *log.Logger
}

func NewBaseline(rng Source, logger *log.Logger) *Baseline {
	return &Baseline{rng: rng, logger: orDiscard(logger)}
}

func (b *Baseline) Name() string { return BaselineName }

func (b *Baseline) Value(_ *team.State, p player.Player) float64 {
	return b.EstimateValue(p)
}

// EstimateValue applies the linear model, floored at the base price.
func (b *Baseline) EstimateValue(p player.Player) float64 {
	predicted := baselineIntercept +
		baselineBatAvg*p.Stat("bat_avg", 20) +
		baselineStrikeRate*p.Stat("strike_rate", 120) +
		baselineEconomy*p.Stat("economy", 8)
	return math.Max(predicted, p.BasePrice)
}

func (b *Baseline) DecideBid(state *team.State, p player.Player, currentBid float64) float64 {
	if !state.IsEligible(p, currentBid) {
		return currentBid
	}

	value := b.EstimateValue(p)
	next := currentBid
	switch {
	case currentBid < 0.8*value:
		next = round2(currentBid + 0.2)
	case b.rng.Float64() < 0.3:
		next = round2(currentBid + 0.1)
	}

	b.logger.Debug("Bid decision", "team", state.Name, "player", p.Name, "current", currentBid, "next", next)
	return next
}
