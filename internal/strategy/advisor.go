package strategy

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/player"
	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/team"
)

// DefaultTotalBudget is the purse, in Cr, assumed by stateless advice.
const DefaultTotalBudget = 60.0

// NoRaise is returned by the Advisor when the team should not raise.
const NoRaise = 0.0

// Advisor answers "what should we bid next?" for a named player using the
// Optimized strategy.
type Advisor struct {
	registry *player.Registry
	strategy *Optimized
	logger   *log.Logger
}

func NewAdvisor(registry *player.Registry, rng Source, logger *log.Logger) *Advisor {
	logger = orDiscard(logger)
	return &Advisor{
		registry: registry,
		strategy: NewOptimized(rng, logger),
		logger:   logger,
	}
}

// NextBid advises with no memory of earlier purchases: each call assumes a
// fresh squad with a DefaultTotalBudget purse of which purseLeft remains.
// Callers that track their squad should use NextBidFor.
//
// The result is NoRaise unless the advised bid is strictly above currentBid.
// Unknown players yield NoRaise and an error wrapping player.ErrPlayerNotFound.
func (a *Advisor) NextBid(name string, currentBid, purseLeft float64) (float64, error) {
	state := team.New("advisor", DefaultTotalBudget, 0)
	state.RemainingBudget = purseLeft
	return a.NextBidFor(state, name, currentBid)
}

// NextBidFor advises using the caller's full team state.
func (a *Advisor) NextBidFor(state *team.State, name string, currentBid float64) (float64, error) {
	p, err := a.registry.FindByName(name)
	if err != nil {
		a.logger.Warn("Player not found", "player", name)
		return NoRaise, fmt.Errorf("advise %s: %w", name, err)
	}

	next := a.strategy.DecideBid(state, p, currentBid)
	if next > currentBid {
		return next, nil
	}
	return NoRaise, nil
}
