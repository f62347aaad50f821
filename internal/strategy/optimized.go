package strategy

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/player"
	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/team"
)

// OptimizedName is the config name of the Optimized strategy.
const OptimizedName = "optimized"

// Optimized values players by star rating and squad need, then raises in
// increments that shrink as the purse drains.
type Optimized struct {
	rng    Source
	logger *log.Logger
}

// NewOptimized creates an Optimized strategy
func NewOptimized(rng Source, logger *log.Logger) *Optimized {
	return &Optimized{rng: rng, logger: orDiscard(logger)}
}

func (o *Optimized) Name() string { return OptimizedName }

func (o *Optimized) Value(state *team.State, p player.Player) float64 {
	return o.EstimateValue(state, p)
}

// EstimateValue prices p for this team. The result is never below the
// player's base price.
func (o *Optimized) EstimateValue(state *team.State, p player.Player) float64 {
	starFactor := float64(p.Stars-5) * 0.4
	value := p.BasePrice + starFactor
	if p.Stars >= 8 {
		value *= 1.2
	}
	value *= o.Synergy(state, p)
	return math.Max(value, p.BasePrice)
}

// Synergy is the multiplier for how well p fits the current squad: +0.2 when
// the role is still short, +0.1 for a domestic player once the overseas slots
// are nearly used up.
func (o *Optimized) Synergy(state *team.State, p player.Player) float64 {
	synergy := 1.0
	if state.RoleNeeded(p.Role) {
		synergy += 0.2
	}
	if !p.IsForeign() && state.ForeignCount > 3 {
		synergy += 0.1
	}
	return synergy
}

func (o *Optimized) DecideBid(state *team.State, p player.Player, currentBid float64) float64 {
	next, reason := o.decide(state, p, currentBid)
	o.logger.Debug("Bid decision",
		"team", state.Name,
		"player", p.Name,
		"current", currentBid,
		"next", next,
		"reason", reason)
	return next
}

// decide applies the first matching rule. Comparisons are plain float
// comparisons with no tolerance.
func (o *Optimized) decide(state *team.State, p player.Player, currentBid float64) (float64, string) {
	if !state.IsEligible(p, currentBid) {
		return currentBid, "ineligible"
	}

	value := o.EstimateValue(state, p)
	budgetFactor := state.BudgetFactor()
	ceiling := value * budgetFactor

	if state.RoleNeeded(p.Role) && currentBid < 0.95*value {
		return round2(math.Min(currentBid+0.6, ceiling)), "role needed"
	}

	if p.Stars >= 8 && currentBid < value {
		return round2(math.Min(currentBid+0.4, ceiling)), "star player"
	}

	if currentBid < value && o.rng.Float64() < 0.4*budgetFactor {
		return round2(math.Min(currentBid+0.2, ceiling)), "speculative"
	}

	// Budget-starved teams still nudge the bid up. This mirrors long-standing
	// behaviour even though it runs against conserving a small purse.
	if state.RemainingBudget < 0.1*state.TotalBudget {
		return math.Max(currentBid, round2(currentBid+0.1)), "budget nudge"
	}

	return currentBid, "hold"
}
