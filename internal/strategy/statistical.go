package strategy

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/player"
	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/team"
)

// StatisticalName is the config name of the Statistical strategy.
const StatisticalName = "statistical"

// StatisticalRoster is the eleven-player composition the Statistical strategy
// splits its purse across.
var StatisticalRoster = map[player.Role]int{
	player.Batsman:      4,
	player.Bowler:       4,
	player.Allrounder:   2,
	player.Wicketkeeper: 1,
}

// Statistical prices players from role-specific stats and caps every bid at
// what is left of that role's share of the purse.
type Statistical struct {
	rng    Source
	logger *log.Logger
}

func NewStatistical(rng Source, logger *log.Logger) *Statistical {
	return &Statistical{rng: rng, logger: orDiscard(logger)}
}

func (s *Statistical) Name() string { return StatisticalName }

func (s *Statistical) Value(_ *team.State, p player.Player) float64 {
	return s.PredictPrice(p)
}

// PredictPrice estimates a fair price from base price, role statistics and a
// 0.2 Cr premium per star above five. Never below the base price.
func (s *Statistical) PredictPrice(p player.Player) float64 {
	var adjustment float64
	switch p.Role {
	case player.Batsman, player.Wicketkeeper:
		adjustment = battingAdjustment(p, 30)
	case player.Bowler:
		adjustment = bowlingAdjustment(p)
	case player.Allrounder:
		adjustment = (battingAdjustment(p, 25) + bowlingAdjustment(p)) / 2
	}

	starFactor := float64(p.Stars-5) * 0.2
	return math.Max(p.BasePrice+adjustment+starFactor, p.BasePrice)
}

func battingAdjustment(p player.Player, baselineAvg float64) float64 {
	return (p.Stat("bat_avg", baselineAvg)-baselineAvg)/10 + (p.Stat("strike_rate", 120)-120)/50
}

func bowlingAdjustment(p player.Player) float64 {
	return (30-p.Stat("bowl_avg", 30))/10 + (8-p.Stat("economy", 8))/2
}

// RoleAllocation is the share of the total purse set aside for role.
func (s *Statistical) RoleAllocation(state *team.State, role player.Role) float64 {
	total := 0
	for _, n := range StatisticalRoster {
		total += n
	}
	return state.TotalBudget * float64(StatisticalRoster[role]) / float64(total)
}

// AllowedBid is the most the strategy will pay for p given what has already
// been spent on the role.
func (s *Statistical) AllowedBid(state *team.State, p player.Player) float64 {
	remaining := s.RoleAllocation(state, p.Role) - state.SpentOn(p.Role)
	return math.Min(s.PredictPrice(p), remaining)
}

func (s *Statistical) DecideBid(state *team.State, p player.Player, currentBid float64) float64 {
	if !state.IsEligible(p, currentBid) {
		return currentBid
	}

	allowed := s.AllowedBid(state, p)
	next := currentBid
	switch {
	case currentBid < 0.8*allowed:
		next = round2(math.Min(currentBid+0.2, allowed))
	case currentBid < allowed && s.rng.Float64() < 0.3:
		next = round2(math.Min(currentBid+0.1, allowed))
	}

	s.logger.Debug("Bid decision", "team", state.Name, "player", p.Name, "current", currentBid, "allowed", allowed, "next", next)
	return next
}
