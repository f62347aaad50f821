// Package team tracks one team's purse and squad as the auction proceeds.
package team

import (
	"github.com/shopspring/decimal"

	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/player"
)

// MaxForeignPlayers caps overseas signings per squad.
const MaxForeignPlayers = 4

// RoleRequirements is the squad composition each team aims for.
var RoleRequirements = map[player.Role]int{
	player.Batsman:      4,
	player.Bowler:       4,
	player.Allrounder:   4,
	player.Wicketkeeper: 2,
}

// Acquisition is a player won at auction and the price paid.
type Acquisition struct {
	Player player.Player
	Price  float64
}

// State is one team's mutable auction record. It is owned by a single team
// and only changes through ApplyWin.
type State struct {
	Name            string
	TotalBudget     float64
	RemainingBudget float64
	MaxPlayers      int // 0 means no squad size limit
	RoleCounts      map[player.Role]int
	ForeignCount    int
	Acquired        []Acquisition
}

// New creates a team with a full purse.
func New(name string, budget float64, maxPlayers int) *State {
	return &State{
		Name:            name,
		TotalBudget:     budget,
		RemainingBudget: budget,
		MaxPlayers:      maxPlayers,
		RoleCounts:      make(map[player.Role]int, len(player.Roles)),
	}
}

// IsEligible reports whether the team may bid amount for p: the bid must be
// affordable and a foreign player must not breach the overseas cap.
func (s *State) IsEligible(p player.Player, amount float64) bool {
	if amount > s.RemainingBudget {
		return false
	}
	if p.IsForeign() && s.ForeignCount >= MaxForeignPlayers {
		return false
	}
	return true
}

// ApplyWin records a won player. Eligibility is the caller's responsibility;
// nothing is re-validated here.
func (s *State) ApplyWin(p player.Player, price float64) {
	if s.RoleCounts == nil {
		s.RoleCounts = make(map[player.Role]int, len(player.Roles))
	}
	s.Acquired = append(s.Acquired, Acquisition{Player: p, Price: price})
	s.RemainingBudget -= price
	s.RoleCounts[p.Role]++
	if p.IsForeign() {
		s.ForeignCount++
	}
}

// RoleNeeded reports whether the squad is still short of the role's target.
func (s *State) RoleNeeded(role player.Role) bool {
	return s.RoleCounts[role] < RoleRequirements[role]
}

// BudgetFactor is the share of the purse still unspent.
func (s *State) BudgetFactor() float64 {
	if s.TotalBudget == 0 {
		return 0
	}
	return s.RemainingBudget / s.TotalBudget
}

// SquadFull reports whether the squad size limit has been reached
func (s *State) SquadFull() bool {
	return s.MaxPlayers > 0 && len(s.Acquired) >= s.MaxPlayers
}

// CanAfford reports whether amount fits in the remaining purse
func (s *State) CanAfford(amount float64) bool {
	return s.RemainingBudget >= amount
}

// Stars sums the star ratings of every acquired player.
func (s *State) Stars() int {
	total := 0
	for _, a := range s.Acquired {
		total += a.Player.Stars
	}
	return total
}

// Spent totals the prices paid, summed exactly in decimal.
func (s *State) Spent() float64 {
	sum := decimal.Zero
	for _, a := range s.Acquired {
		sum = sum.Add(decimal.NewFromFloat(a.Price))
	}
	return sum.InexactFloat64()
}

// SpentOn totals the prices paid for players of one role.
func (s *State) SpentOn(role player.Role) float64 {
	sum := decimal.Zero
	for _, a := range s.Acquired {
		if a.Player.Role == role {
			sum = sum.Add(decimal.NewFromFloat(a.Price))
		}
	}
	return sum.InexactFloat64()
}
