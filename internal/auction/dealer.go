// Package auction runs the player-by-player bidding rounds between teams.
package auction

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/player"
	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/strategy"
	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/team"
)

// maxRoundsPerLot bounds the bidding passes for a single player.
const maxRoundsPerLot = 10000

// Entrant is a team taking part in the auction together with its strategy.
type Entrant struct {
	State    *team.State
	Strategy strategy.Strategy
}

// Sale records a player sold to a team.
type Sale struct {
	Player player.Player
	Team   string
	Price  float64
	Rounds int
}

// Result is the outcome of a complete auction.
type Result struct {
	Sales  []Sale
	Unsold []player.Player
}

// Dealer puts players up one at a time and collects bids from every entrant
// until nobody raises.
type Dealer struct {
	players  []player.Player
	entrants []*Entrant
	rng      *rand.Rand
	logger   *log.Logger
}

// NewDealer creates a dealer. The player slice is copied; rng decides the
// order players come up.
func NewDealer(players []player.Player, entrants []*Entrant, rng *rand.Rand, logger *log.Logger) *Dealer {
	return &Dealer{
		players:  append([]player.Player(nil), players...),
		entrants: entrants,
		rng:      rng,
		logger:   logger,
	}
}

// Run shuffles the players and auctions each in turn.
func (d *Dealer) Run() *Result {
	d.rng.Shuffle(len(d.players), func(i, j int) {
		d.players[i], d.players[j] = d.players[j], d.players[i]
	})

	result := &Result{}
	for _, p := range d.players {
		d.logger.Info("Auctioning", "player", p.Name, "role", p.Role, "base", p.BasePrice)

		sale, sold := d.Conduct(p)
		if !sold {
			d.logger.Info("Unsold", "player", p.Name)
			result.Unsold = append(result.Unsold, p)
			continue
		}

		d.logger.Info("Sold", "player", p.Name, "team", sale.Team, "price", sale.Price)
		result.Sales = append(result.Sales, sale)
	}
	return result
}

// Conduct runs the bidding for one player starting at its base price and
// applies the win to the highest bidder, if any.
func (d *Dealer) Conduct(p player.Player) (Sale, bool) {
	current := p.BasePrice
	var winner *Entrant

	rounds := 0
	for active := true; active && rounds < maxRoundsPerLot; rounds++ {
		active = false
		for _, e := range d.entrants {
			if e.State.SquadFull() || !e.State.CanAfford(current) {
				continue
			}

			next := e.Strategy.DecideBid(e.State, p, current)
			if next <= current || !e.State.IsEligible(p, next) {
				continue
			}

			d.logger.Debug("Bid raised", "player", p.Name, "team", e.State.Name, "bid", next)
			current = next
			winner = e
			active = true
		}
	}

	if rounds >= maxRoundsPerLot {
		d.logger.Warn("Bidding round limit reached", "player", p.Name, "bid", current)
	}

	if winner == nil {
		return Sale{}, false
	}

	winner.State.ApplyWin(p, current)
	return Sale{Player: p, Team: winner.State.Name, Price: current, Rounds: rounds}, true
}
