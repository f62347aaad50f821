package strategy

import (
	"github.com/shopspring/decimal"

	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/player"
	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/team"
)

// Evaluation summarises how well a team's purchases matched its valuations.
type Evaluation struct {
	TotalPredictedValue float64
	TotalSpent          float64
	RoleSpent           map[player.Role]float64
	Efficiency          float64 // predicted value per Cr spent; 0 when nothing was spent
}

// Evaluate values every acquisition with s and compares it to the price paid.
func Evaluate(state *team.State, s Strategy) Evaluation {
	value := decimal.Zero
	spent := decimal.Zero
	byRole := make(map[player.Role]decimal.Decimal)

	for _, a := range state.Acquired {
		value = value.Add(decimal.NewFromFloat(s.Value(state, a.Player)))
		price := decimal.NewFromFloat(a.Price)
		spent = spent.Add(price)
		byRole[a.Player.Role] = byRole[a.Player.Role].Add(price)
	}

	eval := Evaluation{
		TotalPredictedValue: value.InexactFloat64(),
		TotalSpent:          spent.InexactFloat64(),
		RoleSpent:           make(map[player.Role]float64, len(byRole)),
	}
	for role, amount := range byRole {
		eval.RoleSpent[role] = amount.InexactFloat64()
	}
	if spent.IsPositive() {
		eval.Efficiency = value.Div(spent).InexactFloat64()
	}
	return eval
}
