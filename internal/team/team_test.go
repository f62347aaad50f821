package team

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/player"
)

func domestic(name string, role player.Role) player.Player {
	return player.Player{Name: name, Role: role, Nationality: player.Domestic, BasePrice: 1, Stars: 6}
}

func overseas(name string, role player.Role) player.Player {
	return player.Player{Name: name, Role: role, Nationality: "O", BasePrice: 1, Stars: 7}
}

func TestIsEligibleBudget(t *testing.T) {
	s := New("Team A", 10, 11)

	assert.True(t, s.IsEligible(domestic("a", player.Batsman), 10))
	assert.False(t, s.IsEligible(domestic("a", player.Batsman), 10.01))
	assert.False(t, s.IsEligible(overseas("b", player.Bowler), 11))
}

func TestIsEligibleForeignCap(t *testing.T) {
	s := New("Team A", 60, 0)
	for i := 0; i < MaxForeignPlayers; i++ {
		require.True(t, s.IsEligible(overseas("x", player.Bowler), 1))
		s.ApplyWin(overseas("x", player.Bowler), 1)
	}

	assert.False(t, s.IsEligible(overseas("y", player.Batsman), 1))
	assert.True(t, s.IsEligible(domestic("z", player.Batsman), 1))
}

func TestApplyWinBookkeeping(t *testing.T) {
	s := New("Team A", 60, 11)
	bids := []struct {
		p     player.Player
		price float64
	}{
		{domestic("a", player.Batsman), 2.4},
		{overseas("b", player.Bowler), 3.1},
		{domestic("c", player.Batsman), 0.7},
		{overseas("d", player.Wicketkeeper), 5.55},
	}

	total := 0.0
	for _, b := range bids {
		s.ApplyWin(b.p, b.price)
		total += b.price
	}

	assert.InDelta(t, 60-total, s.RemainingBudget, 1e-9)
	assert.Equal(t, 11.75, s.Spent())
	assert.Equal(t, 3.1, s.SpentOn(player.Bowler))
	assert.Equal(t, 2, s.RoleCounts[player.Batsman])
	assert.Equal(t, 1, s.RoleCounts[player.Wicketkeeper])
	assert.Equal(t, 2, s.ForeignCount)
	assert.LessOrEqual(t, s.ForeignCount, MaxForeignPlayers)
	require.Len(t, s.Acquired, 4)
	assert.Equal(t, "a", s.Acquired[0].Player.Name)
	assert.Equal(t, 26, s.Stars())
}

func TestApplyWinDoesNotRevalidate(t *testing.T) {
	s := New("Team A", 1, 0)
	s.ApplyWin(domestic("a", player.Bowler), 3)
	assert.Equal(t, -2.0, s.RemainingBudget)
}

func TestRoleNeeded(t *testing.T) {
	s := New("Team A", 60, 0)
	for i := 0; i < RoleRequirements[player.Wicketkeeper]; i++ {
		assert.True(t, s.RoleNeeded(player.Wicketkeeper))
		s.ApplyWin(domestic("k", player.Wicketkeeper), 1)
	}
	assert.False(t, s.RoleNeeded(player.Wicketkeeper))
	assert.True(t, s.RoleNeeded(player.Allrounder))
}

func TestSquadFullAndBudgetFactor(t *testing.T) {
	s := New("Team A", 40, 2)
	assert.Equal(t, 1.0, s.BudgetFactor())
	s.ApplyWin(domestic("a", player.Bowler), 10)
	assert.False(t, s.SquadFull())
	s.ApplyWin(domestic("b", player.Bowler), 10)
	assert.True(t, s.SquadFull())
	assert.Equal(t, 0.5, s.BudgetFactor())
	assert.True(t, s.CanAfford(20))
	assert.False(t, s.CanAfford(20.5))

	unlimited := New("Team B", 40, 0)
	for i := 0; i < 20; i++ {
		unlimited.ApplyWin(domestic("x", player.Bowler), 0)
	}
	assert.False(t, unlimited.SquadFull())
}
