package strategy

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/player"
	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/team"
)

// scripted replays fixed draws and fails the test if it runs out.
type scripted struct {
	t     *testing.T
	draws []float64
}

func (s *scripted) Float64() float64 {
	s.t.Helper()
	if len(s.draws) == 0 {
		s.t.Fatal("unexpected random draw")
		return 0
	}
	v := s.draws[0]
	s.draws = s.draws[1:]
	return v
}

func draws(t *testing.T, v ...float64) *scripted {
	return &scripted{t: t, draws: v}
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func newPlayer(name string, role player.Role, stars int, base float64) player.Player {
	return player.Player{
		Name:        name,
		Role:        role,
		Nationality: player.Domestic,
		BasePrice:   base,
		Stars:       stars,
		Stats:       map[string]float64{"stars": float64(stars)},
	}
}

// fillRole records n wins of role at price each.
func fillRole(s *team.State, role player.Role, n int, price float64) {
	for i := 0; i < n; i++ {
		s.ApplyWin(newPlayer("filler", role, 5, 0), price)
	}
}
