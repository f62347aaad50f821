package auction

import (
	"sort"

	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/team"
)

// Standing is a team's place in the final table.
type Standing struct {
	Rank  int // 1-based
	Team  string
	Stars int
	Spent float64
	Squad int
}

// Rank orders teams by total star rating, highest first. Ties keep the
// order the teams were given in.
func Rank(states []*team.State) []Standing {
	standings := make([]Standing, len(states))
	for i, s := range states {
		standings[i] = Standing{Team: s.Name, Stars: s.Stars(), Spent: s.Spent(), Squad: len(s.Acquired)}
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Stars > standings[j].Stars
	})

	for i := range standings {
		standings[i].Rank = i + 1
	}
	return standings
}
