package simulator

import "math"

// TeamStats accumulates one team's results across simulated auctions.
type TeamStats struct {
	Team     string
	Strategy string

	Runs      int
	Wins      int // runs finished ranked first
	SumStars  float64
	SumStars2 float64 // sum of squares for variance
	SumSpent  float64
	SumRank   float64
	SumSquad  float64
}

// Add records one auction outcome for the team.
func (s *TeamStats) Add(rank, stars, squad int, spent float64) {
	s.Runs++
	if rank == 1 {
		s.Wins++
	}
	st := float64(stars)
	s.SumStars += st
	s.SumStars2 += st * st
	s.SumSpent += spent
	s.SumRank += float64(rank)
	s.SumSquad += float64(squad)
}

func (s *TeamStats) mean(sum float64) float64 {
	if s.Runs == 0 {
		return 0
	}
	return sum / float64(s.Runs)
}

// MeanStars is the average star total per auction
func (s *TeamStats) MeanStars() float64 { return s.mean(s.SumStars) }

// MeanSpent is the average Cr spent per auction
func (s *TeamStats) MeanSpent() float64 { return s.mean(s.SumSpent) }

// MeanRank is the average finishing position (1 is best)
func (s *TeamStats) MeanRank() float64 { return s.mean(s.SumRank) }

// MeanSquad is the average number of players bought
func (s *TeamStats) MeanSquad() float64 { return s.mean(s.SumSquad) }

// WinRate is the share of auctions finished first
func (s *TeamStats) WinRate() float64 { return s.mean(float64(s.Wins)) }

// StarsStdDev returns the sample standard deviation of star totals
func (s *TeamStats) StarsStdDev() float64 {
	if s.Runs < 2 {
		return 0
	}
	mean := s.MeanStars()
	return math.Sqrt((s.SumStars2 - float64(s.Runs)*mean*mean) / float64(s.Runs-1))
}

// StarsCI95 returns the 95% confidence interval for the mean star total
func (s *TeamStats) StarsCI95() (float64, float64) {
	mean := s.MeanStars()
	if s.Runs == 0 {
		return mean, mean
	}
	margin := 1.96 * s.StarsStdDev() / math.Sqrt(float64(s.Runs))
	return mean - margin, mean + margin
}
