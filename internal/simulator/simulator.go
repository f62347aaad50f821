// Package simulator replays many independently seeded auctions and
// aggregates how each team fared.
package simulator

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/auction"
	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/team"
)

// Config holds configuration for running simulations
type Config struct {
	Runs    int
	Seed    int64
	Workers int // 0 means GOMAXPROCS
	Clock   quartz.Clock
	Logger  *log.Logger
}

// AuctionFunc runs one complete auction for seed and returns the entrants in
// their configured order with final state.
type AuctionFunc func(seed int64) ([]*auction.Entrant, error)

// Summary is the aggregated outcome of a simulation.
type Summary struct {
	Runs    int
	Seed    int64
	Teams   []TeamStats // configured team order
	Elapsed time.Duration
}

// Simulator runs auction simulations
type Simulator struct {
	config Config
	run    AuctionFunc
}

// New creates a new simulator with the given configuration
func New(config Config, run AuctionFunc) *Simulator {
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	return &Simulator{config: config, run: run}
}

// Run executes every auction and returns the aggregated summary. Each auction
// is single-threaded; independent auctions run on up to Workers goroutines.
// Run i uses seed Seed+i, so results do not depend on scheduling.
func (s *Simulator) Run(ctx context.Context) (*Summary, error) {
	if s.config.Runs <= 0 {
		return nil, fmt.Errorf("runs must be positive, got %d", s.config.Runs)
	}

	start := s.config.Clock.Now()
	outcomes := make([][]*auction.Entrant, s.config.Runs)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for i := 0; i < s.config.Runs; i++ {
		seed := s.config.Seed + int64(i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			entrants, err := s.run(seed)
			if err != nil {
				return fmt.Errorf("auction %d (seed %d): %w", i+1, seed, err)
			}
			outcomes[i] = entrants
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &Summary{Runs: s.config.Runs, Seed: s.config.Seed}
	index := map[string]int{}
	for _, entrants := range outcomes {
		states := make([]*team.State, len(entrants))
		for i, e := range entrants {
			states[i] = e.State
			if _, ok := index[e.State.Name]; !ok {
				index[e.State.Name] = len(summary.Teams)
				summary.Teams = append(summary.Teams, TeamStats{Team: e.State.Name, Strategy: e.Strategy.Name()})
			}
		}

		for _, st := range auction.Rank(states) {
			summary.Teams[index[st.Team]].Add(st.Rank, st.Stars, st.Squad, st.Spent)
		}
	}

	summary.Elapsed = s.config.Clock.Since(start)
	if s.config.Logger != nil {
		s.config.Logger.Info("Simulation complete", "runs", summary.Runs, "elapsed", summary.Elapsed)
	}
	return summary, nil
}
