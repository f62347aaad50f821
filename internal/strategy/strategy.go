// Package strategy decides how a team responds to the current bid on a player.
//
// Every strategy is a pure function of the team's own State, the player on
// the block and the current bid, plus an injected random source for the
// speculative branches. Strategies never mutate State; the dealer applies wins.
package strategy

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/player"
	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/team"
)

// Source supplies uniform draws in [0,1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Strategy responds to bids on behalf of one team.
type Strategy interface {
	// Name identifies the strategy in config files and reports.
	Name() string

	// DecideBid returns the team's next bid. Returning currentBid (or
	// anything not above it) means the team does not raise.
	DecideBid(state *team.State, p player.Player, currentBid float64) float64

	// Value is the strategy's estimate of what p is worth to the team.
	Value(state *team.State, p player.Player) float64
}

var constructors = map[string]func(Source, *log.Logger) Strategy{
	BaselineName:    func(rng Source, logger *log.Logger) Strategy { return NewBaseline(rng, logger) },
	StatisticalName: func(rng Source, logger *log.Logger) Strategy { return NewStatistical(rng, logger) },
	OptimizedName:   func(rng Source, logger *log.Logger) Strategy { return NewOptimized(rng, logger) },
}

// New builds the named strategy.
func New(name string, rng Source, logger *log.Logger) (Strategy, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q (available: %v)", name, Names())
	}
	return ctor(rng, logger), nil
}

// Names lists the registered strategies in sorted order.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsKnown reports whether name is a registered strategy
func IsKnown(name string) bool {
	_, ok := constructors[name]
	return ok
}

func orDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.NewWithOptions(io.Discard, log.Options{})
	}
	return logger
}
