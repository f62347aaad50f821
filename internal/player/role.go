package player

import (
	"fmt"
	"strings"
)

// Role is a player's squad role.
type Role int

const (
	Batsman Role = iota
	Bowler
	Allrounder
	Wicketkeeper
)

// Roles lists every role in squad order.
var Roles = []Role{Batsman, Bowler, Allrounder, Wicketkeeper}

// String returns the canonical singular role name
func (r Role) String() string {
	switch r {
	case Batsman:
		return "batsman"
	case Bowler:
		return "bowler"
	case Allrounder:
		return "allrounder"
	case Wicketkeeper:
		return "wicketkeeper"
	default:
		return "unknown"
	}
}

// Category returns the plural label used by the source tables.
func (r Role) Category() string {
	switch r {
	case Batsman:
		return "batsmen"
	case Bowler:
		return "bowlers"
	case Allrounder:
		return "allrounders"
	case Wicketkeeper:
		return "wicketkeepers"
	default:
		return "unknown"
	}
}

// ParseRole accepts either the singular role name or the plural category
// label, case-insensitively.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "batsman", "batsmen":
		return Batsman, nil
	case "bowler", "bowlers":
		return Bowler, nil
	case "allrounder", "allrounders", "all-rounder", "all-rounders":
		return Allrounder, nil
	case "wicketkeeper", "wicketkeepers", "wicket-keeper", "wicket-keepers":
		return Wicketkeeper, nil
	}
	return 0, fmt.Errorf("unknown role %q", s)
}
