// Package player holds the static player records that are put up for auction
// and the registry they are loaded into.
package player

import "fmt"

// Domestic is the nationality code for home players. Any other code is foreign.
const Domestic Nationality = "I"

// DefaultStars is the rating assumed when a player has none recorded.
const DefaultStars = 5

// Nationality is the nationality code from the source tables.
type Nationality string

// IsForeign reports whether the code denotes an overseas player
func (n Nationality) IsForeign() bool {
	return n != Domestic
}

// Player is an auction lot. Values are never mutated after loading.
type Player struct {
	Name        string
	Role        Role
	Nationality Nationality
	BasePrice   float64 // Cr
	Stars       int
	Stats       map[string]float64
}

// IsForeign reports whether the player counts against the overseas quota
func (p Player) IsForeign() bool {
	return p.Nationality.IsForeign()
}

// Stat returns the named statistic, or def when it was not recorded.
func (p Player) Stat(name string, def float64) float64 {
	if v, ok := p.Stats[name]; ok {
		return v
	}
	return def
}

func (p Player) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Role)
}
