package player

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Required source columns. Base Price matches any header starting with it so
// that "Base Price (Cr)" is accepted.
const (
	ColumnPlayer      = "Player"
	ColumnNationality = "Nationality"
	ColumnBasePrice   = "Base Price"
	ColumnStars       = "Stars"
)

// optionalColumns maps optional numeric source columns to stat keys.
var optionalColumns = map[string]string{
	"Matches":      "matches",
	"Age":          "age",
	"Runs":         "runs",
	"Average":      "bat_avg",
	"Strike Rates": "strike_rate",
	"Wkts":         "wickets",
	"Economy":      "economy",
	"Avg":          "bowl_avg",
	"SR":           "bowling_sr",
	"Ct":           "catches",
	"St":           "stumpings",
}

// Registry is the ordered set of players available for auction.
type Registry struct {
	players []Player
}

// NewRegistry creates a registry from already-loaded players.
func NewRegistry(players ...Player) *Registry {
	return &Registry{players: append([]Player(nil), players...)}
}

// Players returns a copy of the players in load order.
func (r *Registry) Players() []Player {
	return append([]Player(nil), r.players...)
}

// Len returns the number of loaded players
func (r *Registry) Len() int {
	return len(r.players)
}

// FindByName returns the first player with the given name. Names are not
// guaranteed unique across tables; use Find to disambiguate by role.
func (r *Registry) FindByName(name string) (Player, error) {
	for _, p := range r.players {
		if p.Name == name {
			return p, nil
		}
	}
	return Player{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, name)
}

// Find looks a player up by name and role.
func (r *Registry) Find(name string, role Role) (Player, error) {
	for _, p := range r.players {
		if p.Name == name && p.Role == role {
			return p, nil
		}
	}
	return Player{}, fmt.Errorf("%w: %s (%s)", ErrPlayerNotFound, name, role)
}

// Duplicates returns names that appear more than once, in first-seen order.
func (r *Registry) Duplicates() []string {
	seen := make(map[string]int, len(r.players))
	var dups []string
	for _, p := range r.players {
		seen[p.Name]++
		if seen[p.Name] == 2 {
			dups = append(dups, p.Name)
		}
	}
	return dups
}

// LoadDir reads the four category tables (batsmen.csv, bowlers.csv,
// allrounders.csv, wicketkeepers.csv) from dir into a single registry.
func LoadDir(dir string) (*Registry, error) {
	var all []Player
	for _, role := range Roles {
		path := filepath.Join(dir, role.Category()+".csv")
		players, err := LoadFile(path, role.Category())
		if err != nil {
			return nil, err
		}
		all = append(all, players...)
	}
	return &Registry{players: all}, nil
}

// LoadFile reads one category table from disk.
func LoadFile(path, roleLabel string) ([]Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open player table: %w", err)
	}
	defer f.Close()

	return Load(f, path, roleLabel)
}

// Load parses a player table. roleLabel may be the plural category
// ("batsmen") or the singular role name. source names the table in errors.
func Load(r io.Reader, source, roleLabel string) ([]Player, error) {
	role, err := ParseRole(roleLabel)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &DataFormatError{Source: source, Column: ColumnPlayer, Reason: "empty table"}
	}
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read header: %w", source, err)
	}

	cols, err := indexColumns(source, header)
	if err != nil {
		return nil, err
	}

	var players []Player
	for row := 1; ; row++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", source, row, err)
		}
		if blank(record) {
			continue
		}

		p, err := cols.parse(source, row, role, record)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}

	return players, nil
}

type columns struct {
	name, nationality, basePrice, stars int
	optional                            map[string]int // stat key -> index
}

func indexColumns(source string, header []string) (*columns, error) {
	cols := &columns{name: -1, nationality: -1, basePrice: -1, stars: -1, optional: map[string]int{}}
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		switch {
		case h == ColumnPlayer:
			cols.name = i
		case h == ColumnNationality:
			cols.nationality = i
		case strings.HasPrefix(h, ColumnBasePrice):
			cols.basePrice = i
		case h == ColumnStars:
			cols.stars = i
		default:
			if key, ok := optionalColumns[h]; ok {
				cols.optional[key] = i
			}
		}
	}

	for _, req := range []struct {
		name string
		idx  int
	}{
		{ColumnPlayer, cols.name},
		{ColumnNationality, cols.nationality},
		{ColumnBasePrice, cols.basePrice},
		{ColumnStars, cols.stars},
	} {
		if req.idx < 0 {
			return nil, &DataFormatError{Source: source, Column: req.name, Reason: "missing required column"}
		}
	}
	return cols, nil
}

func (c *columns) parse(source string, row int, role Role, record []string) (Player, error) {
	cell := func(i int) string {
		if i < len(record) {
			return strings.TrimSpace(record[i])
		}
		return ""
	}
	fail := func(column, reason string) (Player, error) {
		return Player{}, &DataFormatError{Source: source, Row: row, Column: column, Reason: reason}
	}

	name := cell(c.name)
	if name == "" {
		return fail(ColumnPlayer, "empty player name")
	}

	nationality := cell(c.nationality)
	if nationality == "" {
		return fail(ColumnNationality, "empty nationality")
	}

	basePrice, err := strconv.ParseFloat(cell(c.basePrice), 64)
	if err != nil {
		return fail(ColumnBasePrice, fmt.Sprintf("invalid number %q", cell(c.basePrice)))
	}
	if basePrice < 0 {
		return fail(ColumnBasePrice, "negative base price")
	}

	stars := DefaultStars
	if s := cell(c.stars); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fail(ColumnStars, fmt.Sprintf("invalid number %q", s))
		}
		stars = int(v)
	}

	stats := map[string]float64{"stars": float64(stars)}
	for key, idx := range c.optional {
		if v, err := strconv.ParseFloat(cell(idx), 64); err == nil {
			stats[key] = v
		}
	}

	return Player{
		Name:        name,
		Role:        role,
		Nationality: Nationality(nationality),
		BasePrice:   basePrice,
		Stars:       stars,
		Stats:       stats,
	}, nil
}

func blank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
