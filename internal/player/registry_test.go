package player

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCanonicalisesRoleAndTrimsHeaders(t *testing.T) {
	players, err := LoadFile("testdata/batsmen.csv", "batsmen")
	require.NoError(t, err)
	require.Len(t, players, 3)

	kohli := players[0]
	assert.Equal(t, "Virat Kohli", kohli.Name)
	assert.Equal(t, Batsman, kohli.Role)
	assert.Equal(t, Domestic, kohli.Nationality)
	assert.False(t, kohli.IsForeign())
	assert.Equal(t, 2.0, kohli.BasePrice)
	assert.Equal(t, 10, kohli.Stars)
	assert.Equal(t, 38.67, kohli.Stat("bat_avg", 0))
	assert.Equal(t, 131.97, kohli.Stat("strike_rate", 0))
	assert.Equal(t, 252.0, kohli.Stat("matches", 0))

	assert.True(t, players[1].IsForeign())
}

func TestLoadDefaultsMissingStars(t *testing.T) {
	players, err := LoadFile("testdata/batsmen.csv", "batsman")
	require.NoError(t, err)
	assert.Equal(t, DefaultStars, players[2].Stars)
	assert.Equal(t, float64(DefaultStars), players[2].Stat("stars", 0))
}

func TestLoadMissingRequiredColumn(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		missing string
	}{
		{"no player", "Name,Nationality,Base Price (Cr),Stars", ColumnPlayer},
		{"no nationality", "Player,Country,Base Price (Cr),Stars", ColumnNationality},
		{"no base price", "Player,Nationality,Price,Stars", ColumnBasePrice},
		{"no stars", "Player,Nationality,Base Price (Cr),Rating", ColumnStars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := tt.header + "\nA,I,1.0,5\n"
			_, err := Load(strings.NewReader(src), "test.csv", "bowlers")

			var dfe *DataFormatError
			require.True(t, errors.As(err, &dfe), "expected DataFormatError, got %v", err)
			assert.Equal(t, tt.missing, dfe.Column)
			assert.Equal(t, 0, dfe.Row)
		})
	}
}

func TestLoadRejectsBadCells(t *testing.T) {
	tests := []struct {
		name   string
		row    string
		column string
	}{
		{"non-numeric price", "A,I,lots,5", ColumnBasePrice},
		{"negative price", "A,I,-1,5", ColumnBasePrice},
		{"non-numeric stars", "A,I,1.0,many", ColumnStars},
		{"empty name", ",I,1.0,5", ColumnPlayer},
		{"empty nationality", "A,,1.0,5", ColumnNationality},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "Player,Nationality,Base Price (Cr),Stars\n" + tt.row + "\n"
			_, err := Load(strings.NewReader(src), "test.csv", "bowlers")

			var dfe *DataFormatError
			require.True(t, errors.As(err, &dfe), "expected DataFormatError, got %v", err)
			assert.Equal(t, tt.column, dfe.Column)
			assert.Equal(t, 1, dfe.Row)
		})
	}
}

func TestLoadUnknownRole(t *testing.T) {
	_, err := Load(strings.NewReader("Player,Nationality,Base Price (Cr),Stars\n"), "x.csv", "umpires")
	require.Error(t, err)
}

func TestLoadSkipsBlankRows(t *testing.T) {
	src := "Player,Nationality,Base Price (Cr),Stars\nA,I,1.0,6\n,,,\nB,O,0.5,3\n"
	players, err := Load(strings.NewReader(src), "x.csv", "wicketkeepers")
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, Wicketkeeper, players[1].Role)
}

func TestLoadDirAndLookup(t *testing.T) {
	reg, err := LoadDir("testdata")
	require.NoError(t, err)
	assert.Equal(t, 10, reg.Len())

	bumrah, err := reg.FindByName("Jasprit Bumrah")
	require.NoError(t, err)
	assert.Equal(t, Bowler, bumrah.Role)
	assert.Equal(t, 7.3, bumrah.Stat("economy", 0))

	// First match wins across tables.
	gill, err := reg.FindByName("Shubman Gill")
	require.NoError(t, err)
	assert.Equal(t, Batsman, gill.Role)

	keeper, err := reg.Find("Shubman Gill", Wicketkeeper)
	require.NoError(t, err)
	assert.Equal(t, 0.5, keeper.BasePrice)

	assert.Equal(t, []string{"Shubman Gill"}, reg.Duplicates())
}

func TestFindByNameNotFound(t *testing.T) {
	reg := NewRegistry(Player{Name: "A", Role: Bowler, Nationality: Domestic})

	_, err := reg.FindByName("Nobody")
	assert.ErrorIs(t, err, ErrPlayerNotFound)

	_, err = reg.Find("A", Batsman)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestParseRole(t *testing.T) {
	for label, want := range map[string]Role{
		"batsmen":       Batsman,
		"Bowler":        Bowler,
		"allrounders":   Allrounder,
		"wicket-keeper": Wicketkeeper,
	} {
		got, err := ParseRole(label)
		require.NoError(t, err, label)
		assert.Equal(t, want, got, label)
	}
}
