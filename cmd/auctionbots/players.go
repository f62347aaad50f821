package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/player"
)

type PlayersCmd struct {
	Role string `help:"Only list one role (batsman, bowler, allrounder, wicketkeeper)"`
}

func (c *PlayersCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	logger := g.logger(cfg)

	reg, err := loadRegistry(cfg.Auction.PlayersDir, logger)
	if err != nil {
		return err
	}

	var filter *player.Role
	if c.Role != "" {
		role, err := player.ParseRole(c.Role)
		if err != nil {
			return err
		}
		filter = &role
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "player\trole\tnationality\tbase price\tstars\n")
	for _, p := range reg.Players() {
		if filter != nil && p.Role != *filter {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f Cr\t%d\n", p.Name, p.Role, p.Nationality, p.BasePrice, p.Stars)
	}
	return w.Flush()
}
