package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"V" help:"Show version"`
	Run      RunCmd           `cmd:"" default:"1" help:"Run a single auction and print squads and rankings"`
	Simulate SimulateCmd      `cmd:"" help:"Run many seeded auctions and compare strategies"`
	Advise   AdviseCmd        `cmd:"" help:"Advise the next bid for a player"`
	Players  PlayersCmd       `cmd:"" help:"List the players available for auction"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("auctionbots"),
		kong.Description("Player auction simulator with pluggable bidding strategies"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
