// Package report renders auction outcomes for the terminal.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/auction"
	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/player"
	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/simulator"
	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/strategy"
	"github.com/ChhabraSaksham2006/ipl-auction-bot/internal/team"
)

type styles struct {
	header   lipgloss.Style
	team     lipgloss.Style
	money    lipgloss.Style
	stars    lipgloss.Style
	foreign  lipgloss.Style
	muted    lipgloss.Style
	positive lipgloss.Style
}

// Printer writes styled reports to a writer.
type Printer struct {
	w      io.Writer
	styles styles
}

// New creates a Printer. With color disabled output is plain ASCII.
func New(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Printer{
		w: w,
		styles: styles{
			header:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
			team:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
			money:    r.NewStyle().Foreground(lipgloss.Color("11")),
			stars:    r.NewStyle().Foreground(lipgloss.Color("10")),
			foreign:  r.NewStyle().Foreground(lipgloss.Color("12")),
			muted:    r.NewStyle().Foreground(lipgloss.Color("8")),
			positive: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		},
	}
}

func cr(v float64) string {
	return fmt.Sprintf("%.2f Cr", v)
}

// Sale prints a single sold or unsold lot.
func (p *Printer) Sale(s auction.Sale) {
	fmt.Fprintf(p.w, "%s wins %s for %s\n",
		p.styles.team.Render(s.Team), s.Player.Name, p.styles.money.Render(cr(s.Price)))
}

// Unsold prints a player nobody bid on.
func (p *Printer) Unsold(pl player.Player) {
	fmt.Fprintf(p.w, "%s\n", p.styles.muted.Render(fmt.Sprintf("No bids placed for %s. Player remains unsold.", pl.Name)))
}

// TeamSummary prints a team's purse and squad.
func (p *Printer) TeamSummary(s *team.State) {
	fmt.Fprintf(p.w, "\n%s\n", p.styles.header.Render(fmt.Sprintf("--- %s Summary ---", s.Name)))
	fmt.Fprintf(p.w, "Remaining Budget: %s\n", p.styles.money.Render(cr(s.RemainingBudget)))
	fmt.Fprintf(p.w, "Players in Squad (%d):\n", len(s.Acquired))

	for _, a := range s.Acquired {
		marker := ""
		if a.Player.IsForeign() {
			marker = " " + p.styles.foreign.Render("[overseas]")
		}
		fmt.Fprintf(p.w, " • %s (%s) for %s%s\n", a.Player.Name, a.Player.Role, cr(a.Price), marker)
	}

	counts := ""
	for _, role := range player.Roles {
		counts += fmt.Sprintf(" %s %d/%d", role, s.RoleCounts[role], team.RoleRequirements[role])
	}
	fmt.Fprintf(p.w, "%s\n", p.styles.muted.Render("Roles:"+counts))
}

// Rankings prints the 1-indexed star table.
func (p *Printer) Rankings(standings []auction.Standing) {
	fmt.Fprintf(p.w, "\n%s\n", p.styles.header.Render("Team Rankings based on Star Counts:"))
	for _, s := range standings {
		fmt.Fprintf(p.w, "%d. %s: %s\n", s.Rank, p.styles.team.Render(s.Team), p.styles.stars.Render(fmt.Sprintf("%d stars", s.Stars)))
	}
}

// EvaluationRow is one team's strategy evaluation.
type EvaluationRow struct {
	Team       string
	Strategy   string
	Evaluation strategy.Evaluation
}

// Evaluations prints value-for-money per team.
func (p *Printer) Evaluations(rows []EvaluationRow) {
	fmt.Fprintf(p.w, "\n%s\n", p.styles.header.Render("Strategy Evaluation:"))

	w := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "team\tstrategy\tvalue\tspent\tefficiency\n")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\n",
			r.Team, r.Strategy, cr(r.Evaluation.TotalPredictedValue), cr(r.Evaluation.TotalSpent), r.Evaluation.Efficiency)
	}
	w.Flush()
}

// Simulation prints aggregated results of repeated auctions.
func (p *Printer) Simulation(s *simulator.Summary) {
	fmt.Fprintf(p.w, "%s\n", p.styles.header.Render(fmt.Sprintf("Simulated %d auctions (seed: %d)", s.Runs, s.Seed)))

	w := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "team\tstrategy\twins\tmean rank\tmean stars\t95%% CI\tmean spent\tmean squad\n")
	for _, t := range s.Teams {
		lo, hi := t.StarsCI95()
		fmt.Fprintf(w, "%s\t%s\t%d (%.1f%%)\t%.2f\t%.2f\t[%.2f, %.2f]\t%s\t%.1f\n",
			t.Team, t.Strategy, t.Wins, t.WinRate()*100, t.MeanRank(), t.MeanStars(), lo, hi, cr(t.MeanSpent()), t.MeanSquad())
	}
	w.Flush()

	fmt.Fprintf(p.w, "\n%d auctions in %v\n", s.Runs, s.Elapsed.Truncate(time.Millisecond))
}

// Advice prints the advised next bid.
func (p *Printer) Advice(name string, current, next float64) {
	if next == strategy.NoRaise {
		fmt.Fprintf(p.w, "%s: hold at %s\n", name, cr(current))
		return
	}
	fmt.Fprintf(p.w, "%s: raise to %s\n", name, p.styles.positive.Render(cr(next)))
}
