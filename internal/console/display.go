package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/lox/blackjack-cli/internal/blackjack"
	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/statistics"
)

// Display prints table events to the console
type Display struct {
	out    io.Writer
	styles *Styles
}

// NewDisplay creates a display writing to out
func NewDisplay(out io.Writer, styles *Styles) *Display {
	return &Display{out: out, styles: styles}
}

// OnEvent implements blackjack.EventSubscriber
func (d *Display) OnEvent(event blackjack.GameEvent) {
	switch e := event.(type) {
	case blackjack.RoundStartEvent:
		fmt.Fprintln(d.out)
		fmt.Fprintln(d.out, d.styles.Header.Render(fmt.Sprintf("*** ROUND %d ***", e.Round)))
	case blackjack.PhaseChangeEvent:
		if e.To == blackjack.PhaseDealerReveal {
			fmt.Fprintln(d.out)
		}
	case blackjack.HandEvent:
		fmt.Fprintln(d.out, d.FormatHand(e))
	case blackjack.OutcomeEvent:
		style := d.outcomeStyle(e.Outcome)
		for _, msg := range e.Messages {
			fmt.Fprintln(d.out, style.Render(msg))
		}
	case blackjack.DeckExhaustedEvent:
		for range e.Shortfalls {
			fmt.Fprintln(d.out, d.styles.Warning.Render("Can't continue to deal. Out of cards!"))
		}
	}
}

// FormatHand renders "<name>:\t<cards>\t(<total>)"; the total is left off
// while a card is face down
func (d *Display) FormatHand(e blackjack.HandEvent) string {
	name := d.styles.Player.Render(e.Name)
	if e.IsDealer {
		name = d.styles.Dealer.Render(e.Name)
	}

	var b strings.Builder
	b.WriteString(name)
	b.WriteString(":\t")
	b.WriteString(d.formatCards(e.Cards))
	if e.HasTotal {
		b.WriteString("\t")
		b.WriteString(d.styles.Total.Render("(" + strconv.Itoa(e.Total) + ")"))
	}
	return b.String()
}

func (d *Display) formatCards(cards []deck.Card) string {
	if len(cards) == 0 {
		return "<empty>"
	}

	formatted := make([]string, len(cards))
	for i, card := range cards {
		switch {
		case !card.FaceUp():
			formatted[i] = d.styles.HiddenCard.Render(card.String())
		case card.IsRed():
			formatted[i] = d.styles.RedCard.Render(card.String())
		default:
			formatted[i] = d.styles.BlackCard.Render(card.String())
		}
	}
	return strings.Join(formatted, "\t")
}

func (d *Display) outcomeStyle(o blackjack.Outcome) lipgloss.Style {
	switch o {
	case blackjack.Win:
		return d.styles.Success
	case blackjack.Push:
		return d.styles.Warning
	default:
		return d.styles.Error
	}
}

// ShowSummary prints the session scoreboard
func (d *Display) ShowSummary(tracker *statistics.Tracker) {
	if tracker.Rounds() == 0 {
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Player", "Rounds", "Wins", "Losses", "Pushes", "Busts", "Net", "Win %")
	for _, s := range tracker.Summary() {
		t.Row(
			s.Name,
			strconv.Itoa(s.Rounds),
			strconv.Itoa(s.Wins),
			strconv.Itoa(s.Losses),
			strconv.Itoa(s.Pushes),
			strconv.Itoa(s.Busts),
			fmt.Sprintf("%+d", s.Net()),
			fmt.Sprintf("%.0f", s.WinRate()*100),
		)
	}

	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, d.styles.Header.Render("Session summary"))
	fmt.Fprintln(d.out, t.Render())
	fmt.Fprintln(d.out, d.styles.Info.Render(fmt.Sprintf(
		"%d rounds in %s, dealer busted %d, dealer idle %d",
		tracker.Rounds(), tracker.PlayTime().Round(time.Second), tracker.DealerBusts(), tracker.DealerIdle(),
	)))
}
