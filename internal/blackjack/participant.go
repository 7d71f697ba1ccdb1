package blackjack

import (
	"context"
	"fmt"
)

// DefaultDealerStand is the total at which the house stops drawing
const DefaultDealerStand = 17

// Outcome is the terminal result of a round for one participant
type Outcome int

const (
	Win Outcome = iota
	Lose
	Push
	Bust
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Lose:
		return "lose"
	case Push:
		return "push"
	case Bust:
		return "bust"
	default:
		return "unknown"
	}
}

// Prompter asks the person at the console for input. Implementations block
// until an answer arrives and re-prompt on invalid input themselves.
type Prompter interface {
	AskYesNo(ctx context.Context, question string) (bool, error)
	AskNumber(ctx context.Context, question string, low, high int) (int, error)
	AskLine(ctx context.Context, question string) (string, error)
}

// Participant is anyone holding a hand at the table
type Participant interface {
	Name() string
	Hand() *Hand

	// DecideHit returns true if the participant wants another card
	DecideHit(ctx context.Context) (bool, error)

	// Report returns the lines announcing an outcome, nil when the
	// participant stays silent about it
	Report(o Outcome) []string
}

// Player is a human seated at the table
type Player struct {
	name     string
	hand     Hand
	prompter Prompter
}

// NewPlayer creates a player whose decisions come from prompter
func NewPlayer(name string, prompter Prompter) *Player {
	return &Player{name: name, prompter: prompter}
}

func (p *Player) Name() string { return p.name }
func (p *Player) Hand() *Hand  { return &p.hand }

// DecideHit asks the player whether they want another card
func (p *Player) DecideHit(ctx context.Context) (bool, error) {
	hit, err := p.prompter.AskYesNo(ctx, fmt.Sprintf("%s, do you want a hit?", p.name))
	if err != nil {
		return false, fmt.Errorf("asking %s for a hit: %w", p.name, err)
	}
	return hit, nil
}

func (p *Player) Report(o Outcome) []string {
	switch o {
	case Bust:
		return []string{p.name + " busts.", p.name + " loses."}
	case Lose:
		return []string{p.name + " loses."}
	case Win:
		return []string{p.name + " wins."}
	case Push:
		return []string{p.name + " pushes."}
	default:
		return nil
	}
}

// Dealer plays the house hand with a fixed drawing rule
type Dealer struct {
	name    string
	hand    Hand
	standOn int
}

// NewDealer creates a dealer that draws while its total is below standOn
func NewDealer(name string, standOn int) *Dealer {
	if standOn <= 0 {
		standOn = DefaultDealerStand
	}
	return &Dealer{name: name, standOn: standOn}
}

func (d *Dealer) Name() string { return d.name }
func (d *Dealer) Hand() *Hand  { return &d.hand }

// StandOn returns the total at which the dealer stops drawing
func (d *Dealer) StandOn() int { return d.standOn }

// DecideHit draws while the revealed total is below the stand threshold.
// A hidden hole card means the dealer is not yet acting.
func (d *Dealer) DecideHit(context.Context) (bool, error) {
	total, ok := d.hand.Total()
	return ok && total < d.standOn, nil
}

// Report only announces a dealer bust; players already hear their own results
func (d *Dealer) Report(o Outcome) []string {
	if o == Bust {
		return []string{d.name + " busts."}
	}
	return nil
}

// FlipFirstCard turns the hole card over
func (d *Dealer) FlipFirstCard() {
	d.hand.Flip(0)
}
