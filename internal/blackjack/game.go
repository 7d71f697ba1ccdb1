package blackjack

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/randutil"
)

var (
	ErrPlayerCount     = errors.New("invalid number of players")
	ErrPlayerName      = errors.New("player name must not be blank")
	ErrNoPrompter      = errors.New("players need a prompter")
	ErrRoundInProgress = errors.New("round already in progress")
)

// PlayerResult is how one player finished a round
type PlayerResult struct {
	Seat    int // index in registration order; names need not be unique
	Name    string
	Outcome Outcome
	Total   int
}

// RoundResult summarises a completed round
type RoundResult struct {
	Round        int
	Players      []PlayerResult
	DealerTotal  int
	DealerBusted bool
	DealerActed  bool // false when every player busted before the dealer's turn
	Duration     time.Duration
}

// Game runs rounds of blackjack between a dealer and its players
type Game struct {
	players []*Player
	dealer  *Dealer
	deck    *deck.Deck

	newDeck  DeckSource
	eventBus EventBus
	clock    quartz.Clock
	logger   *log.Logger

	phase Phase
	round int
}

// NewGame seats one player per name, in order, and builds the first deck
func NewGame(names []string, opts ...Option) (*Game, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(s)
	}

	if len(names) < 1 || len(names) > s.maxPlayers {
		return nil, fmt.Errorf("%w: %d (want 1-%d)", ErrPlayerCount, len(names), s.maxPlayers)
	}
	if s.prompter == nil {
		return nil, ErrNoPrompter
	}

	players := make([]*Player, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, ErrPlayerName
		}
		players = append(players, NewPlayer(name, s.prompter))
	}

	if s.deckSource == nil {
		rng := s.rng
		if rng == nil {
			rng, _ = randutil.FromSeed(0)
		}
		ranks := s.ranks
		s.deckSource = func() *deck.Deck { return deck.NewShuffled(rng, ranks) }
	}
	if s.eventBus == nil {
		s.eventBus = NewEventBus()
	}

	g := &Game{
		players:  players,
		dealer:   NewDealer(s.dealerName, s.dealerStand),
		newDeck:  s.deckSource,
		eventBus: s.eventBus,
		clock:    s.clock,
		logger:   s.logger,
	}
	g.deck = g.newDeck()

	return g, nil
}

// Players returns the seated players in registration order
func (g *Game) Players() []*Player { return g.players }

// Dealer returns the house
func (g *Game) Dealer() *Dealer { return g.dealer }

// Deck returns the deck the next round deals from
func (g *Game) Deck() *deck.Deck { return g.deck }

// Phase returns where the current round is
func (g *Game) Phase() Phase { return g.phase }

// Round returns the number of rounds started
func (g *Game) Round() int { return g.round }

// EventBus returns the bus table events are published on
func (g *Game) EventBus() EventBus { return g.eventBus }

// NewDeck throws away what is left of the deck and builds a fresh one
func (g *Game) NewDeck() {
	g.deck = g.newDeck()
	g.logger.Debug("New deck", "cards", g.deck.Remaining())
}

// StillPlaying returns the players who have not busted
func (g *Game) StillPlaying() []*Player {
	var still []*Player
	for _, p := range g.players {
		if !p.Hand().IsBusted() {
			still = append(still, p)
		}
	}
	return still
}

// Play runs one complete round and leaves every hand empty. An error from
// the prompter or ctx aborts the round.
func (g *Game) Play(ctx context.Context) (result *RoundResult, err error) {
	if g.phase != PhaseIdle {
		return nil, ErrRoundInProgress
	}

	g.round++
	started := g.clock.Now()
	logger := g.logger.With("round", g.round)
	defer func() {
		if err != nil {
			logger.Warn("Round aborted", "phase", g.phase, "error", err)
			g.clearHands()
			g.phase = PhaseIdle
		}
	}()

	g.publish(RoundStartEvent{
		Round:     g.round,
		Players:   g.playerNames(),
		Dealer:    g.dealer.Name(),
		timestamp: started,
	})

	// initial two cards each, dealer last, hole card hidden
	g.setPhase(PhaseDealing)
	g.deal(g.participants(), 2)
	g.dealer.FlipFirstCard()
	for _, p := range g.players {
		g.showHand(p)
	}
	g.showHand(g.dealer)

	g.setPhase(PhasePlayersActing)
	for _, p := range g.players {
		if err := g.additionalCards(ctx, p); err != nil {
			return nil, fmt.Errorf("round %d: %w", g.round, err)
		}
	}

	g.setPhase(PhaseDealerReveal)
	g.dealer.FlipFirstCard()
	g.showHand(g.dealer)

	result = &RoundResult{Round: g.round}
	still := g.StillPlaying()

	g.setPhase(PhaseDealerActing)
	if len(still) > 0 {
		result.DealerActed = true
		if err := g.additionalCards(ctx, g.dealer); err != nil {
			return nil, fmt.Errorf("round %d: %w", g.round, err)
		}
	} else {
		logger.Debug("Every player busted, dealer stands")
	}

	g.setPhase(PhaseResolution)
	result.DealerTotal, _ = g.dealer.Hand().Total()
	result.DealerBusted = g.dealer.Hand().IsBusted()
	for seat, p := range g.players {
		total, _ := p.Hand().Total()
		outcome := Bust
		if !p.Hand().IsBusted() {
			outcome = Resolve(total, result.DealerTotal, result.DealerBusted)
			g.report(p, outcome)
		}
		result.Players = append(result.Players, PlayerResult{Seat: seat, Name: p.Name(), Outcome: outcome, Total: total})
	}

	g.setPhase(PhaseCleanup)
	g.clearHands()
	result.Duration = g.clock.Since(started)
	g.publish(RoundEndEvent{Result: *result, timestamp: g.clock.Now()})
	logger.Info("Round complete", "dealer", result.DealerTotal, "dealerBusted", result.DealerBusted, "duration", result.Duration)

	g.setPhase(PhaseIdle)
	return result, nil
}

// Resolve compares a player who has not busted against the dealer
func Resolve(playerTotal, dealerTotal int, dealerBusted bool) Outcome {
	switch {
	case dealerBusted:
		return Win
	case playerTotal > dealerTotal:
		return Win
	case playerTotal < dealerTotal:
		return Lose
	default:
		return Push
	}
}

// additionalCards keeps dealing to p while it wants cards and has not busted
func (g *Game) additionalCards(ctx context.Context, p Participant) error {
	for !p.Hand().IsBusted() {
		if err := ctx.Err(); err != nil {
			return err
		}

		hit, err := p.DecideHit(ctx)
		if err != nil {
			return err
		}
		if !hit {
			return nil
		}

		if short := g.deal([]Participant{p}, 1); len(short) > 0 {
			// nothing left to draw; p stands on what it holds
			return nil
		}
		g.showHand(p)

		if p.Hand().IsBusted() {
			g.report(p, Bust)
		}
	}
	return nil
}

func (g *Game) deal(to []Participant, perHand int) []deck.Shortfall {
	receivers := make([]deck.Receiver, len(to))
	for i, p := range to {
		receivers[i] = p.Hand()
	}

	short := g.deck.Deal(receivers, perHand)
	if len(short) == 0 {
		return nil
	}

	names := make([]string, len(short))
	for i, s := range short {
		names[i] = to[s.Slot].Name()
	}
	g.logger.Warn("Out of cards", "round", g.round, "missed", names)
	g.publish(DeckExhaustedEvent{
		Round:      g.round,
		Shortfalls: short,
		Names:      names,
		timestamp:  g.clock.Now(),
	})
	return short
}

func (g *Game) report(p Participant, o Outcome) {
	_, isDealer := p.(*Dealer)
	g.logger.Info("Outcome", "round", g.round, "name", p.Name(), "outcome", o)
	g.publish(OutcomeEvent{
		Name:      p.Name(),
		Outcome:   o,
		Messages:  p.Report(o),
		IsDealer:  isDealer,
		timestamp: g.clock.Now(),
	})
}

func (g *Game) showHand(p Participant) {
	_, isDealer := p.(*Dealer)
	total, ok := p.Hand().Total()
	g.logger.Debug("Hand", "round", g.round, "name", p.Name(), "total", total, "soft", p.Hand().IsSoft())
	g.publish(HandEvent{
		Name:      p.Name(),
		Cards:     p.Hand().Visible(),
		Total:     total,
		HasTotal:  ok,
		IsDealer:  isDealer,
		timestamp: g.clock.Now(),
	})
}

func (g *Game) setPhase(to Phase) {
	from := g.phase
	g.phase = to
	g.logger.Debug("Phase change", "round", g.round, "from", from, "to", to)
	g.publish(PhaseChangeEvent{Round: g.round, From: from, To: to, timestamp: g.clock.Now()})
}

func (g *Game) publish(event GameEvent) {
	g.eventBus.Publish(event)
}

func (g *Game) participants() []Participant {
	all := make([]Participant, 0, len(g.players)+1)
	for _, p := range g.players {
		all = append(all, p)
	}
	return append(all, g.dealer)
}

func (g *Game) playerNames() []string {
	names := make([]string, len(g.players))
	for i, p := range g.players {
		names[i] = p.Name()
	}
	return names
}

func (g *Game) clearHands() {
	for _, p := range g.participants() {
		p.Hand().Clear()
	}
}
