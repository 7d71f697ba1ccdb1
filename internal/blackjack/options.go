package blackjack

import (
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjack-cli/internal/deck"
)

const (
	// MaxPlayers is the number of seats at a table
	MaxPlayers = 7

	// DefaultDealerName is what the house is called at the table
	DefaultDealerName = "Dealer"
)

// DeckSource builds the deck for a round
type DeckSource func() *deck.Deck

// Option configures a Game
type Option func(*settings)

type settings struct {
	prompter    Prompter
	rng         *rand.Rand
	ranks       deck.RankSet
	deckSource  DeckSource
	dealerName  string
	dealerStand int
	maxPlayers  int
	eventBus    EventBus
	clock       quartz.Clock
	logger      *log.Logger
}

// WithPrompter sets where player decisions come from
func WithPrompter(p Prompter) Option {
	return func(s *settings) { s.prompter = p }
}

// WithRNG sets the shuffle source
func WithRNG(rng *rand.Rand) Option {
	return func(s *settings) { s.rng = rng }
}

// WithRankSet chooses the ranks each deck is populated with
func WithRankSet(ranks deck.RankSet) Option {
	return func(s *settings) { s.ranks = ranks }
}

// WithDeckSource replaces deck construction entirely, e.g. with a stacked deck
func WithDeckSource(src DeckSource) Option {
	return func(s *settings) { s.deckSource = src }
}

// WithDealer names the dealer and sets the total it stands on
func WithDealer(name string, standOn int) Option {
	return func(s *settings) {
		s.dealerName = name
		s.dealerStand = standOn
	}
}

// WithMaxPlayers lowers the seat limit
func WithMaxPlayers(n int) Option {
	return func(s *settings) { s.maxPlayers = n }
}

// WithEventBus publishes table events to bus
func WithEventBus(bus EventBus) Option {
	return func(s *settings) { s.eventBus = bus }
}

// WithClock sets the clock used to timestamp events
func WithClock(clock quartz.Clock) Option {
	return func(s *settings) { s.clock = clock }
}

// WithLogger sets the debug logger
func WithLogger(logger *log.Logger) Option {
	return func(s *settings) { s.logger = logger }
}

func defaultSettings() *settings {
	return &settings{
		ranks:       deck.StandardRanks,
		dealerName:  DefaultDealerName,
		dealerStand: DefaultDealerStand,
		maxPlayers:  MaxPlayers,
		clock:       quartz.NewReal(),
		logger:      log.New(io.Discard),
	}
}
