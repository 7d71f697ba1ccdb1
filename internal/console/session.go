package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack-cli/internal/blackjack"
	"github.com/lox/blackjack-cli/internal/statistics"
)

// SessionConfig configures a console session
type SessionConfig struct {
	Prompter   blackjack.Prompter
	Out        io.Writer
	Styles     *Styles
	Logger     *log.Logger
	SessionID  string
	Players    int      // number of seats to fill, 0 to ask
	Names      []string // preset names, skips the name prompts
	MaxPlayers int
	Options    []blackjack.Option
}

// Session runs rounds at one table until the players stop
type Session struct {
	cfg     SessionConfig
	display *Display
	tracker *statistics.Tracker
}

// NewSession creates a session
func NewSession(cfg SessionConfig) *Session {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.MaxPlayers <= 0 || cfg.MaxPlayers > blackjack.MaxPlayers {
		cfg.MaxPlayers = blackjack.MaxPlayers
	}

	return &Session{
		cfg:     cfg,
		display: NewDisplay(cfg.Out, cfg.Styles),
		tracker: statistics.NewTracker(),
	}
}

// Tracker returns the session statistics
func (s *Session) Tracker() *statistics.Tracker { return s.tracker }

// Run seats the players and plays until someone answers no to playing
// again. Interrupts and end of input end the session without an error.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.cfg.Out, s.cfg.Styles.Title.Render(" ♠ ♥ Welcome to Blackjack! ♦ ♣ "))
	if s.cfg.SessionID != "" {
		fmt.Fprintln(s.cfg.Out, s.cfg.Styles.Info.Render("session "+s.cfg.SessionID))
	}
	fmt.Fprintln(s.cfg.Out)

	names, err := s.collectNames(ctx)
	if err != nil {
		return s.finish(err)
	}

	bus := blackjack.NewEventBus()
	bus.Subscribe(s.display)
	bus.Subscribe(s.tracker)

	opts := append([]blackjack.Option{}, s.cfg.Options...)
	opts = append(opts,
		blackjack.WithPrompter(s.cfg.Prompter),
		blackjack.WithEventBus(bus),
		blackjack.WithLogger(s.cfg.Logger),
		blackjack.WithMaxPlayers(s.cfg.MaxPlayers),
	)
	game, err := blackjack.NewGame(names, opts...)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	s.cfg.Logger.Info("Session started", "players", names)

	for {
		if _, err := game.Play(ctx); err != nil {
			return s.finish(err)
		}
		game.NewDeck()

		fmt.Fprintln(s.cfg.Out)
		again, err := s.cfg.Prompter.AskYesNo(ctx, "Do you want to play again?")
		if err != nil {
			return s.finish(err)
		}
		if !again {
			break
		}
	}

	return s.finish(nil)
}

func (s *Session) collectNames(ctx context.Context) ([]string, error) {
	if len(s.cfg.Names) > 0 {
		return s.cfg.Names, nil
	}

	count := s.cfg.Players
	if count == 0 {
		var err error
		question := fmt.Sprintf("How many players? (1 - %d):", s.cfg.MaxPlayers)
		count, err = s.cfg.Prompter.AskNumber(ctx, question, 1, s.cfg.MaxPlayers)
		if err != nil {
			return nil, err
		}
	}

	names := make([]string, 0, count)
	for range count {
		name, err := s.cfg.Prompter.AskLine(ctx, "Enter the player name:")
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	fmt.Fprintln(s.cfg.Out)
	return names, nil
}

// finish prints the scoreboard and turns a quit into a clean exit
func (s *Session) finish(err error) error {
	s.display.ShowSummary(s.tracker)

	if err == nil || isQuit(err) {
		if err != nil {
			s.cfg.Logger.Info("Session ended early", "reason", err)
		}
		fmt.Fprintln(s.cfg.Out, s.cfg.Styles.Info.Render("Thanks for playing!"))
		return nil
	}
	return err
}

func isQuit(err error) bool {
	return errors.Is(err, ErrInterrupted) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, context.Canceled)
}
