package main

import (
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"os"
	"strings"
	"sync"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/muesli/termenv"

	"github.com/lox/blackjack-cli/internal/blackjack"
	"github.com/lox/blackjack-cli/internal/config"
	"github.com/lox/blackjack-cli/internal/console"
	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/randutil"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version      kong.VersionFlag `short:"v" help:"Show version"`
	Config       string           `short:"c" help:"HCL config file" default:"blackjack.hcl" env:"BLACKJACK_CONFIG"`
	Players      int              `short:"p" help:"Number of players (1-7), asked for when unset" env:"BLACKJACK_PLAYERS"`
	Name         []string         `short:"n" help:"Player name, repeat once per seat" env:"BLACKJACK_NAMES"`
	Seed         int64            `help:"Shuffle seed, random when unset" env:"BLACKJACK_SEED"`
	ShortDeck    bool             `help:"Deal from a 48 card deck with the tens removed" env:"BLACKJACK_SHORT_DECK"`
	DealerStands int              `help:"Total the dealer stands on" env:"BLACKJACK_DEALER_STANDS"`
	UI           string           `help:"Prompt style (readline or tui)" env:"BLACKJACK_UI"`
	NoColor      bool             `help:"Disable colored output" env:"BLACKJACK_NO_COLOR"`
	Debug        bool             `help:"Log debug output to stderr" env:"BLACKJACK_DEBUG"`
	LogFile      string           `help:"Write logs to this file" env:"BLACKJACK_LOG_FILE"`
	HistoryFile  string           `help:"Readline history file" env:"BLACKJACK_HISTORY_FILE"`
}

func main() {
	// a missing .env is fine
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Blackjack for 1 to 7 players against the dealer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	ctx.FatalIfErrorf(cli.Run())
}

// Run plays a console session
func (c *CLI) Run() error {
	cfg, err := c.settings()
	if err != nil {
		return err
	}

	if cfg.UI.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	styles := console.NewStyles(!cfg.UI.NoColor)

	logger, closeLog, err := c.newLogger(cfg.UI.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	rng, seed := randutil.FromSeed(c.Seed)
	sessionID := uuid.NewString()
	logger = logger.With("session", sessionID)
	logger.Info("Starting blackjack", "version", version, "seed", seed, "ui", cfg.UI.Mode)

	prompter, closePrompter, err := newPrompter(cfg.UI, styles)
	if err != nil {
		return err
	}
	defer closePrompter()

	runCtx, cancel := setupSignalHandler(logger, closePrompter)
	defer cancel()

	session := console.NewSession(console.SessionConfig{
		Prompter:   prompter,
		Out:        os.Stdout,
		Styles:     styles,
		Logger:     logger,
		SessionID:  sessionID,
		Players:    c.Players,
		Names:      c.Name,
		MaxPlayers: cfg.Table.MaxPlayers,
		Options:    gameOptions(cfg, rng),
	})
	if err := session.Run(runCtx); err != nil {
		return err
	}

	logger.Info("Session finished", "rounds", session.Tracker().Rounds())
	return nil
}

// settings loads the config file and lays the command line over it
func (c *CLI) settings() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if c.ShortDeck {
		cfg.Table.ShortDeck = true
	}
	if c.DealerStands != 0 {
		cfg.Table.DealerStands = c.DealerStands
	}
	if c.UI != "" {
		cfg.UI.Mode = strings.ToLower(c.UI)
	}
	if c.NoColor {
		cfg.UI.NoColor = true
	}
	if c.HistoryFile != "" {
		cfg.UI.HistoryFile = c.HistoryFile
	}
	if c.Debug {
		cfg.UI.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if len(c.Name) > 0 && c.Players != 0 && c.Players != len(c.Name) {
		return nil, fmt.Errorf("--players is %d but %d names were given", c.Players, len(c.Name))
	}
	if c.Players < 0 || c.Players > cfg.Table.MaxPlayers {
		return nil, fmt.Errorf("%w: %d (1 - %d)", blackjack.ErrPlayerCount, c.Players, cfg.Table.MaxPlayers)
	}
	if len(c.Name) > cfg.Table.MaxPlayers {
		return nil, fmt.Errorf("%w: %d names (1 - %d)", blackjack.ErrPlayerCount, len(c.Name), cfg.Table.MaxPlayers)
	}
	return cfg, nil
}

// newLogger writes to the log file when one is set, otherwise to stderr
// in debug mode and nowhere at all in normal play
func (c *CLI) newLogger(level string) (*log.Logger, func(), error) {
	var (
		w       io.Writer = io.Discard
		closeFn           = func() {}
	)

	switch {
	case c.LogFile != "":
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() {
			if err := f.Close(); err != nil {
				log.Error("Failed to close log file", "error", err)
			}
		}
	case c.Debug:
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "BLACKJACK",
	})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}
	logger.SetLevel(lvl)
	return logger, closeFn, nil
}

func gameOptions(cfg *config.Config, rng *rand.Rand) []blackjack.Option {
	ranks := deck.StandardRanks
	if cfg.Table.ShortDeck {
		ranks = deck.ShortRanks
	}
	return []blackjack.Option{
		blackjack.WithRNG(rng),
		blackjack.WithRankSet(ranks),
		blackjack.WithDealer(cfg.Table.DealerName, cfg.Table.DealerStands),
	}
}

// newPrompter opens the prompt style chosen in ui. The returned close func
// is safe to call more than once.
func newPrompter(ui config.UISettings, styles *console.Styles) (blackjack.Prompter, func(), error) {
	if ui.Mode == config.ModeTUI {
		return console.NewTUIPrompter(nil, os.Stdout, styles), func() {}, nil
	}

	p, err := console.NewReadlinePrompter(ui.HistoryFile, styles)
	if err != nil {
		return nil, nil, err
	}

	var once sync.Once
	return p, func() {
		once.Do(func() {
			if err := p.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
				log.Error("Failed to close terminal", "error", err)
			}
		})
	}, nil
}
