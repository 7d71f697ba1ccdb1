package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/lox/blackjack-cli/internal/blackjack"
)

// ErrInterrupted is returned when the person at the console presses ^C
var ErrInterrupted = errors.New("interrupted")

var _ blackjack.Prompter = (*ReadlinePrompter)(nil)

// ParseYesNo reads y, yes, n or no in any case. ok is false for anything else.
func ParseYesNo(s string) (yes bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	default:
		return false, false
	}
}

// ParseNumber reads an integer in [low, high]
func ParseNumber(s string, low, high int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", strings.TrimSpace(s))
	}
	if n < low || n > high {
		return 0, fmt.Errorf("%d is not between %d and %d", n, low, high)
	}
	return n, nil
}

// asker implements the blackjack.Prompter questions on top of a raw line
// source, re-asking until the answer is valid
type asker struct {
	read func(ctx context.Context, question string) (string, error)
	warn func(msg string)
}

func (a asker) AskYesNo(ctx context.Context, question string) (bool, error) {
	for {
		line, err := a.read(ctx, question+" (y/n)")
		if err != nil {
			return false, err
		}
		if yes, ok := ParseYesNo(line); ok {
			return yes, nil
		}
		a.warn("Please answer y or n.")
	}
}

func (a asker) AskNumber(ctx context.Context, question string, low, high int) (int, error) {
	for {
		line, err := a.read(ctx, question)
		if err != nil {
			return 0, err
		}
		n, err := ParseNumber(line, low, high)
		if err == nil {
			return n, nil
		}
		a.warn(err.Error())
	}
}

func (a asker) AskLine(ctx context.Context, question string) (string, error) {
	for {
		line, err := a.read(ctx, question)
		if err != nil {
			return "", err
		}
		if line = strings.TrimSpace(line); line != "" {
			return line, nil
		}
		a.warn("Please enter something.")
	}
}

// LineReader is the subset of *readline.Instance the prompter uses
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

// ReadlinePrompter asks questions on a readline terminal
type ReadlinePrompter struct {
	asker
	rl     LineReader
	out    io.Writer
	styles *Styles
}

// NewReadlinePrompter opens a readline instance on the terminal
func NewReadlinePrompter(historyFile string, styles *Styles) (*ReadlinePrompter, error) {
	completer := readline.NewPrefixCompleter(
		readline.PcItem("yes"),
		readline.PcItem("no"),
	)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          styles.Prompt.Render("> "),
		HistoryFile:     historyFile,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal: %w", err)
	}

	return NewLinePrompter(rl, rl.Stdout(), styles), nil
}

// NewLinePrompter builds a prompter on any line source
func NewLinePrompter(rl LineReader, out io.Writer, styles *Styles) *ReadlinePrompter {
	p := &ReadlinePrompter{rl: rl, out: out, styles: styles}
	p.asker = asker{read: p.readLine, warn: p.warn}
	return p
}

// Close closes the terminal
func (p *ReadlinePrompter) Close() error {
	return p.rl.Close()
}

func (p *ReadlinePrompter) readLine(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p.rl.SetPrompt(p.styles.Prompt.Render(question + " "))
	line, err := p.rl.Readline()
	switch {
	case errors.Is(err, readline.ErrInterrupt):
		return "", ErrInterrupted
	case errors.Is(err, io.EOF):
		return "", fmt.Errorf("reading answer: %w", io.EOF)
	case err != nil:
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return line, nil
}

func (p *ReadlinePrompter) warn(msg string) {
	fmt.Fprintln(p.out, p.styles.Error.Render(msg))
}
