package blackjack

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/stretchr/testify/require"
)

var errScriptExhausted = errors.New("script exhausted")

// scriptedPrompter answers yes/no questions from a fixed script
type scriptedPrompter struct {
	answers   []bool
	questions []string
}

func (s *scriptedPrompter) AskYesNo(_ context.Context, question string) (bool, error) {
	s.questions = append(s.questions, question)
	if len(s.answers) == 0 {
		return false, errScriptExhausted
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

func (s *scriptedPrompter) AskNumber(context.Context, string, int, int) (int, error) {
	return 0, fmt.Errorf("unexpected number prompt")
}

func (s *scriptedPrompter) AskLine(context.Context, string) (string, error) {
	return "", fmt.Errorf("unexpected line prompt")
}

// eventRecorder captures every published event
type eventRecorder struct {
	events []GameEvent
}

func (r *eventRecorder) OnEvent(event GameEvent) {
	r.events = append(r.events, event)
}

func (r *eventRecorder) outcomes() []OutcomeEvent {
	var out []OutcomeEvent
	for _, e := range r.events {
		if o, ok := e.(OutcomeEvent); ok {
			out = append(out, o)
		}
	}
	return out
}

func (r *eventRecorder) phases() []Phase {
	var out []Phase
	for _, e := range r.events {
		if p, ok := e.(PhaseChangeEvent); ok {
			out = append(out, p.To)
		}
	}
	return out
}

func (r *eventRecorder) hands(name string) []HandEvent {
	var out []HandEvent
	for _, e := range r.events {
		if h, ok := e.(HandEvent); ok && h.Name == name {
			out = append(out, h)
		}
	}
	return out
}

// stackedGame seats names against a deck holding exactly cards, in deal order
func stackedGame(t *testing.T, names []string, cards string, answers ...bool) (*Game, *scriptedPrompter, *eventRecorder) {
	t.Helper()

	prompter := &scriptedPrompter{answers: answers}
	recorder := &eventRecorder{}
	bus := NewEventBus()
	bus.Subscribe(recorder)

	stack := deck.MustParseCards(cards)
	g, err := NewGame(names,
		WithPrompter(prompter),
		WithEventBus(bus),
		WithLogger(log.New(io.Discard)),
		WithDeckSource(func() *deck.Deck { return deck.NewStacked(stack...) }),
	)
	require.NoError(t, err)
	return g, prompter, recorder
}
