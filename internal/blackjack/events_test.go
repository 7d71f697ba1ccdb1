package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventBus(t *testing.T) {
	bus := NewEventBus()
	first := &eventRecorder{}
	second := &eventRecorder{}

	var seen []EventType
	bus.Subscribe(first)
	bus.Subscribe(SubscriberFunc(func(e GameEvent) { seen = append(seen, e.EventType()) }))
	bus.Subscribe(second)

	bus.Publish(PhaseChangeEvent{From: PhaseIdle, To: PhaseDealing})
	assert.Len(t, first.events, 1)
	assert.Len(t, second.events, 1)
	assert.Equal(t, []EventType{EventTypePhaseChange}, seen)

	bus.Unsubscribe(first)
	bus.Publish(HandEvent{Name: "Alice"})
	assert.Len(t, first.events, 1)
	assert.Len(t, second.events, 2)
	assert.Len(t, seen, 2)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "Dealing", PhaseDealing.String())
	assert.Equal(t, "Dealer reveal", PhaseDealerReveal.String())
	assert.Equal(t, "Unknown", Phase(99).String())
}
