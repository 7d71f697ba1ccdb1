package blackjack

import (
	"time"

	"github.com/lox/blackjack-cli/internal/deck"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for table events
const (
	EventTypeRoundStart    EventType = "round_start"
	EventTypeRoundEnd      EventType = "round_end"
	EventTypePhaseChange   EventType = "phase_change"
	EventTypeHand          EventType = "hand"
	EventTypeOutcome       EventType = "outcome"
	EventTypeDeckExhausted EventType = "deck_exhausted"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents anything that happens at the table
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// RoundStartEvent is published before the first card of a round is dealt
type RoundStartEvent struct {
	Round     int
	Players   []string
	Dealer    string
	timestamp time.Time
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }
func (e RoundStartEvent) Timestamp() time.Time { return e.timestamp }

// RoundEndEvent is published once every hand has been cleared
type RoundEndEvent struct {
	Result    RoundResult
	timestamp time.Time
}

func (e RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }
func (e RoundEndEvent) Timestamp() time.Time { return e.timestamp }

// PhaseChangeEvent is published on every state machine transition
type PhaseChangeEvent struct {
	Round     int
	From      Phase
	To        Phase
	timestamp time.Time
}

func (e PhaseChangeEvent) EventType() EventType { return EventTypePhaseChange }
func (e PhaseChangeEvent) Timestamp() time.Time { return e.timestamp }

// HandEvent carries a snapshot of one participant's hand for display
type HandEvent struct {
	Name      string
	Cards     []deck.Card
	Total     int
	HasTotal  bool
	IsDealer  bool
	timestamp time.Time
}

func (e HandEvent) EventType() EventType { return EventTypeHand }
func (e HandEvent) Timestamp() time.Time { return e.timestamp }

// OutcomeEvent is published when a participant's round is decided
type OutcomeEvent struct {
	Name      string
	Outcome   Outcome
	Messages  []string
	IsDealer  bool
	timestamp time.Time
}

func (e OutcomeEvent) EventType() EventType { return EventTypeOutcome }
func (e OutcomeEvent) Timestamp() time.Time { return e.timestamp }

// DeckExhaustedEvent is published when a deal could not fill every slot
type DeckExhaustedEvent struct {
	Round      int
	Shortfalls []deck.Shortfall
	Names      []string // participant name for each shortfall
	timestamp  time.Time
}

func (e DeckExhaustedEvent) EventType() EventType { return EventTypeDeckExhausted }
func (e DeckExhaustedEvent) Timestamp() time.Time { return e.timestamp }

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// SubscriberFunc adapts a function to EventSubscriber
type SubscriberFunc func(event GameEvent)

func (f SubscriberFunc) OnEvent(event GameEvent) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a synchronous in-memory event bus
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber. Function subscribers cannot be compared
// and are never removed.
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	if _, ok := subscriber.(SubscriberFunc); ok {
		return
	}
	for i, sub := range bus.subscribers {
		if _, ok := sub.(SubscriberFunc); ok {
			continue
		}
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish delivers an event to every subscriber in subscription order
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
