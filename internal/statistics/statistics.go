package statistics

import (
	"time"

	"github.com/lox/blackjack-cli/internal/blackjack"
)

// PlayerStats tracks one seat's results across a session
type PlayerStats struct {
	Seat   int
	Name   string
	Rounds int
	Wins   int
	Losses int // includes busts
	Pushes int
	Busts  int
}

// WinRate returns the fraction of rounds won
func (s PlayerStats) WinRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Rounds)
}

// Net returns wins minus losses
func (s PlayerStats) Net() int {
	return s.Wins - s.Losses
}

// Tracker accumulates session statistics from round results. It subscribes
// to a table's event bus and only looks at RoundEndEvent. Players are told
// apart by seat, so two players may share a name.
type Tracker struct {
	seats       []*PlayerStats
	rounds      int
	dealerBusts int
	dealerIdle  int // rounds where every player busted first
	playTime    time.Duration
}

// NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{}
}

// OnEvent implements blackjack.EventSubscriber
func (t *Tracker) OnEvent(event blackjack.GameEvent) {
	if end, ok := event.(blackjack.RoundEndEvent); ok {
		t.Record(end.Result)
	}
}

// Record adds one round to the totals
func (t *Tracker) Record(result blackjack.RoundResult) {
	t.rounds++
	if result.DealerBusted {
		t.dealerBusts++
	}
	if !result.DealerActed {
		t.dealerIdle++
	}
	t.playTime += result.Duration

	for _, pr := range result.Players {
		stats := t.seat(pr.Seat, pr.Name)
		stats.Rounds++
		switch pr.Outcome {
		case blackjack.Win:
			stats.Wins++
		case blackjack.Lose:
			stats.Losses++
		case blackjack.Push:
			stats.Pushes++
		case blackjack.Bust:
			stats.Busts++
			stats.Losses++
		}
	}
}

func (t *Tracker) seat(seat int, name string) *PlayerStats {
	for len(t.seats) <= seat {
		t.seats = append(t.seats, nil)
	}
	if t.seats[seat] == nil {
		t.seats[seat] = &PlayerStats{Seat: seat, Name: name}
	}
	return t.seats[seat]
}

// Rounds returns the number of rounds recorded
func (t *Tracker) Rounds() int { return t.rounds }

// DealerBusts returns how many rounds the dealer busted
func (t *Tracker) DealerBusts() int { return t.dealerBusts }

// DealerIdle returns how many rounds ended before the dealer had to draw
func (t *Tracker) DealerIdle() int { return t.dealerIdle }

// PlayTime returns the time spent in rounds
func (t *Tracker) PlayTime() time.Duration { return t.playTime }

// Summary returns per-seat totals in seat order
func (t *Tracker) Summary() []PlayerStats {
	out := make([]PlayerStats, 0, len(t.seats))
	for _, stats := range t.seats {
		if stats != nil {
			out = append(out, *stats)
		}
	}
	return out
}
