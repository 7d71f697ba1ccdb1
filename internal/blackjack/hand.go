package blackjack

import (
	"strings"

	"github.com/lox/blackjack-cli/internal/deck"
)

const (
	// BlackjackTotal is the highest total a hand can hold without busting
	BlackjackTotal = 21

	softBonus = 10
)

// Hand is the ordered set of cards held by one participant
type Hand struct {
	cards []deck.Card
}

// Add puts a card at the end of the hand
func (h *Hand) Add(card deck.Card) {
	h.cards = append(h.cards, card)
}

// Cards returns a copy of the cards in the hand
func (h *Hand) Cards() []deck.Card {
	cards := make([]deck.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

// Visible returns a copy of the cards with every face-down card masked
func (h *Hand) Visible() []deck.Card {
	cards := make([]deck.Card, len(h.cards))
	for i, card := range h.cards {
		cards[i] = card.Masked()
	}
	return cards
}

// Len returns the number of cards held
func (h *Hand) Len() int {
	return len(h.cards)
}

// Clear discards every card. Cards are not returned to any deck.
func (h *Hand) Clear() {
	h.cards = nil
}

// Flip turns over the i-th card. It is a no-op for an out of range index.
func (h *Hand) Flip(i int) {
	if i < 0 || i >= len(h.cards) {
		return
	}
	h.cards[i].Flip()
}

// Total returns the best blackjack total of the hand. The second return is
// false while any card is face down.
//
// Aces count 1. If the hand holds an Ace and the sum is 11 or less one Ace
// is promoted to 11; two Aces can never both count 11 without busting.
func (h *Hand) Total() (int, bool) {
	total, soft, ok := h.score()
	if !ok {
		return 0, false
	}
	if soft {
		total += softBonus
	}
	return total, true
}

// IsSoft returns true if the total counts an Ace as 11
func (h *Hand) IsSoft() bool {
	_, soft, ok := h.score()
	return ok && soft
}

// IsBusted returns true if the total is defined and over 21
func (h *Hand) IsBusted() bool {
	total, ok := h.Total()
	return ok && total > BlackjackTotal
}

func (h *Hand) score() (total int, soft bool, ok bool) {
	hasAce := false
	for _, card := range h.cards {
		points, defined := card.Value().Points()
		if !defined {
			return 0, false, false
		}
		total += points
		if card.IsAce() {
			hasAce = true
		}
	}
	return total, hasAce && total+softBonus <= BlackjackTotal, true
}

// String renders the cards separated by tabs, or "<empty>"
func (h *Hand) String() string {
	if len(h.cards) == 0 {
		return "<empty>"
	}

	parts := make([]string, len(h.cards))
	for i, card := range h.cards {
		parts[i] = card.String()
	}
	return strings.Join(parts, "\t")
}
