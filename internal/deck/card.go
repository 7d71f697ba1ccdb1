package deck

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when a card code cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Suits lists every suit in population order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// String returns the single-character code of a suit
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Hearts:
		return "h"
	case Spades:
		return "s"
	default:
		return "?"
	}
}

// Symbol returns the unicode symbol for the suit (e.g. "♠")
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. Ranks are 1-based so that the rank
// itself is the blackjack point value for Ace through Ten.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// String returns the single-character code of a rank
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Two, Three, Four, Five, Six, Seven, Eight, Nine:
		return string(rune('0' + int(r)))
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return "?"
	}
}

// Points returns the blackjack value of the rank, with Ace counted as 1
// and every face card capped at 10
func (r Rank) Points() int {
	return min(int(r), 10)
}

// Value is the scoring value of a card. A face-down card has no value.
type Value struct {
	points  int
	defined bool
}

// Defined returns a Value carrying n points
func Defined(n int) Value {
	return Value{points: n, defined: true}
}

// Undefined is the value of a face-down card
var Undefined = Value{}

// Points returns the point value and whether it is defined
func (v Value) Points() (int, bool) {
	return v.points, v.defined
}

// IsDefined reports whether the value is known
func (v Value) IsDefined() bool {
	return v.defined
}

// Card represents a playing card that can lie face up or face down
type Card struct {
	Rank Rank
	Suit Suit

	faceDown bool
}

// NewCard creates a new face-up card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// FaceUp returns true if the card is showing
func (c Card) FaceUp() bool {
	return !c.faceDown
}

// Flip turns the card over
func (c *Card) Flip() {
	c.faceDown = !c.faceDown
}

// Masked returns the card as an onlooker sees it: unchanged when face up,
// a blank face-down card otherwise
func (c Card) Masked() Card {
	if c.faceDown {
		return Card{faceDown: true}
	}
	return c
}

// Value returns the scoring value, undefined while the card is face down
func (c Card) Value() Value {
	if c.faceDown {
		return Undefined
	}
	return Defined(c.Rank.Points())
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// String returns the two-character code of the card (e.g. "Ac"), or "XX"
// when the card is face down
func (c Card) String() string {
	if c.faceDown {
		return "XX"
	}
	return c.Rank.String() + c.Suit.String()
}

// ParseCard parses a two-character card code such as "Ac" or "th"
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	rank := strings.Index("A23456789TJQK", strings.ToUpper(s[:1]))
	if rank < 0 {
		return Card{}, fmt.Errorf("%w: unknown rank in %q", ErrInvalidCard, s)
	}

	suit := strings.Index("cdhs", strings.ToLower(s[1:]))
	if suit < 0 {
		return Card{}, fmt.Errorf("%w: unknown suit in %q", ErrInvalidCard, s)
	}

	return NewCard(Rank(rank+1), Suit(suit)), nil
}

// ParseCards parses a run of card codes such as "AcTdKh"
func ParseCards(s string) ([]Card, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %q", ErrInvalidCard, s)
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on error
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}
