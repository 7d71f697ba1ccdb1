package deck

import (
	rand "math/rand/v2"
)

// RankSet is the list of ranks a deck is populated with
type RankSet []Rank

var (
	// StandardRanks is the 13-rank set of a regular 52-card deck
	StandardRanks = RankSet{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

	// ShortRanks drops the tens, giving a 48-card deck
	ShortRanks = RankSet{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Jack, Queen, King}
)

// Size returns the number of cards a deck built from the set holds
func (rs RankSet) Size() int {
	return len(rs) * len(Suits)
}

// Receiver is anything a card can be dealt into
type Receiver interface {
	Add(card Card)
}

// Shortfall records a deal slot that could not be filled because the
// deck ran out of cards
type Shortfall struct {
	Pass int // 0-based dealing pass
	Slot int // index of the receiver within the pass
}

// Deck represents an ordered stack of playing cards. The top of the deck
// is index 0.
type Deck struct {
	cards []Card
	ranks RankSet
	rng   *rand.Rand
}

// New creates an empty deck that will populate with the given ranks and
// shuffle with rng. A nil rank set means StandardRanks.
func New(rng *rand.Rand, ranks RankSet) *Deck {
	if len(ranks) == 0 {
		ranks = StandardRanks
	}
	return &Deck{
		cards: make([]Card, 0, ranks.Size()),
		ranks: ranks,
		rng:   rng,
	}
}

// NewShuffled creates a populated and shuffled deck
func NewShuffled(rng *rand.Rand, ranks RankSet) *Deck {
	d := New(rng, ranks)
	d.Populate()
	d.Shuffle()
	return d
}

// Populate clears the deck and fills it with one card per (suit, rank),
// suit-major
func (d *Deck) Populate() {
	d.cards = d.cards[:0]
	for _, suit := range Suits {
		for _, rank := range d.ranks {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
}

// Shuffle randomizes the order of the remaining cards
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the top card from the deck
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// Deal gives perHand cards to each receiver, one card per receiver per pass.
// Slots that cannot be filled are skipped and returned as shortfalls.
func (d *Deck) Deal(hands []Receiver, perHand int) []Shortfall {
	var short []Shortfall
	for pass := range perHand {
		for slot, hand := range hands {
			card, ok := d.Draw()
			if !ok {
				short = append(short, Shortfall{Pass: pass, Slot: slot})
				continue
			}
			hand.Add(card)
		}
	}
	return short
}

// Cards returns a copy of the cards left in the deck, top first
func (d *Deck) Cards() []Card {
	cards := make([]Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Clear discards every card left in the deck
func (d *Deck) Clear() {
	d.cards = d.cards[:0]
}

// NewStacked creates a deck holding exactly the given cards, top first.
// Populate on a stacked deck restores the standard ranks.
func NewStacked(cards ...Card) *Deck {
	d := New(nil, StandardRanks)
	d.cards = append(d.cards, cards...)
	return d
}
