package deck

import (
	"sort"
	"testing"

	"github.com/lox/blackjack-cli/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pile struct {
	cards []Card
}

func (p *pile) Add(card Card) { p.cards = append(p.cards, card) }

func sortCards(cards []Card) []Card {
	sorted := make([]Card, len(cards))
	copy(sorted, cards)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Suit != sorted[j].Suit {
			return sorted[i].Suit < sorted[j].Suit
		}
		return sorted[i].Rank < sorted[j].Rank
	})
	return sorted
}

func TestPopulate(t *testing.T) {
	t.Run("standard deck is suit-major", func(t *testing.T) {
		d := New(randutil.New(1), StandardRanks)
		assert.True(t, d.IsEmpty())

		d.Populate()
		cards := d.Cards()
		require.Len(t, cards, 52)

		seen := make(map[Card]bool)
		i := 0
		for _, suit := range Suits {
			for _, rank := range StandardRanks {
				assert.Equal(t, NewCard(rank, suit), cards[i])
				assert.False(t, seen[cards[i]], "duplicate %s", cards[i])
				seen[cards[i]] = true
				i++
			}
		}
	})

	t.Run("short deck has no tens", func(t *testing.T) {
		d := New(randutil.New(1), ShortRanks)
		d.Populate()
		require.Equal(t, 48, d.Remaining())
		for _, card := range d.Cards() {
			assert.NotEqual(t, Ten, card.Rank)
		}
	})

	t.Run("nil rank set means standard", func(t *testing.T) {
		d := New(nil, nil)
		d.Populate()
		assert.Equal(t, 52, d.Remaining())
	})

	t.Run("repopulating does not duplicate", func(t *testing.T) {
		d := New(randutil.New(1), StandardRanks)
		d.Populate()
		d.Draw()
		d.Populate()
		assert.Equal(t, 52, d.Remaining())
	})
}

func TestShufflePreservesCards(t *testing.T) {
	d := New(randutil.New(99), StandardRanks)
	d.Populate()
	before := d.Cards()

	d.Shuffle()
	after := d.Cards()

	assert.NotEqual(t, before, after)
	assert.Equal(t, sortCards(before), sortCards(after))
}

func TestShuffleIsDeterministicForSeed(t *testing.T) {
	a := NewShuffled(randutil.New(7), nil)
	b := NewShuffled(randutil.New(7), nil)
	assert.Equal(t, a.Cards(), b.Cards())
}

func TestDeal(t *testing.T) {
	t.Run("interleaves passes", func(t *testing.T) {
		d := New(nil, StandardRanks)
		d.Populate()
		top := d.Cards()[:4]

		h1, h2 := &pile{}, &pile{}
		short := d.Deal([]Receiver{h1, h2}, 2)

		assert.Empty(t, short)
		assert.Equal(t, 48, d.Remaining())
		assert.Equal(t, []Card{top[0], top[2]}, h1.cards)
		assert.Equal(t, []Card{top[1], top[3]}, h2.cards)
	})

	t.Run("default one card each", func(t *testing.T) {
		d := NewShuffled(randutil.New(3), nil)
		h := &pile{}
		d.Deal([]Receiver{h}, 1)
		assert.Len(t, h.cards, 1)
		assert.Equal(t, 51, d.Remaining())
	})

	t.Run("reports shortfall and keeps dealing", func(t *testing.T) {
		d := New(nil, StandardRanks)
		d.Populate()
		for d.Remaining() > 3 {
			d.Draw()
		}

		h1, h2 := &pile{}, &pile{}
		short := d.Deal([]Receiver{h1, h2}, 2)

		assert.Equal(t, []Shortfall{{Pass: 1, Slot: 1}}, short)
		assert.Len(t, h1.cards, 2)
		assert.Len(t, h2.cards, 1)
		assert.True(t, d.IsEmpty())
	})

	t.Run("empty deck", func(t *testing.T) {
		d := New(nil, nil)
		h := &pile{}
		short := d.Deal([]Receiver{h}, 2)
		assert.Len(t, short, 2)
		assert.Empty(t, h.cards)
	})
}

func TestDraw(t *testing.T) {
	d := New(nil, nil)
	_, ok := d.Draw()
	assert.False(t, ok)

	d.Populate()
	card, ok := d.Draw()
	require.True(t, ok)
	assert.Equal(t, NewCard(Ace, Clubs), card)
	assert.Equal(t, 51, d.Remaining())

	d.Clear()
	assert.True(t, d.IsEmpty())
}

func TestNewStacked(t *testing.T) {
	cards := MustParseCards("AcTd7h")
	d := NewStacked(cards...)
	assert.Equal(t, cards, d.Cards())

	card, ok := d.Draw()
	require.True(t, ok)
	assert.Equal(t, cards[0], card)
}
