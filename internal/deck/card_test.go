package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardValue(t *testing.T) {
	tests := []struct {
		rank Rank
		want int
	}{
		{Ace, 1},
		{Two, 2},
		{Five, 5},
		{Nine, 9},
		{Ten, 10},
		{Jack, 10},
		{Queen, 10},
		{King, 10},
	}

	for _, tt := range tests {
		t.Run(tt.rank.String(), func(t *testing.T) {
			for _, suit := range Suits {
				points, ok := NewCard(tt.rank, suit).Value().Points()
				require.True(t, ok)
				assert.Equal(t, tt.want, points)
			}
		})
	}
}

func TestEveryRankValueInRange(t *testing.T) {
	for _, rank := range StandardRanks {
		points, ok := NewCard(rank, Spades).Value().Points()
		require.True(t, ok)
		assert.GreaterOrEqual(t, points, 1)
		assert.LessOrEqual(t, points, 10)
	}
}

func TestCardFlip(t *testing.T) {
	card := NewCard(King, Hearts)
	assert.True(t, card.FaceUp())
	assert.Equal(t, "Kh", card.String())

	card.Flip()
	assert.False(t, card.FaceUp())
	assert.Equal(t, "XX", card.String())
	assert.False(t, card.Value().IsDefined())
	assert.Equal(t, Undefined, card.Value())

	card.Flip()
	assert.True(t, card.FaceUp())
	points, ok := card.Value().Points()
	assert.True(t, ok)
	assert.Equal(t, 10, points)
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "Ac", NewCard(Ace, Clubs).String())
	assert.Equal(t, "Td", NewCard(Ten, Diamonds).String())
	assert.Equal(t, "7s", NewCard(Seven, Spades).String())
	assert.Equal(t, "Qh", NewCard(Queen, Hearts).String())
}

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "blackjack",
			input: "AsKs",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Spades, Rank: King},
			},
		},
		{
			name:  "mixed suits",
			input: "AhTdQc9s",
			expected: []Card{
				{Suit: Hearts, Rank: Ace},
				{Suit: Diamonds, Rank: Ten},
				{Suit: Clubs, Rank: Queen},
				{Suit: Spades, Rank: Nine},
			},
		},
		{
			name:  "case insensitive",
			input: "asKHtDjc",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
				{Suit: Diamonds, Rank: Ten},
				{Suit: Clubs, Rank: Jack},
			},
		},
		{
			name:    "invalid rank",
			input:   "XsKs",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "AsKx",
			wantErr: true,
		},
		{
			name:    "odd length",
			input:   "AsK",
			wantErr: true,
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Card{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCard)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMustParseCards(t *testing.T) {
	assert.Equal(t, []Card{NewCard(Ace, Spades), NewCard(King, Spades)}, MustParseCards("AsKs"))
	assert.Panics(t, func() { MustParseCards("invalid") })
}

func TestCardMasked(t *testing.T) {
	up := NewCard(King, Hearts)
	assert.Equal(t, up, up.Masked())

	down := up
	down.Flip()
	masked := down.Masked()
	assert.False(t, masked.FaceUp())
	assert.Equal(t, "XX", masked.String())
	assert.Equal(t, Card{}.Rank, masked.Rank)
	assert.Equal(t, Card{}.Suit, masked.Suit)

	masked.Flip()
	assert.NotEqual(t, up, masked, "a masked card cannot be turned back into the original")
}
