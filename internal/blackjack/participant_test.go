package blackjack

import (
	"context"
	"testing"

	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerDecideHit(t *testing.T) {
	prompter := &scriptedPrompter{answers: []bool{true, false}}
	p := NewPlayer("Alice", prompter)

	hit, err := p.DecideHit(context.Background())
	require.NoError(t, err)
	assert.True(t, hit)

	hit, err = p.DecideHit(context.Background())
	require.NoError(t, err)
	assert.False(t, hit)

	assert.Equal(t, []string{"Alice, do you want a hit?", "Alice, do you want a hit?"}, prompter.questions)

	_, err = p.DecideHit(context.Background())
	assert.ErrorIs(t, err, errScriptExhausted)
}

func TestPlayerReport(t *testing.T) {
	p := NewPlayer("Bob", nil)

	assert.Equal(t, []string{"Bob wins."}, p.Report(Win))
	assert.Equal(t, []string{"Bob loses."}, p.Report(Lose))
	assert.Equal(t, []string{"Bob pushes."}, p.Report(Push))
	assert.Equal(t, []string{"Bob busts.", "Bob loses."}, p.Report(Bust))
}

func TestDealerDecideHit(t *testing.T) {
	tests := []struct {
		name  string
		cards string
		hit   bool
	}{
		{"sixteen draws", "Tc6d", true},
		{"seventeen stands", "Tc7d", false},
		{"soft seventeen stands", "Ac6d", false},
		{"low total draws", "2c3d", true},
		{"twenty stands", "KcQd", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDealer("Dealer", DefaultDealerStand)
			for _, c := range deck.MustParseCards(tt.cards) {
				d.Hand().Add(c)
			}
			hit, err := d.DecideHit(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.hit, hit)
		})
	}
}

func TestDealerHoleCard(t *testing.T) {
	d := NewDealer("Dealer", 0)
	assert.Equal(t, DefaultDealerStand, d.StandOn())

	d.FlipFirstCard() // empty hand
	for _, c := range deck.MustParseCards("2c3d") {
		d.Hand().Add(c)
	}

	d.FlipFirstCard()
	assert.Equal(t, "XX\t3d", d.Hand().String())
	hit, err := d.DecideHit(context.Background())
	require.NoError(t, err)
	assert.False(t, hit, "dealer does not act with a hidden card")

	d.FlipFirstCard()
	assert.Equal(t, "2c\t3d", d.Hand().String())
}

func TestDealerReport(t *testing.T) {
	d := NewDealer("House", 17)
	assert.Equal(t, []string{"House busts."}, d.Report(Bust))
	assert.Nil(t, d.Report(Win))
	assert.Nil(t, d.Report(Lose))
	assert.Nil(t, d.Report(Push))
}

func TestParticipantVariants(t *testing.T) {
	var participants []Participant = []Participant{
		NewPlayer("Alice", nil),
		NewDealer("Dealer", 17),
	}
	for _, p := range participants {
		assert.NotEmpty(t, p.Name())
		assert.NotNil(t, p.Hand())
	}
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "win", Win.String())
	assert.Equal(t, "lose", Lose.String())
	assert.Equal(t, "push", Push.String())
	assert.Equal(t, "bust", Bust.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}
