// Package blackjack implements a single blackjack table: one dealer against
// one to seven players.
//
// The main type is Game, which owns the deck, the players and the dealer and
// runs one round per call to Play:
//
//	g, err := blackjack.NewGame([]string{"Alice", "Bob"}, blackjack.WithPrompter(p))
//	for {
//	    result, err := g.Play(ctx)
//	    // ...
//	    g.NewDeck()
//	}
//
// Players decide through a Prompter; the dealer draws to 17. Everything the
// table does is published on an EventBus so displays and statistics can
// follow along without the game knowing about them.
//
// # Deterministic Testing
//
// Use WithRNG(randutil.New(seed)) for a reproducible shuffle, or
// WithDeckSource with deck.NewStacked for complete control over the cards.
package blackjack
