package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shuffledDeck(seed int64) *Deck {
	d := NewStandardDeck()
	d.Shuffle(seeded(seed))
	return d
}

func handOf(t *testing.T, ids string) *Hand {
	t.Helper()
	h := NewHand()
	for _, c := range mustCards(t, ids) {
		h.Cards = append(h.Cards, HandCard{Card: c})
	}
	h.sortCards()
	return h
}

func cloneHand(h *Hand) Hand {
	return Hand{Cards: append([]HandCard(nil), h.Cards...), Sort: h.Sort}
}

func TestInitHand(t *testing.T) {
	deck := shuffledDeck(3)
	h := InitHand(deck)

	assert.Equal(t, HandSize, h.Len())
	assert.Equal(t, FullDeckLen-HandSize, deck.Len())
	assert.Zero(t, h.SelectedCount())
	for i := 1; i < h.Len(); i++ {
		assert.GreaterOrEqual(t, h.Cards[i-1].Value(), h.Cards[i].Value())
	}
}

func TestInitHand_ShortDeck(t *testing.T) {
	deck := &Deck{Cards: mustCards(t, "2S 3S 4S")}
	h := NewHand()

	report := h.InitialDraw(deck)
	assert.False(t, report.Full)
	assert.Equal(t, HandSize, report.Requested)
	assert.Len(t, report.Drawn, 3)
	assert.Equal(t, 3, h.Len())
}

func TestSetSelected_Limit(t *testing.T) {
	h := InitHand(shuffledDeck(5))
	for i := 0; i < MaxSelected; i++ {
		require.NoError(t, h.SetSelected(i, true))
	}
	before := cloneHand(h)

	err := h.SetSelected(MaxSelected, true)
	assert.ErrorIs(t, err, ErrSelectionLimitExceeded)
	assert.Equal(t, before, *h)

	// reselecting an already selected card is not a 6th selection
	assert.NoError(t, h.SetSelected(0, true))
	assert.Equal(t, MaxSelected, h.SelectedCount())

	require.NoError(t, h.SetSelected(0, false))
	assert.NoError(t, h.SetSelected(MaxSelected, true))
	assert.Equal(t, MaxSelected, h.SelectedCount())
}

func TestSetSelected_DeselectAlwaysAllowed(t *testing.T) {
	h := InitHand(shuffledDeck(5))
	assert.NoError(t, h.SetSelected(2, false))
	assert.Zero(t, h.SelectedCount())
}

func TestSetSelected_OutOfRange(t *testing.T) {
	h := InitHand(shuffledDeck(5))
	assert.ErrorIs(t, h.SetSelected(-1, true), ErrCardNotInHand)
	assert.ErrorIs(t, h.SetSelected(HandSize, true), ErrCardNotInHand)
}

func TestIndexOf(t *testing.T) {
	h := handOf(t, "2S KH 7D")
	assert.Equal(t, 0, h.IndexOf("K♥"))
	assert.Equal(t, 2, h.IndexOf("2♠"))
	assert.Equal(t, -1, h.IndexOf("A♠"))
}

func TestPlaySelected_Empty(t *testing.T) {
	deck := shuffledDeck(9)
	h := InitHand(deck)
	handBefore := cloneHand(h)
	deckBefore := append([]Card(nil), deck.Cards...)

	_, _, err := h.PlaySelected(deck, DefaultJokers())
	assert.ErrorIs(t, err, ErrEmptySelection)
	assert.Equal(t, handBefore, *h)
	assert.Equal(t, deckBefore, deck.Cards)
}

func TestDiscardSelected_Empty(t *testing.T) {
	deck := shuffledDeck(9)
	h := InitHand(deck)
	handBefore := cloneHand(h)

	_, err := h.DiscardSelected(deck)
	assert.ErrorIs(t, err, ErrEmptySelection)
	assert.Equal(t, handBefore, *h)
	assert.Equal(t, FullDeckLen-HandSize, deck.Len())
}

func TestPlaySelected(t *testing.T) {
	deck := &Deck{Cards: mustCards(t, "2C 3C 4C 5C 6C 7C")}
	h := handOf(t, "JS JH 4D 8D KS 9H 9C 2D 3H 5S")

	require.NoError(t, h.SetSelected(h.IndexOf("J♠"), true))
	require.NoError(t, h.SetSelected(h.IndexOf("J♥"), true))
	require.NoError(t, h.SetSelected(h.IndexOf("4♦"), true))

	result, report, err := h.PlaySelected(deck, DefaultJokers())
	require.NoError(t, err)

	assert.Equal(t, Pair, result.Category)
	assert.Equal(t, 90, result.TotalScore)
	assert.True(t, report.Full)
	assert.Equal(t, 3, report.Requested)
	assert.Equal(t, mustCards(t, "2C 3C 4C"), report.Drawn)

	assert.Equal(t, HandSize, h.Len())
	assert.Zero(t, h.SelectedCount())
	assert.Equal(t, -1, h.IndexOf("J♠"))
	assert.Equal(t, -1, h.IndexOf("4♦"))
	assert.Equal(t, 3, deck.Len())
}

// The 5-card cap only limits what can be selected at once; evaluation
// always takes the exact selected set.
func TestPlaySelected_EvaluatesExactSelection(t *testing.T) {
	deck := shuffledDeck(11)
	h := handOf(t, "AS AH AD 2C 2D 7S 8S 9S 10S JS")

	for _, id := range []string{"A♠", "A♥", "A♦", "2♣", "2♦"} {
		require.NoError(t, h.SetSelected(h.IndexOf(id), true))
	}
	result, _, err := h.PlaySelected(deck, DefaultJokers())
	require.NoError(t, err)
	assert.Equal(t, FullHouse, result.Category)
	assert.Len(t, result.ScoringCards, 5)
}

func TestPlaySelected_PartialRefill(t *testing.T) {
	deck := &Deck{Cards: mustCards(t, "2C")}
	h := handOf(t, "JS JH 4D 8D KS 9H 9C 2D 3H 5S")

	for i := 0; i < 4; i++ {
		require.NoError(t, h.SetSelected(i, true))
	}
	_, report, err := h.PlaySelected(deck, DefaultJokers())
	require.NoError(t, err)

	assert.False(t, report.Full)
	assert.Equal(t, 4, report.Requested)
	assert.Len(t, report.Drawn, 1)
	assert.Equal(t, 7, h.Len()) // min(10, 10 - 4 + 1)
	assert.Zero(t, deck.Len())
}

func TestDiscardSelected(t *testing.T) {
	deck := shuffledDeck(21)
	h := InitHand(deck)
	discarded := h.Cards[0].Card

	require.NoError(t, h.SetSelected(0, true))
	report, err := h.DiscardSelected(deck)
	require.NoError(t, err)

	assert.True(t, report.Full)
	assert.Len(t, report.Drawn, 1)
	assert.Equal(t, HandSize, h.Len())
	assert.Equal(t, -1, h.IndexOf(discarded.String()))
	assert.Equal(t, FullDeckLen-HandSize-1, deck.Len())
}

// Every card of the universe is always in exactly one place.
func TestHand_CardsAccountedFor(t *testing.T) {
	deck := shuffledDeck(99)
	h := InitHand(deck)
	removed := 0

	for turn := 0; deck.Len() > 0 || h.Len() > 0; turn++ {
		n := 1 + turn%MaxSelected
		if n > h.Len() {
			n = h.Len()
		}
		for i := 0; i < n; i++ {
			require.NoError(t, h.SetSelected(i, true))
		}
		if turn%2 == 0 {
			_, _, err := h.PlaySelected(deck, DefaultJokers())
			require.NoError(t, err)
		} else {
			_, err := h.DiscardSelected(deck)
			require.NoError(t, err)
		}
		removed += n
		require.Equal(t, FullDeckLen, deck.Len()+h.Len()+removed)
		require.Equal(t, min(HandSize, FullDeckLen-removed), h.Len())
	}
}

func TestSortBy(t *testing.T) {
	h := handOf(t, "2S KH 7D AS 7H")
	require.NoError(t, h.SetSelected(0, true))

	require.NoError(t, h.SortBy(SortBySuit))
	assert.Equal(t, mustCards(t, "AS 2S KH 7H 7D"), h.Plain())
	assert.Zero(t, h.SelectedCount())

	require.NoError(t, h.SortBy(SortByRank))
	assert.Equal(t, mustCards(t, "AS KH 7H 7D 2S"), h.Plain()) // stable from the suit order

	assert.ErrorIs(t, h.SortBy("color"), ErrInvalidSortMode)
}
