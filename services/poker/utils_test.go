package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateHands(t *testing.T) {
	cards := mustCards(t, "AS KH 7H 7D 2S 3C 4C 5C 6C 8D")

	assert.Len(t, GenerateHands(cards, 5), 252)
	assert.Len(t, GenerateHands(cards[:5], 2), 10)
	assert.Len(t, GenerateHands(cards[:3], 3), 1)
	assert.Empty(t, GenerateHands(cards[:3], 4))
	assert.Empty(t, GenerateHands(cards, 0))

	for _, combo := range GenerateHands(cards[:4], 2) {
		assert.Less(t, indexIn(cards, combo[0]), indexIn(cards, combo[1]))
	}
}

func indexIn(cards []Card, c Card) int {
	for i := range cards {
		if cards[i] == c {
			return i
		}
	}
	return -1
}

func TestBestSelection(t *testing.T) {
	h := handOf(t, "AS AH AD AC KS 2H 3D 4C 5S 7H")
	before := cloneHand(h)

	hint := BestSelection(h, DefaultJokers())

	assert.Equal(t, []int{0, 1, 2, 3}, hint.Indices)
	assert.Equal(t, FourOfAKind, hint.Result.Category)
	assert.Equal(t, 315, hint.Result.TotalScore) // (60 + 10) * 4.5
	assert.Equal(t, before, *h)
}

func TestBestSelection_PrefersHigherScore(t *testing.T) {
	h := handOf(t, "2H 5H 9H JH KH 3S 3D 4C 6S 8D")

	hint := BestSelection(h, DefaultJokers())
	require.Len(t, hint.Indices, 5)
	assert.Equal(t, Flush, hint.Result.Category)
	for _, i := range hint.Indices {
		assert.Equal(t, "♥", h.Cards[i].Suit)
	}
}

func TestBestSelection_EmptyHand(t *testing.T) {
	hint := BestSelection(NewHand(), DefaultJokers())
	assert.Empty(t, hint.Indices)
	assert.Equal(t, NoCards, hint.Result.Category)
}
