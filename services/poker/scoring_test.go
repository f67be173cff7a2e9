package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_NoCards(t *testing.T) {
	got := Evaluate(nil, DefaultJokers())

	assert.Equal(t, NoCards, got.Category)
	assert.Empty(t, got.ScoringCards)
	assert.Zero(t, got.BaseSum)
	assert.Zero(t, got.BaseMultiplier)
	assert.Zero(t, got.AdditiveBonus)
	assert.Zero(t, got.FinalMultiplier)
	assert.Zero(t, got.TotalScore)
	assert.Equal(t, []bool{false, false}, got.JokersTriggered)
}

func TestEvaluate_FourKings(t *testing.T) {
	got := Evaluate(mustCards(t, "KS KH KD KC 2S"), DefaultJokers())

	assert.Equal(t, FourOfAKind, got.Category)
	assert.Equal(t, mustCards(t, "KS KH KD KC"), got.ScoringCards)
	assert.Equal(t, 40, got.BaseSum)
	assert.Equal(t, 4.5, got.BaseMultiplier)
	assert.Equal(t, 10, got.AdditiveBonus)
	assert.Equal(t, 4.5, got.FinalMultiplier)
	assert.Equal(t, 225, got.TotalScore) // floor(4.5 * 50)
	assert.Equal(t, []bool{true, false}, got.JokersTriggered)
}

func TestEvaluate_Wheel(t *testing.T) {
	got := Evaluate(mustCards(t, "AS 2H 3D 4C 5S"), DefaultJokers())

	assert.Equal(t, Straight, got.Category)
	assert.ElementsMatch(t, mustCards(t, "AS 2H 3D 4C 5S"), got.ScoringCards)
	assert.Equal(t, 29, got.BaseSum)
	assert.Equal(t, 3.0, got.BaseMultiplier)
	assert.Equal(t, 117, got.TotalScore) // (29 + 10) * 3
}

func TestEvaluate_PairWithDefaultJokers(t *testing.T) {
	got := Evaluate(mustCards(t, "JS JH 4C 8D KS"), DefaultJokers())

	assert.Equal(t, Pair, got.Category)
	assert.Equal(t, 20, got.BaseSum)
	assert.Equal(t, 1.5, got.BaseMultiplier)
	assert.Equal(t, 10, got.AdditiveBonus)
	assert.Equal(t, 3.0, got.FinalMultiplier)
	assert.Equal(t, 90, got.TotalScore)
	assert.Equal(t, []bool{true, true}, got.JokersTriggered)
}

func TestEvaluate_FloorsTheTotal(t *testing.T) {
	// Three of a Kind of 2s: (6 + 10) * 2.5 = 40
	got := Evaluate(mustCards(t, "2S 2H 2D"), DefaultJokers())
	assert.Equal(t, 40, got.TotalScore)

	// Flush of 36 points: (36 + 10) * 3.5 = 161
	got = Evaluate(mustCards(t, "2H 5H 9H JH KH"), DefaultJokers())
	assert.Equal(t, 161, got.TotalScore)

	// Pair of 3s without jokers: 6 * 1.5 = 9
	got = Evaluate(mustCards(t, "3S 3H"), nil)
	assert.Equal(t, 9, got.TotalScore)

	// High card 5 times a x1.3 joker: floor(5 * 1.3) = 6
	tiny := Joker{ID: "tiny", Effect: func(HandCategory, int, float64) JokerEffect {
		return JokerEffect{Multiplier: 1.3}
	}}
	got = Evaluate(mustCards(t, "5S"), Jokers{tiny})
	assert.Equal(t, 6, got.TotalScore)
}

func TestEvaluate_NeverNegative(t *testing.T) {
	drain := Joker{ID: "drain", Effect: func(HandCategory, int, float64) JokerEffect {
		return JokerEffect{Additive: -100}
	}}
	got := Evaluate(mustCards(t, "AS AH"), Jokers{drain})
	assert.Equal(t, 0, got.TotalScore)
	assert.Equal(t, -100, got.AdditiveBonus)
}

func TestEvaluate_IsPure(t *testing.T) {
	cards := mustCards(t, "JS JH 4C 8D KS")
	jokers := DefaultJokers()

	first := Evaluate(cards, jokers)
	second := Evaluate(cards, jokers)
	require.Equal(t, first, second)
	assert.Equal(t, mustCards(t, "JS JH 4C 8D KS"), cards)
}
