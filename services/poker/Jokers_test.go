package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultJokers(t *testing.T) {
	js := DefaultJokers()
	require.Len(t, js, 2)
	assert.Equal(t, RegularJokerID, js[0].ID)
	assert.Equal(t, Common, js[0].Rarity)
	assert.Equal(t, MoneyDoublerID, js[1].ID)
	assert.Equal(t, Uncommon, js[1].Rarity)
}

func TestApplyJokers_Defaults(t *testing.T) {
	tests := []struct {
		category HandCategory
		baseMult float64
		wantMult float64
		wantAdd  int
		wantUsed []bool
	}{
		{Pair, 1.5, 3.0, 10, []bool{true, true}},
		{TwoPair, 2, 2, 10, []bool{true, false}},
		{HighCard, 1, 1, 10, []bool{true, false}},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			mult, add, used := DefaultJokers().ApplyJokers(tt.category, 20, tt.baseMult)
			assert.Equal(t, tt.wantMult, mult)
			assert.Equal(t, tt.wantAdd, add)
			assert.Equal(t, tt.wantUsed, used)
		})
	}
}

// Every additive part lands before any multiplier, whatever the order of
// the jokers in the pipeline.
func TestApplyJokers_AdditionsBeforeMultipliers(t *testing.T) {
	triple := Joker{ID: "triple", Effect: func(HandCategory, int, float64) JokerEffect {
		return JokerEffect{Multiplier: 3}
	}}
	plusFive := Joker{ID: "plus_five", Effect: func(HandCategory, int, float64) JokerEffect {
		return JokerEffect{Additive: 5}
	}}
	both := Joker{ID: "both", Effect: func(HandCategory, int, float64) JokerEffect {
		return JokerEffect{Additive: 1, Multiplier: 0.5}
	}}

	cards := mustCards(t, "9S") // High Card, base 9, x1
	a := Evaluate(cards, Jokers{triple, plusFive, both})
	b := Evaluate(cards, Jokers{plusFive, both, triple})

	assert.Equal(t, 6, a.AdditiveBonus)
	assert.Equal(t, 1.5, a.FinalMultiplier)
	assert.Equal(t, 22, a.TotalScore) // floor((9 + 6) * 1.5)
	assert.Equal(t, a.TotalScore, b.TotalScore)
}

func TestJokersAdd_DoesNotTouchOriginal(t *testing.T) {
	base := DefaultJokers()
	extra := Joker{ID: "extra", Effect: RegularJoker}

	grown := base.Add(extra)
	assert.Len(t, base, 2)
	require.Len(t, grown, 3)
	assert.Equal(t, "extra", grown[2].ID)

	got := Evaluate(mustCards(t, "JS JH"), grown)
	assert.Equal(t, 20, got.AdditiveBonus)
	assert.Equal(t, 120, got.TotalScore) // (20 + 20) * 3
}

func TestRegisterJoker(t *testing.T) {
	flushFan := Joker{
		ID:   "flush_fan_test",
		Name: "Flush Fan",
		Text: "Flushes have double multiplier",
		Effect: func(category HandCategory, _ int, _ float64) JokerEffect {
			if category == Flush {
				return JokerEffect{Multiplier: 2}
			}
			return JokerEffect{}
		},
	}
	require.NoError(t, RegisterJoker(flushFan))

	j, err := NewJoker("flush_fan_test")
	require.NoError(t, err)
	assert.Equal(t, Common, j.Rarity)

	assert.ErrorIs(t, RegisterJoker(flushFan), ErrJokerExists)
	assert.Error(t, RegisterJoker(Joker{ID: "no_effect"}))

	_, err = NewJoker("missing")
	assert.ErrorIs(t, err, ErrUnknownJoker)
}

func TestJokersInfos(t *testing.T) {
	infos := DefaultJokers().Infos()
	assert.Equal(t, []JokerInfo{
		{ID: RegularJokerID, Name: "Regular Joker", Text: "+10 points each hand", Rarity: Common},
		{ID: MoneyDoublerID, Name: "Money Doubler", Text: "Pairs have double multiplier", Rarity: Uncommon},
	}, infos)
}
