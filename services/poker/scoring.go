package poker

import "math"

// ScoringResult is the full breakdown of one evaluation. It is recomputed on
// every call and never stored by the engine.
type ScoringResult struct {
	Category        HandCategory `json:"category"`
	ScoringCards    []Card       `json:"scoring_cards"`
	BaseSum         int          `json:"base_sum"`
	BaseMultiplier  float64      `json:"base_multiplier"`
	AdditiveBonus   int          `json:"additive_bonus"`
	FinalMultiplier float64      `json:"final_multiplier"`
	TotalScore      int          `json:"total_score"`
	JokersTriggered []bool       `json:"jokers_triggered"`
}

// AddChipsPerCard sums the points of the given cards.
func AddChipsPerCard(cards []Card) int {
	addition := 0
	for _, card := range cards {
		addition += PointsPerCard(card)
	}
	return addition
}

// Evaluate classifies the cards and scores them through the joker pipeline:
// floor(final multiplier x (base sum + additive bonus)), never negative.
// It does not touch its inputs.
func Evaluate(cards []Card, jokers Jokers) ScoringResult {
	if len(cards) == 0 {
		return ScoringResult{
			Category:        NoCards,
			ScoringCards:    []Card{},
			JokersTriggered: make([]bool, len(jokers)),
		}
	}

	category, scoring := Classify(cards)
	baseSum := AddChipsPerCard(scoring)
	baseMult := BaseMultiplier(category)

	finalMult, additive, used := jokers.ApplyJokers(category, baseSum, baseMult)

	total := math.Floor(finalMult * float64(baseSum+additive))
	if total < 0 {
		total = 0
	}

	return ScoringResult{
		Category:        category,
		ScoringCards:    scoring,
		BaseSum:         baseSum,
		BaseMultiplier:  baseMult,
		AdditiveBonus:   additive,
		FinalMultiplier: finalMult,
		TotalScore:      int(total),
		JokersTriggered: used,
	}
}
