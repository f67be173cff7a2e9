package poker

// GenerateHands returns every combination of handSize cards, keeping the
// relative order of the input in each combination.
func GenerateHands(hand []Card, handSize int) [][]Card {
	combinations := [][]Card{}
	if handSize <= 0 || handSize > len(hand) {
		return combinations
	}
	combination := make([]Card, handSize)
	var generate func(int, int)
	generate = func(start, depth int) {
		if depth == handSize {
			combinationCopy := make([]Card, handSize)
			copy(combinationCopy, combination)
			combinations = append(combinations, combinationCopy)
			return
		}
		for i := start; i < len(hand); i++ {
			combination[depth] = hand[i]
			generate(i+1, depth+1)
		}
	}
	generate(0, 0)
	return combinations
}

// Hint is the best selection found in a hand.
type Hint struct {
	Indices []int         `json:"indices"`
	Result  ScoringResult `json:"result"`
}

// BestSelection tries every selection of 1 to MaxSelected cards of the hand
// and returns the one that scores the most. On a tie the first one found
// wins, smaller selections being tried first. The hand is not modified.
func BestSelection(h *Hand, jokers Jokers) Hint {
	cards := h.Plain()
	best := Hint{Indices: []int{}, Result: Evaluate(nil, jokers)}

	positions := make(map[string]int, len(cards))
	for i, c := range cards {
		positions[c.String()] = i
	}

	for size := 1; size <= MaxSelected && size <= len(cards); size++ {
		for _, combo := range GenerateHands(cards, size) {
			result := Evaluate(combo, jokers)
			if len(best.Indices) > 0 && result.TotalScore <= best.Result.TotalScore {
				continue
			}
			indices := make([]int, len(combo))
			for i, c := range combo {
				indices[i] = positions[c.String()]
			}
			best = Hint{Indices: indices, Result: result}
		}
	}
	return best
}
