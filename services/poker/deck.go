package poker

// Deck is the draw pile of a run. It starts with the 52 unique cards and is
// only ever depleted by draws: played and discarded cards never come back.
type Deck struct {
	Cards []Card `json:"cards"`
}

// RandomSource is what shuffling needs from a random generator.
// *math/rand.Rand satisfies it, so tests can pass a seeded one.
type RandomSource interface {
	Intn(n int) int
}

// DeckStats is the deck overview: what is left and how likely each suit
// and rank is to come out on the next draw.
type DeckStats struct {
	Remaining         int                `json:"remaining"`
	Total             int                `json:"total"`
	SuitCounts        map[string]int     `json:"suit_counts"`
	RankCounts        map[string]int     `json:"rank_counts"`
	SuitProbabilities map[string]float64 `json:"suit_probabilities"`
	RankProbabilities map[string]float64 `json:"rank_probabilities"`
}

// NewStandardDeck creates the 52 rank x suit combinations, suit by suit.
func NewStandardDeck() *Deck {
	total := make([]Card, 0, FullDeckLen)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			total = append(total, Card{Rank: rank, Suit: suit})
		}
	}
	return &Deck{Cards: total}
}

// Shuffle randomizes the deck using Fisher-Yates
func (d *Deck) Shuffle(rng RandomSource) {
	for i := len(d.Cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Draw removes up to n cards from the top of the deck. When fewer than n
// remain it returns all of them (a short draw) and leaves the deck empty.
func (d *Deck) Draw(n int) []Card {
	if n <= 0 {
		return []Card{}
	}
	if n > len(d.Cards) {
		n = len(d.Cards)
	}

	drawn := make([]Card, n)
	copy(drawn, d.Cards[:n])
	d.Cards = d.Cards[n:]

	return drawn
}

func (d *Deck) Len() int {
	return len(d.Cards)
}

// Stats counts the remaining cards per suit and per rank. Probabilities are
// count/remaining, or 0 for an empty deck.
func (d *Deck) Stats() DeckStats {
	stats := DeckStats{
		Remaining:         len(d.Cards),
		Total:             FullDeckLen,
		SuitCounts:        make(map[string]int, len(Suits)),
		RankCounts:        make(map[string]int, len(Ranks)),
		SuitProbabilities: make(map[string]float64, len(Suits)),
		RankProbabilities: make(map[string]float64, len(Ranks)),
	}

	for _, s := range Suits {
		stats.SuitCounts[s] = 0
	}
	for _, r := range Ranks {
		stats.RankCounts[r] = 0
	}
	for _, c := range d.Cards {
		stats.SuitCounts[c.Suit]++
		stats.RankCounts[c.Rank]++
	}

	for s, count := range stats.SuitCounts {
		stats.SuitProbabilities[s] = probability(count, stats.Remaining)
	}
	for r, count := range stats.RankCounts {
		stats.RankProbabilities[r] = probability(count, stats.Remaining)
	}
	return stats
}

func probability(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total)
}
