package poker

import "sort"

type HandCategory string

const (
	NoCards       HandCategory = "No Cards"
	HighCard      HandCategory = "High Card"
	Pair          HandCategory = "Pair"
	TwoPair       HandCategory = "Two Pair"
	ThreeOfAKind  HandCategory = "Three of a Kind"
	Straight      HandCategory = "Straight"
	Flush         HandCategory = "Flush"
	FullHouse     HandCategory = "Full House"
	FourOfAKind   HandCategory = "Four of a Kind"
	StraightFlush HandCategory = "Straight Flush"
	FiveOfAKind   HandCategory = "Five of a Kind"
)

// Base multiplier of each hand category, applied before jokers.
var HandMultipliers = map[HandCategory]float64{
	NoCards:       0,
	HighCard:      1,
	Pair:          1.5,
	TwoPair:       2,
	ThreeOfAKind:  2.5,
	Straight:      3,
	Flush:         3.5,
	FullHouse:     4,
	FourOfAKind:   4.5,
	StraightFlush: 5,
	FiveOfAKind:   6,
}

func BaseMultiplier(category HandCategory) float64 {
	return HandMultipliers[category]
}

// handView groups the evaluated cards once so every rule can read the same
// counts. Orders are "first seen in the input", which is what every
// "first N cards" pick below relies on.
type handView struct {
	cards      []Card
	rankCounts map[string]int
	suitCounts map[string]int
	suitOrder  []string
}

func newHandView(cards []Card) handView {
	v := handView{
		cards:      cards,
		rankCounts: make(map[string]int),
		suitCounts: make(map[string]int),
	}
	for _, c := range cards {
		v.rankCounts[c.Rank]++
		if v.suitCounts[c.Suit] == 0 {
			v.suitOrder = append(v.suitOrder, c.Suit)
		}
		v.suitCounts[c.Suit]++
	}
	return v
}

// ranksWhere returns the ranks whose count satisfies keep, highest value first.
func (v handView) ranksWhere(keep func(count int) bool) []string {
	var ranks []string
	for rank, count := range v.rankCounts {
		if keep(count) {
			ranks = append(ranks, rank)
		}
	}
	sort.Slice(ranks, func(i, j int) bool {
		return grade(Card{Rank: ranks[i]}) > grade(Card{Rank: ranks[j]})
	})
	return ranks
}

// ofRank returns the first limit cards of the given rank, in input order.
func (v handView) ofRank(rank string, limit int) []Card {
	picked := make([]Card, 0, limit)
	for _, c := range v.cards {
		if len(picked) == limit {
			break
		}
		if c.Rank == rank {
			picked = append(picked, c)
		}
	}
	return picked
}

func (v handView) ofSuit(suit string) []Card {
	var picked []Card
	for _, c := range v.cards {
		if c.Suit == suit {
			picked = append(picked, c)
		}
	}
	return picked
}

// handRule is one row of the classification table.
type handRule struct {
	Category HandCategory
	Match    func(v handView) ([]Card, bool)
}

// handRules is checked top to bottom, the strongest category first. The
// first rule that matches decides the category and the scoring cards.
var handRules = []handRule{
	{FiveOfAKind, fiveOfAKindRule},
	{StraightFlush, straightFlushRule},
	{FourOfAKind, fourOfAKindRule},
	{FullHouse, fullHouseRule},
	{Flush, flushRule},
	{Straight, straightRule},
	{ThreeOfAKind, threeOfAKindRule},
	{TwoPair, twoPairRule},
	{Pair, pairRule},
	{HighCard, highCardRule},
}

// Classify returns the category of the given cards and the subset of them
// that scores. Kickers are left out of the subset. Any number of cards is
// accepted; an empty input is NoCards with no scoring cards.
func Classify(cards []Card) (HandCategory, []Card) {
	if len(cards) == 0 {
		return NoCards, []Card{}
	}

	v := newHandView(cards)
	for _, rule := range handRules {
		if scoring, ok := rule.Match(v); ok {
			return rule.Category, scoring
		}
	}
	// highCardRule matches any non-empty input
	return HighCard, nil
}

func fiveOfAKindRule(v handView) ([]Card, bool) {
	ranks := v.ranksWhere(func(n int) bool { return n >= 5 })
	if len(ranks) == 0 {
		return nil, false
	}
	return v.ofRank(ranks[0], 5), true
}

func straightFlushRule(v handView) ([]Card, bool) {
	if len(v.cards) < 5 {
		return nil, false
	}
	for _, suit := range v.suitOrder {
		if v.suitCounts[suit] < 5 {
			continue
		}
		suited := v.ofSuit(suit)
		if values, ok := findStraight(suited); ok {
			return pickForValues(suited, values), true
		}
	}
	return nil, false
}

func fourOfAKindRule(v handView) ([]Card, bool) {
	ranks := v.ranksWhere(func(n int) bool { return n == 4 })
	if len(ranks) == 0 {
		return nil, false
	}
	return v.ofRank(ranks[0], 4), true
}

// fullHouseRule takes the highest rank with 3+ copies as the triple and the
// highest other rank with 2+ copies as the pair. Without such a pair it does
// not match and the cards fall through to the rules below, which is where a
// lone triple ends up as Three of a Kind.
func fullHouseRule(v handView) ([]Card, bool) {
	triples := v.ranksWhere(func(n int) bool { return n >= 3 })
	if len(triples) == 0 {
		return nil, false
	}
	three := triples[0]

	var two string
	for _, rank := range v.ranksWhere(func(n int) bool { return n >= 2 }) {
		if rank != three {
			two = rank
			break
		}
	}
	if two == "" {
		return nil, false
	}

	return append(v.ofRank(three, 3), v.ofRank(two, 2)...), true
}

// flushRule scores the first 5 cards of the first suit with 5+ members, in
// input order. They are not necessarily the 5 highest of that suit.
func flushRule(v handView) ([]Card, bool) {
	if len(v.cards) < 5 {
		return nil, false
	}
	for _, suit := range v.suitOrder {
		if v.suitCounts[suit] >= 5 {
			return v.ofSuit(suit)[:5], true
		}
	}
	return nil, false
}

func straightRule(v handView) ([]Card, bool) {
	if len(v.cards) < 5 {
		return nil, false
	}
	values, ok := findStraight(v.cards)
	if !ok {
		return nil, false
	}
	return pickForValues(v.cards, values), true
}

func threeOfAKindRule(v handView) ([]Card, bool) {
	ranks := v.ranksWhere(func(n int) bool { return n == 3 })
	if len(ranks) == 0 {
		return nil, false
	}
	return v.ofRank(ranks[0], 3), true
}

func twoPairRule(v handView) ([]Card, bool) {
	ranks := v.ranksWhere(func(n int) bool { return n >= 2 })
	if len(ranks) < 2 {
		return nil, false
	}
	return append(v.ofRank(ranks[0], 2), v.ofRank(ranks[1], 2)...), true
}

func pairRule(v handView) ([]Card, bool) {
	ranks := v.ranksWhere(func(n int) bool { return n == 2 })
	if len(ranks) == 0 {
		return nil, false
	}
	return v.ofRank(ranks[0], 2), true
}

// highCardRule scores the first card with the highest value. Suits never
// break ties.
func highCardRule(v handView) ([]Card, bool) {
	best := v.cards[0]
	for _, c := range v.cards[1:] {
		if grade(c) > grade(best) {
			best = c
		}
	}
	return []Card{best}, true
}

// findStraight looks for 5 consecutive values among the cards. The lowest
// window wins; the wheel (A-2-3-4-5, ace counting as 1) is only tried when
// there is no regular window. The returned values are in scoring order.
func findStraight(cards []Card) ([]int, bool) {
	present := make(map[int]bool, len(cards))
	for _, c := range cards {
		present[grade(c)] = true
	}

	for low := 2; low+4 <= AceValue; low++ {
		ok := true
		for v := low; v < low+5; v++ {
			if !present[v] {
				ok = false
				break
			}
		}
		if ok {
			return []int{low, low + 1, low + 2, low + 3, low + 4}, true
		}
	}

	if present[AceValue] && present[2] && present[3] && present[4] && present[5] {
		return []int{2, 3, 4, 5, AceValue}, true
	}
	return nil, false
}

// pickForValues takes one card per value, the first one found in input order.
func pickForValues(cards []Card, values []int) []Card {
	picked := make([]Card, 0, len(values))
	for _, value := range values {
		for _, c := range cards {
			if grade(c) == value {
				picked = append(picked, c)
				break
			}
		}
	}
	return picked
}
