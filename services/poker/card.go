package poker

import (
	"fmt"
	"strconv"
	"strings"
)

// Define a Card struct with a Rank and Suit
type Card struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

// Ranks 2, 3, 4, 5, 6, 7, 8, 9, 10, J, Q, K, A
// Suits ♠ (spades), ♥ (hearts), ♣ (clubs), ♦ (diamonds)
var Ranks = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

var Suits = []string{"♠", "♥", "♣", "♦"}

// ASCII aliases accepted by ParseCard
var suitLetters = map[string]string{
	"s": "♠", "h": "♥", "c": "♣", "d": "♦",
}

const (
	AceValue    = 14
	FullDeckLen = 52
)

// grade is the ordering value of a card (2..14). It is only used for
// comparisons and straights, never for scoring.
func grade(c Card) int {
	switch c.Rank {
	case "A":
		return 14
	case "K":
		return 13
	case "Q":
		return 12
	case "J":
		return 11
	default:
		rank, _ := strconv.Atoi(c.Rank)
		return rank
	}
}

// PointsPerCard returns what a card adds to the base sum when it scores.
// 2-9 are worth their rank, 10/J/Q/K are worth 10 and aces are worth 15.
func PointsPerCard(c Card) int {
	switch c.Rank {
	case "A":
		return 15
	case "10", "J", "Q", "K":
		return 10
	default:
		value, _ := strconv.Atoi(c.Rank)
		return value
	}
}

func (c Card) Value() int { return grade(c) }

func (c Card) Points() int { return PointsPerCard(c) }

// String is also the card id: rank followed by the suit symbol ("10♥").
// No two cards of the universe share it.
func (c Card) String() string {
	return c.Rank + c.Suit
}

func (c Card) Valid() bool {
	return rankIndex(c.Rank) >= 0 && suitIndex(c.Suit) >= 0
}

func rankIndex(rank string) int {
	for i, r := range Ranks {
		if r == rank {
			return i
		}
	}
	return -1
}

func suitIndex(suit string) int {
	for i, s := range Suits {
		if s == suit {
			return i
		}
	}
	return -1
}

// ParseCard reads a card id such as "10♥", "A♠" or "qd".
func ParseCard(id string) (Card, error) {
	id = strings.TrimSpace(id)
	for _, s := range Suits {
		if strings.HasSuffix(id, s) {
			c := Card{Rank: strings.ToUpper(strings.TrimSuffix(id, s)), Suit: s}
			if !c.Valid() {
				return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, id)
			}
			return c, nil
		}
	}
	if len(id) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, id)
	}
	suit, ok := suitLetters[strings.ToLower(id[len(id)-1:])]
	if !ok {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, id)
	}
	c := Card{Rank: strings.ToUpper(id[:len(id)-1]), Suit: suit}
	if !c.Valid() {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, id)
	}
	return c, nil
}

// ParseCards parses a list of card ids, failing on the first invalid one.
func ParseCards(ids []string) ([]Card, error) {
	cards := make([]Card, 0, len(ids))
	for _, id := range ids {
		c, err := ParseCard(id)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// ParseHandCards parses a list of card ids that could all sit in one hand:
// at most HandSize of them, no card twice.
func ParseHandCards(ids []string) ([]Card, error) {
	if len(ids) > HandSize {
		return nil, fmt.Errorf("%w: %d, at most %d", ErrTooManyCards, len(ids), HandSize)
	}
	cards, err := ParseCards(ids)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(cards))
	for _, c := range cards {
		if seen[c.String()] {
			return nil, fmt.Errorf("%w: %s appears twice", ErrInvalidCard, c)
		}
		seen[c.String()] = true
	}
	return cards, nil
}

// CardIDs maps cards to their ids, keeping order.
func CardIDs(cards []Card) []string {
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.String()
	}
	return ids
}
