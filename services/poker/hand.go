package poker

import (
	"errors"
	"fmt"
	"sort"
)

const (
	HandSize    = 10 // the hand is kept at this size while the deck lasts
	MaxSelected = 5
)

type SortMode string

const (
	SortByRank SortMode = "rank"
	SortBySuit SortMode = "suit"
)

var ErrInvalidSortMode = errors.New("invalid sort mode")

type HandCard struct {
	Card
	Selected bool `json:"selected"`
}

// Hand is the live hand of a run. Cards are always kept ordered by Sort.
type Hand struct {
	Cards []HandCard `json:"cards"`
	Sort  SortMode   `json:"sort"`
}

// RefillReport tells how a refill went. Full is false on a short draw,
// when the deck could not cover what the hand needed.
type RefillReport struct {
	Requested int    `json:"requested"`
	Drawn     []Card `json:"drawn"`
	Full      bool   `json:"full"`
}

func NewHand() *Hand {
	return &Hand{Cards: []HandCard{}, Sort: SortByRank}
}

// InitHand creates a hand and deals it from the deck.
func InitHand(deck *Deck) *Hand {
	h := NewHand()
	h.InitialDraw(deck)
	return h
}

// InitialDraw fills the hand up to HandSize.
func (h *Hand) InitialDraw(deck *Deck) RefillReport {
	return h.refill(deck)
}

func (h *Hand) Len() int {
	return len(h.Cards)
}

// Plain returns the cards of the hand without selection flags.
func (h *Hand) Plain() []Card {
	cards := make([]Card, len(h.Cards))
	for i, hc := range h.Cards {
		cards[i] = hc.Card
	}
	return cards
}

func (h *Hand) SelectedCount() int {
	n := 0
	for _, hc := range h.Cards {
		if hc.Selected {
			n++
		}
	}
	return n
}

// Selected returns the selected cards in hand order.
func (h *Hand) Selected() []Card {
	var cards []Card
	for _, hc := range h.Cards {
		if hc.Selected {
			cards = append(cards, hc.Card)
		}
	}
	return cards
}

func (h *Hand) SelectedIndices() []int {
	var idx []int
	for i, hc := range h.Cards {
		if hc.Selected {
			idx = append(idx, i)
		}
	}
	return idx
}

// IndexOf returns the position of the card with the given id, or -1.
func (h *Hand) IndexOf(id string) int {
	for i, hc := range h.Cards {
		if hc.String() == id {
			return i
		}
	}
	return -1
}

// SetSelected selects or deselects the card at idx. Selecting a card while
// MaxSelected are already selected fails with ErrSelectionLimitExceeded and
// leaves the hand as it was. Deselecting always works.
func (h *Hand) SetSelected(idx int, selected bool) error {
	if idx < 0 || idx >= len(h.Cards) {
		return fmt.Errorf("%w: index %d", ErrCardNotInHand, idx)
	}
	if selected && !h.Cards[idx].Selected && h.SelectedCount() >= MaxSelected {
		return ErrSelectionLimitExceeded
	}
	h.Cards[idx].Selected = selected
	return nil
}

func (h *Hand) ClearSelection() {
	for i := range h.Cards {
		h.Cards[i].Selected = false
	}
}

// PlaySelected scores exactly the selected cards, removes them and refills
// the hand from the deck.
func (h *Hand) PlaySelected(deck *Deck, jokers Jokers) (ScoringResult, RefillReport, error) {
	selected := h.Selected()
	if len(selected) == 0 {
		return ScoringResult{}, RefillReport{}, ErrEmptySelection
	}

	result := Evaluate(selected, jokers)
	h.removeSelected()
	return result, h.refill(deck), nil
}

// DiscardSelected drops the selected cards without scoring and refills.
func (h *Hand) DiscardSelected(deck *Deck) (RefillReport, error) {
	if h.SelectedCount() == 0 {
		return RefillReport{}, ErrEmptySelection
	}
	h.removeSelected()
	return h.refill(deck), nil
}

// SortBy changes the sort mode. The selection is cleared.
func (h *Hand) SortBy(mode SortMode) error {
	if mode != SortByRank && mode != SortBySuit {
		return fmt.Errorf("%w: %q", ErrInvalidSortMode, mode)
	}
	h.Sort = mode
	h.ClearSelection()
	h.sortCards()
	return nil
}

// removeSelected works on positions, so it never mixes up cards.
func (h *Hand) removeSelected() {
	kept := make([]HandCard, 0, len(h.Cards))
	for _, hc := range h.Cards {
		if hc.Selected {
			continue
		}
		kept = append(kept, HandCard{Card: hc.Card})
	}
	h.Cards = kept
}

func (h *Hand) refill(deck *Deck) RefillReport {
	needed := HandSize - len(h.Cards)
	if needed < 0 {
		needed = 0
	}

	drawn := deck.Draw(needed)
	for _, c := range drawn {
		h.Cards = append(h.Cards, HandCard{Card: c})
	}
	h.sortCards()

	return RefillReport{
		Requested: needed,
		Drawn:     drawn,
		Full:      len(drawn) == needed,
	}
}

// sortCards keeps the hand in display order: by value high to low, or by
// suit (♠ ♥ ♣ ♦) and then value high to low.
func (h *Hand) sortCards() {
	switch h.Sort {
	case SortBySuit:
		sort.SliceStable(h.Cards, func(i, j int) bool {
			si, sj := suitIndex(h.Cards[i].Suit), suitIndex(h.Cards[j].Suit)
			if si != sj {
				return si < sj
			}
			return grade(h.Cards[i].Card) > grade(h.Cards[j].Card)
		})
	default:
		sort.SliceStable(h.Cards, func(i, j int) bool {
			return grade(h.Cards[i].Card) > grade(h.Cards[j].Card)
		})
	}
}
