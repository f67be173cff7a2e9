package game

import (
	"fmt"
	"time"

	"HighStakes/services/poker"

	"github.com/google/uuid"
)

// Session is a single run: its deck, its hand, its jokers and the score
// made so far. A Session is not safe for concurrent use; hosts go through
// Manager.With.
type Session struct {
	ID          string
	Deck        *poker.Deck
	Hand        *poker.Hand
	Jokers      poker.Jokers
	Meta        poker.RunMeta
	TotalScore  int
	HandsPlayed int
	Discards    int
	Removed     []poker.Card
	LastResult  *poker.ScoringResult
	CreatedAt   time.Time

	rng poker.RandomSource
}

// Turn is what came out of a play or a discard.
type Turn struct {
	Cards  []poker.Card         `json:"cards"`
	Result *poker.ScoringResult `json:"result,omitempty"`
	Refill poker.RefillReport   `json:"refill"`
}

// State is a copy of the visible state of a session.
type State struct {
	ID            string               `json:"id"`
	Hand          []poker.HandCard     `json:"hand"`
	SortMode      poker.SortMode       `json:"sort_mode"`
	Selected      []int                `json:"selected"`
	Preview       poker.ScoringResult  `json:"preview"`
	Jokers        []poker.JokerInfo    `json:"jokers"`
	DeckRemaining int                  `json:"deck_remaining"`
	TotalScore    int                  `json:"total_score"`
	HandsPlayed   int                  `json:"hands_played"`
	Discards      int                  `json:"discards"`
	LastResult    *poker.ScoringResult `json:"last_result,omitempty"`
	Meta          poker.RunMeta        `json:"meta"`
}

// NewSession starts a run: a shuffled standard deck, a full hand and the
// default jokers.
func NewSession(rng poker.RandomSource) *Session {
	s := &Session{
		ID:  uuid.NewString(),
		rng: rng,
	}
	s.deal()
	return s
}

// Restart throws the current run away and deals a new one under the same id.
func (s *Session) Restart() {
	s.deal()
}

func (s *Session) deal() {
	s.Deck = poker.NewStandardDeck()
	s.Deck.Shuffle(s.rng)
	s.Hand = poker.InitHand(s.Deck)
	s.Jokers = poker.DefaultJokers()
	s.Meta = poker.DefaultRunMeta()
	s.TotalScore = 0
	s.HandsPlayed = 0
	s.Discards = 0
	s.Removed = []poker.Card{}
	s.LastResult = nil
	s.CreatedAt = time.Now()
}

func (s *Session) Select(idx int, selected bool) error {
	return s.Hand.SetSelected(idx, selected)
}

// SelectCard selects a card by its id ("10♥", "qd", ...).
func (s *Session) SelectCard(id string, selected bool) error {
	card, err := poker.ParseCard(id)
	if err != nil {
		return err
	}
	idx := s.Hand.IndexOf(card.String())
	if idx < 0 {
		return fmt.Errorf("%w: %s", poker.ErrCardNotInHand, card)
	}
	return s.Hand.SetSelected(idx, selected)
}

// Preview scores the current selection without playing it.
func (s *Session) Preview() poker.ScoringResult {
	return poker.Evaluate(s.Hand.Selected(), s.Jokers)
}

func (s *Session) Play() (Turn, error) {
	played := s.Hand.Selected()
	result, refill, err := s.Hand.PlaySelected(s.Deck, s.Jokers)
	if err != nil {
		return Turn{}, err
	}

	s.TotalScore += result.TotalScore
	s.HandsPlayed++
	s.Removed = append(s.Removed, played...)
	s.LastResult = &result
	return Turn{Cards: played, Result: &result, Refill: refill}, nil
}

func (s *Session) Discard() (Turn, error) {
	discarded := s.Hand.Selected()
	refill, err := s.Hand.DiscardSelected(s.Deck)
	if err != nil {
		return Turn{}, err
	}

	s.Discards++
	s.Removed = append(s.Removed, discarded...)
	return Turn{Cards: discarded, Refill: refill}, nil
}

func (s *Session) Sort(mode poker.SortMode) error {
	return s.Hand.SortBy(mode)
}

func (s *Session) DeckStats() poker.DeckStats {
	return s.Deck.Stats()
}

func (s *Session) Hint() poker.Hint {
	return poker.BestSelection(s.Hand, s.Jokers)
}

// CardsAccounted counts every card the run knows about. It is always
// poker.FullDeckLen.
func (s *Session) CardsAccounted() int {
	return s.Deck.Len() + s.Hand.Len() + len(s.Removed)
}

// Finished reports whether both the deck and the hand are empty.
func (s *Session) Finished() bool {
	return s.Deck.Len() == 0 && s.Hand.Len() == 0
}

func (s *Session) Snapshot() State {
	st := State{
		ID:            s.ID,
		Hand:          append([]poker.HandCard{}, s.Hand.Cards...),
		SortMode:      s.Hand.Sort,
		Selected:      s.Hand.SelectedIndices(),
		Preview:       s.Preview(),
		Jokers:        s.Jokers.Infos(),
		DeckRemaining: s.Deck.Len(),
		TotalScore:    s.TotalScore,
		HandsPlayed:   s.HandsPlayed,
		Discards:      s.Discards,
		Meta:          s.Meta,
	}
	if st.Selected == nil {
		st.Selected = []int{}
	}
	if s.LastResult != nil {
		last := *s.LastResult
		st.LastResult = &last
	}
	return st
}
