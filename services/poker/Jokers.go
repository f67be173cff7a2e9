package poker

import (
	"errors"
	"fmt"
	"sync"
)

type Rarity string

const (
	Common    Rarity = "Common"
	Uncommon  Rarity = "Uncommon"
	Rare      Rarity = "Rare"
	Legendary Rarity = "Legendary"
)

var (
	ErrUnknownJoker = errors.New("unknown joker")
	ErrJokerExists  = errors.New("joker already registered")
)

// JokerEffect is what a joker contributes to one evaluation. A Multiplier of
// 0 means the joker has no multiplicative part (same as 1).
type JokerEffect struct {
	Additive   int     `json:"additive"`
	Multiplier float64 `json:"multiplier"`
}

func (e JokerEffect) factor() float64 {
	if e.Multiplier == 0 {
		return 1
	}
	return e.Multiplier
}

func (e JokerEffect) triggered() bool {
	return e.Additive != 0 || e.factor() != 1
}

// JokerFunc must be pure: same inputs, same effect, no state kept between calls.
type JokerFunc func(category HandCategory, baseSum int, baseMult float64) JokerEffect

type Joker struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Text   string    `json:"text"`
	Rarity Rarity    `json:"rarity"`
	Effect JokerFunc `json:"-"`
}

// JokerInfo is what a client sees of a joker: everything but its effect.
type JokerInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Text   string `json:"text"`
	Rarity Rarity `json:"rarity"`
}

func (j Joker) Info() JokerInfo {
	return JokerInfo{ID: j.ID, Name: j.Name, Text: j.Text, Rarity: j.Rarity}
}

// Jokers is the ordered pipeline of a run.
type Jokers []Joker

// Infos lists the pipeline in order without the effects.
func (js Jokers) Infos() []JokerInfo {
	out := make([]JokerInfo, len(js))
	for i, j := range js {
		out[i] = j.Info()
	}
	return out
}

const (
	RegularJokerID = "regular_joker"
	MoneyDoublerID = "money_doubler"
)

var (
	jokerMu    sync.RWMutex
	jokerTable = map[string]Joker{
		RegularJokerID: {
			ID:     RegularJokerID,
			Name:   "Regular Joker",
			Text:   "+10 points each hand",
			Rarity: Common,
			Effect: RegularJoker,
		},
		MoneyDoublerID: {
			ID:     MoneyDoublerID,
			Name:   "Money Doubler",
			Text:   "Pairs have double multiplier",
			Rarity: Uncommon,
			Effect: MoneyDoubler,
		},
	}
)

// +10 before multipliers, every hand
func RegularJoker(category HandCategory, baseSum int, baseMult float64) JokerEffect {
	return JokerEffect{Additive: 10}
}

// x2 multiplier on pairs only
func MoneyDoubler(category HandCategory, baseSum int, baseMult float64) JokerEffect {
	if category == Pair {
		return JokerEffect{Multiplier: 2}
	}
	return JokerEffect{}
}

// RegisterJoker adds a joker to the catalog so NewJoker can build it by id.
func RegisterJoker(j Joker) error {
	if j.ID == "" || j.Effect == nil {
		return fmt.Errorf("joker needs an id and an effect")
	}
	if j.Rarity == "" {
		j.Rarity = Common
	}

	jokerMu.Lock()
	defer jokerMu.Unlock()
	if _, exists := jokerTable[j.ID]; exists {
		return fmt.Errorf("%w: %s", ErrJokerExists, j.ID)
	}
	jokerTable[j.ID] = j
	return nil
}

func NewJoker(id string) (Joker, error) {
	jokerMu.RLock()
	defer jokerMu.RUnlock()
	j, ok := jokerTable[id]
	if !ok {
		return Joker{}, fmt.Errorf("%w: %s", ErrUnknownJoker, id)
	}
	return j, nil
}

// DefaultJokers is the pipeline every new run starts with.
func DefaultJokers() Jokers {
	jokerMu.RLock()
	defer jokerMu.RUnlock()
	return Jokers{jokerTable[RegularJokerID], jokerTable[MoneyDoublerID]}
}

// Add returns a new pipeline with j appended after the existing jokers.
func (js Jokers) Add(j Joker) Jokers {
	out := make(Jokers, 0, len(js)+1)
	out = append(out, js...)
	return append(out, j)
}

// ApplyJokers runs the whole pipeline from scratch. Every additive part is
// summed first, then the multiplicative parts are multiplied together in
// pipeline order and applied on top of the base multiplier. used[i] tells
// whether joker i changed anything.
func (js Jokers) ApplyJokers(category HandCategory, baseSum int, baseMult float64) (finalMult float64, additive int, used []bool) {
	used = make([]bool, len(js))
	factor := 1.0

	effects := make([]JokerEffect, len(js))
	for i, j := range js {
		if j.Effect == nil {
			continue
		}
		effects[i] = j.Effect(category, baseSum, baseMult)
		used[i] = effects[i].triggered()
	}

	for _, e := range effects {
		additive += e.Additive
	}
	for _, e := range effects {
		factor *= e.factor()
	}

	return baseMult * factor, additive, used
}
