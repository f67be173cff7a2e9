package models

import (
	"HighStakes/services/game"
	"HighStakes/services/poker"
	"time"
)

// EvaluateRequest asks for a stateless evaluation of a list of cards
type EvaluateRequest struct {
	Cards []string `json:"cards" binding:"required" validate:"required"`
}

// SelectRequest selects or deselects one card of the hand by id ("10♥", "qd")
type SelectRequest struct {
	Card     string `json:"card" binding:"required" validate:"required"`
	Selected bool   `json:"selected"`
}

// SortRequest changes the sort mode of the hand
type SortRequest struct {
	Mode poker.SortMode `json:"mode" binding:"required,oneof=rank suit" validate:"required,oneof=rank suit"`
}

// RunCreated is returned when a run starts
type RunCreated struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expires_at"`
	State     game.State `json:"state"`
}

// TurnResponse is returned after a play or a discard
type TurnResponse struct {
	Turn  game.Turn  `json:"turn"`
	State game.State `json:"state"`
}

// DeckOverview is the deck panel: what is left and the run settings
type DeckOverview struct {
	Stats poker.DeckStats `json:"stats"`
	Meta  poker.RunMeta   `json:"meta"`
}
