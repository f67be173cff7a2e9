package poker

// Stake describes the difficulty of a run. The engine never reads these
// numbers; they are shown to the player as they are.
type Stake struct {
	Name         string  `json:"name"`
	BaseScoreReq int     `json:"base_score_req"`
	ScoreGrowth  int     `json:"score_growth"`
	BaseMult     float64 `json:"base_mult"`
	MultGrowth   float64 `json:"mult_growth"`
}

// RunMeta is display metadata about the deck and stake of a run.
type RunMeta struct {
	DeckName      string `json:"deck_name"`
	DeckModifiers string `json:"deck_modifiers"`
	Stake         Stake  `json:"stake"`
}

func DefaultRunMeta() RunMeta {
	return RunMeta{
		DeckName:      "Standard Deck",
		DeckModifiers: "No deck modifiers yet.",
		Stake: Stake{
			Name:         "White",
			BaseScoreReq: 100,
			ScoreGrowth:  10,
			BaseMult:     1.5,
			MultGrowth:   0.0,
		},
	}
}
