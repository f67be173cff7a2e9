package game_constants

// Client to server events
const (
	EventSelectCard   = "select_card"
	EventPreviewHand  = "preview_hand"
	EventPlayHand     = "play_hand"
	EventDiscardCards = "discard_cards"
	EventSortHand     = "sort_hand"
	EventGetDeckStats = "get_deck_stats"
	EventGetHint      = "get_hint"
	EventRestartRun   = "restart_run"
)

// Server to client events
const (
	EventError         = "error"
	EventRunState      = "run_state" // broadcast to the other sockets of a run
	EventHandSelected  = "hand_selected"
	EventHandPreview   = "hand_preview"
	EventPlayedHand    = "played_hand"
	EventDiscarded     = "discarded"
	EventDeckExhausted = "deck_exhausted"
	EventHandSorted    = "hand_sorted"
	EventDeckStats     = "deck_stats"
	EventHint          = "hint"
	EventRunRestarted  = "run_restarted"
	EventRunEnded      = "run_ended"
)
