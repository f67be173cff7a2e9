package handlers

import (
	game_constants "HighStakes/constants/game"
	"HighStakes/models"
	"HighStakes/services/game"
	"HighStakes/services/poker"
	socketio_types "HighStakes/services/socket_io/types"
	"HighStakes/utils"
	"errors"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/zishang520/socket.io/v2/socket"
)

var (
	errMissingPayload = errors.New("missing payload")
	validate          = validator.New()
)

// decodePayload reads the first event argument (a JSON object) into out
// and validates it.
func decodePayload(args []interface{}, out interface{}) error {
	if len(args) < 1 || args[0] == nil {
		return errMissingPayload
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
		TagName:          "json",
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(args[0]); err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}
	if err := validate.Struct(out); err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}
	return nil
}

// reply is one event produced by a request. ToRoom sends it to the other
// sockets of the run instead of the caller.
type reply struct {
	Event  string
	Data   interface{}
	ToRoom bool
}

func stateReplies(event string, data interface{}, state game.State) []reply {
	return []reply{
		{Event: event, Data: data},
		{Event: game_constants.EventRunState, Data: state, ToRoom: true},
	}
}

func send(client *socket.Socket, runID string, replies []reply) {
	for _, r := range replies {
		if r.ToRoom {
			client.To(socket.Room(runID)).Emit(r.Event, r.Data)
		} else {
			client.Emit(r.Event, r.Data)
		}
	}
}

// handle turns an event function into a socket.io listener.
func handle(client *socket.Socket, runID, tag string, fn func(args []interface{}) ([]reply, error)) func(args ...interface{}) {
	return func(args ...interface{}) {
		replies, err := fn(args)
		if err != nil {
			utils.EmitError(client, tag, err)
			return
		}
		send(client, runID, replies)
	}
}

func selectCard(manager *game.Manager, runID string, args []interface{}) ([]reply, error) {
	var req models.SelectRequest
	if err := decodePayload(args, &req); err != nil {
		return nil, err
	}

	var state game.State
	err := manager.With(runID, func(s *game.Session) error {
		if err := s.SelectCard(req.Card, req.Selected); err != nil {
			return err
		}
		state = s.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return stateReplies(game_constants.EventHandSelected, gin.H{
		"card":     req.Card,
		"selected": req.Selected,
		"state":    state,
	}, state), nil
}

func previewHand(manager *game.Manager, runID string) ([]reply, error) {
	var preview poker.ScoringResult
	err := manager.With(runID, func(s *game.Session) error {
		preview = s.Preview()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return []reply{{Event: game_constants.EventHandPreview, Data: preview}}, nil
}

// playTurn runs a play or a discard. A short refill adds deck_exhausted.
func playTurn(manager *game.Manager, runID, event string, fn func(s *game.Session) (game.Turn, error)) ([]reply, error) {
	var resp models.TurnResponse
	err := manager.With(runID, func(s *game.Session) error {
		turn, err := fn(s)
		if err != nil {
			return err
		}
		resp = models.TurnResponse{Turn: turn, State: s.Snapshot()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	replies := stateReplies(event, resp, resp.State)
	if !resp.Turn.Refill.Full {
		log.Printf("[DECK] run %s ran short: drew %d of %d", runID, len(resp.Turn.Refill.Drawn), resp.Turn.Refill.Requested)
		replies = append(replies, reply{Event: game_constants.EventDeckExhausted, Data: resp.Turn.Refill})
	}
	return replies, nil
}

func playHand(manager *game.Manager, runID string) ([]reply, error) {
	replies, err := playTurn(manager, runID, game_constants.EventPlayedHand, (*game.Session).Play)
	if err != nil {
		return nil, err
	}
	result := replies[0].Data.(models.TurnResponse).Turn.Result
	log.Printf("[HAND-PLAY] run %s scored %d with %s", runID, result.TotalScore, result.Category)
	return replies, nil
}

func discardCards(manager *game.Manager, runID string) ([]reply, error) {
	return playTurn(manager, runID, game_constants.EventDiscarded, (*game.Session).Discard)
}

func sortHand(manager *game.Manager, runID string, args []interface{}) ([]reply, error) {
	var req models.SortRequest
	if err := decodePayload(args, &req); err != nil {
		return nil, err
	}

	var state game.State
	err := manager.With(runID, func(s *game.Session) error {
		if err := s.Sort(req.Mode); err != nil {
			return err
		}
		state = s.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stateReplies(game_constants.EventHandSorted, state, state), nil
}

func deckStats(manager *game.Manager, runID string) ([]reply, error) {
	var overview models.DeckOverview
	err := manager.With(runID, func(s *game.Session) error {
		overview = models.DeckOverview{Stats: s.DeckStats(), Meta: s.Meta}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return []reply{{Event: game_constants.EventDeckStats, Data: overview}}, nil
}

func hint(manager *game.Manager, runID string) ([]reply, error) {
	var h poker.Hint
	err := manager.With(runID, func(s *game.Session) error {
		h = s.Hint()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return []reply{{Event: game_constants.EventHint, Data: h}}, nil
}

func restartRun(manager *game.Manager, runID string) ([]reply, error) {
	var state game.State
	err := manager.With(runID, func(s *game.Session) error {
		log.Printf("[RUN-RESTART] run %s restarted at %d points", runID, s.TotalScore)
		s.Restart()
		state = s.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stateReplies(game_constants.EventRunRestarted, state, state), nil
}

func HandleSelectCard(client *socket.Socket, manager *game.Manager, runID string) func(args ...interface{}) {
	return handle(client, runID, "HAND-SELECT", func(args []interface{}) ([]reply, error) {
		return selectCard(manager, runID, args)
	})
}

func HandlePreviewHand(client *socket.Socket, manager *game.Manager, runID string) func(args ...interface{}) {
	return handle(client, runID, "HAND-PREVIEW", func([]interface{}) ([]reply, error) {
		return previewHand(manager, runID)
	})
}

// HandlePlayHand plays the selected cards and replies with the hand
// category and the points scored.
func HandlePlayHand(client *socket.Socket, manager *game.Manager, runID string) func(args ...interface{}) {
	return handle(client, runID, "HAND-PLAY", func([]interface{}) ([]reply, error) {
		log.Printf("[HAND-PLAY] run %s, socket %s", runID, client.Id())
		return playHand(manager, runID)
	})
}

func HandleDiscardCards(client *socket.Socket, manager *game.Manager, runID string) func(args ...interface{}) {
	return handle(client, runID, "HAND-DISCARD", func([]interface{}) ([]reply, error) {
		return discardCards(manager, runID)
	})
}

func HandleSortHand(client *socket.Socket, manager *game.Manager, runID string) func(args ...interface{}) {
	return handle(client, runID, "HAND-SORT", func(args []interface{}) ([]reply, error) {
		return sortHand(manager, runID, args)
	})
}

func HandleGetDeckStats(client *socket.Socket, manager *game.Manager, runID string) func(args ...interface{}) {
	return handle(client, runID, "DECK-STATS", func([]interface{}) ([]reply, error) {
		return deckStats(manager, runID)
	})
}

func HandleGetHint(client *socket.Socket, manager *game.Manager, runID string) func(args ...interface{}) {
	return handle(client, runID, "HINT", func([]interface{}) ([]reply, error) {
		return hint(manager, runID)
	})
}

func HandleRestartRun(client *socket.Socket, manager *game.Manager, runID string) func(args ...interface{}) {
	return handle(client, runID, "RUN-RESTART", func([]interface{}) ([]reply, error) {
		return restartRun(manager, runID)
	})
}

// HandleDisconnecting forgets the connection. The run itself stays alive
// until it is ended or pruned.
func HandleDisconnecting(client *socket.Socket, runID string, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		sio.RemoveConnection(runID, client.Id())
		log.Printf("[DISCONNECT] socket %s left run %s (%d still connected)",
			client.Id(), runID, sio.Connections(runID))
	}
}
