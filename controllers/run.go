package controllers

import (
	"HighStakes/middleware"
	"HighStakes/models"
	"HighStakes/services/game"
	"HighStakes/services/poker"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Starts a new run
// @Description Shuffles a new deck, deals the hand and returns the run token. The run id is also kept in the cookie session.
// @Tags run
// @Produce json
// @Success 201 {object} models.RunCreated
// @Failure 500 {object} object{error=string}
// @Router /run [post]
func CreateRun(manager *game.Manager, tokens *middleware.RunTokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := manager.Create()

		token, expires, err := tokens.Issue(state.ID)
		if err != nil {
			_ = manager.Delete(state.ID)
			_ = c.Error(err)
			return
		}
		if err := middleware.RememberRun(c, state.ID); err != nil {
			log.Printf("[RUN-NEW] could not save cookie session for %s: %v", state.ID, err)
		}

		log.Printf("[RUN-NEW] run %s started (%d live)", state.ID, manager.Len())
		c.JSON(http.StatusCreated, models.RunCreated{Token: token, ExpiresAt: expires, State: state})
	}
}

// @Summary Current state of the run
// @Description Hand, selection, preview of the selection, jokers and score
// @Tags run
// @Produce json
// @Param Authorization header string false "Bearer run token"
// @Success 200 {object} game.State
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /run/me [get]
// @Security ApiKeyAuth
func GetRun(manager *game.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		state, err := manager.Get(middleware.RunID(c))
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, state)
	}
}

// @Summary Selects or deselects a card
// @Description At most 5 cards can be selected. Selecting a 6th fails with 409 and changes nothing.
// @Tags run
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer run token"
// @Param request body models.SelectRequest true "Card id and the wanted state"
// @Success 200 {object} game.State
// @Failure 400 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /run/select [post]
// @Security ApiKeyAuth
func SelectCard(manager *game.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SelectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			_ = c.Error(err).SetType(gin.ErrorTypeBind)
			return
		}
		respondWithState(c, manager, func(s *game.Session) error {
			return s.SelectCard(req.Card, req.Selected)
		})
	}
}

// @Summary Previews the current selection
// @Description Scores the selected cards without playing them
// @Tags run
// @Produce json
// @Param Authorization header string false "Bearer run token"
// @Success 200 {object} poker.ScoringResult
// @Failure 404 {object} object{error=string}
// @Router /run/preview [get]
// @Security ApiKeyAuth
func PreviewHand(manager *game.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var preview poker.ScoringResult
		err := manager.With(middleware.RunID(c), func(s *game.Session) error {
			preview = s.Preview()
			return nil
		})
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, preview)
	}
}

// @Summary Plays the selected cards
// @Description Scores exactly the selected cards, removes them and refills the hand from the deck
// @Tags run
// @Produce json
// @Param Authorization header string false "Bearer run token"
// @Success 200 {object} models.TurnResponse
// @Failure 400 {object} object{error=string}
// @Router /run/play [post]
// @Security ApiKeyAuth
func PlayHand(manager *game.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		respondWithTurn(c, manager, "HAND-PLAY", (*game.Session).Play)
	}
}

// @Summary Discards the selected cards
// @Description Removes the selected cards without scoring and refills the hand from the deck
// @Tags run
// @Produce json
// @Param Authorization header string false "Bearer run token"
// @Success 200 {object} models.TurnResponse
// @Failure 400 {object} object{error=string}
// @Router /run/discard [post]
// @Security ApiKeyAuth
func DiscardCards(manager *game.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		respondWithTurn(c, manager, "HAND-DISCARD", (*game.Session).Discard)
	}
}

// @Summary Sorts the hand
// @Description Sorts by rank (high to low) or by suit. Clears the selection.
// @Tags run
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer run token"
// @Param request body models.SortRequest true "rank or suit"
// @Success 200 {object} game.State
// @Failure 400 {object} object{error=string}
// @Router /run/sort [post]
// @Security ApiKeyAuth
func SortHand(manager *game.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SortRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			_ = c.Error(err).SetType(gin.ErrorTypeBind)
			return
		}
		respondWithState(c, manager, func(s *game.Session) error {
			return s.Sort(req.Mode)
		})
	}
}

// @Summary Deck overview
// @Description Remaining cards per suit and rank, draw probabilities and the run settings
// @Tags run
// @Produce json
// @Param Authorization header string false "Bearer run token"
// @Success 200 {object} models.DeckOverview
// @Failure 404 {object} object{error=string}
// @Router /run/deck [get]
// @Security ApiKeyAuth
func GetDeck(manager *game.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var overview models.DeckOverview
		err := manager.With(middleware.RunID(c), func(s *game.Session) error {
			overview = models.DeckOverview{Stats: s.DeckStats(), Meta: s.Meta}
			return nil
		})
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, overview)
	}
}

// @Summary Best selection in the hand
// @Description Positions in the hand of the 1 to 5 cards that would score the most right now
// @Tags run
// @Produce json
// @Param Authorization header string false "Bearer run token"
// @Success 200 {object} poker.Hint
// @Failure 404 {object} object{error=string}
// @Router /run/hint [get]
// @Security ApiKeyAuth
func GetHint(manager *game.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var hint poker.Hint
		err := manager.With(middleware.RunID(c), func(s *game.Session) error {
			hint = s.Hint()
			return nil
		})
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, hint)
	}
}

// @Summary Restarts the run
// @Description New shuffled deck and hand, score back to zero. The token stays valid.
// @Tags run
// @Produce json
// @Param Authorization header string false "Bearer run token"
// @Success 200 {object} game.State
// @Failure 404 {object} object{error=string}
// @Router /run/restart [post]
// @Security ApiKeyAuth
func RestartRun(manager *game.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		respondWithState(c, manager, func(s *game.Session) error {
			log.Printf("[RUN-RESTART] run %s restarted at %d points", s.ID, s.TotalScore)
			s.Restart()
			return nil
		})
	}
}

// @Summary Ends the run
// @Description Drops the run and clears it from the cookie session
// @Tags run
// @Produce json
// @Param Authorization header string false "Bearer run token"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /run [delete]
// @Security ApiKeyAuth
func EndRun(manager *game.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		runID := middleware.RunID(c)
		if err := manager.Delete(runID); err != nil {
			_ = c.Error(err)
			return
		}
		if err := middleware.ForgetRun(c); err != nil {
			log.Printf("[RUN-END] could not clear cookie session for %s: %v", runID, err)
		}

		log.Printf("[RUN-END] run %s ended (%d live)", runID, manager.Len())
		c.JSON(http.StatusOK, gin.H{"message": "Run ended"})
	}
}

func respondWithState(c *gin.Context, manager *game.Manager, fn func(s *game.Session) error) {
	var state game.State
	err := manager.With(middleware.RunID(c), func(s *game.Session) error {
		if err := fn(s); err != nil {
			return err
		}
		state = s.Snapshot()
		return nil
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func respondWithTurn(c *gin.Context, manager *game.Manager, tag string, fn func(s *game.Session) (game.Turn, error)) {
	var resp models.TurnResponse
	err := manager.With(middleware.RunID(c), func(s *game.Session) error {
		turn, err := fn(s)
		if err != nil {
			return err
		}
		if !turn.Refill.Full {
			log.Printf("[%s] run %s: deck short, drew %d of %d", tag, s.ID, len(turn.Refill.Drawn), turn.Refill.Requested)
		}
		resp = models.TurnResponse{Turn: turn, State: s.Snapshot()}
		return nil
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
