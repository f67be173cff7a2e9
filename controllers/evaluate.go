package controllers

import (
	"HighStakes/models"
	"HighStakes/services/poker"
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Evaluates a set of cards
// @Description Classifies up to 10 distinct cards, picks the scoring cards and runs the default jokers. Nothing is stored.
// @Tags evaluate
// @Accept json
// @Produce json
// @Param request body models.EvaluateRequest true "Card ids, e.g. [\"K♠\",\"kh\",\"10♦\"]"
// @Success 200 {object} poker.ScoringResult
// @Failure 400 {object} object{error=string}
// @Router /evaluate [post]
func Evaluate() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.EvaluateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			_ = c.Error(err).SetType(gin.ErrorTypeBind)
			return
		}

		cards, err := poker.ParseHandCards(req.Cards)
		if err != nil {
			_ = c.Error(err)
			return
		}

		c.JSON(http.StatusOK, poker.Evaluate(cards, poker.DefaultJokers()))
	}
}
