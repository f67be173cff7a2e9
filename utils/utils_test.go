package utils

import (
	"HighStakes/middleware"
	"HighStakes/services/game"
	"HighStakes/services/poker"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{poker.ErrSelectionLimitExceeded, http.StatusConflict},
		{poker.ErrEmptySelection, http.StatusBadRequest},
		{fmt.Errorf("%w: index 12", poker.ErrCardNotInHand), http.StatusBadRequest},
		{fmt.Errorf("%w: \"ZZ\"", poker.ErrInvalidCard), http.StatusBadRequest},
		{poker.ErrInvalidSortMode, http.StatusBadRequest},
		{fmt.Errorf("%w: 11, at most 10", poker.ErrTooManyCards), http.StatusBadRequest},
		{game.ErrSessionNotFound, http.StatusNotFound},
		{middleware.ErrInvalidToken, http.StatusUnauthorized},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.err), tt.err.Error())
	}
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/limit", func(c *gin.Context) { _ = c.Error(poker.ErrSelectionLimitExceeded) })
	router.GET("/bind", func(c *gin.Context) {
		_ = c.Error(errors.New("card is required")).SetType(gin.ErrorTypeBind)
	})
	router.GET("/written", func(c *gin.Context) {
		c.JSON(http.StatusTeapot, gin.H{})
		_ = c.Error(errors.New("ignored"))
	})

	tests := []struct {
		path string
		code int
		body string
	}{
		{"/limit", http.StatusConflict, `{"error":"selection limit exceeded"}`},
		{"/bind", http.StatusBadRequest, `{"error":"card is required"}`},
		{"/written", http.StatusTeapot, `{}`},
	}
	for _, tt := range tests {
		req, _ := http.NewRequest("GET", tt.path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, tt.code, w.Code, tt.path)
		assert.JSONEq(t, tt.body, w.Body.String(), tt.path)
	}
}
