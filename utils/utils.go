package utils

import (
	"HighStakes/middleware"
	"HighStakes/services/game"
	"HighStakes/services/poker"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger logs method, path, status and latency of each request
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		log.Printf("[HTTP] %s %s -> %d (%v)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(startTime))
	}
}

// ErrorHandler turns the last error a handler attached with c.Error into
// a {"error": msg} response, unless the handler already wrote one.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		last := c.Errors.Last()
		err := last.Err
		status := StatusFor(err)
		if last.IsType(gin.ErrorTypeBind) {
			status = http.StatusBadRequest
		}
		if status >= http.StatusInternalServerError {
			log.Printf("[HTTP-ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		}
		c.JSON(status, gin.H{"error": err.Error()})
	}
}

// StatusFor maps the error kinds of the game to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, poker.ErrSelectionLimitExceeded):
		return http.StatusConflict
	case errors.Is(err, poker.ErrEmptySelection),
		errors.Is(err, poker.ErrCardNotInHand),
		errors.Is(err, poker.ErrInvalidCard),
		errors.Is(err, poker.ErrTooManyCards),
		errors.Is(err, poker.ErrInvalidSortMode):
		return http.StatusBadRequest
	case errors.Is(err, game.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, middleware.ErrInvalidToken):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}
