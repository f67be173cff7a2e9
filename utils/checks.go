package utils

import (
	game_constants "HighStakes/constants/game"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// EmitError reports a failed socket request to the client the same way the
// HTTP side does: the message plus the status code it would have had.
func EmitError(client *socket.Socket, tag string, err error) {
	log.Printf("[%s-ERROR] socket %s: %v", tag, client.Id(), err)
	client.Emit(game_constants.EventError, gin.H{"error": err.Error(), "status": StatusFor(err)})
}
