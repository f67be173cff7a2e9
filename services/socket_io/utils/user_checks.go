package socketio_utils

import (
	game_constants "HighStakes/constants/game"
	"HighStakes/middleware"
	"HighStakes/services/game"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// VerifyRunConnection checks the run token of a new socket.io client and
// that its run is still live. On failure the client gets an "error" event
// and is disconnected.
func VerifyRunConnection(client *socket.Socket, tokens *middleware.RunTokens, manager *game.Manager) (success bool, runID string) {
	// Checks if we have auth data in the connection
	authData, ok := client.Handshake().Auth.(map[string]interface{})
	if !ok {
		log.Printf("[SOCKET-AUTH] %s: no auth data in handshake", client.Id())
		refuse(client, "Authentication failed: missing auth data")
		return false, ""
	}

	runID, err := tokens.Socketio_JWT_decoder(authData)
	if err != nil {
		log.Printf("[SOCKET-AUTH] %s: %v", client.Id(), err)
		refuse(client, "Authentication failed: invalid run token. Set it on the 'authorization' field with the 'Bearer ' prefix.")
		return false, ""
	}

	if _, err := manager.Get(runID); err != nil {
		log.Printf("[SOCKET-AUTH] %s: run %s: %v", client.Id(), runID, err)
		refuse(client, "Authentication failed: run not found")
		return false, ""
	}
	return true, runID
}

func refuse(client *socket.Socket, msg string) {
	client.Emit(game_constants.EventError, gin.H{"error": msg})
	client.Disconnect(true)
}
