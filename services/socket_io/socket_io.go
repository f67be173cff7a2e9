package socket_io

import (
	"HighStakes/config"
	game_constants "HighStakes/constants/game"
	"HighStakes/middleware"
	"HighStakes/services/game"
	"HighStakes/services/socket_io/handlers"
	socketio_types "HighStakes/services/socket_io/types"
	socketio_utils "HighStakes/services/socket_io/utils"
	stdlog "log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/log"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type MySocketServer socketio_types.SocketServer

// Start mounts the socket.io server on the router. Every connection must
// carry the run token of a live run; it then joins the room of that run.
func (sio *MySocketServer) Start(router *gin.Engine, manager *game.Manager, tokens *middleware.RunTokens, cfg *config.Config) {
	log.DEBUG = cfg.SocketDebug
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// NOTE: higher ping interval and timeout to 1) reduce network load and 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      corsOrigin(cfg.CorsOrigins),
		Credentials: true,
	})

	// an ended or pruned run takes its connections with it
	manager.OnDelete((*socketio_types.SocketServer)(sio).DisconnectRun)

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)

		success, runID := socketio_utils.VerifyRunConnection(client, tokens, manager)
		if !success {
			return
		}

		(*socketio_types.SocketServer)(sio).AddConnection(runID, client)
		client.Join(socket.Room(runID))
		stdlog.Printf("[SOCKET-CONNECT] socket %s joined run %s", client.Id(), runID)

		client.On(game_constants.EventSelectCard, handlers.HandleSelectCard(client, manager, runID))

		client.On(game_constants.EventPreviewHand, handlers.HandlePreviewHand(client, manager, runID))

		// Play the selected cards and receive the hand category and the points scored
		client.On(game_constants.EventPlayHand, handlers.HandlePlayHand(client, manager, runID))

		client.On(game_constants.EventDiscardCards, handlers.HandleDiscardCards(client, manager, runID))

		client.On(game_constants.EventSortHand, handlers.HandleSortHand(client, manager, runID))

		client.On(game_constants.EventGetDeckStats, handlers.HandleGetDeckStats(client, manager, runID))

		client.On(game_constants.EventGetHint, handlers.HandleGetHint(client, manager, runID))

		client.On(game_constants.EventRestartRun, handlers.HandleRestartRun(client, manager, runID))

		// NOTE: will remove sio connection from map
		client.On("disconnecting", handlers.HandleDisconnecting(client, runID, (*socketio_types.SocketServer)(sio)))
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	stdlog.Println("Socket server started")
}

// corsOrigin gives engine.io a single origin as a string and several as a list.
func corsOrigin(origins []string) any {
	if len(origins) == 1 {
		return origins[0]
	}
	list := make([]any, len(origins))
	for i, o := range origins {
		list[i] = o
	}
	return list
}

// Close stops the socket.io server.
func (sio *MySocketServer) Close() {
	if sio.Sio_server != nil {
		sio.Sio_server.Close(nil)
	}
}
