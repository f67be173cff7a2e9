package socketio_types

import (
	game_constants "HighStakes/constants/game"
	"sync"

	"github.com/zishang520/socket.io/v2/socket"
)

// Conn is what the server needs from a client connection. *socket.Socket
// implements it.
type Conn interface {
	Id() socket.SocketId
	Emit(ev string, args ...any) error
	Disconnect(status bool) *socket.Socket
}

// SocketServer is a struct that contains the socket.io server and the live
// connections of every run. A run may be open in several clients at once;
// all of them sit in the socket.io room named after the run id.
type SocketServer struct {
	Sio_server *socket.Server
	// run id -> socket id -> connection
	RunConnections map[string]map[socket.SocketId]Conn
	mutex          sync.RWMutex
}

func (s *SocketServer) AddConnection(runID string, client Conn) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.RunConnections == nil {
		s.RunConnections = make(map[string]map[socket.SocketId]Conn)
	}
	if s.RunConnections[runID] == nil {
		s.RunConnections[runID] = make(map[socket.SocketId]Conn)
	}
	s.RunConnections[runID][client.Id()] = client
}

func (s *SocketServer) RemoveConnection(runID string, id socket.SocketId) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.RunConnections[runID], id)
	if len(s.RunConnections[runID]) == 0 {
		delete(s.RunConnections, runID)
	}
}

// Connections returns how many clients are following the run.
func (s *SocketServer) Connections(runID string) int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.RunConnections[runID])
}

// DisconnectRun closes every connection of a run that just ended.
func (s *SocketServer) DisconnectRun(runID string) {
	s.mutex.Lock()
	clients := s.RunConnections[runID]
	delete(s.RunConnections, runID)
	s.mutex.Unlock()

	for _, client := range clients {
		client.Emit(game_constants.EventRunEnded, map[string]interface{}{"run_id": runID})
		client.Disconnect(true)
	}
}
