package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/iamasit07/connect4/engine/internal/domain"
)

const writeWait = 10 * time.Second

// ConnectionManager tracks the socket watching each game. It is the
// session Notifier: session events are written to whichever connection is
// attached to the game.
type ConnectionManager struct {
	connections map[string]*websocket.Conn

	// conn.WriteJSON is not safe for concurrent use, so every write to a
	// socket goes through its own mutex.
	writeMu map[string]*sync.Mutex

	mu sync.RWMutex
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{
		connections: make(map[string]*websocket.Conn),
		writeMu:     make(map[string]*sync.Mutex),
	}
}

// AddConnection attaches conn to a game. An older connection for the same
// game is closed.
func (cm *ConnectionManager) AddConnection(gameID string, conn *websocket.Conn) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if oldConn, exists := cm.connections[gameID]; exists && oldConn != conn {
		oldConn.Close()
	}

	cm.connections[gameID] = conn
	cm.writeMu[gameID] = &sync.Mutex{}
}

// RemoveConnectionIfMatching only detaches conn if it is still the one
// attached to the game, so a replaced socket cannot drop its successor.
func (cm *ConnectionManager) RemoveConnectionIfMatching(gameID string, conn *websocket.Conn) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if currentConn, exists := cm.connections[gameID]; exists && currentConn == conn {
		currentConn.Close()
		delete(cm.connections, gameID)
		delete(cm.writeMu, gameID)
	}
}

func (cm *ConnectionManager) lookup(gameID string) (*websocket.Conn, *sync.Mutex, bool) {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	conn, exists := cm.connections[gameID]
	mu, muExists := cm.writeMu[gameID]
	return conn, mu, exists && muExists
}

// SendMessage writes a JSON message to the game's socket. Games nobody is
// watching are skipped silently.
func (cm *ConnectionManager) SendMessage(gameID string, message domain.ServerMessage) error {
	conn, mu, ok := cm.lookup(gameID)
	if !ok {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(message)
}

// Ping sends a keep-alive to conn if it is still attached to the game.
func (cm *ConnectionManager) Ping(gameID string, conn *websocket.Conn) error {
	current, mu, ok := cm.lookup(gameID)
	if !ok || current != conn {
		return websocket.ErrCloseSent
	}

	mu.Lock()
	defer mu.Unlock()

	return conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}
