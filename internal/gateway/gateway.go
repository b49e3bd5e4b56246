package gateway

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"pokertab/holdem"
	"pokertab/internal/auth"
	"pokertab/internal/codec"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true // TODO: Restrict in production
	},
}

// Connection is one WebSocket client bound to a resolved player identity.
type Connection struct {
	PlayerID string
	Name     string
	Conn     *websocket.Conn
	Send     chan []byte
	Gateway  *Gateway

	// Table the connection last joined; disconnects translate into a leave
	// on this table. Written only by the connection's own readPump.
	TableID string
}

// Gateway owns WebSocket connections and dispatches client events into the
// table registry. Broadcast delivery of snapshots happens here; game rules
// stay in the engine.
type Gateway struct {
	mu       sync.RWMutex
	conns    map[string]*Connection // playerID -> connection
	registry *holdem.Registry
	auth     auth.Service
}

func New(registry *holdem.Registry, authService auth.Service) *Gateway {
	g := &Gateway{
		conns:    make(map[string]*Connection),
		registry: registry,
		auth:     authService,
	}
	// Engine-initiated transitions (delayed hand restarts) surface here.
	registry.SetNotify(func(tableID string, snap holdem.Snapshot) {
		g.broadcastSnapshot(snap)
	})
	return g
}

// HandleWebSocket upgrades the connection after resolving the credential
// token. An invalid token fails the attempt before any upgrade.
func (g *Gateway) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	identity, err := g.auth.Resolve(token)
	if err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Gateway] upgrade error: %v", err)
		return
	}

	c := &Connection{
		PlayerID: identity.PlayerID,
		Name:     identity.DisplayName,
		Conn:     conn,
		Send:     make(chan []byte, 256),
		Gateway:  g,
	}

	g.mu.Lock()
	prev := g.conns[c.PlayerID]
	g.conns[c.PlayerID] = c
	total := len(g.conns)
	g.mu.Unlock()

	if prev != nil {
		// Reconnect: closing the old socket unwinds its pumps. The Send
		// channel is never closed, so an in-flight broadcast can at worst
		// queue onto a dying connection; dropConnection sees the
		// registration already replaced and leaves the table seat alone.
		prev.Conn.Close()
	}

	log.Printf("[Gateway] player %s connected, total: %d", c.PlayerID, total)

	go c.readPump()
	go c.writePump()
}

func (c *Connection) readPump() {
	defer func() {
		c.Gateway.dropConnection(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(65536)
	c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[Gateway] read error: %v", err)
			}
			return
		}
		c.handleMessage(message)
	}
}

func (c *Connection) handleMessage(data []byte) {
	var env codec.ClientEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		c.sendError("bad_envelope", "invalid message format")
		return
	}

	switch env.Type {
	case codec.MsgJoinTable:
		c.handleJoin(env.TableID)
	case codec.MsgLeaveTable:
		c.handleLeave(env.TableID)
	case codec.MsgPlayerAction:
		c.handleAction(env)
	default:
		c.sendError("bad_envelope", "unknown message type: "+env.Type)
	}
}

func (c *Connection) handleJoin(tableID string) {
	if tableID == "" {
		c.sendError("bad_envelope", "missing tableId")
		return
	}
	t := c.Gateway.registry.GetOrCreate(tableID)
	snap, err := t.Join(c.PlayerID, c.Name)
	if err != nil {
		c.sendError(codec.ErrorCode(err), err.Error())
		return
	}
	c.TableID = tableID
	c.Gateway.broadcastSnapshot(snap)
}

func (c *Connection) handleLeave(tableID string) {
	t := c.Gateway.registry.Get(tableID)
	if t == nil {
		return // stale event, tolerate
	}
	snap := t.Leave(c.PlayerID)
	if c.TableID == tableID {
		c.TableID = ""
	}
	c.Gateway.broadcastSnapshot(snap)
}

func (c *Connection) handleAction(env codec.ClientEnvelope) {
	t := c.Gateway.registry.Get(env.TableID)
	if t == nil {
		return // stale event, tolerate
	}

	actionType, err := holdem.ParseActionType(env.Action)
	if err != nil {
		c.sendError(codec.ErrorCode(err), "unknown action: "+env.Action)
		return
	}
	action := holdem.Action{Type: actionType}
	if env.Amount != nil {
		action.Amount = *env.Amount
		action.HasAmount = true
	}

	snap, err := t.Act(c.PlayerID, action)
	if err != nil {
		c.sendError(codec.ErrorCode(err), err.Error())
		return
	}
	c.Gateway.broadcastSnapshot(snap)
}

// dropConnection removes the connection and reconciles the table the player
// was seated at: a vanished connection is treated as a leave.
func (g *Gateway) dropConnection(c *Connection) {
	g.mu.Lock()
	current := g.conns[c.PlayerID]
	if current == c {
		delete(g.conns, c.PlayerID)
	}
	g.mu.Unlock()

	if current != c {
		return // already replaced by a reconnect
	}
	log.Printf("[Gateway] player %s disconnected", c.PlayerID)

	if c.TableID == "" {
		return
	}
	if t := g.registry.Get(c.TableID); t != nil {
		snap := t.Leave(c.PlayerID)
		g.broadcastSnapshot(snap)
	}
}

// broadcastSnapshot sends the table state to every seated player, with each
// viewer seeing only their own hole cards.
func (g *Gateway) broadcastSnapshot(snap holdem.Snapshot) {
	for _, p := range snap.Players {
		g.mu.RLock()
		c := g.conns[p.ID]
		g.mu.RUnlock()
		if c == nil {
			continue
		}

		env := codec.ServerEnvelope{
			Type:  codec.MsgTableState,
			Table: codec.TableStateFor(p.ID, snap),
		}
		data, err := json.Marshal(env)
		if err != nil {
			log.Printf("[Gateway] marshal snapshot failed: %v", err)
			continue
		}
		select {
		case c.Send <- data:
		default:
			// Drop if buffer full
		}
	}
}

func (c *Connection) sendError(code, msg string) {
	env := codec.ServerEnvelope{
		Type:  codec.MsgError,
		Error: &codec.ErrorBody{Code: code, Message: msg},
	}
	data, err := json.Marshal(env)
	if err != nil {
		return
	}
	select {
	case c.Send <- data:
	default:
	}
}

func (c *Connection) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
