package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Hub fans match events out to websocket subscribers, grouped by match ID.
type Hub struct {
	mu      sync.RWMutex
	matches map[string]map[*websocket.Conn]struct{}
	manager MatchManager
}

func NewHub() *Hub {
	return &Hub{
		matches: make(map[string]map[*websocket.Conn]struct{}),
	}
}

// SetManager wires the hub to the manager that serves client actions. The
// manager in turn broadcasts through the hub, so one of them is set late.
func (h *Hub) SetManager(m MatchManager) {
	h.manager = m
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (h *Hub) HandleWS(c *gin.Context) {
	matchID := c.Query("matchId")
	if matchID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing matchId"})
		return
	}
	if h.manager != nil {
		if _, ok := h.manager.Get(matchID); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "match not found"})
			return
		}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Str("match", matchID).Msg("websocket upgrade failed")
		return
	}
	log.Info().Str("match", matchID).Msg("websocket subscribed")

	h.mu.Lock()
	if _, ok := h.matches[matchID]; !ok {
		h.matches[matchID] = make(map[*websocket.Conn]struct{})
	}
	h.matches[matchID][conn] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.matches[matchID], conn)
		if len(h.matches[matchID]) == 0 {
			delete(h.matches, matchID)
		}
		h.mu.Unlock()
		_ = conn.Close()
	}()

	for {
		var msg struct {
			Action string          `json:"action"`
			Data   json.RawMessage `json:"data"`
		}
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug().Err(err).Str("match", matchID).Msg("websocket read ended")
			}
			break
		}

		switch msg.Action {
		case "human_move":
			h.handleHumanMove(matchID, msg.Data)
		case "bot_move":
			h.handleBotMove(matchID)
		default:
			log.Warn().Str("match", matchID).Str("action", msg.Action).Msg("unknown websocket action")
		}
	}
}

// Broadcast sends {action, data} to every subscriber of matchID, dropping
// connections that fail to accept the write.
func (h *Hub) Broadcast(matchID string, action string, data interface{}) {
	if h == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.matches[matchID]
	if !ok {
		return
	}
	message := gin.H{
		"action": action,
		"data":   data,
	}
	for conn := range clients {
		if err := conn.WriteJSON(message); err != nil {
			log.Warn().Err(err).Str("match", matchID).Msg("dropping websocket subscriber")
			_ = conn.Close()
			delete(clients, conn)
		}
	}
}

// Subscribers reports how many connections follow matchID.
func (h *Hub) Subscribers(matchID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.matches[matchID])
}

func (h *Hub) handleHumanMove(matchID string, data json.RawMessage) {
	if h.manager == nil {
		return
	}
	var msg MoveMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		log.Warn().Err(err).Str("match", matchID).Msg("invalid move payload")
		return
	}
	mt, ok := h.manager.Get(matchID)
	if !ok {
		return
	}
	mv, err := msg.Move()
	if err == nil {
		err = h.manager.ApplyMove(mt, mv)
	}
	if err != nil {
		h.Broadcast(matchID, "move-rejected", gin.H{"error": err.Error()})
	}
}

func (h *Hub) handleBotMove(matchID string) {
	if h.manager == nil {
		return
	}
	mt, ok := h.manager.Get(matchID)
	if !ok {
		return
	}
	if _, err := h.manager.BotMove(mt); err != nil {
		h.Broadcast(matchID, "move-rejected", gin.H{"error": err.Error()})
	}
}
