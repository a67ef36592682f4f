package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Gunal77/web-hackathon/api"
	"github.com/Gunal77/web-hackathon/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const (
	// eventWriteWait bounds a single write to a dashboard
	eventWriteWait = 10 * time.Second
	// eventQueueSize is how many events a dashboard may lag behind before it
	// is dropped
	eventQueueSize = 32
)

// eventClient is one dashboard connection with its outgoing queue. Only the
// hub closes send, after removing the client from its map.
type eventClient struct {
	id   string
	conn *websocket.Conn
	send chan models.ManuEvent
}

// EventHub keeps the connected dashboards (client id -> eventClient) and
// pushes manu store events to all of them
type EventHub struct {
	clients map[string]*eventClient
	mutex   sync.Mutex
	metrics *api.Metrics
}

// NewEventHub creates an empty hub. metrics may be nil.
func NewEventHub(metrics *api.Metrics) *EventHub {
	return &EventHub{
		clients: make(map[string]*eventClient),
		metrics: metrics,
	}
}

// Clients returns the number of connected dashboards
func (h *EventHub) Clients() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// HandleEventsWebSocket upgrades the request and keeps the connection
// registered until the client goes away
func (h *EventHub) HandleEventsWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Warnw("websocket upgrade failed", "error", err)
		return
	}

	clientID := r.URL.Query().Get("clientId")
	if clientID == "" {
		clientID = uuid.NewString()
	}
	c := &eventClient{id: clientID, conn: conn, send: make(chan models.ManuEvent, eventQueueSize)}
	h.register(c)
	go h.writeLoop(c)
	zap.S().Infow("dashboard connected to /ws/manus", "clientId", clientID)

	for {
		if _, _, err := conn.NextReader(); err != nil {
			break
		}
	}
	h.unregister(c)
	zap.S().Infow("dashboard disconnected from /ws/manus", "clientId", clientID)
}

// writeLoop is the only writer of c.conn
func (h *EventHub) writeLoop(c *eventClient) {
	for event := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(eventWriteWait))
		if err := c.conn.WriteJSON(event); err != nil {
			zap.S().Warnw("failed to push manu event", "clientId", c.id, "event", event.Event, "error", err)
			h.unregister(c)
			return
		}
	}
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	c.conn.Close()
}

func (h *EventHub) register(c *eventClient) {
	h.mutex.Lock()
	if old, ok := h.clients[c.id]; ok {
		h.drop(old)
	}
	h.clients[c.id] = c
	h.setGauge()
	h.mutex.Unlock()
}

// unregister only removes c if it still owns its id, so a reconnect under
// the same id is not dropped by the old connection's exit.
func (h *EventHub) unregister(c *eventClient) {
	h.mutex.Lock()
	if cur, ok := h.clients[c.id]; ok && cur == c {
		h.drop(c)
		h.setGauge()
	}
	h.mutex.Unlock()
	c.conn.Close()
}

// drop must be called with the mutex held and c still in the map
func (h *EventHub) drop(c *eventClient) {
	delete(h.clients, c.id)
	close(c.send)
}

// setGauge must be called with the mutex held
func (h *EventHub) setGauge() {
	if h.metrics != nil {
		h.metrics.WebsocketClients.Set(float64(len(h.clients)))
	}
}

// Notify queues a store event for every connected dashboard and never waits
// on the network. A dashboard whose queue is full is dropped.
func (h *EventHub) Notify(event models.ManuEvent) {
	if h.metrics != nil {
		h.metrics.ManuEvents.WithLabelValues(event.Event).Inc()
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	if len(h.clients) == 0 {
		zap.S().Debugw("no dashboards connected", "event", event.Event, "manuId", event.Manu.ID)
		return
	}
	dropped := false
	for id, c := range h.clients {
		select {
		case c.send <- event:
		default:
			zap.S().Warnw("dashboard too slow, dropping it", "clientId", id, "event", event.Event)
			h.drop(c)
			c.conn.Close()
			dropped = true
		}
	}
	if dropped {
		h.setGauge()
	}
}
