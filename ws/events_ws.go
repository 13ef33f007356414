package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/harisharnamm/rasoi-v1-sub000/state"
)

// EventHub fans committed state mutations out to WebSocket subscribers.
// A client subscribes to one slice ("inventory", "tables", ...) or to
// "all".
type EventHub struct {
	clients    map[string]map[*websocket.Conn]bool // slice -> set of clients
	broadcast  chan state.Event
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

type subscription struct {
	Conn  *websocket.Conn
	Slice string
}

func NewEventHub() *EventHub {
	return &EventHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan state.Event, 64),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

// Publish implements state.Publisher. Non-blocking: a full buffer drops
// the event rather than stalling a mutation.
func (h *EventHub) Publish(e state.Event) {
	select {
	case h.broadcast <- e:
	default:
	}
}

func (h *EventHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.Slice] == nil {
				h.clients[sub.Slice] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.Slice][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.Slice][sub.Conn]; ok {
				delete(h.clients[sub.Slice], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case e := <-h.broadcast:
			h.mu.Lock()
			for _, slice := range []string{e.Slice, "all"} {
				for conn := range h.clients[slice] {
					if err := conn.WriteJSON(e); err != nil {
						log.Printf("ws write error: %v", err)
						conn.Close()
						delete(h.clients[slice], conn)
					}
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/state/:slice
func (h *EventHub) HandleWebSocket(c *gin.Context) {
	slice := c.Param("slice")
	if slice == "" {
		slice = "all"
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}

	sub := subscription{Conn: conn, Slice: slice}
	h.register <- sub

	// Reader loop only notices disconnects; the feed is one-way.
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
