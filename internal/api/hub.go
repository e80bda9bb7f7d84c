/*
Package api
File: hub.go
Description:
    The WebSocket Hub is the real-time push surface of the server.

    It maintains a registry of all connected clients and broadcasts typed
    JSON envelopes to every one of them. The simulation core talks to it
    through the game package's narrow interfaces: notification pulses,
    user-visible messages, floating rewards and the bare "state changed"
    render trigger all arrive here and fan out to the sockets.

    Architecture:
    - Hub: the singleton manager.
    - Client: one connected browser/webview.
    - ServeWs: the HTTP handler that upgrades a GET request to a WebSocket.
*/

package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/everforgeworks/pet-cafe-server/internal/game"
)

// Envelope is the standard JSON frame for all real-time communication.
type Envelope struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// Client represents a single connected player/webview.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte // Buffered channel of outbound messages
}

// Hub maintains the set of active clients and broadcasts envelopes.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
}

// NewHub creates a new Hub instance.
// Call once in main.go and run as a goroutine.
func NewHub() *Hub {
	return &Hub{
		// Buffered so the simulation never blocks on a slow fan-out.
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
	}
}

// Run is the main event loop for the Hub.
// It blocks, so it must be run in a goroutine: `go hub.Run()`
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			log.Println("WS: New Connection Registered")

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Client's send buffer is full; assume they hung up.
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// Send marshals an envelope onto the broadcast channel without blocking.
// If the channel is saturated the frame is dropped; push traffic here is
// advisory, clients re-read state over HTTP.
func (h *Hub) Send(env Envelope) {
	raw, err := json.Marshal(env)
	if err != nil {
		log.Printf("WS: error marshaling %s envelope: %v", env.Type, err)
		return
	}
	select {
	case h.broadcast <- raw:
	default:
		log.Printf("WS: broadcast buffer full, dropping %s envelope", env.Type)
	}
}

// Notify implements game.Notifier.
func (h *Hub) Notify(class game.NotifyClass) {
	h.Send(Envelope{Type: "notify", Payload: map[string]any{"class": class}})
}

// ShowMessage implements game.Messenger.
func (h *Hub) ShowMessage(title, text string) {
	h.Send(Envelope{Type: "message", Payload: map[string]string{"title": title, "text": text}})
}

// RequestRender implements game.Renderer.
func (h *Hub) RequestRender() {
	h.Send(Envelope{Type: "state_changed"})
}

// ShowReward implements game.RewardSink.
func (h *Hub) ShowReward(at game.Coord, text string) {
	h.Send(Envelope{Type: "reward", Payload: map[string]string{"coord": at.String(), "text": text}})
}

// upgrader configures the WebSocket handshake.
// CheckOrigin returns true to allow connections from any host.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWs upgrades the HTTP request to a persistent WebSocket connection.
func ServeWs(hub *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WS Upgrade Error:", err)
		return
	}

	client := &Client{hub: hub, conn: conn, send: make(chan []byte, 256)}
	client.hub.register <- client

	// One slow client must not block the server.
	go client.writePump()
	go client.readPump()
}

// readPump drains the websocket connection so disconnects are noticed.
// The push surface is one-way; client frames are dropped.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WS Error: %v", err)
			}
			break
		}
	}
}

// writePump pumps messages from the hub to the websocket connection.
func (c *Client) writePump() {
	defer func() {
		c.conn.Close()
	}()

	// Exits when c.send is closed by the Hub.
	for message := range c.send {
		w, err := c.conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		w.Write(message)

		if err := w.Close(); err != nil {
			return
		}
	}
}
