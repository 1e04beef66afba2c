/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Seednode/wordshadow/games/shadow"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog"
	"github.com/skip2/go-qrcode"
	"golang.org/x/time/rate"
)

const (
	maxMessageSize = 4096
	sendBuffer     = 32
	qrSize         = 320
)

var errHubStopped = errors.New("hub stopped")

// envelope is a single inbound frame.
type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// outbound is a single frame queued for a client.
type outbound struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type client struct {
	id      string
	conn    *websocket.Conn
	send    chan outbound
	limiter *rate.Limiter
}

type inboundEvent struct {
	client *client
	msg    envelope
}

// Hub owns every connection and the coordinator. Only the goroutine running
// run touches clients, groups or coord.
type Hub struct {
	clients map[string]*client
	groups  map[string]map[string]*client
	coord   *shadow.Coordinator
	log     zerolog.Logger

	register chan *client
	unreg    chan *client
	inbound  chan inboundEvent
	queries  chan func()
	done     chan struct{}
}

func newHub(cfg *Config, game shadow.Config) *Hub {
	h := &Hub{
		clients:  make(map[string]*client),
		groups:   make(map[string]map[string]*client),
		log:      cfg.log.With().Str("component", "hub").Logger(),
		register: make(chan *client),
		unreg:    make(chan *client),
		inbound:  make(chan inboundEvent),
		queries:  make(chan func()),
		done:     make(chan struct{}),
	}

	h.coord = shadow.NewCoordinator(h, game)

	return h
}

func (h *Hub) run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for id, c := range h.clients {
				delete(h.clients, id)
				close(c.send)
			}
			h.log.Info().Int("rooms", h.coord.RoomCount()).Msg("hub stopped")
			return

		case c := <-h.register:
			h.clients[c.id] = c
			h.log.Debug().Str("player", c.id).Int("connections", len(h.clients)).Msg("client connected")

		case c := <-h.unreg:
			if _, ok := h.clients[c.id]; ok {
				delete(h.clients, c.id)
				close(c.send)
			}
			if err := h.coord.Disconnect(c.id); err != nil && !errors.Is(err, shadow.ErrUnknownParticipant) {
				h.log.Error().Err(err).Str("player", c.id).Msg("disconnect failed")
			}
			h.log.Debug().Str("player", c.id).Int("connections", len(h.clients)).
				Int("rooms", h.coord.RoomCount()).Msg("client disconnected")

		case in := <-h.inbound:
			if err := h.coord.Dispatch(in.client.id, in.msg.Event, in.msg.Data); err != nil {
				h.log.Debug().Err(err).Str("player", in.client.id).Str("event", in.msg.Event).Msg("event rejected")
			}

		case q := <-h.queries:
			q()
		}
	}
}

// query runs fn on the hub goroutine and waits for it to finish.
func (h *Hub) query(ctx context.Context, fn func(*shadow.Coordinator)) error {
	finished := make(chan struct{})

	select {
	case h.queries <- func() { fn(h.coord); close(finished) }:
	case <-h.done:
		return errHubStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	<-finished

	return nil
}

func (h *Hub) SendTo(connID, event string, payload any) {
	if c, ok := h.clients[connID]; ok {
		h.deliver(c, outbound{Event: event, Data: payload})
	}
}

func (h *Hub) SendToRoom(code, event string, payload any) {
	msg := outbound{Event: event, Data: payload}
	for id, c := range h.groups[code] {
		if _, ok := h.clients[id]; ok {
			h.deliver(c, msg)
		}
	}
}

func (h *Hub) Join(connID, code string) {
	c, ok := h.clients[connID]
	if !ok {
		return
	}
	if h.groups[code] == nil {
		h.groups[code] = make(map[string]*client)
	}
	h.groups[code][connID] = c
}

func (h *Hub) Leave(connID, code string) {
	delete(h.groups[code], connID)
	if len(h.groups[code]) == 0 {
		delete(h.groups, code)
	}
}

// deliver queues msg for c, dropping the client if its buffer is full.
// The dropped client's pumps then shut down and it is disconnected as usual.
func (h *Hub) deliver(c *client, msg outbound) {
	select {
	case c.send <- msg:
	default:
		delete(h.clients, c.id)
		close(c.send)
		h.log.Info().Str("player", c.id).Msg("dropping slow client")
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func newClient(cfg *Config, conn *websocket.Conn) *client {
	limit := rate.Inf
	if cfg.rateLimit > 0 {
		limit = rate.Limit(cfg.rateLimit)
	}

	return &client{
		id:      uuid.NewString(),
		conn:    conn,
		send:    make(chan outbound, sendBuffer),
		limiter: rate.NewLimiter(limit, cfg.rateBurst),
	}
}

func (c *client) readPump(h *Hub, idle time.Duration) {
	defer func() {
		select {
		case h.unreg <- c:
		case <-h.done:
		}
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(idle))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(idle))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		_ = c.conn.SetReadDeadline(time.Now().Add(idle))

		if !c.limiter.Allow() {
			h.log.Debug().Str("player", c.id).Msg("rate limited")
			continue
		}

		var msg envelope
		if err := json.Unmarshal(data, &msg); err != nil || msg.Event == "" {
			continue
		}

		select {
		case h.inbound <- inboundEvent{client: c, msg: msg}:
		case <-h.done:
			return
		}
	}
}

func (c *client) writePump(idle time.Duration) {
	ticker := time.NewTicker(idle * 9 / 10)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(timeout))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(timeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func serveShadowWS(cfg *Config, h *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			cfg.log.Debug().Err(err).Str("remote", realIP(r)).Msg("websocket upgrade failed")
			return
		}

		c := newClient(cfg, conn)

		select {
		case h.register <- c:
		case <-h.done:
			_ = conn.Close()
			return
		}

		cfg.log.Info().Str("player", c.id).Str("remote", realIP(r)).Msg("player connected")

		go c.writePump(cfg.playerTimeout)
		c.readPump(h, cfg.playerTimeout)
	}
}

// serveQR renders a PNG QR code linking to the home page for a live room.
func serveQR(cfg *Config, h *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		code := shadow.NormalizeCode(ps.ByName("code"))

		var exists bool
		err := h.query(r.Context(), func(coord *shadow.Coordinator) {
			_, exists = coord.Snapshot(code)
		})
		switch {
		case err != nil:
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		case !exists:
			http.Error(w, "room not found", http.StatusNotFound)
			return
		}

		scheme := cfg.scheme()
		if r.TLS != nil {
			scheme = "https"
		}
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		}

		link := scheme + "://" + r.Host + cfg.prefix + "/?room=" + code

		png, err := qrcode.Encode(link, qrcode.Medium, qrSize)
		if err != nil {
			http.Error(w, "qr generation failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-store")
		securityHeaders(cfg, w)

		_, _ = w.Write(png)
	}
}

// registerShadowGame sets up:
//   - $path/ws          → websocket for every room
//   - $path/qr/:code    → PNG QR code inviting players to a room
func registerShadowGame(cfg *Config, path string, mux *httprouter.Router, h *Hub) {
	mux.GET(cfg.prefix+path+"/ws", serveShadowWS(cfg, h))
	mux.GET(cfg.prefix+path+"/qr/:code", serveQR(cfg, h))
}
