package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/temanbulus/nfa-cli/internal/domain"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxClientFrame = 512
	shutdownWait   = 5 * time.Second
)

// Hub streams bus events to websocket clients as JSON, one event per frame.
type Hub struct {
	bus      *Bus
	upgrader websocket.Upgrader
	logger   *zap.Logger

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
	total atomic.Int64
}

func NewHub(bus *Bus, logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Hub{
		bus: bus,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     sameHostOrigin,
		},
		logger: logger,
		conns:  map[*websocket.Conn]struct{}{},
	}
}

func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/events", h.handleEvents)
	mux.HandleFunc("/health", h.handleHealth)
	return mux
}

// Serve runs the hub on listener until ctx is cancelled, then closes every
// client connection.
func (h *Hub) Serve(ctx context.Context, listener net.Listener) error {
	server := &http.Server{
		Handler:           h.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(listener)
	}()
	h.logger.Info("event stream listening", zap.String("addr", listener.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve event stream: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownWait)
	defer cancel()
	h.closeAll()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown event stream: %w", err)
	}
	<-errCh

	h.logger.Info("event stream stopped")
	return nil
}

func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

func (h *Hub) handleEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	events, unsubscribe := h.bus.Subscribe(DefaultSubscriberBuffer)
	h.track(conn)
	h.logger.Debug("event client connected", zap.String("remote", conn.RemoteAddr().String()))

	done := make(chan struct{})
	go h.readPump(conn, done)
	h.writePump(conn, events, done)

	unsubscribe()
	h.untrack(conn)
	_ = conn.Close()
	h.logger.Debug("event client disconnected", zap.String("remote", conn.RemoteAddr().String()))
}

// readPump only exists to process control frames and notice a closed peer.
func (h *Hub) readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(maxClientFrame)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(conn *websocket.Conn, events <-chan domain.Event, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-events:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func (h *Hub) handleHealth(w http.ResponseWriter, _ *http.Request) {
	status := map[string]interface{}{
		"status":           "UP",
		"connections":      h.Clients(),
		"connectionsTotal": h.total.Load(),
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(status)
}

func (h *Hub) track(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = struct{}{}
	h.total.Add(1)
}

func (h *Hub) untrack(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		_ = conn.Close()
	}
}

// sameHostOrigin accepts non-browser clients and pages served from the
// hub's own host.
func sameHostOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	parsed, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return parsed.Host == r.Host
}
