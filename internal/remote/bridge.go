package remote

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"github.com/kwsdr/gridmenu/internal/logging"
)

// Event is one decoded input event.
type Event string

// The four-event input vocabulary of the menu engine.
const (
	EventUp     Event = "up"
	EventDown   Event = "down"
	EventAccept Event = "accept"
	EventCancel Event = "cancel"
)

// ParseEvent maps a wire string onto an Event.
func ParseEvent(s string) (Event, error) {
	switch Event(s) {
	case EventUp, EventDown, EventAccept, EventCancel:
		return Event(s), nil
	default:
		return "", fmt.Errorf("unknown input event %q", s)
	}
}

// ServiceType is the mDNS service type the bridge advertises.
const ServiceType = "_gridmenu._tcp"

// ServiceDomain is the mDNS domain (typically "local.").
const ServiceDomain = "local."

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Maximum message size allowed from peer
	maxMessageSize = 512
)

// inputMessage is the wire format for one event.
type inputMessage struct {
	Event string `json:"event"`
}

// ackMessage is sent back after every received message.
type ackMessage struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Sink receives decoded events. It is called from the WebSocket connection's
// goroutine and must hand the event over to the menu's execution context
// itself.
type Sink func(Event)

// Bridge is the WebSocket input endpoint plus its mDNS advertisement.
type Bridge struct {
	instance string
	addr     string
	sink     Sink

	upgrader websocket.Upgrader
	httpSrv  *http.Server
	mdns     *zeroconf.Server
}

// NewBridge creates a bridge listening on addr (host:port) that forwards
// events to sink. instance names the advertised mDNS service.
func NewBridge(instance, addr string, sink Sink) *Bridge {
	b := &Bridge{
		instance: instance,
		addr:     addr,
		sink:     sink,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  256,
			WriteBufferSize: 256,
			// Button boards have no origin to speak of.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/input", b.handleInput)
	b.httpSrv = &http.Server{Addr: addr, Handler: mux}
	return b
}

// Handler exposes the HTTP handler, mainly for tests.
func (b *Bridge) Handler() http.Handler { return b.httpSrv.Handler }

// Start listens on the configured address and registers the mDNS service.
// It returns once the listener is up; serving happens in the background.
func (b *Bridge) Start() error {
	ln, err := net.Listen("tcp", b.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", b.addr, err)
	}

	_, portStr, err := net.SplitHostPort(ln.Addr().String())
	if err != nil {
		ln.Close()
		return fmt.Errorf("failed to determine bridge port: %w", err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		ln.Close()
		return fmt.Errorf("failed to parse bridge port: %w", err)
	}

	mdns, err := zeroconf.Register(b.instance, ServiceType, ServiceDomain, port, []string{"path=/input"}, nil)
	if err != nil {
		// Discovery is a convenience; the bridge still works by address.
		logging.Warn("mDNS registration failed, bridge reachable by address only",
			zap.String("instance", b.instance),
			zap.Error(err),
		)
	} else {
		b.mdns = mdns
		logging.Info("mDNS service registered",
			zap.String("instance", b.instance),
			zap.String("service", ServiceType),
			zap.Int("port", port),
		)
	}

	go func() {
		if err := b.httpSrv.Serve(ln); err != nil && err != http.ErrServerClosed {
			logging.Error("input bridge stopped", zap.Error(err))
		}
	}()

	logging.Info("input bridge listening", zap.String("addr", ln.Addr().String()))
	return nil
}

// Stop unregisters the mDNS service and shuts the HTTP server down.
func (b *Bridge) Stop(ctx context.Context) error {
	if b.mdns != nil {
		b.mdns.Shutdown()
		b.mdns = nil
	}
	return b.httpSrv.Shutdown(ctx)
}

// handleInput upgrades the connection and pumps events to the sink until the
// peer disconnects.
func (b *Bridge) handleInput(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn("WebSocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}
	remoteAddr := conn.RemoteAddr().String()
	logging.LogConnection(remoteAddr, "websocket_upgraded")

	defer func() {
		_ = conn.Close()
		logging.LogConnection(remoteAddr, "websocket_closed")
	}()

	conn.SetReadLimit(maxMessageSize)

	for {
		var msg inputMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logging.Warn("connection closed unexpectedly",
					zap.String("remote_addr", remoteAddr),
					zap.Error(err),
				)
			}
			return
		}

		event, err := ParseEvent(msg.Event)
		ack := ackMessage{OK: err == nil}
		if err != nil {
			ack.Error = err.Error()
			logging.Warn("rejected input message",
				zap.String("remote_addr", remoteAddr),
				zap.String("event", msg.Event),
			)
		} else {
			logging.LogInputEvent(remoteAddr, string(event))
			b.sink(event)
		}

		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(ack); err != nil {
			return
		}
	}
}
