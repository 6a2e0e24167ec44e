package ipc

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/coder/websocket"
)

// ServeFunc takes ownership of an accepted connection.
type ServeFunc func(ctx context.Context, conn net.Conn)

// WebSocketHandler accepts game mods that cannot open a unix socket. Each
// binary message carries exactly one length-prefixed frame, so the stream is
// handed to serve as a plain net.Conn.
type WebSocketHandler struct {
	ctx   context.Context
	serve ServeFunc
	opts  *websocket.AcceptOptions
}

// NewWebSocketHandler binds accepted sockets to ctx rather than the request
// context so shutdown closes them.
func NewWebSocketHandler(ctx context.Context, serve ServeFunc) *WebSocketHandler {
	return &WebSocketHandler{
		ctx:   ctx,
		serve: serve,
		opts: &websocket.AcceptOptions{
			// The mod connects from a local game client with no Origin.
			InsecureSkipVerify: true,
		},
	}
}

func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, h.opts)
	if err != nil {
		slog.Error("failed to accept websocket", "remote", r.RemoteAddr, "error", err)
		return
	}
	c.SetReadLimit(MaxFrameSize + 4)

	slog.Info("websocket connection accepted", "remote", r.RemoteAddr)
	h.serve(h.ctx, websocket.NetConn(h.ctx, c, websocket.MessageBinary))
}
