package ipc

import (
	"context"
	"net"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
)

func TestWebSocketHandlerServesFrames(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	h := NewWebSocketHandler(ctx, func(ctx context.Context, conn net.Conn) {
		c := NewConnection(conn)
		c.Handle(TypeHello, func(env Envelope) (*Envelope, error) {
			ack, err := NewEnvelope(TypeAck, AckMessage{Status: "ok"})
			return &ack, err
		})
		c.ReadLoop(ctx)
	})
	srv := httptest.NewServer(h)
	defer srv.Close()

	ws, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer ws.CloseNow()
	conn := websocket.NetConn(ctx, ws, websocket.MessageBinary)

	env, _ := NewEnvelope(TypeHello, HelloMessage{Player: "bob"})
	if err := WriteEnvelope(conn, env); err != nil {
		t.Fatalf("WriteEnvelope: %v", err)
	}
	resp, err := ReadEnvelope(conn)
	if err != nil {
		t.Fatalf("ReadEnvelope: %v", err)
	}
	if resp.Type != TypeAck {
		t.Errorf("Type = %q, want ack", resp.Type)
	}
}
