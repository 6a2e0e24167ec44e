package ipc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
)

// Handler answers one envelope. A nil reply sends nothing back.
type Handler func(env Envelope) (*Envelope, error)

// Connection is one game mod session. Messages are handled strictly in
// arrival order, so a player's ticks never overlap.
type Connection struct {
	conn     net.Conn
	handlers map[string]Handler
	writeMu  sync.Mutex
	Player   string
}

func NewConnection(conn net.Conn) *Connection {
	return &Connection{conn: conn, handlers: make(map[string]Handler)}
}

// Handle routes msgType to h. The sidecar registers hello and tick.
func (c *Connection) Handle(msgType string, h Handler) {
	c.handlers[msgType] = h
}

func (c *Connection) Send(msgType string, data any) error {
	env, err := NewEnvelope(msgType, data)
	if err != nil {
		return err
	}
	return c.write(env)
}

func (c *Connection) write(env Envelope) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return WriteEnvelope(c.conn, env)
}

// ReadLoop serves the session until the peer hangs up, a reply can't be
// written, or ctx is cancelled. It closes the conn on return.
func (c *Connection) ReadLoop(ctx context.Context) {
	defer c.conn.Close()
	stop := context.AfterFunc(ctx, func() { c.conn.Close() })
	defer stop()

	for {
		env, err := ReadEnvelope(c.conn)
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				slog.Info("session closed", "player", c.Player)
			} else {
				slog.Warn("session read failed", "player", c.Player, "error", err)
			}
			return
		}
		if err := c.dispatch(env); err != nil {
			slog.Error("session reply failed", "player", c.Player, "error", err)
			return
		}
	}
}

// dispatch runs the handler for env and writes its reply. Unknown types and
// rejected messages are logged and skipped; only a failed write is fatal.
func (c *Connection) dispatch(env Envelope) error {
	h, ok := c.handlers[env.Type]
	if !ok {
		slog.Warn("unhandled message", "type", env.Type, "player", c.Player)
		return nil
	}

	reply, err := h(env)
	if err != nil {
		slog.Error("message rejected", "type", env.Type, "player", c.Player, "error", err)
		return nil
	}
	if reply == nil {
		return nil
	}
	if err := c.write(*reply); err != nil {
		return fmt.Errorf("reply %s: %w", reply.Type, err)
	}
	slog.Debug("replied", "request", env.Type, "reply", reply.Type, "player", c.Player)
	return nil
}
