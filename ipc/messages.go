package ipc

import "github.com/nstehr/vimy/vimy-guard/model"

// These constants must stay in sync with the message types in the game mod.
const (
	TypeHello  = "hello"
	TypeAck    = "ack"
	TypeTick   = "tick"
	TypeOrders = "orders"
)

type HelloMessage struct {
	Player string `json:"player"`
	Shard  string `json:"shard,omitempty"`
}

type AckMessage struct {
	Status  string `json:"status"`
	Session string `json:"session,omitempty"`
}

// TickMessage carries the full snapshot for one tick.
type TickMessage = model.TickState

// OrdersMessage answers a tick with everything the mod should execute.
type OrdersMessage struct {
	Tick      int              `json:"tick"`
	Locations []LocationOrders `json:"locations"`
}
