package nats

import "time"

// TableEvent is published on the table's event subject for every resolution event.
type TableEvent struct {
	ID      string    `json:"id"`
	Seq     uint64    `json:"seq"`
	Time    time.Time `json:"time"`
	Table   string    `json:"table"`
	Message string    `json:"message"`
}

type BetReply struct {
	OK      bool   `json:"ok"`
	Error   string `json:"error,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Balance int64  `json:"balance"`
}
