package models

import "time"

// Direction направление записанного фрейма
type Direction string

const (
	DirectionInbound  Direction = "in"
	DirectionOutbound Direction = "out"
)

// JournalRun is one recorded client session against a page
type JournalRun struct {
	StartedAt time.Time
	ID        string
	URL       string
	Page      string // server-rendered HTML the run started from
	NodeID    string
}

// JournalFrame is one recorded frame of a run
type JournalFrame struct {
	CreatedAt time.Time
	RunID     string
	Direction Direction
	Payload   []byte
	ID        int64
	Binary    bool
}
