package store

// Wire-contract bounds for persisted turn records. Values longer than these
// are clipped at the store boundary, never rejected.
const (
	MaxUserInputLen = 500
	MaxResponseLen  = 10000
)

// TurnRecord is one completed user-message/response cycle. Records are
// append-only: once written they are never mutated, and they are read back
// only to seed in-memory session state after a restart.
type TurnRecord struct {
	ID        string
	UserInput string
	Role      string
	Response  string
	CreatedTs int64
}

// FindTurnRecord is the query shape for listing turn records.
type FindTurnRecord struct {
	// Limit bounds the number of records returned, newest first. 0 means no limit.
	Limit int
}
