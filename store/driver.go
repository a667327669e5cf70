package store

import "context"

// Driver is an interface for database drivers.
type Driver interface {
	Close() error

	Migrate(ctx context.Context) error

	CreateTurnRecord(ctx context.Context, create *TurnRecord) (*TurnRecord, error)
	GetMostRecentTurnRecord(ctx context.Context) (*TurnRecord, error)
	ListTurnRecords(ctx context.Context, find *FindTurnRecord) ([]*TurnRecord, error)
	DeleteAllTurnRecords(ctx context.Context) error
}
