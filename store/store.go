package store

import (
	"context"
	"sync"
	"time"

	"github.com/lithammer/shortuuid/v4"

	"github.com/rahulnsecc/agenthub/internal/strutil"
	"github.com/rahulnsecc/agenthub/internal/profile"
)

// Store provides database access to turn records.
//
// Appends are serialized with a mutex so concurrent sessions can share one
// Store without corrupting each other; reads only ever consult the most
// recent record, so stale concurrent reads are tolerated.
type Store struct {
	profile *profile.Profile
	driver  Driver

	appendMu sync.Mutex
}

// New creates a new instance of Store.
func New(driver Driver, profile *profile.Profile) *Store {
	return &Store{
		driver:  driver,
		profile: profile,
	}
}

func (s *Store) GetDriver() Driver {
	return s.driver
}

func (s *Store) Close() error {
	return s.driver.Close()
}

func (s *Store) Migrate(ctx context.Context) error {
	return s.driver.Migrate(ctx)
}

// AppendTurnRecord persists one completed turn. The wire-contract bounds
// (user input <= 500 runes, response <= 10000 runes) are enforced here:
// oversized values are clipped, never rejected. Missing ID and timestamp
// are filled in.
func (s *Store) AppendTurnRecord(ctx context.Context, create *TurnRecord) (*TurnRecord, error) {
	rec := &TurnRecord{
		ID:        create.ID,
		UserInput: strutil.Clip(create.UserInput, MaxUserInputLen),
		Role:      create.Role,
		Response:  strutil.Clip(create.Response, MaxResponseLen),
		CreatedTs: create.CreatedTs,
	}
	if rec.ID == "" {
		rec.ID = shortuuid.New()
	}
	if rec.CreatedTs == 0 {
		rec.CreatedTs = time.Now().Unix()
	}

	s.appendMu.Lock()
	defer s.appendMu.Unlock()
	return s.driver.CreateTurnRecord(ctx, rec)
}

// MostRecentTurnRecord returns the newest record, or nil when the store is empty.
func (s *Store) MostRecentTurnRecord(ctx context.Context) (*TurnRecord, error) {
	return s.driver.GetMostRecentTurnRecord(ctx)
}

func (s *Store) ListTurnRecords(ctx context.Context, find *FindTurnRecord) ([]*TurnRecord, error) {
	return s.driver.ListTurnRecords(ctx, find)
}

func (s *Store) DeleteAllTurnRecords(ctx context.Context) error {
	return s.driver.DeleteAllTurnRecords(ctx)
}
