package sqlite

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/rahulnsecc/agenthub/store"
)

func (d *DB) CreateTurnRecord(ctx context.Context, create *store.TurnRecord) (*store.TurnRecord, error) {
	stmt := `
		INSERT INTO turn_record (id, user_input, role, response, created_ts)
		VALUES (?, ?, ?, ?, ?)
	`
	if _, err := d.db.ExecContext(ctx, stmt,
		create.ID,
		create.UserInput,
		create.Role,
		create.Response,
		create.CreatedTs,
	); err != nil {
		return nil, errors.Wrap(err, "failed to create turn record")
	}
	return create, nil
}

func (d *DB) GetMostRecentTurnRecord(ctx context.Context) (*store.TurnRecord, error) {
	stmt := `
		SELECT id, user_input, role, response, created_ts
		FROM turn_record
		ORDER BY created_ts DESC, id DESC
		LIMIT 1
	`
	rec := &store.TurnRecord{}
	err := d.db.QueryRowContext(ctx, stmt).Scan(
		&rec.ID,
		&rec.UserInput,
		&rec.Role,
		&rec.Response,
		&rec.CreatedTs,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to get most recent turn record")
	}
	return rec, nil
}

func (d *DB) ListTurnRecords(ctx context.Context, find *store.FindTurnRecord) ([]*store.TurnRecord, error) {
	stmt := `
		SELECT id, user_input, role, response, created_ts
		FROM turn_record
		ORDER BY created_ts DESC, id DESC
	`
	args := []any{}
	if find != nil && find.Limit > 0 {
		stmt += " LIMIT ?"
		args = append(args, find.Limit)
	}

	rows, err := d.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list turn records")
	}
	defer rows.Close()

	records := []*store.TurnRecord{}
	for rows.Next() {
		rec := &store.TurnRecord{}
		if err := rows.Scan(
			&rec.ID,
			&rec.UserInput,
			&rec.Role,
			&rec.Response,
			&rec.CreatedTs,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan turn record")
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "rows iteration error")
	}
	return records, nil
}

func (d *DB) DeleteAllTurnRecords(ctx context.Context) error {
	if _, err := d.db.ExecContext(ctx, "DELETE FROM turn_record"); err != nil {
		return errors.Wrap(err, "failed to delete turn records")
	}
	return nil
}
