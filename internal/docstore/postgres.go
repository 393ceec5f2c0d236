package docstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
)

const schemaSQL = `
	CREATE TABLE IF NOT EXISTS documents (
		collection TEXT        NOT NULL,
		id         UUID        NOT NULL,
		doc        JSONB       NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (collection, id)
	);
	CREATE INDEX IF NOT EXISTS documents_collection_idx
		ON documents (collection, created_at);
`

// PostgresStore keeps documents in a single jsonb table, one row per
// document. Ids are assigned here, not by callers.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the documents table when missing. Safe to run on
// every boot.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	return withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, schemaSQL)
		return err
	})
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return s.db.PingContext(ctx)
	})
}

func (s *PostgresStore) List(ctx context.Context, collection string) ([]Document, error) {
	var out []Document

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, `
			SELECT id, doc
			FROM documents
			WHERE collection = $1
			ORDER BY created_at ASC, id ASC
		`, collection)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]Document, 0, 16)
		for rows.Next() {
			var d Document
			if err := rows.Scan(&d.ID, &d.Data); err != nil {
				return err
			}
			out = append(out, d)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) Insert(ctx context.Context, collection string, data []byte) (string, error) {
	id := uuid.NewString()

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO documents (collection, id, doc)
			VALUES ($1, $2, $3)
		`, collection, id, data)
		return err
	})

	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *PostgresStore) Project(ctx context.Context, collection, field string) ([]string, error) {
	var out []string

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, `
			SELECT COALESCE(doc->>$2, '')
			FROM documents
			WHERE collection = $1
			ORDER BY created_at ASC, id ASC
		`, collection, field)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]string, 0, 16)
		for rows.Next() {
			var v string
			if err := rows.Scan(&v); err != nil {
				return err
			}
			out = append(out, v)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) Collections(ctx context.Context) ([]string, error) {
	var out []string

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, `
			SELECT DISTINCT collection
			FROM documents
			ORDER BY collection ASC
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]string, 0, 4)
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				return err
			}
			out = append(out, name)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, err
	}
	return out, nil
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
