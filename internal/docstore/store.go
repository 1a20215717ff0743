// Package docstore keeps schemaless JSON documents in named collections on
// top of a single Postgres JSONB table.
//
// Filters are JSON containment: a document matches when its body contains
// every key/value pair of the filter. A nil filter matches everything.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNoDocuments = errors.New("docstore: no documents in result")
	// ErrDuplicateKey is returned when an insert violates one of the unique
	// indexes declared in db/migrations.
	ErrDuplicateKey = errors.New("docstore: duplicate key")
)

const uniqueViolation = "23505"

// Filter selects documents by containment.
type Filter map[string]any

type Store struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func New(db *pgxpool.Pool, timeout time.Duration) *Store {
	return &Store{db: db, timeout: timeout}
}

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// Collection returns a handle on the named collection. Collections exist
// implicitly once a document is inserted.
func (s *Store) Collection(name string) *Collection {
	return &Collection{store: s, name: name}
}

// Ping checks the underlying pool.
func (s *Store) Ping(ctx context.Context) error {
	timeoutCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.db.Ping(timeoutCtx)
}

type Collection struct {
	store *Store
	name  string
}

func (c *Collection) Name() string {
	return c.name
}

func encodeFilter(filter Filter) ([]byte, error) {
	if len(filter) == 0 {
		return []byte("{}"), nil
	}
	b, err := json.Marshal(filter)
	if err != nil {
		return nil, fmt.Errorf("docstore: encode filter: %w", err)
	}
	return b, nil
}

// InsertOne stores doc and returns the generated document id.
func (c *Collection) InsertOne(ctx context.Context, doc any) (string, error) {
	const query = `
	INSERT INTO documents (id, collection, body)
	VALUES (gen_random_uuid(), $1, $2::jsonb)
	RETURNING id::text
	`
	body, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("docstore: encode document: %w", err)
	}

	timeoutCtx, cancel := c.store.withTimeout(ctx)
	defer cancel()
	var id string
	if err := c.store.db.QueryRow(timeoutCtx, query, c.name, body).Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return "", fmt.Errorf("%w: %s", ErrDuplicateKey, pgErr.ConstraintName)
		}
		return "", err
	}
	return id, nil
}

// FindOne decodes the oldest matching document into out.
func (c *Collection) FindOne(ctx context.Context, filter Filter, out any) error {
	const query = `
	SELECT body FROM documents
	WHERE collection = $1 AND body @> $2::jsonb
	ORDER BY created_at
	LIMIT 1
	`
	f, err := encodeFilter(filter)
	if err != nil {
		return err
	}

	timeoutCtx, cancel := c.store.withTimeout(ctx)
	defer cancel()
	var body []byte
	if err := c.store.db.QueryRow(timeoutCtx, query, c.name, f).Scan(&body); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNoDocuments
		}
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("docstore: decode document: %w", err)
	}
	return nil
}

// Find decodes every matching document, oldest first, into out, which must
// be a pointer to a slice.
func (c *Collection) Find(ctx context.Context, filter Filter, out any) error {
	const query = `
	SELECT COALESCE(jsonb_agg(body ORDER BY created_at), '[]'::jsonb)
	FROM documents
	WHERE collection = $1 AND body @> $2::jsonb
	`
	f, err := encodeFilter(filter)
	if err != nil {
		return err
	}

	timeoutCtx, cancel := c.store.withTimeout(ctx)
	defer cancel()
	var body []byte
	if err := c.store.db.QueryRow(timeoutCtx, query, c.name, f).Scan(&body); err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("docstore: decode documents: %w", err)
	}
	return nil
}

// UpdateOne merges set into the top level of the oldest matching document.
func (c *Collection) UpdateOne(ctx context.Context, filter Filter, set map[string]any) error {
	const query = `
	UPDATE documents SET body = body || $3::jsonb, updated_at = now()
	WHERE id = (
		SELECT id FROM documents
		WHERE collection = $1 AND body @> $2::jsonb
		ORDER BY created_at
		LIMIT 1
	)
	`
	f, err := encodeFilter(filter)
	if err != nil {
		return err
	}
	patch, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("docstore: encode update: %w", err)
	}

	timeoutCtx, cancel := c.store.withTimeout(ctx)
	defer cancel()
	tag, err := c.store.db.Exec(timeoutCtx, query, c.name, f, patch)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoDocuments
	}
	return nil
}

// DeleteOne removes the oldest matching document.
func (c *Collection) DeleteOne(ctx context.Context, filter Filter) error {
	const query = `
	DELETE FROM documents
	WHERE id = (
		SELECT id FROM documents
		WHERE collection = $1 AND body @> $2::jsonb
		ORDER BY created_at
		LIMIT 1
	)
	`
	f, err := encodeFilter(filter)
	if err != nil {
		return err
	}

	timeoutCtx, cancel := c.store.withTimeout(ctx)
	defer cancel()
	tag, err := c.store.db.Exec(timeoutCtx, query, c.name, f)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoDocuments
	}
	return nil
}

func (c *Collection) Count(ctx context.Context, filter Filter) (int64, error) {
	const query = `
	SELECT count(*) FROM documents
	WHERE collection = $1 AND body @> $2::jsonb
	`
	f, err := encodeFilter(filter)
	if err != nil {
		return 0, err
	}

	timeoutCtx, cancel := c.store.withTimeout(ctx)
	defer cancel()
	var n int64
	err = c.store.db.QueryRow(timeoutCtx, query, c.name, f).Scan(&n)
	return n, err
}

// DeleteExpired removes documents whose numeric field (unix seconds) lies
// before now. It plays the role of a TTL index.
func (c *Collection) DeleteExpired(ctx context.Context, field string, now time.Time) (int64, error) {
	const query = `
	DELETE FROM documents
	WHERE collection = $1 AND (body->>$2)::bigint < $3
	`
	timeoutCtx, cancel := c.store.withTimeout(ctx)
	defer cancel()
	tag, err := c.store.db.Exec(timeoutCtx, query, c.name, field, now.Unix())
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
