package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// ErrCorruptDocument is returned when a stored document cannot be decoded
var ErrCorruptDocument = errors.New("corrupt document")

// DocumentRepository stores whole JSON documents under a key. Every read and
// write replaces the full document, like browser local storage.
type DocumentRepository struct {
	db *sqlx.DB
}

// NewDocumentRepository creates a new repository instance
func NewDocumentRepository(db *sqlx.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Get decodes the document stored under key into v. found is false when no
// document exists.
func (r *DocumentRepository) Get(ctx context.Context, key string, v any) (found bool, err error) {
	var raw string
	err = r.db.GetContext(ctx, &raw, r.db.Rebind("SELECT value FROM documents WHERE doc_key = ?"), key)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get document %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return true, fmt.Errorf("%w %s: %v", ErrCorruptDocument, key, err)
	}
	return true, nil
}

// Put replaces the document stored under key
func (r *DocumentRepository) Put(ctx context.Context, key string, v any) error {
	raw, err := encode(key, v)
	if err != nil {
		return err
	}
	return r.putRaw(ctx, r.db, key, raw)
}

// PutAll replaces every document in docs in a single transaction. Either
// all of them are written or none is.
func (r *DocumentRepository) PutAll(ctx context.Context, docs map[string]any) error {
	raws := make(map[string]string, len(docs))
	for key, v := range docs {
		raw, err := encode(key, v)
		if err != nil {
			return err
		}
		raws[key] = raw
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for key, raw := range raws {
		if err := r.putRaw(ctx, tx, key, raw); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit documents: %w", err)
	}
	return nil
}

func encode(key string, v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode document %s: %w", key, err)
	}
	return string(raw), nil
}

func (r *DocumentRepository) putRaw(ctx context.Context, exec sqlx.ExtContext, key, raw string) error {
	query := r.db.Rebind(`
		INSERT INTO documents (doc_key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (doc_key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`)
	if _, err := exec.ExecContext(ctx, query, key, raw, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to put document %s: %w", key, err)
	}
	return nil
}
