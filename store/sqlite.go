package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	bingo "github.com/tigredonorte/bingo-sub004"
)

const cardsSchema = `
CREATE TABLE IF NOT EXISTS cards (
	id         TEXT PRIMARY KEY,
	session_id TEXT NOT NULL,
	format     TEXT NOT NULL,
	cells      TEXT NOT NULL,
	hash       TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_cards_session ON cards(session_id);
`

// SQLiteStore is a CardStore backed by a SQLite database file. Cells are
// stored as a JSON column since the engine never queries individual cells.
type SQLiteStore struct {
	db *sql.DB
}

var _ CardStore = &SQLiteStore{}

// NewSQLiteStore opens (and creates if missing) a SQLite database at dsn and
// bootstraps the cards table. The database is opened with a busy timeout and
// WAL journaling.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	// Ensure directory exists for ./data/bingo.db, etc.
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if _, err := db.Exec(cardsSchema); err != nil {
		return nil, fmt.Errorf("create cards table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Save(ctx context.Context, card *bingo.BingoCard) error {
	cells, err := json.Marshal(card.Cells)
	if err != nil {
		return fmt.Errorf("marshal cells: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO cards (id, session_id, format, cells, hash, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		card.ID.String(), card.SessionID, string(card.Format), string(cells), card.Hash,
		card.CreatedAt.Format(time.RFC3339Nano),
	)
	return err
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (*bingo.BingoCard, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, session_id, format, cells, hash, created_at FROM cards WHERE id = ?`, id)
	card, err := scanCard(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return card, err
}

func (s *SQLiteStore) ListBySession(ctx context.Context, sessionID string) ([]*bingo.BingoCard, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, format, cells, hash, created_at FROM cards WHERE session_id = ? ORDER BY created_at`,
		sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []*bingo.BingoCard
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

func (s *SQLiteStore) DeleteSession(ctx context.Context, sessionID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM cards WHERE session_id = ?`, sessionID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(row rowScanner) (*bingo.BingoCard, error) {
	var (
		id, sessionID, format, cells, hash, createdAt string
	)
	if err := row.Scan(&id, &sessionID, &format, &cells, &hash, &createdAt); err != nil {
		return nil, err
	}

	cardID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse card id %q: %w", id, err)
	}
	created, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}

	card := &bingo.BingoCard{
		ID:        cardID,
		SessionID: sessionID,
		Format:    bingo.CardFormat(format),
		Hash:      hash,
		CreatedAt: created,
	}
	if err := json.Unmarshal([]byte(cells), &card.Cells); err != nil {
		return nil, fmt.Errorf("unmarshal cells: %w", err)
	}
	return card, nil
}
