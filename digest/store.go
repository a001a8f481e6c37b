package digest

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Store remembers which feed items have already appeared in a digest
// page, so reruns only pick up new material. This is digest state
// only; no corpus content is persisted anywhere.
type Store struct {
	db *sql.DB
}

// SeenItem is one recorded feed entry.
type SeenItem struct {
	ID      uuid.UUID
	URL     string
	Title   string
	AddedAt time.Time
}

// NewStore opens (and if necessary creates) the seen-items database at
// the given path.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

// initSchema creates the items table if it doesn't exist.
func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS items (
		id TEXT PRIMARY KEY,
		url TEXT NOT NULL UNIQUE,
		title TEXT NOT NULL,
		added_at TEXT NOT NULL
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Seen reports whether the given item URL has been recorded.
func (s *Store) Seen(url string) (bool, error) {
	var id string
	err := s.db.QueryRow("SELECT id FROM items WHERE url = ?", url).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query items: %w", err)
	}
	return true, nil
}

// MarkSeen records an item URL. Recording the same URL twice is a
// no-op.
func (s *Store) MarkSeen(url, title string) error {
	item := SeenItem{
		ID:      uuid.New(),
		URL:     url,
		Title:   title,
		AddedAt: time.Now(),
	}

	_, err := s.db.Exec(
		"INSERT OR IGNORE INTO items (id, url, title, added_at) VALUES (?, ?, ?, ?)",
		item.ID.String(), item.URL, item.Title, item.AddedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}
