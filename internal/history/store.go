package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Entry is one journaled prediction.
type Entry struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	RequestID   string    `json:"request_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Normalized  string    `json:"normalized"`
	Genre       string    `json:"genre"`
	Threshold   float64   `json:"threshold"`
	ModelScore  float64   `json:"model_score"`
	ModelPath   string    `json:"model_path"`
}

// Store manages journal persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

const (
	entryColumns = "id, created_at, request_id, title, description, normalized, genre, threshold, model_score, model_path"

	// timestampLayout has fixed-width fractions so created_at sorts as text.
	timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

// Open creates or connects to the journal at path.
func Open(ctx context.Context, path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("open history: path is required")
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record appends entry to the journal, assigning an ID and timestamp when
// they are unset, and returns the stored entry.
func (s *Store) Record(ctx context.Context, entry Entry) (Entry, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	entry.CreatedAt = entry.CreatedAt.UTC()

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO predictions (`+entryColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.CreatedAt.Format(timestampLayout),
		nullableString(entry.RequestID),
		entry.Title,
		entry.Description,
		entry.Normalized,
		entry.Genre,
		entry.Threshold,
		entry.ModelScore,
		entry.ModelPath,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("insert prediction: %w", err)
	}
	return entry, nil
}

// Recent returns up to limit entries, newest first. A non-positive limit
// returns every entry.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM predictions ORDER BY created_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate predictions: %w", err)
	}
	return entries, nil
}

// Count returns the number of journaled predictions.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM predictions").Scan(&count); err != nil {
		return 0, fmt.Errorf("count predictions: %w", err)
	}
	return count, nil
}

// Clear removes every journaled prediction and returns how many were deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM predictions")
	if err != nil {
		return 0, fmt.Errorf("clear predictions: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return removed, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (Entry, error) {
	var (
		entry     Entry
		createdAt string
		requestID sql.NullString
	)
	if err := row.Scan(
		&entry.ID,
		&createdAt,
		&requestID,
		&entry.Title,
		&entry.Description,
		&entry.Normalized,
		&entry.Genre,
		&entry.Threshold,
		&entry.ModelScore,
		&entry.ModelPath,
	); err != nil {
		return Entry{}, fmt.Errorf("scan prediction: %w", err)
	}
	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Entry{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	entry.CreatedAt = parsed
	entry.RequestID = requestID.String
	return entry, nil
}

func nullableString(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}
