package lexicon

import (
	"fmt"
	"sync"

	"crawshaw.io/sqlite"
	"github.com/localrivet/textsummary/internal/language"
	"github.com/localrivet/textsummary/internal/tokenize"
)

// SQLiteStore persists extra stop-words per language.
// A single connection is shared and guarded by a mutex.
type SQLiteStore struct {
	mu     sync.Mutex
	conn   *sqlite.Conn
	dbPath string
}

var _ WordSource = (*SQLiteStore)(nil)

// NewSQLiteStore creates a new SQLiteStore instance.
func NewSQLiteStore() *SQLiteStore {
	return &SQLiteStore{}
}

// Initialize opens (or creates) the database at dbPath.
func (s *SQLiteStore) Initialize(dbPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dbPath = dbPath

	conn, err := sqlite.OpenConn(dbPath, sqlite.SQLITE_OPEN_CREATE|sqlite.SQLITE_OPEN_READWRITE)
	if err != nil {
		return fmt.Errorf("failed to open SQLite database: %w", err)
	}
	s.conn = conn

	if err := s.exec(`
	CREATE TABLE IF NOT EXISTS stop_words (
		language TEXT NOT NULL,
		word TEXT NOT NULL,
		PRIMARY KEY (language, word)
	);`); err != nil {
		s.conn.Close()
		s.conn = nil
		return fmt.Errorf("failed to create table: %w", err)
	}

	return nil
}

// Close closes the store and releases any resources.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}

// Store adds words to the stop-word list of lang. Words are normalized;
// duplicates and blanks are ignored.
func (s *SQLiteStore) Store(lang language.Code, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return fmt.Errorf("store is not initialized")
	}

	if err := s.exec("BEGIN;"); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := s.insertWords(lang, words); err != nil {
		_ = s.exec("ROLLBACK;")
		return err
	}

	if err := s.exec("COMMIT;"); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *SQLiteStore) insertWords(lang language.Code, words []string) error {
	stmt, err := s.conn.Prepare(`INSERT OR IGNORE INTO stop_words (language, word) VALUES (?, ?);`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	defer stmt.Reset()

	for _, w := range words {
		w = tokenize.Normalize(w)
		if w == "" {
			continue
		}

		// Bind parameters - indices in sqlite are 1-based
		stmt.BindText(1, lang.String())
		stmt.BindText(2, w)

		if _, err := stmt.Step(); err != nil {
			return fmt.Errorf("failed to insert stop-word %q: %w", w, err)
		}
		if err := stmt.Reset(); err != nil {
			return fmt.Errorf("failed to reset insert statement: %w", err)
		}
	}

	return nil
}

// Load returns the stored stop-words of lang in alphabetical order.
func (s *SQLiteStore) Load(lang language.Code) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return nil, fmt.Errorf("store is not initialized")
	}

	stmt, err := s.conn.Prepare(`SELECT word FROM stop_words WHERE language = ? ORDER BY word;`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare select statement: %w", err)
	}
	defer stmt.Reset()

	stmt.BindText(1, lang.String())

	var words []string
	for {
		hasRow, err := stmt.Step()
		if err != nil {
			return nil, fmt.Errorf("failed to execute select statement: %w", err)
		}
		if !hasRow {
			break
		}
		// Column indices are 0-based
		words = append(words, stmt.ColumnText(0))
	}

	return words, nil
}

// Clear removes every stored stop-word of lang.
func (s *SQLiteStore) Clear(lang language.Code) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return fmt.Errorf("store is not initialized")
	}

	stmt, err := s.conn.Prepare(`DELETE FROM stop_words WHERE language = ?;`)
	if err != nil {
		return fmt.Errorf("failed to prepare delete statement: %w", err)
	}
	defer stmt.Reset()

	stmt.BindText(1, lang.String())
	if _, err := stmt.Step(); err != nil {
		return fmt.Errorf("failed to clear stop-words: %w", err)
	}
	return nil
}

// exec runs a statement that returns no rows. Callers hold s.mu.
func (s *SQLiteStore) exec(query string) error {
	stmt, err := s.conn.Prepare(query)
	if err != nil {
		return err
	}
	defer stmt.Reset()

	_, err = stmt.Step()
	return err
}
