// Package session persists the logged-in identity between invocations so the
// CLI subcommands and the TUI share one login. State lives in a small SQLite
// db under the user's config dir.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/hy461283-sudo/intership-allotment/internal/model"
)

// Session is the identity saved after a successful login. Exactly one of the
// role-specific payloads is set, matching Role.
type Session struct {
	Role model.Role `json:"role"`

	Student      *model.Student      `json:"student,omitempty"`
	Organization *model.Organization `json:"organization,omitempty"`
	Admin        *model.Admin        `json:"admin,omitempty"`
}

// ErrNotLoggedIn is returned by Load when no session has been saved.
var ErrNotLoggedIn = errors.New("not logged in")

type Store interface {
	Load(ctx context.Context) (Session, error)
	Save(ctx context.Context, s Session) error
	Clear(ctx context.Context) error
	// DeviceID is a stable per-machine identifier, minted on first open.
	DeviceID(ctx context.Context) (string, error)
}

// SQLiteStore keeps the session in a kv table. One row per key; the session
// payload is stored as JSON so the schema never changes with the model.
type SQLiteStore struct {
	dir string
}

func NewSQLiteStore(dir string) *SQLiteStore {
	return &SQLiteStore{dir: dir}
}

// DefaultDir resolves the config dir: $SIA_CONFIG_DIR, else ~/.sia.
func DefaultDir() string {
	if d := strings.TrimSpace(os.Getenv("SIA_CONFIG_DIR")); d != "" {
		return d
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sia"
	}
	return filepath.Join(home, ".sia")
}

func (s *SQLiteStore) open(ctx context.Context) (*sql.DB, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", filepath.Join(s.dir, "session.sqlite"))
	if err != nil {
		return nil, err
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS kv (
		k TEXT PRIMARY KEY,
		v TEXT NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func (s *SQLiteStore) Load(ctx context.Context) (Session, error) {
	db, err := s.open(ctx)
	if err != nil {
		return Session{}, err
	}
	defer db.Close()

	var raw string
	err = db.QueryRowContext(ctx, `SELECT v FROM kv WHERE k = ?`, "session").Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, ErrNotLoggedIn
	}
	if err != nil {
		return Session{}, err
	}
	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return Session{}, err
	}
	if !sess.Role.Valid() {
		return Session{}, ErrNotLoggedIn
	}
	return sess, nil
}

func (s *SQLiteStore) Save(ctx context.Context, sess Session) error {
	if !sess.Role.Valid() {
		return errors.New("session has no role")
	}
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	_, err = db.ExecContext(ctx, `INSERT OR REPLACE INTO kv(k, v) VALUES(?, ?)`, "session", string(b))
	return err
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	_, err = db.ExecContext(ctx, `DELETE FROM kv WHERE k = ?`, "session")
	return err
}

func (s *SQLiteStore) DeviceID(ctx context.Context) (string, error) {
	db, err := s.open(ctx)
	if err != nil {
		return "", err
	}
	defer db.Close()

	var id string
	err = db.QueryRowContext(ctx, `SELECT v FROM kv WHERE k = ?`, "device_id").Scan(&id)
	if err == nil && id != "" {
		return id, nil
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", err
	}
	id = uuid.NewString()
	if _, err := db.ExecContext(ctx, `INSERT OR REPLACE INTO kv(k, v) VALUES(?, ?)`, "device_id", id); err != nil {
		return "", err
	}
	return id, nil
}
