// log_storage.go implements SQLite-based persistent session logging.
//
// Separated from log.go to isolate database concerns. The main log.go
// provides the fluent API for building event entries, while this file
// handles persistence. Using SQLite enables cross-project session queries
// and structured filtering that plain text logs cannot provide. The
// project field uses a hash of the directory path to enable aggregation
// while preserving privacy.
//
// Design: Errors during logging are reported to stderr but otherwise
// ignored (best-effort). This prevents log failures from breaking the
// shell - a stopwatch toggle should succeed even if we can't record it.

package log

import (
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
	_ "modernc.org/sqlite"
)

// Logger writes session log entries to a SQLite database.
type Logger struct {
	db      *sql.DB
	project string
	session string
	events  int
}

func (l *Logger) startSession(name string) {
	l.session = uuid.NewString()
	l.events = 0

	_, err := l.db.Exec(`
		INSERT INTO sessions (id, project, name, start)
		VALUES (?, ?, ?, ?)`,
		l.session, l.project, nilIfEmpty(name), time.Now().Unix(),
	)
	if err != nil {
		reportWriteFailure(err)
		l.session = ""
	}
}

func (l *Logger) endSession(elapsed time.Duration) {
	if l.session == "" {
		return
	}

	_, err := l.db.Exec(`
		UPDATE sessions SET end = ?, elapsed_ns = ?, commands = ?
		WHERE id = ?`,
		time.Now().Unix(), int64(elapsed), l.events, l.session,
	)
	if err != nil {
		reportWriteFailure(err)
	}
	l.session = ""
}

func (l *Logger) log(e Entry) {
	if l.session == "" {
		return
	}

	var detail *string
	if len(e.Detail) > 0 {
		if b, err := json.Marshal(e.Detail); err == nil {
			s := string(b)
			detail = &s
		}
	}

	success := 0
	if e.Success {
		success = 1
	}

	_, err := l.db.Exec(`
		INSERT INTO events (session, start, end, command, elapsed_ns, success, error, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		l.session, e.Start, e.End, e.Command, int64(e.Elapsed),
		success, nilIfEmpty(e.Error), detail,
	)
	if err != nil {
		reportWriteFailure(err)
		return
	}
	l.events++
}

func (l *Logger) recentSessions(limit int) []Session {
	rows, err := l.db.Query(`
		SELECT id, project, COALESCE(name, ''), start, COALESCE(end, 0),
		       COALESCE(elapsed_ns, 0), COALESCE(commands, 0)
		FROM sessions ORDER BY start DESC LIMIT ?`, limit)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var s Session
		var elapsed int64
		if err := rows.Scan(&s.ID, &s.Project, &s.Name, &s.Start, &s.End, &elapsed, &s.Commands); err != nil {
			return sessions
		}
		s.Elapsed = time.Duration(elapsed)
		sessions = append(sessions, s)
	}
	return sessions
}

func reportWriteFailure(err error) {
	// Best-effort logging: don't break the shell, but report failure
	_, _ = fmt.Fprintf(os.Stderr, "tempo: session log write failed: %v\n", err)
}

// dbPathFunc is the function that returns the database path.
// Tests can override this to use a temp directory.
var dbPathFunc = defaultDBPath

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to current directory if home cannot be determined.
		// This allows logging to work in unusual environments (containers,
		// etc.) rather than silently failing.
		return filepath.Join(".tempo", "log", "tempo-log.db")
	}
	return filepath.Join(home, ".tempo", "log", "tempo-log.db")
}

func dbPath() string {
	return dbPathFunc()
}

// DBPath returns the path to the log database.
func DBPath() string {
	return dbPath()
}

// hash creates a project identifier from the directory path, enabling
// cross-project session queries while preserving privacy.
func hash(s string) string {
	h, err := blake2b.New(8, nil) // 64-bit = 16 hex chars
	if err != nil {
		// Should never happen with nil key, but don't silently ignore
		panic("blake2b.New failed: " + err.Error())
	}
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

// migrate creates the session tables if they don't exist. Safe for
// concurrent access.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS sessions (
			id         TEXT PRIMARY KEY,
			project    TEXT NOT NULL,
			name       TEXT,
			start      INTEGER NOT NULL,
			end        INTEGER,
			elapsed_ns INTEGER,
			commands   INTEGER
		);
		CREATE TABLE IF NOT EXISTS events (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			session    TEXT NOT NULL REFERENCES sessions(id),
			start      INTEGER NOT NULL,
			end        INTEGER NOT NULL,
			command    TEXT NOT NULL,
			elapsed_ns INTEGER NOT NULL,
			success    INTEGER NOT NULL,
			error      TEXT,
			detail     TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_start ON sessions(start);
		CREATE INDEX IF NOT EXISTS idx_sessions_project ON sessions(project);
		CREATE INDEX IF NOT EXISTS idx_events_session ON events(session);
	`)
	return err
}

// nilIfEmpty returns nil for empty strings, reducing NULL checks in queries.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
