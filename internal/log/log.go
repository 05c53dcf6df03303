// Package log provides best-effort session logging for tempo.
// Sessions and their commands are stored in ~/.tempo/log/tempo-log.db so
// past stopwatch runs can be reviewed across projects.
//
// # Fluent API
//
// Use the fluent builder API to construct and write event entries:
//
//	log.Event("toggle").
//		Elapsed(sw.Elapsed()).
//		Detail("running", sw.IsRunning()).
//		Write(err)
//
// Every event belongs to the session opened by [StartSession]. Logging is
// best-effort throughout: a broken or missing database never interrupts
// the stopwatch.
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single logged command.
type Entry struct {
	Command string         // single-letter shell command, e.g. "s", "c"
	Elapsed time.Duration  // stopwatch reading when the command ran
	Start   int64          // unix timestamp when Event() called
	End     int64          // unix timestamp when Write() called
	Success bool           // whether the command succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional command-specific data
}

// Session summarises one shell run.
type Session struct {
	ID       string
	Project  string
	Name     string
	Start    int64
	End      int64
	Elapsed  time.Duration
	Commands int
}

// Builder constructs an event entry using a fluent API.
// Create with [Event], chain methods to set fields, then call
// [Builder.Write] to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new event builder for a shell command.
//
// Example:
//
//	log.Event("o").
//		Elapsed(sw.Elapsed()).
//		Detail("offset", dur.String()).
//		Write(err)
func Event(command string) *Builder {
	return &Builder{
		entry: Entry{
			Command: command,
			Start:   time.Now().Unix(),
		},
	}
}

// Elapsed records the stopwatch reading at the time of the command.
func (b *Builder) Elapsed(d time.Duration) *Builder {
	b.entry.Elapsed = d
	return b
}

// Detail adds a key-value pair to the entry's detail map.
// Can be called multiple times to add multiple details.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the event, deriving success/failure from err.
//
// If err is nil, the entry is logged as successful.
// If err is non-nil, the entry is logged as failed with the error message.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort
// logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetProject sets the project identifier for the session. The dir should
// be the working directory the shell was started from; only a hash of it
// is stored.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// StartSession opens a session row for this shell run. No-op when the
// logger is not initialised.
func StartSession(name string) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.startSession(name)
}

// EndSession records the final elapsed time on the current session.
func EndSession(elapsed time.Duration) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.endSession(elapsed)
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// RecentSessions returns up to limit sessions, newest first. Returns nil
// when the logger is not initialised.
func RecentSessions(limit int) []Session {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return nil
	}
	return l.recentSessions(limit)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
