// Package journal записывает входящие и исходящие фреймы в SQLite,
// чтобы сессию можно было воспроизвести без сервера.
package journal

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/iudanet/liveclient/internal/models"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

var (
	// ErrRunNotFound indicates that no run matches the query
	ErrRunNotFound = errors.New("run not found")

	// ErrJournalClosed indicates that the journal is closed
	ErrJournalClosed = errors.New("journal is closed")
)

// Journal is a SQLite backed frame recorder
type Journal struct {
	db  *sql.DB
	now func() time.Time
}

// New opens (or creates) the journal at dbPath
func New(ctx context.Context, dbPath string) (*Journal, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// один писатель
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = NORMAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	j := &Journal{db: db, now: time.Now}

	if err := j.runMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return j, nil
}

// Close closes the database connection
func (j *Journal) Close() error {
	if j.db == nil {
		return nil
	}
	err := j.db.Close()
	j.db = nil
	return err
}

func (j *Journal) runMigrations(ctx context.Context) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, j.db, "migrations"); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}

	return nil
}

// StartRun registers a new run for url; page is the HTML the run starts from
func (j *Journal) StartRun(ctx context.Context, url, page, nodeID string) (*models.JournalRun, error) {
	if j.db == nil {
		return nil, ErrJournalClosed
	}

	run := &models.JournalRun{
		ID:        uuid.NewString(),
		URL:       url,
		Page:      page,
		NodeID:    nodeID,
		StartedAt: j.now(),
	}

	query := `
		INSERT INTO runs (id, url, node_id, page, started_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := j.db.ExecContext(ctx, query,
		run.ID,
		run.URL,
		run.NodeID,
		[]byte(run.Page),
		run.StartedAt.UnixNano(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start run: %w", err)
	}

	return run, nil
}

// RecordInbound stores a text frame received from the server
func (j *Journal) RecordInbound(ctx context.Context, runID, frame string) error {
	return j.record(ctx, runID, models.DirectionInbound, []byte(frame), false)
}

// RecordOutbound stores an encoded frame sent to the server
func (j *Journal) RecordOutbound(ctx context.Context, runID string, payload []byte, binary bool) error {
	return j.record(ctx, runID, models.DirectionOutbound, payload, binary)
}

func (j *Journal) record(ctx context.Context, runID string, dir models.Direction, payload []byte, binary bool) error {
	if j.db == nil {
		return ErrJournalClosed
	}

	query := `
		INSERT INTO frames (run_id, direction, payload, is_binary, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	if payload == nil {
		payload = []byte{}
	}

	_, err := j.db.ExecContext(ctx, query, runID, string(dir), payload, binary, j.now().UnixNano())
	if err != nil {
		return fmt.Errorf("failed to record %s frame: %w", dir, err)
	}

	return nil
}

// Frames returns the frames of a run in recording order
func (j *Journal) Frames(ctx context.Context, runID string) ([]*models.JournalFrame, error) {
	if j.db == nil {
		return nil, ErrJournalClosed
	}

	query := `
		SELECT id, run_id, direction, payload, is_binary, created_at
		FROM frames
		WHERE run_id = ?
		ORDER BY id
	`

	rows, err := j.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query frames: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var frames []*models.JournalFrame

	for rows.Next() {
		var (
			f         models.JournalFrame
			dir       string
			createdAt int64
		)

		if err := rows.Scan(&f.ID, &f.RunID, &dir, &f.Payload, &f.Binary, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan frame: %w", err)
		}

		f.Direction = models.Direction(dir)
		f.CreatedAt = time.Unix(0, createdAt)
		frames = append(frames, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating frames: %w", err)
	}

	return frames, nil
}

// Run returns a run by id
func (j *Journal) Run(ctx context.Context, id string) (*models.JournalRun, error) {
	query := `
		SELECT id, url, node_id, page, started_at
		FROM runs
		WHERE id = ?
	`

	return j.scanRun(ctx, query, id)
}

// LatestRun returns the most recent run; url narrows the search when not empty
func (j *Journal) LatestRun(ctx context.Context, url string) (*models.JournalRun, error) {
	query := `
		SELECT id, url, node_id, page, started_at
		FROM runs
		WHERE ? = '' OR url = ?
		ORDER BY started_at DESC, rowid DESC
		LIMIT 1
	`

	return j.scanRun(ctx, query, url, url)
}

func (j *Journal) scanRun(ctx context.Context, query string, args ...any) (*models.JournalRun, error) {
	if j.db == nil {
		return nil, ErrJournalClosed
	}

	var (
		run       models.JournalRun
		page      []byte
		startedAt int64
	)

	err := j.db.QueryRowContext(ctx, query, args...).Scan(
		&run.ID,
		&run.URL,
		&run.NodeID,
		&page,
		&startedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRunNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	run.Page = string(page)
	run.StartedAt = time.Unix(0, startedAt)

	return &run, nil
}
