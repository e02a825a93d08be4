package meeting

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/nguyentantai21042004/meetscribe/internal/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS meetings (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	source_file TEXT NOT NULL,
	transcript  TEXT NOT NULL,
	summary     TEXT NOT NULL,
	created_at  TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS action_items (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	meeting_id  TEXT NOT NULL REFERENCES meetings(id) ON DELETE CASCADE,
	position    INTEGER NOT NULL,
	description TEXT NOT NULL,
	status      TEXT NOT NULL DEFAULT 'pending'
);
CREATE INDEX IF NOT EXISTS idx_action_items_meeting ON action_items(meeting_id, position);
CREATE INDEX IF NOT EXISTS idx_meetings_created ON meetings(created_at);
`

// timeLayout is fixed width so created_at sorts correctly as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type sqliteRepository struct {
	db     *sql.DB
	logger logger.Logger
}

// Open opens (creating if needed) the SQLite database at path and applies the schema.
func Open(ctx context.Context, path string, log logger.Logger) (Repository, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// sqlite serializes writers anyway; one connection also keeps :memory: databases shared
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	log.Info(ctx, "Meeting database ready at %s", path)
	return &sqliteRepository{db: db, logger: log}, nil
}

func (r *sqliteRepository) Save(ctx context.Context, m *Meeting) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO meetings (id, title, source_file, transcript, summary, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.Title, m.SourceFile, m.Transcript, m.Summary, m.CreatedAt.UTC().Format(timeLayout),
	); err != nil {
		return fmt.Errorf("insert meeting: %w", err)
	}

	for i := range m.ActionItems {
		item := &m.ActionItems[i]
		if item.Status == "" {
			item.Status = StatusPending
		}
		res, err := tx.ExecContext(ctx,
			`INSERT INTO action_items (meeting_id, position, description, status) VALUES (?, ?, ?, ?)`,
			m.ID, i, item.Description, item.Status,
		)
		if err != nil {
			return fmt.Errorf("insert action item: %w", err)
		}
		if item.ID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("read action item id: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit meeting: %w", err)
	}

	r.logger.Debug(ctx, "Saved meeting %s with %d action items", m.ID, len(m.ActionItems))
	return nil
}

func (r *sqliteRepository) Get(ctx context.Context, id string) (Meeting, error) {
	var (
		m       Meeting
		created string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, source_file, transcript, summary, created_at FROM meetings WHERE id = ?`, id,
	).Scan(&m.ID, &m.Title, &m.SourceFile, &m.Transcript, &m.Summary, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return Meeting{}, ErrNotFound
	}
	if err != nil {
		return Meeting{}, fmt.Errorf("read meeting: %w", err)
	}
	if m.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
		return Meeting{}, fmt.Errorf("parse created_at: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, description, status FROM action_items WHERE meeting_id = ? ORDER BY position`, id)
	if err != nil {
		return Meeting{}, fmt.Errorf("read action items: %w", err)
	}
	defer rows.Close()

	m.ActionItems = []ActionItem{}
	for rows.Next() {
		var item ActionItem
		if err := rows.Scan(&item.ID, &item.Description, &item.Status); err != nil {
			return Meeting{}, fmt.Errorf("scan action item: %w", err)
		}
		m.ActionItems = append(m.ActionItems, item)
	}
	return m, rows.Err()
}

func (r *sqliteRepository) List(ctx context.Context, limit int) ([]Meeting, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, source_file, summary, created_at FROM meetings ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list meetings: %w", err)
	}
	defer rows.Close()

	meetings := []Meeting{}
	for rows.Next() {
		var (
			m       Meeting
			created string
		)
		if err := rows.Scan(&m.ID, &m.Title, &m.SourceFile, &m.Summary, &created); err != nil {
			return nil, fmt.Errorf("scan meeting: %w", err)
		}
		if m.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		meetings = append(meetings, m)
	}
	return meetings, rows.Err()
}

func (r *sqliteRepository) Close() error {
	return r.db.Close()
}
