package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/tmoriguchi/mindtracer/internal/common"
	"github.com/tmoriguchi/mindtracer/internal/model"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// recordSchemaVersion is the latest schema version the application expects.
const recordSchemaVersion = 2

// SQLiteRecordStore keeps the account records (user profile, subscription
// status, broadcast messages) in a local SQLite database.
type SQLiteRecordStore struct {
	db     *sql.DB
	dbPath string
}

// OpenRecordStore opens (creating if needed) the record database.
func OpenRecordStore(dbPath string) (*SQLiteRecordStore, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("dbPath: %w", common.ErrInvalidConfig)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteRecordStore{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *SQLiteRecordStore) Close() error {
	return s.db.Close()
}

// NewRecordID returns a sortable unique identifier for a record row.
func NewRecordID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0) //nolint:gosec // IDs, not secrets
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

type recordMigration struct {
	up          func(*sql.Tx) error
	description string
	version     int
}

var recordMigrations = []recordMigration{
	{
		version:     1,
		description: "Initial records schema",
		up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS users (
					id TEXT PRIMARY KEY,
					display_name TEXT,
					email TEXT,
					created_at DATETIME NOT NULL,
					last_login DATETIME
				)`,
				`CREATE TABLE IF NOT EXISTS subscriptions (
					id TEXT PRIMARY KEY,
					user_id TEXT NOT NULL,
					tier TEXT NOT NULL DEFAULT 'free',
					expires_on DATETIME,
					last_verified DATETIME,
					FOREIGN KEY (user_id) REFERENCES users(id)
				)`,
			}
			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		version:     2,
		description: "Add broadcast messages",
		up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS messages (
					id TEXT PRIMARY KEY,
					date DATETIME NOT NULL,
					title TEXT NOT NULL,
					body TEXT NOT NULL,
					category TEXT NOT NULL DEFAULT 'Unknown',
					is_active INTEGER NOT NULL DEFAULT 1
				)`,
				`CREATE INDEX idx_messages_date ON messages(date)`,
			}
			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
}

// Migrate brings the record database to the expected schema version.
func (s *SQLiteRecordStore) Migrate(ctx context.Context) error {
	var currentVersion int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion); err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range recordMigrations {
		if migration.version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.version, commitErr)
		}

		slog.Info("Applied record migration",
			"version", migration.version,
			"description", migration.description)
	}

	var finalVersion int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion); err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}
	if finalVersion != recordSchemaVersion {
		return fmt.Errorf("record schema version mismatch: expected %d, got %d", recordSchemaVersion, finalVersion)
	}
	return nil
}

// SaveUser inserts or updates the single user profile row.
func (s *SQLiteRecordStore) SaveUser(ctx context.Context, user *model.UserProfile) error {
	if user.ID == "" {
		user.ID = NewRecordID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, display_name, email, created_at, last_login)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			display_name = excluded.display_name,
			email = excluded.email,
			last_login = excluded.last_login
	`, user.ID, user.DisplayName, user.Email, user.CreatedAt, user.LastLogin)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

// GetUser returns the stored user profile.
func (s *SQLiteRecordStore) GetUser(ctx context.Context) (*model.UserProfile, error) {
	var user model.UserProfile
	err := s.db.QueryRowContext(ctx, `
		SELECT id, display_name, email, created_at, last_login
		FROM users ORDER BY created_at LIMIT 1
	`).Scan(&user.ID, &user.DisplayName, &user.Email, &user.CreatedAt, &user.LastLogin)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user profile: %w", common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// SaveSubscription inserts or updates the subscription status row.
func (s *SQLiteRecordStore) SaveSubscription(ctx context.Context, sub *model.SubscriptionStatus) error {
	if sub.ID == "" {
		sub.ID = NewRecordID()
	}
	if sub.Tier == "" {
		sub.Tier = model.AccessFree
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO subscriptions (id, user_id, tier, expires_on, last_verified)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			tier = excluded.tier,
			expires_on = excluded.expires_on,
			last_verified = excluded.last_verified
	`, sub.ID, sub.UserID, string(sub.Tier), sub.ExpiresOn, sub.LastVerified)
	if err != nil {
		return fmt.Errorf("failed to save subscription: %w", err)
	}
	return nil
}

// GetSubscription returns the stored subscription status.
func (s *SQLiteRecordStore) GetSubscription(ctx context.Context) (*model.SubscriptionStatus, error) {
	var (
		sub  model.SubscriptionStatus
		tier string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, tier, expires_on, last_verified
		FROM subscriptions LIMIT 1
	`).Scan(&sub.ID, &sub.UserID, &tier, &sub.ExpiresOn, &sub.LastVerified)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("subscription: %w", common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	sub.Tier = model.ParseAccessLevel(tier)
	return &sub, nil
}

// SaveMessage inserts or updates a broadcast message.
func (s *SQLiteRecordStore) SaveMessage(ctx context.Context, msg *model.Message) error {
	if msg.ID == "" {
		msg.ID = NewRecordID()
	}
	if msg.Date.IsZero() {
		msg.Date = time.Now()
	}
	if msg.Category == "" {
		msg.Category = model.MessageUnknown
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO messages (id, date, title, body, category, is_active)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			body = excluded.body,
			category = excluded.category,
			is_active = excluded.is_active
	`, msg.ID, msg.Date, msg.Title, msg.Body, string(msg.Category), msg.IsActive)
	if err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}
	return nil
}

// ListMessages returns broadcast messages newest-first, optionally only
// the active ones.
func (s *SQLiteRecordStore) ListMessages(ctx context.Context, activeOnly bool) ([]model.Message, error) {
	query := `SELECT id, date, title, body, category, is_active FROM messages`
	if activeOnly {
		query += ` WHERE is_active = 1`
	}
	query += ` ORDER BY date DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var messages []model.Message
	for rows.Next() {
		var (
			msg      model.Message
			category string
		)
		if err := rows.Scan(&msg.ID, &msg.Date, &msg.Title, &msg.Body, &category, &msg.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		msg.Category = model.ParseMessageCategory(category)
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate messages: %w", err)
	}
	return messages, nil
}

// DeleteMessage removes a broadcast message by ID.
func (s *SQLiteRecordStore) DeleteMessage(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM messages WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("message %q: %w", id, common.ErrNotFound)
	}
	return nil
}
