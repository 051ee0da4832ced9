package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/conorfennell/leitner/internal/domain"
	"github.com/conorfennell/leitner/internal/streak"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // Registers the postgres driver
	_ "modernc.org/sqlite" // Registers the sqlite driver
)

// Supported values of the driver argument to Open.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

func init() {
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

//go:generate mockgen -source=storage.go -destination=mock/repository_mock.go

// Repository is everything the service layer needs from persistence.
type Repository interface {
	InsertCard(ctx context.Context, card domain.Card) error
	FindCard(ctx context.Context, ownerID, id string) (domain.Card, error)
	ListCards(ctx context.Context, ownerID string) ([]domain.Card, error)
	DueCards(ctx context.Context, ownerID string, asOf time.Time) ([]domain.Card, error)
	UpdateCardSchedule(ctx context.Context, card domain.Card) error
	DeleteCard(ctx context.Context, ownerID, id string) error
	ContentHashes(ctx context.Context, ownerID string) (map[string]struct{}, error)

	CountDay(ctx context.Context, ownerID string, endOfDay time.Time) (streak.DayCounts, error)
	Stats(ctx context.Context, ownerID string, asOf time.Time) (domain.Stats, error)

	GetStreak(ctx context.Context, ownerID string) (domain.StreakState, error)
	SaveStreak(ctx context.Context, ownerID string, s domain.StreakState) error
	AddCompletedDate(ctx context.Context, ownerID string, d domain.Date) error
	CompletedDates(ctx context.Context, ownerID string) ([]domain.Date, error)

	InsertReview(ctx context.Context, rec domain.ReviewRecord) error
	FindReviewByKey(ctx context.Context, ownerID, key string) (domain.ReviewRecord, error)
	ListReviews(ctx context.Context, ownerID, cardID string) ([]domain.ReviewRecord, error)

	// InTx runs fn against a Repository bound to one transaction. The
	// transaction commits when fn returns nil and rolls back otherwise.
	InTx(ctx context.Context, fn func(Repository) error) error
}

var _ Repository = (*DB)(nil)

// DB is a Repository backed by sqlite or postgres.
type DB struct {
	conn *sqlx.DB
	ext  sqlx.ExtContext
}

// Open connects to the database and ensures the schema is up to date.
func Open(ctx context.Context, driver, dsn string, maxOpen int) (*DB, error) {
	var schema string
	switch driver {
	case DriverSQLite:
		schema = sqliteSchema
	case DriverPostgres:
		schema = postgresSchema
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	conn, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if maxOpen > 0 {
		conn.SetMaxOpenConns(maxOpen)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := conn.ExecContext(ctx, schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &DB{conn: conn, ext: conn}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// InTx implements Repository. Nested calls reuse the open transaction.
func (db *DB) InTx(ctx context.Context, fn func(Repository) error) error {
	if _, inTx := db.ext.(*sqlx.Tx); inTx {
		return fn(db)
	}

	tx, err := db.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(&DB{conn: db.conn, ext: tx}); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// dbTime is the form every timestamp is stored in: UTC, so sqlite text
// comparison orders it, and millisecond precision, so no stored instant
// falls after leitner.EndOfDay of its day.
func dbTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

func (db *DB) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := db.ext.ExecContext(ctx, db.ext.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (db *DB) get(ctx context.Context, dest any, query string, args ...any) error {
	return sqlx.GetContext(ctx, db.ext, dest, db.ext.Rebind(query), args...)
}

func (db *DB) selectAll(ctx context.Context, dest any, query string, args ...any) error {
	return sqlx.SelectContext(ctx, db.ext, dest, db.ext.Rebind(query), args...)
}
