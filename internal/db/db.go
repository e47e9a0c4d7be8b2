package db

import (
	"context"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/juju/errors"

	"github.com/Jeomhps/projet-IAC/bola-go/internal/reservation"
)

// DB is a MySQL backed reservation.Store.
type DB struct {
	*sqlx.DB
}

var _ reservation.Store = (*DB)(nil)

// Open connects to dsn, checks the connection and ensures the schema.
func Open(ctx context.Context, dsn string) (*DB, error) {
	xdb, err := sqlx.Open("mysql", dsn)
	if err != nil {
		return nil, errors.Annotate(err, "open mysql")
	}
	return wrap(ctx, xdb)
}

func wrap(ctx context.Context, xdb *sqlx.DB) (*DB, error) {
	if err := xdb.PingContext(ctx); err != nil {
		_ = xdb.Close()
		return nil, errors.Annotate(err, "ping mysql")
	}
	d := &DB{DB: xdb}
	if err := d.EnsureSchema(ctx); err != nil {
		_ = xdb.Close()
		return nil, errors.Trace(err)
	}
	return d, nil
}

func (d *DB) Close() error { return d.DB.Close() }

// Get returns the user's reservations ordered by insertion.
func (d *DB) Get(ctx context.Context, userID string) ([]reservation.Reservation, error) {
	out := []reservation.Reservation{}
	if err := d.SelectContext(ctx, &out, selectByUser, userID); err != nil {
		return nil, errors.Annotatef(err, "select reservations for %q", userID)
	}
	return out, nil
}

// Put replaces the user's reservations in one transaction, so readers see
// either the old or the new sequence.
func (d *DB) Put(ctx context.Context, userID string, rs []reservation.Reservation) error {
	if err := reservation.CheckOwner(userID, rs); err != nil {
		return errors.Trace(err)
	}
	tx, err := d.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Annotate(err, "begin")
	}
	if _, err := tx.ExecContext(ctx, deleteByUser, userID); err != nil {
		_ = tx.Rollback()
		return errors.Annotatef(err, "clear reservations for %q", userID)
	}
	for _, r := range rs {
		if _, err := tx.NamedExecContext(ctx, insertReservation, r); err != nil {
			_ = tx.Rollback()
			return errors.Annotatef(err, "insert reservation %q", r.ID)
		}
	}
	return errors.Annotate(tx.Commit(), "commit")
}

const (
	selectByUser = `SELECT reservation_id, user_id, item_details
		FROM reservations WHERE user_id=? ORDER BY seq ASC`
	deleteByUser      = `DELETE FROM reservations WHERE user_id=?`
	insertReservation = `INSERT INTO reservations (reservation_id, user_id, item_details)
		VALUES (:reservation_id, :user_id, :item_details)`
)

// EnsureSchema creates the reservations table if needed (inline DDL).
func (d *DB) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS reservations (
			seq BIGINT AUTO_INCREMENT PRIMARY KEY,
			reservation_id VARCHAR(255) NOT NULL UNIQUE,
			user_id VARCHAR(255) NOT NULL,
			item_details TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,

			INDEX (user_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_bin`,
	}
	for _, s := range stmts {
		if _, err := d.DB.ExecContext(ctx, s); err != nil {
			return errors.Annotate(err, "schema")
		}
	}
	return nil
}
