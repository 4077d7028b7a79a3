// Package journal persists a record of every OANDA REST call a client
// makes, for audit and debugging of live trading sessions.
package journal

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/oandacl/oanda"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

// RecordCall implements oanda.CallRecorder.
func (j *SQLite) RecordCall(rec oanda.CallRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO calls
		(call_id, time, method, url, status, duration_ms, error)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Time, rec.Method, rec.URL,
		rec.Status, rec.Duration.Milliseconds(), rec.Error,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}

var _ oanda.CallRecorder = (*SQLite)(nil)

// scanCall reads one calls row; duration is stored as integer milliseconds.
func scanCall(row interface{ Scan(...any) error }) (oanda.CallRecord, error) {
	var (
		rec oanda.CallRecord
		ms  int64
	)
	if err := row.Scan(&rec.ID, &rec.Time, &rec.Method, &rec.URL, &rec.Status, &ms, &rec.Error); err != nil {
		return oanda.CallRecord{}, err
	}
	rec.Duration = time.Duration(ms) * time.Millisecond
	return rec, nil
}
