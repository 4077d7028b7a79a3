package journal

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rustyeddy/oandacl/oanda"
)

// GetCall returns a single call record by ID.
func (j *SQLite) GetCall(callID string) (oanda.CallRecord, error) {
	row := j.db.QueryRow(`
		SELECT call_id, time, method, url, status, duration_ms, error
		FROM calls
		WHERE call_id = ?`, callID)

	rec, err := scanCall(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return oanda.CallRecord{}, fmt.Errorf("call %q not found", callID)
		}
		return oanda.CallRecord{}, err
	}
	return rec, nil
}

// ListCallsBetween returns calls whose time is within [start, end).
func (j *SQLite) ListCallsBetween(start, end time.Time) ([]oanda.CallRecord, error) {
	rows, err := j.db.Query(`
		SELECT call_id, time, method, url, status, duration_ms, error
		FROM calls
		WHERE time >= ? AND time < ?
		ORDER BY time ASC`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []oanda.CallRecord
	for rows.Next() {
		rec, err := scanCall(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListFailedCalls returns calls that got a non-2xx status or no response at
// all, most recent first.
func (j *SQLite) ListFailedCalls(limit int) ([]oanda.CallRecord, error) {
	rows, err := j.db.Query(`
		SELECT call_id, time, method, url, status, duration_ms, error
		FROM calls
		WHERE status < 200 OR status >= 300
		ORDER BY time DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []oanda.CallRecord
	for rows.Next() {
		rec, err := scanCall(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
