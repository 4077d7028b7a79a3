// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS calls (
	call_id TEXT PRIMARY KEY,
	time DATETIME NOT NULL,
	method TEXT NOT NULL,
	url TEXT NOT NULL,
	status INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL,
	error TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_calls_time ON calls(time);
`
