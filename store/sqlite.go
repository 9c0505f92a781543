package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	source     TEXT NOT NULL,
	sender     TEXT,
	file_name  TEXT,
	units      TEXT,
	created_at TEXT NOT NULL,
	entities   INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS entities (
	run_id   TEXT NOT NULL REFERENCES runs(id),
	seq      INTEGER NOT NULL,
	type     INTEGER NOT NULL,
	name     TEXT NOT NULL,
	form     INTEGER NOT NULL,
	level    INTEGER NOT NULL,
	color    INTEGER NOT NULL,
	status   TEXT,
	label    TEXT,
	params   TEXT NOT NULL,
	PRIMARY KEY (run_id, seq)
);
CREATE TABLE IF NOT EXISTS primitives (
	run_id   TEXT NOT NULL REFERENCES runs(id),
	idx      INTEGER NOT NULL,
	seq      INTEGER NOT NULL,
	kind     TEXT NOT NULL,
	points   INTEGER NOT NULL,
	finite   INTEGER NOT NULL,
	PRIMARY KEY (run_id, idx)
);
CREATE TABLE IF NOT EXISTS diagnostics (
	run_id   TEXT NOT NULL REFERENCES runs(id),
	severity TEXT NOT NULL,
	code     TEXT NOT NULL,
	section  TEXT,
	line     INTEGER,
	entity   INTEGER,
	message  TEXT
);
`

// ExportSQLite 把目录写入 SQLite 文件，同一文件可以追加多次导出，返回本次的 run id
func ExportSQLite(ctx context.Context, filename string, c Catalog) (runID string, err error) {
	db, err := sql.Open("sqlite", filename)
	if err != nil {
		return "", fmt.Errorf("open catalog: %w", err)
	}
	defer func() { _ = db.Close() }()

	if _, err = db.ExecContext(ctx, schema); err != nil {
		return "", fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	runID = uuid.New().String()
	if err = insertCatalog(ctx, tx, runID, c); err != nil {
		return "", err
	}
	if err = tx.Commit(); err != nil {
		return "", err
	}

	return runID, nil
}

func insertCatalog(ctx context.Context, tx *sql.Tx, runID string, c Catalog) error {
	var (
		doc = c.Document
		g   = doc.Global
	)

	_, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, source, sender, file_name, units, created_at, entities) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID, c.Source, nullString(g.SenderID), nullString(g.FileName), nullString(g.Units),
		time.Now().UTC().Format(time.RFC3339), len(doc.Records),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, rec := range doc.Records {
		dir := rec.Directory
		_, err = tx.ExecContext(ctx,
			`INSERT INTO entities (run_id, seq, type, name, form, level, color, status, label, params) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, dir.Sequence, int(dir.Type), dir.Type.String(), dir.Form, dir.Level, dir.Color,
			nullString(string(dir.Status)), nullString(dir.Label), strings.Join(rec.Params, ","),
		)
		if err != nil {
			return fmt.Errorf("insert entity %d: %w", dir.Sequence, err)
		}
	}

	for i, p := range c.Scene.Children {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO primitives (run_id, idx, seq, kind, points, finite) VALUES (?, ?, ?, ?, ?, ?)`,
			runID, i, p.Entity, p.Kind.String(), len(p.Points), p.Finite(),
		)
		if err != nil {
			return fmt.Errorf("insert primitive %d: %w", i, err)
		}
	}

	for _, d := range c.Diagnostics {
		var section string
		if d.Section != 0 {
			section = d.Section.String()
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO diagnostics (run_id, severity, code, section, line, entity, message) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			runID, d.Severity.String(), d.Code, nullString(section), d.Line, d.Entity, d.Message,
		)
		if err != nil {
			return fmt.Errorf("insert diagnostic: %w", err)
		}
	}

	return nil
}

// nullString 空字符串写入 NULL
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
