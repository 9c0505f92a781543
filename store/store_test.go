package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/iges"
)

func testCatalog(t *testing.T) Catalog {
	t.Helper()
	doc, err := iges.Open("../testdata/line.iges")
	require.NoError(t, err)
	return NewCatalog("line.iges", doc)
}

func TestCatalog_BlankSequence(t *testing.T) {
	data, err := os.ReadFile("../testdata/line.iges")
	require.NoError(t, err)

	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		if len(line) >= 80 && line[72] == 'D' {
			lines[i] = line[:73] + strings.Repeat(" ", 7)
		}
	}
	doc, err := iges.Decode(strings.Join(lines, "\n"))
	require.NoError(t, err)

	prims := NewCatalog("line.iges", doc).Primitives()
	assert.Len(t, prims[1], 1)
	assert.NotContains(t, prims, 0)
}

func TestExportSQLite(t *testing.T) {
	var (
		ctx      = context.Background()
		filename = filepath.Join(t.TempDir(), "catalog.db")
		c        = testCatalog(t)
	)

	first, err := ExportSQLite(ctx, filename, c)
	require.NoError(t, err)
	second, err := ExportSQLite(ctx, filename, c)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	db, err := sql.Open("sqlite", filename)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var runs int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs`).Scan(&runs))
	assert.Equal(t, 2, runs)

	var (
		name   string
		label  string
		params string
	)
	row := db.QueryRowContext(ctx, `SELECT name, label, params FROM entities WHERE run_id = ? AND seq = 1`, first)
	require.NoError(t, row.Scan(&name, &label, &params))
	assert.Equal(t, "Line", name)
	assert.Equal(t, "LINE", label)
	assert.Equal(t, "1.,2.,3.,4.D0,5.,6.", params)

	var (
		kind   string
		points int
	)
	row = db.QueryRowContext(ctx, `SELECT kind, points FROM primitives WHERE run_id = ? AND idx = 0`, second)
	require.NoError(t, row.Scan(&kind, &points))
	assert.Equal(t, "polyline", kind)
	assert.Equal(t, 2, points)

	var sender string
	require.NoError(t, db.QueryRowContext(ctx, `SELECT sender FROM runs WHERE id = ?`, first).Scan(&sender))
	assert.Equal(t, "IGES", sender)
}

func TestExportCSV(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "line.csv")
	require.NoError(t, ExportCSV(filename, testCatalog(t)))

	data, err := os.ReadFile(filename)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.TrimSuffix(csvHeader, "\n"), lines[0])
	assert.Equal(t, "1,110,Line,0,0,0,LINE,1,2,1,2,3,4,5,6", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "total 1,drawn 1"))
	assert.Equal(t, strings.Count(lines[0], ","), strings.Count(lines[2], ","))
}

func TestCSVQuote(t *testing.T) {
	assert.Equal(t, "plain", csvQuote("plain"))
	assert.Equal(t, `"a,b"`, csvQuote("a,b"))
	assert.Equal(t, `"say ""hi"""`, csvQuote(`say "hi"`))
}
