package main

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lineFile = "../../testdata/line.iges"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "igesview "+Version+"\n", out)
}

func TestInfo(t *testing.T) {
	out, err := run(t, "info", lineFile)
	require.NoError(t, err)
	assert.Contains(t, out, "line.iges")
	assert.Contains(t, out, "IGES")
	assert.Contains(t, out, "Line")
	assert.Contains(t, out, "LINE")
	assert.Contains(t, out, "1 entities")
	assert.NotContains(t, out, "ENTITIES")
	assert.Contains(t, out, "extent: 3 x ")
	assert.Contains(t, out, "1 region(s)")
	assert.Contains(t, out, "region 1: 3 x 3, 1 primitive(s)")
	assert.NotContains(t, out, "diagnostic(s)")
}

func TestInfo_JSON(t *testing.T) {
	out, err := run(t, "info", "-o", "json", lineFile)
	require.NoError(t, err)

	var info infoJSON
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "IGES", info.Sender)
	assert.Equal(t, "MM", info.Units)
	require.Len(t, info.Entities, 1)
	assert.Equal(t, 110, info.Entities[0].Type)
	assert.Equal(t, 1, info.Entities[0].Primitives)
	assert.Equal(t, 1, info.Primitives)
	assert.Empty(t, info.Diagnostics)
}

func TestInfo_Errors(t *testing.T) {
	_, err := run(t, "info", "missing.iges")
	assert.Error(t, err)

	_, err = run(t, "info", "-o", "xml", lineFile)
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "line.png")
	out, err := run(t, "render", "--out", filename, "--width", "120", "--height", "90", lineFile)
	require.NoError(t, err)
	assert.Contains(t, out, "1 primitives")

	file, err := os.Open(filename)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	img, err := png.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, 120, img.Bounds().Dx())
	assert.Equal(t, 90, img.Bounds().Dy())
}

func TestExport(t *testing.T) {
	dir := t.TempDir()

	csv := filepath.Join(dir, "line.csv")
	out, err := run(t, "export", "--out", csv, lineFile)
	require.NoError(t, err)
	assert.Contains(t, out, csv)
	assert.FileExists(t, csv)

	db := filepath.Join(dir, "line.db")
	out, err = run(t, "export", "--out", db, lineFile)
	require.NoError(t, err)
	assert.Contains(t, out, "run ")
	assert.FileExists(t, db)

	_, err = run(t, "export", "--format", "xml", "--out", filepath.Join(dir, "x"), lineFile)
	assert.Error(t, err)
}

func TestWatch(t *testing.T) {
	var (
		dir      = t.TempDir()
		filename = filepath.Join(dir, "part.iges")
		calls    atomic.Int32
		done     = make(chan error, 1)
	)
	require.NoError(t, os.WriteFile(filename, []byte("v1"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		done <- watch(ctx, filename, func() error {
			calls.Add(1)
			return nil
		}, &bytes.Buffer{})
	}()

	// 监听建立之前的写入会丢失，反复写入直到触发
	deadline := time.Now().Add(5 * time.Second)
	for calls.Load() == 0 && time.Now().Before(deadline) {
		require.NoError(t, os.WriteFile(filename, []byte("v2"), 0644))
		time.Sleep(200 * time.Millisecond)
	}
	assert.Positive(t, calls.Load())

	// 同目录的其他文件不触发
	before := calls.Load()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.iges"), []byte("x"), 0644))
	time.Sleep(3 * debounce)
	assert.Equal(t, before, calls.Load())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestPngName(t *testing.T) {
	assert.Equal(t, "a/b.png", pngName("a/b.iges"))
	assert.Equal(t, "part.png", pngName("part"))
}
