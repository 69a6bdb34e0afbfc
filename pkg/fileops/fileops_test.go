package fileops

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFile(t *testing.T) {
	t.Run("writes sanitized text and returns resolved path", func(t *testing.T) {
		dir := resolvedTempDir(t)
		target := filepath.Join(dir, "note.txt")

		created, err := CreateFile(target, "hello\r\nworld", CreateOptions{})
		require.NoError(t, err)
		assert.Equal(t, target, created)

		data, err := os.ReadFile(created)
		require.NoError(t, err)
		assert.Equal(t, "hello\nworld", string(data))
	})

	t.Run("creates missing parent directories", func(t *testing.T) {
		dir := resolvedTempDir(t)
		target := filepath.Join(dir, "deep", "nested", "note.txt")

		created, err := CreateFile(target, "content", CreateOptions{})
		require.NoError(t, err)
		assert.FileExists(t, created)
	})

	t.Run("overwrites by default", func(t *testing.T) {
		dir := resolvedTempDir(t)
		target := writeTestFile(t, dir, "existing.txt", "old")

		_, err := CreateFile(target, "new", CreateOptions{})
		require.NoError(t, err)

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})

	t.Run("FailIfExists blocks overwrite iff the file exists", func(t *testing.T) {
		dir := resolvedTempDir(t)
		target := writeTestFile(t, dir, "fixed.txt", "original")

		_, err := CreateFile(target, "replacement", CreateOptions{FailIfExists: true})
		assert.True(t, IsKind(err, KindAlreadyExists), "got %v", err)

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "original", string(data), "existing content must be untouched")

		fresh := filepath.Join(dir, "fresh.txt")
		_, err = CreateFile(fresh, "replacement", CreateOptions{FailIfExists: true})
		assert.NoError(t, err)
	})

	t.Run("compact map parses back to the original", func(t *testing.T) {
		dir := resolvedTempDir(t)
		target := filepath.Join(dir, "data.json")
		in := map[string]any{"name": "alec", "age": float64(18)}

		created, err := CreateFile(target, in, CreateOptions{Compact: true})
		require.NoError(t, err)

		data, err := os.ReadFile(created)
		require.NoError(t, err)

		var out map[string]any
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, in, out)
	})

	t.Run("unsupported content carries the path", func(t *testing.T) {
		dir := resolvedTempDir(t)
		target := filepath.Join(dir, "bad.txt")

		_, err := CreateFile(target, make(chan int), CreateOptions{})
		require.True(t, IsKind(err, KindUnsupportedType), "got %v", err)

		var pe *PathError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, target, pe.Path)
	})

	t.Run("empty content fails and writes nothing", func(t *testing.T) {
		dir := resolvedTempDir(t)
		target := filepath.Join(dir, "empty.txt")

		_, err := CreateFile(target, "   ", CreateOptions{})
		assert.True(t, IsKind(err, KindEmptyContent), "got %v", err)
		assert.NoFileExists(t, target)
	})

	t.Run("unknown encoding fails", func(t *testing.T) {
		dir := resolvedTempDir(t)

		_, err := CreateFile(filepath.Join(dir, "x.txt"), "content",
			CreateOptions{Encoding: "no-such-charset"})
		assert.True(t, IsKind(err, KindInvalidEncoding), "got %v", err)
	})

	t.Run("named single-byte encoding writes cleanly", func(t *testing.T) {
		dir := resolvedTempDir(t)
		target := filepath.Join(dir, "latin.txt")

		created, err := CreateFile(target, "ascii only", CreateOptions{Encoding: "latin1"})
		require.NoError(t, err)

		data, err := os.ReadFile(created)
		require.NoError(t, err)
		assert.Equal(t, "ascii only", string(data))
	})
}

func TestReadFile(t *testing.T) {
	t.Run("round trip through create", func(t *testing.T) {
		dir := resolvedTempDir(t)
		target := filepath.Join(dir, "round.txt")

		sanitized, err := SanitizeContent("text\twith\nstructure", false)
		require.NoError(t, err)

		created, err := CreateFile(target, "text\twith\nstructure", CreateOptions{})
		require.NoError(t, err)

		got, err := ReadFile(created, "")
		require.NoError(t, err)
		assert.Equal(t, sanitized, got)
	})

	t.Run("missing file", func(t *testing.T) {
		dir := resolvedTempDir(t)

		_, err := ReadFile(filepath.Join(dir, "nothing.txt"), "")
		assert.True(t, IsKind(err, KindNotFound), "got %v", err)
	})

	t.Run("directory is the wrong type", func(t *testing.T) {
		dir := resolvedTempDir(t)

		_, err := ReadFile(dir, "")
		assert.True(t, IsKind(err, KindWrongType), "got %v", err)
	})

	t.Run("unreadable file", func(t *testing.T) {
		skipIfRoot(t)
		dir := resolvedTempDir(t)
		path := writeTestFile(t, dir, "secret.txt", "content")
		require.NoError(t, os.Chmod(path, 0o000))
		t.Cleanup(func() { os.Chmod(path, 0o644) })

		_, err := ReadFile(path, "")
		assert.True(t, IsKind(err, KindNotReadable), "got %v", err)
	})

	t.Run("invalid UTF-8 fails decoding", func(t *testing.T) {
		dir := resolvedTempDir(t)
		path := filepath.Join(dir, "binary.bin")
		require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0x41}, 0o644))

		_, err := ReadFile(path, "")
		assert.True(t, IsKind(err, KindDecodeFailed), "got %v", err)
	})
}

func TestReadFileBytes(t *testing.T) {
	dir := resolvedTempDir(t)
	path := filepath.Join(dir, "binary.bin")
	raw := []byte{0x00, 0x01, 0x02, 'H', 'i'}
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	got, err := ReadFileBytes(path)
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestDeleteFile(t *testing.T) {
	t.Run("existing file is removed", func(t *testing.T) {
		dir := resolvedTempDir(t)
		path := writeTestFile(t, dir, "doomed.txt", "delete me")

		deleted, err := DeleteFile(path, false)
		require.NoError(t, err)
		assert.True(t, deleted)
		assert.NoFileExists(t, path)
	})

	t.Run("missing file without ignoreMissing fails", func(t *testing.T) {
		dir := resolvedTempDir(t)

		_, err := DeleteFile(filepath.Join(dir, "gone.txt"), false)
		assert.True(t, IsKind(err, KindNotFound), "got %v", err)
	})

	t.Run("missing file with ignoreMissing returns false", func(t *testing.T) {
		dir := resolvedTempDir(t)

		deleted, err := DeleteFile(filepath.Join(dir, "gone.txt"), true)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("directory fails regardless of ignoreMissing", func(t *testing.T) {
		dir := resolvedTempDir(t)
		sub := filepath.Join(dir, "subdir")
		require.NoError(t, os.Mkdir(sub, 0o755))

		for _, ignoreMissing := range []bool{false, true} {
			_, err := DeleteFile(sub, ignoreMissing)
			assert.True(t, IsKind(err, KindIsDirectory),
				"ignoreMissing=%v got %v", ignoreMissing, err)
		}
	})

	t.Run("deletion denied by directory permissions", func(t *testing.T) {
		skipIfRoot(t)
		dir := resolvedTempDir(t)
		locked := filepath.Join(dir, "locked")
		require.NoError(t, os.Mkdir(locked, 0o755))
		path := writeTestFile(t, locked, "held.txt", "x")
		require.NoError(t, os.Chmod(locked, 0o555))
		t.Cleanup(func() { os.Chmod(locked, 0o755) })

		_, err := DeleteFile(path, false)
		assert.True(t, IsKind(err, KindPermissionDenied), "got %v", err)
	})
}
