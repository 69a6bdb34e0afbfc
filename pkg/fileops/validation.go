package fileops

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// EntryKind names the filesystem entry type a validation expects.
type EntryKind int

const (
	// EntryAny accepts files and directories alike.
	EntryAny EntryKind = iota
	// EntryFile requires a regular file.
	EntryFile
	// EntryDir requires a directory.
	EntryDir
)

// Constraints selects which checks ValidatePath applies. The zero value
// applies none of them: a blank struct only resolves the path.
type Constraints struct {
	// MustExist fails validation when the path does not exist.
	MustExist bool
	// Entry, when not EntryAny, requires the path to be that entry type.
	Entry EntryKind
	// Readable verifies read access through the OS permission model.
	Readable bool
	// Writable verifies write access through the OS permission model.
	Writable bool
	// RejectHidden fails validation when the final path segment starts
	// with a dot. Hidden paths are accepted by default.
	RejectHidden bool
}

// ExpandPath expands a path that starts with "~" to the user's home directory.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home := xdg.Home
	if home == "" {
		return path // Home directory unavailable, keep the original path
	}

	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// ResolvePath converts a raw user-supplied path into its canonical absolute
// form: "~" is expanded, the path is made absolute and cleaned, and symlinks
// are resolved where the path exists. Resolution does not require the path to
// exist; a missing path keeps its cleaned absolute form.
func ResolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", newPathError(KindInvalidInput, path, "path cannot be empty")
	}

	abs, err := filepath.Abs(ExpandPath(path))
	if err != nil {
		return "", wrapPathError(KindInvalidInput, path, "cannot resolve path", err)
	}
	abs = filepath.Clean(abs)

	// Best-effort symlink resolution, matching non-strict resolution:
	// a path that does not exist yet stays as-is.
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	return abs, nil
}

// ValidatePath resolves path and applies the requested constraints in a fixed
// order: existence, entry type, hidden policy, read access, write access. The
// first failing check determines the returned error. On success the resolved
// path is returned, and all further I/O should use it instead of the raw
// input.
//
// The hidden check here is the Unix dot-prefix convention regardless of
// platform; IsHidden performs the platform-specific attribute check.
func ValidatePath(path string, c Constraints) (string, error) {
	resolved, err := ResolvePath(path)
	if err != nil {
		return "", err
	}

	info, statErr := os.Stat(resolved)

	if c.MustExist && statErr != nil {
		if os.IsNotExist(statErr) {
			return "", newPathError(KindNotFound, resolved, "path does not exist")
		}
		return "", wrapPathError(KindPermissionDenied, resolved, "cannot access path", statErr)
	}

	switch c.Entry {
	case EntryFile:
		if statErr != nil || !info.Mode().IsRegular() {
			return "", newPathError(KindWrongType, resolved, "expected a regular file")
		}
	case EntryDir:
		if statErr != nil || !info.IsDir() {
			return "", newPathError(KindWrongType, resolved, "expected a directory")
		}
	}

	if c.RejectHidden && strings.HasPrefix(filepath.Base(resolved), ".") {
		return "", newPathError(KindHiddenRejected, resolved, "hidden paths are not allowed")
	}

	if c.Readable && !accessReadable(resolved) {
		return "", newPathError(KindNotReadable, resolved, "path is not readable")
	}

	if c.Writable && !accessWritable(resolved) {
		return "", newPathError(KindNotWritable, resolved, "path is not writable")
	}

	return resolved, nil
}
