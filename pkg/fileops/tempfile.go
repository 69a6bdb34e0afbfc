package fileops

import (
	"os"
	"path/filepath"
)

// Default temporary file naming, used by callers that have no preference.
const (
	DefaultTempPrefix = "tmp_"
	DefaultTempSuffix = ".tmp"
)

// CreateTempFile creates a uniquely named file with the given prefix and
// suffix and returns its resolved path. The file exists on disk when the call
// returns and its handle is already closed. When dir is empty the system
// temporary directory is used; otherwise dir is created (with ancestors) if
// missing and must be a directory.
func CreateTempFile(prefix, suffix, dir string) (string, error) {
	f, err := OpenTempFile(prefix, suffix, dir)
	if err != nil {
		return "", err
	}
	path := f.Name()
	if err := f.Close(); err != nil {
		return "", wrapPathError(KindTempCreateFailed, path, "cannot close temporary file", err)
	}

	// The system temp directory is a symlink on some platforms; report the
	// canonical form used everywhere else in this package.
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	return path, nil
}

// OpenTempFile is CreateTempFile with the handle left open; the caller owns
// closing it. The path is available as f.Name().
func OpenTempFile(prefix, suffix, dir string) (*os.File, error) {
	target := ""
	if dir != "" {
		resolved, err := ResolvePath(dir)
		if err != nil {
			return nil, err
		}

		info, statErr := os.Stat(resolved)
		switch {
		case statErr == nil:
			if !info.IsDir() {
				return nil, newPathError(KindWrongType, resolved, "temp directory path is not a directory")
			}
		case os.IsNotExist(statErr):
			if err := os.MkdirAll(resolved, DirMode); err != nil {
				return nil, wrapPathError(KindTempCreateFailed, resolved, "cannot prepare temp directory", err)
			}
		default:
			return nil, wrapPathError(KindTempCreateFailed, resolved, "cannot access temp directory", statErr)
		}
		target = resolved
	}

	// CreateTemp guarantees both a unique name and actual creation.
	f, err := os.CreateTemp(target, prefix+"*"+suffix)
	if err != nil {
		return nil, wrapPathError(KindTempCreateFailed, TempPathPlaceholder, "cannot create temporary file", err)
	}
	return f, nil
}
