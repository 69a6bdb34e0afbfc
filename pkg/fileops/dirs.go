package fileops

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"fskit/internal/logging"
)

// DirMode is the permission mode used for created directories.
const DirMode = 0o755

// EnsureDir guarantees that path names an existing directory and returns its
// resolved form.
//
// An existing non-directory entry fails with KindWrongType. An existing
// directory fails with KindAlreadyExists unless existOK is true. A missing
// directory fails with KindNotFound unless createIfMissing is true, in which
// case the directory and any missing ancestors are created.
func EnsureDir(path string, createIfMissing, existOK bool) (string, error) {
	resolved, err := ResolvePath(path)
	if err != nil {
		return "", err
	}

	info, statErr := os.Stat(resolved)
	if statErr == nil {
		if !info.IsDir() {
			return "", newPathError(KindWrongType, resolved, "path exists but is not a directory")
		}
		if !existOK {
			return "", newPathError(KindAlreadyExists, resolved, "directory already exists")
		}
		return resolved, nil
	}
	if !os.IsNotExist(statErr) {
		return "", wrapPathError(KindPermissionDenied, resolved, "cannot access directory", statErr)
	}

	if !createIfMissing {
		return "", newPathError(KindNotFound, resolved, "directory does not exist and creation is disabled")
	}

	// MkdirAll tolerates the directory appearing concurrently, so a race
	// between the stat above and creation is treated as success.
	if err := os.MkdirAll(resolved, DirMode); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return "", wrapPathError(KindPermissionDenied, resolved, "permission denied creating directory", err)
		}
		return "", wrapPathError(KindDirCreateFailed, resolved, "cannot create directory", err)
	}

	logging.Debug("created directory", "path", resolved)
	return resolved, nil
}

// DefaultStorageDir returns the default data directory for an application,
// following the platform's user data directory convention (XDG on Linux and
// macOS, AppData on Windows).
func DefaultStorageDir(app string) string {
	return filepath.Join(xdg.DataHome, app)
}
