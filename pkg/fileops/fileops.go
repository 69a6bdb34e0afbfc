package fileops

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"fskit/internal/logging"
)

// FileMode is the permission mode used for created files.
const FileMode = 0o644

// CreateOptions controls CreateFile. The zero value overwrites existing
// files, keeps whitespace as-is, and writes UTF-8, matching the defaults of
// the underlying sanitization and encoding layers.
type CreateOptions struct {
	// FailIfExists refuses to replace an existing file.
	FailIfExists bool
	// Compact collapses redundant whitespace in the sanitized content and
	// switches JSON serialization to its compact form.
	Compact bool
	// Encoding names the text encoding for the written bytes ("utf-8",
	// "latin1", ...). Empty means UTF-8.
	Encoding string
}

// CreateFile sanitizes content, ensures the parent directory exists, and
// writes the result to path, fully replacing any previous contents. It
// returns the resolved path of the created file.
func CreateFile(path string, content any, opts CreateOptions) (string, error) {
	resolved, err := ResolvePath(path)
	if err != nil {
		return "", err
	}

	if opts.FailIfExists {
		if _, err := os.Stat(resolved); err == nil {
			return "", newPathError(KindAlreadyExists, resolved, "file already exists and overwrite is disabled")
		}
	}

	if _, err := EnsureDir(filepath.Dir(resolved), true, true); err != nil {
		return "", err
	}

	text, err := SanitizeContent(content, opts.Compact)
	if err != nil {
		return "", attachPath(err, resolved)
	}

	data, err := encodeText(text, opts.Encoding)
	if err != nil {
		return "", attachPath(err, resolved)
	}

	if err := os.WriteFile(resolved, data, FileMode); err != nil {
		switch {
		case errors.Is(err, fs.ErrPermission):
			return "", wrapPathError(KindPermissionDenied, resolved, "permission denied creating file", err)
		case errors.Is(err, syscall.EISDIR):
			return "", wrapPathError(KindIsDirectory, resolved, "path is a directory", err)
		default:
			return "", wrapPathError(KindNotWritable, resolved, "cannot write file", err)
		}
	}

	logging.Debug("created file", "path", resolved, "bytes", len(data))
	return resolved, nil
}

// ReadFile validates that path names an existing, readable regular file and
// returns its contents decoded with the named encoding (UTF-8 when empty).
func ReadFile(path string, encoding string) (string, error) {
	data, resolved, err := readValidated(path)
	if err != nil {
		return "", err
	}

	text, err := decodeText(data, encoding)
	if err != nil {
		return "", attachPath(err, resolved)
	}
	return text, nil
}

// ReadFileBytes is ReadFile without decoding: it returns the raw contents.
func ReadFileBytes(path string) ([]byte, error) {
	data, _, err := readValidated(path)
	return data, err
}

func readValidated(path string) ([]byte, string, error) {
	resolved, err := ValidatePath(path, Constraints{
		MustExist: true,
		Entry:     EntryFile,
		Readable:  true,
	})
	if err != nil {
		return nil, "", err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, resolved, wrapPathError(KindNotReadable, resolved, "permission denied reading file", err)
		}
		return nil, resolved, wrapPathError(KindNotReadable, resolved, "cannot read file", err)
	}
	return data, resolved, nil
}

// DeleteFile removes the file at path and reports whether a deletion
// happened. A missing path returns (false, nil) when ignoreMissing is true
// and KindNotFound otherwise. A directory always fails with KindIsDirectory,
// regardless of ignoreMissing.
func DeleteFile(path string, ignoreMissing bool) (bool, error) {
	resolved, err := ResolvePath(path)
	if err != nil {
		return false, err
	}

	info, statErr := os.Stat(resolved)
	if statErr != nil {
		if os.IsNotExist(statErr) {
			if ignoreMissing {
				return false, nil
			}
			return false, newPathError(KindNotFound, resolved, "file does not exist")
		}
		return false, wrapPathError(KindPermissionDenied, resolved, "cannot access file", statErr)
	}

	if info.IsDir() {
		return false, newPathError(KindIsDirectory, resolved, "path is a directory, not a file")
	}

	if err := os.Remove(resolved); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return false, wrapPathError(KindPermissionDenied, resolved, "permission denied deleting file", err)
		}
		return false, wrapPathError(KindNotWritable, resolved, "cannot delete file", err)
	}

	logging.Debug("deleted file", "path", resolved)
	return true, nil
}

// attachPath fills in the path of a PathError raised by a layer that had no
// path in scope (sanitization, encoding), preserving kind and cause.
func attachPath(err error, path string) error {
	var pe *PathError
	if errors.As(err, &pe) && pe.Path == "" {
		return &PathError{Kind: pe.Kind, Path: path, Reason: pe.Reason, Err: pe.Err}
	}
	return err
}
