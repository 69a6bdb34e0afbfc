package fileops

import (
	"errors"
	"fmt"
)

// Kind classifies a fileops failure into a closed taxonomy. Callers should
// branch on kinds rather than error strings.
type Kind int

const (
	// KindInvalidInput - the argument is not a usable path or content value.
	KindInvalidInput Kind = iota + 1
	// KindNotFound - a required path does not exist.
	KindNotFound
	// KindWrongType - the path exists but is the wrong entry type.
	KindWrongType
	// KindHiddenRejected - a hidden path was rejected by policy.
	KindHiddenRejected
	// KindNotReadable - the OS denied read access.
	KindNotReadable
	// KindNotWritable - the OS denied write access.
	KindNotWritable
	// KindAlreadyExists - creation was blocked by a no-overwrite policy.
	KindAlreadyExists
	// KindIsDirectory - a file operation was attempted on a directory.
	KindIsDirectory
	// KindUnsupportedType - the content value cannot be converted to text.
	KindUnsupportedType
	// KindInvalidEncoding - binary content is not valid text, or the named
	// encoding is unknown.
	KindInvalidEncoding
	// KindEmptyContent - sanitization produced an empty result.
	KindEmptyContent
	// KindDecodeFailed - file content could not be decoded as text.
	KindDecodeFailed
	// KindDirCreateFailed - directory creation failed at the OS level.
	KindDirCreateFailed
	// KindTempCreateFailed - temporary file creation failed at the OS level.
	KindTempCreateFailed
	// KindPermissionDenied - an OS-level permission failure outside the
	// readable/writable checks.
	KindPermissionDenied
)

var kindNames = map[Kind]string{
	KindInvalidInput:     "invalid input",
	KindNotFound:         "not found",
	KindWrongType:        "wrong entry type",
	KindHiddenRejected:   "hidden path rejected",
	KindNotReadable:      "not readable",
	KindNotWritable:      "not writable",
	KindAlreadyExists:    "already exists",
	KindIsDirectory:      "is a directory",
	KindUnsupportedType:  "unsupported content type",
	KindInvalidEncoding:  "invalid encoding",
	KindEmptyContent:     "empty content",
	KindDecodeFailed:     "decode failed",
	KindDirCreateFailed:  "directory creation failed",
	KindTempCreateFailed: "temp file creation failed",
	KindPermissionDenied: "permission denied",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// TempPathPlaceholder is used as the path of a PathError raised before any
// temporary file path exists.
const TempPathPlaceholder = "<tempfile>"

// PathError is the error type returned by every function in this package.
// It carries the resolved (or attempted) path and a human-readable reason.
// When a lower-level OS error caused the failure it is available via Unwrap.
type PathError struct {
	Kind   Kind
	Path   string
	Reason string
	Err    error
}

func (e *PathError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%s): %v", e.Kind, e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Path, e.Reason)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

func newPathError(kind Kind, path, reason string) *PathError {
	return &PathError{Kind: kind, Path: path, Reason: reason}
}

func wrapPathError(kind Kind, path, reason string, err error) *PathError {
	return &PathError{Kind: kind, Path: path, Reason: reason, Err: err}
}

// KindOf returns the Kind of err, or zero when err is not a *PathError.
func KindOf(err error) Kind {
	var pe *PathError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return 0
}

// IsKind reports whether err is a *PathError of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
